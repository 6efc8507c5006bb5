// Package command builds invocations of the external translator.
package command

import (
	"runtime"

	"go.trai.ch/yango/internal/core/domain"
)

// Windows is the platform name that requires a shell prefix.
const Windows = "windows"

// Builder turns an operation into a CommandSpec for the configured tool.
type Builder struct {
	// ToolName is the binary to invoke. Empty means domain.DefaultToolName.
	ToolName string
	// ModulePath is exported as YANG_MODPATH when non-empty.
	ModulePath string
}

// NewBuilder creates a Builder for tool with the given module search path.
func NewBuilder(tool, modulePath string) *Builder {
	return &Builder{ToolName: tool, ModulePath: modulePath}
}

// HostPlatform returns the platform of the running process.
func HostPlatform() string {
	return runtime.GOOS
}

// Build returns the invocation for op. extraArgs come before the operation's
// fixed flags. The target file is not included; callers add it with
// CommandSpec.WithTarget.
func (b *Builder) Build(op domain.Operation, extraArgs []string, platform string) domain.CommandSpec {
	tool := b.ToolName
	if tool == "" {
		tool = domain.DefaultToolName
	}

	var args []string
	if platform == Windows {
		args = append(args, "cmd", "/c")
	}
	args = append(args, tool)
	args = append(args, extraArgs...)
	args = append(args, fixedFlags(op)...)

	spec := domain.CommandSpec{Args: args}
	if op != domain.OperationVersion && b.ModulePath != "" {
		spec.Env = map[string]string{domain.ModulePathEnv: b.ModulePath}
	}
	return spec
}

func fixedFlags(op domain.Operation) []string {
	switch op {
	case domain.OperationVersion:
		return []string{"-v"}
	case domain.OperationFormat:
		return []string{"-f", "yang"}
	case domain.OperationConvert:
		return []string{"-f", "yin"}
	default:
		return nil
	}
}
