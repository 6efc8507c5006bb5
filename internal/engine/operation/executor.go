// Package operation applies one tool operation to one source file.
package operation

import (
	"context"
	"errors"
	"strings"

	"go.trai.ch/yango/internal/core/domain"
	"go.trai.ch/yango/internal/core/ports"
	"go.trai.ch/yango/internal/engine/command"
	"go.trai.ch/zerr"
)

// Executor runs the tool for a single file and applies the result to the
// filesystem according to the operation.
type Executor struct {
	runner   ports.Runner
	sources  ports.SourceStore
	logger   ports.Logger
	builder  *command.Builder
	cfg      *domain.Config
	platform string
}

// NewExecutor creates an Executor for the tool described by cfg.
func NewExecutor(
	runner ports.Runner,
	sources ports.SourceStore,
	logger ports.Logger,
	cfg *domain.Config,
) *Executor {
	return &Executor{
		runner:   runner,
		sources:  sources,
		logger:   logger,
		builder:  command.NewBuilder(cfg.Tool, cfg.ModulePath),
		cfg:      cfg,
		platform: command.HostPlatform(),
	}
}

// Execute runs op on file and returns the file's terminal state.
//
// A tool-reported failure is returned as a non-nil error only when the
// fail-on-error policy is enabled; the batch must then stop. Invocation
// errors and write failures are always recorded as per-file failures.
func (e *Executor) Execute(ctx context.Context, op domain.Operation, file domain.SourceFile) (domain.FileResult, error) {
	if !op.IsBatch() {
		return failed(file, "", false), zerr.With(domain.ErrUnsupportedOperation, "operation", op.String())
	}

	spec := e.builder.Build(op, e.cfg.ExtraArgs(op), e.platform).WithTarget(file.Path)

	runCtx := ctx
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	outcome := e.runner.Run(runCtx, spec, file.Dir())

	switch outcome.Kind {
	case domain.OutcomeSuccess:
		if err := e.apply(op, file, outcome.Output); err != nil {
			e.logger.Error(err)
			return failed(file, err.Error(), false), nil
		}
		return domain.FileResult{File: file, State: domain.FileSucceeded}, nil

	case domain.OutcomeToolFailure:
		diagnostic := strings.TrimSpace(outcome.Diagnostic)
		if e.cfg.FailOnError {
			msg := "error when running " + spec.Program() + " on " + file.Name()
			if diagnostic != "" {
				msg += ": " + diagnostic
			}
			detail := zerr.New(msg)
			detail = zerr.With(detail, "file", file.Path)
			detail = zerr.With(detail, "exit_code", outcome.ExitCode)
			detail = zerr.With(detail, "diagnostic", diagnostic)
			return failed(file, diagnostic, true), errors.Join(detail, domain.ErrToolFailed)
		}
		e.logger.Warn(file.Path + ": " + diagnostic)
		return failed(file, diagnostic, true), nil

	default:
		e.logger.Warn(file.Path + ": " + outcome.Diagnostic)
		return failed(file, outcome.Diagnostic, false), nil
	}
}

func (e *Executor) apply(op domain.Operation, file domain.SourceFile, output string) error {
	switch op {
	case domain.OperationFormat:
		return e.sources.WriteText(file.Path, output, e.cfg.Encoding)
	case domain.OperationConvert:
		return e.sources.WriteText(file.DerivedPath(), output, e.cfg.Encoding)
	default:
		return nil
	}
}

func failed(file domain.SourceFile, reason string, toolFailed bool) domain.FileResult {
	return domain.FileResult{
		File:       file,
		State:      domain.FileFailed,
		Reason:     reason,
		ToolFailed: toolFailed,
	}
}
