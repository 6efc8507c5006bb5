package domain

// OutcomeKind classifies a single invocation of the external tool.
type OutcomeKind uint8

const (
	// OutcomeSuccess means the tool exited with status 0.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeToolFailure means the tool ran and exited with a non-zero status.
	OutcomeToolFailure
	// OutcomeInvocationError means the tool could not be started or waited on.
	OutcomeInvocationError
)

// String returns a short label for the kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeToolFailure:
		return "tool failure"
	case OutcomeInvocationError:
		return "invocation error"
	default:
		return "unknown"
	}
}

// Outcome is the captured result of running the external tool once.
type Outcome struct {
	Kind OutcomeKind
	// Output is the tool's standard output, one '\n'-terminated line per line read.
	Output string
	// Diagnostic is the tool's standard error on failure, or a description of the
	// invocation error.
	Diagnostic string
	// ExitCode is the process exit status, or -1 when the process did not exit normally.
	ExitCode int
}

// Success builds a successful Outcome carrying output.
func Success(output string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Output: output}
}

// ToolFailure builds an Outcome for a non-zero exit.
func ToolFailure(diagnostic string, exitCode int) Outcome {
	return Outcome{Kind: OutcomeToolFailure, Diagnostic: diagnostic, ExitCode: exitCode}
}

// InvocationError builds an Outcome for a launch or wait failure.
func InvocationError(diagnostic string) Outcome {
	return Outcome{Kind: OutcomeInvocationError, Diagnostic: diagnostic, ExitCode: -1}
}

// Succeeded reports whether the tool exited with status 0.
func (o Outcome) Succeeded() bool {
	return o.Kind == OutcomeSuccess
}

// FileResult is the terminal state reached by one file in a batch, together
// with the details needed to report it.
type FileResult struct {
	File  SourceFile
	State FileState
	// Reason describes why the file failed. Empty for other states.
	Reason string
	// ToolFailed is true when the failure came from a non-zero tool exit rather
	// than an orchestration fault.
	ToolFailed bool
}
