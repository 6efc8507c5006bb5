package domain

import "time"

// Config is the resolved configuration of one invocation. All paths are absolute.
type Config struct {
	// BaseDir anchors the cache keys.
	BaseDir string
	// TargetDir holds the hash cache stores.
	TargetDir string
	// SourceDir is scanned when Directories is empty.
	SourceDir string
	// Directories are the explicit roots to scan.
	Directories []string
	Includes    []string
	Excludes    []string
	Encoding    string
	// FailOnError escalates tool-reported failures to a batch abort.
	FailOnError bool
	// Tool is the binary name of the external translator.
	Tool               string
	RecommendedVersion string
	// ModulePath is exported to the tool as YANG_MODPATH when non-empty.
	ModulePath string
	// Timeout bounds each tool invocation. Zero disables the bound.
	Timeout time.Duration
	// Jobs is the number of files processed concurrently. Values below 2 mean sequential.
	Jobs int
	// CacheFailedAttempts records digests of files whose tool invocation failed
	// under the fail-soft policy, so unchanged failing files are not retried.
	CacheFailedAttempts bool
	FormatArgs          []string
	ConvertArgs         []string
	CompileArgs         []string
}

// ExtraArgs returns the user-supplied arguments for op.
func (c *Config) ExtraArgs(op Operation) []string {
	switch op {
	case OperationFormat:
		return c.FormatArgs
	case OperationConvert:
		return c.ConvertArgs
	case OperationCompile:
		return c.CompileArgs
	default:
		return nil
	}
}

// Roots returns the directories to scan: Directories when set, otherwise SourceDir.
func (c *Config) Roots() []string {
	if len(c.Directories) > 0 {
		return c.Directories
	}
	if c.SourceDir == "" {
		return nil
	}
	return []string{c.SourceDir}
}

// ConfigOverrides holds values supplied on the command line. Nil or empty
// fields leave the file value in place.
type ConfigOverrides struct {
	Directories []string
	FailOnError *bool
	Encoding    string
	Timeout     *time.Duration
	Jobs        *int
}
