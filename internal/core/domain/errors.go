package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownOperation is returned when an operation name cannot be parsed.
	ErrUnknownOperation = zerr.New("unknown operation, expected 'format', 'convert', 'compile' or 'version'")

	// ErrUnsupportedOperation is returned when an operation cannot be applied to a single file.
	ErrUnsupportedOperation = zerr.New("operation is not a per-file operation")

	// ErrDiscoveryFailed is returned when the candidate file set cannot be enumerated.
	ErrDiscoveryFailed = zerr.New("unable to find files using includes/excludes")

	// ErrInvalidPattern is returned when an include or exclude glob is malformed.
	ErrInvalidPattern = zerr.New("invalid glob pattern")

	// ErrNoSourceDirectory is returned when no configured root directory exists.
	ErrNoSourceDirectory = zerr.New("no source directory specified to scan yang files")

	// ErrToolNotInstalled is returned when the version probe of the external tool fails.
	ErrToolNotInstalled = zerr.New("tool is not installed")

	// ErrToolFailed is returned when the external tool exits with a non-zero status
	// and the fail-on-error policy is enabled.
	ErrToolFailed = zerr.New("tool reported failure")

	// ErrToolInvocationFailed is returned when the external tool cannot be launched or waited on.
	ErrToolInvocationFailed = zerr.New("tool invocation error")

	// ErrBatchAborted is returned when a fatal per-file failure unwinds the batch.
	ErrBatchAborted = zerr.New("batch aborted")

	// ErrUnknownEncoding is returned when the configured text encoding is not recognised.
	ErrUnknownEncoding = zerr.New("unknown text encoding")

	// ErrEncodingFailed is returned when content cannot be decoded or encoded under the configured encoding.
	ErrEncodingFailed = zerr.New("content is not valid in the configured encoding")

	// ErrFileReadFailed is returned when a source file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrFileWriteFailed is returned when a source or derived file cannot be written.
	ErrFileWriteFailed = zerr.New("failed to write file")

	// ErrRelativePathFailed is returned when a file cannot be expressed relative to the base directory.
	ErrRelativePathFailed = zerr.New("failed to resolve path relative to base directory")

	// ErrCacheReadFailed is returned when the hash cache store exists but cannot be loaded.
	ErrCacheReadFailed = zerr.New("cannot load file hash cache properties file")

	// ErrCacheWriteFailed is returned when the hash cache store cannot be persisted.
	ErrCacheWriteFailed = zerr.New("cannot store file hash cache properties file")

	// ErrTargetNotDirectory is returned when the target directory path exists but is not a directory.
	ErrTargetNotDirectory = zerr.New("target directory is not a directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")
)
