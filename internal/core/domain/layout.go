package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "yango.yaml"

	// DefaultTargetDirName is the directory holding the hash cache stores.
	DefaultTargetDirName = "target"

	// DefaultSourceDirName is the source directory scanned when no directories are configured.
	DefaultSourceDirName = "src"

	// FormatCacheFileName is the hash cache store of the format operation.
	FormatCacheFileName = "yang-format-cache.properties"

	// ConvertCacheFileName is the hash cache store of the convert operation.
	ConvertCacheFileName = "yin-yang-cache.properties"

	// CompileCacheFileName is the hash cache store of the compile operation.
	CompileCacheFileName = "yang-compile-cache.properties"

	// DefaultToolName is the binary name of the external translator.
	DefaultToolName = "pyang"

	// DefaultRecommendedVersion is the tool version the orchestration is tested against.
	DefaultRecommendedVersion = "1.6"

	// DefaultEncoding is used when no encoding is configured.
	DefaultEncoding = "UTF-8"

	// ModulePathEnv carries the module search path to the tool.
	ModulePathEnv = "YANG_MODPATH"

	// AlternateExtension is the extension of files produced by the convert operation.
	AlternateExtension = ".yin"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultIncludes matches model-definition files anywhere below a root.
func DefaultIncludes() []string {
	return []string{"**/*.yang"}
}

// DefaultExcludes skips the standard IETF modules shipped alongside project modules.
func DefaultExcludes() []string {
	return []string{"**/ietf*.yang"}
}

// CacheStorePath returns the path of the operation's hash cache store under targetDir.
func CacheStorePath(targetDir string, op Operation) string {
	return filepath.Join(targetDir, op.CacheFileName())
}
