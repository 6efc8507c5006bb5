package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Operation identifies what the external tool is asked to do with a file.
type Operation uint8

const (
	// OperationFormat rewrites a file in its own format, canonicalised.
	OperationFormat Operation = iota + 1
	// OperationConvert produces a sibling file in the alternate format.
	OperationConvert
	// OperationCompile validates a file without touching the filesystem.
	OperationCompile
	// OperationVersion probes the tool. It is never run over a file set.
	OperationVersion
)

// BatchOperations lists the operations that run over a file set, in a stable order.
var BatchOperations = []Operation{OperationFormat, OperationConvert, OperationCompile}

// ParseOperation converts a name such as "format" into an Operation.
func ParseOperation(name string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "format":
		return OperationFormat, nil
	case "convert":
		return OperationConvert, nil
	case "compile":
		return OperationCompile, nil
	case "version":
		return OperationVersion, nil
	default:
		return 0, zerr.With(ErrUnknownOperation, "operation", name)
	}
}

// String returns the lower-case operation name.
func (o Operation) String() string {
	switch o {
	case OperationFormat:
		return "format"
	case OperationConvert:
		return "convert"
	case OperationCompile:
		return "compile"
	case OperationVersion:
		return "version"
	default:
		return "unknown"
	}
}

// IsBatch reports whether the operation is applied file by file.
func (o Operation) IsBatch() bool {
	return o == OperationFormat || o == OperationConvert || o == OperationCompile
}

// CacheFileName returns the name of the hash cache store for the operation.
// Each operation has its own store so their skip decisions never interact.
// Version has no store and returns an empty string.
func (o Operation) CacheFileName() string {
	switch o {
	case OperationFormat:
		return FormatCacheFileName
	case OperationConvert:
		return ConvertCacheFileName
	case OperationCompile:
		return CompileCacheFileName
	default:
		return ""
	}
}
