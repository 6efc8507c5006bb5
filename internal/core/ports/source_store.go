package ports

// SourceStore reads and writes model files as text in a configured encoding.
//
//go:generate mockgen -source=source_store.go -destination=mocks/mock_source_store.go -package=mocks
type SourceStore interface {
	// ReadFile returns the raw bytes of path.
	ReadFile(path string) ([]byte, error)

	// WriteText encodes text in the named encoding and writes it to path,
	// creating or truncating the file.
	WriteText(path, text, encoding string) error
}
