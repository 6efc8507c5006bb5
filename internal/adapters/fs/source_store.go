package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/yango/internal/core/domain"
	"go.trai.ch/yango/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceStore = (*SourceStore)(nil)

// SourceStore reads model files and writes tool output next to them.
type SourceStore struct {
	codec *Codec
}

// NewSourceStore creates a new SourceStore.
func NewSourceStore(codec *Codec) *SourceStore {
	return &SourceStore{codec: codec}
}

// ReadFile returns the raw content of path.
func (s *SourceStore) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from discovery
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	return data, nil
}

// WriteText encodes text and replaces the content of path.
func (s *SourceStore) WriteText(path, text, encoding string) error {
	data, err := s.codec.Encode(text, encoding)
	if err != nil {
		return zerr.With(err, "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // Output sits next to a discovered source file
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	return nil
}
