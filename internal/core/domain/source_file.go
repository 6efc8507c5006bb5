package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// SourceFile is a model-definition file taking part in a batch.
type SourceFile struct {
	// Path is the absolute, cleaned filesystem path.
	Path string
	// RelPath is the path relative to the base directory, in slash form with a
	// leading slash. It is the hash cache key.
	RelPath string
}

// NewSourceFile builds a SourceFile for path, keyed relative to baseDir.
func NewSourceFile(baseDir, path string) (SourceFile, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return SourceFile{}, zerr.With(zerr.Wrap(err, ErrRelativePathFailed.Error()), "file", path)
	}
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return SourceFile{}, zerr.With(zerr.Wrap(err, ErrRelativePathFailed.Error()), "base_dir", baseDir)
	}

	rel, err := filepath.Rel(base, abs)
	if err != nil {
		return SourceFile{}, zerr.With(zerr.Wrap(err, ErrRelativePathFailed.Error()), "file", abs)
	}

	return SourceFile{
		Path:    abs,
		RelPath: "/" + strings.TrimPrefix(filepath.ToSlash(rel), "./"),
	}, nil
}

// Name returns the file's base name.
func (f SourceFile) Name() string {
	return filepath.Base(f.Path)
}

// Dir returns the directory containing the file.
func (f SourceFile) Dir() string {
	return filepath.Dir(f.Path)
}

// DerivedPath returns the sibling path used by the convert operation: the base
// name up to its first '.' followed by the alternate extension.
func (f SourceFile) DerivedPath() string {
	name := f.Name()
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return filepath.Join(f.Dir(), name+AlternateExtension)
}
