package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/yango/internal/core/domain"
	"go.trai.ch/yango/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Discoverer = (*Discoverer)(nil)

// skippedDirs are never descended into.
var skippedDirs = []string{".git", ".jj", ".svn"}

// Discoverer finds model files below a set of root directories using
// include and exclude glob patterns.
type Discoverer struct {
	logger ports.Logger
}

// NewDiscoverer creates a new Discoverer.
func NewDiscoverer(logger ports.Logger) *Discoverer {
	return &Discoverer{logger: logger}
}

// Discover walks each root in order and returns the absolute paths of the
// regular files whose root-relative path matches an include pattern and no
// exclude pattern. Files of one root are sorted; a file reachable from two
// roots is returned once. Roots that are not directories are skipped. When
// no root is a directory, Discover returns domain.ErrNoSourceDirectory.
func (d *Discoverer) Discover(roots, includes, excludes []string) ([]string, error) {
	includes, err := normalizePatterns(includes)
	if err != nil {
		return nil, err
	}
	excludes, err = normalizePatterns(excludes)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var result []string
	scanned := 0

	for _, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDiscoveryFailed.Error()), "root", root)
		}

		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			d.logger.Debug("skipping missing source directory " + abs)
			continue
		}
		scanned++

		files, err := d.walkRoot(abs, includes, excludes)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			if seen[file] {
				continue
			}
			seen[file] = true
			result = append(result, file)
		}
	}

	if scanned == 0 {
		return nil, errors.Join(domain.ErrNoSourceDirectory, zerr.With(zerr.New("no root is a directory"), "roots", strings.Join(roots, ",")))
	}
	return result, nil
}

func (d *Discoverer) walkRoot(root string, includes, excludes []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != root && slices.Contains(skippedDirs, entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if matchAny(includes, rel) && !matchAny(excludes, rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDiscoveryFailed.Error()), "root", root)
	}

	slices.Sort(files)
	return files, nil
}

// normalizePatterns validates patterns and expands a trailing slash to the
// whole subtree, so "drafts/" excludes everything below drafts.
func normalizePatterns(patterns []string) ([]string, error) {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = filepath.ToSlash(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if strings.HasSuffix(p, "/") {
			p += "**"
		}
		if !doublestar.ValidatePattern(p) {
			return nil, zerr.With(domain.ErrInvalidPattern, "pattern", p)
		}
		out = append(out, p)
	}
	return out, nil
}

func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}
