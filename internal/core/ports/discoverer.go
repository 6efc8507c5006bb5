package ports

// Discoverer enumerates candidate source files.
//
//go:generate mockgen -source=discoverer.go -destination=mocks/mock_discoverer.go -package=mocks
type Discoverer interface {
	// Discover returns the absolute paths of the regular files below roots
	// whose root-relative path matches an include pattern and no exclude pattern.
	Discover(roots, includes, excludes []string) ([]string, error)
}
