package ports

import "go.trai.ch/yango/internal/core/domain"

// Hasher computes content digests for change detection.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Digest returns the digest of content interpreted as text in the named encoding.
	// It fails when content is not valid in that encoding.
	Digest(content []byte, encoding string) (domain.Digest, error)
}
