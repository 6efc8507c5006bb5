package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/yango/internal/core/domain"
	"go.trai.ch/yango/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes content digests of model files.
type Hasher struct {
	codec *Codec
}

// NewHasher creates a new Hasher.
func NewHasher(codec *Codec) *Hasher {
	return &Hasher{codec: codec}
}

// Digest decodes content with the named encoding, re-encodes the text and
// returns the XXHash of the result. Two files with the same text in the
// same encoding always share a digest.
func (h *Hasher) Digest(content []byte, encoding string) (domain.Digest, error) {
	text, err := h.codec.Decode(content, encoding)
	if err != nil {
		return "", err
	}
	normalized, err := h.codec.Encode(text, encoding)
	if err != nil {
		return "", err
	}

	return domain.Digest(fmt.Sprintf("%016x", xxhash.Sum64(normalized))), nil
}
