// Package fs provides file system adapters for discovering, reading and hashing model files.
package fs

import (
	"strings"
	"unicode/utf8"

	"go.trai.ch/yango/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// Codec converts between raw bytes and text in a named character encoding.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// isUTF8 reports whether name denotes UTF-8. An empty name means UTF-8.
func isUTF8(name string) bool {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", "-")) {
	case "", "utf-8", "utf8":
		return true
	default:
		return false
	}
}

// Lookup resolves an IANA encoding name.
func (c *Codec) Lookup(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, zerr.With(domain.ErrUnknownEncoding, "encoding", name)
	}
	return enc, nil
}

// Validate checks that name is a supported encoding.
func (c *Codec) Validate(name string) error {
	if isUTF8(name) {
		return nil
	}
	_, err := c.Lookup(name)
	return err
}

// Decode interprets content as text in the named encoding.
func (c *Codec) Decode(content []byte, name string) (string, error) {
	if isUTF8(name) {
		if !utf8.Valid(content) {
			return "", zerr.With(domain.ErrEncodingFailed, "encoding", name)
		}
		return string(content), nil
	}

	enc, err := c.Lookup(name)
	if err != nil {
		return "", err
	}
	text, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrEncodingFailed.Error()), "encoding", name)
	}
	return string(text), nil
}

// Encode converts text to bytes in the named encoding. Characters the
// encoding cannot represent are an error.
func (c *Codec) Encode(text, name string) ([]byte, error) {
	if isUTF8(name) {
		if !utf8.ValidString(text) {
			return nil, zerr.With(domain.ErrEncodingFailed, "encoding", name)
		}
		return []byte(text), nil
	}

	enc, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewEncoder().String(text)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEncodingFailed.Error()), "encoding", name)
	}
	return []byte(out), nil
}
