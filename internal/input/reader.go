// Package input loads document text from files or stdin.
package input

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrBinary is returned by Load when the content looks like binary data.
var ErrBinary = errors.New("binary content")

// binarySniffLen is how much of the content IsBinary inspects.
const binarySniffLen = 8192

// Content is raw document bytes plus whatever must be released once the
// caller is done with them. Data may alias a memory map, so it must not be
// used after Release.
type Content struct {
	Data    []byte
	release func() error
}

// Release frees the backing storage. It is safe to call more than once.
func (c *Content) Release() error {
	if c.release == nil {
		return nil
	}
	err := c.release()
	c.release = nil
	c.Data = nil
	return err
}

func noRelease() error { return nil }

// Reader reads a whole document.
type Reader interface {
	Read(path string) (Content, error)
}

// Load reads path with r and returns its text. The bytes are copied out of
// the reader's storage, so the result outlives any memory map.
func Load(r Reader, path string) (string, error) {
	c, err := r.Read(path)
	if err != nil {
		return "", err
	}
	defer c.Release()

	if IsBinary(c.Data) {
		return "", fmt.Errorf("%s: %w", path, ErrBinary)
	}
	return string(c.Data), nil
}

// IsBinary reports whether data looks binary, the way GNU grep decides:
// a NUL byte within the first 8KB.
func IsBinary(data []byte) bool {
	return bytes.IndexByte(data[:min(len(data), binarySniffLen)], 0) >= 0
}
