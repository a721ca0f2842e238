package entropy

import (
	"crypto/rand"
	"io"
)

// ReadFunc fills b with random bytes. Override in tests for determinism.
// The default reads crypto/rand.Reader per call, which is safe for
// concurrent use and keeps no shared generator state.
var ReadFunc = func(b []byte) error {
	_, err := io.ReadFull(rand.Reader, b)
	return err
}

// Read is a thin wrapper around ReadFunc.
func Read(b []byte) error { return ReadFunc(b) }
