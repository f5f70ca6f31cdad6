package hashing

import (
	"hash"
	"io"
)

// chunkSize is the copy-buffer size used when feeding input into a digest
// state. Peak memory per invocation stays at one chunk regardless of the
// payload size the decoder allows.
const chunkSize = 64 * 1024

// Hasher defines the standard interface for all digest algorithms.
type Hasher interface {
	Name() string
	Description() string
	// Sum streams the reader into the digest state and returns the
	// lowercase hexadecimal digest.
	Sum(reader io.Reader) (string, error)
	// HexLength is the length of the digest string Sum produces.
	HexLength() int
}

// StreamSum feeds the reader into h one chunk at a time and returns the raw
// digest bytes. Shared by every registered engine so chunking behaviour is
// identical across algorithms.
func StreamSum(h hash.Hash, reader io.Reader) ([]byte, error) {
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(h, reader, buf); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}
