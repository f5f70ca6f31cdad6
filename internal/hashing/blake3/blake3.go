package blake3

import (
	"encoding/hex"
	"io"

	"github.com/zeebo/blake3"

	"pdfhash/internal/hashing"
)

type Blake3Hash struct{}

const AlgorithmBlake3 = "blake3"

func init() {
	hashing.Register(AlgorithmBlake3, &Blake3Hash{})
}

func (h *Blake3Hash) Name() string {
	return AlgorithmBlake3
}

func (h *Blake3Hash) Description() string {
	return "BLAKE3 is a fast cryptographic hash function that produces a fixed-size 256-bit (32-byte) hash value"
}

func (h *Blake3Hash) HexLength() int {
	return 64
}

func (h *Blake3Hash) Sum(reader io.Reader) (string, error) {
	digest, err := hashing.StreamSum(blake3.New(), reader)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(digest), nil
}
