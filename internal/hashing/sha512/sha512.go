package sha512

import (
	"crypto/sha512"
	"encoding/hex"
	"io"

	"pdfhash/internal/hashing"
)

type SHA512Hash struct{}

const AlgorithmSHA512 = "sha512"

func init() {
	hashing.Register(AlgorithmSHA512, &SHA512Hash{})
}

func (h *SHA512Hash) Name() string {
	return AlgorithmSHA512
}

func (h *SHA512Hash) Description() string {
	return "SHA-512 is a cryptographic hash function that produces a fixed-size 512-bit (64-byte) hash value"
}

func (h *SHA512Hash) HexLength() int {
	return sha512.Size * 2
}

func (h *SHA512Hash) Sum(reader io.Reader) (string, error) {
	digest, err := hashing.StreamSum(sha512.New(), reader)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(digest), nil
}
