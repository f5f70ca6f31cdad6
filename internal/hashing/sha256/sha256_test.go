package sha256

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexRe = regexp.MustCompile(`^[0-9a-f]+$`)

func TestKnownVectors(t *testing.T) {
	h := &SHA256Hash{}

	cases := []struct {
		name  string
		input []byte
		want  string
	}{
		{"abc", []byte("abc"), "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"empty", nil, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"minimal pdf", []byte("%PDF-1.4\n%%EOF\n"), "14bcd090baf31edba64e9cbd8cdfc15f943344aa72cb3675ad8e91bfcbce03ad"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			digest, err := h.Sum(bytes.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, digest)
		})
	}
}

func TestMultiChunkInput(t *testing.T) {
	// 200000 bytes spans multiple 64 KiB chunks; the streamed digest must
	// match the whole-input reference value.
	h := &SHA256Hash{}
	input := strings.Repeat("a", 200000)
	digest, err := h.Sum(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "2287d207f24a941ff3b56c04c8a25ad56b63e3023207b3bb5b4ac0c9869d74be", digest)
}

func TestDeterminismAndFormat(t *testing.T) {
	h := &SHA256Hash{}
	input := []byte("%PDF-1.7\nsome object stream\n%%EOF\n")

	first, err := h.Sum(bytes.NewReader(input))
	require.NoError(t, err)
	second, err := h.Sum(bytes.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, h.HexLength())
	assert.Regexp(t, hexRe, first)
}
