package blake3

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownVector(t *testing.T) {
	h := &Blake3Hash{}
	digest, err := h.Sum(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Equal(t, "af1349b9f5f9a1a6a0404dee35452e98065b0b396a90b48fbd5cda567de32365", digest)
}

func TestDeterminismAndFormat(t *testing.T) {
	h := &Blake3Hash{}
	input := strings.Repeat("%PDF-1.4\n", 20000) // spans multiple chunks

	first, err := h.Sum(strings.NewReader(input))
	require.NoError(t, err)
	second, err := h.Sum(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, h.HexLength())
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]+$`), first)
}
