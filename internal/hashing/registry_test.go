package hashing

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHasher struct {
	name string
}

func (s *stubHasher) Name() string                    { return s.name }
func (s *stubHasher) Description() string             { return "stub" }
func (s *stubHasher) HexLength() int                  { return 8 }
func (s *stubHasher) Sum(_ io.Reader) (string, error) { return "deadbeef", nil }

func TestRegistryLookup(t *testing.T) {
	Register("stub-b", &stubHasher{name: "stub-b"})
	Register("stub-a", &stubHasher{name: "stub-a"})

	hasher, err := GetHasher("stub-a")
	require.NoError(t, err)
	assert.Equal(t, "stub-a", hasher.Name())

	assert.True(t, Supported("stub-b"))
	assert.False(t, Supported("nope"))

	_, err = GetHasher("nope")
	assert.Error(t, err)
}

func TestListSupportedAlgorithmsSorted(t *testing.T) {
	Register("stub-b", &stubHasher{name: "stub-b"})
	Register("stub-a", &stubHasher{name: "stub-a"})

	listing := ListSupportedAlgorithms()
	require.NotEmpty(t, listing)
	for i := 1; i < len(listing); i++ {
		assert.Less(t, listing[i-1].Name, listing[i].Name)
	}
}
