package textcompress

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressString(t *testing.T) {
	result, err := CompressString("aaaa")
	require.NoError(t, err)
	assert.Equal(t, "a4", result.RunLength)
	assert.Equal(t, "0000", result.Huffman)
	assert.Equal(t, uint64(4), result.Frequencies.Count('a'))

	hc, ok := result.Codes.Lookup('a')
	require.True(t, ok)
	assert.Equal(t, "0", hc.Digits())
}

func TestCompressString_FreshTablePerCall(t *testing.T) {
	first, err := CompressString("aaabbc")
	require.NoError(t, err)
	assert.Equal(t, "a3b2c1", first.RunLength)

	second, err := CompressString("xyz")
	require.NoError(t, err)
	assert.Equal(t, 3, second.Codes.Len())
	_, stale := second.Codes.Lookup('a')
	assert.False(t, stale)

	_, err = HuffmanEncode(Symbols("xyz"), first.Codes)
	var mce *MissingCodeError
	assert.True(t, errors.As(err, &mce))
}

func TestCompressString_Empty(t *testing.T) {
	_, err := CompressString("")
	assert.True(t, errors.Is(err, ErrEmptyInput))
}
