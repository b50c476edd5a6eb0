package bitpack

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack(t *testing.T) {
	type testRow struct {
		name   string
		digits string
		expect []byte
	}

	testData := [...]testRow{
		{name: "empty", digits: "", expect: nil},
		{name: "single-zero", digits: "0", expect: []byte{0x00}},
		{name: "single-one", digits: "1", expect: []byte{0x80}},
		{name: "full-byte", digits: "10100101", expect: []byte{0xa5}},
		{name: "padded", digits: "111111111", expect: []byte{0xff, 0x80}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := Pack(&buf, row.digits)
			require.NoError(t, err)
			assert.Equal(t, int64(len(row.expect)), n)
			assert.Equal(t, row.expect, buf.Bytes())
			assert.Equal(t, PackedLen(len(row.digits)), buf.Len())
		})
	}
}

func TestPack_InvalidDigit(t *testing.T) {
	var buf bytes.Buffer
	_, err := Pack(&buf, "0120")
	assert.EqualError(t, err, "invalid digit '2' at offset 2")
}
