package textcompress

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLengthEncode(t *testing.T) {
	type testRow struct {
		input  string
		expect string
	}

	testData := [...]testRow{
		{input: "a", expect: "a1"},
		{input: "aaabbc", expect: "a3b2c1"},
		{input: "abc", expect: "a1b1c1"},
		{input: "aaaaaaaaaaaab", expect: "a12b1"},
		{input: "ééx", expect: "é2x1"},
		{input: "\n\n", expect: "\n2"},
		{input: "aba", expect: "a1b1a1"},
	}
	for _, row := range testData {
		t.Run(strconv.Quote(row.input), func(t *testing.T) {
			actual, err := RunLengthEncode(Symbols(row.input))
			if err != nil {
				t.Fatalf("RunLengthEncode failed: %v", err)
			}
			if row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
		})
	}
}

func TestRunLengthEncode_Empty(t *testing.T) {
	for _, text := range [][]Symbol{nil, {}, Symbols("")} {
		actual, err := RunLengthEncode(text)
		assert.Equal(t, "", actual)
		assert.True(t, errors.Is(err, ErrEmptyInput))

		var eie *EmptyInputError
		require.True(t, errors.As(err, &eie))
		assert.Equal(t, "RunLengthEncode", eie.Op)
		assert.EqualError(t, err, "RunLengthEncode: empty input")
	}
}

func TestRunLengthEncode_RoundTrip(t *testing.T) {
	for _, input := range testTexts {
		text := Symbols(input)
		if hasDigit(text) {
			continue
		}
		encoded, err := RunLengthEncode(text)
		require.NoError(t, err)
		assert.Equal(t, text, expandRunLength(t, encoded), "input %q", input)
	}
}

func hasDigit(text []Symbol) bool {
	for _, symbol := range text {
		if symbol >= '0' && symbol <= '9' {
			return true
		}
	}
	return false
}

// expandRunLength reads each symbol followed by its decimal count.
func expandRunLength(t *testing.T, encoded string) []Symbol {
	t.Helper()
	in := []rune(encoded)
	var out []Symbol
	for i := 0; i < len(in); {
		symbol := Symbol(in[i])
		i++
		j := i
		for j < len(in) && in[j] >= '0' && in[j] <= '9' {
			j++
		}
		count, err := strconv.Atoi(string(in[i:j]))
		require.NoError(t, err, "bad count at offset %d of %q", i, encoded)
		for k := 0; k < count; k++ {
			out = append(out, symbol)
		}
		i = j
	}
	return out
}

func TestRunLengthEncode_InvalidRune(t *testing.T) {
	actual, err := RunLengthEncode([]Symbol{0xD800, 0xD800, 0xFFFD})
	require.NoError(t, err)
	assert.Equal(t, "�2�1", actual)
}

func TestSymbol_String(t *testing.T) {
	assert.Equal(t, "'a'", Symbol('a').String())
	assert.Equal(t, `'\n'`, Symbol('\n').String())
	assert.Equal(t, "U+D800", Symbol(0xD800).String())
	assert.Equal(t, "U+110000", Symbol(0x110000).String())
	assert.Equal(t, "U-0001", Symbol(-1).String())
}
