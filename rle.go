package textcompress

import (
	"strconv"
	"strings"
)

// RunLengthEncode writes each maximal run of identical symbols in text as the
// symbol followed by the decimal length of the run, e.g. "aaabbc" becomes
// "a3b2c1".  There are no separators, so a count followed by a digit symbol
// cannot be told apart when reading the output back.
//
// Symbols that are not valid Unicode scalar values are written as U+FFFD.
//
// An empty text yields an *EmptyInputError.
func RunLengthEncode(text []Symbol) (string, error) {
	if len(text) == 0 {
		return "", &EmptyInputError{Op: "RunLengthEncode"}
	}

	var sb strings.Builder
	var scratch [20]byte
	emit := func(symbol Symbol, count uint64) {
		sb.WriteRune(rune(symbol))
		sb.Write(strconv.AppendUint(scratch[:0], count, 10))
	}

	current := text[0]
	count := uint64(1)
	for _, symbol := range text[1:] {
		if symbol == current {
			count++
			continue
		}
		emit(current, count)
		current = symbol
		count = 1
	}
	emit(current, count)
	return sb.String(), nil
}
