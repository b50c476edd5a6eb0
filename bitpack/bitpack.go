// Package bitpack packs strings of '0' and '1' characters into bytes.
package bitpack

import (
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Pack writes digits to w as bits, eight to a byte, first digit in the most
// significant bit.  The final byte is padded with zero bits.  It returns the
// number of bytes written.
func Pack(w io.Writer, digits string) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bitio.NewWriter(cw)
	for index := 0; index < len(digits); index++ {
		var bit bool
		switch digits[index] {
		case '0':
		case '1':
			bit = true
		default:
			return cw.n, fmt.Errorf("invalid digit %q at offset %d", digits[index], index)
		}
		if err := bw.WriteBool(bit); err != nil {
			return cw.n, err
		}
	}
	err := bw.Close()
	return cw.n, err
}

// PackedLen returns the number of bytes Pack writes for numDigits digits.
func PackedLen(numDigits int) int {
	return (numDigits + 7) / 8
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
