package textcompress

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// maxBitsPerCode is the longest Code that can be represented.  Reaching it
// would take a Fibonacci-shaped frequency distribution over far more text
// than fits in memory.
const maxBitsPerCode = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit of the
	// sequence is the most significant of the Size valid bits.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code with one more bit added at the end.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < maxBitsPerCode, "Code too long: %d bits", hc.Size)
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | uint64(bit&1)}
}

// HasPrefix reports whether prefix is a (not necessarily proper) prefix of
// this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// Digits returns the bits as a string of '0' and '1' characters.
func (hc Code) Digits() string {
	if hc.Size == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	hc.appendDigits(&sb)
	return sb.String()
}

func (hc Code) appendDigits(sb *strings.Builder) {
	for i := int(hc.Size) - 1; i >= 0; i-- {
		if (hc.Bits>>uint(i))&1 == 0 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.Digits())
}

var _ fmt.Stringer = Code{}

// type byCode {{{

type byCode []Code

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

// Less orders codes lexicographically by digit, so that a code sorts
// immediately before every code it is a prefix of.
func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	n := a.Size
	if b.Size < n {
		n = b.Size
	}
	ab := a.Bits >> (a.Size - n)
	bb := b.Bits >> (b.Size - n)
	if ab != bb {
		return ab < bb
	}
	return a.Size < b.Size
}

// }}}
