package textcompress

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Symbol represents a single character of the input text.
//
// Symbols produced by Symbols are always valid Unicode scalar values.  Other
// values (surrogates, negatives, anything past U+10FFFF) are still counted and
// coded as distinct symbols, but RunLengthEncode cannot write them as text and
// emits U+FFFD in their place.
//
type Symbol rune

// String returns the Go-quoted form of the symbol, e.g. 'a' or '\n', or
// U+XXXX if the symbol is not a valid Unicode scalar value.
func (s Symbol) String() string {
	if !utf8.ValidRune(rune(s)) {
		return s.codePoint()
	}
	return strconv.QuoteRune(rune(s))
}

// key is the symbol as a one-character string, or U+XXXX if it has no UTF-8
// encoding.
func (s Symbol) key() string {
	if !utf8.ValidRune(rune(s)) {
		return s.codePoint()
	}
	return string(rune(s))
}

func (s Symbol) codePoint() string {
	if s < 0 {
		return fmt.Sprintf("U-%04X", -int64(s))
	}
	return fmt.Sprintf("U+%04X", int64(s))
}

// Symbols converts a string to the sequence of Symbols it contains.  Invalid
// UTF-8 is decoded as U+FFFD, one per bad byte.
func Symbols(s string) []Symbol {
	runes := []rune(s)
	out := make([]Symbol, len(runes))
	for i, r := range runes {
		out[i] = Symbol(r)
	}
	return out
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

// }}}
