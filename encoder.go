package textcompress

import (
	"strings"
)

// HuffmanEncode replaces each symbol of text with its code from ct and
// concatenates the results, with no delimiters, as a string of '0' and '1'
// characters.
//
// ct must have been built from this text's FrequencyTable.  If any symbol has
// no code, HuffmanEncode returns a *MissingCodeError and no output.
//
func HuffmanEncode(text []Symbol, ct CodeTable) (string, error) {
	var sb strings.Builder
	sb.Grow(len(text) * int(ct.maxSize+1) / 2)
	for index, symbol := range text {
		hc, found := ct.codes[symbol]
		if !found {
			return "", &MissingCodeError{Symbol: symbol, Offset: index}
		}
		hc.appendDigits(&sb)
	}
	return sb.String(), nil
}
