package textcompress

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// FrequencyTable maps each distinct Symbol of a text to the number of times
// it occurs.  The zero value is an empty table.  A FrequencyTable is never
// modified after Analyze returns it.
type FrequencyTable struct {
	counts map[Symbol]uint64
	total  uint64
}

// Analyze counts the occurrences of each distinct Symbol in text.
func Analyze(text []Symbol) FrequencyTable {
	counts := make(map[Symbol]uint64)
	for _, symbol := range text {
		counts[symbol]++
	}
	return FrequencyTable{counts: counts, total: uint64(len(text))}
}

// AnalyzeString is shorthand for Analyze(Symbols(s)).
func AnalyzeString(s string) FrequencyTable {
	return Analyze(Symbols(s))
}

// Count returns the number of occurrences of symbol, or 0 if it never occurs.
func (ft FrequencyTable) Count(symbol Symbol) uint64 {
	return ft.counts[symbol]
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable) Len() int {
	return len(ft.counts)
}

// Total returns the sum of all counts, i.e. the length of the analyzed text.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// FixedWidthSize returns the number of bits needed to encode the text with
// the shortest fixed-width code for its alphabet.
func (ft FrequencyTable) FixedWidthSize() uint64 {
	return ceilLog2(uint64(len(ft.counts))) * ft.total
}

// Symbols returns the distinct symbols in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(ft.counts))
	for symbol := range ft.counts {
		out = append(out, symbol)
	}
	sort.Sort(out)
	return out
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, symbol := range ft.Symbols() {
		fmt.Fprintf(&buf, "\tCount(%s) = %d\n", symbol, ft.counts[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
