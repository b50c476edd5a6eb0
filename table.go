package textcompress

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// CodeTable maps each Symbol of an alphabet to its Huffman Code.  The codes
// are prefix-free.  A CodeTable is only meaningful for the text whose
// FrequencyTable it was built from.
type CodeTable struct {
	codes   map[Symbol]Code
	minSize byte
	maxSize byte
}

func newCodeTable(codes map[Symbol]Code) CodeTable {
	ct := CodeTable{codes: codes}
	first := true
	for _, hc := range codes {
		if first {
			first = false
			ct.minSize, ct.maxSize = hc.Size, hc.Size
		} else if ct.minSize > hc.Size {
			ct.minSize = hc.Size
		} else if ct.maxSize < hc.Size {
			ct.maxSize = hc.Size
		}
	}
	return ct
}

// Lookup returns the Code for symbol.  ok is false if symbol is not in the
// alphabet.
func (ct CodeTable) Lookup(symbol Symbol) (hc Code, ok bool) {
	hc, ok = ct.codes[symbol]
	return
}

// Len returns the number of symbols in the alphabet.
func (ct CodeTable) Len() int {
	return len(ct.codes)
}

// MinSize is the bit length of the shortest code.
func (ct CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable) MaxSize() byte {
	return ct.maxSize
}

// Symbols returns the alphabet in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(ct.codes))
	for symbol := range ct.codes {
		out = append(out, symbol)
	}
	sort.Sort(out)
	return out
}

// SizeBySymbol returns the bit length of each symbol's code.  Together with
// Canonical, this is enough to rebuild an equivalent code elsewhere.
func (ct CodeTable) SizeBySymbol() map[Symbol]byte {
	out := make(map[Symbol]byte, len(ct.codes))
	for symbol, hc := range ct.codes {
		out[symbol] = hc.Size
	}
	return out
}

// EncodedSize returns the number of bits HuffmanEncode will produce for a
// text with frequencies ft.  Symbols missing from the table count as zero.
func (ct CodeTable) EncodedSize(ft FrequencyTable) uint64 {
	var sum uint64
	for symbol, count := range ft.counts {
		sum += uint64(ct.codes[symbol].Size) * count
	}
	return sum
}

// Validate checks that the codes are non-empty and prefix-free.
func (ct CodeTable) Validate() error {
	sorted := make(byCode, 0, len(ct.codes))
	owner := make(map[Code]Symbol, len(ct.codes))
	for symbol, hc := range ct.codes {
		if hc.Size == 0 {
			return fmt.Errorf("empty code for symbol %s", symbol)
		}
		if other, found := owner[hc]; found {
			return fmt.Errorf("symbols %s and %s share code %s", other, symbol, hc)
		}
		owner[hc] = symbol
		sorted = append(sorted, hc)
	}
	sort.Sort(sorted)

	// After sorting, any code that is a prefix of another sits directly in
	// front of some code it prefixes.
	for i := 1; i < len(sorted); i++ {
		a, b := sorted[i-1], sorted[i]
		if b.HasPrefix(a) {
			return fmt.Errorf("code %s for symbol %s is a prefix of code %s for symbol %s", a, owner[a], b, owner[b])
		}
	}
	return nil
}

// Canonical returns the canonical Huffman code with the same bit lengths as
// this one, per the algorithm in RFC 1951 Section 3.2.2.  Symbols are ordered
// by (size, symbol) and assigned consecutive codes.
func (ct CodeTable) Canonical() CodeTable {
	if len(ct.codes) == 0 {
		return ct
	}

	// Step 1: sort the symbols by (size, symbol) ascending.

	sorted := make(bySize, 0, len(ct.codes))
	for symbol, hc := range ct.codes {
		sorted = append(sorted, symbolAndSize{symbol, hc.Size})
	}
	sort.Sort(sorted)

	// Step 2: assign the codes sequentially, per the algorithm detailed at
	// <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.

	codes := make(map[Symbol]Code, len(sorted))
	lastSize := sorted[0].size
	nextCode := uint64(0)
	for _, item := range sorted {
		if item.size > lastSize {
			nextCode <<= (item.size - lastSize)
			lastSize = item.size
		}
		codes[item.symbol] = MakeCode(item.size, nextCode)
		nextCode++
	}

	return CodeTable{codes: codes, minSize: ct.minSize, maxSize: ct.maxSize}
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, symbol := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tLookup(%s) = %s\n", symbol, ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (ct CodeTable) DebugString() string {
	var buf bytes.Buffer
	_, _ = ct.Dump(&buf)
	return buf.String()
}

// String returns a brief description of the table.
func (ct CodeTable) String() string {
	if len(ct.codes) == 0 {
		return "(empty Huffman code table)"
	}
	return fmt.Sprintf("(Huffman code table with %d symbols, with coded lengths of %d .. %d bits)", len(ct.codes), ct.minSize, ct.maxSize)
}

// MarshalJSON renders the table as a JSON object from each symbol to its
// code digits.  A symbol is keyed as a one-character string, or as "U+XXXX"
// if it is not a valid Unicode scalar value.  This is meant for inspection.
func (ct CodeTable) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(ct.codes))
	for symbol, hc := range ct.codes {
		m[symbol.key()] = hc.Digits()
	}
	return json.Marshal(m)
}

var (
	_ fmt.Stringer   = CodeTable{}
	_ json.Marshaler = CodeTable{}
)

// type symbolAndSize + type bySize {{{

type symbolAndSize struct {
	symbol Symbol
	size   byte
}

type bySize []symbolAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.symbol < b.symbol
}

var _ sort.Interface = bySize(nil)

// }}}
