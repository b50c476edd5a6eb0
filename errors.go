package textcompress

import (
	"fmt"
)

// MissingCodeError is returned by HuffmanEncode when the text contains a
// symbol that the CodeTable has no code for.  This means the table was built
// from a different text.
type MissingCodeError struct {
	Symbol Symbol

	// Offset is the index of the first occurrence of Symbol in the text.
	Offset int
}

func (err *MissingCodeError) Error() string {
	return fmt.Sprintf("no Huffman code for symbol %s at offset %d", err.Symbol, err.Offset)
}

// EmptyInputError is returned by operations that need at least one symbol.
type EmptyInputError struct {
	Op string
}

func (err *EmptyInputError) Error() string {
	if err.Op == "" {
		return "empty input"
	}
	return err.Op + ": empty input"
}

// Is makes errors.Is(err, ErrEmptyInput) match any *EmptyInputError.
func (err *EmptyInputError) Is(target error) bool {
	_, ok := target.(*EmptyInputError)
	return ok
}

// ErrEmptyInput is a sentinel for use with errors.Is.
var ErrEmptyInput error = &EmptyInputError{}

var (
	_ error = (*MissingCodeError)(nil)
	_ error = (*EmptyInputError)(nil)
)
