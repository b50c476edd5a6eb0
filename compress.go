package textcompress

// Result holds the output of both encoders over the same text.
type Result struct {
	// Frequencies is the FrequencyTable of the input.
	Frequencies FrequencyTable

	// Codes is the CodeTable the Huffman output was encoded with.  It is
	// needed to invert Huffman.
	Codes CodeTable

	// Huffman is the Huffman-coded bit string.
	Huffman string

	// RunLength is the run-length encoded text.
	RunLength string
}

// CompressString runs both encoders over s.  The CodeTable is built fresh
// from s.  An empty s yields an *EmptyInputError from the run-length encoder.
func CompressString(s string) (Result, error) {
	text := Symbols(s)

	rle, err := RunLengthEncode(text)
	if err != nil {
		return Result{}, err
	}

	ft := Analyze(text)
	ct := BuildCodeTable(ft)
	bits, err := HuffmanEncode(text, ct)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Frequencies: ft,
		Codes:       ct,
		Huffman:     bits,
		RunLength:   rle,
	}, nil
}
