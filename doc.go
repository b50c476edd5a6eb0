// Package textcompress compresses in-memory text with two independent
// encoders: a Huffman prefix coder and a simple run-length encoder.
//
// The Huffman path is three steps, each a pure function of its input:
//
//     ft := textcompress.Analyze(text)
//     ct := textcompress.BuildCodeTable(ft)
//     bits, err := textcompress.HuffmanEncode(text, ct)
//
// A CodeTable must be built from the same text it is used to encode.  The
// package keeps no state between calls, so nothing is cached for you.
//
// RunLengthEncode is independent of the above.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
package textcompress
