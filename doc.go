// Package hufftext provides lossless text compression with Huffman coding in
// a self-describing text container.
//
// # Overview
//
// Compress counts how often each symbol occurs, builds a Huffman tree from
// those counts, and packs the code of every input symbol into bytes. The tree
// travels with the data, so Decompress needs nothing but the container
// string. Both functions are pure: every table and tree is built per call,
// and any number of calls may run concurrently.
//
// # Symbols
//
// A symbol is one UTF-16 code unit. Characters outside the Basic
// Multilingual Plane are two symbols (a surrogate pair), which keeps the
// container identical to the one produced by UTF-16 based implementations
// of the same format.
//
// # Container Format
//
//	HUFF1:<padding>:<tree length>:<tree>:<payload>
//
//   - padding: number of zero bits appended to the last payload byte (0..7)
//   - tree length: number of characters in the tree field
//   - tree: pre-order markers, '0' for an internal node, '1' followed by
//     4 hex digits for a leaf symbol
//   - payload: packed code bits, one byte per character (U+0000..U+00FF)
//
// The payload may contain ':' so readers take the first four fields
// literally and treat the rest of the string as payload.
//
// # Determinism
//
// Leaves enter the priority queue in order of first appearance, and nodes of
// equal weight leave it in the order they entered. Compressing the same text
// twice therefore yields byte-identical containers.
//
// # Basic Usage
//
//	blob := hufftext.Compress("the quick brown fox")
//	text, err := hufftext.Decompress(blob)
//	if err != nil {
//	    // errors.Is(err, hufftext.ErrTruncatedStream), ...
//	}
//
//	st := hufftext.Stats(text, blob)
//	fmt.Printf("%.1f%% saved\n", st.Savings)
//
// # When NOT to Use It
//
// The container is single shot and fully buffered. Short or high-entropy
// text can grow, because the tree header is stored with every message.
// There is no streaming, no multi-block coding and no binary payload
// support beyond what fits in UTF-8 text.
package hufftext
