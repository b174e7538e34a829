package hufftext

import "errors"

var (
	// ErrInvalidFormat indicates the input does not start with the HUFF1 tag.
	ErrInvalidFormat = errors.New("hufftext: invalid compression format")
	// ErrCorruptedData indicates a container whose fields or payload cannot be decoded.
	ErrCorruptedData = errors.New("hufftext: corrupted compression data")
	// ErrMalformedTree indicates a serialized tree that does not describe a complete tree.
	ErrMalformedTree = errors.New("hufftext: malformed huffman tree")
	// ErrTruncatedStream indicates a payload that ends in the middle of a code.
	ErrTruncatedStream = errors.New("hufftext: truncated bit stream")
)
