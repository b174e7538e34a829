package hufftext

import "fmt"

// Compress encodes text into a HUFF1 container string. Empty text yields "".
//
// The result is deterministic: the same text always produces the same
// container. Compression cannot fail; invalid UTF-8 in text is replaced by
// U+FFFD before encoding.
func Compress(text string) string {
	if text == "" {
		return ""
	}
	syms := toSymbols(text)
	root := buildTree(newCounters(syms))
	codes := buildCodes(root)
	payload, padding, _ := pack(syms, codes)
	return Container{
		Padding: padding,
		Tree:    marshalTree(root),
		Payload: payload,
	}.String()
}

// Decompress decodes a HUFF1 container back into the original text. Empty
// input yields "". Errors match ErrInvalidFormat, ErrCorruptedData,
// ErrMalformedTree or ErrTruncatedStream with errors.Is.
func Decompress(blob string) (string, error) {
	if blob == "" {
		return "", nil
	}
	c, err := ParseContainer(blob)
	if err != nil {
		return "", err
	}
	root, err := parseTree(c.Tree)
	if err != nil {
		return "", err
	}
	syms, err := decodeSymbols(root, c.Payload, c.Padding)
	if err != nil {
		return "", fmt.Errorf("decode payload: %w", err)
	}
	return fromSymbols(syms), nil
}
