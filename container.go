package hufftext

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Container is the parsed form of a HUFF1 string:
//
//	HUFF1:<padding>:<tree length>:<tree>:<payload>
//
// Numeric fields are decimal. The payload carries one packed byte per
// character (byte b is the character U+00b), so it may contain ':' itself;
// everything after the fourth separator belongs to the payload.
type Container struct {
	Padding uint8  // zero bits appended to the last payload byte (0..7)
	Tree    string // serialized Huffman tree
	Payload []byte // packed code bits
}

// String assembles the container text.
func (c Container) String() string {
	var b strings.Builder
	b.Grow(len(formatTag) + len(c.Tree) + 2*len(c.Payload) + 16)
	b.WriteString(formatTag)
	b.WriteString(fieldSeparator)
	b.WriteString(strconv.Itoa(int(c.Padding)))
	b.WriteString(fieldSeparator)
	b.WriteString(strconv.Itoa(len(c.Tree)))
	b.WriteString(fieldSeparator)
	b.WriteString(c.Tree)
	b.WriteString(fieldSeparator)
	for _, p := range c.Payload {
		b.WriteRune(rune(p))
	}
	return b.String()
}

// WriteTo writes the container text to w.
func (c Container) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.String())
	return int64(n), err
}

// MarshalText implements encoding.TextMarshaler.
func (c Container) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Container) UnmarshalText(text []byte) error {
	parsed, err := ParseContainer(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseContainer splits a HUFF1 string into its fields. It checks field
// syntax only; the tree and payload are decoded by Decompress.
func ParseContainer(blob string) (Container, error) {
	parts := strings.SplitN(blob, fieldSeparator, containerField)
	if parts[0] != formatTag {
		return Container{}, ErrInvalidFormat
	}
	if len(parts) < containerField {
		return Container{}, fmt.Errorf("%w: %d of %d fields", ErrCorruptedData, len(parts), containerField)
	}

	padding, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil || padding > maxPadding {
		return Container{}, fmt.Errorf("%w: bad padding %q", ErrCorruptedData, parts[1])
	}
	treeLen, err := strconv.Atoi(parts[2])
	if err != nil {
		return Container{}, fmt.Errorf("%w: bad tree length %q", ErrCorruptedData, parts[2])
	}
	if treeLen != len(parts[3]) {
		return Container{}, fmt.Errorf("%w: tree length %d does not match %d-character tree", ErrCorruptedData, treeLen, len(parts[3]))
	}

	payload, err := unpackPayload(parts[4])
	if err != nil {
		return Container{}, err
	}
	return Container{
		Padding: uint8(padding),
		Tree:    parts[3],
		Payload: payload,
	}, nil
}

// unpackPayload turns the payload characters back into bytes.
func unpackPayload(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i, r := range s {
		// invalid UTF-8 decodes as U+FFFD and is rejected here too
		if r > maxPayload {
			return nil, fmt.Errorf("%w: payload character %U at offset %d", ErrCorruptedData, r, i)
		}
		out = append(out, byte(r))
	}
	return out, nil
}
