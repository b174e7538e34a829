package hufftext

import (
	"strconv"
	"unicode/utf16"
)

// Core constants for the HUFF1 container and tree header
const (
	formatTag      = "HUFF1"
	fieldSeparator = ":"
	containerField = 5 // tag, padding, tree length, tree, payload

	markerInternal = '0'
	markerLeaf     = '1'
	symbolDigits   = 4 // hex digits per leaf symbol (16 bits)

	maxPadding = 7
	maxPayload = 0xFF // highest character allowed in the payload field
)

// symbol is one UTF-16 code unit. Surrogate pairs are two symbols; they are
// never recombined into a code point.
type symbol uint16

// toSymbols splits s into UTF-16 code units. Invalid UTF-8 sequences become
// U+FFFD.
func toSymbols(s string) []symbol {
	units := utf16.Encode([]rune(s))
	out := make([]symbol, len(units))
	for i, u := range units {
		out[i] = symbol(u)
	}
	return out
}

// fromSymbols joins UTF-16 code units back into a Go string.
func fromSymbols(syms []symbol) string {
	units := make([]uint16, len(syms))
	for i, s := range syms {
		units[i] = uint16(s)
	}
	return string(utf16.Decode(units))
}

// unitCount returns the number of UTF-16 code units needed to represent s.
func unitCount(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// appendHex appends the symbol as 4 lowercase, zero-padded hex digits.
func (s symbol) appendHex(dst []byte) []byte {
	const hexDigits = "0123456789abcdef"
	return append(dst,
		hexDigits[s>>12&0xF],
		hexDigits[s>>8&0xF],
		hexDigits[s>>4&0xF],
		hexDigits[s&0xF],
	)
}

// parseSymbol reads exactly 4 hex digits of either case.
func parseSymbol(digits string) (symbol, bool) {
	if len(digits) != symbolDigits {
		return 0, false
	}
	v, err := strconv.ParseUint(digits, 16, 16)
	if err != nil {
		return 0, false
	}
	return symbol(v), true
}
