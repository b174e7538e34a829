package hufftext

import "strings"

// codeword is a prefix code stored as its bit value and length, most
// significant bit first.
//
// 64 bits are enough: a code longer than that needs a total symbol weight
// above Fib(66), far beyond any string that fits in memory.
type codeword struct {
	bits uint64
	len  uint8
}

// String renders the code as a string of '0' and '1'.
func (c codeword) String() string {
	var b strings.Builder
	b.Grow(int(c.len))
	for i := int(c.len) - 1; i >= 0; i-- {
		if c.bits>>uint(i)&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// codeTable maps every leaf symbol to its codeword.
type codeTable map[symbol]codeword

// buildCodes walks the tree depth first, appending 0 on the left and 1 on
// the right. A leaf reached with an empty path gets the code "0".
func buildCodes(root *node) codeTable {
	codes := make(codeTable)
	if root == nil {
		return codes
	}
	var walk func(n *node, bits uint64, length uint8)
	walk = func(n *node, bits uint64, length uint8) {
		if n == nil {
			return
		}
		if n.leaf {
			if length == 0 {
				codes[n.sym] = codeword{bits: 0, len: 1}
			} else {
				codes[n.sym] = codeword{bits: bits, len: length}
			}
			return
		}
		walk(n.left, bits<<1, length+1)
		walk(n.right, bits<<1|1, length+1)
	}
	walk(root, 0, 0)
	return codes
}

// encodedBits returns the length of the packed message before padding.
func (codes codeTable) encodedBits(c *counters) int {
	var total int
	for _, s := range c.order {
		total += int(codes[s].len) * int(c.get(s))
	}
	return total
}
