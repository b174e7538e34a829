package hufftext

import (
	"bytes"

	"github.com/icza/bitio"
)

// pack writes the code of every symbol, in input order, most significant bit
// first, then pads the last byte with zero bits. It returns the packed bytes,
// the number of pad bits (0..7) and the number of code bits written.
//
// Writes go to a bytes.Buffer, which never fails, so bitio errors are not
// reachable here.
func pack(syms []symbol, codes codeTable) (payload []byte, padding uint8, bits int) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, s := range syms {
		c := codes[s]
		w.TryWriteBits(c.bits, c.len)
		bits += int(c.len)
	}
	padding = w.TryAlign()
	if w.TryError != nil {
		panic("hufftext: bit writer failed on in-memory buffer: " + w.TryError.Error())
	}
	return buf.Bytes(), padding, bits
}

// bitSource yields the first n bits of a packed payload.
type bitSource struct {
	r    *bitio.Reader
	left int
}

func newBitSource(payload []byte, padding uint8) bitSource {
	return bitSource{
		r:    bitio.NewReader(bytes.NewReader(payload)),
		left: 8*len(payload) - int(padding),
	}
}

// next returns the next bit; ok is false once all bits are consumed.
func (src *bitSource) next() (bit, ok bool) {
	if src.left <= 0 {
		return false, false
	}
	src.left--
	return src.r.TryReadBool(), src.r.TryError == nil
}
