package hufftext

import "fmt"

// decodeSymbols walks the tree bit by bit over the payload, minus its
// trailing pad bits, restarting at the root after every leaf.
func decodeSymbols(root *node, payload []byte, padding uint8) ([]symbol, error) {
	if int(padding) > 8*len(payload) {
		return nil, fmt.Errorf("%w: %d pad bits exceed %d-byte payload", ErrCorruptedData, padding, len(payload))
	}

	var (
		src = newBitSource(payload, padding)
		out = make([]symbol, 0, len(payload)*2)
		cur = root
		pos int
	)
	for {
		bit, ok := src.next()
		if !ok {
			break
		}
		next := cur.child(bit)
		if next == nil {
			return nil, fmt.Errorf("%w: bit %d selects a missing branch", ErrCorruptedData, pos)
		}
		pos++
		if next.leaf {
			out = append(out, next.sym)
			cur = root
			continue
		}
		cur = next
	}
	if cur != root {
		return nil, fmt.Errorf("%w: stream ends inside a code after %d symbols", ErrTruncatedStream, len(out))
	}
	return out, nil
}
