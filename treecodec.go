package hufftext

import "fmt"

// marshalTree serializes the tree in pre-order: '0' for an internal node,
// '1' plus 4 hex digits for a leaf. A missing child (the right side of a
// one-symbol root) emits nothing.
func marshalTree(root *node) string {
	if root == nil {
		return ""
	}
	var buf []byte
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		if n.leaf {
			buf = append(buf, markerLeaf)
			buf = n.sym.appendHex(buf)
			return
		}
		buf = append(buf, markerInternal)
		walk(n.left)
		walk(n.right)
	}
	walk(root)
	return string(buf)
}

// parseTree rebuilds a tree from its marker stream. Internal nodes waiting
// for children are kept on an explicit stack, so hostile input cannot drive
// recursion depth. Reconstructed weights are zero.
func parseTree(s string) (*node, error) {
	var (
		root  *node
		stack []*node // internal nodes with a free child slot, innermost last
		pos   int
	)

	for pos < len(s) {
		var n *node
		switch s[pos] {
		case markerInternal:
			n = &node{}
			pos++
		case markerLeaf:
			end := pos + 1 + symbolDigits
			if end > len(s) {
				return nil, fmt.Errorf("%w: leaf at offset %d lacks %d hex digits", ErrMalformedTree, pos, symbolDigits)
			}
			sym, ok := parseSymbol(s[pos+1 : end])
			if !ok {
				return nil, fmt.Errorf("%w: bad leaf symbol %q at offset %d", ErrMalformedTree, s[pos+1:end], pos)
			}
			n = &node{sym: sym, leaf: true}
			pos = end
		default:
			return nil, fmt.Errorf("%w: unexpected marker %q at offset %d", ErrMalformedTree, s[pos], pos)
		}

		if root == nil {
			root = n
		} else {
			parent := stack[len(stack)-1]
			if parent.left == nil {
				parent.left = n
			} else {
				parent.right = n
				stack = stack[:len(stack)-1]
			}
		}
		if !n.leaf {
			stack = append(stack, n)
		}
		if len(stack) == 0 {
			break
		}
	}

	switch {
	case root == nil:
		return nil, fmt.Errorf("%w: empty tree", ErrMalformedTree)
	case root.leaf:
		return nil, fmt.Errorf("%w: root is a leaf", ErrMalformedTree)
	case len(stack) == 1 && stack[0] == root && root.left != nil && root.left.leaf:
		// one-symbol alphabet: the root wraps a single left leaf
	case len(stack) > 0:
		return nil, fmt.Errorf("%w: marker stream ends with %d incomplete nodes", ErrMalformedTree, len(stack))
	}
	if pos != len(s) {
		return nil, fmt.Errorf("%w: %d trailing characters after tree", ErrMalformedTree, len(s)-pos)
	}
	return root, nil
}
