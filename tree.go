package hufftext

import (
	"container/heap"
)

// node is a Huffman tree node. Leaves are tagged explicitly so that a leaf
// holding U+0000 is never mistaken for an internal node.
//
// Internal nodes always have two children, except the synthetic root built
// for a one-symbol alphabet, which only has a left leaf.
type node struct {
	weight      uint64
	seq         int // creation order, breaks weight ties
	sym         symbol
	leaf        bool
	left, right *node
}

func newLeaf(s symbol, weight uint64, seq int) *node {
	return &node{weight: weight, seq: seq, sym: s, leaf: true}
}

func newInternal(left, right *node, seq int) *node {
	n := &node{seq: seq, left: left, right: right}
	if left != nil {
		n.weight += left.weight
	}
	if right != nil {
		n.weight += right.weight
	}
	return n
}

// child returns the left child for bit 0 and the right child for bit 1.
func (n *node) child(bit bool) *node {
	if bit {
		return n.right
	}
	return n.left
}

// nodeHeap is a min-heap of nodes ordered by (weight, seq).
// Among equal weights the node created first is popped first.
type nodeHeap []*node

// Len implements heap.Interface and returns the number of elements.
func (h nodeHeap) Len() int { return len(h) }

// Less implements heap.Interface ordering by ascending weight, breaking ties
// by ascending creation sequence.
func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}

// Swap implements heap.Interface swap.
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push implements heap.Interface push.
func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*node)) }

// Pop implements heap.Interface pop.
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// buildTree builds the Huffman tree for a frequency table. Leaves enter the
// queue in first-seen order; each merge takes the two smallest nodes, the
// first one popped becoming the left child. Returns nil for an empty table.
func buildTree(c *counters) *node {
	switch c.distinct() {
	case 0:
		return nil
	case 1:
		s := c.order[0]
		return newInternal(newLeaf(s, c.get(s), 0), nil, 1)
	}

	h := make(nodeHeap, 0, c.distinct())
	seq := 0
	for _, s := range c.order {
		h = append(h, newLeaf(s, c.get(s), seq))
		seq++
	}
	heap.Init(&h)

	for h.Len() > 1 {
		left := heap.Pop(&h).(*node)
		right := heap.Pop(&h).(*node)
		heap.Push(&h, newInternal(left, right, seq))
		seq++
	}
	return heap.Pop(&h).(*node)
}
