package hufftext

// counters is the frequency table of one input.
//
// Counts are kept in a map keyed by symbol. The first occurrence of each
// symbol is also appended to order, which is the iteration order used for
// tree construction: two runs over the same text always feed the heap in the
// same sequence, so equal weights break the same way.
type counters struct {
	count map[symbol]uint64
	order []symbol // distinct symbols in first-seen order
	total uint64
}

// newCounters scans syms once and returns their frequency table.
func newCounters(syms []symbol) *counters {
	c := &counters{count: make(map[symbol]uint64)}
	for _, s := range syms {
		c.inc(s)
	}
	return c
}

// inc increments the frequency of s.
func (c *counters) inc(s symbol) {
	n, seen := c.count[s]
	if !seen {
		c.order = append(c.order, s)
	}
	c.count[s] = n + 1
	c.total++
}

// distinct returns the alphabet size.
func (c *counters) distinct() int { return len(c.order) }

// get returns the frequency of s (0 if never seen).
func (c *counters) get(s symbol) uint64 { return c.count[s] }
