package hufftext

import (
	"errors"
	"strings"
	"testing"
)

// preorderLeaves lists leaf symbols in pre-order.
func preorderLeaves(n *node) []symbol {
	if n == nil {
		return nil
	}
	if n.leaf {
		return []symbol{n.sym}
	}
	return append(preorderLeaves(n.left), preorderLeaves(n.right)...)
}

func sameShape(a, b *node) bool {
	switch {
	case a == nil || b == nil:
		return a == b
	case a.leaf || b.leaf:
		return a.leaf == b.leaf && a.sym == b.sym
	}
	return sameShape(a.left, b.left) && sameShape(a.right, b.right)
}

func TestMarshalTree(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"aab", "01006210061"},
		{"x", "010078"},
		{"::", "01003a"},
		{"\x00a", "01000010061"},
	}
	for _, tt := range tests {
		got := marshalTree(buildTree(newCounters(toSymbols(tt.input))))
		if got != tt.want {
			t.Fatalf("marshalTree(%q)=%q want %q", tt.input, got, tt.want)
		}
	}
	if marshalTree(nil) != "" {
		t.Fatalf("nil tree must serialize to empty string")
	}
}

func TestTreeRoundtrip(t *testing.T) {
	inputs := []string{
		"x",
		"aaaaaaaa",
		"the quick brown fox",
		"colons: a:b:c::",
		"日本語のテキスト 😀 and\x00nulls",
		strings.Repeat("When in the Course of human events ", 5),
	}
	for _, input := range inputs {
		root := buildTree(newCounters(toSymbols(input)))
		s := marshalTree(root)
		back, err := parseTree(s)
		if err != nil {
			t.Fatalf("%q: parseTree(%q): %v", input, s, err)
		}
		if !sameShape(root, back) {
			t.Fatalf("%q: tree shape differs after roundtrip", input)
		}
		want, got := preorderLeaves(root), preorderLeaves(back)
		if len(want) != len(got) {
			t.Fatalf("%q: %d leaves, want %d", input, len(got), len(want))
		}
		for i := range want {
			if want[i] != got[i] {
				t.Fatalf("%q: leaf %d is %04x want %04x", input, i, got[i], want[i])
			}
		}
		if again := marshalTree(back); again != s {
			t.Fatalf("%q: reserialized tree differs: %q vs %q", input, again, s)
		}
	}
}

func TestParseTreeUpperCaseHex(t *testing.T) {
	root, err := parseTree("0100AB100cd")
	if err != nil {
		t.Fatalf("parseTree: %v", err)
	}
	if root.left.sym != 0x00ab || root.right.sym != 0x00cd {
		t.Fatalf("unexpected leaves %04x %04x", root.left.sym, root.right.sym)
	}
}

func TestParseTreeMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"bare_leaf_root", "10061"},
		{"premature_end", "0"},
		{"missing_right_subtree", "0010061"},
		{"incomplete_inner", "0010061100620"},
		{"short_leaf", "0100"},
		{"short_leaf_second", "01006110"},
		{"bad_hex", "010zz110062"},
		{"bad_marker", "2"},
		{"trailing", "0100611006200"},
		{"trailing_after_single", "010061x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTree(tt.in)
			if !errors.Is(err, ErrMalformedTree) {
				t.Fatalf("parseTree(%q): got %v want ErrMalformedTree", tt.in, err)
			}
		})
	}
}

func TestParseTreeDeepChain(t *testing.T) {
	// a degenerate right-leaning chain, deeper than any tree the builder emits
	const depth = 100000
	var b strings.Builder
	for range depth {
		b.WriteString("010041")
	}
	b.WriteString("10042")
	root, err := parseTree(b.String())
	if err != nil {
		t.Fatalf("parseTree: %v", err)
	}
	if n := len(preorderLeaves(root)); n != depth+1 {
		t.Fatalf("leaves=%d want %d", n, depth+1)
	}

	if _, err := parseTree(strings.Repeat("0", depth)); !errors.Is(err, ErrMalformedTree) {
		t.Fatalf("unterminated chain: got %v", err)
	}
}
