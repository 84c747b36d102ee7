package hufftree

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Node is a node of a Tree: either a *Leaf or an *Internal.
type Node interface {
	isNode()
}

// Leaf is a Node that carries a Symbol and has no children.
type Leaf struct {
	Symbol Symbol
}

// Internal is a Node with exactly two children.  Left is reached by a 0 bit
// and Right by a 1 bit.
type Internal struct {
	Left  Node
	Right Node
}

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}

// Tree is a Huffman code tree.  A Tree is never modified once built, so it
// may be shared freely between goroutines; each concurrent decode needs its
// own Decoder.
type Tree struct {
	root    Node
	codes   map[Symbol]Code
	order   []Symbol
	minSize byte
	maxSize byte
}

// newTree indexes the leaves of a finished strict binary tree.  The caller
// guarantees that no Symbol appears on more than one leaf.
func newTree(root Node) *Tree {
	t := &Tree{root: root, codes: make(map[Symbol]Code)}

	// Depth-first, left before right.  Pushing the right child first means
	// the left child is popped first.

	type stackItem struct {
		node Node
		hc   Code
	}

	stack := make([]stackItem, 0, log2uint(NumSymbols)*2)
	stack = append(stack, stackItem{node: root})
	for len(stack) != 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch node := item.node.(type) {
		case *Internal:
			stack = append(stack, stackItem{node.Right, item.hc.Append(1)})
			stack = append(stack, stackItem{node.Left, item.hc.Append(0)})

		case *Leaf:
			size := item.hc.size
			if len(t.order) == 0 {
				t.minSize = size
				t.maxSize = size
			} else if t.minSize > size {
				t.minSize = size
			} else if t.maxSize < size {
				t.maxSize = size
			}
			t.codes[node.Symbol] = item.hc
			t.order = append(t.order, node.Symbol)
		}
	}
	return t
}

// Root returns the root Node.  For a Tree with a single symbol, the root is
// a *Leaf.
func (t *Tree) Root() Node {
	return t.root
}

// NumLeaves returns the number of leaves, which is also the number of
// distinct symbols in the code.
func (t *Tree) NumLeaves() int {
	return len(t.order)
}

// MinSize is the bit length of the shortest code.
func (t *Tree) MinSize() int {
	return int(t.minSize)
}

// MaxSize is the bit length of the longest code.
func (t *Tree) MaxSize() int {
	return int(t.maxSize)
}

// Code returns the Code of the given Symbol, if it has one.
func (t *Tree) Code(sym Symbol) (Code, bool) {
	hc, found := t.codes[sym]
	return hc, found
}

// Walk calls fn once for each leaf, enumerating the leaves from left to
// right.
func (t *Tree) Walk(fn func(sym Symbol, hc Code)) {
	for _, sym := range t.order {
		fn(sym, t.codes[sym])
	}
}

// Lookup follows hc from the root and returns the Symbol of the leaf it ends
// on.  It returns false if hc ends on an internal node or runs off a leaf.
func (t *Tree) Lookup(hc Code) (Symbol, bool) {
	node := t.root
	for i := 0; i < hc.Len(); i++ {
		internal, ok := node.(*Internal)
		if !ok {
			return 0, false
		}
		if hc.Bit(i) == 0 {
			node = internal.Left
		} else {
			node = internal.Right
		}
	}
	if leaf, ok := node.(*Leaf); ok {
		return leaf.Symbol, true
	}
	return 0, false
}

// Equal returns true iff both trees assign the same Code to the same set of
// symbols.
func (t *Tree) Equal(other *Tree) bool {
	if len(t.codes) != len(other.codes) {
		return false
	}
	for sym, hc := range t.codes {
		if otherCode, found := other.codes[sym]; !found || otherCode != hc {
			return false
		}
	}
	return true
}

// String returns a brief description of this Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols, with coded lengths of %d .. %d bits)", t.NumLeaves(), t.minSize, t.maxSize)
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.  Codes are listed in ascending Symbol order.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.NumLeaves())
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	keys := maps.Keys(t.codes)
	slices.Sort(keys)
	for _, sym := range keys {
		fmt.Fprintf(&buf, "\tCode(%d) = %s\n", sym, t.codes[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*Tree)(nil)
