package codingtree

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  A leaf holds one Symbol and its weight;
// an internal node holds exactly two children and the sum of their weights.
//
// Each internal node exclusively owns its children.  Nodes are never
// modified once they are part of a Tree.
type Node struct {
	symbol Symbol
	weight uint64
	left   *Node
	right  *Node
}

func newLeaf(symbol Symbol, weight uint64) *Node {
	return &Node{symbol: symbol, weight: weight}
}

func newInternal(left *Node, right *Node) *Node {
	return &Node{
		symbol: InvalidSymbol,
		weight: left.weight + right.weight,
		left:   left,
		right:  right,
	}
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil
}

// Symbol returns the Symbol held by a leaf, or InvalidSymbol for an internal
// node.
func (n *Node) Symbol() Symbol {
	return n.symbol
}

// Weight returns the cumulative frequency of all symbols under this node.
func (n *Node) Weight() uint64 {
	return n.weight
}

// Left returns the left ('0') child, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right ('1') child, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// Tree is a Huffman tree.  Trees are ordered by the weight of their root.
type Tree struct {
	root *Node
}

// Root returns the root node of the tree.
func (t *Tree) Root() *Node {
	t.mustBeBuilt()
	return t.root
}

// Weight returns the weight of the root, which equals the length of the
// input the tree was built from.
func (t *Tree) Weight() uint64 {
	t.mustBeBuilt()
	return t.root.weight
}

// NumLeaves returns the number of leaves, i.e. the number of distinct symbols.
func (t *Tree) NumLeaves() int {
	var count int
	t.walk(func(n *Node, depth int) {
		if n.IsLeaf() {
			count++
		}
	})
	return count
}

// Depth returns the length of the longest root-to-leaf path.  A tree
// consisting of a single leaf has depth 0.
func (t *Tree) Depth() int {
	var max int
	t.walk(func(n *Node, depth int) {
		if depth > max {
			max = depth
		}
	})
	return max
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line in pre-order, indented by depth.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	t.walk(func(n *Node, depth int) {
		indent := strings.Repeat("\t", depth+1)
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "%sLeaf(%v, %d)\n", indent, n.symbol, n.weight)
		} else {
			fmt.Fprintf(&buf, "%sInternal(%d)\n", indent, n.weight)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// walk visits every node in pre-order, left before right.
func (t *Tree) walk(fn func(n *Node, depth int)) {
	t.mustBeBuilt()

	type stackItem struct {
		n     *Node
		depth int
	}

	stack := []stackItem{{t.root, 0}}
	for len(stack) != 0 {
		last := len(stack) - 1
		top := stack[last]
		stack = stack[:last]

		fn(top.n, top.depth)
		if !top.n.IsLeaf() {
			stack = append(stack, stackItem{top.n.right, top.depth + 1})
			stack = append(stack, stackItem{top.n.left, top.depth + 1})
		}
	}
}

func (t *Tree) mustBeBuilt() {
	assert.Assertf(t != nil && t.root != nil, "Tree must be obtained from BuildTree")
}
