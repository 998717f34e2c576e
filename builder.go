package codingtree

import (
	"container/heap"
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// BuildTree builds a Huffman tree for the symbols in freq.
//
// One leaf is created for each symbol, in ascending Symbol order, and pushed
// onto a minheap ordered by weight.  The two lightest trees are then popped
// and replaced by a new tree whose left child is the first one popped and
// whose right child is the second, until only one tree remains.  Trees of
// equal weight are popped in the order they were pushed.
//
// If freq holds a single symbol, the result is a tree consisting of one leaf.
// GenerateCodeMap assigns that leaf a one-bit code.
//
// An empty freq, or one holding a negative Symbol, is rejected with an error
// wrapping ErrInvalidInput.
//
func BuildTree(freq FrequencyTable) (*Tree, error) {
	if freq.Len() == 0 {
		return nil, fmt.Errorf("%w: cannot build a Huffman tree from an empty frequency table", ErrInvalidInput)
	}

	symbols := freq.Symbols()
	if symbols[0] < 0 {
		return nil, fmt.Errorf("%w: negative symbol %d", ErrInvalidInput, int32(symbols[0]))
	}

	h := treeHeap{list: make([]weightedTree, 0, len(symbols))}
	for _, symbol := range symbols {
		h.push(newLeaf(symbol, freq.Count(symbol)))
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(weightedTree)
		b := heap.Pop(&h).(weightedTree)
		assert.Assertf(a.node.weight <= b.node.weight, "minheap returned weight %d before %d", a.node.weight, b.node.weight)
		heap.Push(&h, h.next(newInternal(a.node, b.node)))
	}

	root := heap.Pop(&h).(weightedTree).node
	assert.Assertf(root.weight == freq.Total(), "root weight %d != total frequency %d", root.weight, freq.Total())

	log.Debugf("BuildTree: %d symbols, weight %d", len(symbols), root.weight)
	return &Tree{root: root}, nil
}

// type weightedTree + type treeHeap {{{

type weightedTree struct {
	node *Node
	seq  uint64
}

type treeHeap struct {
	list    []weightedTree
	nextSeq uint64
}

// next stamps n with the next insertion sequence number.
func (h *treeHeap) next(n *Node) weightedTree {
	wt := weightedTree{node: n, seq: h.nextSeq}
	h.nextSeq++
	return wt
}

// push appends n without restoring the heap property; call Init afterward.
func (h *treeHeap) push(n *Node) {
	h.list = append(h.list, h.next(n))
}

func (h *treeHeap) Init() {
	heap.Init(h)
}

func (h *treeHeap) Len() int {
	return len(h.list)
}

func (h *treeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *treeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.weight != b.node.weight {
		return a.node.weight < b.node.weight
	}
	return a.seq < b.seq
}

func (h *treeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightedTree))
}

func (h *treeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = weightedTree{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*treeHeap)(nil)

// }}}
