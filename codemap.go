package codingtree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
)

// singleSymbolCode is the code given to the only symbol of a one-leaf tree.
// The leaf sits at depth 0, so its path from the root would be empty.
const singleSymbolCode = Code("0")

// CodeMap maps each Symbol of a Huffman tree to its Code.  A CodeMap is
// read-only once GenerateCodeMap returns it.
type CodeMap struct {
	codes   map[Symbol]Code
	minSize int
	maxSize int
}

// GenerateCodeMap walks tree from the root, appending '0' for each left
// branch and '1' for each right branch, and records the path to each leaf as
// that leaf's Code.
func GenerateCodeMap(tree *Tree) CodeMap {
	assert.Assertf(tree != nil && tree.root != nil, "GenerateCodeMap requires a tree returned by BuildTree")
	root := tree.root
	if root.IsLeaf() {
		log.Debugf("GenerateCodeMap: single symbol %v, assigning %#v", root.symbol, singleSymbolCode)
		return CodeMap{
			codes:   map[Symbol]Code{root.symbol: singleSymbolCode},
			minSize: singleSymbolCode.Size(),
			maxSize: singleSymbolCode.Size(),
		}
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// The path to the node on top of the stack is held in path; only
	// internal nodes are ever pushed.

	type stackItem struct {
		n *Node
		x byte
	}

	numLeaves := tree.NumLeaves()
	stack := make([]stackItem, 0, log2uint32(uint32(numLeaves)))
	path := make([]byte, 0, cap(stack))
	codes := make(map[Symbol]Code, numLeaves)
	var minSize, maxSize int
	var hasMinMax bool

	processChild := func(child *Node, bit byte) {
		path = append(path, bit)
		if !child.IsLeaf() {
			stack = append(stack, stackItem{n: child})
			return
		}

		hc := Code(path)
		path = path[:len(path)-1]
		codes[child.symbol] = hc

		size := hc.Size()
		if !hasMinMax {
			hasMinMax = true
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}

	stack = append(stack, stackItem{n: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.n.left, '0')
		case 1:
			processChild(top.n.right, '1')
		case 2:
			stack = stack[:len(stack)-1]
			if len(path) != 0 {
				path = path[:len(path)-1]
			}
		}
	}

	log.Debugf("GenerateCodeMap: %d codes, sizes %d .. %d", len(codes), minSize, maxSize)
	return CodeMap{
		codes:   codes,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Lookup returns the Code for symbol.  The second return value is false if
// symbol has no Code.
func (cm CodeMap) Lookup(symbol Symbol) (Code, bool) {
	hc, found := cm.codes[symbol]
	return hc, found
}

// Len returns the number of symbols with a Code.
func (cm CodeMap) Len() int {
	return len(cm.codes)
}

// Symbols returns the symbols with a Code, in ascending order.
func (cm CodeMap) Symbols() []Symbol {
	out := make(bySymbol, 0, len(cm.codes))
	for symbol := range cm.codes {
		out = append(out, symbol)
	}
	out.Sort()
	return out
}

// MinSize is the bit length of the shortest Code.
func (cm CodeMap) MinSize() int {
	return cm.minSize
}

// MaxSize is the bit length of the longest Code.
func (cm CodeMap) MaxSize() int {
	return cm.maxSize
}

// SizeBySymbol returns the bit length of each Symbol's Code.
func (cm CodeMap) SizeBySymbol() map[Symbol]int {
	out := make(map[Symbol]int, len(cm.codes))
	for symbol, hc := range cm.codes {
		out[symbol] = hc.Size()
	}
	return out
}

// Validate checks that every Code is a valid, non-empty bit string and that
// no Code is a prefix of another.
func (cm CodeMap) Validate() error {
	sorted := make(byCode, 0, len(cm.codes))
	for symbol, hc := range cm.codes {
		if !hc.Valid() {
			return fmt.Errorf("%w: symbol %v has code %#v", ErrInvalidCode, symbol, hc)
		}
		sorted = append(sorted, hc)
	}
	sorted.Sort()

	// After sorting, any code that is a prefix of some other code is also
	// a prefix of its immediate successor.
	for index := 1; index < len(sorted); index++ {
		a, b := sorted[index-1], sorted[index]
		if a.IsPrefixOf(b) {
			return fmt.Errorf("%w: %#v is a prefix of %#v", ErrNotPrefixFree, a, b)
		}
	}
	return nil
}

// Dump writes a programmer-readable debugging dump of the CodeMap to the
// given writer.
func (cm CodeMap) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeMap{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", cm.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", cm.maxSize)
	for _, symbol := range cm.Symbols() {
		fmt.Fprintf(&buf, "\tLookup(%v) = %#v\n", symbol, cm.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// MarshalJSON renders the CodeMap as a JSON object from each symbol to its
// Code.  A symbol that is a valid rune is keyed by its one-character string;
// any other symbol is keyed by its decimal value, which is never one
// character long.
func (cm CodeMap) MarshalJSON() ([]byte, error) {
	obj := make(map[string]string, len(cm.codes))
	for symbol, hc := range cm.codes {
		obj[jsonKey(symbol)] = string(hc)
	}
	return json.Marshal(obj)
}

func jsonKey(symbol Symbol) string {
	if utf8.ValidRune(rune(symbol)) {
		return string(rune(symbol))
	}
	return strconv.Itoa(int(symbol))
}

// String returns a one-line summary of the CodeMap.
func (cm CodeMap) String() string {
	var buf strings.Builder
	buf.WriteString("(Huffman code map with ")
	fmt.Fprintf(&buf, "%d symbols, with coded lengths of %d .. %d bits)", len(cm.codes), cm.minSize, cm.maxSize)
	return buf.String()
}

var (
	_ json.Marshaler = CodeMap{}
	_ fmt.Stringer   = CodeMap{}
)
