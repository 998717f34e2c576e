package codingtree

import (
	"fmt"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
)

// CodingTree holds the results of Huffman-coding one message: the symbol
// frequencies, the tree built from them, the resulting CodeMap, and the
// encoded bit string.
type CodingTree struct {
	freq  FrequencyTable
	tree  *Tree
	codes CodeMap
	bits  string
}

// New Huffman-codes message, treating each rune as one Symbol.
//
// An empty message, or one that is not valid UTF-8, is rejected with an error
// wrapping ErrInvalidInput.  Use NewFromSymbols with SymbolsFromBytes to code
// arbitrary bytes.
//
func New(message string) (*CodingTree, error) {
	if !utf8.ValidString(message) {
		return nil, fmt.Errorf("%w: message is not valid UTF-8", ErrInvalidInput)
	}
	return NewFromSymbols(SymbolsFromString(message))
}

// NewFromSymbols Huffman-codes the given sequence of Symbols.
func NewFromSymbols(input []Symbol) (*CodingTree, error) {
	freq := CountFrequencies(input)
	log.Debugf("NewFromSymbols: %d symbols, %d distinct", freq.Total(), freq.Len())

	tree, err := BuildTree(freq)
	if err != nil {
		return nil, err
	}

	codes := GenerateCodeMap(tree)
	assert.Assertf(codes.Len() == freq.Len(), "code map has %d entries, expected %d", codes.Len(), freq.Len())

	bits, err := NewEncoder(codes).Encode(input)
	assert.Assertf(err == nil, "code map derived from this input cannot encode it: %v", err)

	log.Debugf("NewFromSymbols: encoded %d symbols into %d bits", len(input), len(bits))
	return &CodingTree{
		freq:  freq,
		tree:  tree,
		codes: codes,
		bits:  bits,
	}, nil
}

// Frequencies returns the frequency table of the message.
func (ct *CodingTree) Frequencies() FrequencyTable {
	return ct.freq
}

// Tree returns the Huffman tree built for the message.
func (ct *CodingTree) Tree() *Tree {
	return ct.tree
}

// Codes returns the Code assigned to each Symbol of the message.
func (ct *CodingTree) Codes() CodeMap {
	return ct.codes
}

// Bits returns the encoded message as a string of '0' and '1' characters.
func (ct *CodingTree) Bits() string {
	return ct.bits
}
