package codingtree

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Encoder encodes sequences of Symbols using a CodeMap.
type Encoder struct {
	codes CodeMap
}

// NewEncoder returns an Encoder for the given CodeMap.
func NewEncoder(codes CodeMap) *Encoder {
	return &Encoder{codes: codes}
}

// CodeMap returns the CodeMap used by this Encoder.
func (e *Encoder) CodeMap() CodeMap {
	return e.codes
}

// Encode concatenates the Code of each Symbol of input, in order.
//
// If some Symbol has no Code, Encode returns a *LookupError, which wraps
// ErrLookupFailure, and no partial output.
//
func (e *Encoder) Encode(input []Symbol) (string, error) {
	var buf strings.Builder
	buf.Grow(len(input) * e.codes.maxSize)
	for offset, symbol := range input {
		hc, found := e.codes.Lookup(symbol)
		if !found {
			return "", &LookupError{Symbol: symbol, Offset: offset}
		}
		buf.WriteString(string(hc))
	}
	return buf.String(), nil
}

// EncodeString is a convenience wrapper around Encode that treats each rune
// of s as one Symbol.  If s is not valid UTF-8, it returns an error wrapping
// ErrInvalidInput.
func (e *Encoder) EncodeString(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: string is not valid UTF-8", ErrInvalidInput)
	}
	return e.Encode(SymbolsFromString(s))
}

// EncodedLength returns the length in bits of the output that Encode would
// produce for any input with the given frequencies, i.e. the sum over all
// symbols of count × code size.
func (e *Encoder) EncodedLength(freq FrequencyTable) (uint64, error) {
	var sum uint64
	for _, symbol := range freq.Symbols() {
		hc, found := e.codes.Lookup(symbol)
		if !found {
			return 0, &LookupError{Symbol: symbol, Offset: -1}
		}
		sum += freq.Count(symbol) * uint64(hc.Size())
	}
	return sum, nil
}
