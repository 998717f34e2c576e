package codingtree

import (
	"math"
	"strconv"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// SymbolsFromString returns one Symbol per rune of s.  Each invalid UTF-8
// byte becomes U+FFFD; use utf8.ValidString to check s first, or
// SymbolsFromBytes to treat s as raw bytes.
func SymbolsFromString(s string) []Symbol {
	out := make([]Symbol, 0, len(s))
	for _, ch := range s {
		out = append(out, Symbol(ch))
	}
	return out
}

// SymbolsFromBytes returns one Symbol per byte of b.
func SymbolsFromBytes(b []byte) []Symbol {
	out := make([]Symbol, len(b))
	for index, ch := range b {
		out[index] = Symbol(ch)
	}
	return out
}

// String returns the string representation of this Symbol.
func (s Symbol) String() string {
	if s < 0 {
		return "InvalidSymbol"
	}
	return strconv.QuoteRune(rune(s))
}
