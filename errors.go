package codingtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when no tree can be built because the
	// frequency table holds no symbols.
	ErrInvalidInput = errors.New("codingtree: invalid input")

	// ErrLookupFailure is returned when a symbol being encoded has no code
	// in the CodeMap.
	ErrLookupFailure = errors.New("codingtree: symbol missing from code map")

	// ErrInvalidCode is returned by CodeMap.Validate for a code that is
	// empty or contains characters other than '0' and '1'.
	ErrInvalidCode = errors.New("codingtree: invalid code")

	// ErrNotPrefixFree is returned by CodeMap.Validate when one code is a
	// prefix of another.
	ErrNotPrefixFree = errors.New("codingtree: code map is not prefix-free")
)

// LookupError reports a symbol that the Encoder could not find in its
// CodeMap.  Offset is the index of the symbol within the encoded input.
type LookupError struct {
	Symbol Symbol
	Offset int
}

func (le *LookupError) Error() string {
	return fmt.Sprintf("%v: symbol %v at offset %d", ErrLookupFailure, le.Symbol, le.Offset)
}

func (le *LookupError) Unwrap() error {
	return ErrLookupFailure
}

var _ error = (*LookupError)(nil)
