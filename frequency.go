package codingtree

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// FrequencyTable holds the number of occurrences of each Symbol in an input.
// Symbols that never occur are absent from the table.
type FrequencyTable struct {
	counts map[Symbol]uint64
	total  uint64
}

// CountFrequencies tabulates the occurrences of each Symbol in input.
func CountFrequencies(input []Symbol) FrequencyTable {
	counts := make(map[Symbol]uint64)
	for _, symbol := range input {
		counts[symbol]++
	}
	return FrequencyTable{
		counts: counts,
		total:  uint64(len(input)),
	}
}

// CountString is a convenience wrapper around CountFrequencies that treats
// each rune of s as one Symbol.
func CountString(s string) FrequencyTable {
	return CountFrequencies(SymbolsFromString(s))
}

// Count returns the number of occurrences of symbol.
func (ft FrequencyTable) Count(symbol Symbol) uint64 {
	return ft.counts[symbol]
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable) Len() int {
	return len(ft.counts)
}

// Total returns the sum of all counts, i.e. the length of the input.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// Symbols returns the distinct symbols in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(ft.counts))
	for symbol := range ft.counts {
		out = append(out, symbol)
	}
	out.Sort()
	return out
}

// Dump writes a programmer-readable debugging dump of the FrequencyTable to
// the given writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, symbol := range ft.Symbols() {
		fmt.Fprintf(&buf, "\tCount(%v) = %d\n", symbol, ft.counts[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
