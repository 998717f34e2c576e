package codingtree

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, written as '0' and '1' characters.  The
// first character is the first bit, i.e. the branch taken at the root.
type Code string

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// Valid returns true iff this Code is non-empty and consists only of '0' and
// '1' characters.
func (hc Code) Valid() bool {
	if len(hc) == 0 {
		return false
	}
	for index := 0; index < len(hc); index++ {
		if ch := hc[index]; ch != '0' && ch != '1' {
			return false
		}
	}
	return true
}

// IsPrefixOf returns true iff this Code is a proper or improper prefix of
// other.
func (hc Code) IsPrefixOf(other Code) bool {
	return strings.HasPrefix(string(other), string(hc))
}

// GoString returns the quoted representation of this Code.
func (hc Code) GoString() string {
	return strconv.Quote(string(hc))
}

var _ fmt.GoStringer = Code("")

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = byCode(nil)

// }}}
