package codingtree

import (
	"errors"
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/op/go-logging"
)

const (
	randSeed   = 0x5a025ca11825a5e7
	iterations = 50
)

func TestLogLevel(t *testing.T) {
	expect := logging.WARNING
	actual := logging.GetLevel(LogModule)
	if expect != actual {
		t.Errorf("wrong default log level:\n\texpect: %v\n\tactual: %v", expect, actual)
	}
}

// decodeGreedy reverses an encoding by accumulating bits until they match a
// code.  This only works because the code map is prefix-free.
func decodeGreedy(t *testing.T, cm CodeMap, bits string) []Symbol {
	t.Helper()

	reverse := make(map[Code]Symbol, cm.Len())
	for _, symbol := range cm.Symbols() {
		hc, _ := cm.Lookup(symbol)
		reverse[hc] = symbol
	}

	var out []Symbol
	start := 0
	for end := 1; end <= len(bits); end++ {
		if symbol, found := reverse[Code(bits[start:end])]; found {
			out = append(out, symbol)
			start = end
		}
	}
	if start != len(bits) {
		t.Fatalf("trailing bits %q do not form a code", bits[start:])
	}
	return out
}

func randomMessage(rng *rand.Rand) []Symbol {
	alphabet := 1 + rng.Intn(64)
	length := 1 + rng.Intn(512)
	out := make([]Symbol, length)
	for index := range out {
		// Squaring skews the distribution so code sizes vary.
		x := rng.Intn(alphabet * alphabet)
		out[index] = Symbol('!' + alphabet - 1 - isqrt(x))
	}
	return out
}

func isqrt(x int) int {
	r := 0
	for (r+1)*(r+1) <= x {
		r++
	}
	return r
}

func checkCodingTree(t *testing.T, input []Symbol) {
	t.Helper()

	ct, err := NewFromSymbols(input)
	if err != nil {
		t.Fatalf("NewFromSymbols failed: %v", err)
	}

	freq := ct.Frequencies()
	cm := ct.Codes()
	if cm.Len() != freq.Len() {
		t.Errorf("expected %d codes, got %d", freq.Len(), cm.Len())
	}
	for _, symbol := range freq.Symbols() {
		if hc, found := cm.Lookup(symbol); !found || hc.Size() < 1 {
			t.Errorf("symbol %v has code %#v (found=%v)", symbol, hc, found)
		}
	}
	if err := cm.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}

	var expectLen int
	for _, symbol := range freq.Symbols() {
		hc, _ := cm.Lookup(symbol)
		expectLen += int(freq.Count(symbol)) * hc.Size()
	}
	if expectLen != len(ct.Bits()) {
		t.Errorf("expected %d bits, got %d", expectLen, len(ct.Bits()))
	}

	decoded := decodeGreedy(t, cm, ct.Bits())
	if !reflect.DeepEqual(input, decoded) {
		t.Errorf("round trip failed:\n\texpect: %v\n\tactual: %v", input, decoded)
	}
}

func TestNew(t *testing.T) {
	ct, err := New("abracadabra")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	expectBits := "01101110100010101101110"
	actualBits := ct.Bits()
	if expectBits != actualBits {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectBits, actualBits)
	}
	if n := ct.Tree().NumLeaves(); n != 5 {
		t.Errorf("expected 5 leaves, got %d", n)
	}

	checkCodingTree(t, SymbolsFromString("abracadabra"))
}

func TestNew_SingleSymbol(t *testing.T) {
	ct, err := New("aaaa")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	hc, _ := ct.Codes().Lookup('a')
	if hc.Size() < 1 {
		t.Fatalf("expected non-empty code, got %#v", hc)
	}
	if len(ct.Bits()) != 4*hc.Size() {
		t.Errorf("expected %d bits, got %d", 4*hc.Size(), len(ct.Bits()))
	}

	checkCodingTree(t, SymbolsFromString("aaaa"))
}

func TestNew_Empty(t *testing.T) {
	ct, err := New("")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if ct != nil {
		t.Errorf("expected no result, got %v", ct)
	}
}

func TestNew_Deterministic(t *testing.T) {
	const message = "she sells sea shells by the sea shore"

	a, err := New(message)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	b, err := New(message)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if a.Bits() != b.Bits() {
		t.Errorf("two runs disagree:\n\tfirst:  %s\n\tsecond: %s", a.Bits(), b.Bits())
	}
	if !reflect.DeepEqual(a.Codes().SizeBySymbol(), b.Codes().SizeBySymbol()) {
		t.Errorf("two runs produced different code sizes")
	}
}

func TestNew_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(randSeed))
	for i := 0; i < iterations; i++ {
		checkCodingTree(t, randomMessage(rng))
	}
}

func TestNew_Relabelled(t *testing.T) {
	type countAndSize struct {
		count uint64
		size  int
	}

	distribution := func(input []Symbol) []countAndSize {
		ct, err := NewFromSymbols(input)
		if err != nil {
			t.Fatalf("NewFromSymbols failed: %v", err)
		}
		freq, cm := ct.Frequencies(), ct.Codes()
		var out []countAndSize
		for _, symbol := range freq.Symbols() {
			hc, _ := cm.Lookup(symbol)
			out = append(out, countAndSize{freq.Count(symbol), hc.Size()})
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].count != out[j].count {
				return out[i].count < out[j].count
			}
			return out[i].size < out[j].size
		})
		return out
	}

	rng := rand.New(rand.NewSource(randSeed))
	for i := 0; i < iterations; i++ {
		input := randomMessage(rng)
		shifted := make([]Symbol, len(input))
		for index, symbol := range input {
			shifted[index] = symbol + 0x3000
		}

		expect := distribution(input)
		actual := distribution(shifted)
		if !reflect.DeepEqual(expect, actual) {
			t.Errorf("code size distributions differ:\n\texpect: %v\n\tactual: %v", expect, actual)
		}
	}
}

func TestNew_InvalidUTF8(t *testing.T) {
	ct, err := New("\xff\xfe")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if ct != nil {
		t.Errorf("expected no result, got %v", ct)
	}

	input := SymbolsFromBytes([]byte("\xff\xfe"))
	ct, err = NewFromSymbols(input)
	if err != nil {
		t.Fatalf("NewFromSymbols failed: %v", err)
	}
	if n := ct.Codes().Len(); n != 2 {
		t.Errorf("expected 2 codes, got %d", n)
	}
	checkCodingTree(t, input)
}

func TestNewFromSymbols_Negative(t *testing.T) {
	ct, err := NewFromSymbols([]Symbol{-1, -1, 5})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if ct != nil {
		t.Errorf("expected no result, got %v", ct)
	}
}
