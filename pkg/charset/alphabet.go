package charset

import (
	"fmt"
	"strconv"

	"github.com/assetnote/brutegen/pkg/convert"
)

var (
	ErrEmptyAlphabet   = fmt.Errorf("alphabet has no symbols")
	ErrDuplicateSymbol = fmt.Errorf("alphabet has a duplicate symbol")
)

// Alphabet is an ordered set of distinct single byte symbols. The position of a symbol is its digit
// value when strings are read as base-Len() numbers. The zero value is an empty alphabet and is
// rejected by everything that consumes one
type Alphabet struct {
	symbols string
}

// NewAlphabet validates the symbols and returns the alphabet. Order is preserved
func NewAlphabet(symbols string) (Alphabet, error) {
	if len(symbols) == 0 {
		return Alphabet{}, ErrEmptyAlphabet
	}
	if b, ok := convert.FirstDuplicate([]byte(symbols)); ok {
		return Alphabet{}, fmt.Errorf("%w: %s", ErrDuplicateSymbol, strconv.QuoteRune(rune(b)))
	}
	return Alphabet{symbols: symbols}, nil
}

// MustAlphabet is NewAlphabet for package level literals. It panics on invalid input
func MustAlphabet(symbols string) Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of symbols, the base of the keyspace
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// Symbol returns the symbol with digit value i
func (a Alphabet) Symbol(i int) byte {
	return a.symbols[i]
}

// Index returns the digit value of c, or -1 if c is not part of the alphabet
func (a Alphabet) Index(c byte) int {
	for i := 0; i < len(a.symbols); i++ {
		if a.symbols[i] == c {
			return i
		}
	}
	return -1
}

// Contains reports whether every byte of s is a symbol of the alphabet
func (a Alphabet) Contains(s string) bool {
	for i := 0; i < len(s); i++ {
		if a.Index(s[i]) < 0 {
			return false
		}
	}
	return true
}

func (a Alphabet) String() string {
	return a.symbols
}

// Merge returns the union of a and the extra symbols, keeping the order in which symbols were first seen
func (a Alphabet) Merge(extra string) (Alphabet, error) {
	return NewAlphabet(string(convert.UniqueBytes([]byte(a.symbols + extra))))
}
