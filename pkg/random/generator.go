package random

import (
	"fmt"
	"math/bits"
	"math/rand/v2"

	"github.com/assetnote/brutegen/pkg/charset"
	"github.com/assetnote/brutegen/pkg/keyspace"
)

// Generator draws strings with a uniform length and uniform independent symbols.
// It is owned by one worker and must not be shared
type Generator struct {
	src      *rand.PCG
	alphabet charset.Alphabet
	lengths  keyspace.LengthRange
	base     uint64
	spread   uint64 // number of possible lengths
}

// NewGenerator seeds a PCG stream for one worker
func NewGenerator(seed Seed, a charset.Alphabet, lengths keyspace.LengthRange) (*Generator, error) {
	if a.Len() == 0 {
		return nil, charset.ErrEmptyAlphabet
	}
	if err := lengths.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		src:      rand.NewPCG(seed.Hi, seed.Lo),
		alphabet: a,
		lengths:  lengths,
		base:     uint64(a.Len()),
		spread:   uint64(lengths.Lengths()),
	}, nil
}

// Uint64n returns a uniform value in [0, n). The raw word is mapped with a multiply-high, and the
// few raw values that would make some results more likely are rejected and redrawn.
// n must be greater than 0
func (g *Generator) Uint64n(n uint64) uint64 {
	if n == 0 {
		panic(fmt.Sprintf("random: invalid bound %d", n))
	}
	hi, lo := bits.Mul64(g.src.Uint64(), n)
	if lo < n {
		threshold := -n % n
		for lo < threshold {
			hi, lo = bits.Mul64(g.src.Uint64(), n)
		}
	}
	return hi
}

// Length draws a length uniformly from the range
func (g *Generator) Length() int {
	if g.spread == 1 {
		return g.lengths.Min
	}
	return g.lengths.Min + int(g.Uint64n(g.spread))
}

// Append draws one string and appends it to dst
func (g *Generator) Append(dst []byte) []byte {
	n := g.Length()
	for i := 0; i < n; i++ {
		dst = append(dst, g.alphabet.Symbol(int(g.Uint64n(g.base))))
	}
	return dst
}

// Next draws one string
func (g *Generator) Next() string {
	return string(g.Append(make([]byte, 0, g.lengths.Max)))
}
