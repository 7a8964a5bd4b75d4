package random

import (
	"testing"

	"github.com/assetnote/brutegen/pkg/charset"
	"github.com/assetnote/brutegen/pkg/keyspace"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator(t *testing.T, seed Seed, symbols string, lengths keyspace.LengthRange) *Generator {
	t.Helper()
	g, err := NewGenerator(seed, charset.MustAlphabet(symbols), lengths)
	require.NoError(t, err)
	return g
}

// chiSquare returns the statistic for observed counts against a uniform expectation
func chiSquare(observed []int, samples int) float64 {
	expected := float64(samples) / float64(len(observed))
	var stat float64
	for _, o := range observed {
		d := float64(o) - expected
		stat += d * d / expected
	}
	return stat
}

func TestNewGenerator_Invalid(t *testing.T) {
	_, err := NewGenerator(Seed{}, charset.Alphabet{}, keyspace.Fixed(1))
	assert.ErrorIs(t, err, charset.ErrEmptyAlphabet)

	_, err = NewGenerator(Seed{}, charset.MustAlphabet("ab"), keyspace.LengthRange{Min: 2, Max: 1})
	assert.ErrorIs(t, err, keyspace.ErrInvalidLength)
}

func TestGenerator_Deterministic(t *testing.T) {
	seed := Seed{Hi: 42, Lo: 1337}
	a := newGenerator(t, seed, charset.ASCIIAll, keyspace.LengthRange{Min: 1, Max: 12})
	b := newGenerator(t, seed, charset.ASCIIAll, keyspace.LengthRange{Min: 1, Max: 12})
	c := newGenerator(t, Seed{Hi: 42, Lo: 1338}, charset.ASCIIAll, keyspace.LengthRange{Min: 1, Max: 12})

	var same, different int
	for i := 0; i < 1000; i++ {
		x, y, z := a.Next(), b.Next(), c.Next()
		require.Equal(t, x, y, "index %d", i)
		if x == z {
			same++
		} else {
			different++
		}
	}
	assert.Greater(t, different, 990, "streams with different seeds look correlated: %d equal draws", same)
}

func TestGenerator_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		symbols string
		lengths keyspace.LengthRange
	}{
		{"single symbol", "a", keyspace.LengthRange{Min: 1, Max: 5}},
		{"fixed length", charset.ASCIIDigits, keyspace.Fixed(8)},
		{"wide range", charset.ASCIIAll, keyspace.LengthRange{Min: 1, Max: 64}},
		{"max length", "01", keyspace.Fixed(keyspace.MaxLength)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGenerator(t, Seed{Hi: 7, Lo: 9}, tt.symbols, tt.lengths)
			a := charset.MustAlphabet(tt.symbols)
			for i := 0; i < 500; i++ {
				s := g.Next()
				assert.GreaterOrEqual(t, len(s), tt.lengths.Min)
				assert.LessOrEqual(t, len(s), tt.lengths.Max)
				if !a.Contains(s) {
					t.Fatalf("generated %s with a foreign symbol", spew.Sdump(s))
				}
			}
		})
	}
}

func TestGenerator_Uint64n(t *testing.T) {
	g := newGenerator(t, Seed{Hi: 1, Lo: 2}, "ab", keyspace.Fixed(1))
	for i := 0; i < 100; i++ {
		assert.Zero(t, g.Uint64n(1))
	}
	for _, n := range []uint64{2, 3, 10, 1<<63 + 1, 1<<64 - 1} {
		for i := 0; i < 100; i++ {
			assert.Less(t, g.Uint64n(n), n)
		}
	}
	assert.Panics(t, func() { g.Uint64n(0) })
}

// with 3 degrees of freedom, 30 is far past the 0.9999 quantile, so a correct generator with a
// fixed seed passes deterministically
func TestGenerator_UniformSymbols(t *testing.T) {
	const samples = 40000
	g := newGenerator(t, Seed{Hi: 2024, Lo: 10}, "wxyz", keyspace.Fixed(3))

	perPosition := make([][]int, 3)
	for i := range perPosition {
		perPosition[i] = make([]int, 4)
	}
	a := charset.MustAlphabet("wxyz")
	for i := 0; i < samples; i++ {
		s := g.Next()
		for pos := 0; pos < len(s); pos++ {
			perPosition[pos][a.Index(s[pos])]++
		}
	}
	for pos, observed := range perPosition {
		stat := chiSquare(observed, samples)
		assert.Less(t, stat, 30.0, "position %d counts %v", pos, observed)
	}
}

func TestGenerator_UniformLengths(t *testing.T) {
	const samples = 40000
	g := newGenerator(t, Seed{Hi: 99, Lo: 3}, "ab", keyspace.LengthRange{Min: 3, Max: 6})

	observed := make([]int, 4)
	for i := 0; i < samples; i++ {
		observed[g.Length()-3]++
	}
	assert.Less(t, chiSquare(observed, samples), 30.0, "length counts %v", observed)
}

// a non power of two bound is where a plain modulo would be biased
func TestGenerator_UniformOddBound(t *testing.T) {
	const samples = 60000
	g := newGenerator(t, Seed{Hi: 5, Lo: 5}, "ab", keyspace.Fixed(1))

	observed := make([]int, 3)
	for i := 0; i < samples; i++ {
		observed[g.Uint64n(3)]++
	}
	// 2 degrees of freedom
	assert.Less(t, chiSquare(observed, samples), 25.0, "counts %v", observed)
}
