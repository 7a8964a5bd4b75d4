package random

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedSeeds(t *testing.T) {
	a, b := FixedSeeds(1234), FixedSeeds(1234)
	seen := make(map[Seed]int)
	for w := 0; w < 64; w++ {
		x, err := a.Seed(w)
		require.NoError(t, err)
		y, err := b.Seed(w)
		require.NoError(t, err)
		assert.Equal(t, x, y)

		if prev, ok := seen[x]; ok {
			t.Fatalf("workers %d and %d share seed %s", prev, w, x)
		}
		seen[x] = w
	}

	other, err := FixedSeeds(1235).Seed(0)
	require.NoError(t, err)
	first, err := a.Seed(0)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestDefaultSeeds_Distinct(t *testing.T) {
	src := DefaultSeeds()
	seen := make(map[Seed]int)
	for w := 0; w < 256; w++ {
		s, err := src.Seed(w)
		require.NoError(t, err)
		if prev, ok := seen[s]; ok {
			t.Fatalf("workers %d and %d share seed %s", prev, w, s)
		}
		seen[s] = w
	}
}

func TestSeedFunc(t *testing.T) {
	boom := errors.New("boom")
	src := SeedFunc(func(worker int) (Seed, error) {
		if worker == 2 {
			return Seed{}, boom
		}
		return Seed{Hi: uint64(worker)}, nil
	})

	s, err := src.Seed(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), s.Hi)

	_, err = src.Seed(2)
	assert.ErrorIs(t, err, boom)
}

func TestSeed_String(t *testing.T) {
	assert.Equal(t, "00000000000000010000000000000002", Seed{Hi: 1, Lo: 2}.String())
}
