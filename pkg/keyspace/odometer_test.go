package keyspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOdometer_Sequence(t *testing.T) {
	s := mustSpace(t, "ab", LengthRange{1, 2})
	o, err := s.Odometer(0)
	require.NoError(t, err)

	var got []string
	for {
		got = append(got, o.String())
		if !o.Next() {
			break
		}
	}
	assert.Equal(t, []string{"a", "b", "aa", "ab", "ba", "bb"}, got)

	// exhausted odometers stay exhausted
	assert.False(t, o.Next())
	assert.Equal(t, "bb", o.String())
}

// every start index, walked to the end of the space, has to match Decode index by index
func TestOdometer_EquivalentToDecode(t *testing.T) {
	tests := []struct {
		name    string
		symbols string
		lengths LengthRange
	}{
		{"binary 1-6", "01", LengthRange{1, 6}},
		{"xyz 1-4", "xyz", LengthRange{1, 4}},
		{"unary", "u", LengthRange{1, 7}},
		{"hex 2-3", "0123456789abcdef", LengthRange{2, 3}},
		{"fixed length", "abcd", Fixed(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSpace(t, tt.symbols, tt.lengths)
			for start := uint64(0); start < s.Total(); start++ {
				o, err := s.Odometer(start)
				require.NoError(t, err)
				for i := start; i < s.Total(); i++ {
					want, err := s.Decode(i)
					require.NoError(t, err)
					require.Equal(t, want, o.String(), "start %d index %d", start, i)
					require.Equal(t, i, o.Index())
					require.Equal(t, len(want), o.Len())

					advanced := o.Next()
					require.Equal(t, i+1 < s.Total(), advanced, "start %d index %d", start, i)
				}
			}
		})
	}
}

func TestOdometer_ChunkWalk(t *testing.T) {
	// a chunk walk only advances Len()-1 times and must end on the chunk's last index
	s := mustSpace(t, "0123456789", LengthRange{1, 3})
	chunks, err := Partition(s.Total(), 7)
	require.NoError(t, err)

	var all []string
	for _, c := range chunks {
		o, err := s.Odometer(c.Start)
		require.NoError(t, err)
		for n := c.Len(); n > 0; n-- {
			all = append(all, o.String())
			if n > 1 {
				require.True(t, o.Next())
			}
		}
		assert.Equal(t, c.End-1, o.Index())
	}
	require.Len(t, all, int(s.Total()))
	for i, v := range all {
		want, _ := s.Decode(uint64(i))
		assert.Equal(t, want, v)
	}
}

func TestOdometer_OutOfRange(t *testing.T) {
	s := mustSpace(t, "ab", Fixed(2))
	_, err := s.Odometer(4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
