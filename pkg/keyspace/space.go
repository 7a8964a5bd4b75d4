package keyspace

import (
	"fmt"

	"github.com/assetnote/brutegen/pkg/charset"
	errors2 "github.com/assetnote/brutegen/pkg/errors"
)

// Space is the counted set of every string over an alphabet with a length inside a range.
// Strings are ordered by length first, then by their base-Σ value, so index 0 is the shortest
// string made only of the first symbol. A Space is immutable once built and safe to share
// between goroutines
type Space struct {
	alphabet charset.Alphabet
	lengths  LengthRange

	// counts[i] is the number of strings of length lengths.Min+i
	counts []uint64
	// offsets[i] is the global index of the first string of length lengths.Min+i.
	// offsets[len(offsets)-1] is the total
	offsets []uint64
}

// NewSpace counts the keyspace for the alphabet and range. If Σ^L for some length, or the running
// total, does not fit the counting type, an *errors.OverflowError naming that length is returned
func NewSpace(a charset.Alphabet, lengths LengthRange) (*Space, error) {
	if a.Len() == 0 {
		return nil, charset.ErrEmptyAlphabet
	}
	if err := lengths.Validate(); err != nil {
		return nil, err
	}

	n := lengths.Lengths()
	s := &Space{
		alphabet: a,
		lengths:  lengths,
		counts:   make([]uint64, n),
		offsets:  make([]uint64, n+1),
	}

	base := uint64(a.Len())
	count, ok := PowChecked(base, lengths.Min)
	if !ok {
		return nil, &errors2.OverflowError{Length: lengths.Min}
	}

	for i := 0; i < n; i++ {
		length := lengths.Min + i
		if i > 0 {
			if count, ok = MulChecked(count, base); !ok {
				return nil, &errors2.OverflowError{Length: length}
			}
		}
		s.counts[i] = count

		if s.offsets[i+1], ok = AddChecked(s.offsets[i], count); !ok {
			return nil, &errors2.OverflowError{Length: length, Cumulative: true}
		}
	}
	return s, nil
}

func (s *Space) Alphabet() charset.Alphabet {
	return s.alphabet
}

func (s *Space) Lengths() LengthRange {
	return s.lengths
}

// Base is Σ, the number of symbols
func (s *Space) Base() int {
	return s.alphabet.Len()
}

// Total is the number of strings in the space
func (s *Space) Total() uint64 {
	return s.offsets[len(s.offsets)-1]
}

// Count returns the number of strings of exactly the given length, 0 if the length is out of range
func (s *Space) Count(length int) uint64 {
	if length < s.lengths.Min || length > s.lengths.Max {
		return 0
	}
	return s.counts[length-s.lengths.Min]
}

// Counts returns a copy of the per-length counts, starting at lengths.Min
func (s *Space) Counts() []uint64 {
	return append([]uint64(nil), s.counts...)
}

// Offsets returns a copy of the cumulative offsets. It has Lengths()+1 entries, the first is 0 and
// the last is Total()
func (s *Space) Offsets() []uint64 {
	return append([]uint64(nil), s.offsets...)
}

// Bytes returns the size of the whole space written one string per line. ok is false when the size
// does not fit in 64 bits, which still means the space itself can be enumerated
func (s *Space) Bytes() (total uint64, ok bool) {
	for i, c := range s.counts {
		lineLen := uint64(s.lengths.Min + i + 1)
		v, ok := MulChecked(c, lineLen)
		if !ok {
			return 0, false
		}
		if total, ok = AddChecked(total, v); !ok {
			return 0, false
		}
	}
	return total, true
}

func (s *Space) String() string {
	return fmt.Sprintf("space[base=%d lengths=%s total=%d]", s.Base(), s.lengths, s.Total())
}
