package keyspace

import (
	"fmt"
	"sort"
)

var (
	ErrIndexOutOfRange = fmt.Errorf("index out of range")
)

// Length returns the length of the string at the global index. It is found with a binary search
// for the greatest offset that is <= index
func (s *Space) Length(index uint64) (int, error) {
	if index >= s.Total() {
		return 0, fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, index, s.Total())
	}
	// first bucket whose end is past the index
	i := sort.Search(len(s.counts), func(i int) bool {
		return s.offsets[i+1] > index
	})
	return s.lengths.Min + i, nil
}

// digits fills dst with the base-Σ digits of the global index, most significant first, and returns
// the string length. dst must hold at least lengths.Max entries
func (s *Space) digits(index uint64, dst []int) (int, error) {
	length, err := s.Length(index)
	if err != nil {
		return 0, err
	}

	local := index - s.offsets[length-s.lengths.Min]
	base := uint64(s.Base())
	for i := length - 1; i >= 0; i-- {
		dst[i] = int(local % base)
		local /= base
	}
	return length, nil
}

// AppendDecode appends the string at the global index to dst
func (s *Space) AppendDecode(dst []byte, index uint64) ([]byte, error) {
	length, err := s.Length(index)
	if err != nil {
		return dst, err
	}

	local := index - s.offsets[length-s.lengths.Min]
	base := uint64(s.Base())

	start := len(dst)
	for i := 0; i < length; i++ {
		dst = append(dst, 0)
	}
	for i := start + length - 1; i >= start; i-- {
		dst[i] = s.alphabet.Symbol(int(local % base))
		local /= base
	}
	return dst, nil
}

// Decode returns the string at the global index
func (s *Space) Decode(index uint64) (string, error) {
	b, err := s.AppendDecode(make([]byte, 0, s.lengths.Max), index)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
