package keyspace

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxLength is the longest string the generator will produce
const MaxLength = 256

var (
	ErrInvalidLength = fmt.Errorf("invalid length range")
)

// LengthRange is the inclusive range of string lengths to produce
type LengthRange struct {
	Min int
	Max int
}

// Fixed returns a range containing a single length
func Fixed(n int) LengthRange {
	return LengthRange{Min: n, Max: n}
}

func (r LengthRange) String() string {
	if r.Min == r.Max {
		return strconv.Itoa(r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Lengths returns how many distinct lengths the range holds
func (r LengthRange) Lengths() int {
	return r.Max - r.Min + 1
}

// Validate ensures 1 <= Min <= Max <= MaxLength
func (r LengthRange) Validate() error {
	if r.Min < 1 || r.Max < 1 {
		return fmt.Errorf("%w: lengths must be positive (%s)", ErrInvalidLength, r)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidLength, r.Min, r.Max)
	}
	if r.Max > MaxLength {
		return fmt.Errorf("%w: max %d exceeds the supported maximum of %d", ErrInvalidLength, r.Max, MaxLength)
	}
	return nil
}

// ParseLengthRange will return a range from a string like 3-4. A single value like 8 is a fixed length
func ParseLengthRange(in string) (ret LengthRange, err error) {
	in = strings.TrimSpace(in)
	if !strings.Contains(in, "-") {
		ret.Min, err = strconv.Atoi(in)
		if err != nil {
			return ret, fmt.Errorf("%w: unable to parse length: %v", ErrInvalidLength, err)
		}
		ret.Max = ret.Min
		return ret, ret.Validate()
	}

	v := strings.Split(in, "-")
	if len(v) != 2 {
		return ret, fmt.Errorf("%w: unexpected format %q", ErrInvalidLength, in)
	}

	ret.Min, err = strconv.Atoi(strings.TrimSpace(v[0]))
	if err != nil {
		return ret, fmt.Errorf("%w: unable to parse min: %v", ErrInvalidLength, err)
	}

	ret.Max, err = strconv.Atoi(strings.TrimSpace(v[1]))
	if err != nil {
		return ret, fmt.Errorf("%w: unable to parse max: %v", ErrInvalidLength, err)
	}

	return ret, ret.Validate()
}
