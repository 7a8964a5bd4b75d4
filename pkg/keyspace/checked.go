package keyspace

import "math/bits"

// MulChecked returns a*b and false if the product does not fit in 64 bits
func MulChecked(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// AddChecked returns a+b and false if the sum does not fit in 64 bits
func AddChecked(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// PowChecked returns base^exp and false as soon as an intermediate product overflows.
// base^0 is 1 for every base
func PowChecked(base uint64, exp int) (uint64, bool) {
	ret := uint64(1)
	for i := 0; i < exp; i++ {
		var ok bool
		if ret, ok = MulChecked(ret, base); !ok {
			return 0, false
		}
	}
	return ret, true
}
