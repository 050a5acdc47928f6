package math

import (
	"github.com/holiman/uint256"
)

// MultiplyDivide computes floor(product(numerators) / product(denominators))
// keeping full 256-bit width until the single final division, so no
// precision is lost between factors. A zero denominator product or an
// overflowing numerator product reports failure.
func MultiplyDivide(numerators, denominators []*uint256.Int) (*uint256.Int, bool) {
	num := uint256.NewInt(1)
	for _, f := range numerators {
		z, ok := Mul(num, f)
		if !ok {
			return nil, false
		}
		num = z
	}
	denom := uint256.NewInt(1)
	for _, f := range denominators {
		z, ok := Mul(denom, f)
		if !ok {
			return nil, false
		}
		denom = z
	}
	return Div(num, denom)
}

// Sqrt returns the floor of the square root; Sqrt(0) == 0.
func Sqrt(value *uint256.Int) *uint256.Int {
	return new(uint256.Int).Sqrt(value)
}

// ComputeScale returns the decimal digit count of value, with 1 for zero.
func ComputeScale(value *uint256.Int) uint64 {
	scale := uint64(1)
	ten := uint256.NewInt(10)
	v := new(uint256.Int).Set(value)
	for v.Cmp(ten) >= 0 {
		v.Div(v, ten)
		scale++
	}
	return scale
}
