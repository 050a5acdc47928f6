package math

import (
	"github.com/holiman/uint256"
)

// The kernel works on fixed-width 256-bit integers. Every operation that
// can overflow reports it through the ok result instead of wrapping, so
// the solvers can treat overflow as a retry signal rather than an error.

func u64(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

func Add(a, b *uint256.Int) (*uint256.Int, bool) {
	z, overflow := new(uint256.Int).AddOverflow(a, b)
	return z, !overflow
}

func Sub(a, b *uint256.Int) (*uint256.Int, bool) {
	z, underflow := new(uint256.Int).SubOverflow(a, b)
	return z, !underflow
}

func Mul(a, b *uint256.Int) (*uint256.Int, bool) {
	z, overflow := new(uint256.Int).MulOverflow(a, b)
	return z, !overflow
}

func Div(a, b *uint256.Int) (*uint256.Int, bool) {
	if b.IsZero() {
		return nil, false
	}
	return new(uint256.Int).Div(a, b), true
}

// The forward solver mirrors arithmetic the program performs in a 128-bit
// domain; its overflow there is what selects the fallback strategy, so
// these variants additionally fail once a result leaves 128 bits.

func fits128(v *uint256.Int) bool {
	return v[2] == 0 && v[3] == 0
}

func add128(a, b *uint256.Int) (*uint256.Int, bool) {
	z, ok := Add(a, b)
	return z, ok && fits128(z)
}

func sub128(a, b *uint256.Int) (*uint256.Int, bool) {
	return Sub(a, b)
}

func mul128(a, b *uint256.Int) (*uint256.Int, bool) {
	z, ok := Mul(a, b)
	return z, ok && fits128(z)
}
