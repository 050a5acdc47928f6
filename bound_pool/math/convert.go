package math

import (
	bin "github.com/gagliardetto/binary"
	"github.com/holiman/uint256"
)

func U128ToU256(v bin.Uint128) *uint256.Int {
	z := new(uint256.Int)
	z[0] = v.Lo
	z[1] = v.Hi
	return z
}

func U256ToU128(v *uint256.Int) (bin.Uint128, bool) {
	if !fits128(v) {
		return bin.Uint128{}, false
	}
	return bin.Uint128{Lo: v[0], Hi: v[1]}, true
}
