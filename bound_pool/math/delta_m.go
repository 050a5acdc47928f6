package math

import (
	"github.com/holiman/uint256"

	"github.com/memechan-gg/boundpool-go/bound_pool/shared"
)

// deltaMStrategy evaluates the curve integral between quote levels sA and
// sB. A false result means the strategy's intermediate arithmetic left
// its representable range, not that the inputs are invalid.
type deltaMStrategy func(alphaAbs, beta, alphaDecimals, betaDecimals, sA, sB *uint256.Int) (*uint256.Int, bool)

// Ordered by preference; the second is an algebraic rearrangement of the
// first that survives the overflow pattern the first is vulnerable to.
var deltaMStrategies = []deltaMStrategy{deltaM1Strategy, deltaM2Strategy}

// ComputeDeltaM returns the meme amount released when the quote reserve
// moves from sA up to sB.
func ComputeDeltaM(cfg *shared.Config, sA, sB uint64) (uint64, error) {
	alphaAbs := U128ToU256(cfg.AlphaAbs)
	beta := U128ToU256(cfg.Beta)
	alphaDecimals := U128ToU256(cfg.Decimals.Alpha)
	betaDecimals := U128ToU256(cfg.Decimals.Beta)

	for _, strategy := range deltaMStrategies {
		deltaM, ok := strategy(alphaAbs, beta, alphaDecimals, betaDecimals, u64(sA), u64(sB))
		if !ok {
			continue
		}
		if !deltaM.IsUint64() {
			return 0, ErrMathOverflow
		}
		return deltaM.Uint64(), nil
	}
	return 0, ErrMathOverflow
}

// deltaM1Strategy computes the antiderivative difference as two
// independently floored terms:
//
//	(sB-sA)*beta/(betaDec*S) - (sB²-sA²)*alpha/(S²*2*alphaDec)
func deltaM1Strategy(alphaAbs, beta, alphaDecimals, betaDecimals, sA, sB *uint256.Int) (*uint256.Int, bool) {
	decimalsS := u64(shared.DecimalsS)

	leftNum, ok := sub128(sB, sA)
	if !ok {
		return nil, false
	}
	leftNum, ok = mul128(leftNum, beta)
	if !ok {
		return nil, false
	}
	leftDenom, ok := mul128(betaDecimals, decimalsS)
	if !ok {
		return nil, false
	}
	left, ok := Div(leftNum, leftDenom)
	if !ok {
		return nil, false
	}

	sB2, ok := mul128(sB, sB)
	if !ok {
		return nil, false
	}
	sA2, ok := mul128(sA, sA)
	if !ok {
		return nil, false
	}
	right, ok := sub128(sB2, sA2)
	if !ok {
		return nil, false
	}
	right, ok = mul128(right, alphaAbs)
	if !ok {
		return nil, false
	}
	decimalsS2, ok := mul128(decimalsS, decimalsS)
	if !ok {
		return nil, false
	}
	right, ok = Div(right, decimalsS2)
	if !ok {
		return nil, false
	}
	twiceAlphaDecimals, ok := mul128(u64(2), alphaDecimals)
	if !ok {
		return nil, false
	}
	right, ok = Div(right, twiceAlphaDecimals)
	if !ok {
		return nil, false
	}

	return sub128(left, right)
}

// deltaM2Strategy folds both terms over a common denominator before the
// single final division:
//
//	(2*beta*S*alphaDec*(sB-sA) - alpha*betaDec*(sB²-sA²)) / (2*alphaDec*betaDec*S²)
func deltaM2Strategy(alphaAbs, beta, alphaDecimals, betaDecimals, sA, sB *uint256.Int) (*uint256.Int, bool) {
	decimalsS := u64(shared.DecimalsS)

	left, ok := mul128(beta, u64(2))
	if !ok {
		return nil, false
	}
	left, ok = mul128(left, decimalsS)
	if !ok {
		return nil, false
	}
	left, ok = mul128(left, alphaDecimals)
	if !ok {
		return nil, false
	}
	sDiff, ok := sub128(sB, sA)
	if !ok {
		return nil, false
	}
	left, ok = mul128(left, sDiff)
	if !ok {
		return nil, false
	}

	sB2, ok := mul128(sB, sB)
	if !ok {
		return nil, false
	}
	sA2, ok := mul128(sA, sA)
	if !ok {
		return nil, false
	}
	sSqDiff, ok := sub128(sB2, sA2)
	if !ok {
		return nil, false
	}
	right, ok := mul128(alphaAbs, betaDecimals)
	if !ok {
		return nil, false
	}
	right, ok = mul128(right, sSqDiff)
	if !ok {
		return nil, false
	}

	denom, ok := mul128(u64(2), alphaDecimals)
	if !ok {
		return nil, false
	}
	denom, ok = mul128(denom, betaDecimals)
	if !ok {
		return nil, false
	}
	decimalsS2, ok := mul128(decimalsS, decimalsS)
	if !ok {
		return nil, false
	}
	denom, ok = mul128(denom, decimalsS2)
	if !ok {
		return nil, false
	}

	num, ok := sub128(left, right)
	if !ok {
		return nil, false
	}
	return Div(num, denom)
}
