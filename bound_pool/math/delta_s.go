package math

import (
	"github.com/holiman/uint256"

	"github.com/memechan-gg/boundpool-go/bound_pool/shared"
)

// maxScaleRetries bounds the adaptive-precision loop in computeA. The
// scale grows by 100x per retry and would leave 256 bits after 39 steps,
// so the bound exists to guarantee termination, not to be reached.
const maxScaleRetries = 32

// ComputeDeltaS returns the quote amount released when deltaM meme tokens
// are sold into the pool at quote reserve level sB. Solving for the lower
// reserve level requires the quadratic root, hence the square roots below.
func ComputeDeltaS(cfg *shared.Config, sB, deltaM uint64) (uint64, error) {
	deltaS, ok := deltaSStrategy(
		U128ToU256(cfg.AlphaAbs),
		U128ToU256(cfg.Beta),
		U128ToU256(cfg.Decimals.Alpha),
		U128ToU256(cfg.Decimals.Beta),
		u64(sB),
		u64(deltaM),
	)
	if !ok || !deltaS.IsUint64() {
		return 0, ErrMathOverflow
	}
	return deltaS.Uint64(), nil
}

func deltaSStrategy(alphaAbs, beta, alphaDecimals, betaDecimals, sB, deltaM *uint256.Int) (*uint256.Int, bool) {
	decimalsS := u64(shared.DecimalsS)
	two := u64(2)

	// u = 2*beta*alphaDec*S - 2*alpha*sB*betaDec
	lhs, ok := Mul(two, beta)
	if !ok {
		return nil, false
	}
	if lhs, ok = Mul(lhs, alphaDecimals); !ok {
		return nil, false
	}
	if lhs, ok = Mul(lhs, decimalsS); !ok {
		return nil, false
	}
	rhs, ok := Mul(two, alphaAbs)
	if !ok {
		return nil, false
	}
	if rhs, ok = Mul(rhs, sB); !ok {
		return nil, false
	}
	if rhs, ok = Mul(rhs, betaDecimals); !ok {
		return nil, false
	}
	u, ok := Sub(lhs, rhs)
	if !ok {
		return nil, false
	}

	// v = alphaDec*betaDec*S
	v, ok := Mul(alphaDecimals, betaDecimals)
	if !ok {
		return nil, false
	}
	if v, ok = Mul(v, decimalsS); !ok {
		return nil, false
	}

	// w = 8*deltaM*alpha
	w, ok := Mul(u64(8), deltaM)
	if !ok {
		return nil, false
	}
	if w, ok = Mul(w, alphaAbs); !ok {
		return nil, false
	}

	a, ok := computeA(u, alphaDecimals, w, v)
	if !ok {
		return nil, false
	}

	// b = sqrt(v² * alphaDec)
	b, ok := Mul(v, v)
	if !ok {
		return nil, false
	}
	if b, ok = Mul(b, alphaDecimals); !ok {
		return nil, false
	}
	b = Sqrt(b)

	denominators := []*uint256.Int{two, alphaAbs, b, v}
	left, ok := MultiplyDivide([]*uint256.Int{decimalsS, alphaDecimals, a, v}, denominators)
	if !ok {
		return nil, false
	}
	right, ok := MultiplyDivide([]*uint256.Int{decimalsS, alphaDecimals, u, b}, denominators)
	if !ok {
		return nil, false
	}
	return Sub(left, right)
}

// computeA evaluates sqrt(u²*alphaDec/scale + v²*w/scale) * sqrt(scale),
// escalating scale by 100x whenever the natural magnitudes overflow the
// 256-bit width; a coarser rounding step buys a wider safety margin.
func computeA(u, alphaDecimals, w, v *uint256.Int) (*uint256.Int, bool) {
	scale := uint256.NewInt(1)
	hundred := u64(100)

	for i := 0; i < maxScaleRetries; i++ {
		if a, ok := computeAAtScale(u, alphaDecimals, w, v, scale); ok {
			return a, true
		}
		next, ok := Mul(scale, hundred)
		if !ok {
			break
		}
		scale = next
	}
	return nil, false
}

func computeAAtScale(u, alphaDecimals, w, v, scale *uint256.Int) (*uint256.Int, bool) {
	left, ok := Div(u, scale)
	if !ok {
		return nil, false
	}
	if left, ok = Mul(left, u); !ok {
		return nil, false
	}
	if left, ok = Mul(left, alphaDecimals); !ok {
		return nil, false
	}

	right, ok := Div(v, scale)
	if !ok {
		return nil, false
	}
	if right, ok = Mul(right, v); !ok {
		return nil, false
	}
	if right, ok = Mul(right, w); !ok {
		return nil, false
	}

	sum, ok := Add(left, right)
	if !ok {
		return nil, false
	}
	return Mul(Sqrt(sum), Sqrt(scale))
}
