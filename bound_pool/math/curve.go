package math

import (
	bin "github.com/gagliardetto/binary"
	"github.com/holiman/uint256"

	"github.com/memechan-gg/boundpool-go/bound_pool/shared"
)

// priceFactorApplied returns omegaM * num / denom in full width.
func priceFactorApplied(omegaM, priceFactorNum, priceFactorDenom uint64) (*uint256.Int, error) {
	if priceFactorDenom == 0 {
		return nil, ErrInvalidParameter
	}
	prod, _ := Mul(u64(omegaM), u64(priceFactorNum))
	q, _ := Div(prod, u64(priceFactorDenom))
	return q, nil
}

// CheckSlope fails unless the curve stays negatively sloped:
// omegaM * priceFactor must be strictly below gammaM.
func CheckSlope(gammaM, omegaM, priceFactorNum, priceFactorDenom uint64) error {
	pfo, err := priceFactorApplied(omegaM, priceFactorNum, priceFactorDenom)
	if err != nil {
		return err
	}
	if pfo.Cmp(u64(gammaM)) >= 0 {
		return ErrSlopeNotNegative
	}
	return nil
}

// CheckIntercept fails unless the price intercept is positive:
// 2*gammaM must be strictly above omegaM * priceFactor.
func CheckIntercept(gammaM, omegaM, priceFactorNum, priceFactorDenom uint64) error {
	omp, err := priceFactorApplied(omegaM, priceFactorNum, priceFactorDenom)
	if err != nil {
		return err
	}
	two := u64(2)
	left, _ := Mul(two, u64(gammaM))
	if left.Cmp(omp) <= 0 {
		return ErrInterceptNotPositive
	}
	return nil
}

// ComputeDecimals maps the net decimal scale of the slope ratio to the
// fixed-point precision used for both curve constants. Scales up to 4
// cannot be represented; anything above 12 needs no extra precision.
func ComputeDecimals(scale uint64) (uint64, error) {
	switch {
	case scale <= 4:
		return 0, ErrScaleTooLow
	case scale <= 12:
		precision := uint64(10)
		for i := scale; i < 12; i++ {
			precision *= 10
		}
		return precision, nil
	default:
		return 1, nil
	}
}

// ComputeAlphaAbs derives the slope magnitude and the precision it is
// scaled by. gammaSDenom is the quote mint's native scale (10^decimals).
func ComputeAlphaAbs(gammaS, gammaSDenom, gammaM, omegaM, priceFactorNum, priceFactorDenom uint64) (alphaAbs, alphaDecimals bin.Uint128, err error) {
	if err = CheckSlope(gammaM, omegaM, priceFactorNum, priceFactorDenom); err != nil {
		return
	}

	left, err := priceFactorApplied(omegaM, priceFactorNum, priceFactorDenom)
	if err != nil {
		return
	}

	diff, _ := Sub(u64(gammaM), left)
	num, _ := Mul(u64(2), diff)
	denomScaleSq, _ := Mul(u64(gammaSDenom), u64(gammaSDenom))
	num, ok := Mul(num, denomScaleSq)
	if !ok {
		err = ErrMathOverflow
		return
	}
	denom, _ := Mul(u64(gammaS), u64(gammaS))

	if num.Cmp(denom) <= 0 {
		err = ErrTargetAboveRelativeLimit
		return
	}

	netScale := ComputeScale(num) - ComputeScale(denom)
	precision, err := ComputeDecimals(netScale)
	if err != nil {
		return
	}

	scaled, ok := Mul(num, u64(precision))
	if !ok {
		err = ErrMathOverflow
		return
	}
	alpha, _ := Div(scaled, denom)

	alphaAbs, ok = U256ToU128(alpha)
	if !ok {
		err = ErrMathOverflow
		return
	}
	alphaDecimals, _ = U256ToU128(u64(precision))
	return
}

// ComputeBeta derives the intercept at the same precision chosen for the
// slope; the two constants must share a scale for the solvers to agree.
func ComputeBeta(gammaS, gammaSDenom, gammaM, omegaM, priceFactorNum, priceFactorDenom uint64, betaDecimals bin.Uint128) (bin.Uint128, error) {
	if err := CheckIntercept(gammaM, omegaM, priceFactorNum, priceFactorDenom); err != nil {
		return bin.Uint128{}, err
	}

	right, err := priceFactorApplied(omegaM, priceFactorNum, priceFactorDenom)
	if err != nil {
		return bin.Uint128{}, err
	}

	left, _ := Mul(u64(2), u64(gammaM))
	diff, _ := Sub(left, right)
	num, ok := Mul(diff, u64(gammaSDenom))
	if !ok {
		return bin.Uint128{}, ErrMathOverflow
	}
	num, ok = Mul(num, U128ToU256(betaDecimals))
	if !ok {
		return bin.Uint128{}, ErrMathOverflow
	}
	beta, ok := Div(num, u64(gammaS))
	if !ok {
		return bin.Uint128{}, ErrMathOverflow
	}

	out, ok := U256ToU128(beta)
	if !ok {
		return bin.Uint128{}, ErrMathOverflow
	}
	return out, nil
}

// NewConfig derives the full immutable curve configuration for a pool
// raising targetAmount of the quote asset, using the default curve
// quantities and price factor.
func NewConfig(targetAmount uint64, quoteDecimals uint8) (shared.Config, error) {
	gammaSDenom := uint64(1)
	for i := uint8(0); i < quoteDecimals; i++ {
		gammaSDenom *= 10
	}

	alphaAbs, decimals, err := ComputeAlphaAbs(
		targetAmount, gammaSDenom,
		shared.DefaultMaxM, shared.DefaultMaxMLP,
		shared.DefaultPriceFactorNumerator, shared.DefaultPriceFactorDenominator,
	)
	if err != nil {
		return shared.Config{}, err
	}

	beta, err := ComputeBeta(
		targetAmount, gammaSDenom,
		shared.DefaultMaxM, shared.DefaultMaxMLP,
		shared.DefaultPriceFactorNumerator, shared.DefaultPriceFactorDenominator,
		decimals,
	)
	if err != nil {
		return shared.Config{}, err
	}

	return shared.Config{
		AlphaAbs:         alphaAbs,
		Beta:             beta,
		PriceFactorNum:   shared.DefaultPriceFactorNumerator,
		PriceFactorDenom: shared.DefaultPriceFactorDenominator,
		GammaS:           targetAmount,
		GammaM:           shared.DefaultMaxM,
		OmegaM:           shared.DefaultMaxMLP,
		Decimals: shared.Decimals{
			Alpha: decimals,
			Beta:  decimals,
			Quote: gammaSDenom,
		},
	}, nil
}
