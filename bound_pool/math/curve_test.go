package math

import (
	"errors"
	"fmt"
	"testing"

	jsoniter "github.com/json-iterator/go"

	"github.com/memechan-gg/boundpool-go/bound_pool/shared"
	"github.com/memechan-gg/boundpool-go/u128"
)

func TestNewConfig(t *testing.T) {
	target := uint64(690) * shared.DecimalsS

	cfg, err := NewConfig(target, 9)
	if err != nil {
		t.Fatal("NewConfig() fail", err)
	}
	fmt.Println(jsoniter.MarshalToString(cfg))

	wantAlpha := u128.GenUint128FromString("2940558706154")
	if cfg.AlphaAbs.BigInt().Cmp(wantAlpha.BigInt()) != 0 {
		t.Fatalf("alpha = %v", cfg.AlphaAbs)
	}
	wantBeta := u128.GenUint128FromString("11014492753623188")
	if cfg.Beta.BigInt().Cmp(wantBeta.BigInt()) != 0 {
		t.Fatalf("beta = %v", cfg.Beta)
	}
	if cfg.Decimals.Alpha.BigInt().Uint64() != 10_000 {
		t.Fatalf("alpha decimals = %v", cfg.Decimals.Alpha)
	}
	if cfg.Decimals.Beta.BigInt().Cmp(cfg.Decimals.Alpha.BigInt()) != 0 {
		t.Fatalf("beta decimals = %v", cfg.Decimals.Beta)
	}
	if cfg.Decimals.Quote != shared.DecimalsS {
		t.Fatalf("quote decimals = %v", cfg.Decimals.Quote)
	}
	if cfg.GammaS != target || cfg.GammaM != shared.DefaultMaxM || cfg.OmegaM != shared.DefaultMaxMLP {
		t.Fatalf("curve quantities = %v %v %v", cfg.GammaS, cfg.GammaM, cfg.OmegaM)
	}
}

func TestComputeAlphaBetaCustomCurve(t *testing.T) {
	// A small curve with a 1/3 price factor instead of the defaults.
	gammaS := uint64(1_000_000_000)
	gammaM := uint64(690_000_000)
	omegaM := uint64(310_000_000)

	if err := CheckSlope(gammaM, omegaM, 1, 3); err != nil {
		t.Fatal("CheckSlope() fail", err)
	}
	if err := CheckIntercept(gammaM, omegaM, 1, 3); err != nil {
		t.Fatal("CheckIntercept() fail", err)
	}

	alphaAbs, alphaDecimals, err := ComputeAlphaAbs(gammaS, shared.DecimalsS, gammaM, omegaM, 1, 3)
	if err != nil {
		t.Fatal("ComputeAlphaAbs() fail", err)
	}
	if alphaAbs.BigInt().Cmp(u128.GenUint128FromString("11733333340000").BigInt()) != 0 {
		t.Fatalf("alpha = %v", alphaAbs)
	}
	if alphaDecimals.BigInt().Uint64() != 10_000 {
		t.Fatalf("alpha decimals = %v", alphaDecimals)
	}

	beta, err := ComputeBeta(gammaS, shared.DecimalsS, gammaM, omegaM, 1, 3, alphaDecimals)
	if err != nil {
		t.Fatal("ComputeBeta() fail", err)
	}
	if beta.BigInt().Cmp(u128.GenUint128FromString("12766666670000").BigInt()) != 0 {
		t.Fatalf("beta = %v", beta)
	}
}

func TestNewConfigRejectsBadTargets(t *testing.T) {
	// 12M SOL pushes the slope ratio below one.
	if _, err := NewConfig(12_000_000*shared.DecimalsS, 9); !errors.Is(err, ErrTargetAboveRelativeLimit) {
		t.Fatal("expected ErrTargetAboveRelativeLimit, got", err)
	}

	// 1M SOL leaves too little scale headroom for the fixed-point slope.
	if _, err := NewConfig(1_000_000*shared.DecimalsS, 9); !errors.Is(err, ErrScaleTooLow) {
		t.Fatal("expected ErrScaleTooLow, got", err)
	}
}

func TestCheckSlope(t *testing.T) {
	if err := CheckSlope(shared.DefaultMaxM, shared.DefaultMaxMLP, 2, 1); err != nil {
		t.Fatal("CheckSlope() fail", err)
	}
	if err := CheckSlope(shared.DefaultMaxM, shared.DefaultMaxMLP, 3, 1); !errors.Is(err, ErrSlopeNotNegative) {
		t.Fatal("expected ErrSlopeNotNegative, got", err)
	}
	if err := CheckSlope(shared.DefaultMaxM, shared.DefaultMaxMLP, 2, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Fatal("expected ErrInvalidParameter, got", err)
	}
}

func TestCheckIntercept(t *testing.T) {
	if err := CheckIntercept(shared.DefaultMaxM, shared.DefaultMaxMLP, 2, 1); err != nil {
		t.Fatal("CheckIntercept() fail", err)
	}
	if err := CheckIntercept(shared.DefaultMaxM, shared.DefaultMaxMLP, 5, 1); !errors.Is(err, ErrInterceptNotPositive) {
		t.Fatal("expected ErrInterceptNotPositive, got", err)
	}
}

func TestComputeDecimals(t *testing.T) {
	cases := []struct {
		scale uint64
		want  uint64
	}{
		{5, 100_000_000},
		{6, 10_000_000},
		{7, 1_000_000},
		{8, 100_000},
		{9, 10_000},
		{10, 1_000},
		{11, 100},
		{12, 10},
		{13, 1},
		{40, 1},
	}
	for _, c := range cases {
		got, err := ComputeDecimals(c.scale)
		if err != nil {
			t.Fatal("ComputeDecimals() fail", c.scale, err)
		}
		if got != c.want {
			t.Fatalf("ComputeDecimals(%d) = %d, want %d", c.scale, got, c.want)
		}
	}

	for _, scale := range []uint64{0, 1, 4} {
		if _, err := ComputeDecimals(scale); !errors.Is(err, ErrScaleTooLow) {
			t.Fatal("expected ErrScaleTooLow for scale", scale)
		}
	}
}
