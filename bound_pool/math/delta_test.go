package math

import (
	"errors"
	"testing"

	"github.com/memechan-gg/boundpool-go/bound_pool/shared"
)

func testConfig(t *testing.T, targetSol uint64) *shared.Config {
	t.Helper()
	cfg, err := NewConfig(targetSol*shared.DecimalsS, 9)
	if err != nil {
		t.Fatal("NewConfig() fail", err)
	}
	return &cfg
}

func TestComputeDeltaMFullRange(t *testing.T) {
	cfg := testConfig(t, 690)

	deltaM, err := ComputeDeltaM(cfg, 0, cfg.GammaS)
	if err != nil {
		t.Fatal("ComputeDeltaM() fail", err)
	}

	// The fixed-point slope is floored, so integrating the whole curve
	// lands a few raw units past gammaM.
	if deltaM < cfg.GammaM || deltaM > cfg.GammaM+10 {
		t.Fatalf("full range deltaM = %d, gammaM = %d", deltaM, cfg.GammaM)
	}
}

func TestComputeDeltaMMonotonic(t *testing.T) {
	cfg := testConfig(t, 690)

	var prev uint64
	for frac := uint64(1); frac <= 10; frac++ {
		sB := cfg.GammaS / 10 * frac
		deltaM, err := ComputeDeltaM(cfg, 0, sB)
		if err != nil {
			t.Fatal("ComputeDeltaM() fail", sB, err)
		}
		if deltaM <= prev {
			t.Fatalf("deltaM(%d) = %d, not above %d", sB, deltaM, prev)
		}
		prev = deltaM
	}
}

func TestComputeDeltaMAdditive(t *testing.T) {
	cfg := testConfig(t, 690)
	mid := cfg.GammaS / 2

	whole, err := ComputeDeltaM(cfg, 0, cfg.GammaS)
	if err != nil {
		t.Fatal("ComputeDeltaM() fail", err)
	}
	first, err := ComputeDeltaM(cfg, 0, mid)
	if err != nil {
		t.Fatal("ComputeDeltaM() fail", err)
	}
	second, err := ComputeDeltaM(cfg, mid, cfg.GammaS)
	if err != nil {
		t.Fatal("ComputeDeltaM() fail", err)
	}

	// Independent flooring of the two halves can only lose raw units
	// against the single integral.
	sum := first + second
	if sum > whole || whole-sum > 10 {
		t.Fatalf("split integral %d vs whole %d", sum, whole)
	}
}

func TestComputeDeltaSRoundTrip(t *testing.T) {
	cfg := testConfig(t, 690)

	for _, frac := range []uint64{1, 3, 5, 8, 10} {
		sB := cfg.GammaS / 10 * frac
		deltaM, err := ComputeDeltaM(cfg, 0, sB)
		if err != nil {
			t.Fatal("ComputeDeltaM() fail", sB, err)
		}
		deltaS, err := ComputeDeltaS(cfg, sB, deltaM)
		if err != nil {
			t.Fatal("ComputeDeltaS() fail", sB, err)
		}
		if deltaS != sB {
			t.Fatalf("round trip at %d came back as %d", sB, deltaS)
		}
	}
}

func TestComputeDeltaSMonotonic(t *testing.T) {
	cfg := testConfig(t, 690)
	sB := uint64(345) * shared.DecimalsS

	prev := uint64(0)
	for k := uint64(1); k <= 7; k++ {
		deltaM := k * 500_000_000_000
		deltaS, err := ComputeDeltaS(cfg, sB, deltaM)
		if err != nil {
			t.Fatal("ComputeDeltaS() fail", deltaM, err)
		}
		if deltaS <= prev {
			t.Fatalf("deltaS(%d) = %d, not above %d", deltaM, deltaS, prev)
		}
		prev = deltaS
	}
}

func TestComputeDeltaMOverflow(t *testing.T) {
	// A 40,000 SOL raise pushes the slope precision high enough that
	// neither integral strategy fits the full range in 128 bits.
	cfg := testConfig(t, 40_000)

	if _, err := ComputeDeltaM(cfg, 0, cfg.GammaS); !errors.Is(err, ErrMathOverflow) {
		t.Fatal("expected ErrMathOverflow, got", err)
	}

	// Trade-sized windows still price fine.
	deltaM, err := ComputeDeltaM(cfg, 0, shared.DecimalsS)
	if err != nil {
		t.Fatal("ComputeDeltaM() fail", err)
	}
	if deltaM != 18_999_956_250 {
		t.Fatalf("deltaM = %d", deltaM)
	}
}
