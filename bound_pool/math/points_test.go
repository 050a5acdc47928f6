package math

import (
	"testing"

	"github.com/memechan-gg/boundpool-go/bound_pool/shared"
)

func TestSwapPoints(t *testing.T) {
	epoch := &shared.PointsEpoch{
		EpochNumber:       1,
		PointsPerSolNum:   100,
		PointsPerSolDenom: shared.DecimalsS,
	}

	if got := SwapPoints(shared.DecimalsS, epoch); got != 100 {
		t.Fatalf("SwapPoints(1 SOL) = %d", got)
	}

	// Sub-rate amounts floor to zero.
	if got := SwapPoints(shared.DecimalsS/100-1, epoch); got != 0 {
		t.Fatalf("SwapPoints(small) = %d", got)
	}

	// An unset rate mints nothing.
	if got := SwapPoints(shared.DecimalsS, &shared.PointsEpoch{}); got != 0 {
		t.Fatalf("SwapPoints(zero denom) = %d", got)
	}
}

func TestPointsPayout(t *testing.T) {
	payout, referral := PointsPayout(100, 1_000, false)
	if payout != 100 || referral != 0 {
		t.Fatalf("payout = %d, referral = %d", payout, referral)
	}

	// Accrual beyond the treasury balance clamps to it.
	payout, referral = PointsPayout(100, 50, false)
	if payout != 50 || referral != 0 {
		t.Fatalf("payout = %d, referral = %d", payout, referral)
	}

	// Referral cut is a quarter of the primary payout.
	payout, referral = PointsPayout(100, 1_000, true)
	if payout != 100 || referral != 25 {
		t.Fatalf("payout = %d, referral = %d", payout, referral)
	}

	// The referral cut cannot exceed what remains after the payout.
	payout, referral = PointsPayout(100, 110, true)
	if payout != 100 || referral != 10 {
		t.Fatalf("payout = %d, referral = %d", payout, referral)
	}

	// Nothing remains after a clamped payout, so the referrer gets nothing.
	payout, referral = PointsPayout(100, 50, true)
	if payout != 50 || referral != 0 {
		t.Fatalf("payout = %d, referral = %d", payout, referral)
	}

	payout, referral = PointsPayout(0, 1_000, true)
	if payout != 0 || referral != 0 {
		t.Fatalf("payout = %d, referral = %d", payout, referral)
	}
}
