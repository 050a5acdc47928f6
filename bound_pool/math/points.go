package math

import (
	"math/big"

	"github.com/memechan-gg/boundpool-go/bound_pool/shared"
)

// SwapPoints converts the gross quote amount of a buy into reward points
// at the epoch's rate, floored.
func SwapPoints(buyAmount uint64, epoch *shared.PointsEpoch) uint64 {
	if epoch.PointsPerSolDenom == 0 {
		return 0
	}
	num := new(big.Int).Mul(new(big.Int).SetUint64(buyAmount), new(big.Int).SetUint64(epoch.PointsPerSolNum))
	return num.Div(num, new(big.Int).SetUint64(epoch.PointsPerSolDenom)).Uint64()
}

// PointsPayout clamps a points accrual to the reward pool's available
// balance and splits out the referral share. The referral bonus is 25% of
// the clamped primary payout, further clamped to whatever balance remains
// after the primary payout; zero payouts are skipped by callers.
func PointsPayout(points, available uint64, hasReferral bool) (payout, referral uint64) {
	payout = min(points, available)
	if !hasReferral || payout == 0 {
		return payout, 0
	}

	remaining := available - payout
	bonus := new(big.Int).Mul(new(big.Int).SetUint64(payout), big.NewInt(shared.ReferralPointsNumerator))
	referral = bonus.Div(bonus, big.NewInt(shared.ReferralPointsDenominator)).Uint64()
	referral = min(referral, remaining)
	return payout, referral
}
