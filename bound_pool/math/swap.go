package math

import (
	"github.com/memechan-gg/boundpool-go/bound_pool/shared"
)

// SwapAmounts prices a swap against the pool without touching its state.
// buyMeme selects the direction: quote in / meme out when true.
func SwapAmounts(pool *shared.BoundPool, amountIn, minAmountOut uint64, buyMeme bool) (shared.SwapAmount, error) {
	if amountIn == 0 {
		return shared.SwapAmount{}, ErrNoZeroTokens
	}
	if pool.Locked {
		return shared.SwapAmount{}, ErrPoolIsLocked
	}
	if buyMeme {
		return buySwapAmounts(pool, amountIn, minAmountOut)
	}
	return sellSwapAmounts(pool, amountIn, minAmountOut)
}

func buySwapAmounts(pool *shared.BoundPool, deltaS, minDeltaM uint64) (shared.SwapAmount, error) {
	mT0, sT0 := pool.Balances()
	cfg := &pool.Config

	maxDeltaS := cfg.GammaS - sT0

	adminFeeIn := pool.Fees.QuoteFeeAmount(deltaS)
	if adminFeeIn >= deltaS {
		return shared.SwapAmount{}, ErrNoZeroTokens
	}

	// A fee-adjusted input that fills the remaining headroom buys out the
	// whole reserve directly; the integral between equal bounds is zero
	// and the solver is only defined strictly inside the curve's domain.
	isMax := deltaS-adminFeeIn >= maxDeltaS
	netDeltaS := min(deltaS-adminFeeIn, maxDeltaS)

	deltaM := mT0
	if !isMax {
		var err error
		deltaM, err = ComputeDeltaM(cfg, sT0, sT0+netDeltaS)
		if err != nil {
			return shared.SwapAmount{}, err
		}
	}

	adminFeeOut := pool.Fees.MemeFeeAmount(deltaM)
	netDeltaM := deltaM - adminFeeOut

	if netDeltaM < minDeltaM {
		return shared.SwapAmount{}, ErrSlippageExceeded
	}

	return shared.SwapAmount{
		AmountIn:    netDeltaS,
		AmountOut:   netDeltaM,
		AdminFeeIn:  adminFeeIn,
		AdminFeeOut: adminFeeOut,
	}, nil
}

func sellSwapAmounts(pool *shared.BoundPool, deltaM, minDeltaS uint64) (shared.SwapAmount, error) {
	mB, sB := pool.Balances()
	cfg := &pool.Config

	maxDeltaM := cfg.GammaM - mB

	// The deployed program charges the sell-side admin fee twice on both
	// legs; kept bit-for-bit for parity even though it is asymmetric with
	// the buy direction.
	adminFeeIn := pool.Fees.MemeFeeAmount(deltaM) * 2
	if adminFeeIn >= deltaM {
		return shared.SwapAmount{}, ErrNoZeroTokens
	}

	isMax := deltaM-adminFeeIn >= maxDeltaM
	netDeltaM := min(deltaM-adminFeeIn, maxDeltaM)

	deltaS := sB
	if !isMax {
		var err error
		deltaS, err = ComputeDeltaS(cfg, sB, netDeltaM)
		if err != nil {
			return shared.SwapAmount{}, err
		}
	}

	adminFeeOut := pool.Fees.QuoteFeeAmount(deltaS) * 2
	if adminFeeOut > deltaS {
		return shared.SwapAmount{}, ErrMathOverflow
	}
	netDeltaS := deltaS - adminFeeOut

	if netDeltaS < minDeltaS {
		return shared.SwapAmount{}, ErrSlippageExceeded
	}

	return shared.SwapAmount{
		AmountIn:    netDeltaM,
		AmountOut:   netDeltaS,
		AdminFeeIn:  adminFeeIn,
		AdminFeeOut: adminFeeOut,
	}, nil
}

// SellFromTicket prices a sell drawn from a vesting ticket, enforcing the
// ticket's lock schedule and balance before the curve math runs.
func SellFromTicket(pool *shared.BoundPool, ticket *shared.MemeTicket, amountIn, minAmountOut uint64, now int64) (shared.SwapAmount, error) {
	if !ticket.IsUnlocked(now) {
		return shared.SwapAmount{}, ErrTicketTokensLocked
	}
	if amountIn > ticket.Amount {
		return shared.SwapAmount{}, ErrNotEnoughTicketTokens
	}
	return SwapAmounts(pool, amountIn, minAmountOut, false)
}

// ApplyBuy settles a priced buy into the pool: reserves move, admin fees
// accrue, and draining the meme reserve locks the pool for good.
func ApplyBuy(pool *shared.BoundPool, swap shared.SwapAmount) {
	pool.AdminFeesQuote += swap.AdminFeeIn
	pool.AdminFeesMeme += swap.AdminFeeOut
	pool.QuoteReserve.Tokens += swap.AmountIn
	pool.MemeReserve.Tokens -= swap.AmountOut + swap.AdminFeeOut
	if pool.MemeReserve.Tokens == 0 {
		pool.Locked = true
	}
}

// ApplySell settles a priced sell into the pool.
func ApplySell(pool *shared.BoundPool, swap shared.SwapAmount) {
	pool.AdminFeesMeme += swap.AdminFeeIn
	pool.AdminFeesQuote += swap.AdminFeeOut
	pool.MemeReserve.Tokens += swap.AmountIn
	pool.QuoteReserve.Tokens -= swap.AmountOut + swap.AdminFeeOut
}
