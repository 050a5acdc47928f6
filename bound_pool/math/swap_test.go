package math

import (
	"errors"
	"testing"

	"github.com/memechan-gg/boundpool-go/bound_pool/shared"
)

func testPool(t *testing.T, fees shared.Fees) *shared.BoundPool {
	t.Helper()
	cfg, err := NewConfig(690*shared.DecimalsS, 9)
	if err != nil {
		t.Fatal("NewConfig() fail", err)
	}
	return &shared.BoundPool{
		MemeReserve: shared.Reserve{Tokens: cfg.GammaM},
		Fees:        fees,
		Config:      cfg,
	}
}

func defaultFees() shared.Fees {
	return shared.Fees{
		FeeMemePercent:  shared.MemeFeePercent,
		FeeQuotePercent: shared.QuoteFeePercent,
	}
}

func TestSwapAmountsBuy(t *testing.T) {
	pool := testPool(t, defaultFees())

	swap, err := SwapAmounts(pool, shared.DecimalsS, 0, true)
	if err != nil {
		t.Fatal("SwapAmounts() fail", err)
	}

	if swap.AdminFeeIn != 10_000_000 {
		t.Fatalf("adminFeeIn = %d", swap.AdminFeeIn)
	}
	if swap.AmountIn != 990_000_000 {
		t.Fatalf("amountIn = %d", swap.AmountIn)
	}
	if swap.AdminFeeOut != 10_902_906_806 {
		t.Fatalf("adminFeeOut = %d", swap.AdminFeeOut)
	}
	if swap.AmountOut != 1_079_387_773_723 {
		t.Fatalf("amountOut = %d", swap.AmountOut)
	}
}

func TestSwapAmountsBuyFillsPool(t *testing.T) {
	pool := testPool(t, defaultFees())

	// Gross input whose net leg overshoots the remaining headroom; the
	// clamp buys out the entire curve allocation.
	swap, err := SwapAmounts(pool, 698*shared.DecimalsS, 0, true)
	if err != nil {
		t.Fatal("SwapAmounts() fail", err)
	}
	if swap.AmountIn != pool.Config.GammaS {
		t.Fatalf("amountIn = %d, want full headroom %d", swap.AmountIn, pool.Config.GammaS)
	}
	if swap.AmountOut+swap.AdminFeeOut != pool.Config.GammaM {
		t.Fatalf("out legs %d + %d do not drain the reserve", swap.AmountOut, swap.AdminFeeOut)
	}

	ApplyBuy(pool, swap)

	if pool.MemeReserve.Tokens != 0 {
		t.Fatalf("meme reserve = %d after full buy", pool.MemeReserve.Tokens)
	}
	if !pool.Locked {
		t.Fatal("pool did not lock after draining the meme reserve")
	}

	if _, err = SwapAmounts(pool, shared.DecimalsS, 0, true); !errors.Is(err, ErrPoolIsLocked) {
		t.Fatal("expected ErrPoolIsLocked, got", err)
	}
}

func TestSwapAmountsZeroIn(t *testing.T) {
	pool := testPool(t, defaultFees())

	if _, err := SwapAmounts(pool, 0, 0, true); !errors.Is(err, ErrNoZeroTokens) {
		t.Fatal("expected ErrNoZeroTokens, got", err)
	}
	if _, err := SwapAmounts(pool, 0, 0, false); !errors.Is(err, ErrNoZeroTokens) {
		t.Fatal("expected ErrNoZeroTokens, got", err)
	}

	// Inputs the fee fully consumes behave like zero inputs.
	if _, err := SwapAmounts(pool, 1, 0, true); !errors.Is(err, ErrNoZeroTokens) {
		t.Fatal("expected ErrNoZeroTokens, got", err)
	}
}

func TestSwapAmountsSlippage(t *testing.T) {
	pool := testPool(t, defaultFees())

	if _, err := SwapAmounts(pool, shared.DecimalsS, 1_079_387_773_724, true); !errors.Is(err, ErrSlippageExceeded) {
		t.Fatal("expected ErrSlippageExceeded, got", err)
	}

	if _, err := SwapAmounts(pool, shared.DecimalsS, 1_079_387_773_723, true); err != nil {
		t.Fatal("SwapAmounts() fail at exact minimum", err)
	}
}

func TestSwapAmountsSellRoundTrip(t *testing.T) {
	pool := testPool(t, shared.Fees{})

	buy, err := SwapAmounts(pool, 345*shared.DecimalsS, 0, true)
	if err != nil {
		t.Fatal("SwapAmounts() fail", err)
	}
	ApplyBuy(pool, buy)

	// Selling the whole position at zero fees unwinds the buy exactly.
	sell, err := SwapAmounts(pool, buy.AmountOut, 0, false)
	if err != nil {
		t.Fatal("SwapAmounts() fail", err)
	}
	if sell.AmountOut != buy.AmountIn {
		t.Fatalf("sell returned %d, buy paid %d", sell.AmountOut, buy.AmountIn)
	}

	ApplySell(pool, sell)
	if pool.QuoteReserve.Tokens != 0 {
		t.Fatalf("quote reserve = %d after unwind", pool.QuoteReserve.Tokens)
	}
}

func TestSwapAmountsSellFees(t *testing.T) {
	pool := testPool(t, defaultFees())

	buy, err := SwapAmounts(pool, 349*shared.DecimalsS, 0, true)
	if err != nil {
		t.Fatal("SwapAmounts() fail", err)
	}
	ApplyBuy(pool, buy)

	deltaM := uint64(1_000_000_000_000)
	sell, err := SwapAmounts(pool, deltaM, 0, false)
	if err != nil {
		t.Fatal("SwapAmounts() fail", err)
	}

	// The sell direction charges the admin fee twice per leg.
	if sell.AdminFeeIn != 2*pool.Fees.MemeFeeAmount(deltaM) {
		t.Fatalf("adminFeeIn = %d", sell.AdminFeeIn)
	}
	if sell.AmountIn != deltaM-sell.AdminFeeIn {
		t.Fatalf("amountIn = %d", sell.AmountIn)
	}
	if sell.AdminFeeOut == 0 || sell.AmountOut == 0 {
		t.Fatalf("degenerate sell legs %+v", sell)
	}
	if sell.AmountOut+sell.AdminFeeOut > pool.QuoteReserve.Tokens {
		t.Fatal("sell pays out more quote than the pool holds")
	}
}

func TestSellFromTicket(t *testing.T) {
	pool := testPool(t, shared.Fees{})

	buy, err := SwapAmounts(pool, 345*shared.DecimalsS, 0, true)
	if err != nil {
		t.Fatal("SwapAmounts() fail", err)
	}
	ApplyBuy(pool, buy)

	unlockAt := int64(1_700_000_000)
	ticket := &shared.MemeTicket{
		Amount:         buy.AmountOut,
		UntilTimestamp: unlockAt,
	}

	if _, err = SellFromTicket(pool, ticket, buy.AmountOut, 0, unlockAt-1); !errors.Is(err, ErrTicketTokensLocked) {
		t.Fatal("expected ErrTicketTokensLocked, got", err)
	}
	if _, err = SellFromTicket(pool, ticket, buy.AmountOut+1, 0, unlockAt); !errors.Is(err, ErrNotEnoughTicketTokens) {
		t.Fatal("expected ErrNotEnoughTicketTokens, got", err)
	}

	sell, err := SellFromTicket(pool, ticket, buy.AmountOut, 0, unlockAt)
	if err != nil {
		t.Fatal("SellFromTicket() fail", err)
	}
	if sell.AmountOut != buy.AmountIn {
		t.Fatalf("sell returned %d, buy paid %d", sell.AmountOut, buy.AmountIn)
	}
}

func TestApplyBuyAccounting(t *testing.T) {
	pool := testPool(t, defaultFees())

	swap, err := SwapAmounts(pool, shared.DecimalsS, 0, true)
	if err != nil {
		t.Fatal("SwapAmounts() fail", err)
	}
	memeBefore := pool.MemeReserve.Tokens

	ApplyBuy(pool, swap)

	if pool.QuoteReserve.Tokens != swap.AmountIn {
		t.Fatalf("quote reserve = %d", pool.QuoteReserve.Tokens)
	}
	if pool.MemeReserve.Tokens != memeBefore-swap.AmountOut-swap.AdminFeeOut {
		t.Fatalf("meme reserve = %d", pool.MemeReserve.Tokens)
	}
	if pool.AdminFeesQuote != swap.AdminFeeIn || pool.AdminFeesMeme != swap.AdminFeeOut {
		t.Fatalf("admin fees = %d / %d", pool.AdminFeesQuote, pool.AdminFeesMeme)
	}
	if pool.Locked {
		t.Fatal("pool locked on a partial buy")
	}
}
