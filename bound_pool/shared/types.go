package shared

import (
	"math/big"

	bin "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
)

const (
	// DecimalsS is the quote (wrapped SOL) scale, 9 decimals.
	DecimalsS = 1_000_000_000
	// DecimalsM is the meme token scale, 6 decimals.
	DecimalsM = 1_000_000

	// MaxMemeTokens is the total minted supply: 1B tokens in raw denomination.
	MaxMemeTokens = 1_000_000_000 * DecimalsM
	// DefaultMaxM is the curve-sellable amount: 690M tokens.
	DefaultMaxM = 690_000_000 * DecimalsM
	// DefaultMaxMLP is the amount reserved for the graduation LP: 310M tokens.
	DefaultMaxMLP = 310_000_000 * DecimalsM

	MaxAirdroppedTokens = 100_000_000 * DecimalsM

	DefaultPriceFactorNumerator   = 2
	DefaultPriceFactorDenominator = 1

	// FeePrecision is the denominator of the admin fee rates.
	FeePrecision    = 1_000_000_000
	MemeFeePercent  = 10_000_000 // 1%
	QuoteFeePercent = 10_000_000 // 1%

	// Vesting period bounds in seconds (1 to 13 days).
	MinVestingPeriod = 86_400
	MaxVestingPeriod = 13 * 86_400

	ReferralPointsNumerator   = 25_000
	ReferralPointsDenominator = 100_000
)

type TradeDirection uint8

const (
	// TradeDirectionQuoteToMeme buys meme tokens with quote (swap_y).
	TradeDirectionQuoteToMeme TradeDirection = 0
	// TradeDirectionMemeToQuote sells meme tokens for quote (swap_x).
	TradeDirectionMemeToQuote TradeDirection = 1
)

// Reserve is one side of the pool: raw amount held plus the mint and
// custody vault it lives in.
type Reserve struct {
	Tokens uint64
	Mint   solanago.PublicKey
	Vault  solanago.PublicKey
}

// Fees holds the two admin fee rates, fractions of FeePrecision.
// Immutable after pool creation.
type Fees struct {
	FeeMemePercent  uint64
	FeeQuotePercent uint64
}

func feeAmount(amount, percent uint64) uint64 {
	num := new(big.Int).Mul(new(big.Int).SetUint64(amount), new(big.Int).SetUint64(percent))
	num.Add(num, big.NewInt(FeePrecision-1))
	return num.Div(num, big.NewInt(FeePrecision)).Uint64()
}

// MemeFeeAmount returns the admin fee on a meme-side amount, rounded up.
func (f Fees) MemeFeeAmount(amount uint64) uint64 {
	return feeAmount(amount, f.FeeMemePercent)
}

// QuoteFeeAmount returns the admin fee on a quote-side amount, rounded up.
func (f Fees) QuoteFeeAmount(amount uint64) uint64 {
	return feeAmount(amount, f.FeeQuotePercent)
}

// Decimals carries the three fixed-point scales the solvers use: the
// precision chosen for alpha, the one for beta (always equal to alpha's
// today) and the quote mint's native scale.
type Decimals struct {
	Alpha bin.Uint128
	Beta  bin.Uint128
	Quote uint64
}

// Config is the immutable curve definition written once at pool creation.
// AlphaAbs stores the slope magnitude; the curve is negatively sloped.
type Config struct {
	AlphaAbs         bin.Uint128
	Beta             bin.Uint128
	PriceFactorNum   uint64
	PriceFactorDenom uint64
	// GammaS is the quote raise target in raw denomination.
	GammaS uint64
	// GammaM is the curve-sellable meme amount in raw denomination.
	GammaM uint64
	// OmegaM is the LP-reserved meme amount in raw denomination.
	OmegaM   uint64
	Decimals Decimals
}

// BoundPool is the on-chain pool account.
type BoundPool struct {
	MemeReserve      Reserve
	QuoteReserve     Reserve
	AdminFeesMeme    uint64
	AdminFeesQuote   uint64
	FeeVaultQuote    solanago.PublicKey
	CreatorAddr      solanago.PublicKey
	Fees             Fees
	Config           Config
	AirdroppedTokens uint64
	Locked           bool
	VestingPeriod    int64
}

// Balances returns the current meme and quote reserve amounts.
func (p *BoundPool) Balances() (memeTokens, quoteTokens uint64) {
	return p.MemeReserve.Tokens, p.QuoteReserve.Tokens
}

// Vesting tracks the locked notional of a ticket.
type Vesting struct {
	Notional uint64
	Released uint64
}

// MemeTicket is a per-user position account created on every buy.
type MemeTicket struct {
	Owner          solanago.PublicKey
	Pool           solanago.PublicKey
	Amount         uint64
	Vesting        Vesting
	UntilTimestamp int64
}

// IsUnlocked reports whether the ticket tokens can be sold at now.
func (t *MemeTicket) IsUnlocked(now int64) bool {
	return now >= t.UntilTimestamp
}

// TargetConfig supplies the quote raise target per quote mint.
type TargetConfig struct {
	TokenTargetAmount uint64
	TokenMint         solanago.PublicKey
}

// PointsEpoch is the read-only reward rate table entry.
type PointsEpoch struct {
	EpochNumber       uint64
	PointsPerSolNum   uint64
	PointsPerSolDenom uint64
}

// SwapAmount is the settlement breakdown of a single swap: net legs plus
// the admin fees taken from each side.
type SwapAmount struct {
	AmountIn    uint64
	AmountOut   uint64
	AdminFeeIn  uint64
	AdminFeeOut uint64
}
