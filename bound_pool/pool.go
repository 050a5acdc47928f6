package bound_pool

import (
	"context"
	"fmt"
	"time"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/memechan-gg/boundpool-go/bound_pool/helpers"
	"github.com/memechan-gg/boundpool-go/bound_pool/math"
	"github.com/memechan-gg/boundpool-go/bound_pool/shared"
	solanautil "github.com/memechan-gg/boundpool-go/solana"
)

type PoolService struct {
	*BoundPoolProgram
	state *StateService
}

func NewPoolService(rpcClient *rpc.Client, commitment rpc.CommitmentType) *PoolService {
	return &PoolService{
		BoundPoolProgram: NewBoundPoolProgram(rpcClient, commitment),
		state:            NewStateService(rpcClient, commitment),
	}
}

// NewPoolParams describes a pool creation request. MemeMint must be a fresh
// mint whose authority is handed to the pool signer by the program.
type NewPoolParams struct {
	Payer            solanago.PublicKey
	MemeMint         solanago.PublicKey
	QuoteMint        solanago.PublicKey
	AirdroppedTokens uint64
	VestingPeriod    int64
}

// NewPoolInstruction validates the creation parameters against the on-chain
// target config, derives every pool account and returns the instruction list
// plus the new pool address.
func (s *PoolService) NewPoolInstruction(ctx context.Context, params NewPoolParams) ([]solanago.Instruction, solanago.PublicKey, error) {
	if err := helpers.ValidateCreationParams(params.AirdroppedTokens, params.VestingPeriod); err != nil {
		return nil, solanago.PublicKey{}, err
	}

	targetCfg, err := s.state.GetTargetConfig(ctx, params.QuoteMint)
	if err != nil {
		return nil, solanago.PublicKey{}, fmt.Errorf("fetch target config: %w", err)
	}
	if err = helpers.ValidateTargetConfig(targetCfg, params.QuoteMint); err != nil {
		return nil, solanago.PublicKey{}, err
	}

	quoteDecimals, err := s.getMintDecimals(ctx, params.QuoteMint)
	if err != nil {
		return nil, solanago.PublicKey{}, err
	}

	// Reject targets the curve cannot express before paying for the
	// transaction.
	if _, err = math.NewConfig(targetCfg.TokenTargetAmount, quoteDecimals); err != nil {
		return nil, solanago.PublicKey{}, err
	}

	pool, err := helpers.DeriveBoundPoolPDA(params.MemeMint, params.QuoteMint)
	if err != nil {
		return nil, solanago.PublicKey{}, err
	}
	poolSigner, err := helpers.DerivePoolSignerPDA(pool)
	if err != nil {
		return nil, solanago.PublicKey{}, err
	}
	targetConfig, err := helpers.DeriveTargetConfigPDA(params.QuoteMint)
	if err != nil {
		return nil, solanago.PublicKey{}, err
	}

	var instructions []solanago.Instruction

	memeVault, quoteVault, ataInstructions, err := s.PrepareTokenAccounts(ctx, poolSigner, params.Payer, params.MemeMint, params.QuoteMint, token.ProgramID)
	if err != nil {
		return nil, solanago.PublicKey{}, err
	}
	instructions = append(instructions, ataInstructions...)

	feeQuoteVault, createFeeVault, err := helpers.GetOrCreateATAInstruction(ctx, s.RPC, params.QuoteMint, helpers.FeeVaultOwner, params.Payer, token.ProgramID)
	if err != nil {
		return nil, solanago.PublicKey{}, err
	}
	if createFeeVault != nil {
		instructions = append(instructions, createFeeVault)
	}

	ix, err := helpers.NewNewPoolInstruction(helpers.NewPoolAccounts{
		Sender:        params.Payer,
		Pool:          pool,
		MemeMint:      params.MemeMint,
		QuoteVault:    quoteVault,
		QuoteMint:     params.QuoteMint,
		FeeQuoteVault: feeQuoteVault,
		MemeVault:     memeVault,
		TargetConfig:  targetConfig,
		PoolSigner:    poolSigner,
	}, params.AirdroppedTokens, params.VestingPeriod)
	if err != nil {
		return nil, solanago.PublicKey{}, err
	}
	instructions = append(instructions, ix)

	return solanautil.MergeInstructions(instructions), pool, nil
}

// BuyParams describes a quote-for-meme swap request. Referrer is optional.
type BuyParams struct {
	Owner         solanago.PublicKey
	Pool          solanago.PublicKey
	QuoteAmountIn uint64
	MemeMinOut    uint64
	TicketNumber  uint64
	EpochNumber   uint64
	Referrer      *solanago.PublicKey
}

// BuyInstruction builds the swap_y instruction list for buying meme tokens
// with quote tokens. The output stays escrowed in a vesting ticket.
func (s *PoolService) BuyInstruction(ctx context.Context, params BuyParams) ([]solanago.Instruction, solanago.PublicKey, error) {
	pool, err := s.state.GetPool(ctx, params.Pool)
	if err != nil {
		return nil, solanago.PublicKey{}, fmt.Errorf("fetch pool: %w", err)
	}

	memeTicket, err := helpers.DeriveMemeTicketPDA(params.Pool, params.Owner, params.TicketNumber)
	if err != nil {
		return nil, solanago.PublicKey{}, err
	}
	poolSigner, err := helpers.DerivePoolSignerPDA(params.Pool)
	if err != nil {
		return nil, solanago.PublicKey{}, err
	}
	pointsPda, err := helpers.DerivePointsPDA()
	if err != nil {
		return nil, solanago.PublicKey{}, err
	}
	pointsEpoch, err := helpers.DerivePointsEpochPDA(params.EpochNumber)
	if err != nil {
		return nil, solanago.PublicKey{}, err
	}

	var instructions []solanago.Instruction

	userSol, createUserSol, err := helpers.GetOrCreateATAInstruction(ctx, s.RPC, pool.QuoteReserve.Mint, params.Owner, params.Owner, token.ProgramID)
	if err != nil {
		return nil, solanago.PublicKey{}, err
	}
	if createUserSol != nil {
		instructions = append(instructions, createUserSol)
	}

	userPoints, createUserPoints, err := helpers.GetOrCreateATAInstruction(ctx, s.RPC, helpers.PointsMint, params.Owner, params.Owner, token.ProgramID)
	if err != nil {
		return nil, solanago.PublicKey{}, err
	}
	if createUserPoints != nil {
		instructions = append(instructions, createUserPoints)
	}

	pointsAcc, err := helpers.FindAssociatedTokenAddress(pointsPda, helpers.PointsMint, token.ProgramID)
	if err != nil {
		return nil, solanago.PublicKey{}, err
	}

	var referrerPoints *solanago.PublicKey
	if params.Referrer != nil {
		ata, createReferrer, err := helpers.GetOrCreateATAInstruction(ctx, s.RPC, helpers.PointsMint, *params.Referrer, params.Owner, token.ProgramID)
		if err != nil {
			return nil, solanago.PublicKey{}, err
		}
		if createReferrer != nil {
			instructions = append(instructions, createReferrer)
		}
		referrerPoints = &ata
	}

	ix, err := helpers.NewSwapYInstruction(helpers.SwapYAccounts{
		Pool:           params.Pool,
		QuoteVault:     pool.QuoteReserve.Vault,
		UserSol:        userSol,
		MemeTicket:     memeTicket,
		UserPoints:     userPoints,
		ReferrerPoints: referrerPoints,
		PointsEpoch:    pointsEpoch,
		PointsAcc:      pointsAcc,
		Owner:          params.Owner,
		PointsPda:      pointsPda,
		PoolSignerPda:  poolSigner,
	}, params.QuoteAmountIn, params.MemeMinOut, params.TicketNumber)
	if err != nil {
		return nil, solanago.PublicKey{}, err
	}
	instructions = append(instructions, ix)

	return solanautil.MergeInstructions(instructions), memeTicket, nil
}

// SellParams describes a meme-for-quote swap request against an unlocked
// ticket.
type SellParams struct {
	Owner        solanago.PublicKey
	Pool         solanago.PublicKey
	MemeTicket   solanago.PublicKey
	MemeAmountIn uint64
	QuoteMinOut  uint64
}

// SellInstruction builds the swap_x instruction list for selling ticket
// tokens back into the pool.
func (s *PoolService) SellInstruction(ctx context.Context, params SellParams) ([]solanago.Instruction, error) {
	pool, err := s.state.GetPool(ctx, params.Pool)
	if err != nil {
		return nil, fmt.Errorf("fetch pool: %w", err)
	}

	// Price the sell locally first; a locked ticket or an overdraw would
	// only fail on chain.
	ticket, err := s.state.GetMemeTicket(ctx, params.MemeTicket)
	if err != nil {
		return nil, fmt.Errorf("fetch ticket: %w", err)
	}
	if _, err = math.SellFromTicket(pool, ticket, params.MemeAmountIn, params.QuoteMinOut, time.Now().Unix()); err != nil {
		return nil, err
	}

	poolSigner, err := helpers.DerivePoolSignerPDA(params.Pool)
	if err != nil {
		return nil, err
	}

	var instructions []solanago.Instruction

	userSol, createUserSol, err := helpers.GetOrCreateATAInstruction(ctx, s.RPC, pool.QuoteReserve.Mint, params.Owner, params.Owner, token.ProgramID)
	if err != nil {
		return nil, err
	}
	if createUserSol != nil {
		instructions = append(instructions, createUserSol)
	}

	ix, err := helpers.NewSwapXInstruction(helpers.SwapXAccounts{
		Pool:       params.Pool,
		MemeTicket: params.MemeTicket,
		UserSol:    userSol,
		QuoteVault: pool.QuoteReserve.Vault,
		Owner:      params.Owner,
		PoolSigner: poolSigner,
	}, params.MemeAmountIn, params.QuoteMinOut)
	if err != nil {
		return nil, err
	}
	instructions = append(instructions, ix)

	return instructions, nil
}

// GetSwapYAmt previews a buy against the pool's current reserves without
// sending a transaction.
func (s *PoolService) GetSwapYAmt(ctx context.Context, poolAddress solanago.PublicKey, quoteAmountIn, memeMinOut uint64) (shared.SwapAmount, error) {
	pool, err := s.state.GetPool(ctx, poolAddress)
	if err != nil {
		return shared.SwapAmount{}, err
	}
	return math.SwapAmounts(pool, quoteAmountIn, memeMinOut, true)
}

// GetSwapXAmt previews a sell against the pool's current reserves without
// sending a transaction.
func (s *PoolService) GetSwapXAmt(ctx context.Context, poolAddress solanago.PublicKey, memeAmountIn, quoteMinOut uint64) (shared.SwapAmount, error) {
	pool, err := s.state.GetPool(ctx, poolAddress)
	if err != nil {
		return shared.SwapAmount{}, err
	}
	return math.SwapAmounts(pool, memeAmountIn, quoteMinOut, false)
}

func (s *PoolService) getMintDecimals(ctx context.Context, mint solanago.PublicKey) (uint8, error) {
	tokens, err := solanautil.GetMultipleToken(ctx, s.RPC, mint)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 || tokens[0] == nil {
		return 0, fmt.Errorf("mint account not found")
	}
	return tokens[0].Decimals, nil
}
