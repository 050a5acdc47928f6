package bound_pool

import (
	"context"
	"fmt"
	"math/big"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"

	"github.com/memechan-gg/boundpool-go/bound_pool/helpers"
	"github.com/memechan-gg/boundpool-go/bound_pool/shared"
	solanautil "github.com/memechan-gg/boundpool-go/solana"
)

// ProgramAccount pairs a fetched account with its address.
type ProgramAccount[T any] struct {
	Pubkey  solanago.PublicKey
	Account *T
}

type StateService struct {
	*BoundPoolProgram
}

func NewStateService(rpcClient *rpc.Client, commitment rpc.CommitmentType) *StateService {
	return &StateService{BoundPoolProgram: NewBoundPoolProgram(rpcClient, commitment)}
}

func (s *StateService) fetch(ctx context.Context, address solanago.PublicKey) ([]byte, error) {
	acc, err := s.RPC.GetAccountInfoWithOpts(ctx, address, &rpc.GetAccountInfoOpts{Commitment: s.Commitment})
	if err != nil {
		return nil, err
	}
	if acc == nil || acc.Value == nil {
		return nil, fmt.Errorf("account not found")
	}
	return acc.Value.Data.GetBinary(), nil
}

func (s *StateService) GetPool(ctx context.Context, poolAddress solanago.PublicKey) (*shared.BoundPool, error) {
	data, err := s.fetch(ctx, poolAddress)
	if err != nil {
		return nil, err
	}
	return helpers.ParseAccountBoundPool(data)
}

func (s *StateService) GetPools(ctx context.Context) ([]ProgramAccount[shared.BoundPool], error) {
	return s.listPools(ctx, nil)
}

func (s *StateService) GetPoolsByCreator(ctx context.Context, creator solanago.PublicKey) ([]ProgramAccount[shared.BoundPool], error) {
	return s.listPools(ctx, &helpers.Filter{
		Owner:  creator,
		Offset: helpers.ComputeStructOffset(&shared.BoundPool{}, "CreatorAddr"),
	})
}

func (s *StateService) listPools(ctx context.Context, filter *helpers.Filter) ([]ProgramAccount[shared.BoundPool], error) {
	filters := helpers.CreateProgramAccountFilter(helpers.AccountKeyBoundPool, filter)
	accounts, err := s.RPC.GetProgramAccountsWithOpts(ctx, helpers.BoundPoolProgramID, &rpc.GetProgramAccountsOpts{Commitment: s.Commitment, Filters: filters})
	if err != nil {
		return nil, err
	}
	out := make([]ProgramAccount[shared.BoundPool], 0)
	for _, acc := range accounts {
		parsed, err := helpers.ParseAccountBoundPool(acc.Account.Data.GetBinary())
		if err != nil {
			continue
		}
		out = append(out, ProgramAccount[shared.BoundPool]{Pubkey: acc.Pubkey, Account: parsed})
	}
	return out, nil
}

func (s *StateService) GetMemeTicket(ctx context.Context, ticketAddress solanago.PublicKey) (*shared.MemeTicket, error) {
	data, err := s.fetch(ctx, ticketAddress)
	if err != nil {
		return nil, err
	}
	return helpers.ParseAccountMemeTicket(data)
}

// GetMemeTicketsByOwner lists the owner's open positions across pools.
func (s *StateService) GetMemeTicketsByOwner(ctx context.Context, owner solanago.PublicKey) ([]ProgramAccount[shared.MemeTicket], error) {
	filters := helpers.CreateProgramAccountFilter(helpers.AccountKeyMemeTicket, &helpers.Filter{
		Owner:  owner,
		Offset: helpers.ComputeStructOffset(&shared.MemeTicket{}, "Owner"),
	})
	accounts, err := s.RPC.GetProgramAccountsWithOpts(ctx, helpers.BoundPoolProgramID, &rpc.GetProgramAccountsOpts{Commitment: s.Commitment, Filters: filters})
	if err != nil {
		return nil, err
	}
	out := make([]ProgramAccount[shared.MemeTicket], 0)
	for _, acc := range accounts {
		parsed, err := helpers.ParseAccountMemeTicket(acc.Account.Data.GetBinary())
		if err != nil {
			continue
		}
		out = append(out, ProgramAccount[shared.MemeTicket]{Pubkey: acc.Pubkey, Account: parsed})
	}
	return out, nil
}

func (s *StateService) GetTargetConfig(ctx context.Context, quoteMint solanago.PublicKey) (*shared.TargetConfig, error) {
	address, err := helpers.DeriveTargetConfigPDA(quoteMint)
	if err != nil {
		return nil, err
	}
	data, err := s.fetch(ctx, address)
	if err != nil {
		return nil, err
	}
	return helpers.ParseAccountTargetConfig(data)
}

func (s *StateService) GetPointsEpoch(ctx context.Context, epochNumber uint64) (*shared.PointsEpoch, error) {
	address, err := helpers.DerivePointsEpochPDA(epochNumber)
	if err != nil {
		return nil, err
	}
	data, err := s.fetch(ctx, address)
	if err != nil {
		return nil, err
	}
	return helpers.ParseAccountPointsEpoch(data)
}

// VaultBalances reads the pool's meme and quote vault token accounts
// directly. The figures include accrued admin fees, unlike Balances on the
// account state.
func (s *StateService) VaultBalances(ctx context.Context, pool *shared.BoundPool) (memeTokens, quoteTokens uint64, err error) {
	accounts, err := solanautil.GetMultipleAccount(ctx, s.RPC, pool.MemeReserve.Vault, pool.QuoteReserve.Vault)
	if err != nil {
		return 0, 0, err
	}
	if len(accounts) != 2 || accounts[0] == nil || accounts[1] == nil {
		return 0, 0, fmt.Errorf("vault account not found")
	}
	return accounts[0].Amount, accounts[1].Amount, nil
}

// Progress reports how much of the quote raise target has been filled, in
// percent.
func (s *StateService) Progress(pool *shared.BoundPool) decimal.Decimal {
	if pool.Config.GammaS == 0 {
		return decimal.Zero
	}
	quoteReserve := decimal.NewFromBigInt(new(big.Int).SetUint64(pool.QuoteReserve.Tokens), 0)
	target := decimal.NewFromBigInt(new(big.Int).SetUint64(pool.Config.GammaS), 0)
	return quoteReserve.Div(target).Mul(decimal.NewFromInt(100))
}

// SpotPrice reports the current marginal rate in whole meme tokens per
// whole quote token.
func (s *StateService) SpotPrice(pool *shared.BoundPool) decimal.Decimal {
	cfg := &pool.Config

	beta := decimal.NewFromBigInt(cfg.Beta.BigInt(), 0)
	alphaAbs := decimal.NewFromBigInt(cfg.AlphaAbs.BigInt(), 0)
	alphaDecimals := decimal.NewFromBigInt(cfg.Decimals.Alpha.BigInt(), 0)
	betaDecimals := decimal.NewFromBigInt(cfg.Decimals.Beta.BigInt(), 0)
	scaleS := decimal.NewFromInt(shared.DecimalsS)
	reserve := decimal.NewFromBigInt(new(big.Int).SetUint64(pool.QuoteReserve.Tokens), 0)

	// marginal raw meme per raw quote: beta/(betaDec*S) - alpha*s/(alphaDec*S²)
	rate := beta.Div(betaDecimals.Mul(scaleS)).
		Sub(alphaAbs.Mul(reserve).Div(alphaDecimals.Mul(scaleS).Mul(scaleS)))

	return rate.Mul(scaleS).Div(decimal.NewFromInt(shared.DecimalsM))
}
