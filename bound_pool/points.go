package bound_pool

import (
	"context"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/memechan-gg/boundpool-go/bound_pool/helpers"
	"github.com/memechan-gg/boundpool-go/bound_pool/math"
)

type PointsService struct {
	*BoundPoolProgram
	state *StateService
}

func NewPointsService(rpcClient *rpc.Client, commitment rpc.CommitmentType) *PointsService {
	return &PointsService{
		BoundPoolProgram: NewBoundPoolProgram(rpcClient, commitment),
		state:            NewStateService(rpcClient, commitment),
	}
}

// AvailablePoints reports the undistributed balance left in the program's
// points treasury. Payouts are clamped to this balance on chain.
func (s *PointsService) AvailablePoints(ctx context.Context) (uint64, error) {
	pointsPda, err := helpers.DerivePointsPDA()
	if err != nil {
		return 0, err
	}
	return helpers.GetTokenBalance(ctx, s.RPC, pointsPda, helpers.PointsMint)
}

// UserPoints reports the points already earned by a wallet.
func (s *PointsService) UserPoints(ctx context.Context, owner solanago.PublicKey) (uint64, error) {
	return helpers.GetTokenBalance(ctx, s.RPC, owner, helpers.PointsMint)
}

// PreviewSwapPoints computes the points a buy of the given size would mint
// under the epoch's rate, split into user payout and referral cut and
// clamped to the treasury balance.
func (s *PointsService) PreviewSwapPoints(ctx context.Context, epochNumber, buyAmount uint64, hasReferral bool) (payout, referral uint64, err error) {
	epoch, err := s.state.GetPointsEpoch(ctx, epochNumber)
	if err != nil {
		return 0, 0, err
	}
	available, err := s.AvailablePoints(ctx)
	if err != nil {
		return 0, 0, err
	}
	points := math.SwapPoints(buyAmount, epoch)
	payout, referral = math.PointsPayout(points, available, hasReferral)
	return payout, referral, nil
}
