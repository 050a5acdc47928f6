package bound_pool

import (
	"github.com/memechan-gg/boundpool-go/bound_pool/shared"
)

// Re-exported account and result types so callers rarely need to import the
// shared package directly.
type (
	BoundPool    = shared.BoundPool
	MemeTicket   = shared.MemeTicket
	TargetConfig = shared.TargetConfig
	PointsEpoch  = shared.PointsEpoch
	Config       = shared.Config
	Fees         = shared.Fees
	Reserve      = shared.Reserve
	Vesting      = shared.Vesting
	SwapAmount   = shared.SwapAmount
)
