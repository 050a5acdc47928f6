package boundpool

import (
	"github.com/memechan-gg/boundpool-go/bound_pool"
)

// NewClient creates a new bonding pool client.
//
// Example:
//
// client := NewClient(rpcClient, rpc.CommitmentConfirmed)
//
// client.Pool.BuyInstruction(ctx, params)
//
// client.State.GetPool(ctx, poolAddress)
var NewClient = bound_pool.NewBoundPoolClient
