package bound_pool

import (
	"github.com/gagliardetto/solana-go/rpc"
)

// BoundPoolClient groups the high-level services.
type BoundPoolClient struct {
	Pool       *PoolService
	State      *StateService
	Points     *PointsService
	Commitment rpc.CommitmentType
	RPC        *rpc.Client
}

// NewBoundPoolClient constructs a client with the given RPC connection.
func NewBoundPoolClient(rpcClient *rpc.Client, commitment rpc.CommitmentType) *BoundPoolClient {
	return &BoundPoolClient{
		Pool:       NewPoolService(rpcClient, commitment),
		State:      NewStateService(rpcClient, commitment),
		Points:     NewPointsService(rpcClient, commitment),
		Commitment: commitment,
		RPC:        rpcClient,
	}
}

// Create is a convenience constructor using confirmed commitment by default.
func Create(rpcClient *rpc.Client, commitment rpc.CommitmentType) *BoundPoolClient {
	if commitment == "" {
		commitment = rpc.CommitmentConfirmed
	}
	return NewBoundPoolClient(rpcClient, commitment)
}
