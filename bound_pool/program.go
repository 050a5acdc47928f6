package bound_pool

import (
	"context"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/memechan-gg/boundpool-go/bound_pool/helpers"
)

// BoundPoolProgram is the shared base of every service: an RPC connection
// and the commitment level queries run at.
type BoundPoolProgram struct {
	RPC        *rpc.Client
	Commitment rpc.CommitmentType
}

func NewBoundPoolProgram(rpcClient *rpc.Client, commitment rpc.CommitmentType) *BoundPoolProgram {
	return &BoundPoolProgram{
		RPC:        rpcClient,
		Commitment: commitment,
	}
}

// PrepareTokenAccounts resolves the owner's ATAs for two mints, returning
// create instructions for any that do not exist yet.
func (p *BoundPoolProgram) PrepareTokenAccounts(ctx context.Context, owner, payer, tokenAMint, tokenBMint, tokenProgram solanago.PublicKey) (ataTokenA, ataTokenB solanago.PublicKey, instructions []solanago.Instruction, err error) {
	instructions = make([]solanago.Instruction, 0, 2)
	ataTokenA, ixA, err := helpers.GetOrCreateATAInstruction(ctx, p.RPC, tokenAMint, owner, payer, tokenProgram)
	if err != nil {
		return
	}
	ataTokenB, ixB, err := helpers.GetOrCreateATAInstruction(ctx, p.RPC, tokenBMint, owner, payer, tokenProgram)
	if err != nil {
		return
	}
	if ixA != nil {
		instructions = append(instructions, ixA)
	}
	if ixB != nil {
		instructions = append(instructions, ixB)
	}
	return
}
