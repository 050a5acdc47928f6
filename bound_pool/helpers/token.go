package helpers

import (
	"context"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/tidwall/gjson"
)

// FindAssociatedTokenAddress resolves the ATA for an owner/mint pair under
// the given token program.
func FindAssociatedTokenAddress(owner, mint, tokenProgram solanago.PublicKey) (solanago.PublicKey, error) {
	pub, _, err := solanago.FindProgramAddress(
		[][]byte{owner[:], tokenProgram[:], mint[:]},
		solanago.SPLAssociatedTokenAccountProgramID,
	)
	return pub, err
}

// GetOrCreateATAInstruction returns the ATA pubkey and an optional create
// instruction if the account does not exist yet.
func GetOrCreateATAInstruction(ctx context.Context, client *rpc.Client, tokenMint, owner, payer, tokenProgram solanago.PublicKey) (solanago.PublicKey, solanago.Instruction, error) {
	ata, err := FindAssociatedTokenAddress(owner, tokenMint, tokenProgram)
	if err != nil {
		return solanago.PublicKey{}, nil, err
	}

	if _, err = client.GetAccountInfo(ctx, ata); err == nil {
		return ata, nil, nil
	}

	ix := CreateAssociatedTokenAccountInstruction(payer, ata, owner, tokenMint, tokenProgram)
	return ata, ix, nil
}

// CreateAssociatedTokenAccountInstruction builds an ATA create instruction
// that supports custom token programs.
func CreateAssociatedTokenAccountInstruction(payer, ata, owner, mint, tokenProgram solanago.PublicKey) solanago.Instruction {
	accounts := solanago.AccountMetaSlice{
		solanago.NewAccountMeta(payer, true, true),
		solanago.NewAccountMeta(ata, true, false),
		solanago.NewAccountMeta(owner, false, false),
		solanago.NewAccountMeta(mint, false, false),
		solanago.NewAccountMeta(system.ProgramID, false, false),
		solanago.NewAccountMeta(tokenProgram, false, false),
	}
	return solanago.NewInstruction(solanago.SPLAssociatedTokenAccountProgramID, accounts, nil)
}

// GetTokenBalance sums the owner's jsonParsed token-account balances for
// one mint.
func GetTokenBalance(ctx context.Context, client *rpc.Client, owner, mint solanago.PublicKey) (uint64, error) {
	out, err := client.GetTokenAccountsByOwner(
		ctx,
		owner,
		&rpc.GetTokenAccountsConfig{Mint: &mint},
		&rpc.GetTokenAccountsOpts{Encoding: solanago.EncodingJSONParsed},
	)
	if err != nil {
		return 0, err
	}

	var total uint64
	for _, acc := range out.Value {
		total += gjson.GetBytes(acc.Account.Data.GetRawJSON(), "parsed.info.tokenAmount.amount").Uint()
	}
	return total, nil
}
