package bound_pool

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gagliardetto/solana-go"

	solanago "github.com/memechan-gg/boundpool-go/solana"
)

// Transfer moves tokens of the given mint between wallets, creating any
// missing ATAs along the way, and submits the transaction.
func (c *BoundPoolClient) Transfer(
	ctx context.Context,
	payer *solana.Wallet,
	receiver solana.PublicKey,
	mint solana.PublicKey,
	amount *big.Int,
) (string, error) {
	tokens, err := solanago.GetMultipleToken(ctx, c.RPC, mint)
	if err != nil {
		return "", err
	}
	if len(tokens) == 0 || tokens[0] == nil {
		return "", fmt.Errorf("mint account not found")
	}

	instructions, err := solanago.TransferInstruction(
		ctx,
		c.RPC,
		payer.PublicKey(),
		payer.PublicKey(),
		receiver,
		mint,
		tokens[0].Decimals,
		amount,
	)
	if err != nil {
		return "", err
	}

	sig, err := solanago.SendTransaction(ctx,
		c.RPC,
		instructions,
		payer.PublicKey(),
		func(key solana.PublicKey) *solana.PrivateKey {
			switch {
			case key.Equals(payer.PublicKey()):
				return &payer.PrivateKey
			default:
				return nil
			}
		},
	)
	if err != nil {
		return "", err
	}
	return sig.String(), nil
}
