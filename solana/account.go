package solana

import (
	"context"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

type AccountState uint8

const (
	AccountStateUninitialized AccountState = 0
	AccountStateInitialized   AccountState = 1
	AccountStateFrozen        AccountState = 2
)

// Account is a decoded SPL token account.
type Account struct {
	Address solana.PublicKey

	// Mint associated with the account
	Mint solana.PublicKey

	// Owner of the account
	Owner solana.PublicKey

	// Number of tokens the account holds
	Amount uint64

	// True if the account is initialized
	IsInitialized bool

	// True if the account is frozen
	IsFrozen bool

	// True if the account wraps native SOL
	IsNative bool
}

type tokenAccountLayout struct {
	Mint                 solana.PublicKey
	Owner                solana.PublicKey
	Amount               uint64
	DelegateOption       uint32
	Delegate             *solana.PublicKey
	State                uint8
	IsNativeOption       uint32
	IsNative             *uint64
	DelegatedAmount      uint64
	CloseAuthorityOption uint32
	CloseAuthority       *solana.PublicKey
}

type AccountLayout struct {
}

func (l *AccountLayout) Decode(data []byte) (*Account, error) {
	rawAccount := &tokenAccountLayout{}
	if err := binary.NewBinDecoder(data).Decode(rawAccount); err != nil {
		return nil, err
	}
	return &Account{
		Mint:          rawAccount.Mint,
		Owner:         rawAccount.Owner,
		Amount:        rawAccount.Amount,
		IsInitialized: AccountState(rawAccount.State) != AccountStateUninitialized,
		IsFrozen:      AccountState(rawAccount.State) == AccountStateFrozen,
		IsNative:      rawAccount.IsNativeOption > 0,
	}, nil
}

// GetMultipleAccount decodes several token accounts in one RPC round trip.
// Missing accounts come back as nil entries.
func GetMultipleAccount(ctx context.Context, rpcClient *rpc.Client, accounts ...solana.PublicKey) ([]*Account, error) {
	outs, err := GetMultipleAccountInfo(ctx, rpcClient, accounts)
	if err != nil {
		return nil, err
	}
	list := make([]*Account, len(outs.Value))
	for i, out := range outs.Value {
		if out == nil {
			continue
		}
		acc, err := new(AccountLayout).Decode(out.Data.GetBinary())
		if err != nil {
			return nil, err
		}
		acc.Address = accounts[i]
		list[i] = acc
	}
	return list, nil
}
