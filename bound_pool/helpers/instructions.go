package helpers

import (
	"bytes"
	"crypto/sha256"

	binary "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
)

func instructionDiscriminator(name string) []byte {
	hash := sha256.Sum256([]byte("global:" + name))
	var out [8]byte
	copy(out[:], hash[:8])
	return out[:]
}

func encodeInstructionData(name string, args ...interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(instructionDiscriminator(name))
	enc := binary.NewBorshEncoder(buf)
	for _, arg := range args {
		if err := enc.Encode(arg); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// NewPoolAccounts collects every account new_pool touches.
type NewPoolAccounts struct {
	Sender        solanago.PublicKey
	Pool          solanago.PublicKey
	MemeMint      solanago.PublicKey
	QuoteVault    solanago.PublicKey
	QuoteMint     solanago.PublicKey
	FeeQuoteVault solanago.PublicKey
	MemeVault     solanago.PublicKey
	TargetConfig  solanago.PublicKey
	PoolSigner    solanago.PublicKey
}

// NewNewPoolInstruction builds the pool creation instruction.
func NewNewPoolInstruction(accs NewPoolAccounts, airdroppedTokens uint64, vestingPeriod int64) (solanago.Instruction, error) {
	data, err := encodeInstructionData("new_pool", airdroppedTokens, vestingPeriod)
	if err != nil {
		return nil, err
	}
	metas := solanago.AccountMetaSlice{
		solanago.NewAccountMeta(accs.Sender, true, true),
		solanago.NewAccountMeta(accs.Pool, true, false),
		solanago.NewAccountMeta(accs.MemeMint, true, false),
		solanago.NewAccountMeta(accs.QuoteVault, false, false),
		solanago.NewAccountMeta(accs.QuoteMint, false, false),
		solanago.NewAccountMeta(accs.FeeQuoteVault, false, false),
		solanago.NewAccountMeta(accs.MemeVault, true, false),
		solanago.NewAccountMeta(accs.TargetConfig, false, false),
		solanago.NewAccountMeta(accs.PoolSigner, false, false),
		solanago.NewAccountMeta(system.ProgramID, false, false),
		solanago.NewAccountMeta(token.ProgramID, false, false),
	}
	return solanago.NewInstruction(BoundPoolProgramID, metas, data), nil
}

// SwapYAccounts collects every account swap_y (buy meme with quote) touches.
// ReferrerPoints may be nil; anchor encodes absent optional accounts as the
// program id.
type SwapYAccounts struct {
	Pool           solanago.PublicKey
	QuoteVault     solanago.PublicKey
	UserSol        solanago.PublicKey
	MemeTicket     solanago.PublicKey
	UserPoints     solanago.PublicKey
	ReferrerPoints *solanago.PublicKey
	PointsEpoch    solanago.PublicKey
	PointsAcc      solanago.PublicKey
	Owner          solanago.PublicKey
	PointsPda      solanago.PublicKey
	PoolSignerPda  solanago.PublicKey
}

// NewSwapYInstruction builds the buy instruction.
func NewSwapYInstruction(accs SwapYAccounts, coinInAmount, coinXMinValue, ticketNumber uint64) (solanago.Instruction, error) {
	data, err := encodeInstructionData("swap_y", coinInAmount, coinXMinValue, ticketNumber)
	if err != nil {
		return nil, err
	}
	referrerPoints := BoundPoolProgramID
	if accs.ReferrerPoints != nil {
		referrerPoints = *accs.ReferrerPoints
	}
	metas := solanago.AccountMetaSlice{
		solanago.NewAccountMeta(accs.Pool, true, false),
		solanago.NewAccountMeta(accs.QuoteVault, true, false),
		solanago.NewAccountMeta(accs.UserSol, true, false),
		solanago.NewAccountMeta(accs.MemeTicket, true, false),
		solanago.NewAccountMeta(accs.UserPoints, true, false),
		solanago.NewAccountMeta(referrerPoints, accs.ReferrerPoints != nil, false),
		solanago.NewAccountMeta(accs.PointsEpoch, false, false),
		solanago.NewAccountMeta(PointsMint, true, false),
		solanago.NewAccountMeta(accs.PointsAcc, true, false),
		solanago.NewAccountMeta(accs.Owner, true, true),
		solanago.NewAccountMeta(accs.PointsPda, false, false),
		solanago.NewAccountMeta(accs.PoolSignerPda, false, false),
		solanago.NewAccountMeta(token.ProgramID, false, false),
		solanago.NewAccountMeta(system.ProgramID, false, false),
	}
	return solanago.NewInstruction(BoundPoolProgramID, metas, data), nil
}

// SwapXAccounts collects every account swap_x (sell meme for quote) touches.
type SwapXAccounts struct {
	Pool       solanago.PublicKey
	MemeTicket solanago.PublicKey
	UserSol    solanago.PublicKey
	QuoteVault solanago.PublicKey
	Owner      solanago.PublicKey
	PoolSigner solanago.PublicKey
}

// NewSwapXInstruction builds the sell instruction.
func NewSwapXInstruction(accs SwapXAccounts, coinInAmount, coinYMinValue uint64) (solanago.Instruction, error) {
	data, err := encodeInstructionData("swap_x", coinInAmount, coinYMinValue)
	if err != nil {
		return nil, err
	}
	metas := solanago.AccountMetaSlice{
		solanago.NewAccountMeta(accs.Pool, true, false),
		solanago.NewAccountMeta(accs.MemeTicket, true, false),
		solanago.NewAccountMeta(accs.UserSol, true, false),
		solanago.NewAccountMeta(accs.QuoteVault, true, false),
		solanago.NewAccountMeta(accs.Owner, false, true),
		solanago.NewAccountMeta(accs.PoolSigner, false, false),
		solanago.NewAccountMeta(token.ProgramID, false, false),
	}
	return solanago.NewInstruction(BoundPoolProgramID, metas, data), nil
}
