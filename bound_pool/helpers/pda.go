package helpers

import (
	"encoding/binary"

	solanago "github.com/gagliardetto/solana-go"
)

var seed = struct {
	Pool         []byte
	PoolSigner   []byte
	Points       []byte
	TargetConfig []byte
	PointsEpoch  []byte
}{
	Pool:         []byte("bound_pool"),
	PoolSigner:   []byte("signer"),
	Points:       []byte("points_pda"),
	TargetConfig: []byte("config"),
	PointsEpoch:  []byte("points_epoch"),
}

// DeriveBoundPoolPDA derives the pool account address for a meme/quote
// mint pair.
func DeriveBoundPoolPDA(memeMint, quoteMint solanago.PublicKey) (solanago.PublicKey, error) {
	pub, _, err := solanago.FindProgramAddress([][]byte{seed.Pool, memeMint[:], quoteMint[:]}, BoundPoolProgramID)
	return pub, err
}

// DerivePoolSignerPDA derives the signer that has authority over a pool's
// vaults.
func DerivePoolSignerPDA(pool solanago.PublicKey) (solanago.PublicKey, error) {
	pub, _, err := solanago.FindProgramAddress([][]byte{seed.PoolSigner, pool[:]}, BoundPoolProgramID)
	return pub, err
}

// DeriveMemeTicketPDA derives a user's position account for a pool; the
// ticket number disambiguates repeat buys.
func DeriveMemeTicketPDA(pool, owner solanago.PublicKey, ticketNumber uint64) (solanago.PublicKey, error) {
	var num [8]byte
	binary.LittleEndian.PutUint64(num[:], ticketNumber)
	pub, _, err := solanago.FindProgramAddress([][]byte{pool[:], owner[:], num[:]}, BoundPoolProgramID)
	return pub, err
}

// DerivePointsPDA derives the authority holding the distributable points
// balance.
func DerivePointsPDA() (solanago.PublicKey, error) {
	pub, _, err := solanago.FindProgramAddress([][]byte{seed.Points}, BoundPoolProgramID)
	return pub, err
}

// DeriveTargetConfigPDA derives the raise-target config account for a
// quote mint.
func DeriveTargetConfigPDA(quoteMint solanago.PublicKey) (solanago.PublicKey, error) {
	pub, _, err := solanago.FindProgramAddress([][]byte{seed.TargetConfig, quoteMint[:]}, BoundPoolProgramID)
	return pub, err
}

// DerivePointsEpochPDA derives the reward rate account for an epoch.
func DerivePointsEpochPDA(epochNumber uint64) (solanago.PublicKey, error) {
	var num [8]byte
	binary.LittleEndian.PutUint64(num[:], epochNumber)
	pub, _, err := solanago.FindProgramAddress([][]byte{seed.PointsEpoch, num[:]}, BoundPoolProgramID)
	return pub, err
}
