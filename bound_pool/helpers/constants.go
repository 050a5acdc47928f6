package helpers

import (
	solanago "github.com/gagliardetto/solana-go"
)

// BoundPoolProgramID is the bound pool launch program address.
var BoundPoolProgramID = solanago.MustPublicKeyFromBase58("2rXWatUkrARF6xwGdGJYWpHjRQrGt8x6tCqDr7kJVXAW")

// PointsMint is the reward points token mint.
var PointsMint = solanago.MustPublicKeyFromBase58("BLvti6E4YALsexDeDgKAGhrSKd5FnMErT5piAzw7RkgN")

// FeeVaultOwner owns every pool's quote fee vault.
var FeeVaultOwner = solanago.MustPublicKeyFromBase58("2zW5FTYfawmiMPjpaGQHJfmhVptNqHpM2f8JMREmrade")

// NativeMint is the wrapped SOL mint.
var NativeMint = solanago.WrappedSol

// Account names used in discriminators and program-account filters.
const (
	AccountKeyBoundPool    = "BoundPool"
	AccountKeyMemeTicket   = "MemeTicket"
	AccountKeyTargetConfig = "TargetConfig"
	AccountKeyPointsEpoch  = "PointsEpoch"
)
