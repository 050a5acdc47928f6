package helpers

import (
	"errors"
	"fmt"

	solanago "github.com/gagliardetto/solana-go"

	"github.com/memechan-gg/boundpool-go/bound_pool/shared"
)

// ValidateCreationParams checks the caller-supplied pool creation inputs
// before any instruction is built.
func ValidateCreationParams(airdroppedTokens uint64, vestingPeriod int64) error {
	if airdroppedTokens > shared.MaxAirdroppedTokens {
		return errors.New("airdropped tokens over cap")
	}
	if vestingPeriod < shared.MinVestingPeriod || vestingPeriod > shared.MaxVestingPeriod {
		return fmt.Errorf("vesting period must be between %d and %d seconds", shared.MinVestingPeriod, shared.MaxVestingPeriod)
	}
	return nil
}

// ValidateTargetConfig ensures the fetched target config matches the
// quote mint the pool is being created for.
func ValidateTargetConfig(cfg *shared.TargetConfig, quoteMint solanago.PublicKey) error {
	if cfg == nil {
		return errors.New("target config not found")
	}
	if !cfg.TokenMint.Equals(quoteMint) {
		return errors.New("target config is for a different quote mint")
	}
	if cfg.TokenTargetAmount == 0 {
		return errors.New("target config has a zero raise target")
	}
	return nil
}
