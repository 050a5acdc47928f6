package solana

import (
	"github.com/gagliardetto/solana-go"
)

func sameATACreate(a, b solana.Instruction) bool {
	as, bs := a.Accounts(), b.Accounts()
	if len(as) < 4 || len(bs) < 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		if !as[i].PublicKey.Equals(bs[i].PublicKey) {
			return false
		}
	}
	return true
}

// MergeInstructions drops duplicate associated-token-account create
// instructions, keeping the first occurrence. Combined flows routinely
// prepare the same ATA more than once.
func MergeInstructions(oldInstructions []solana.Instruction) []solana.Instruction {
	var (
		ataCreates      []solana.Instruction
		newInstructions []solana.Instruction
	)

loop:
	for _, v := range oldInstructions {
		if v.ProgramID().Equals(solana.SPLAssociatedTokenAccountProgramID) {
			for _, seen := range ataCreates {
				if sameATACreate(v, seen) {
					continue loop
				}
			}
			ataCreates = append(ataCreates, v)
		}
		newInstructions = append(newInstructions, v)
	}
	return newInstructions
}
