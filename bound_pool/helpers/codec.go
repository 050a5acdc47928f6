package helpers

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	binary "github.com/gagliardetto/binary"

	"github.com/memechan-gg/boundpool-go/bound_pool/shared"
)

func accountDiscriminator(name string) []byte {
	hash := sha256.Sum256([]byte("account:" + name))
	var out [8]byte
	copy(out[:], hash[:8])
	return out[:]
}

func stripDiscriminator(data []byte, name string) ([]byte, error) {
	disc := accountDiscriminator(name)
	if len(data) < len(disc) || !bytes.Equal(data[:len(disc)], disc) {
		return nil, fmt.Errorf("account data is not a %s account", name)
	}
	return data[len(disc):], nil
}

func marshalAccount(name string, v interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(accountDiscriminator(name))
	if err := binary.NewBorshEncoder(buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ParseAccountBoundPool(data []byte) (*shared.BoundPool, error) {
	payload, err := stripDiscriminator(data, AccountKeyBoundPool)
	if err != nil {
		return nil, err
	}
	var out shared.BoundPool
	if err := binary.NewBorshDecoder(payload).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func MarshalAccountBoundPool(pool *shared.BoundPool) ([]byte, error) {
	return marshalAccount(AccountKeyBoundPool, pool)
}

func ParseAccountMemeTicket(data []byte) (*shared.MemeTicket, error) {
	payload, err := stripDiscriminator(data, AccountKeyMemeTicket)
	if err != nil {
		return nil, err
	}
	var out shared.MemeTicket
	if err := binary.NewBorshDecoder(payload).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func MarshalAccountMemeTicket(ticket *shared.MemeTicket) ([]byte, error) {
	return marshalAccount(AccountKeyMemeTicket, ticket)
}

func ParseAccountTargetConfig(data []byte) (*shared.TargetConfig, error) {
	payload, err := stripDiscriminator(data, AccountKeyTargetConfig)
	if err != nil {
		return nil, err
	}
	var out shared.TargetConfig
	if err := binary.NewBorshDecoder(payload).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func MarshalAccountTargetConfig(cfg *shared.TargetConfig) ([]byte, error) {
	return marshalAccount(AccountKeyTargetConfig, cfg)
}

func ParseAccountPointsEpoch(data []byte) (*shared.PointsEpoch, error) {
	payload, err := stripDiscriminator(data, AccountKeyPointsEpoch)
	if err != nil {
		return nil, err
	}
	var out shared.PointsEpoch
	if err := binary.NewBorshDecoder(payload).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func MarshalAccountPointsEpoch(epoch *shared.PointsEpoch) ([]byte, error) {
	return marshalAccount(AccountKeyPointsEpoch, epoch)
}
