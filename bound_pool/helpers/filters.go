package helpers

import (
	"bytes"
	"reflect"

	binary "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Filter narrows a program-account scan to records whose field at Offset
// equals Owner.
type Filter struct {
	Owner  solanago.PublicKey
	Offset uint64
}

// CreateProgramAccountFilter builds the memcmp filters for one account
// kind, optionally narrowed by an owner field.
func CreateProgramAccountFilter(key string, filter *Filter) []rpc.RPCFilter {
	filters := []rpc.RPCFilter{
		{
			Memcmp: &rpc.RPCFilterMemcmp{
				Offset: 0,
				Bytes:  accountDiscriminator(key),
			},
		},
	}

	if filter != nil {
		filters = append(filters, rpc.RPCFilter{
			Memcmp: &rpc.RPCFilterMemcmp{
				Offset: filter.Offset,
				Bytes:  filter.Owner[:],
			},
		})
	}

	return filters
}

// ComputeStructOffset returns the borsh byte offset of field o inside the
// account struct x, accounting for the 8-byte discriminator.
func ComputeStructOffset(x any, o string) uint64 {
	t := reflect.TypeOf(x).Elem()
	fields := make([]reflect.StructField, 0)

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Name == o {
			break
		}
		fields = append(fields, f)
	}

	newType := reflect.StructOf(fields)
	newValue := reflect.New(newType).Elem()

	buf := new(bytes.Buffer)
	enc := binary.NewBorshEncoder(buf)
	enc.Encode(newValue.Interface())

	return uint64(buf.Len()) + 8
}
