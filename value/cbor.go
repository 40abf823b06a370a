package value

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// CBOR rendering of the tree. Encoding uses RFC 8949 Core Deterministic
// options so the same tree always produces the same bytes, which makes the
// output safe to hash or compare.

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	dm, err := (cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}).DecMode()
	if err != nil {
		panic(err)
	}
	cborEnc = em
	cborDec = dm
}

func MarshalCBOR(v Value) ([]byte, error) {
	return cborEnc.Marshal(ToAny(v))
}

func UnmarshalCBOR(b []byte) (Value, error) {
	var raw any
	if err := cborDec.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	return FromAny(raw)
}
