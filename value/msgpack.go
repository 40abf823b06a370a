package value

import "github.com/vmihailenco/msgpack/v5"

// Msgpack rendering of the tree. Compact and fast; unlike the CBOR
// rendering it makes no determinism guarantee.

func MarshalMsgpack(v Value) ([]byte, error) {
	return msgpack.Marshal(ToAny(v))
}

func UnmarshalMsgpack(b []byte) (Value, error) {
	var raw any
	if err := msgpack.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	return FromAny(raw)
}
