package bicodec

import "github.com/unkn0wn-root/bicodec/value"

// Top-level drivers. They run a codec against one of the tree's wire
// renderings; the codec itself never sees text or bytes.

// EncodeValue renders v through c as a Value tree.
func EncodeValue[T any](c Codec[T], v T) value.Value {
	return c.enc(v)
}

// EncodeString renders v through c as JSON text.
func EncodeString[T any](c Codec[T], v T) string {
	return value.Stringify(c.enc(v))
}

// DecodeValue decodes an already-parsed tree directly.
func DecodeValue[T any](c Codec[T], v value.Value) (T, []value.DecodeError) {
	return c.dec(v)
}

// DecodeString parses JSON text and decodes the resulting tree. The error
// is a *value.ParseError for malformed text and a value.DecodeErrors list
// for well-formed text of the wrong shape.
func DecodeString[T any](c Codec[T], text string) (T, error) {
	var zero T
	tree, err := value.ParseString(text)
	if err != nil {
		return zero, err
	}
	out, errs := c.dec(tree)
	if len(errs) > 0 {
		return zero, value.DecodeErrors(errs)
	}
	return out, nil
}

// EncodeCBOR renders v through c as deterministic CBOR bytes.
func EncodeCBOR[T any](c Codec[T], v T) ([]byte, error) {
	return value.MarshalCBOR(c.enc(v))
}

// DecodeCBOR reads CBOR bytes and decodes the resulting tree.
func DecodeCBOR[T any](c Codec[T], b []byte) (T, error) {
	var zero T
	tree, err := value.UnmarshalCBOR(b)
	if err != nil {
		return zero, &value.ParseError{Err: err}
	}
	out, errs := c.dec(tree)
	if len(errs) > 0 {
		return zero, value.DecodeErrors(errs)
	}
	return out, nil
}

// EncodeMsgpack renders v through c as msgpack bytes.
func EncodeMsgpack[T any](c Codec[T], v T) ([]byte, error) {
	return value.MarshalMsgpack(c.enc(v))
}

// DecodeMsgpack reads msgpack bytes and decodes the resulting tree.
func DecodeMsgpack[T any](c Codec[T], b []byte) (T, error) {
	var zero T
	tree, err := value.UnmarshalMsgpack(b)
	if err != nil {
		return zero, &value.ParseError{Err: err}
	}
	out, errs := c.dec(tree)
	if len(errs) > 0 {
		return zero, value.DecodeErrors(errs)
	}
	return out, nil
}
