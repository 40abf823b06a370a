package bicodec

import "github.com/unkn0wn-root/bicodec/value"

// Codec pairs an encoder and a decoder for one Go type. Both directions are
// derived from the same description, so a value encoded by a Codec decodes
// back to itself (the round-trip law). A Codec is immutable once built and
// safe for concurrent use.
//
// The zero Codec is NOT ready to use. Construct one with the package
// combinators (Int, List, Custom, ...) or with From.
type Codec[T any] struct {
	enc func(T) value.Value
	dec func(value.Value) (T, []value.DecodeError)
}

// Encode renders v as a Value tree. Encode is total: every value the Go
// type can hold has a rendering.
func (c Codec[T]) Encode(v T) value.Value { return c.enc(v) }

// Decode reads a Value tree back. A shape mismatch is reported as a
// non-empty error list; Decode never panics on input.
func (c Codec[T]) Decode(v value.Value) (T, []value.DecodeError) { return c.dec(v) }

// From wraps a caller-supplied encode/decode pair directly. No validation is
// performed; keeping the round-trip law is the caller's responsibility.
func From[T any](encode func(T) value.Value, decode func(value.Value) (T, []value.DecodeError)) Codec[T] {
	return Codec[T]{enc: encode, dec: decode}
}

// Succeed encodes to null and decodes to v regardless of input. Useful as
// the terminal step of a decode pipeline that has already extracted
// everything it needs.
func Succeed[T any](v T) Codec[T] {
	return Codec[T]{
		enc: func(T) value.Value { return value.Null{} },
		dec: func(value.Value) (T, []value.DecodeError) { return v, nil },
	}
}

// Fail encodes to null and always fails decoding with a single error.
func Fail[T any](expected, found string) Codec[T] {
	return Codec[T]{
		enc: func(T) value.Value { return value.Null{} },
		dec: func(value.Value) (T, []value.DecodeError) {
			var zero T
			return zero, []value.DecodeError{{Expected: expected, Found: found}}
		},
	}
}

// Encoder projects the encode half of c as a plain function.
func Encoder[T any](c Codec[T]) func(T) value.Value { return c.enc }

// Decoder projects the decode half of c as a plain function.
func Decoder[T any](c Codec[T]) func(value.Value) (T, []value.DecodeError) { return c.dec }
