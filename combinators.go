package bicodec

import (
	"sync"

	"github.com/unkn0wn-root/bicodec/value"
)

// Map derives a codec for B from a codec for A and a pure conversion pair.
// to must be total; if the conversion itself can fail, use Then instead.
func Map[A, B any](c Codec[A], from func(B) A, to func(A) B) Codec[B] {
	return Codec[B]{
		enc: func(b B) value.Value { return c.enc(from(b)) },
		dec: func(v value.Value) (B, []value.DecodeError) {
			a, errs := c.dec(v)
			if len(errs) > 0 {
				var zero B
				return zero, errs
			}
			return to(a), nil
		},
	}
}

// Then is Map with a dependent second step: to produces a whole codec from
// the first decode's result, and that codec decodes the same input again.
// If the first step fails, the second never runs.
func Then[A, B any](c Codec[A], from func(B) A, to func(A) Codec[B]) Codec[B] {
	return Codec[B]{
		enc: func(b B) value.Value { return c.enc(from(b)) },
		dec: func(v value.Value) (B, []value.DecodeError) {
			a, errs := c.dec(v)
			if len(errs) > 0 {
				var zero B
				return zero, errs
			}
			return to(a).dec(v)
		},
	}
}

// Lazy defers construction of a codec until first use, which is what a
// recursive type needs to reference its own codec.
func Lazy[T any](f func() Codec[T]) Codec[T] {
	var (
		once sync.Once
		c    Codec[T]
	)
	force := func() Codec[T] {
		once.Do(func() { c = f() })
		return c
	}
	return Codec[T]{
		enc: func(v T) value.Value { return force().enc(v) },
		dec: func(v value.Value) (T, []value.DecodeError) { return force().dec(v) },
	}
}
