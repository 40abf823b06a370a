package bicodec

import (
	"strconv"

	"github.com/unkn0wn-root/bicodec/value"
)

// tagKey is the reserved object key carrying a variant's tag on the wire.
// A variant value encodes as {"$": tag, "0": field0, ..., "N": fieldN}.
const tagKey = "$"

// Builder accumulates the arms of a tagged-union codec. Create one with
// Custom, register arms with Variant0..Variant8, then seal it with Build.
// A Builder is a single-owner value during construction; the sealed Codec
// is immutable and safe to share.
type Builder[T any] struct {
	arms map[string]func(value.Object) (T, []value.DecodeError)
}

// Custom starts an empty builder for a tagged-union codec over T.
func Custom[T any]() *Builder[T] {
	return &Builder[T]{arms: make(map[string]func(value.Object) (T, []value.DecodeError))}
}

// Build seals the builder into a Codec. The caller supplies the encode
// dispatch: an exhaustive case analysis mapping every value of T to the arm
// encoder returned by its Variant* registration. Decode dispatch is
// data-driven instead, reading the "$" tag from the wire; an unknown or
// missing tag fails with a DecodeError at path ["$"]. This asymmetry is
// inherent: type information exists on the encode side only.
func (b *Builder[T]) Build(encode func(T) value.Value) Codec[T] {
	arms := b.arms
	return Codec[T]{
		enc: encode,
		dec: func(v value.Value) (T, []value.DecodeError) {
			var zero T
			obj, derr := value.AsObject(v)
			if derr != nil {
				return zero, []value.DecodeError{*derr}
			}
			tv, ok := obj[tagKey]
			if !ok {
				return zero, []value.DecodeError{{
					Expected: "one of the known tags",
					Found:    "missing",
					Path:     []string{tagKey},
				}}
			}
			tag, serr := value.AsString(tv)
			if serr != nil {
				return zero, []value.DecodeError{{
					Expected: "one of the known tags",
					Found:    value.Describe(tv),
					Path:     []string{tagKey},
				}}
			}
			arm, ok := arms[tag]
			if !ok {
				return zero, []value.DecodeError{{
					Expected: "one of the known tags",
					Found:    strconv.Quote(tag),
					Path:     []string{tagKey},
				}}
			}
			return arm(obj)
		},
	}
}

// armEncode builds the wire object for one arm.
func armEncode(tag string, fields ...value.Value) value.Value {
	obj := make(value.Object, len(fields)+1)
	obj[tagKey] = value.String(tag)
	for i, f := range fields {
		obj[strconv.Itoa(i)] = f
	}
	return obj
}

// armField decodes positional field i of an arm object. A missing key hands
// a nil Value to the field codec, which reports it as "nothing".
func armField[A any](obj value.Object, i int, c Codec[A]) (A, []value.DecodeError) {
	key := strconv.Itoa(i)
	x, errs := c.dec(obj[key])
	if len(errs) > 0 {
		var zero A
		return zero, value.At(key, errs)
	}
	return x, nil
}

// Variant0 registers a fieldless arm under tag and returns its encoder.
// Registering the same tag twice replaces the earlier arm: the last
// registration wins.
func Variant0[T any](b *Builder[T], tag string, ctor func() T) func() value.Value {
	b.arms[tag] = func(value.Object) (T, []value.DecodeError) {
		return ctor(), nil
	}
	return func() value.Value { return armEncode(tag) }
}

// Variant1 registers a one-field arm under tag and returns its encoder.
// Duplicate tags follow the Variant0 rule.
func Variant1[T, A any](b *Builder[T], tag string, ctor func(A) T, a Codec[A]) func(A) value.Value {
	b.arms[tag] = func(obj value.Object) (T, []value.DecodeError) {
		var zero T
		x0, errs := armField(obj, 0, a)
		if errs != nil {
			return zero, errs
		}
		return ctor(x0), nil
	}
	return func(x0 A) value.Value {
		return armEncode(tag, a.enc(x0))
	}
}

// Variant2 registers a two-field arm under tag and returns its encoder.
func Variant2[T, A, B any](b *Builder[T], tag string, ctor func(A, B) T, a Codec[A], bc Codec[B]) func(A, B) value.Value {
	b.arms[tag] = func(obj value.Object) (T, []value.DecodeError) {
		var zero T
		x0, errs := armField(obj, 0, a)
		if errs != nil {
			return zero, errs
		}
		x1, errs := armField(obj, 1, bc)
		if errs != nil {
			return zero, errs
		}
		return ctor(x0, x1), nil
	}
	return func(x0 A, x1 B) value.Value {
		return armEncode(tag, a.enc(x0), bc.enc(x1))
	}
}

// Variant3 registers a three-field arm under tag and returns its encoder.
func Variant3[T, A, B, C any](b *Builder[T], tag string, ctor func(A, B, C) T, a Codec[A], bc Codec[B], cc Codec[C]) func(A, B, C) value.Value {
	b.arms[tag] = func(obj value.Object) (T, []value.DecodeError) {
		var zero T
		x0, errs := armField(obj, 0, a)
		if errs != nil {
			return zero, errs
		}
		x1, errs := armField(obj, 1, bc)
		if errs != nil {
			return zero, errs
		}
		x2, errs := armField(obj, 2, cc)
		if errs != nil {
			return zero, errs
		}
		return ctor(x0, x1, x2), nil
	}
	return func(x0 A, x1 B, x2 C) value.Value {
		return armEncode(tag, a.enc(x0), bc.enc(x1), cc.enc(x2))
	}
}

// Variant4 registers a four-field arm under tag and returns its encoder.
func Variant4[T, A, B, C, D any](b *Builder[T], tag string, ctor func(A, B, C, D) T, a Codec[A], bc Codec[B], cc Codec[C], dc Codec[D]) func(A, B, C, D) value.Value {
	b.arms[tag] = func(obj value.Object) (T, []value.DecodeError) {
		var zero T
		x0, errs := armField(obj, 0, a)
		if errs != nil {
			return zero, errs
		}
		x1, errs := armField(obj, 1, bc)
		if errs != nil {
			return zero, errs
		}
		x2, errs := armField(obj, 2, cc)
		if errs != nil {
			return zero, errs
		}
		x3, errs := armField(obj, 3, dc)
		if errs != nil {
			return zero, errs
		}
		return ctor(x0, x1, x2, x3), nil
	}
	return func(x0 A, x1 B, x2 C, x3 D) value.Value {
		return armEncode(tag, a.enc(x0), bc.enc(x1), cc.enc(x2), dc.enc(x3))
	}
}

// Variant5 registers a five-field arm under tag and returns its encoder.
func Variant5[T, A, B, C, D, E any](b *Builder[T], tag string, ctor func(A, B, C, D, E) T, a Codec[A], bc Codec[B], cc Codec[C], dc Codec[D], ec Codec[E]) func(A, B, C, D, E) value.Value {
	b.arms[tag] = func(obj value.Object) (T, []value.DecodeError) {
		var zero T
		x0, errs := armField(obj, 0, a)
		if errs != nil {
			return zero, errs
		}
		x1, errs := armField(obj, 1, bc)
		if errs != nil {
			return zero, errs
		}
		x2, errs := armField(obj, 2, cc)
		if errs != nil {
			return zero, errs
		}
		x3, errs := armField(obj, 3, dc)
		if errs != nil {
			return zero, errs
		}
		x4, errs := armField(obj, 4, ec)
		if errs != nil {
			return zero, errs
		}
		return ctor(x0, x1, x2, x3, x4), nil
	}
	return func(x0 A, x1 B, x2 C, x3 D, x4 E) value.Value {
		return armEncode(tag, a.enc(x0), bc.enc(x1), cc.enc(x2), dc.enc(x3), ec.enc(x4))
	}
}

// Variant6 registers a six-field arm under tag and returns its encoder.
func Variant6[T, A, B, C, D, E, F any](b *Builder[T], tag string, ctor func(A, B, C, D, E, F) T, a Codec[A], bc Codec[B], cc Codec[C], dc Codec[D], ec Codec[E], fc Codec[F]) func(A, B, C, D, E, F) value.Value {
	b.arms[tag] = func(obj value.Object) (T, []value.DecodeError) {
		var zero T
		x0, errs := armField(obj, 0, a)
		if errs != nil {
			return zero, errs
		}
		x1, errs := armField(obj, 1, bc)
		if errs != nil {
			return zero, errs
		}
		x2, errs := armField(obj, 2, cc)
		if errs != nil {
			return zero, errs
		}
		x3, errs := armField(obj, 3, dc)
		if errs != nil {
			return zero, errs
		}
		x4, errs := armField(obj, 4, ec)
		if errs != nil {
			return zero, errs
		}
		x5, errs := armField(obj, 5, fc)
		if errs != nil {
			return zero, errs
		}
		return ctor(x0, x1, x2, x3, x4, x5), nil
	}
	return func(x0 A, x1 B, x2 C, x3 D, x4 E, x5 F) value.Value {
		return armEncode(tag, a.enc(x0), bc.enc(x1), cc.enc(x2), dc.enc(x3), ec.enc(x4), fc.enc(x5))
	}
}

// Variant7 registers a seven-field arm under tag and returns its encoder.
func Variant7[T, A, B, C, D, E, F, G any](b *Builder[T], tag string, ctor func(A, B, C, D, E, F, G) T, a Codec[A], bc Codec[B], cc Codec[C], dc Codec[D], ec Codec[E], fc Codec[F], gc Codec[G]) func(A, B, C, D, E, F, G) value.Value {
	b.arms[tag] = func(obj value.Object) (T, []value.DecodeError) {
		var zero T
		x0, errs := armField(obj, 0, a)
		if errs != nil {
			return zero, errs
		}
		x1, errs := armField(obj, 1, bc)
		if errs != nil {
			return zero, errs
		}
		x2, errs := armField(obj, 2, cc)
		if errs != nil {
			return zero, errs
		}
		x3, errs := armField(obj, 3, dc)
		if errs != nil {
			return zero, errs
		}
		x4, errs := armField(obj, 4, ec)
		if errs != nil {
			return zero, errs
		}
		x5, errs := armField(obj, 5, fc)
		if errs != nil {
			return zero, errs
		}
		x6, errs := armField(obj, 6, gc)
		if errs != nil {
			return zero, errs
		}
		return ctor(x0, x1, x2, x3, x4, x5, x6), nil
	}
	return func(x0 A, x1 B, x2 C, x3 D, x4 E, x5 F, x6 G) value.Value {
		return armEncode(tag, a.enc(x0), bc.enc(x1), cc.enc(x2), dc.enc(x3), ec.enc(x4), fc.enc(x5), gc.enc(x6))
	}
}

// Variant8 registers an eight-field arm under tag and returns its encoder.
func Variant8[T, A, B, C, D, E, F, G, H any](b *Builder[T], tag string, ctor func(A, B, C, D, E, F, G, H) T, a Codec[A], bc Codec[B], cc Codec[C], dc Codec[D], ec Codec[E], fc Codec[F], gc Codec[G], hc Codec[H]) func(A, B, C, D, E, F, G, H) value.Value {
	b.arms[tag] = func(obj value.Object) (T, []value.DecodeError) {
		var zero T
		x0, errs := armField(obj, 0, a)
		if errs != nil {
			return zero, errs
		}
		x1, errs := armField(obj, 1, bc)
		if errs != nil {
			return zero, errs
		}
		x2, errs := armField(obj, 2, cc)
		if errs != nil {
			return zero, errs
		}
		x3, errs := armField(obj, 3, dc)
		if errs != nil {
			return zero, errs
		}
		x4, errs := armField(obj, 4, ec)
		if errs != nil {
			return zero, errs
		}
		x5, errs := armField(obj, 5, fc)
		if errs != nil {
			return zero, errs
		}
		x6, errs := armField(obj, 6, gc)
		if errs != nil {
			return zero, errs
		}
		x7, errs := armField(obj, 7, hc)
		if errs != nil {
			return zero, errs
		}
		return ctor(x0, x1, x2, x3, x4, x5, x6, x7), nil
	}
	return func(x0 A, x1 B, x2 C, x3 D, x4 E, x5 F, x6 G, x7 H) value.Value {
		return armEncode(tag, a.enc(x0), bc.enc(x1), cc.enc(x2), dc.enc(x3), ec.enc(x4), fc.enc(x5), gc.enc(x6), hc.enc(x7))
	}
}
