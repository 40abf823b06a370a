package bicodec

import (
	"strconv"

	"github.com/unkn0wn-root/bicodec/value"
)

// List is a codec for slices. Decode requires an Array and stops at the
// first failing element, reporting its index on the error path.
func List[T any](elem Codec[T]) Codec[[]T] {
	return Codec[[]T]{
		enc: func(vs []T) value.Value {
			out := make(value.Array, len(vs))
			for i, v := range vs {
				out[i] = elem.enc(v)
			}
			return out
		},
		dec: func(v value.Value) ([]T, []value.DecodeError) {
			arr, derr := value.AsArray(v)
			if derr != nil {
				return nil, []value.DecodeError{*derr}
			}
			out := make([]T, len(arr))
			for i, el := range arr {
				x, errs := elem.dec(el)
				if len(errs) > 0 {
					return nil, value.At(strconv.Itoa(i), errs)
				}
				out[i] = x
			}
			return out, nil
		},
	}
}

// Optional is a codec for pointer values: nil encodes as null, and null
// decodes as nil. Anything else round-trips through c.
func Optional[T any](c Codec[T]) Codec[*T] {
	return Codec[*T]{
		enc: func(v *T) value.Value {
			if v == nil {
				return value.Null{}
			}
			return c.enc(*v)
		},
		dec: func(v value.Value) (*T, []value.DecodeError) {
			if v == nil || v.Type() == value.NullType {
				return nil, nil
			}
			x, errs := c.dec(v)
			if len(errs) > 0 {
				return nil, errs
			}
			return &x, nil
		},
	}
}

// StringMap is a codec for string-keyed maps rendered as a JSON object.
// Decode stops at the first failing member, reporting its key on the path.
func StringMap[T any](c Codec[T]) Codec[map[string]T] {
	return Codec[map[string]T]{
		enc: func(m map[string]T) value.Value {
			out := make(value.Object, len(m))
			for k, v := range m {
				out[k] = c.enc(v)
			}
			return out
		},
		dec: func(v value.Value) (map[string]T, []value.DecodeError) {
			obj, derr := value.AsObject(v)
			if derr != nil {
				return nil, []value.DecodeError{*derr}
			}
			out := make(map[string]T, len(obj))
			for k, el := range obj {
				x, errs := c.dec(el)
				if len(errs) > 0 {
					return nil, value.At(k, errs)
				}
				out[k] = x
			}
			return out, nil
		},
	}
}

// Pair is the host representation of a two-element tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the host representation of a three-element tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple2 is a codec for pairs, built as a single-arm custom type with tag
// "Tuple2" rather than a bespoke encoding.
func Tuple2[A, B any](a Codec[A], b Codec[B]) Codec[Pair[A, B]] {
	bld := Custom[Pair[A, B]]()
	arm := Variant2(bld, "Tuple2", func(x A, y B) Pair[A, B] {
		return Pair[A, B]{First: x, Second: y}
	}, a, b)
	return bld.Build(func(p Pair[A, B]) value.Value {
		return arm(p.First, p.Second)
	})
}

// Tuple3 is a codec for triples; a single-arm custom type with tag "Tuple3".
func Tuple3[A, B, C any](a Codec[A], b Codec[B], c Codec[C]) Codec[Triple[A, B, C]] {
	bld := Custom[Triple[A, B, C]]()
	arm := Variant3(bld, "Tuple3", func(x A, y B, z C) Triple[A, B, C] {
		return Triple[A, B, C]{First: x, Second: y, Third: z}
	}, a, b, c)
	return bld.Build(func(t Triple[A, B, C]) value.Value {
		return arm(t.First, t.Second, t.Third)
	})
}

// Dict is a codec for maps with arbitrary comparable keys. It is derived,
// not primitive: the map is rendered as a list of key/value tuples and
// converted with Map.
func Dict[K comparable, V any](kc Codec[K], vc Codec[V]) Codec[map[K]V] {
	pairs := List(Tuple2(kc, vc))
	return Map(pairs,
		func(m map[K]V) []Pair[K, V] {
			out := make([]Pair[K, V], 0, len(m))
			for k, v := range m {
				out = append(out, Pair[K, V]{First: k, Second: v})
			}
			return out
		},
		func(ps []Pair[K, V]) map[K]V {
			m := make(map[K]V, len(ps))
			for _, p := range ps {
				m[p.First] = p.Second
			}
			return m
		})
}

// Result is a success-or-error union. IsErr selects which side is live.
type Result[T, E any] struct {
	Ok    T
	Err   E
	IsErr bool
}

// Ok builds a success Result.
func Ok[T, E any](v T) Result[T, E] { return Result[T, E]{Ok: v} }

// Err builds an error Result.
func Err[T, E any](e E) Result[T, E] { return Result[T, E]{Err: e, IsErr: true} }

// ResultOf is a codec for Result values, built as a two-arm custom type
// with tags "Ok" and "Error".
func ResultOf[T, E any](okc Codec[T], errc Codec[E]) Codec[Result[T, E]] {
	bld := Custom[Result[T, E]]()
	okArm := Variant1(bld, "Ok", Ok[T, E], okc)
	errArm := Variant1(bld, "Error", Err[T, E], errc)
	return bld.Build(func(r Result[T, E]) value.Value {
		if r.IsErr {
			return errArm(r.Err)
		}
		return okArm(r.Ok)
	})
}
