package bicodec

import "github.com/unkn0wn-root/bicodec/value"

// Int is a codec for int64 values. Decoding a non-integral number fails.
func Int() Codec[int64] {
	return Codec[int64]{
		enc: func(v int64) value.Value { return value.Number(float64(v)) },
		dec: func(v value.Value) (int64, []value.DecodeError) {
			n, derr := value.AsInt(v)
			if derr != nil {
				return 0, []value.DecodeError{*derr}
			}
			return n, nil
		},
	}
}

// Float is a codec for float64 values. Integral numbers decode fine.
func Float() Codec[float64] {
	return Codec[float64]{
		enc: func(v float64) value.Value { return value.Number(v) },
		dec: func(v value.Value) (float64, []value.DecodeError) {
			f, derr := value.AsFloat(v)
			if derr != nil {
				return 0, []value.DecodeError{*derr}
			}
			return f, nil
		},
	}
}

// String is a codec for string values.
func String() Codec[string] {
	return Codec[string]{
		enc: func(v string) value.Value { return value.String(v) },
		dec: func(v value.Value) (string, []value.DecodeError) {
			s, derr := value.AsString(v)
			if derr != nil {
				return "", []value.DecodeError{*derr}
			}
			return s, nil
		},
	}
}

// Bool is a codec for bool values.
func Bool() Codec[bool] {
	return Codec[bool]{
		enc: func(v bool) value.Value { return value.Bool(v) },
		dec: func(v value.Value) (bool, []value.DecodeError) {
			b, derr := value.AsBool(v)
			if derr != nil {
				return false, []value.DecodeError{*derr}
			}
			return b, nil
		},
	}
}
