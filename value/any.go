package value

import "fmt"

// ToAny lowers a Value tree to plain Go values (nil, bool, float64, string,
// []any, map[string]any). This is the bridge into encoders that already
// understand those shapes (CBOR, msgpack, structpb).
func ToAny(v Value) any {
	switch x := v.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(x)
	case Number:
		return float64(x)
	case String:
		return string(x)
	case Array:
		out := make([]any, len(x))
		for i, el := range x {
			out[i] = ToAny(el)
		}
		return out
	case Object:
		out := make(map[string]any, len(x))
		for k, el := range x {
			out[k] = ToAny(el)
		}
		return out
	}
	return nil
}

// FromAny lifts plain Go values back into a Value tree. It accepts the
// numeric and map shapes the supported decoders produce.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Number(float64(x)), nil
	case int8:
		return Number(float64(x)), nil
	case int16:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint:
		return Number(float64(x)), nil
	case uint8:
		return Number(float64(x)), nil
	case uint16:
		return Number(float64(x)), nil
	case uint32:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case string:
		return String(x), nil
	case []any:
		out := make(Array, len(x))
		for i, el := range x {
			v, err := FromAny(el)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case map[string]any:
		out := make(Object, len(x))
		for k, el := range x {
			v, err := FromAny(el)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	case map[any]any:
		out := make(Object, len(x))
		for k, el := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("value: non-string map key %T", k)
			}
			v, err := FromAny(el)
			if err != nil {
				return nil, err
			}
			out[ks] = v
		}
		return out, nil
	}
	return nil, fmt.Errorf("value: cannot represent %T", v)
}
