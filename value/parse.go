package value

import (
	"fmt"

	"github.com/buger/jsonparser"
)

// Parse reads one JSON document into a Value tree. Malformed input is
// reported as a *ParseError.
func Parse(data []byte) (Value, error) {
	raw, dt, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	v, err := parseValue(raw, dt)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return v, nil
}

func ParseString(text string) (Value, error) {
	return Parse([]byte(text))
}

func parseValue(data []byte, dt jsonparser.ValueType) (Value, error) {
	switch dt {
	case jsonparser.Null:
		return Null{}, nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, err
		}
		return Bool(b), nil
	case jsonparser.Number:
		f, err := jsonparser.ParseFloat(data)
		if err != nil {
			return nil, err
		}
		return Number(f), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case jsonparser.Array:
		arr := Array{}
		var inner error
		_, err := jsonparser.ArrayEach(data, func(el []byte, elType jsonparser.ValueType, _ int, elErr error) {
			if inner != nil {
				return
			}
			if elErr != nil {
				inner = elErr
				return
			}
			v, err := parseValue(el, elType)
			if err != nil {
				inner = err
				return
			}
			arr = append(arr, v)
		})
		if err != nil {
			return nil, err
		}
		if inner != nil {
			return nil, inner
		}
		return arr, nil
	case jsonparser.Object:
		obj := Object{}
		err := jsonparser.ObjectEach(data, func(key, el []byte, elType jsonparser.ValueType, _ int) error {
			v, err := parseValue(el, elType)
			if err != nil {
				return err
			}
			obj[string(key)] = v
			return nil
		})
		if err != nil {
			return nil, err
		}
		return obj, nil
	}
	return nil, fmt.Errorf("unsupported json value type %v", dt)
}
