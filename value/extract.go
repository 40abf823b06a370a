package value

import "math"

// Typed extraction. Each accessor returns the Go representation or a
// DecodeError with an empty path; callers push path segments as they
// descend.

func AsInt(v Value) (int64, *DecodeError) {
	n, ok := v.(Number)
	if !ok {
		return 0, &DecodeError{Expected: "Int", Found: Describe(v)}
	}
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, &DecodeError{Expected: "Int", Found: "Float"}
	}
	// float64(math.MaxInt64) rounds up to 2^63, hence the exclusive bound;
	// converting anything outside would silently saturate.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, &DecodeError{Expected: "Int", Found: "Number"}
	}
	return int64(f), nil
}

func AsFloat(v Value) (float64, *DecodeError) {
	n, ok := v.(Number)
	if !ok {
		return 0, &DecodeError{Expected: "Float", Found: Describe(v)}
	}
	return float64(n), nil
}

func AsString(v Value) (string, *DecodeError) {
	s, ok := v.(String)
	if !ok {
		return "", &DecodeError{Expected: "String", Found: Describe(v)}
	}
	return string(s), nil
}

func AsBool(v Value) (bool, *DecodeError) {
	b, ok := v.(Bool)
	if !ok {
		return false, &DecodeError{Expected: "Bool", Found: Describe(v)}
	}
	return bool(b), nil
}

func AsArray(v Value) (Array, *DecodeError) {
	a, ok := v.(Array)
	if !ok {
		return nil, &DecodeError{Expected: "Array", Found: Describe(v)}
	}
	return a, nil
}

func AsObject(v Value) (Object, *DecodeError) {
	o, ok := v.(Object)
	if !ok {
		return nil, &DecodeError{Expected: "Object", Found: Describe(v)}
	}
	return o, nil
}
