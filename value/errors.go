package value

import (
	"fmt"
	"strconv"
	"strings"
)

// DecodeError reports one place where a Value did not match the shape a
// decoder expected. Decoders return these; they never panic on input.
type DecodeError struct {
	Expected string
	Found    string
	Path     []string // field keys and stringified indices, decode root first
}

func (e DecodeError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
	}
	return fmt.Sprintf("expected %s, found %s at %s", e.Expected, e.Found, renderPath(e.Path))
}

func renderPath(path []string) string {
	var b strings.Builder
	b.WriteByte('$')
	for _, seg := range path {
		if _, err := strconv.Atoi(seg); err == nil {
			b.WriteByte('[')
			b.WriteString(seg)
			b.WriteByte(']')
			continue
		}
		b.WriteByte('.')
		b.WriteString(seg)
	}
	return b.String()
}

// At returns errs with seg pushed onto the front of every path. Composite
// decoders use it to report where inside a container a failure happened.
func At(seg string, errs []DecodeError) []DecodeError {
	out := make([]DecodeError, len(errs))
	for i, e := range errs {
		path := make([]string, 0, len(e.Path)+1)
		path = append(path, seg)
		path = append(path, e.Path...)
		e.Path = path
		out[i] = e
	}
	return out
}

// DecodeErrors adapts a decoder's error list to the error interface for
// top-level entry points.
type DecodeErrors []DecodeError

func (e DecodeErrors) Error() string {
	switch len(e) {
	case 0:
		return "decode failed"
	case 1:
		return e[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", e[0].Error(), len(e)-1)
	}
}

func (e DecodeErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i := range e {
		errs[i] = e[i]
	}
	return errs
}

// ParseError wraps a failure to read wire bytes into a Value, so callers can
// tell malformed input apart from well-formed input of the wrong shape.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "value: parse: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }
