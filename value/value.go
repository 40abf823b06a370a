// Package value implements the JSON-like tree that codecs encode into and
// decode from. A Value is one of Null, Bool, Number, String, Array or Object.
// The tree is format-agnostic: it renders to and from JSON text (Parse,
// Stringify), CBOR, msgpack and protobuf Struct values.
package value

type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		BoolType:   "Bool",
		NumberType: "Number",
		StringType: "String",
		ArrayType:  "Array",
		ObjectType: "Object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

// Value is one node of the tree. The set of implementations is closed.
type Value interface {
	Type() Type
}

type (
	Null   struct{}
	Bool   bool
	Number float64
	String string
	Array  []Value
	Object map[string]Value
)

func (Null) Type() Type   { return NullType }
func (Bool) Type() Type   { return BoolType }
func (Number) Type() Type { return NumberType }
func (String) Type() Type { return StringType }
func (Array) Type() Type  { return ArrayType }
func (Object) Type() Type { return ObjectType }

// Describe names v for error messages. A nil Value reads as "nothing",
// which is what a missing object member looks like to a decoder.
func Describe(v Value) string {
	if v == nil {
		return "nothing"
	}
	return v.Type().String()
}
