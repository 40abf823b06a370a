package value

import "google.golang.org/protobuf/types/known/structpb"

// Conversions to and from protobuf's well-known Struct value, for callers
// embedding codec output in proto messages.

func ToProto(v Value) (*structpb.Value, error) {
	return structpb.NewValue(ToAny(v))
}

func FromProto(p *structpb.Value) (Value, error) {
	if p == nil {
		return Null{}, nil
	}
	return FromAny(p.AsInterface())
}
