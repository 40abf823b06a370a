// Package bicodec builds matched encoder/decoder pairs for JSON-like wire
// data. A Codec[T] is described once and derives both directions from that
// description, so decode(encode(v)) == v by construction.
//
// Components:
//   - Primitives: Int, Float, String, Bool.
//   - Containers: List, Optional, StringMap, Dict, Tuple2/Tuple3, ResultOf.
//   - Custom: a builder for tagged unions. Arms of 0..8 positional fields
//     register with Variant0..Variant8; Build seals them into one Codec.
//   - Combinators: Map, Then, Lazy derive new codecs from existing ones.
//   - Drivers: EncodeString/DecodeString (JSON text), EncodeValue/DecodeValue
//     (pre-parsed trees), EncodeCBOR/EncodeMsgpack and their decoders.
//
// Wire convention for custom types:
//
//	{"$": "Tag", "0": field0, ..., "N": fieldN}
//
// Encode dispatch is supplied by the caller as an exhaustive case analysis
// (type information lives host-side); decode dispatch reads the "$" tag.
//
// Codecs hold no mutable state and are safe for concurrent use. See the
// value package for the tree representation and the codeccache package for
// memoized decoding of hot payloads.
package bicodec
