package bicodec

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/unkn0wn-root/bicodec/value"
)

// ==============================
// Primitive codecs
// ==============================

func TestIntFidelity(t *testing.T) {
	if got := EncodeString(Int(), 42); got != "42" {
		t.Fatalf("EncodeString: got %q want %q", got, "42")
	}
	n, err := DecodeString(Int(), "42")
	if err != nil || n != 42 {
		t.Fatalf("DecodeString: got %d err=%v", n, err)
	}

	_, err = DecodeString(Int(), `"x"`)
	var derrs value.DecodeErrors
	if !errors.As(err, &derrs) {
		t.Fatalf("expected DecodeErrors, got %T (%v)", err, err)
	}
	if derrs[0].Expected != "Int" || derrs[0].Found != "String" {
		t.Fatalf("unexpected error shape: %+v", derrs[0])
	}
}

func TestIntRejectsFractional(t *testing.T) {
	_, err := DecodeString(Int(), "4.5")
	var derrs value.DecodeErrors
	if !errors.As(err, &derrs) || derrs[0].Found != "Float" {
		t.Fatalf("expected Int-vs-Float mismatch, got %v", err)
	}
}

func TestIntRejectsOutOfRange(t *testing.T) {
	for _, text := range []string{"10000000000000000000", "-10000000000000000000"} {
		_, err := DecodeString(Int(), text)
		var derrs value.DecodeErrors
		if !errors.As(err, &derrs) || derrs[0].Expected != "Int" {
			t.Fatalf("DecodeString(%s) should fail with an Int mismatch, got %v", text, err)
		}
	}
}

func TestPrimitiveRoundTrips(t *testing.T) {
	if f, err := DecodeString(Float(), EncodeString(Float(), 4.5)); err != nil || f != 4.5 {
		t.Fatalf("float round-trip: %v %v", f, err)
	}
	if s, err := DecodeString(String(), EncodeString(String(), "héllo\n")); err != nil || s != "héllo\n" {
		t.Fatalf("string round-trip: %q %v", s, err)
	}
	if b, err := DecodeString(Bool(), EncodeString(Bool(), true)); err != nil || !b {
		t.Fatalf("bool round-trip: %v %v", b, err)
	}
}

func TestMalformedTextIsParseError(t *testing.T) {
	_, err := DecodeString(Int(), "{nope")
	var perr *value.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *value.ParseError, got %T (%v)", err, err)
	}
}

// ==============================
// Containers
// ==============================

func TestListRoundTrip(t *testing.T) {
	c := List(Int())
	got, err := DecodeString(c, EncodeString(c, []int64{1, 2, 3}))
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if diff := cmp.Diff([]int64{1, 2, 3}, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestListStopsAtFirstBadElement(t *testing.T) {
	_, err := DecodeString(List(Int()), `[1,"x",true]`)
	var derrs value.DecodeErrors
	if !errors.As(err, &derrs) {
		t.Fatalf("expected DecodeErrors, got %v", err)
	}
	if len(derrs) != 1 {
		t.Fatalf("expected a single short-circuited error, got %d", len(derrs))
	}
	if diff := cmp.Diff([]string{"1"}, derrs[0].Path); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestOptional(t *testing.T) {
	c := Optional(Int())
	if got := EncodeString(c, nil); got != "null" {
		t.Fatalf("nil encodes as %q", got)
	}
	got, err := DecodeString(c, "null")
	if err != nil || got != nil {
		t.Fatalf("null decode: %v %v", got, err)
	}
	got, err = DecodeString(c, "5")
	if err != nil || got == nil || *got != 5 {
		t.Fatalf("present decode: %v %v", got, err)
	}
}

func TestStringMap(t *testing.T) {
	c := StringMap(Int())
	in := map[string]int64{"a": 1, "b": 2}
	got, err := DecodeString(c, EncodeString(c, in))
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}

	_, err = DecodeString(c, `{"a":1,"b":"x"}`)
	var derrs value.DecodeErrors
	if !errors.As(err, &derrs) {
		t.Fatalf("expected DecodeErrors, got %v", err)
	}
	if diff := cmp.Diff([]string{"b"}, derrs[0].Path); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestTupleWireShape(t *testing.T) {
	c := Tuple2(String(), Int())
	p := Pair[string, int64]{First: "k", Second: 7}
	if got := EncodeString(c, p); got != `{"$":"Tuple2","0":"k","1":7}` {
		t.Fatalf("unexpected wire text: %s", got)
	}
	back, err := DecodeString(c, EncodeString(c, p))
	if err != nil || back != p {
		t.Fatalf("round-trip: %+v %v", back, err)
	}

	c3 := Tuple3(Bool(), Int(), String())
	tr := Triple[bool, int64, string]{First: true, Second: 2, Third: "z"}
	back3, err := DecodeString(c3, EncodeString(c3, tr))
	if err != nil || back3 != tr {
		t.Fatalf("triple round-trip: %+v %v", back3, err)
	}
}

func TestDictRoundTrips(t *testing.T) {
	c := Dict(String(), Int())
	for _, in := range []map[string]int64{
		{},
		{"one": 1},
		{"one": 1, "two": 2, "three": 3},
	} {
		got, err := DecodeString(c, EncodeString(c, in))
		if err != nil {
			t.Fatalf("DecodeString: %v", err)
		}
		if diff := cmp.Diff(in, got); diff != "" {
			t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestDictNonStringKeys(t *testing.T) {
	c := Dict(Int(), Bool())
	in := map[int64]bool{1: true, 2: false}
	got, err := DecodeString(c, EncodeString(c, in))
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestResult(t *testing.T) {
	c := ResultOf(String(), Int())

	ok := Ok[string, int64]("x")
	if got := EncodeString(c, ok); got != `{"$":"Ok","0":"x"}` {
		t.Fatalf("unexpected ok wire text: %s", got)
	}
	back, err := DecodeString(c, EncodeString(c, ok))
	if err != nil || back != ok {
		t.Fatalf("ok round-trip: %+v %v", back, err)
	}

	fail := Err[string, int64](7)
	if got := EncodeString(c, fail); got != `{"$":"Error","0":7}` {
		t.Fatalf("unexpected error wire text: %s", got)
	}
	back, err = DecodeString(c, EncodeString(c, fail))
	if err != nil || back != fail {
		t.Fatalf("error round-trip: %+v %v", back, err)
	}
}

// ==============================
// Custom (tagged-union) codecs
// ==============================

type msg interface{ isMsg() }

type foo struct{}
type bar struct{ S string }
type baz struct {
	S string
	N int64
}

func (foo) isMsg() {}
func (bar) isMsg() {}
func (baz) isMsg() {}

func msgCodec() Codec[msg] {
	b := Custom[msg]()
	fooArm := Variant0(b, "Foo", func() msg { return foo{} })
	barArm := Variant1(b, "Bar", func(s string) msg { return bar{S: s} }, String())
	bazArm := Variant2(b, "Baz", func(s string, n int64) msg { return baz{S: s, N: n} }, String(), Int())
	return b.Build(func(m msg) value.Value {
		switch v := m.(type) {
		case foo:
			return fooArm()
		case bar:
			return barArm(v.S)
		case baz:
			return bazArm(v.S, v.N)
		}
		return value.Null{}
	})
}

func TestCustomRoundTrip(t *testing.T) {
	c := msgCodec()
	for _, in := range []msg{foo{}, bar{S: "hello"}, baz{S: "hello", N: 42}} {
		got, err := DecodeString(c, EncodeString(c, in))
		if err != nil {
			t.Fatalf("round-trip %T: %v", in, err)
		}
		if got != in {
			t.Fatalf("round-trip %T: got %+v want %+v", in, got, in)
		}
	}
}

func TestCustomWireText(t *testing.T) {
	c := msgCodec()
	if got := EncodeString(c, msg(baz{S: "hello", N: 42})); got != `{"$":"Baz","0":"hello","1":42}` {
		t.Fatalf("unexpected wire text: %s", got)
	}
	if got := EncodeString(c, msg(foo{})); got != `{"$":"Foo"}` {
		t.Fatalf("unexpected fieldless wire text: %s", got)
	}
}

func TestCustomUnknownTag(t *testing.T) {
	_, err := DecodeString(msgCodec(), `{"$":"Unknown"}`)
	var derrs value.DecodeErrors
	if !errors.As(err, &derrs) {
		t.Fatalf("expected DecodeErrors, got %v", err)
	}
	e := derrs[0]
	if diff := cmp.Diff([]string{"$"}, e.Path); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(e.Found, "Unknown") {
		t.Fatalf("error should name the offending tag: %+v", e)
	}
}

func TestCustomMissingTag(t *testing.T) {
	_, err := DecodeString(msgCodec(), `{}`)
	var derrs value.DecodeErrors
	if !errors.As(err, &derrs) {
		t.Fatalf("expected DecodeErrors, got %v", err)
	}
	e := derrs[0]
	if e.Found != "missing" || len(e.Path) != 1 || e.Path[0] != "$" {
		t.Fatalf("unexpected error shape: %+v", e)
	}
}

func TestCustomNonObjectInput(t *testing.T) {
	_, err := DecodeString(msgCodec(), `5`)
	var derrs value.DecodeErrors
	if !errors.As(err, &derrs) || derrs[0].Expected != "Object" {
		t.Fatalf("expected Object mismatch, got %v", err)
	}
}

func TestCustomNonStringTag(t *testing.T) {
	_, err := DecodeString(msgCodec(), `{"$":3}`)
	var derrs value.DecodeErrors
	if !errors.As(err, &derrs) || derrs[0].Path[0] != "$" {
		t.Fatalf("expected tag error, got %v", err)
	}
}

func TestCustomMissingField(t *testing.T) {
	_, err := DecodeString(msgCodec(), `{"$":"Baz","0":"hello"}`)
	var derrs value.DecodeErrors
	if !errors.As(err, &derrs) {
		t.Fatalf("expected DecodeErrors, got %v", err)
	}
	e := derrs[0]
	if e.Found != "nothing" {
		t.Fatalf("missing field should read as nothing: %+v", e)
	}
	if diff := cmp.Diff([]string{"1"}, e.Path); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestCustomBadFieldPath(t *testing.T) {
	_, err := DecodeString(msgCodec(), `{"$":"Baz","0":"hello","1":"not-a-number"}`)
	var derrs value.DecodeErrors
	if !errors.As(err, &derrs) {
		t.Fatalf("expected DecodeErrors, got %v", err)
	}
	if diff := cmp.Diff([]string{"1"}, derrs[0].Path); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestCustomDuplicateTagLastWins(t *testing.T) {
	b := Custom[msg]()
	Variant1(b, "Bar", func(s string) msg { return bar{S: "first:" + s} }, String())
	barArm := Variant1(b, "Bar", func(s string) msg { return bar{S: s} }, String())
	c := b.Build(func(m msg) value.Value {
		return barArm(m.(bar).S)
	})

	got, err := DecodeString(c, `{"$":"Bar","0":"x"}`)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if got != (bar{S: "x"}) {
		t.Fatalf("expected last registration to win, got %+v", got)
	}
}

type wide struct {
	A, B, C, D int64
	E, F, G, H string
}

func (wide) isMsg() {}

func TestCustomEightFieldArm(t *testing.T) {
	b := Custom[wide]()
	arm := Variant8(b, "Wide",
		func(a, bb, c, d int64, e, f, g, h string) wide {
			return wide{A: a, B: bb, C: c, D: d, E: e, F: f, G: g, H: h}
		},
		Int(), Int(), Int(), Int(), String(), String(), String(), String())
	c := b.Build(func(w wide) value.Value {
		return arm(w.A, w.B, w.C, w.D, w.E, w.F, w.G, w.H)
	})

	in := wide{A: 0, B: 1, C: 2, D: 3, E: "e", F: "f", G: "g", H: "h"}
	text := EncodeString(c, in)
	if text != `{"$":"Wide","0":0,"1":1,"2":2,"3":3,"4":"e","5":"f","6":"g","7":"h"}` {
		t.Fatalf("unexpected wire text: %s", text)
	}
	got, err := DecodeString(c, text)
	if err != nil || got != in {
		t.Fatalf("round-trip: %+v %v", got, err)
	}
}

// ==============================
// Combinators
// ==============================

type celsius float64

func TestMap(t *testing.T) {
	c := Map(Float(),
		func(c celsius) float64 { return float64(c) },
		func(f float64) celsius { return celsius(f) })
	got, err := DecodeString(c, EncodeString(c, celsius(21.5)))
	if err != nil || got != celsius(21.5) {
		t.Fatalf("round-trip: %v %v", got, err)
	}
}

func TestThenValidates(t *testing.T) {
	// Accept only known log levels; anything else fails decode.
	levels := map[string]bool{"debug": true, "info": true, "error": true}
	c := Then(String(),
		func(s string) string { return s },
		func(s string) Codec[string] {
			if levels[s] {
				return Succeed(s)
			}
			return Fail[string]("one of debug, info, error", `"`+s+`"`)
		})

	got, err := DecodeString(c, `"info"`)
	if err != nil || got != "info" {
		t.Fatalf("valid level: %v %v", got, err)
	}

	_, err = DecodeString(c, `"loud"`)
	var derrs value.DecodeErrors
	if !errors.As(err, &derrs) || derrs[0].Expected != "one of debug, info, error" {
		t.Fatalf("invalid level should fail: %v", err)
	}

	// First-step failure stops the chain before to runs.
	_, err = DecodeString(c, `7`)
	if !errors.As(err, &derrs) || derrs[0].Expected != "String" {
		t.Fatalf("expected first-step error, got %v", err)
	}
}

func TestSucceedAndFail(t *testing.T) {
	s := Succeed[int64](9)
	if got := EncodeString(s, 123); got != "null" {
		t.Fatalf("Succeed encodes as %q", got)
	}
	got, err := DecodeString(s, `{"anything":true}`)
	if err != nil || got != 9 {
		t.Fatalf("Succeed decode: %v %v", got, err)
	}

	f := Fail[int64]("nothing valid", "anything")
	if _, err := DecodeString(f, "1"); err == nil {
		t.Fatalf("Fail must fail")
	}
}

type tree struct {
	Label    string
	Children []tree
}

func treeCodec() Codec[tree] {
	var c Codec[tree]
	c = Lazy(func() Codec[tree] {
		b := Custom[tree]()
		arm := Variant2(b, "Node",
			func(label string, children []tree) tree {
				return tree{Label: label, Children: children}
			},
			String(), List(Lazy(func() Codec[tree] { return c })))
		return b.Build(func(t tree) value.Value {
			return arm(t.Label, t.Children)
		})
	})
	return c
}

func TestLazyRecursiveType(t *testing.T) {
	c := treeCodec()
	in := tree{Label: "root", Children: []tree{
		{Label: "a", Children: []tree{}},
		{Label: "b", Children: []tree{{Label: "b1", Children: []tree{}}}},
	}}
	got, err := DecodeString(c, EncodeString(c, in))
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

// ==============================
// Core escape hatches and drivers
// ==============================

func TestFromAndProjections(t *testing.T) {
	upper := From(
		func(s string) value.Value { return value.String(strings.ToUpper(s)) },
		func(v value.Value) (string, []value.DecodeError) {
			s, derr := value.AsString(v)
			if derr != nil {
				return "", []value.DecodeError{*derr}
			}
			return strings.ToLower(s), nil
		})

	enc := Encoder(upper)
	dec := Decoder(upper)
	v := enc("abc")
	if v != value.String("ABC") {
		t.Fatalf("unexpected encode: %v", v)
	}
	s, errs := dec(v)
	if len(errs) > 0 || s != "abc" {
		t.Fatalf("unexpected decode: %q %v", s, errs)
	}
}

func TestDecodeValueSkipsParsing(t *testing.T) {
	v := value.Array{value.Number(1), value.Number(2)}
	got, errs := DecodeValue(List(Int()), v)
	if len(errs) > 0 {
		t.Fatalf("DecodeValue: %v", errs)
	}
	if diff := cmp.Diff([]int64{1, 2}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeValueTreeShape(t *testing.T) {
	v := EncodeValue(msgCodec(), msg(bar{S: "hi"}))
	want := value.Object{"$": value.String("Bar"), "0": value.String("hi")}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestBinaryDrivers(t *testing.T) {
	c := msgCodec()
	in := msg(baz{S: "bin", N: 9})

	cb, err := EncodeCBOR(c, in)
	if err != nil {
		t.Fatalf("EncodeCBOR: %v", err)
	}
	got, err := DecodeCBOR(c, cb)
	if err != nil || got != in {
		t.Fatalf("cbor round-trip: %+v %v", got, err)
	}

	mp, err := EncodeMsgpack(c, in)
	if err != nil {
		t.Fatalf("EncodeMsgpack: %v", err)
	}
	got, err = DecodeMsgpack(c, mp)
	if err != nil || got != in {
		t.Fatalf("msgpack round-trip: %+v %v", got, err)
	}

	if _, err := DecodeCBOR(c, []byte{0xFF, 0x00}); err == nil {
		t.Fatalf("expected error on garbage cbor")
	}
}
