package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func TestEncodeDetectsKind(t *testing.T) {
	tests := []struct {
		name string
		in   any
		raw  string
		kind Kind
	}{
		{name: "integer", in: 150, raw: "150", kind: KindInt},
		{name: "negative int64", in: int64(-42), raw: "-42", kind: KindInt},
		{name: "unsigned", in: uint8(7), raw: "7", kind: KindInt},
		{name: "true", in: true, raw: "1", kind: KindInt},
		{name: "false", in: false, raw: "0", kind: KindInt},
		{name: "fractional float", in: 100000.50, raw: "100000.5", kind: KindFloat},
		{name: "whole float keeps marker", in: 2.0, raw: "2.0", kind: KindFloat},
		{name: "large float", in: 1e21, raw: "1e+21", kind: KindFloat},
		{name: "small float", in: 0.00001, raw: "1e-05", kind: KindFloat},
		{name: "float32", in: float32(0.1), raw: "0.1", kind: KindFloat},
		{name: "string", in: "Tour Eiffel", raw: "Tour Eiffel", kind: KindString},
		{name: "numeric string stays string", in: "123456789", raw: "123456789", kind: KindString},
		{name: "named string", in: label("x"), raw: "x", kind: KindString},
		{name: "map", in: map[string]any{"b": 1, "a": "v"}, raw: `{"a":"v","b":1}`, kind: KindJSON},
		{name: "list", in: []any{"a", 1}, raw: `["a",1]`, kind: KindJSON},
		{name: "whole float inside map", in: map[string]any{"capital": 2.0, "ratio": 1.5}, raw: `{"capital":2.0,"ratio":1.5}`, kind: KindJSON},
		{name: "whole float inside list", in: []float64{3, 0.5}, raw: `[3.0,0.5]`, kind: KindJSON},
		{name: "struct", in: point{X: 1, Y: 2}, raw: `{"x":1,"y":2}`, kind: KindJSON},
		{name: "nil", in: nil, raw: "null", kind: KindJSON},
		{name: "json number int", in: json.Number("12"), raw: "12", kind: KindInt},
		{name: "json number float", in: json.Number("1.25"), raw: "1.25", kind: KindFloat},
		{name: "raw json compacted", in: json.RawMessage(`{ "a" : 1 }`), raw: `{"a":1}`, kind: KindJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.in)
			assert.Equal(t, tt.raw, got.Raw())
			assert.Equal(t, tt.kind, got.Kind())
		})
	}
}

func TestIntegerScenario(t *testing.T) {
	v := Encode(150)
	require.Equal(t, "150", v.Raw())
	require.Equal(t, KindInt, v.Kind())

	got, ok := v.Value()
	require.True(t, ok)
	assert.Equal(t, int64(150), got)
}

func TestRoundTrip(t *testing.T) {
	values := []any{
		"",
		"Tour Eiffel",
		"  padded  ",
		int64(0),
		int64(math.MaxInt64),
		int64(math.MinInt64),
		uint64(math.MaxUint64),
		0.0,
		-3.75,
		1e-7,
		123456789.125,
		map[string]any{"n": int64(1), "f": 1.5, "s": "x", "b": true, "nil": nil, "l": []any{int64(2), "y"}},
		[]any{},
		map[string]any{},
		map[string]any{"capital": 2.0, "ratio": 1.5, "shares": int64(2)},
		[]any{1e21, -4.0, map[string]any{"nested": 10.0}},
	}

	for _, v := range values {
		encoded := Encode(v)
		decoded, ok := Decode(encoded.Raw(), encoded.Kind())
		require.True(t, ok, "decode %#v", v)
		assert.Equal(t, v, decoded, "round trip of %#v via %q", v, encoded.Raw())
	}
}

func TestRoundTripBoolAndNil(t *testing.T) {
	got, ok := Encode(true).Value()
	require.True(t, ok)
	assert.Equal(t, int64(1), got)

	got, ok = Encode(nil).Value()
	require.True(t, ok)
	assert.Nil(t, got)
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		raw  string
		kind Kind
	}{
		{raw: "abc", kind: KindInt},
		{raw: "1.5", kind: KindInt},
		{raw: "", kind: KindInt},
		{raw: "1,5", kind: KindFloat},
		{raw: "{not json", kind: KindJSON},
		{raw: `{"a":1} trailing`, kind: KindJSON},
		{raw: "x", kind: Kind("decimal")},
	}

	for _, tt := range tests {
		got, ok := Decode(tt.raw, tt.kind)
		assert.False(t, ok, "%q as %s", tt.raw, tt.kind)
		assert.Nil(t, got)
	}

	got, ok := Decode(" 42 ", KindInt)
	assert.True(t, ok)
	assert.Equal(t, int64(42), got)
}

func TestEncodeAs(t *testing.T) {
	v := EncodeAs(150, KindString)
	assert.Equal(t, "150", v.Raw())
	assert.Equal(t, KindString, v.Kind())

	v = EncodeAs("3.5", KindFloat)
	got, ok := v.Value()
	assert.True(t, ok)
	assert.Equal(t, 3.5, got)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, KindString, got)

	_, err = ParseKind("decimal")
	assert.Error(t, err)
}

func TestNormalizeCountry(t *testing.T) {
	assert.Equal(t, "FR", NormalizeCountry("france"))
	assert.Equal(t, "FR", NormalizeCountry(" fr "))
	assert.Equal(t, "GB", NormalizeCountry("gb"))
}

func TestNewDataView(t *testing.T) {
	view := NewDataView(&Data{DataType: "employees", Value: NewTypedValue("many", KindInt)})
	assert.False(t, view.Valid)
	assert.Nil(t, view.Value)
	assert.Equal(t, "many", view.Raw)

	raw, err := json.Marshal(NewDataView(&Data{DataType: "capital", Value: Encode(100000.5)}))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"value":100000.5`)
	assert.Contains(t, string(raw), `"value_type":"float"`)
}
