package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Kind is the stored type tag of a value.
type Kind string

const (
	KindString Kind = "str"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindJSON   Kind = "json"
)

// Kinds lists every kind in display order.
var Kinds = []Kind{KindString, KindInt, KindFloat, KindJSON}

func (k Kind) IsValid() bool {
	switch k {
	case KindString, KindInt, KindFloat, KindJSON:
		return true
	}
	return false
}

// ParseKind validates a stored tag. Empty means KindString.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return KindString, nil
	}
	if !k.IsValid() {
		return "", fmt.Errorf("unknown value kind %q", s)
	}
	return k, nil
}

// TypedValue is a value stored as text plus its kind tag. It is immutable.
type TypedValue struct {
	raw  string
	kind Kind
}

// NewTypedValue reconstructs a value read back from storage.
func NewTypedValue(raw string, kind Kind) TypedValue {
	return TypedValue{raw: raw, kind: kind}
}

func (v TypedValue) Raw() string { return v.raw }
func (v TypedValue) Kind() Kind  { return v.kind }

func (v TypedValue) String() string { return v.raw }

// Value decodes the stored text under its kind. ok is false when the text
// does not parse; the value is then nil, never partial.
func (v TypedValue) Value() (any, bool) {
	return Decode(v.raw, v.kind)
}

// Encode detects the kind of a native value and renders it as text.
// Maps, slices, arrays and structs are JSON; booleans and integers are int
// (true is "1"); floats are float; everything else is its string form.
// nil encodes as JSON null.
func Encode(value any) TypedValue {
	switch t := value.(type) {
	case nil:
		return TypedValue{raw: "null", kind: KindJSON}
	case TypedValue:
		return t
	case string:
		return TypedValue{raw: t, kind: KindString}
	case []byte:
		return TypedValue{raw: string(t), kind: KindString}
	case bool:
		if t {
			return TypedValue{raw: "1", kind: KindInt}
		}
		return TypedValue{raw: "0", kind: KindInt}
	case json.Number:
		if _, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return TypedValue{raw: t.String(), kind: KindInt}
		}
		if f, err := t.Float64(); err == nil {
			return TypedValue{raw: formatFloat(f, 64), kind: KindFloat}
		}
		return TypedValue{raw: t.String(), kind: KindString}
	case json.RawMessage:
		var buf bytes.Buffer
		if err := json.Compact(&buf, t); err == nil {
			return TypedValue{raw: buf.String(), kind: KindJSON}
		}
		return TypedValue{raw: string(t), kind: KindString}
	case fmt.Stringer:
		return TypedValue{raw: t.String(), kind: KindString}
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return Encode(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return TypedValue{raw: strconv.FormatInt(rv.Int(), 10), kind: KindInt}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return TypedValue{raw: strconv.FormatUint(rv.Uint(), 10), kind: KindInt}
	case reflect.Float32:
		return TypedValue{raw: formatFloat(rv.Float(), 32), kind: KindFloat}
	case reflect.Float64:
		return TypedValue{raw: formatFloat(rv.Float(), 64), kind: KindFloat}
	case reflect.String:
		return TypedValue{raw: rv.String(), kind: KindString}
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		if raw, err := json.Marshal(markFloats(rv)); err == nil {
			return TypedValue{raw: string(raw), kind: KindJSON}
		}
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Encode(nil)
		}
		return Encode(rv.Elem().Interface())
	}
	return TypedValue{raw: fmt.Sprint(value), kind: KindString}
}

// EncodeAs stores the string form of value under an explicit kind.
func EncodeAs(value any, kind Kind) TypedValue {
	if s, ok := value.(string); ok {
		return TypedValue{raw: s, kind: kind}
	}
	return TypedValue{raw: Encode(value).raw, kind: kind}
}

// formatFloat renders the shortest form that parses back to f, switching to
// exponent notation outside [1e-4, 1e16). Whole numbers keep a fractional
// marker ("2.0") so the text alone never reads as an integer.
func formatFloat(f float64, bits int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		format = 'g'
	}
	s := strconv.FormatFloat(f, format, -1, bits)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Decode parses raw under kind. Integers decode to int64, floats to float64,
// JSON to its generic form with integral numbers as int64 and the rest as
// float64. Malformed text and unknown kinds yield (nil, false).
func Decode(raw string, kind Kind) (any, bool) {
	switch kind {
	case KindString:
		return raw, true
	case KindInt:
		text := strings.TrimSpace(raw)
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return n, true
		}
		if u, err := strconv.ParseUint(text, 10, 64); err == nil {
			return u, true
		}
		return nil, false
	case KindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, false
		}
		return f, true
	case KindJSON:
		dec := json.NewDecoder(strings.NewReader(raw))
		dec.UseNumber()
		var out any
		if err := dec.Decode(&out); err != nil {
			return nil, false
		}
		if dec.More() {
			return nil, false
		}
		return numbers(out), true
	}
	return nil, false
}

// markFloats copies maps and slices into their generic form with float
// leaves rendered by formatFloat, so whole floats keep their ".0" inside JSON.
// Structs and maps with non-string keys are left to encoding/json.
func markFloats(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return f
		}
		bits := 64
		if rv.Kind() == reflect.Float32 {
			bits = 32
		}
		return json.Number(formatFloat(f, bits))
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return markFloats(rv.Elem())
	case reflect.Map:
		if rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
			break
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = markFloats(iter.Value())
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			break
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			break
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = markFloats(rv.Index(i))
		}
		return out
	}
	if !rv.IsValid() || !rv.CanInterface() {
		return nil
	}
	return rv.Interface()
}

// numbers replaces json.Number leaves with int64 or float64. Numbers written
// with a fraction or exponent stay float64 even when whole.
func numbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if strings.ContainsAny(t.String(), ".eE") {
			f, _ := t.Float64()
			return f
		}
		if n, err := t.Int64(); err == nil {
			return n
		}
		f, _ := t.Float64()
		return f
	case map[string]any:
		for k, inner := range t {
			t[k] = numbers(inner)
		}
		return t
	case []any:
		for i, inner := range t {
			t[i] = numbers(inner)
		}
		return t
	}
	return v
}
