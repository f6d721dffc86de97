package virtual

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

type orderField struct {
	name string
	desc bool
}

func parseOrdering(fields []string) []orderField {
	out := make([]orderField, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		desc := strings.HasPrefix(f, "-")
		f = strings.TrimLeft(f, "-+")
		if f == "" {
			continue
		}
		out = append(out, orderField{name: f, desc: desc})
	}
	return out
}

type sortKind int

const (
	sortText sortKind = iota
	sortNumber
	sortBool
)

type sortKey struct {
	kind sortKind
	num  float64
	text string
}

func compareKeys(a, b sortKey) int {
	if a.kind == b.kind {
		switch a.kind {
		case sortNumber, sortBool:
			return cmp.Compare(a.num, b.num)
		}
	}
	return strings.Compare(a.text, b.text)
}

// sortRecords returns a stably sorted copy. Keys are computed once per record;
// text keys are case folded and a missing value sorts as "".
func sortRecords[T Record](items []T, ordering []orderField) []T {
	caser := cases.Fold()
	type keyed struct {
		item T
		keys []sortKey
	}
	rows := make([]keyed, len(items))
	for i, item := range items {
		keys := make([]sortKey, len(ordering))
		for j, f := range ordering {
			v, ok := item.Field(f.name)
			keys[j] = makeSortKey(caser, v, ok)
		}
		rows[i] = keyed{item: item, keys: keys}
	}

	slices.SortStableFunc(rows, func(a, b keyed) int {
		for j, f := range ordering {
			c := compareKeys(a.keys[j], b.keys[j])
			if c == 0 {
				continue
			}
			if f.desc {
				return -c
			}
			return c
		}
		return 0
	})

	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = r.item
	}
	return out
}

func makeSortKey(caser cases.Caser, v any, ok bool) sortKey {
	if !ok || v == nil {
		return sortKey{kind: sortText}
	}
	if b, isBool := v.(bool); isBool {
		n := 0.0
		if b {
			n = 1
		}
		return sortKey{kind: sortBool, num: n, text: strconv.FormatBool(b)}
	}
	if n, isNum := toFloat(v); isNum {
		return sortKey{kind: sortNumber, num: n, text: stringify(v)}
	}
	return sortKey{kind: sortText, text: caser.String(stringify(v))}
}

// valueEqual compares a record field against a lookup value. A missing field
// only equals a nil lookup value. Numbers compare by value across Go types and
// string-kinded named types compare by their string form.
func valueEqual(got any, ok bool, want any) bool {
	if !ok || got == nil {
		return want == nil
	}
	if want == nil {
		return false
	}

	gt, wt := reflect.TypeOf(got), reflect.TypeOf(want)
	if gt == wt && gt.Comparable() {
		return got == want
	}
	if gn, gok := toFloat(got); gok {
		if wn, wok := toFloat(want); wok {
			return gn == wn
		}
		return false
	}
	gv, wv := reflect.ValueOf(got), reflect.ValueOf(want)
	if gv.Kind() == reflect.String && wv.Kind() == reflect.String {
		return gv.String() == wv.String()
	}
	return false
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(v)
}
