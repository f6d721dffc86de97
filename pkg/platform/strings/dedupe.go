// Package strings holds small slice helpers shared by declaration parsing.
package strings

import (
	"strings"
)

// DedupeFold trims every element and drops empty and repeated ones, keeping
// first-seen order. Two elements repeat when fold maps them to the same key;
// the first spelling is kept. A nil fold compares the trimmed text.
//
//	DedupeFold([]string{"python-dateutil", " python_dateutil", "Pandas"}, probe.Canonical)
//	// []string{"python-dateutil", "Pandas"}
func DedupeFold(values []string, fold func(string) string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		key := trimmed
		if fold != nil {
			key = fold(trimmed)
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
