package strings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeFoldNil(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "nil stays nil", input: nil, expected: nil},
		{name: "empty stays empty", input: []string{}, expected: []string{}},
		{name: "trims requirement names", input: []string{" pandas ", "requests"}, expected: []string{"pandas", "requests"}},
		{name: "drops blanks and repeats", input: []string{"API_KEY", "", "  ", "API_KEY", "TOKEN"}, expected: []string{"API_KEY", "TOKEN"}},
		{name: "case is significant", input: []string{"Token", "TOKEN"}, expected: []string{"Token", "TOKEN"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeFold(tt.input, nil))
		})
	}
}

func TestDedupeFold(t *testing.T) {
	canonical := func(s string) string {
		return strings.ReplaceAll(strings.ToLower(s), "-", "_")
	}

	got := DedupeFold([]string{"python-dateutil", " python_dateutil", "Pandas", "pandas", ""}, canonical)
	assert.Equal(t, []string{"python-dateutil", "Pandas"}, got)

	got = DedupeFold([]string{"api_key", "API_KEY"}, strings.ToUpper)
	assert.Equal(t, []string{"api_key"}, got)
}
