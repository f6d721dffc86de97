// Package normalize projects raw backend rows onto the common company field set.
package normalize

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"

	"companyatlas/internal/backends/models"
)

// Normalizer maps one raw row of a domain family onto models.NormalizedFields.
// Fields it cannot fill are left out; the caller defaults them to "".
type Normalizer interface {
	Normalize(row models.Row) map[string]string
}

// NormalizerFunc adapts a function to Normalizer.
type NormalizerFunc func(row models.Row) map[string]string

func (f NormalizerFunc) Normalize(row models.Row) map[string]string { return f(row) }

// Registry holds the normalizer of every recognized domain family.
// It is built once at startup and read concurrently afterwards.
type Registry struct {
	mu       sync.RWMutex
	families map[string]Normalizer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{families: make(map[string]Normalizer)}
}

// Default returns a registry with the built-in families registered.
func Default() *Registry {
	r := NewRegistry()
	_ = r.Register(FamilyFrench, French())
	return r
}

// Register adds a family normalizer. Families are matched case-insensitively.
func (r *Registry) Register(family string, n Normalizer) error {
	key := strings.ToLower(strings.TrimSpace(family))
	if key == "" {
		return fmt.Errorf("family name is required")
	}
	if n == nil {
		return fmt.Errorf("normalizer for %s is nil", family)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.families[key]; exists {
		return fmt.Errorf("family %s already registered", key)
	}
	r.families[key] = n
	return nil
}

// Lookup finds the normalizer of family.
func (r *Registry) Lookup(family string) (Normalizer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.families[strings.ToLower(strings.TrimSpace(family))]
	return n, ok
}

// Families lists the registered family names, sorted.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.families))
}

// Normalize returns the normalized projection of row. Only company data rows
// of a recognized family are rewritten, and only when the row does not
// already carry every normalized field.
func (r *Registry) Normalize(family string, service models.Service, row models.Row) map[string]string {
	if service == models.ServiceCompanyData && !IsNormalized(row) {
		if n, ok := r.Lookup(family); ok {
			if out := n.Normalize(row); out != nil {
				return Project(toRow(out))
			}
		}
	}
	return Project(row)
}

// IsNormalized reports whether row already has every normalized key.
func IsNormalized(row models.Row) bool {
	for _, f := range models.NormalizedFields {
		if _, ok := row[f]; !ok {
			return false
		}
	}
	return true
}

// Project reads every normalized field straight from row.
func Project(row models.Row) map[string]string {
	out := make(map[string]string, len(models.NormalizedFields))
	for _, f := range models.NormalizedFields {
		out[f] = Stringify(row[f])
	}
	return out
}

// Stringify renders a raw value for display; nil is "".
// Whole JSON numbers render without exponent.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	}
	return fmt.Sprint(v)
}

func toRow(in map[string]string) models.Row {
	row := make(models.Row, len(in))
	for k, v := range in {
		row[k] = v
	}
	return row
}

// lookupPath resolves a dotted path through nested maps.
func lookupPath(row models.Row, path string) (any, bool) {
	var cur any = row
	for part := range strings.SplitSeq(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
