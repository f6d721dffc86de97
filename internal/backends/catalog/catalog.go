// Package catalog is a file-backed backend source. A catalog file declares
// backends and, optionally, the fixture rows each one answers searches with.
package catalog

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"companyatlas/internal/backends/models"
	"companyatlas/internal/backends/ports"
)

// Entry is one backend in the catalog file.
type Entry struct {
	models.Declaration `yaml:",inline"`

	Fixtures map[models.Capability][]any `yaml:"fixtures"`

	// Fail makes every search of this backend return the given error message.
	Fail string `yaml:"fail"`
}

type document struct {
	Backends []Entry `yaml:"backends"`
}

// Catalog implements ports.Discoverer and ports.BackendFactory.
type Catalog struct {
	load func() (document, error)
}

var (
	_ ports.Discoverer     = (*Catalog)(nil)
	_ ports.BackendFactory = (*Catalog)(nil)
)

// Open returns a catalog that reads path on every call, so edits are picked
// up by the next request.
func Open(path string) *Catalog {
	return &Catalog{load: func() (document, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return document{}, fmt.Errorf("read catalog: %w", err)
		}
		return parse(data)
	}}
}

// Parse builds an in-memory catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	doc, err := parse(data)
	if err != nil {
		return nil, err
	}
	return &Catalog{load: func() (document, error) { return doc, nil }}, nil
}

func parse(data []byte) (document, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("decode catalog: %w", err)
	}
	return doc, nil
}

// Discover returns every declaration in file order. Malformed and duplicate
// entries are returned as-is; the registry skips them one by one.
func (c *Catalog) Discover(ctx context.Context) ([]models.Declaration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := c.load()
	if err != nil {
		return nil, err
	}
	decls := make([]models.Declaration, 0, len(doc.Backends))
	for _, e := range doc.Backends {
		decls = append(decls, e.Declaration)
	}
	return decls, nil
}

// Backend resolves name to a fixture-backed backend. The first entry wins
// when a name is declared twice.
func (c *Catalog) Backend(ctx context.Context, name string) (ports.Backend, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := c.load()
	if err != nil {
		return nil, err
	}
	for _, e := range doc.Backends {
		if e.Name == name {
			return &fixtureBackend{entry: e}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", models.ErrBackendNotFound, name)
}

type fixtureBackend struct {
	entry Entry
}

func (b *fixtureBackend) SearchByName(ctx context.Context, term string, limit int) ([]any, error) {
	return b.match(ctx, models.CapabilityCompanyData, term, limit)
}

func (b *fixtureBackend) GetDocuments(ctx context.Context, term string, limit int) ([]any, error) {
	return b.match(ctx, models.CapabilityDocuments, term, limit)
}

func (b *fixtureBackend) GetEvents(ctx context.Context, term string, limit int) ([]any, error) {
	return b.match(ctx, models.CapabilityEvents, term, limit)
}

func (b *fixtureBackend) match(ctx context.Context, c models.Capability, term string, limit int) ([]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.entry.Fail != "" {
		return nil, fmt.Errorf("%s: %s", b.entry.Name, b.entry.Fail)
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	out := []any{}
	for _, row := range b.entry.Fixtures[c] {
		if limit > 0 && len(out) >= limit {
			break
		}
		if needle == "" || contains(row, needle) {
			out = append(out, row)
		}
	}
	return out, nil
}

// contains reports whether any scalar in row mentions needle.
func contains(row any, needle string) bool {
	switch v := row.(type) {
	case map[string]any:
		for _, inner := range v {
			if contains(inner, needle) {
				return true
			}
		}
		return false
	case []any:
		for _, inner := range v {
			if contains(inner, needle) {
				return true
			}
		}
		return false
	case nil:
		return false
	}
	return strings.Contains(strings.ToLower(fmt.Sprint(row)), needle)
}
