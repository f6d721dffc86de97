// Package virtual provides an in-memory, read-only collection that answers the
// same query vocabulary as a persisted store (filter, exclude, order, get) over
// records that never touch a database.
//
// Every query returns a new *Collection; the receiver is never modified. The
// backing slice is copied on construction and treated as immutable afterwards,
// so a collection may be shared between goroutines without locking.
package virtual

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Record is anything a Collection can hold. Field must not panic for unknown
// names; it reports ok=false instead.
type Record interface {
	Key() string
	Field(name string) (value any, ok bool)
}

// Lookup is an equality predicate over named fields. All entries must match.
type Lookup map[string]any

var (
	// ErrNotFound is returned by Get when no record matches.
	ErrNotFound = errors.New("object not found")
	// ErrMultipleFound is matched (errors.Is) by *MultipleFoundError.
	ErrMultipleFound = errors.New("multiple objects found")
)

// MultipleFoundError reports a Get that matched more than one record.
type MultipleFoundError struct {
	Lookup Lookup
	Count  int
}

func (e *MultipleFoundError) Error() string {
	return fmt.Sprintf("get returned more than one object -- it returned %d (%s)", e.Count, e.Lookup)
}

func (e *MultipleFoundError) Is(target error) bool {
	return target == ErrMultipleFound
}

// Collection is an ordered, lazily sorted sequence of records.
type Collection[T Record] struct {
	items    []T
	ordering []orderField

	once   sync.Once
	sorted []T
}

// New builds a collection over a copy of items. Ordering fields use the
// OrderBy syntax.
func New[T Record](items []T, ordering ...string) *Collection[T] {
	return &Collection[T]{
		items:    slices.Clone(items),
		ordering: parseOrdering(ordering),
	}
}

// Empty returns a collection with no records.
func Empty[T Record]() *Collection[T] {
	return &Collection[T]{}
}

func (c *Collection[T]) derive(items []T, ordering []orderField) *Collection[T] {
	return &Collection[T]{items: items, ordering: ordering}
}

// Filter keeps records where every lookup field equals the given value.
func (c *Collection[T]) Filter(lookup Lookup) *Collection[T] {
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if matches(item, lookup) {
			out = append(out, item)
		}
	}
	return c.derive(out, c.ordering)
}

// Exclude drops records that match every lookup field at once. An empty
// lookup excludes nothing.
func (c *Collection[T]) Exclude(lookup Lookup) *Collection[T] {
	if len(lookup) == 0 {
		return c.derive(c.items, c.ordering)
	}
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if !matches(item, lookup) {
			out = append(out, item)
		}
	}
	return c.derive(out, c.ordering)
}

// OrderBy replaces the ordering. A leading "-" sorts that field descending.
// Calling it without fields clears the ordering.
func (c *Collection[T]) OrderBy(fields ...string) *Collection[T] {
	return c.derive(c.items, parseOrdering(fields))
}

// Ordering returns the active ordering in OrderBy syntax.
func (c *Collection[T]) Ordering() []string {
	out := make([]string, 0, len(c.ordering))
	for _, f := range c.ordering {
		if f.desc {
			out = append(out, "-"+f.name)
		} else {
			out = append(out, f.name)
		}
	}
	return out
}

// Exists reports whether the collection holds any record.
func (c *Collection[T]) Exists() bool {
	return len(c.items) > 0
}

// Count returns the number of records. It does not trigger sorting.
func (c *Collection[T]) Count() int {
	return len(c.items)
}

// All materializes the collection in its ordering. The returned slice is a
// non-nil copy the caller may modify.
func (c *Collection[T]) All() []T {
	items := c.materialize()
	return append(make([]T, 0, len(items)), items...)
}

// Iter yields records in order.
func (c *Collection[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range c.materialize() {
			if !yield(i, item) {
				return
			}
		}
	}
}

// First returns the first record in order, or false when empty.
func (c *Collection[T]) First() (T, bool) {
	items := c.materialize()
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[0], true
}

// Get returns the single record matching lookup. Zero matches yield
// ErrNotFound; several yield a *MultipleFoundError.
func (c *Collection[T]) Get(lookup Lookup) (T, error) {
	var zero T
	matched := c.Filter(lookup)
	switch matched.Count() {
	case 0:
		return zero, fmt.Errorf("%w: %s", ErrNotFound, lookup)
	case 1:
		return matched.items[0], nil
	default:
		return zero, &MultipleFoundError{Lookup: lookup, Count: matched.Count()}
	}
}

// Search keeps records where every whitespace-separated word of term occurs,
// case-insensitively, in at least one of fields. An empty term keeps all.
func (c *Collection[T]) Search(term string, fields ...string) *Collection[T] {
	words := strings.Fields(term)
	if len(words) == 0 {
		return c.derive(c.items, c.ordering)
	}
	caser := cases.Fold()
	for i, w := range words {
		words[i] = caser.String(w)
	}

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		haystacks := make([]string, 0, len(fields))
		for _, f := range fields {
			if v, ok := item.Field(f); ok && v != nil {
				haystacks = append(haystacks, caser.String(stringify(v)))
			}
		}
		if containsAllWords(haystacks, words) {
			out = append(out, item)
		}
	}
	return c.derive(out, c.ordering)
}

func containsAllWords(haystacks, words []string) bool {
	for _, w := range words {
		found := false
		for _, h := range haystacks {
			if strings.Contains(h, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Values returns the distinct non-empty string forms of field, sorted
// case-insensitively. Admin list filters build their choices from it.
func (c *Collection[T]) Values(field string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, item := range c.items {
		v, ok := item.Field(field)
		if !ok || v == nil {
			continue
		}
		s := stringify(v)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	caser := cases.Fold()
	sort.SliceStable(out, func(i, j int) bool {
		return caser.String(out[i]) < caser.String(out[j])
	})
	return out
}

// Page returns up to limit ordered records starting at offset. The result
// keeps the materialized order and carries no pending ordering.
func (c *Collection[T]) Page(offset, limit int) *Collection[T] {
	items := c.materialize()
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) || limit == 0 {
		return c.derive(nil, nil)
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return c.derive(slices.Clone(items[offset:end]), nil)
}

func (c *Collection[T]) materialize() []T {
	c.once.Do(func() {
		if len(c.ordering) == 0 {
			c.sorted = c.items
			return
		}
		c.sorted = sortRecords(c.items, c.ordering)
	})
	return c.sorted
}

func matches(item Record, lookup Lookup) bool {
	for field, want := range lookup {
		got, ok := item.Field(field)
		if !valueEqual(got, ok, want) {
			return false
		}
	}
	return true
}
