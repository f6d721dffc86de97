package virtual

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type status string

type row struct {
	name      string
	continent string
	country   string
	status    status
	priority  int
	enabled   bool
	reads     *atomic.Int64
}

func (r row) Key() string { return r.name }

func (r row) Field(name string) (any, bool) {
	if r.reads != nil {
		r.reads.Add(1)
	}
	switch name {
	case "name":
		return r.name, true
	case "continent":
		return r.continent, true
	case "country_code":
		return r.country, true
	case "status":
		return r.status, true
	case "priority":
		return r.priority, true
	case "enabled":
		return r.enabled, true
	}
	return nil, false
}

func fixture() []row {
	return []row{
		{name: "insee", continent: "europe", country: "FR", status: "missing_config", priority: 2, enabled: true},
		{name: "Companies-House", continent: "europe", country: "GB", status: "available", priority: 1},
		{name: "sec", continent: "america", country: "US", status: "available", priority: 3, enabled: true},
		{name: "abn", continent: "oceania", country: "AU", status: "missing_packages", priority: 1},
		{name: "bodacc", continent: "Europe", country: "FR", status: "available", priority: 5},
	}
}

func names(items []row) []string {
	out := make([]string, len(items))
	for i, r := range items {
		out[i] = r.name
	}
	return out
}

func TestFilterExclude(t *testing.T) {
	c := New(fixture())

	t.Run("filter matches every field", func(t *testing.T) {
		got := c.Filter(Lookup{"continent": "europe", "country_code": "FR"})
		assert.Equal(t, []string{"insee"}, names(got.All()))
	})

	t.Run("named string types compare by value", func(t *testing.T) {
		got := c.Filter(Lookup{"status": "available"})
		assert.Equal(t, 3, got.Count())
	})

	t.Run("numbers compare across Go types", func(t *testing.T) {
		got := c.Filter(Lookup{"priority": int64(1)})
		assert.ElementsMatch(t, []string{"Companies-House", "abn"}, names(got.All()))
	})

	t.Run("unknown field never matches a value", func(t *testing.T) {
		assert.False(t, c.Filter(Lookup{"nope": "x"}).Exists())
		assert.Equal(t, c.Count(), c.Filter(Lookup{"nope": nil}).Count())
	})

	t.Run("exclude drops only records matching all fields", func(t *testing.T) {
		got := c.Exclude(Lookup{"continent": "europe", "status": "available"})
		assert.ElementsMatch(t, []string{"insee", "sec", "abn", "bodacc"}, names(got.All()))
	})

	t.Run("empty lookups keep everything", func(t *testing.T) {
		assert.Equal(t, names(c.All()), names(c.Exclude(Lookup{}).All()))
		assert.Equal(t, names(c.All()), names(c.Exclude(nil).All()))
		assert.Equal(t, c.Count(), c.Filter(Lookup{}).Count())
	})

	t.Run("filter and exclude partition the collection", func(t *testing.T) {
		for _, lookup := range []Lookup{
			{"continent": "europe"},
			{"status": "available", "enabled": true},
			{"country_code": "ZZ"},
		} {
			in := c.Filter(lookup).All()
			out := c.Exclude(lookup).All()
			assert.Equal(t, c.Count(), len(in)+len(out))
			assert.ElementsMatch(t, names(c.All()), append(names(in), names(out)...))
			for _, r := range in {
				assert.NotContains(t, names(out), r.name)
			}
		}
	})

	t.Run("receiver is unchanged", func(t *testing.T) {
		_ = c.Filter(Lookup{"continent": "europe"}).OrderBy("-name")
		assert.Equal(t, 5, c.Count())
		assert.Equal(t, "insee", names(c.All())[0])
	})
}

func TestOrderBy(t *testing.T) {
	c := New(fixture())

	t.Run("groups ascending then descending case-insensitively", func(t *testing.T) {
		got := c.OrderBy("continent", "-name").All()
		assert.Equal(t, []string{"sec", "insee", "Companies-House", "bodacc", "abn"}, names(got))
	})

	t.Run("ordering twice is idempotent", func(t *testing.T) {
		once := c.OrderBy("continent", "-name").All()
		twice := c.OrderBy("continent", "-name").OrderBy("continent", "-name").All()
		assert.Equal(t, names(once), names(twice))
	})

	t.Run("numbers sort numerically", func(t *testing.T) {
		got := c.OrderBy("-priority", "name").All()
		assert.Equal(t, []string{"bodacc", "sec", "insee", "abn", "Companies-House"}, names(got))
	})

	t.Run("missing field sorts first ascending", func(t *testing.T) {
		items := append(fixture(), row{name: "zzz"})
		got := New(items).OrderBy("missing", "name").All()
		assert.Equal(t, "abn", got[0].name)
	})

	t.Run("ordering survives filtering", func(t *testing.T) {
		got := c.OrderBy("name").Filter(Lookup{"country_code": "FR"}).All()
		assert.Equal(t, []string{"bodacc", "insee"}, names(got))
		assert.Equal(t, []string{"name"}, c.OrderBy("name").Ordering())
	})

	t.Run("sorting happens once per collection", func(t *testing.T) {
		reads := &atomic.Int64{}
		items := fixture()
		for i := range items {
			items[i].reads = reads
		}
		ordered := New(items).OrderBy("name")
		assert.Equal(t, 5, ordered.Count())
		assert.Zero(t, reads.Load())

		_ = ordered.All()
		afterFirst := reads.Load()
		_, _ = ordered.First()
		for range ordered.Iter() {
		}
		assert.Equal(t, afterFirst, reads.Load())
	})
}

func TestExistsCountFirst(t *testing.T) {
	empty := Empty[row]()
	assert.False(t, empty.Exists())
	assert.Zero(t, empty.Count())
	_, ok := empty.First()
	assert.False(t, ok)

	c := New(fixture()).OrderBy("name")
	assert.True(t, c.Exists())
	first, ok := c.First()
	require.True(t, ok)
	assert.Equal(t, "abn", first.name)
}

func TestGet(t *testing.T) {
	c := New(fixture())

	t.Run("single match", func(t *testing.T) {
		got, err := c.Get(Lookup{"name": "sec"})
		require.NoError(t, err)
		assert.Equal(t, "US", got.country)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := c.Get(Lookup{"name": "x"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("two matches", func(t *testing.T) {
		dup := New(append(fixture(), row{name: "sec", country: "CA"}))
		_, err := dup.Get(Lookup{"name": "sec"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMultipleFound))
		var mf *MultipleFoundError
		require.True(t, errors.As(err, &mf))
		assert.Equal(t, 2, mf.Count)
	})
}

func TestSearch(t *testing.T) {
	c := New(fixture()).OrderBy("name")
	fields := []string{"name", "country_code", "continent"}

	t.Run("empty term keeps everything", func(t *testing.T) {
		got := c.Search("", fields...)
		assert.Equal(t, names(c.All()), names(got.All()))
		assert.Equal(t, names(c.All()), names(c.Search("   ", fields...).All()))
	})

	t.Run("case-insensitive substring", func(t *testing.T) {
		got := c.Search("HOUSE", fields...)
		assert.Equal(t, []string{"Companies-House"}, names(got.All()))
	})

	t.Run("every word must match some field", func(t *testing.T) {
		got := c.Search("europe fr", fields...)
		assert.Equal(t, []string{"bodacc", "insee"}, names(got.All()))
	})

	t.Run("fields outside the search set are ignored", func(t *testing.T) {
		assert.False(t, c.Search("missing", fields...).Exists())
	})
}

func TestValuesAndPage(t *testing.T) {
	c := New(fixture())

	assert.Equal(t, []string{"america", "europe", "Europe", "oceania"}, c.Values("continent"))
	assert.Equal(t, []string{"AU", "FR", "GB", "US"}, c.Values("country_code"))
	assert.Empty(t, c.Values("nope"))

	ordered := c.OrderBy("name")
	assert.Equal(t, []string{"bodacc", "Companies-House"}, names(ordered.Page(1, 2).All()))
	assert.Equal(t, []string{"sec"}, names(ordered.Page(4, 10).All()))
	assert.False(t, ordered.Page(10, 2).Exists())
	assert.Equal(t, 5, ordered.Page(0, -1).Count())
}
