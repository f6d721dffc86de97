package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"companyatlas/internal/backends/models"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	return Open(filepath.Join("testdata", "catalog.yaml"))
}

func TestDiscover(t *testing.T) {
	decls, err := openTestCatalog(t).Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, decls, 3)

	insee := decls[0]
	assert.Equal(t, "insee", insee.Name)
	assert.Equal(t, "fr", insee.Family)
	assert.Equal(t, "INSEE_", insee.ConfigPrefix)
	assert.Equal(t, []string{"pandas"}, insee.RequiredPackages)
	assert.True(t, insee.Capabilities[models.CapabilityCompanyData])
	assert.True(t, insee.CostOf(models.CapabilityCompanyData).IsFree())

	ch := decls[1]
	assert.Equal(t, models.PricedAt(0.5), ch.CostOf(models.CapabilityDocuments))
	assert.True(t, ch.CostOf(models.CapabilityEvents).IsFree())
}

func TestBackendSearch(t *testing.T) {
	ctx := context.Background()
	c := openTestCatalog(t)

	b, err := c.Backend(ctx, "insee")
	require.NoError(t, err)

	rows, err := b.SearchByName(ctx, "tour eiffel", 20)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	row, ok := rows[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "552081317", row["siren"])

	rows, err = b.SearchByName(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = b.GetEvents(ctx, "x", 20)
	require.NoError(t, err)
	assert.Empty(t, rows)

	ch, err := c.Backend(ctx, "companies_house")
	require.NoError(t, err)
	docs, err := ch.GetDocuments(ctx, "annual", 20)
	require.NoError(t, err)
	assert.Equal(t, []any{"annual-return-2023.pdf"}, docs)
}

func TestBackendFailures(t *testing.T) {
	ctx := context.Background()
	c := openTestCatalog(t)

	_, err := c.Backend(ctx, "nope")
	assert.ErrorIs(t, err, models.ErrBackendNotFound)

	b, err := c.Backend(ctx, "broken")
	require.NoError(t, err)
	_, err = b.SearchByName(ctx, "x", 20)
	assert.ErrorContains(t, err, "upstream timeout")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = c.Discover(cancelled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("backends: [name: x"))
	assert.Error(t, err)

	_, err = Parse([]byte("backends:\n  - name: a\n    costs:\n      events: cheap\n"))
	assert.Error(t, err)

	_, err = Open(filepath.Join(t.TempDir(), "missing.yaml")).Discover(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDuplicateNamesAreLeftToTheRegistry(t *testing.T) {
	ctx := context.Background()
	c, err := Parse([]byte("backends:\n  - name: a\n    fail: first\n  - name: b\n  - name: a\n"))
	require.NoError(t, err)

	decls, err := c.Discover(ctx)
	require.NoError(t, err)
	require.Len(t, decls, 3)
	assert.Equal(t, "a", decls[2].Name)

	b, err := c.Backend(ctx, "a")
	require.NoError(t, err)
	_, err = b.SearchByName(ctx, "x", 20)
	assert.ErrorContains(t, err, "first")
}

func TestParseNullCostIsFree(t *testing.T) {
	c, err := Parse([]byte("backends:\n  - name: a\n    costs:\n      events:\n"))
	require.NoError(t, err)
	decls, err := c.Discover(context.Background())
	require.NoError(t, err)
	assert.True(t, decls[0].CostOf(models.CapabilityEvents).IsFree())
}
