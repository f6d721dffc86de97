package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModels() []Model {
	return []Model{
		{Name: "company_data", Label: "Company data", Path: "/admin/companies", Permissions: []Permission{PermissionView, PermissionChange}},
		{Name: "backends", Label: "Backends", Path: "/admin/backends", Virtual: true},
		{Name: "backend_search", Label: "Backend search", Path: "/admin/backends/{name}/search", Virtual: true},
	}
}

func TestNewSite(t *testing.T) {
	site, err := NewSite(testModels()...)
	require.NoError(t, err)

	var labels []string
	for _, m := range site.Models() {
		labels = append(labels, m.Label)
	}
	assert.Equal(t, []string{"Backend search", "Backends", "Company data"}, labels)

	backends, ok := site.Lookup("backends")
	require.True(t, ok)
	assert.True(t, backends.Can(PermissionView))
	assert.False(t, backends.Can(PermissionDelete))

	_, ok = site.Lookup("users")
	assert.False(t, ok)
}

func TestNewSiteRejectsInvalidTables(t *testing.T) {
	_, err := NewSite(Model{Name: "a"}, Model{Name: "a"})
	assert.Error(t, err)

	_, err = NewSite(Model{Name: " "})
	assert.Error(t, err)

	_, err = NewSite(Model{Name: "backends", Virtual: true, Permissions: []Permission{PermissionView, PermissionAdd}})
	assert.Error(t, err)
}

func TestSiteModelsAreCopies(t *testing.T) {
	site, err := NewSite(testModels()...)
	require.NoError(t, err)
	models := site.Models()
	models[0].Label = "changed"
	assert.NotEqual(t, "changed", site.Models()[0].Label)
}

func TestIndexHandler(t *testing.T) {
	site, err := NewSite(testModels()...)
	require.NoError(t, err)
	r := chi.NewRouter()
	site.Register(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp IndexResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, "backend_search", resp.Models[0].Name)
	assert.True(t, resp.Models[0].Virtual)
	assert.Equal(t, []string{"view"}, resp.Models[0].Permissions)
	assert.Equal(t, []string{"view", "change"}, resp.Models[2].Permissions)
}
