package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"companyatlas/internal/backends/handler/mocks"
	"companyatlas/internal/backends/models"
	"companyatlas/internal/virtual"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service
type BackendsHandlerSuite struct {
	suite.Suite
	ctx context.Context
}

func TestBackendsHandlerSuite(t *testing.T) {
	suite.Run(t, new(BackendsHandlerSuite))
}

func (s *BackendsHandlerSuite) SetupSuite() {
	s.ctx = context.Background()
}

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := New(mockService, logger)
	r := chi.NewRouter()
	h.Register(r)
	return r, mockService
}

func snapshots() *virtual.Collection[models.Snapshot] {
	return virtual.New([]models.Snapshot{
		{Name: "insee", DisplayName: "INSEE", Continent: "Europe", CountryCode: "FR", Status: models.StatusMissingConfig,
			CanFetch: map[models.Capability]bool{models.CapabilityCompanyData: true}, PackagesInstalled: true},
		{Name: "companies_house", DisplayName: "Companies House", Continent: "Europe", CountryCode: "GB", Status: models.StatusAvailable,
			CanFetch: map[models.Capability]bool{models.CapabilityDocuments: true}, PackagesInstalled: true, ConfigReady: true},
		{Name: "sec", DisplayName: "SEC", Continent: "America", CountryCode: "US", Status: models.StatusMissingPackages},
	}, "continent", "country_code", "name")
}

func do(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func resultNames(body map[string]any) []string {
	var out []string
	for _, row := range body["results"].([]any) {
		out = append(out, row.(map[string]any)["name"].(string))
	}
	return out
}

// =============================================================================
// List
// =============================================================================

func (s *BackendsHandlerSuite) TestListDefaultOrdering() {
	router, svc := newTestRouter(s.T())
	svc.EXPECT().ListBackends(gomock.Any()).Return(snapshots())

	w, body := do(s.T(), router, "/admin/backends")

	s.Equal(http.StatusOK, w.Code)
	s.Equal([]string{"sec", "insee", "companies_house"}, resultNames(body))
	s.Equal(float64(3), body["count"])

	first := body["results"].([]any)[1].(map[string]any)
	s.Equal("⚠️ Missing Config", first["status_label"])
	s.Equal(true, first["are_packages_installed"])
	s.Equal(false, first["is_config_ready"])
	s.Equal(true, first["can_fetch_company_data"])
	s.Equal(false, first["can_fetch_events"])

	filters := body["filters"].(map[string]any)
	s.Equal([]any{"America", "Europe"}, filters["continent"])
	s.Len(filters["status"], len(models.Statuses))
}

func (s *BackendsHandlerSuite) TestListFiltersSearchAndOrder() {
	tests := []struct {
		name     string
		target   string
		expected []string
	}{
		{name: "continent filter", target: "/admin/backends?continent=Europe", expected: []string{"insee", "companies_house"}},
		{name: "country filter is case insensitive", target: "/admin/backends?country_code=gb", expected: []string{"companies_house"}},
		{name: "status filter", target: "/admin/backends?status=missing_packages", expected: []string{"sec"}},
		{name: "search box", target: "/admin/backends?q=house", expected: []string{"companies_house"}},
		{name: "explicit ordering", target: "/admin/backends?o=-name", expected: []string{"sec", "insee", "companies_house"}},
		{name: "pagination", target: "/admin/backends?o=name&per_page=2&page=2", expected: []string{"sec"}},
		{name: "packages installed alias", target: "/admin/backends?pkg=1", expected: []string{"insee", "companies_house"}},
		{name: "config ready alias", target: "/admin/backends?cfg=true", expected: []string{"companies_house"}},
		{name: "packages missing by full name", target: "/admin/backends?are_packages_installed=false", expected: []string{"sec"}},
		{name: "services implemented", target: "/admin/backends?svc=1", expected: nil},
		{name: "signals combine", target: "/admin/backends?pkg=1&cfg=0", expected: []string{"insee"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			router, svc := newTestRouter(s.T())
			svc.EXPECT().ListBackends(gomock.Any()).Return(snapshots())

			w, body := do(s.T(), router, tt.target)
			s.Equal(http.StatusOK, w.Code)
			s.Equal(tt.expected, resultNames(body))
		})
	}
}

func (s *BackendsHandlerSuite) TestListRejectsBadParameters() {
	for _, target := range []string{
		"/admin/backends?status=broken",
		"/admin/backends?o=description",
		"/admin/backends?page=0",
		"/admin/backends?per_page=abc",
		"/admin/backends?per_page=1001",
		"/admin/backends?per_page=1000&page=9223372036854775807",
		"/admin/backends?pkg=maybe",
	} {
		s.Run(target, func() {
			router, _ := newTestRouter(s.T())
			w, body := do(s.T(), router, target)
			s.Equal(http.StatusBadRequest, w.Code)
			s.Equal("bad_request", body["error"])
		})
	}
}

// =============================================================================
// Detail
// =============================================================================

func (s *BackendsHandlerSuite) TestDetail() {
	router, svc := newTestRouter(s.T())
	snap, _ := snapshots().Get(virtual.Lookup{"name": "insee"})
	snap.MissingConfig = []string{"API_KEY"}
	svc.EXPECT().GetBackend(gomock.Any(), "insee").Return(snap, true)
	svc.EXPECT().GetBackend(gomock.Any(), "bodacc").Return(models.Snapshot{}, false)

	w, body := do(s.T(), router, "/admin/backends/insee")
	s.Equal(http.StatusOK, w.Code)
	s.Equal("insee", body["name"])
	s.Equal([]any{"API_KEY"}, body["missing_config"])
	s.Equal("⚠️ Missing Config", body["status_label"])

	w, body = do(s.T(), router, "/admin/backends/bodacc")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("not_found", body["error"])
}

// =============================================================================
// Search
// =============================================================================

func (s *BackendsHandlerSuite) TestSearch() {
	router, svc := newTestRouter(s.T())
	results := virtual.New([]models.SearchResult{
		models.NewSearchResult("insee", models.ServiceCompanyData, 0, models.Row{"x": 1}, map[string]string{"denomination": "Zeta"}),
		models.NewSearchResult("insee", models.ServiceCompanyData, 1, models.Row{"x": 2}, map[string]string{"denomination": "Alpha"}),
	})
	svc.EXPECT().Search(gomock.Any(), "insee", models.ServiceCompanyData, "tour eiffel", 0).Return(results)

	w, body := do(s.T(), router, "/admin/backends/insee/search?q=tour+eiffel&o=denomination")

	s.Equal(http.StatusOK, w.Code)
	s.Equal(float64(2), body["count"])
	rows := body["results"].([]any)
	s.Equal("insee-data-1", rows[0].(map[string]any)["id"])
	s.Equal(map[string]any{"x": float64(2)}, rows[0].(map[string]any)["result_data"])
}

func (s *BackendsHandlerSuite) TestSearchEmptyIsNotAnError() {
	router, svc := newTestRouter(s.T())
	svc.EXPECT().Search(gomock.Any(), "insee", models.ServiceEvents, "acme", 5).
		Return(virtual.Empty[models.SearchResult]())

	w, body := do(s.T(), router, "/admin/backends/insee/search?service=events&q=acme&limit=5")

	s.Equal(http.StatusOK, w.Code)
	s.Equal(float64(0), body["count"])
	s.Equal([]any{}, body["results"])
}

func (s *BackendsHandlerSuite) TestSearchRejectsBadParameters() {
	router, _ := newTestRouter(s.T())

	w, _ := do(s.T(), router, "/admin/backends/insee/search?service=persons&q=x")
	s.Equal(http.StatusBadRequest, w.Code)

	w, _ = do(s.T(), router, "/admin/backends/insee/search?q=x&limit=-3")
	s.Equal(http.StatusBadRequest, w.Code)
}

func TestParseOrdering(t *testing.T) {
	got, err := parseOrdering(" -name, continent ,", listOrderFields)
	require.NoError(t, err)
	assert.Equal(t, []string{"-name", "continent"}, got)

	_, err = parseOrdering("secret", listOrderFields)
	assert.Error(t, err)
}
