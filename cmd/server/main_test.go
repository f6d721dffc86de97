package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"companyatlas/internal/admin"
	"companyatlas/internal/app"
	backendshandler "companyatlas/internal/backends/handler"
	companyhandler "companyatlas/internal/companydata/handler"
	companymodels "companyatlas/internal/companydata/models"
	"companyatlas/internal/platform/config"
	"companyatlas/pkg/testutil"
)

const testToken = "s3cret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	settings := &config.Settings{
		CatalogPath: filepath.Join("..", "..", "internal", "backends", "catalog", "testdata", "catalog.yaml"),
		Packages:    []string{"pandas"},
		Config:      map[string]any{"insee_api_key": "k"},
		Database:    config.Database{Driver: config.DriverMemory},
		SearchLimit: 10,
	}
	a, err := app.New(context.Background(), settings, log, reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	r, err := newRouter(config.Server{AdminToken: testToken}, a, log, reg)
	require.NoError(t, err)
	return r
}

func TestRouter(t *testing.T) {
	r := newTestRouter(t)

	testutil.Given(t, "a request without the admin token", func(t *testing.T) {
		rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/admin/backends"))
		testutil.AssertStatusAndError(t, rr, http.StatusUnauthorized, "unauthorized")
	})

	testutil.Given(t, "an unauthenticated health check", func(t *testing.T) {
		rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/healthz"))
		testutil.AssertStatus(t, rr, http.StatusNoContent)
		assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
	})

	testutil.Given(t, "an admin", func(t *testing.T) {
		testutil.When(t, "the index is listed", func(t *testing.T) {
			req := testutil.WithAdminToken(testutil.NewRequest(t, http.MethodGet, "/admin/"), testToken)
			rr := testutil.DoRequest(r, req)
			testutil.AssertStatus(t, rr, http.StatusOK)
			index := testutil.UnmarshalResponse[admin.IndexResponse](t, rr)
			assert.Equal(t, len(adminModels()), index.Total)
		})

		testutil.When(t, "backends are listed", func(t *testing.T) {
			req := testutil.WithAdminToken(testutil.NewRequest(t, http.MethodGet, "/admin/backends"), testToken)
			rr := testutil.DoRequest(r, req)
			testutil.AssertStatus(t, rr, http.StatusOK)
			list := testutil.UnmarshalResponse[backendshandler.ListBackendsResponse](t, rr)
			assert.Equal(t, 3, list.Count)
		})

		testutil.When(t, "a fact is written and read back", func(t *testing.T) {
			body := companymodels.SetDataRequest{Country: "FR", DataType: "denomination", Value: "Tour Eiffel"}
			req := testutil.WithAdminToken(testutil.NewJSONRequest(t, http.MethodPut, "/admin/companies/data", body), testToken)
			rr := testutil.DoRequest(r, req)
			testutil.AssertStatus(t, rr, http.StatusOK)
			set := testutil.UnmarshalResponse[companyhandler.SetDataResponse](t, rr)
			require.NotNil(t, set.Company)

			testutil.Then(t, "the company lists the fact", func(t *testing.T) {
				path := "/admin/companies/" + set.Company.ID.String() + "/data"
				rr := testutil.DoRequest(r, testutil.WithAdminToken(testutil.NewRequest(t, http.MethodGet, path), testToken))
				testutil.AssertStatus(t, rr, http.StatusOK)
				list := testutil.UnmarshalResponse[companyhandler.CompanyDataResponse](t, rr)
				require.Len(t, list.Data, 1)
				assert.Equal(t, "Tour Eiffel", list.Data[0].Value)
			})
		})

		testutil.When(t, "an event is attached by company name", func(t *testing.T) {
			body := companymodels.AddEventRequest{
				CompanyRef:   companymodels.CompanyRef{CompanyName: "Tour Eiffel"},
				RecordFields: companymodels.RecordFields{Country: "FR", Source: "bodacc", Title: "Capital increase", Date: "2024-02-01"},
				EventType:    "capital_change",
			}
			req := testutil.WithAdminToken(testutil.NewJSONRequest(t, http.MethodPost, "/admin/companies/events", body), testToken)
			rr := testutil.DoRequest(r, req)
			testutil.AssertStatus(t, rr, http.StatusCreated)
			added := testutil.UnmarshalResponse[companyhandler.AddEventResponse](t, rr)
			require.NotNil(t, added.Company)

			testutil.Then(t, "the company lists the event", func(t *testing.T) {
				path := "/admin/companies/" + added.Company.ID.String() + "/events?event_type=capital_change"
				rr := testutil.DoRequest(r, testutil.WithAdminToken(testutil.NewRequest(t, http.MethodGet, path), testToken))
				testutil.AssertStatus(t, rr, http.StatusOK)
				list := testutil.UnmarshalResponse[companyhandler.CompanyEventsResponse](t, rr)
				require.Equal(t, 1, list.Count)
				assert.Equal(t, "Capital increase", list.Events[0].Title)
			})
		})

		testutil.When(t, "a company id is malformed", func(t *testing.T) {
			req := testutil.WithAdminToken(testutil.NewRequest(t, http.MethodGet, "/admin/companies/nope/data"), testToken)
			rr := testutil.DoRequest(r, req)
			testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
		})
	})

	testutil.Given(t, "a metrics scrape", func(t *testing.T) {
		rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/metrics"))
		testutil.AssertStatus(t, rr, http.StatusOK)
		assert.Contains(t, rr.Body.String(), "companyatlas_")
	})
}
