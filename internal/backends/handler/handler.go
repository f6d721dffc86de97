package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"companyatlas/internal/backends/models"
	"companyatlas/internal/backends/service"
	"companyatlas/internal/virtual"
	dErrors "companyatlas/pkg/domain-errors"
	"companyatlas/pkg/platform/httputil"
	"companyatlas/pkg/requestcontext"
)

// Service defines the registry operations the admin surface reads.
type Service interface {
	ListBackends(ctx context.Context) *virtual.Collection[models.Snapshot]
	GetBackend(ctx context.Context, name string) (models.Snapshot, bool)
	Search(ctx context.Context, backend string, service models.Service, term string, limit int) *virtual.Collection[models.SearchResult]
}

// Handler serves the read-only backend admin pages as JSON.
type Handler struct {
	logger   *slog.Logger
	registry Service
}

// New creates a new backends Handler.
func New(registry Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, registry: registry}
}

// Register registers the backend routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/admin/backends", h.handleList)
	r.Get("/admin/backends/{name}", h.handleDetail)
	r.Get("/admin/backends/{name}/search", h.handleSearch)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := parseListBackends(r.URL.Query())
	if err != nil {
		h.logger.WarnContext(ctx, "invalid backend list request",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	all := h.registry.ListBackends(ctx)
	filters := Filters{
		Continent:   all.Values("continent"),
		CountryCode: all.Values("country_code"),
		Status:      statusChoices(),
	}

	list := all.Search(req.Query, service.SearchFields...)
	lookup := virtual.Lookup{}
	if req.Continent != "" {
		lookup["continent"] = req.Continent
	}
	if req.CountryCode != "" {
		lookup["country_code"] = req.CountryCode
	}
	if req.Status != "" {
		lookup["status"] = req.Status
	}
	if req.PackagesInstalled != nil {
		lookup["are_packages_installed"] = *req.PackagesInstalled
	}
	if req.ConfigReady != nil {
		lookup["is_config_ready"] = *req.ConfigReady
	}
	if req.ServicesImplemented != nil {
		lookup["are_services_implemented"] = *req.ServicesImplemented
	}
	if len(lookup) > 0 {
		list = list.Filter(lookup)
	}
	if len(req.Ordering) > 0 {
		list = list.OrderBy(req.Ordering...)
	}

	page := list.Page((req.Page-1)*req.PerPage, req.PerPage)
	rows := make([]BackendRow, 0, page.Count())
	for _, snap := range page.Iter() {
		rows = append(rows, toBackendRow(snap))
	}

	httputil.WriteJSON(w, http.StatusOK, ListBackendsResponse{
		Count:   list.Count(),
		Page:    req.Page,
		PerPage: req.PerPage,
		Results: rows,
		Filters: filters,
	})
}

func (h *Handler) handleDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	snap, ok := h.registry.GetBackend(ctx, name)
	if !ok {
		h.logger.InfoContext(ctx, "backend not found",
			"request_id", requestcontext.RequestID(ctx),
			"backend", name,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "backend not found"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, BackendDetailResponse{
		Snapshot:    snap,
		StatusLabel: snap.Status.Label(),
	})
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := parseSearch(chi.URLParam(r, "name"), r.URL.Query())
	if err != nil {
		h.logger.WarnContext(ctx, "invalid backend search request",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	results := h.registry.Search(ctx, req.Backend, req.Service, req.Term, req.Limit)
	if len(req.Ordering) > 0 {
		results = results.OrderBy(req.Ordering...)
	}

	httputil.WriteJSON(w, http.StatusOK, SearchResponse{
		Backend: req.Backend,
		Service: req.Service,
		Query:   req.Term,
		Count:   results.Count(),
		Results: results.All(),
	})
}

func statusChoices() []Choice {
	out := make([]Choice, 0, len(models.Statuses))
	for _, s := range models.Statuses {
		out = append(out, Choice{Value: string(s), Label: s.Label()})
	}
	return out
}
