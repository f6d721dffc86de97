package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"companyatlas/internal/companydata/models"
	"companyatlas/internal/virtual"
	dErrors "companyatlas/pkg/domain-errors"
	"companyatlas/pkg/platform/httputil"
	"companyatlas/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the company data operations exposed over HTTP.
type Service interface {
	SetData(ctx context.Context, req models.SetDataRequest) (*models.Company, *models.Data, error)
	BulkSetData(ctx context.Context, rows []models.BulkRow, companyName string) (*models.Company, error)
	FindCompanyByData(ctx context.Context, country, dataType, value string) (*models.Company, error)
	ListData(ctx context.Context, companyID uuid.UUID) (*models.Company, []*models.Data, error)
	AddDocument(ctx context.Context, req models.AddDocumentRequest) (*models.Company, *models.Document, error)
	ListDocuments(ctx context.Context, companyID uuid.UUID) (*models.Company, []*models.Document, error)
	AddEvent(ctx context.Context, req models.AddEventRequest) (*models.Company, *models.Event, error)
	ListEvents(ctx context.Context, companyID uuid.UUID) (*models.Company, []*models.Event, error)
}

// Handler serves the company data admin endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

func New(service Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service}
}

// Register registers the company data routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/admin/companies/lookup", h.handleLookup)
	r.Get("/admin/companies/{id}/data", h.handleList)
	r.Put("/admin/companies/data", h.handleSet)
	r.Post("/admin/companies/data/bulk", h.handleBulk)
	r.Get("/admin/companies/{id}/documents", h.handleListDocuments)
	r.Post("/admin/companies/documents", h.handleAddDocument)
	r.Get("/admin/companies/{id}/events", h.handleListEvents)
	r.Post("/admin/companies/events", h.handleAddEvent)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	companyID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid company id"))
		return
	}

	company, data, err := h.service.ListData(ctx, companyID)
	if err != nil {
		h.fail(ctx, w, "list company data failed", err)
		return
	}

	views := make([]models.DataView, 0, len(data))
	for _, d := range data {
		views = append(views, models.NewDataView(d))
	}
	httputil.WriteJSON(w, http.StatusOK, CompanyDataResponse{Company: company, Data: views})
}

func (h *Handler) handleSet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.SetDataRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.fail(ctx, w, "invalid set data request", err)
		return
	}

	company, data, err := h.service.SetData(ctx, req)
	if err != nil {
		h.fail(ctx, w, "set company data failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, SetDataResponse{Company: company, Data: models.NewDataView(data)})
}

func (h *Handler) handleBulk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req BulkRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.fail(ctx, w, "invalid bulk request", err)
		return
	}

	company, err := h.service.BulkSetData(ctx, req.Rows, strings.TrimSpace(req.CompanyName))
	if err != nil {
		h.fail(ctx, w, "bulk set company data failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, company)
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	country, dataType, value := q.Get("country"), q.Get("data_type"), q.Get("value")
	if country == "" || dataType == "" || value == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "country, data_type and value are required"))
		return
	}

	company, err := h.service.FindCompanyByData(ctx, country, dataType, value)
	if err != nil {
		h.fail(ctx, w, "company lookup failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, company)
}

func (h *Handler) handleAddDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.AddDocumentRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.fail(ctx, w, "invalid document request", err)
		return
	}

	company, document, err := h.service.AddDocument(ctx, req)
	if err != nil {
		h.fail(ctx, w, "add company document failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, AddDocumentResponse{Company: company, Document: document})
}

// handleListDocuments lists a company's documents, optionally narrowed by
// document_type, source and a free-text q over title and content.
func (h *Handler) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	companyID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid company id"))
		return
	}

	company, documents, err := h.service.ListDocuments(ctx, companyID)
	if err != nil {
		h.fail(ctx, w, "list company documents failed", err)
		return
	}

	q := r.URL.Query()
	matched := virtual.New(documents).
		Filter(recordLookup(q.Get("document_type"), "document_type", q.Get("source"))).
		Search(q.Get("q"), "title", "content")
	httputil.WriteJSON(w, http.StatusOK, CompanyDocumentsResponse{
		Company:   company,
		Count:     matched.Count(),
		Documents: matched.All(),
	})
}

func (h *Handler) handleAddEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req models.AddEventRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.fail(ctx, w, "invalid event request", err)
		return
	}

	company, event, err := h.service.AddEvent(ctx, req)
	if err != nil {
		h.fail(ctx, w, "add company event failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, AddEventResponse{Company: company, Event: event})
}

// handleListEvents lists a company's events, optionally narrowed by
// event_type, source and a free-text q over title and description.
func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	companyID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid company id"))
		return
	}

	company, events, err := h.service.ListEvents(ctx, companyID)
	if err != nil {
		h.fail(ctx, w, "list company events failed", err)
		return
	}

	q := r.URL.Query()
	matched := virtual.New(events).
		Filter(recordLookup(q.Get("event_type"), "event_type", q.Get("source"))).
		Search(q.Get("q"), "title", "description")
	httputil.WriteJSON(w, http.StatusOK, CompanyEventsResponse{
		Company: company,
		Count:   matched.Count(),
		Events:  matched.All(),
	})
}

func recordLookup(recordType, typeField, source string) virtual.Lookup {
	lookup := virtual.Lookup{}
	if recordType = strings.TrimSpace(recordType); recordType != "" {
		lookup[typeField] = recordType
	}
	if source = strings.TrimSpace(source); source != "" {
		lookup["source"] = source
	}
	return lookup
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	level := slog.LevelWarn
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		level = slog.LevelError
	}
	h.logger.Log(ctx, level, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err.Error(),
	)
	httputil.WriteError(w, err)
}
