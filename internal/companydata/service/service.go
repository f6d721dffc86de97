package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"companyatlas/internal/companydata/metrics"
	"companyatlas/internal/companydata/models"
	dErrors "companyatlas/pkg/domain-errors"
	"companyatlas/pkg/platform/sentinel"
	"companyatlas/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store

// Store persists companies, their typed facts and their attached records.
type Store interface {
	FindCompanyByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	FindCompanyByName(ctx context.Context, name string) (*models.Company, error)
	CreateCompany(ctx context.Context, c *models.Company) error
	UpdateCompany(ctx context.Context, c *models.Company) error
	UpsertData(ctx context.Context, d *models.Data) error
	ListData(ctx context.Context, companyID uuid.UUID) ([]*models.Data, error)
	FindDataByValue(ctx context.Context, country, dataType, raw string) ([]*models.Data, error)
	CreateDocument(ctx context.Context, d *models.Document) error
	ListDocuments(ctx context.Context, companyID uuid.UUID) ([]*models.Document, error)
	CreateEvent(ctx context.Context, e *models.Event) error
	ListEvents(ctx context.Context, companyID uuid.UUID) ([]*models.Event, error)
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service writes and reads company facts.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// SetData creates or updates one fact, creating its company when needed.
// Without an explicit company the company is looked up by name: the given
// name, else the value itself for a denomination, else UnknownCompanyName.
func (s *Service) SetData(ctx context.Context, req models.SetDataRequest) (*models.Company, *models.Data, error) {
	defer s.metrics.ObserveWrite(time.Now())
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	var (
		company *models.Company
		data    *models.Data
	)
	err := s.store.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.resolveCompany(txCtx, targetFor(req))
		if err != nil {
			return err
		}
		d, err := s.upsert(txCtx, c, req)
		if err != nil {
			return err
		}
		company, data = c, d
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.InfoContext(ctx, "company data set",
		"company_id", company.ID,
		"country", data.CountryCode,
		"data_type", data.DataType,
		"value_type", data.Value.Kind(),
		"request_id", requestcontext.RequestID(ctx),
	)
	return company, data, nil
}

// BulkSetData writes rows atomically onto a single company. The first
// denomination row names the company when companyName is empty.
func (s *Service) BulkSetData(ctx context.Context, rows []models.BulkRow, companyName string) (*models.Company, error) {
	defer s.metrics.ObserveWrite(time.Now())
	if len(rows) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "at least one row is required")
	}

	var company *models.Company
	err := s.store.RunInTx(ctx, func(txCtx context.Context) error {
		for i, row := range rows {
			req := models.SetDataRequest{
				Country:     row.Country,
				DataType:    row.DataType,
				Value:       row.Value,
				CompanyName: companyName,
			}
			req.Normalize()
			if err := req.Validate(); err != nil {
				return dErrors.Wrap(err, dErrors.CodeValidation, "invalid row")
			}
			if company == nil && req.DataType == models.DataTypeDenomination && req.CompanyName == "" {
				companyName = displayName(row.Value)
				req.CompanyName = companyName
			}
			if company != nil {
				id := company.ID
				req.CompanyID = &id
			}
			c, err := s.resolveCompany(txCtx, targetFor(req))
			if err != nil {
				return err
			}
			if _, err := s.upsert(txCtx, c, req); err != nil {
				return err
			}
			company = c
			s.logger.DebugContext(txCtx, "bulk row written", "index", i, "data_type", req.DataType)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "company data bulk set",
		"company_id", company.ID,
		"rows", len(rows),
		"request_id", requestcontext.RequestID(ctx),
	)
	return company, nil
}

// FindCompanyByData returns the company owning a fact with exactly this
// stored text. When several companies match the oldest fact wins.
func (s *Service) FindCompanyByData(ctx context.Context, country, dataType, value string) (*models.Company, error) {
	matches, err := s.store.FindDataByValue(ctx, models.NormalizeCountry(country), dataType, value)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search company data")
	}
	if len(matches) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, "no company matches this data")
	}
	if len(matches) > 1 {
		s.logger.WarnContext(ctx, "several companies share a data value",
			"country", country,
			"data_type", dataType,
			"matches", len(matches),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	return s.GetCompany(ctx, matches[0].CompanyID)
}

func (s *Service) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	c, err := s.store.FindCompanyByID(ctx, id)
	if err != nil {
		return nil, wrapStoreErr(err, "company not found", "failed to load company")
	}
	return c, nil
}

// ListData returns a company's facts ordered by data type, newest first within a type.
func (s *Service) ListData(ctx context.Context, companyID uuid.UUID) (*models.Company, []*models.Data, error) {
	company, err := s.GetCompany(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.store.ListData(ctx, companyID)
	if err != nil {
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list company data")
	}
	return company, data, nil
}

// AddDocument attaches a document to a company, creating the company by
// name when no ID is given.
func (s *Service) AddDocument(ctx context.Context, req models.AddDocumentRequest) (*models.Company, *models.Document, error) {
	defer s.metrics.ObserveWrite(time.Now())
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	var (
		company  *models.Company
		document *models.Document
	)
	err := s.store.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.resolveCompany(txCtx, recordTarget(req.CompanyRef, req.Country))
		if err != nil {
			return err
		}
		now := requestcontext.Now(txCtx)
		d := &models.Document{
			ID:           uuid.New(),
			CompanyID:    c.ID,
			Source:       req.Source,
			CountryCode:  req.Country,
			DocumentType: req.DocumentType,
			Title:        req.Title,
			Date:         req.Date,
			URL:          req.URL,
			Content:      req.Content,
			Metadata:     req.Metadata,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.store.CreateDocument(txCtx, d); err != nil {
			return wrapStoreErr(err, "company not found", "failed to save company document")
		}
		company, document = c, d
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.metrics.IncrementRecordCreated(models.RecordDocument)
	s.logger.InfoContext(ctx, "company document added",
		"company_id", company.ID,
		"document_type", document.DocumentType,
		"source", document.Source,
		"request_id", requestcontext.RequestID(ctx),
	)
	return company, document, nil
}

// ListDocuments returns a company's documents, most recent date first.
func (s *Service) ListDocuments(ctx context.Context, companyID uuid.UUID) (*models.Company, []*models.Document, error) {
	company, err := s.GetCompany(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}
	documents, err := s.store.ListDocuments(ctx, companyID)
	if err != nil {
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list company documents")
	}
	return company, documents, nil
}

// AddEvent attaches an event to a company, creating the company by name
// when no ID is given.
func (s *Service) AddEvent(ctx context.Context, req models.AddEventRequest) (*models.Company, *models.Event, error) {
	defer s.metrics.ObserveWrite(time.Now())
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	var (
		company *models.Company
		event   *models.Event
	)
	err := s.store.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.resolveCompany(txCtx, recordTarget(req.CompanyRef, req.Country))
		if err != nil {
			return err
		}
		now := requestcontext.Now(txCtx)
		e := &models.Event{
			ID:          uuid.New(),
			CompanyID:   c.ID,
			Source:      req.Source,
			CountryCode: req.Country,
			EventType:   req.EventType,
			Title:       req.Title,
			Date:        req.Date,
			Description: req.Description,
			Metadata:    req.Metadata,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.store.CreateEvent(txCtx, e); err != nil {
			return wrapStoreErr(err, "company not found", "failed to save company event")
		}
		company, event = c, e
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.metrics.IncrementRecordCreated(models.RecordEvent)
	s.logger.InfoContext(ctx, "company event added",
		"company_id", company.ID,
		"event_type", event.EventType,
		"source", event.Source,
		"request_id", requestcontext.RequestID(ctx),
	)
	return company, event, nil
}

// ListEvents returns a company's events, most recent date first.
func (s *Service) ListEvents(ctx context.Context, companyID uuid.UUID) (*models.Company, []*models.Event, error) {
	company, err := s.GetCompany(ctx, companyID)
	if err != nil {
		return nil, nil, err
	}
	events, err := s.store.ListEvents(ctx, companyID)
	if err != nil {
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list company events")
	}
	return company, events, nil
}

// companyTarget names the company a write lands on.
type companyTarget struct {
	id      *uuid.UUID
	name    string
	country string
}

// targetFor derives the company of a fact: the explicit company, else the
// given name, else the value itself for a denomination, else UnknownCompanyName.
func targetFor(req models.SetDataRequest) companyTarget {
	name := req.CompanyName
	if req.CompanyID == nil && name == "" {
		name = models.UnknownCompanyName
		if req.DataType == models.DataTypeDenomination {
			name = displayName(req.Value)
		}
	}
	return companyTarget{id: req.CompanyID, name: name, country: req.Country}
}

func recordTarget(ref models.CompanyRef, country string) companyTarget {
	return companyTarget{id: ref.CompanyID, name: ref.CompanyName, country: country}
}

func (s *Service) resolveCompany(ctx context.Context, target companyTarget) (*models.Company, error) {
	now := requestcontext.Now(ctx)

	var company *models.Company
	if target.id != nil {
		c, err := s.store.FindCompanyByID(ctx, *target.id)
		if err != nil {
			return nil, wrapStoreErr(err, "company not found", "failed to load company")
		}
		company = c
	} else {
		c, err := s.store.FindCompanyByName(ctx, target.name)
		switch {
		case err == nil:
			company = c
		case errors.Is(err, sentinel.ErrNotFound):
			created, err := models.NewCompany(uuid.New(), target.name, target.country, now)
			if err != nil {
				if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
					return nil, dErrors.New(dErrors.CodeValidation, err.Error())
				}
				return nil, err
			}
			if err := s.store.CreateCompany(ctx, created); err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create company")
			}
			s.metrics.IncrementCompanyCreated()
			return created, nil
		default:
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load company")
		}
	}

	if company.Country == "" && target.country != "" {
		company.Country = target.country
		company.UpdatedAt = now
		if err := s.store.UpdateCompany(ctx, company); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update company")
		}
	}
	return company, nil
}

func (s *Service) upsert(ctx context.Context, company *models.Company, req models.SetDataRequest) (*models.Data, error) {
	now := requestcontext.Now(ctx)
	value := models.Encode(req.Value)
	if req.Kind != "" {
		kind, err := models.ParseKind(req.Kind)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, "invalid value_type")
		}
		value = models.EncodeAs(req.Value, kind)
	}
	d := &models.Data{
		ID:          uuid.New(),
		CompanyID:   company.ID,
		Source:      req.Source,
		CountryCode: req.Country,
		DataType:    req.DataType,
		Value:       value,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.UpsertData(ctx, d); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save company data")
	}
	s.metrics.IncrementDataWrite(string(value.Kind()))
	return d, nil
}

func displayName(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return models.Encode(value).Raw()
}

func wrapStoreErr(err error, notFound, internal string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, notFound)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, internal)
}
