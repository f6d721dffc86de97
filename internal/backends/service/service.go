// Package service is the registry boundary between the admin surface and the
// backend collaborators. Every collaborator failure is recovered here into an
// empty result; callers always receive a (possibly empty) collection.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"companyatlas/internal/backends/metrics"
	"companyatlas/internal/backends/models"
	"companyatlas/internal/backends/normalize"
	"companyatlas/internal/backends/ports"
	"companyatlas/internal/backends/snapshot"
	"companyatlas/internal/virtual"
)

// DefaultLimit bounds a search when the caller passes no limit.
const DefaultLimit = 20

// DefaultOrdering is the ordering of ListBackends.
var DefaultOrdering = []string{"continent", "country_code", "name"}

// SearchFields are the text fields the admin search box matches backends on.
var SearchFields = []string{"name", "display_name", "country_code", "continent"}

// Service enumerates backends and runs ad-hoc searches against them.
type Service struct {
	discoverer  ports.Discoverer
	factory     ports.BackendFactory
	builder     *snapshot.Builder
	normalizers *normalize.Registry
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
	limit       int
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

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithNormalizers replaces the default family normalizers.
func WithNormalizers(r *normalize.Registry) Option {
	return func(s *Service) {
		s.normalizers = r
	}
}

// WithDefaultLimit overrides DefaultLimit. Non-positive values are ignored.
func WithDefaultLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.limit = n
		}
	}
}

// New constructs a Service. All three collaborators are required.
func New(discoverer ports.Discoverer, factory ports.BackendFactory, builder *snapshot.Builder, opts ...Option) (*Service, error) {
	if discoverer == nil {
		return nil, errors.New("discoverer is required")
	}
	if factory == nil {
		return nil, errors.New("backend factory is required")
	}
	if builder == nil {
		return nil, errors.New("snapshot builder is required")
	}
	s := &Service{
		discoverer: discoverer,
		factory:    factory,
		builder:    builder,
		limit:      DefaultLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer("companyatlas/backends")
	}
	if s.normalizers == nil {
		s.normalizers = normalize.Default()
	}
	return s, nil
}

// ListBackends discovers every configured backend once and returns their
// snapshots ordered by DefaultOrdering. Backends whose snapshot cannot be
// built are skipped; a discovery failure yields an empty collection.
func (s *Service) ListBackends(ctx context.Context) *virtual.Collection[models.Snapshot] {
	ctx, span := s.tracer.Start(ctx, "backends.list")
	defer span.End()

	start := time.Now()
	decls, err := recovered(func() ([]models.Declaration, error) {
		return s.discoverer.Discover(ctx)
	})
	s.metrics.ObserveCallLatency("discover", time.Since(start))
	if err != nil {
		s.recordFailure(ctx, span, models.NewBackendError(models.FailureDiscovery, "", "backend discovery failed", err))
		return virtual.Empty[models.Snapshot]()
	}

	snaps := make([]models.Snapshot, 0, len(decls))
	seen := make(map[string]struct{}, len(decls))
	counts := make(map[string]int, len(models.Statuses))
	for _, decl := range decls {
		snap, err := s.builder.Build(decl)
		if err != nil {
			s.recordFailure(ctx, nil, err)
			continue
		}
		if _, dup := seen[snap.Name]; dup {
			s.recordFailure(ctx, nil, models.NewBackendError(models.FailureProbe, snap.Name, "duplicate backend name skipped", nil))
			continue
		}
		seen[snap.Name] = struct{}{}
		counts[string(snap.Status)]++
		snaps = append(snaps, snap)
	}

	s.metrics.SetBackendsByStatus(counts, statusLabels())
	span.SetAttributes(attribute.Int("backends.count", len(snaps)))
	return virtual.New(snaps, DefaultOrdering...)
}

// GetBackend finds one backend by name, falling back to a case-insensitive
// match on its display name. Absence is reported with ok=false.
func (s *Service) GetBackend(ctx context.Context, name string) (models.Snapshot, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Snapshot{}, false
	}
	return s.lookup(s.ListBackends(ctx), name)
}

func (s *Service) lookup(all *virtual.Collection[models.Snapshot], name string) (models.Snapshot, bool) {
	if snap, err := all.Get(virtual.Lookup{"name": name}); err == nil {
		return snap, true
	}
	for _, snap := range all.Iter() {
		if snap.DisplayName != "" && strings.EqualFold(snap.DisplayName, name) {
			return snap, true
		}
	}
	return models.Snapshot{}, false
}

// Search queries one backend service for term. An empty term or backend
// name, an unknown backend, a disabled service and a failing backend all
// yield an empty, unordered collection.
func (s *Service) Search(ctx context.Context, backendName string, service models.Service, term string, limit int) *virtual.Collection[models.SearchResult] {
	empty := virtual.Empty[models.SearchResult]()
	backendName, term = strings.TrimSpace(backendName), strings.TrimSpace(term)
	if backendName == "" || term == "" {
		return empty
	}
	if limit <= 0 {
		limit = s.limit
	}

	ctx, span := s.tracer.Start(ctx, "backends.search", trace.WithAttributes(
		attribute.String("backend", backendName),
		attribute.String("service", string(service)),
		attribute.Int("limit", limit),
	))
	defer span.End()

	snap, ok := s.GetBackend(ctx, backendName)
	if !ok {
		s.recordFailure(ctx, span, models.NewBackendError(models.FailureNotFound, backendName, "backend not found", nil))
		return empty
	}
	if !snap.Can(service.Capability()) {
		s.logger.InfoContext(ctx, "search skipped: service disabled",
			"backend", snap.Name,
			"service", service,
		)
		s.metrics.IncrementFailure(string(models.FailureServiceDisabled))
		s.metrics.IncrementSearch(snap.Name, string(service), "disabled")
		return empty
	}

	start := time.Now()
	rows, err := recovered(func() ([]any, error) {
		backend, err := s.factory.Backend(ctx, snap.Name)
		if err != nil {
			category := models.FailureSearch
			if errors.Is(err, models.ErrBackendNotFound) {
				category = models.FailureNotFound
			}
			return nil, models.NewBackendError(category, snap.Name, "resolve backend", err)
		}
		if backend == nil {
			return nil, models.NewBackendError(models.FailureNotFound, snap.Name, "factory returned no backend", nil)
		}
		return call(ctx, backend, service, term, limit)
	})
	s.metrics.ObserveCallLatency("search", time.Since(start))
	if err != nil {
		var be *models.BackendError
		if !errors.As(err, &be) {
			err = models.NewBackendError(models.FailureSearch, snap.Name, fmt.Sprintf("%s search failed", service), err)
		}
		s.recordFailure(ctx, span, err)
		s.metrics.IncrementSearch(snap.Name, string(service), "failed")
		return empty
	}

	if len(rows) > limit {
		rows = rows[:limit]
	}
	results := make([]models.SearchResult, 0, len(rows))
	for idx, row := range rows {
		raw, ok := row.(map[string]any)
		if !ok {
			raw = models.Row{"data": row}
		}
		normalized := s.normalizers.Normalize(snap.Family, service, raw)
		results = append(results, models.NewSearchResult(snap.Name, service, idx, raw, normalized))
	}

	s.metrics.IncrementSearch(snap.Name, string(service), "ok")
	s.metrics.ObserveSearchRows(string(service), len(results))
	span.SetAttributes(attribute.Int("results.count", len(results)))
	return virtual.New(results)
}

func call(ctx context.Context, b ports.Backend, service models.Service, term string, limit int) ([]any, error) {
	switch service {
	case models.ServiceDocuments:
		return b.GetDocuments(ctx, term, limit)
	case models.ServiceEvents:
		return b.GetEvents(ctx, term, limit)
	default:
		return b.SearchByName(ctx, term, limit)
	}
}

// recovered runs fn, turning a panic into an error.
func recovered[T any](fn func() (T, error)) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("collaborator panicked: %v", r)
		}
	}()
	return fn()
}

func (s *Service) recordFailure(ctx context.Context, span trace.Span, err error) {
	category := models.CategoryOf(err)
	s.logger.WarnContext(ctx, "backend collaborator failure recovered",
		"category", category,
		"error", err.Error(),
	)
	s.metrics.IncrementFailure(string(category))
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(category))
	}
}

func statusLabels() []string {
	out := make([]string, 0, len(models.Statuses))
	for _, st := range models.Statuses {
		out = append(out, string(st))
	}
	return out
}
