package store

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"companyatlas/internal/companydata/models"
	"companyatlas/pkg/platform/sentinel"
)

// InMemory keeps companies, their data and their records in process maps.
// RunInTx restores the previous state when the callback fails.
type InMemory struct {
	mu        sync.RWMutex
	txMu      sync.Mutex
	companies map[uuid.UUID]*models.Company
	data      map[models.Key]*models.Data
	documents map[uuid.UUID]*models.Document
	events    map[uuid.UUID]*models.Event
}

func NewInMemory() *InMemory {
	return &InMemory{
		companies: make(map[uuid.UUID]*models.Company),
		data:      make(map[models.Key]*models.Data),
		documents: make(map[uuid.UUID]*models.Document),
		events:    make(map[uuid.UUID]*models.Event),
	}
}

func (s *InMemory) FindCompanyByID(_ context.Context, id uuid.UUID) (*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.companies[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

// FindCompanyByName returns the oldest company with the exact name.
func (s *InMemory) FindCompanyByName(_ context.Context, name string) (*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found *models.Company
	for _, c := range s.companies {
		if c.Name != name {
			continue
		}
		if found == nil || c.CreatedAt.Before(found.CreatedAt) {
			found = c
		}
	}
	if found == nil {
		return nil, sentinel.ErrNotFound
	}
	clone := *found
	return &clone, nil
}

func (s *InMemory) CreateCompany(_ context.Context, c *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[c.ID]; ok {
		return sentinel.ErrConflict
	}
	clone := *c
	s.companies[c.ID] = &clone
	return nil
}

func (s *InMemory) UpdateCompany(_ context.Context, c *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[c.ID]; !ok {
		return sentinel.ErrNotFound
	}
	clone := *c
	s.companies[c.ID] = &clone
	return nil
}

// UpsertData inserts or overwrites the record identified by d.Key(). On
// update the stored ID and CreatedAt win and are copied back into d.
func (s *InMemory) UpsertData(_ context.Context, d *models.Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[d.CompanyID]; !ok {
		return sentinel.ErrNotFound
	}
	key := d.Key()
	if existing, ok := s.data[key]; ok {
		d.ID = existing.ID
		d.CreatedAt = existing.CreatedAt
	}
	clone := *d
	s.data[key] = &clone
	return nil
}

// ListData returns a company's records ordered by data type, newest first within a type.
func (s *InMemory) ListData(_ context.Context, companyID uuid.UUID) ([]*models.Data, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*models.Data{}
	for _, d := range s.data {
		if d.CompanyID == companyID {
			clone := *d
			out = append(out, &clone)
		}
	}
	sortData(out)
	return out, nil
}

func (s *InMemory) FindDataByValue(_ context.Context, country, dataType, raw string) ([]*models.Data, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*models.Data{}
	for _, d := range s.data {
		if d.CountryCode == country && d.DataType == dataType && d.Value.Raw() == raw {
			clone := *d
			out = append(out, &clone)
		}
	}
	slices.SortFunc(out, func(a, b *models.Data) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out, nil
}

func (s *InMemory) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	companies := maps.Clone(s.companies)
	data := maps.Clone(s.data)
	documents := maps.Clone(s.documents)
	events := maps.Clone(s.events)
	s.mu.RUnlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.companies = companies
		s.data = data
		s.documents = documents
		s.events = events
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *InMemory) CreateDocument(_ context.Context, d *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[d.CompanyID]; !ok {
		return sentinel.ErrNotFound
	}
	if _, ok := s.documents[d.ID]; ok {
		return sentinel.ErrConflict
	}
	clone := *d
	clone.Metadata = cloneMetadata(d.Metadata)
	s.documents[d.ID] = &clone
	return nil
}

// ListDocuments returns a company's documents, most recent date first.
func (s *InMemory) ListDocuments(_ context.Context, companyID uuid.UUID) ([]*models.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*models.Document{}
	for _, d := range s.documents {
		if d.CompanyID == companyID {
			clone := *d
			clone.Metadata = cloneMetadata(d.Metadata)
			out = append(out, &clone)
		}
	}
	slices.SortFunc(out, func(a, b *models.Document) int {
		return compareRecords(a.Date, b.Date, a.CreatedAt, b.CreatedAt)
	})
	return out, nil
}

func (s *InMemory) CreateEvent(_ context.Context, e *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[e.CompanyID]; !ok {
		return sentinel.ErrNotFound
	}
	if _, ok := s.events[e.ID]; ok {
		return sentinel.ErrConflict
	}
	clone := *e
	clone.Metadata = cloneMetadata(e.Metadata)
	s.events[e.ID] = &clone
	return nil
}

// ListEvents returns a company's events, most recent date first.
func (s *InMemory) ListEvents(_ context.Context, companyID uuid.UUID) ([]*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*models.Event{}
	for _, e := range s.events {
		if e.CompanyID == companyID {
			clone := *e
			clone.Metadata = cloneMetadata(e.Metadata)
			out = append(out, &clone)
		}
	}
	slices.SortFunc(out, func(a, b *models.Event) int {
		return compareRecords(a.Date, b.Date, a.CreatedAt, b.CreatedAt)
	})
	return out, nil
}

// compareRecords orders by date descending with undated records last, then
// newest first. It matches recordOrder in the SQL store.
func compareRecords(dateA, dateB string, createdA, createdB time.Time) int {
	switch {
	case dateA == "" && dateB != "":
		return 1
	case dateA != "" && dateB == "":
		return -1
	}
	if c := strings.Compare(dateB, dateA); c != 0 {
		return c
	}
	return createdB.Compare(createdA)
}

func cloneMetadata(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return maps.Clone(m)
}

func sortData(out []*models.Data) {
	slices.SortFunc(out, func(a, b *models.Data) int {
		if c := strings.Compare(a.DataType, b.DataType); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
