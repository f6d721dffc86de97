package models

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	dErrors "companyatlas/pkg/domain-errors"
)

// DateLayout is the stored and rendered form of record dates.
const DateLayout = time.DateOnly

// Record kinds, used as metric labels and admin model names.
const (
	RecordDocument = "document"
	RecordEvent    = "event"
)

// Document is a filing or publication attached to a company (kbis, bodacc
// notice, annual accounts). Documents are append-only.
type Document struct {
	ID           uuid.UUID      `json:"id"`
	CompanyID    uuid.UUID      `json:"company_id"`
	Source       string         `json:"source"`
	CountryCode  string         `json:"country_code"`
	DocumentType string         `json:"document_type"`
	Title        string         `json:"title"`
	Date         string         `json:"date,omitempty"`
	URL          string         `json:"url,omitempty"`
	Content      string         `json:"content,omitempty"`
	Metadata     map[string]any `json:"metadata"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (d *Document) String() string {
	return fmt.Sprintf("%s - %s - %s", d.CompanyID, d.Source, d.DocumentType)
}

func (d *Document) Key() string {
	return d.ID.String()
}

// Field exposes document columns to list filters.
func (d *Document) Field(name string) (any, bool) {
	switch name {
	case "id", "pk":
		return d.ID.String(), true
	case "source":
		return d.Source, true
	case "country_code":
		return d.CountryCode, true
	case "document_type", "type":
		return d.DocumentType, true
	case "title":
		return d.Title, true
	case "date":
		return d.Date, true
	case "content":
		return d.Content, true
	}
	return nil, false
}

// Event is a dated change in a company's life (status change, capital
// change, modification). Events are append-only.
type Event struct {
	ID          uuid.UUID      `json:"id"`
	CompanyID   uuid.UUID      `json:"company_id"`
	Source      string         `json:"source"`
	CountryCode string         `json:"country_code"`
	EventType   string         `json:"event_type"`
	Title       string         `json:"title"`
	Date        string         `json:"date,omitempty"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (e *Event) String() string {
	return fmt.Sprintf("%s - %s - %s", e.CompanyID, e.Source, e.EventType)
}

func (e *Event) Key() string {
	return e.ID.String()
}

// Field exposes event columns to list filters.
func (e *Event) Field(name string) (any, bool) {
	switch name {
	case "id", "pk":
		return e.ID.String(), true
	case "source":
		return e.Source, true
	case "country_code":
		return e.CountryCode, true
	case "event_type", "type":
		return e.EventType, true
	case "title":
		return e.Title, true
	case "date":
		return e.Date, true
	case "description":
		return e.Description, true
	}
	return nil, false
}

// CompanyRef names the company a record is attached to: by ID, or by name
// with find-or-create semantics.
type CompanyRef struct {
	CompanyID   *uuid.UUID `json:"company_id,omitempty"`
	CompanyName string     `json:"company_name,omitempty"`
}

func (r CompanyRef) validate() error {
	if r.CompanyID == nil && r.CompanyName == "" {
		return dErrors.New(dErrors.CodeValidation, "company_id or company_name is required")
	}
	return nil
}

// RecordFields are the request columns shared by documents and events.
type RecordFields struct {
	Country  string         `json:"country,omitempty"`
	Source   string         `json:"source,omitempty"`
	Title    string         `json:"title"`
	Date     string         `json:"date,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func (f *RecordFields) Normalize() {
	f.Country = NormalizeCountry(f.Country)
	f.Source = strings.TrimSpace(f.Source)
	f.Title = strings.TrimSpace(f.Title)
	f.Date = strings.TrimSpace(f.Date)
	if f.Metadata == nil {
		f.Metadata = map[string]any{}
	}
}

func (f *RecordFields) Validate() error {
	if f.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if f.Date != "" {
		if _, err := time.Parse(DateLayout, f.Date); err != nil {
			return dErrors.New(dErrors.CodeValidation, "date must be formatted as YYYY-MM-DD")
		}
	}
	return nil
}

// AddDocumentRequest attaches a document to a company.
type AddDocumentRequest struct {
	CompanyRef
	RecordFields

	DocumentType string `json:"document_type"`
	URL          string `json:"url,omitempty"`
	Content      string `json:"content,omitempty"`
}

// Normalize trims fields and canonicalizes the country.
func (r *AddDocumentRequest) Normalize() {
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.RecordFields.Normalize()
	r.DocumentType = strings.TrimSpace(r.DocumentType)
	r.URL = strings.TrimSpace(r.URL)
}

// Validate checks required fields. Call Normalize first.
func (r *AddDocumentRequest) Validate() error {
	if err := r.CompanyRef.validate(); err != nil {
		return err
	}
	if r.DocumentType == "" {
		return dErrors.New(dErrors.CodeValidation, "document_type is required")
	}
	if err := r.RecordFields.Validate(); err != nil {
		return err
	}
	if r.URL != "" {
		u, err := url.Parse(r.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return dErrors.New(dErrors.CodeValidation, "url must be an absolute http(s) URL")
		}
	}
	return nil
}

// AddEventRequest attaches an event to a company.
type AddEventRequest struct {
	CompanyRef
	RecordFields

	EventType   string `json:"event_type"`
	Description string `json:"description,omitempty"`
}

// Normalize trims fields and canonicalizes the country.
func (r *AddEventRequest) Normalize() {
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.RecordFields.Normalize()
	r.EventType = strings.TrimSpace(r.EventType)
}

// Validate checks required fields. Call Normalize first.
func (r *AddEventRequest) Validate() error {
	if err := r.CompanyRef.validate(); err != nil {
		return err
	}
	if r.EventType == "" {
		return dErrors.New(dErrors.CodeValidation, "event_type is required")
	}
	return r.RecordFields.Validate()
}
