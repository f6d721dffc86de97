package models

import (
	"fmt"
	"strings"
)

// Service is the search surface requested from a backend.
type Service string

const (
	ServiceCompanyData Service = "data"
	ServiceDocuments   Service = "documents"
	ServiceEvents      Service = "events"
)

// ParseService accepts the admin query values; empty means company data.
func ParseService(s string) (Service, error) {
	switch Service(strings.ToLower(strings.TrimSpace(s))) {
	case "", ServiceCompanyData, "company_data":
		return ServiceCompanyData, nil
	case ServiceDocuments:
		return ServiceDocuments, nil
	case ServiceEvents:
		return ServiceEvents, nil
	}
	return "", fmt.Errorf("unknown service %q", s)
}

// Capability maps the service onto the capability that gates it.
func (s Service) Capability() Capability {
	switch s {
	case ServiceDocuments:
		return CapabilityDocuments
	case ServiceEvents:
		return CapabilityEvents
	default:
		return CapabilityCompanyData
	}
}

// NormalizedFields is the common company field set search rows are projected onto.
var NormalizedFields = []string{
	"siren", "rna", "siret", "denomination", "since",
	"legalform", "ape", "category", "slice_effective", "siege",
}

// SearchResult is one row returned by a backend search, wrapped for display.
// Normalized holds every NormalizedFields key, empty when not supplied.
type SearchResult struct {
	ID          string            `json:"id"`
	BackendName string            `json:"backend_name"`
	Service     Service           `json:"service"`
	Raw         Row               `json:"result_data"`
	Normalized  map[string]string `json:"normalized"`
}

// NewSearchResult builds a result whose pseudo key is backend-service-index.
func NewSearchResult(backend string, service Service, index int, raw Row, normalized map[string]string) SearchResult {
	projected := make(map[string]string, len(NormalizedFields))
	for _, f := range NormalizedFields {
		projected[f] = normalized[f]
	}
	return SearchResult{
		ID:          fmt.Sprintf("%s-%s-%d", backend, service, index),
		BackendName: backend,
		Service:     service,
		Raw:         raw,
		Normalized:  projected,
	}
}

func (r SearchResult) Key() string {
	return r.ID
}

func (r SearchResult) String() string {
	if d := r.Normalized["denomination"]; d != "" {
		return d
	}
	return fmt.Sprintf("%s - %s", r.BackendName, r.Service)
}

// Field exposes normalized columns and wrapper attributes to queries.
func (r SearchResult) Field(name string) (any, bool) {
	switch name {
	case "id", "pk":
		return r.ID, true
	case "backend_name":
		return r.BackendName, true
	case "service":
		return r.Service, true
	}
	if v, ok := r.Normalized[name]; ok {
		return v, true
	}
	return nil, false
}
