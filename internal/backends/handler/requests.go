package handler

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"companyatlas/internal/backends/models"
	dErrors "companyatlas/pkg/domain-errors"
)

const (
	// DefaultPerPage matches the admin changelist page size.
	DefaultPerPage = 100
	MaxPerPage     = 1000
)

// listOrderFields are the columns the backend list may be ordered by.
var listOrderFields = map[string]bool{
	"name": true, "display_name": true, "continent": true, "country_code": true, "status": true,
	"can_fetch_company_data": true, "can_fetch_documents": true, "can_fetch_events": true,
	"are_packages_installed": true, "is_config_ready": true, "are_services_implemented": true,
}

// resultOrderFields are the columns search results may be ordered by.
var resultOrderFields = map[string]bool{"id": true}

func init() {
	for _, f := range models.NormalizedFields {
		resultOrderFields[f] = true
	}
}

// ListBackendsRequest carries the changelist query parameters.
type ListBackendsRequest struct {
	Query       string
	Continent   string
	CountryCode string
	Status      models.Status
	Ordering    []string

	// Diagnostic filters; nil means not filtered.
	PackagesInstalled   *bool
	ConfigReady         *bool
	ServicesImplemented *bool

	Page        int
	PerPage     int
}

func parseListBackends(q url.Values) (*ListBackendsRequest, error) {
	req := &ListBackendsRequest{
		Query:       strings.TrimSpace(q.Get("q")),
		Continent:   strings.TrimSpace(q.Get("continent")),
		CountryCode: strings.ToUpper(strings.TrimSpace(q.Get("country_code"))),
		Status:      models.Status(strings.TrimSpace(q.Get("status"))),
	}
	if req.Status != "" && !req.Status.IsValid() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "unknown status filter")
	}
	var err error
	if req.Ordering, err = parseOrdering(q.Get("o"), listOrderFields); err != nil {
		return nil, err
	}
	if req.Page, err = positiveInt(q.Get("page"), 1); err != nil {
		return nil, err
	}
	if req.PerPage, err = positiveInt(q.Get("per_page"), DefaultPerPage); err != nil {
		return nil, err
	}
	if req.PerPage > MaxPerPage {
		return nil, dErrors.New(dErrors.CodeBadRequest, "per_page must not exceed "+strconv.Itoa(MaxPerPage))
	}
	if req.Page > math.MaxInt/req.PerPage {
		return nil, dErrors.New(dErrors.CodeBadRequest, "page out of range")
	}
	if req.PackagesInstalled, err = optionalBool(q, "pkg", "are_packages_installed"); err != nil {
		return nil, err
	}
	if req.ConfigReady, err = optionalBool(q, "cfg", "is_config_ready"); err != nil {
		return nil, err
	}
	if req.ServicesImplemented, err = optionalBool(q, "svc", "are_services_implemented"); err != nil {
		return nil, err
	}
	return req, nil
}

// SearchRequest carries the backend search parameters.
type SearchRequest struct {
	Backend  string
	Service  models.Service
	Term     string
	Limit    int
	Ordering []string
}

func parseSearch(backend string, q url.Values) (*SearchRequest, error) {
	service, err := models.ParseService(q.Get("service"))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "unknown service")
	}
	req := &SearchRequest{
		Backend: strings.TrimSpace(backend),
		Service: service,
		Term:    strings.TrimSpace(q.Get("q")),
	}
	if req.Limit, err = positiveInt(q.Get("limit"), 0); err != nil {
		return nil, err
	}
	if req.Ordering, err = parseOrdering(q.Get("o"), resultOrderFields); err != nil {
		return nil, err
	}
	return req, nil
}

// parseOrdering splits a comma separated "o" parameter, validating each field.
func parseOrdering(raw string, allowed map[string]bool) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var out []string
	for part := range strings.SplitSeq(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !allowed[strings.TrimLeft(part, "-+")] {
			return nil, dErrors.New(dErrors.CodeBadRequest, "cannot order by "+part)
		}
		out = append(out, part)
	}
	return out, nil
}

// optionalBool reads the first non-empty parameter among names.
func optionalBool(q url.Values, names ...string) (*bool, error) {
	for _, name := range names {
		raw := strings.TrimSpace(q.Get(name))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, dErrors.New(dErrors.CodeBadRequest, name+" must be a boolean, got "+raw)
		}
		return &v, nil
	}
	return nil, nil
}

func positiveInt(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, dErrors.New(dErrors.CodeBadRequest, "expected a positive integer, got "+raw)
	}
	return n, nil
}
