package handler

import (
	"companyatlas/internal/backends/models"
)

// BackendRow is one line of the backend changelist.
type BackendRow struct {
	Name                string        `json:"name"`
	DisplayName         string        `json:"display_name"`
	Continent           string        `json:"continent"`
	CountryCode         string        `json:"country_code"`
	CountryFlag         string        `json:"country_flag"`
	CanFetchCompanyData bool          `json:"can_fetch_company_data"`
	CanFetchDocuments   bool          `json:"can_fetch_documents"`
	CanFetchEvents      bool          `json:"can_fetch_events"`
	PackagesInstalled   bool          `json:"are_packages_installed"`
	ConfigReady         bool          `json:"is_config_ready"`
	ServicesImplemented bool          `json:"are_services_implemented"`
	Status              models.Status `json:"status"`
	StatusLabel         string        `json:"status_label"`
}

func toBackendRow(s models.Snapshot) BackendRow {
	return BackendRow{
		Name:                s.Name,
		DisplayName:         s.DisplayName,
		Continent:           s.Continent,
		CountryCode:         s.CountryCode,
		CountryFlag:         s.CountryFlag,
		CanFetchCompanyData: s.Can(models.CapabilityCompanyData),
		CanFetchDocuments:   s.Can(models.CapabilityDocuments),
		CanFetchEvents:      s.Can(models.CapabilityEvents),
		PackagesInstalled:   s.PackagesInstalled,
		ConfigReady:         s.ConfigReady,
		ServicesImplemented: s.ServicesImplemented,
		Status:              s.Status,
		StatusLabel:         s.Status.Label(),
	}
}

// Choice is one option of a list filter.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Filters lists the choices of every changelist filter.
type Filters struct {
	Continent   []string `json:"continent"`
	CountryCode []string `json:"country_code"`
	Status      []Choice `json:"status"`
}

// ListBackendsResponse is the backend changelist payload.
type ListBackendsResponse struct {
	Count   int          `json:"count"`
	Page    int          `json:"page"`
	PerPage int          `json:"per_page"`
	Results []BackendRow `json:"results"`
	Filters Filters      `json:"filters"`
}

// BackendDetailResponse is the full snapshot plus display helpers.
type BackendDetailResponse struct {
	models.Snapshot
	StatusLabel string `json:"status_label"`
}

// SearchResponse is the search result changelist payload.
type SearchResponse struct {
	Backend string                `json:"backend"`
	Service models.Service        `json:"service"`
	Query   string                `json:"q"`
	Count   int                   `json:"count"`
	Results []models.SearchResult `json:"results"`
}
