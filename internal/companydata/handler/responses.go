package handler

import "companyatlas/internal/companydata/models"

// BulkRequest writes several facts onto one company.
type BulkRequest struct {
	CompanyName string           `json:"company_name,omitempty"`
	Rows        []models.BulkRow `json:"rows"`
}

type CompanyDataResponse struct {
	Company *models.Company   `json:"company"`
	Data    []models.DataView `json:"data"`
}

type SetDataResponse struct {
	Company *models.Company `json:"company"`
	Data    models.DataView `json:"data"`
}

type AddDocumentResponse struct {
	Company  *models.Company  `json:"company"`
	Document *models.Document `json:"document"`
}

type CompanyDocumentsResponse struct {
	Company   *models.Company    `json:"company"`
	Count     int                `json:"count"`
	Documents []*models.Document `json:"documents"`
}

type AddEventResponse struct {
	Company *models.Company `json:"company"`
	Event   *models.Event   `json:"event"`
}

type CompanyEventsResponse struct {
	Company *models.Company `json:"company"`
	Count   int             `json:"count"`
	Events  []*models.Event `json:"events"`
}
