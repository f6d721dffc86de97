package models

import (
	"strings"

	"github.com/google/uuid"

	dErrors "companyatlas/pkg/domain-errors"
)

// SetDataRequest creates or updates one fact.
type SetDataRequest struct {
	Country     string     `json:"country"`
	DataType    string     `json:"data_type"`
	Value       any        `json:"value"`
	Source      string     `json:"source,omitempty"`
	CompanyID   *uuid.UUID `json:"company_id,omitempty"`
	CompanyName string     `json:"company_name,omitempty"`

	// Kind overrides detection; the value's string form is stored under it.
	Kind string `json:"value_type,omitempty"`
}

// Normalize trims fields and canonicalizes the country.
func (r *SetDataRequest) Normalize() {
	r.Country = NormalizeCountry(r.Country)
	r.DataType = strings.TrimSpace(r.DataType)
	r.Source = strings.TrimSpace(r.Source)
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.Kind = strings.TrimSpace(r.Kind)
}

// Validate checks required fields. Call Normalize first.
func (r *SetDataRequest) Validate() error {
	if r.Country == "" {
		return dErrors.New(dErrors.CodeValidation, "country is required")
	}
	if r.DataType == "" {
		return dErrors.New(dErrors.CodeValidation, "data_type is required")
	}
	if r.Kind != "" {
		if _, err := ParseKind(r.Kind); err != nil {
			return dErrors.Wrap(err, dErrors.CodeValidation, "invalid value_type")
		}
	}
	return nil
}

// BulkRow is one (country, data type, value) triple of a bulk insert.
type BulkRow struct {
	Country  string `json:"country"`
	DataType string `json:"data_type"`
	Value    any    `json:"value"`
}

// DataView is the API rendering of a fact with its decoded value.
type DataView struct {
	*Data
	Raw       string `json:"value_raw"`
	ValueType Kind   `json:"value_type"`
	Value     any    `json:"value"`
	Valid     bool   `json:"valid"`
}

// NewDataView decodes d for display. Invalid stored text renders as a nil
// value with Valid=false.
func NewDataView(d *Data) DataView {
	v, ok := d.Value.Value()
	return DataView{Data: d, Raw: d.Value.Raw(), ValueType: d.Value.Kind(), Value: v, Valid: ok}
}
