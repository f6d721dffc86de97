package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	dErrors "companyatlas/pkg/domain-errors"
)

// DataTypeDenomination is the data type holding a company's legal name.
const DataTypeDenomination = "denomination"

// UnknownCompanyName names companies created from a non-denomination fact.
const UnknownCompanyName = "Unknown Company"

// Company is the parent of every stored fact.
type Company struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCompany validates and builds a company.
func NewCompany(id uuid.UUID, name, country string, now time.Time) (*Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "company name cannot be empty")
	}
	return &Company{ID: id, Name: name, Country: country, CreatedAt: now, UpdatedAt: now}, nil
}

// Data is one typed fact about a company, unique per
// (company, source, country code, data type).
type Data struct {
	ID          uuid.UUID  `json:"id"`
	CompanyID   uuid.UUID  `json:"company_id"`
	Source      string     `json:"source"`
	CountryCode string     `json:"country_code"`
	DataType    string     `json:"data_type"`
	Value       TypedValue `json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Key is the uniqueness key of a Data row.
type Key struct {
	CompanyID   uuid.UUID
	Source      string
	CountryCode string
	DataType    string
}

func (d *Data) Key() Key {
	return Key{CompanyID: d.CompanyID, Source: d.Source, CountryCode: d.CountryCode, DataType: d.DataType}
}

func (d *Data) String() string {
	return fmt.Sprintf("%s - %s - %s - %s", d.CompanyID, d.Source, d.CountryCode, d.DataType)
}

// NormalizeCountry upper-cases a country and maps "FRANCE" to "FR".
func NormalizeCountry(country string) string {
	country = strings.ToUpper(strings.TrimSpace(country))
	if country == "FRANCE" {
		return "FR"
	}
	return country
}
