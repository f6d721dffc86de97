package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Capability names one independently enabled and priced backend feature.
type Capability string

const (
	CapabilityCompanyData Capability = "company_data"
	CapabilityDocuments   Capability = "documents"
	CapabilityEvents      Capability = "events"
)

// Capabilities lists every capability in display order.
var Capabilities = []Capability{CapabilityCompanyData, CapabilityDocuments, CapabilityEvents}

// Status classifies a backend's operational readiness.
type Status string

const (
	StatusAvailable       Status = "available"
	StatusMissingPackages Status = "missing_packages"
	StatusMissingConfig   Status = "missing_config"
	StatusUnavailable     Status = "unavailable"
)

// Statuses lists every status in filter order.
var Statuses = []Status{StatusAvailable, StatusMissingPackages, StatusMissingConfig, StatusUnavailable}

// Label is the human readable form shown in admin lists.
func (s Status) Label() string {
	switch s {
	case StatusAvailable:
		return "✅ Available"
	case StatusMissingPackages:
		return "❌ Missing Packages"
	case StatusMissingConfig:
		return "⚠️ Missing Config"
	case StatusUnavailable:
		return "❌ Unavailable"
	default:
		return "❓ Unknown"
	}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMissingPackages, StatusMissingConfig, StatusUnavailable:
		return true
	}
	return false
}

// Cost is the price of one capability call. The zero value is the free
// sentinel; a priced capability may still cost 0.
type Cost struct {
	Priced bool
	Amount float64
}

// FreeCost is the sentinel for capabilities that cost nothing.
var FreeCost = Cost{}

// PricedAt builds a non-free cost.
func PricedAt(amount float64) Cost {
	return Cost{Priced: true, Amount: amount}
}

func (c Cost) IsFree() bool {
	return !c.Priced
}

func (c Cost) String() string {
	if !c.Priced {
		return "free"
	}
	return strconv.FormatFloat(c.Amount, 'f', -1, 64)
}

func (c Cost) MarshalJSON() ([]byte, error) {
	if !c.Priced {
		return []byte(`"free"`), nil
	}
	return json.Marshal(c.Amount)
}

// UnmarshalYAML accepts "free", an empty value, or a number.
func (c *Cost) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseCost(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCost converts a declared cost into a Cost. nil, "" and "free" are free.
func ParseCost(raw any) (Cost, error) {
	switch v := raw.(type) {
	case nil:
		return FreeCost, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" || strings.EqualFold(s, "free") {
			return FreeCost, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Cost{}, fmt.Errorf("invalid cost %q", v)
		}
		return finiteCost(f)
	case int:
		return PricedAt(float64(v)), nil
	case int64:
		return PricedAt(float64(v)), nil
	case float64:
		return finiteCost(v)
	case Cost:
		if v.Priced {
			return finiteCost(v.Amount)
		}
		return v, nil
	}
	return Cost{}, fmt.Errorf("invalid cost type %T", raw)
}

func finiteCost(f float64) (Cost, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Cost{}, fmt.Errorf("cost must be a finite number, got %v", f)
	}
	return PricedAt(f), nil
}

// Declaration is the static description a backend publishes about itself.
type Declaration struct {
	Name             string              `yaml:"name"`
	DisplayName      string              `yaml:"display_name"`
	Description      string              `yaml:"description"`
	Continent        string              `yaml:"continent"`
	CountryCode      string              `yaml:"country_code"`
	CountryFlag      string              `yaml:"country_flag"`
	Family           string              `yaml:"family"`
	RequiredPackages []string            `yaml:"required_packages"`
	RequiredConfig   []string            `yaml:"required_config"`
	ConfigPrefix     string              `yaml:"config_prefix"`
	Capabilities     map[Capability]bool `yaml:"capabilities"`
	Costs            map[Capability]Cost `yaml:"costs"`
	Disabled         bool                `yaml:"disabled"`
	DocumentationURL string              `yaml:"documentation_url"`
	SiteURL          string              `yaml:"site_url"`
	StatusURL        string              `yaml:"status_url"`
}

// Row is one raw result as returned by a backend.
type Row = map[string]any

// Validate checks the invariants a snapshot needs from a declaration.
func (d Declaration) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("backend name is required")
	}
	for capability, cost := range d.Costs {
		if !cost.Priced {
			continue
		}
		if math.IsNaN(cost.Amount) || math.IsInf(cost.Amount, 0) {
			return fmt.Errorf("non-finite cost for %s", capability)
		}
		if cost.Amount < 0 {
			return fmt.Errorf("negative cost for %s", capability)
		}
	}
	return nil
}

// CostOf returns the declared cost, free when none was declared.
func (d Declaration) CostOf(c Capability) Cost {
	if cost, ok := d.Costs[c]; ok {
		return cost
	}
	return FreeCost
}
