package models

// Snapshot is the point-in-time diagnostic record of one configured backend.
// It is built once per enumeration and never mutated afterwards.
//
// Invariants:
//   - Status is Available iff every package is installed and every config key present
//   - MissingPackages and MissingConfig are exactly the false entries of Packages and Config,
//     in declaration order
//   - PackagesInstalled, ConfigReady and ServicesImplemented are the three signals
//     behind Status, each queryable on its own
type Snapshot struct {
	Name                string              `json:"name"`
	DisplayName         string              `json:"display_name"`
	Description         string              `json:"description"`
	Continent           string              `json:"continent"`
	CountryCode         string              `json:"country_code"`
	CountryFlag         string              `json:"country_flag"`
	Family              string              `json:"family,omitempty"`
	Packages            []Requirement       `json:"packages"`
	Config              []Requirement       `json:"config"`
	MissingPackages     []string            `json:"missing_packages"`
	MissingConfig       []string            `json:"missing_config"`
	MissingServices     []string            `json:"missing_services"`
	PackagesInstalled   bool                `json:"are_packages_installed"`
	ConfigReady         bool                `json:"is_config_ready"`
	ServicesImplemented bool                `json:"are_services_implemented"`
	Status              Status              `json:"status"`
	CanFetch            map[Capability]bool `json:"can_fetch"`
	Costs               map[Capability]Cost `json:"costs"`
	DocumentationURL    string              `json:"documentation_url,omitempty"`
	SiteURL             string              `json:"site_url,omitempty"`
	StatusURL           string              `json:"status_url,omitempty"`
}

// Requirement is one package or config key and whether it is satisfied.
type Requirement struct {
	Name      string `json:"name"`
	Satisfied bool   `json:"satisfied"`
}

func (s Snapshot) Key() string {
	return s.Name
}

// String mirrors the admin display: display name when set, name otherwise.
func (s Snapshot) String() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Name
}

func (s Snapshot) IsAvailable() bool {
	return s.Status == StatusAvailable
}

// Can reports whether the backend advertises capability c.
func (s Snapshot) Can(c Capability) bool {
	return s.CanFetch[c]
}

// PackageInstalled reports the probe result for a required package.
func (s Snapshot) PackageInstalled(name string) (installed, required bool) {
	return lookupRequirement(s.Packages, name)
}

// ConfigPresent reports the probe result for a required config key.
func (s Snapshot) ConfigPresent(key string) (present, required bool) {
	return lookupRequirement(s.Config, key)
}

func lookupRequirement(reqs []Requirement, name string) (bool, bool) {
	for _, r := range reqs {
		if r.Name == name {
			return r.Satisfied, true
		}
	}
	return false, false
}

// Field exposes snapshot attributes to virtual collection queries.
func (s Snapshot) Field(name string) (any, bool) {
	switch name {
	case "name", "pk":
		return s.Name, true
	case "display_name":
		return s.DisplayName, true
	case "description":
		return s.Description, true
	case "continent":
		return s.Continent, true
	case "country_code":
		return s.CountryCode, true
	case "country_flag":
		return s.CountryFlag, true
	case "family":
		return s.Family, true
	case "status":
		return s.Status, true
	case "is_available":
		return s.IsAvailable(), true
	case "are_packages_installed", "pkg":
		return s.PackagesInstalled, true
	case "is_config_ready", "cfg":
		return s.ConfigReady, true
	case "are_services_implemented", "svc":
		return s.ServicesImplemented, true
	case "can_fetch_company_data":
		return s.Can(CapabilityCompanyData), true
	case "can_fetch_documents":
		return s.Can(CapabilityDocuments), true
	case "can_fetch_events":
		return s.Can(CapabilityEvents), true
	case "documentation_url":
		return s.DocumentationURL, true
	case "site_url":
		return s.SiteURL, true
	case "status_url":
		return s.StatusURL, true
	}
	return nil, false
}
