// Package snapshot derives the diagnostic record of a backend from its
// declaration and the runtime probes.
package snapshot

import (
	"fmt"
	"maps"
	"strings"

	"companyatlas/internal/backends/models"
	"companyatlas/internal/backends/ports"
	probes "companyatlas/internal/backends/probe"
	platformstrings "companyatlas/pkg/platform/strings"
)

// Builder computes snapshots. It holds no per-request state and may be shared.
type Builder struct {
	packages ports.PackageProbe
	config   ports.ConfigProbe
}

// NewBuilder wires the probes. Both are required.
func NewBuilder(packages ports.PackageProbe, config ports.ConfigProbe) (*Builder, error) {
	if packages == nil {
		return nil, fmt.Errorf("package probe is required")
	}
	if config == nil {
		return nil, fmt.Errorf("config probe is required")
	}
	return &Builder{packages: packages, config: config}, nil
}

// Build probes every requirement of decl and derives its status.
// A malformed declaration or a panicking probe is returned as a probe failure.
func (b *Builder) Build(decl models.Declaration) (snap models.Snapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = models.NewBackendError(models.FailureProbe, decl.Name, "probe panicked", fmt.Errorf("%v", r))
		}
	}()

	if err := decl.Validate(); err != nil {
		return models.Snapshot{}, models.NewBackendError(models.FailureProbe, decl.Name, "invalid declaration", err)
	}

	packages, missingPackages := probe(decl.RequiredPackages, probes.Canonical, b.packages.Installed)
	config, missingConfig := probe(decl.RequiredConfig, strings.ToUpper, func(key string) bool {
		return b.config.Present(decl.ConfigPrefix + key)
	})

	canFetch := make(map[models.Capability]bool, len(models.Capabilities))
	costs := make(map[models.Capability]models.Cost, len(models.Capabilities))
	missingServices := []string{}
	for _, c := range models.Capabilities {
		canFetch[c] = decl.Capabilities[c]
		costs[c] = decl.CostOf(c)
		if !canFetch[c] {
			missingServices = append(missingServices, string(c))
		}
	}

	return models.Snapshot{
		Name:             decl.Name,
		DisplayName:      decl.DisplayName,
		Description:      decl.Description,
		Continent:        decl.Continent,
		CountryCode:      decl.CountryCode,
		CountryFlag:      decl.CountryFlag,
		Family:           decl.Family,
		Packages:         packages,
		Config:           config,
		MissingPackages:  missingPackages,
		MissingConfig:    missingConfig,
		MissingServices:  missingServices,

		PackagesInstalled:   len(missingPackages) == 0,
		ConfigReady:         len(missingConfig) == 0,
		ServicesImplemented: len(missingServices) == 0,

		Status:           deriveStatus(decl, missingPackages, missingConfig),
		CanFetch:         canFetch,
		Costs:            costs,
		DocumentationURL: decl.DocumentationURL,
		SiteURL:          decl.SiteURL,
		StatusURL:        decl.StatusURL,
	}, nil
}

// probe checks each requirement once; fold decides which names are the same
// requirement, matching how the probe itself compares them.
func probe(names []string, fold func(string) string, check func(string) bool) ([]models.Requirement, []string) {
	names = platformstrings.DedupeFold(names, fold)
	reqs := make([]models.Requirement, 0, len(names))
	missing := []string{}
	for _, name := range names {
		ok := check(name)
		reqs = append(reqs, models.Requirement{Name: name, Satisfied: ok})
		if !ok {
			missing = append(missing, name)
		}
	}
	return reqs, missing
}

// deriveStatus applies the fixed priority: packages, then config, then usability.
func deriveStatus(decl models.Declaration, missingPackages, missingConfig []string) models.Status {
	switch {
	case len(missingPackages) > 0:
		return models.StatusMissingPackages
	case len(missingConfig) > 0:
		return models.StatusMissingConfig
	case decl.Disabled || !anyEnabled(decl.Capabilities):
		return models.StatusUnavailable
	}
	return models.StatusAvailable
}

func anyEnabled(caps map[models.Capability]bool) bool {
	for v := range maps.Values(caps) {
		if v {
			return true
		}
	}
	return false
}

