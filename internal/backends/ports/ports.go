package ports

import (
	"context"

	"companyatlas/internal/backends/models"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks Discoverer,BackendFactory,Backend,PackageProbe,ConfigProbe

// Discoverer enumerates the configured backend declarations.
// The registry calls it once per enumeration.
type Discoverer interface {
	Discover(ctx context.Context) ([]models.Declaration, error)
}

// BackendFactory resolves a backend instance by its unique name.
// Unknown names return models.ErrBackendNotFound (optionally wrapped).
type BackendFactory interface {
	Backend(ctx context.Context, name string) (Backend, error)
}

// Backend is one company data source. Rows are returned as the source
// produced them; non-object rows are wrapped by the caller.
type Backend interface {
	SearchByName(ctx context.Context, term string, limit int) ([]any, error)
	GetDocuments(ctx context.Context, term string, limit int) ([]any, error)
	GetEvents(ctx context.Context, term string, limit int) ([]any, error)
}

// PackageProbe answers whether a named dependency is installed.
type PackageProbe interface {
	Installed(name string) bool
}

// ConfigProbe answers whether a named configuration key is present.
type ConfigProbe interface {
	Present(key string) bool
}

// PackageProbeFunc adapts a function to PackageProbe.
type PackageProbeFunc func(name string) bool

func (f PackageProbeFunc) Installed(name string) bool { return f(name) }

// ConfigProbeFunc adapts a function to ConfigProbe.
type ConfigProbeFunc func(key string) bool

func (f ConfigProbeFunc) Present(key string) bool { return f(key) }
