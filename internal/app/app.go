// Package app assembles the backends registry and the company data store
// from Settings. Both the server and the CLI build through it.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	_ "modernc.org/sqlite"

	backendsmetrics "companyatlas/internal/backends/metrics"
	"companyatlas/internal/backends/catalog"
	"companyatlas/internal/backends/probe"
	backendsservice "companyatlas/internal/backends/service"
	"companyatlas/internal/backends/snapshot"
	companymetrics "companyatlas/internal/companydata/metrics"
	companyservice "companyatlas/internal/companydata/service"
	"companyatlas/internal/companydata/store"
	"companyatlas/internal/platform/config"
)

// App holds the wired services.
type App struct {
	Backends    *backendsservice.Service
	CompanyData *companyservice.Service
	Catalog     *catalog.Catalog

	db *sql.DB
}

// New wires every component. reg receives the metrics; pass nil to skip them.
func New(ctx context.Context, settings *config.Settings, logger *slog.Logger, reg prometheus.Registerer) (*App, error) {
	if settings == nil {
		return nil, errors.New("settings are required")
	}

	cat := catalog.Open(settings.CatalogPath)
	packages := probe.NewPackages(settings.Packages...)
	packages.Add(probe.BuildModules()...)
	builder, err := snapshot.NewBuilder(packages, probe.NewConfig(settings.Config))
	if err != nil {
		return nil, err
	}

	backendOpts := []backendsservice.Option{
		backendsservice.WithLogger(logger),
		backendsservice.WithDefaultLimit(settings.SearchLimit),
	}
	companyOpts := []companyservice.Option{companyservice.WithLogger(logger)}
	if reg != nil {
		backendOpts = append(backendOpts, backendsservice.WithMetrics(backendsmetrics.NewWith(reg)))
		companyOpts = append(companyOpts, companyservice.WithMetrics(companymetrics.NewWith(reg)))
	}

	backends, err := backendsservice.New(cat, cat, builder, backendOpts...)
	if err != nil {
		return nil, err
	}

	st, db, err := openStore(ctx, settings.Database)
	if err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "company data store ready", "driver", settings.Database.Driver)

	return &App{
		Backends:    backends,
		CompanyData: companyservice.New(st, companyOpts...),
		Catalog:     cat,
		db:          db,
	}, nil
}

// Close releases the database connection, if any.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func openStore(ctx context.Context, cfg config.Database) (companyservice.Store, *sql.DB, error) {
	var newStore func(*sql.DB) *store.SQLStore
	switch cfg.Driver {
	case config.DriverMemory:
		return store.NewInMemory(), nil, nil
	case config.DriverSQLite:
		newStore = store.NewSQLite
	case config.DriverPostgres:
		newStore = store.NewPostgres
	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}
	st := newStore(db)
	if err := st.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return st, db, nil
}
