package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"companyatlas/internal/admin"
	"companyatlas/internal/app"
	backendshandler "companyatlas/internal/backends/handler"
	companyhandler "companyatlas/internal/companydata/handler"
	"companyatlas/internal/platform/config"
	"companyatlas/internal/platform/httpserver"
	"companyatlas/internal/platform/logger"
	adminmw "companyatlas/pkg/platform/middleware/admin"
	"companyatlas/pkg/platform/middleware/request"
	"companyatlas/pkg/platform/middleware/requesttime"
)

const gaugeRefreshInterval = time.Minute

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings, err := config.LoadSettings(cfg.SettingsPath)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	a, err := app.New(ctx, settings, log, reg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn("closing store failed", "error", err)
		}
	}()

	if cfg.AdminToken == "" {
		log.Warn("COMPANYATLAS_ADMIN_TOKEN is empty; admin routes reject every request")
	}
	r, err := newRouter(cfg, a, log, reg)
	if err != nil {
		return err
	}

	srv := httpserver.New(cfg.Addr, r)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpserver.Run(gctx, srv, log)
	})
	g.Go(func() error {
		refreshBackendGauges(gctx, a, log)
		return nil
	})
	return g.Wait()
}

// refreshBackendGauges re-enumerates backends periodically so the status
// gauges stay current between admin page views.
func refreshBackendGauges(ctx context.Context, a *app.App, log *slog.Logger) {
	ticker := time.NewTicker(gaugeRefreshInterval)
	defer ticker.Stop()
	for {
		n := a.Backends.ListBackends(ctx).Count()
		log.DebugContext(ctx, "backend gauges refreshed", "backends", n)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// adminModels is the admin registration table.
func adminModels() []admin.Model {
	return []admin.Model{
		{Name: "backends", Label: "Backends", Path: "/admin/backends", Virtual: true},
		{Name: "backend_search", Label: "Backend search", Path: "/admin/backends/{name}/search", Virtual: true},
		{
			Name:        "company_data",
			Label:       "Company data",
			Path:        "/admin/companies/{id}/data",
			Permissions: []admin.Permission{admin.PermissionView, admin.PermissionAdd, admin.PermissionChange},
		},
		{
			Name:        "company_documents",
			Label:       "Company documents",
			Path:        "/admin/companies/{id}/documents",
			Permissions: []admin.Permission{admin.PermissionView, admin.PermissionAdd},
		},
		{
			Name:        "company_events",
			Label:       "Company events",
			Path:        "/admin/companies/{id}/events",
			Permissions: []admin.Permission{admin.PermissionView, admin.PermissionAdd},
		},
	}
}

func newRouter(cfg config.Server, a *app.App, log *slog.Logger, gatherer prometheus.Gatherer) (http.Handler, error) {
	site, err := admin.NewSite(adminModels()...)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(request.Logger(log))
	r.Use(request.Recovery(log))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(adminmw.RequireAdminToken(cfg.AdminToken, log))
		site.Register(r)
		backendshandler.New(a.Backends, log).Register(r)
		companyhandler.New(a.CompanyData, log).Register(r)
	})
	return r, nil
}
