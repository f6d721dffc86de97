package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"companyatlas/internal/app"
	"companyatlas/internal/platform/config"
	"companyatlas/internal/platform/logger"
)

var (
	settingsPath string
	outputFormat string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "atlasctl",
	Short: "Inspect company registry backends and company data",
	Long: `atlasctl reads the same COMPANYATLAS settings as the server.

It lists backend diagnostics, runs ad-hoc backend searches and reads or
writes typed company data without going through the admin HTTP API.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", os.Getenv("COMPANYATLAS_SETTINGS"),
		"Settings file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}

// openApp wires the application for one command.
func openApp(ctx context.Context, stderr io.Writer) (*app.App, error) {
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}
	return app.New(ctx, settings, logger.New(stderr, "text", logLevel), nil)
}

// render writes v as indented JSON, or calls table for the tabular form.
func render(w io.Writer, v any, table func(tw *tabwriter.Writer)) error {
	switch outputFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		table(tw)
		return tw.Flush()
	}
	return fmt.Errorf("unknown output format %q", outputFormat)
}
