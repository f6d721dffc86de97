package config

import (
	"os"
	"strings"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr         string
	AdminToken   string
	LogFormat    string
	LogLevel     string
	SettingsPath string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:         envOr("COMPANYATLAS_ADDR", ":8080"),
		AdminToken:   os.Getenv("COMPANYATLAS_ADMIN_TOKEN"),
		LogFormat:    strings.ToLower(envOr("COMPANYATLAS_LOG_FORMAT", "json")),
		LogLevel:     strings.ToLower(envOr("COMPANYATLAS_LOG_LEVEL", "info")),
		SettingsPath: os.Getenv("COMPANYATLAS_SETTINGS"),
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
