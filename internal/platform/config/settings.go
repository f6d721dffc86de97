package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	keyCatalogPath = "companyatlas.catalog_path"
	keyPackages    = "companyatlas.packages"
	keyConfig      = "companyatlas.config"
	keyDBDriver    = "companyatlas.database.driver"
	keyDBDSN       = "companyatlas.database.dsn"
	keySearchLimit = "companyatlas.search_limit"
)

// Database drivers accepted in settings.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Settings is the COMPANYATLAS block: where backends are declared, which
// packages and configuration keys the probes see, and where company data lives.
type Settings struct {
	CatalogPath string
	Packages    []string
	Config      map[string]any
	Database    Database
	SearchLimit int
}

type Database struct {
	Driver string
	DSN    string
}

// LoadSettings reads the settings file at path (yaml, json or toml by
// extension) and applies COMPANYATLAS_* environment overrides, e.g.
// COMPANYATLAS_DATABASE_DSN. An empty path uses defaults and the environment.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault(keyCatalogPath, "configs/backends.yaml")
	v.SetDefault(keyPackages, []string{})
	v.SetDefault(keyConfig, map[string]any{})
	v.SetDefault(keyDBDriver, DriverMemory)
	v.SetDefault(keyDBDSN, "")
	v.SetDefault(keySearchLimit, 20)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read settings %s: %w", path, err)
		}
	}

	s := &Settings{
		CatalogPath: v.GetString(keyCatalogPath),
		Packages:    v.GetStringSlice(keyPackages),
		Config:      v.GetStringMap(keyConfig),
		Database: Database{
			Driver: strings.ToLower(v.GetString(keyDBDriver)),
			DSN:    v.GetString(keyDBDSN),
		},
		SearchLimit: v.GetInt(keySearchLimit),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) Validate() error {
	if strings.TrimSpace(s.CatalogPath) == "" {
		return errors.New("catalog_path is required")
	}
	switch s.Database.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if s.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for driver %s", s.Database.Driver)
		}
	default:
		return fmt.Errorf("unknown database driver %q", s.Database.Driver)
	}
	return nil
}
