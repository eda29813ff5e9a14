package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DriverCSV      = "csv"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type ProjectConfig struct {
	Project string       `yaml:"project"`
	Version int          `yaml:"version"`
	Source  SourceConfig `yaml:"source"`
}

type SourceConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	DSN    string `yaml:"dsn"`
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}

	switch cfg.Source.Driver {
	case DriverCSV:
		if strings.TrimSpace(cfg.Source.Path) == "" {
			return fmt.Errorf("source path is required for the csv driver")
		}
	case DriverSQLite, DriverPostgres:
		if strings.TrimSpace(cfg.Source.DSN) == "" {
			return fmt.Errorf("source dsn is required for the %s driver", cfg.Source.Driver)
		}
	case "":
		return fmt.Errorf("source driver is required")
	default:
		return fmt.Errorf("unsupported source driver: %s", cfg.Source.Driver)
	}

	return nil
}
