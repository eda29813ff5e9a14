package main

import (
	"context"
	"fmt"
	"os"

	"craque/internal/config"
	"craque/internal/engine"
	"craque/internal/ingest"
)

const configFile = "craque.yaml"

func openSource(cfg *config.ProjectConfig) (ingest.Source, error) {
	switch cfg.Source.Driver {
	case config.DriverCSV:
		return ingest.NewCSVSource(cfg.Source.Path), nil
	case config.DriverSQLite:
		return ingest.NewSQLiteSource(cfg.Source.DSN), nil
	case config.DriverPostgres:
		return ingest.NewPostgresSource(cfg.Source.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported source driver: %s", cfg.Source.Driver)
	}
}

func loadSnapshot(ctx context.Context) (*engine.Snapshot, *ingest.Result, error) {
	cfg, err := config.LoadProjectConfig(configFile)
	if err != nil {
		return nil, nil, err
	}

	source, err := openSource(cfg)
	if err != nil {
		return nil, nil, err
	}

	return ingest.Run(ctx, source)
}

// loadEngine builds the snapshot from the configured source and
// returns a ready engine. Records skipped during ingestion are
// reported on stderr but do not abort the load.
func loadEngine(ctx context.Context) (*engine.Engine, error) {
	snapshot, result, err := loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range result.Errors {
		fmt.Fprintf(os.Stderr, "warning: skipped record: %v\n", item)
	}

	eng := engine.New()
	eng.Load(snapshot)
	return eng, nil
}
