package ingest

import (
	"context"
	"fmt"

	"craque/internal/engine"
)

// Dataset is the raw record set a source produces. Rows a source had
// to skip are reported through Errors without failing the whole load.
type Dataset struct {
	Players      []engine.Player
	Teams        []engine.Team
	Competitions []engine.Competition
	Matches      []engine.Match
	Contracts    []engine.Contract
	Appearances  []engine.Appearance
	Errors       []error
}

// Source loads the raw dataset from an external system: a CSV
// directory, a SQLite file, or a Postgres database.
type Source interface {
	Name() string
	Load(ctx context.Context) (*Dataset, error)
}

type Result struct {
	Players      int
	Teams        int
	Competitions int
	Matches      int
	Contracts    int
	Appearances  int
	Skipped      int
	Errors       []error
}

// Run loads the dataset from the source, validates each record, and
// builds the immutable snapshot. Malformed records are skipped and
// reported through Result.Errors; dangling references make the build
// itself fail.
func Run(ctx context.Context, source Source) (*engine.Snapshot, *Result, error) {
	dataset, err := source.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading from %s: %w", source.Name(), err)
	}

	result := &Result{}
	result.Errors = append(result.Errors, dataset.Errors...)
	result.Skipped += len(dataset.Errors)

	builder := engine.NewBuilder()
	for _, t := range dataset.Teams {
		if err := builder.AddTeam(t); err != nil {
			result.Errors = append(result.Errors, err)
			result.Skipped++
			continue
		}
		result.Teams++
	}
	for _, c := range dataset.Competitions {
		if err := builder.AddCompetition(c); err != nil {
			result.Errors = append(result.Errors, err)
			result.Skipped++
			continue
		}
		result.Competitions++
	}
	for _, p := range dataset.Players {
		if err := builder.AddPlayer(p); err != nil {
			result.Errors = append(result.Errors, err)
			result.Skipped++
			continue
		}
		result.Players++
	}
	for _, m := range dataset.Matches {
		if err := builder.AddMatch(m); err != nil {
			result.Errors = append(result.Errors, err)
			result.Skipped++
			continue
		}
		result.Matches++
	}
	for _, c := range dataset.Contracts {
		if err := builder.AddContract(c); err != nil {
			result.Errors = append(result.Errors, err)
			result.Skipped++
			continue
		}
		result.Contracts++
	}
	for _, a := range dataset.Appearances {
		if err := builder.AddAppearance(a); err != nil {
			result.Errors = append(result.Errors, err)
			result.Skipped++
			continue
		}
		result.Appearances++
	}

	snapshot, err := builder.Build()
	if err != nil {
		return nil, result, fmt.Errorf("building snapshot: %w", err)
	}
	return snapshot, result, nil
}
