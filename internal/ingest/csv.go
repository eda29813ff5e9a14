package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"craque/internal/engine"
)

const dateLayout = "2006-01-02"

// CSVSource reads the dataset from a directory of CSV files:
// teams.csv, competitions.csv, players.csv, matches.csv,
// contracts.csv, appearances.csv. Every file starts with a header row.
type CSVSource struct {
	dir string
}

func NewCSVSource(dir string) *CSVSource {
	return &CSVSource{dir: dir}
}

func (s *CSVSource) Name() string {
	return fmt.Sprintf("csv directory %s", s.dir)
}

func (s *CSVSource) Load(ctx context.Context) (*Dataset, error) {
	dataset := &Dataset{}

	if err := s.readFile(ctx, "teams.csv",
		[]string{"team_id", "name", "city", "stadium", "founded", "colors"},
		func(row []string) error {
			founded, err := parseOptionalInt(row[4])
			if err != nil {
				return fmt.Errorf("founded: %w", err)
			}
			dataset.Teams = append(dataset.Teams, engine.Team{
				ID:      row[0],
				Name:    row[1],
				City:    row[2],
				Stadium: row[3],
				Founded: founded,
				Colors:  row[5],
			})
			return nil
		}, dataset); err != nil {
		return nil, err
	}

	if err := s.readFile(ctx, "competitions.csv",
		[]string{"competition_id", "name", "season", "kind"},
		func(row []string) error {
			dataset.Competitions = append(dataset.Competitions, engine.Competition{
				ID:     row[0],
				Name:   row[1],
				Season: row[2],
				Kind:   row[3],
			})
			return nil
		}, dataset); err != nil {
		return nil, err
	}

	if err := s.readFile(ctx, "players.csv",
		[]string{"player_id", "name", "position", "nationality", "birth_date", "jersey"},
		func(row []string) error {
			birthDate, err := parseOptionalDate(row[4])
			if err != nil {
				return fmt.Errorf("birth_date: %w", err)
			}
			jersey, err := parseOptionalInt(row[5])
			if err != nil {
				return fmt.Errorf("jersey: %w", err)
			}
			dataset.Players = append(dataset.Players, engine.Player{
				ID:          row[0],
				Name:        row[1],
				Position:    row[2],
				Nationality: row[3],
				BirthDate:   birthDate,
				Jersey:      jersey,
			})
			return nil
		}, dataset); err != nil {
		return nil, err
	}

	if err := s.readFile(ctx, "matches.csv",
		[]string{"match_id", "date", "home_team_id", "away_team_id", "home_score", "away_score", "competition_id", "season", "attendance"},
		func(row []string) error {
			date, err := time.Parse(dateLayout, row[1])
			if err != nil {
				return fmt.Errorf("date: %w", err)
			}
			attendance, err := parseOptionalInt(row[8])
			if err != nil {
				return fmt.Errorf("attendance: %w", err)
			}
			m := engine.Match{
				ID:            row[0],
				Date:          date,
				HomeTeamID:    row[2],
				AwayTeamID:    row[3],
				CompetitionID: row[6],
				Season:        row[7],
				Attendance:    attendance,
			}
			// Empty score cells mean the match has not been played.
			if row[4] != "" || row[5] != "" {
				home, err := strconv.Atoi(row[4])
				if err != nil {
					return fmt.Errorf("home_score: %w", err)
				}
				away, err := strconv.Atoi(row[5])
				if err != nil {
					return fmt.Errorf("away_score: %w", err)
				}
				m.HomeScore, m.AwayScore, m.Finished = home, away, true
			}
			dataset.Matches = append(dataset.Matches, m)
			return nil
		}, dataset); err != nil {
		return nil, err
	}

	if err := s.readFile(ctx, "contracts.csv",
		[]string{"player_id", "team_id", "start_date", "end_date"},
		func(row []string) error {
			start, err := time.Parse(dateLayout, row[2])
			if err != nil {
				return fmt.Errorf("start_date: %w", err)
			}
			end, err := parseOptionalDate(row[3])
			if err != nil {
				return fmt.Errorf("end_date: %w", err)
			}
			dataset.Contracts = append(dataset.Contracts, engine.Contract{
				PlayerID: row[0],
				TeamID:   row[1],
				Start:    start,
				End:      end,
			})
			return nil
		}, dataset); err != nil {
		return nil, err
	}

	if err := s.readFile(ctx, "appearances.csv",
		[]string{"player_id", "match_id", "goals", "minutes"},
		func(row []string) error {
			goals, err := strconv.Atoi(row[2])
			if err != nil {
				return fmt.Errorf("goals: %w", err)
			}
			minutes, err := parseOptionalInt(row[3])
			if err != nil {
				return fmt.Errorf("minutes: %w", err)
			}
			dataset.Appearances = append(dataset.Appearances, engine.Appearance{
				PlayerID: row[0],
				MatchID:  row[1],
				Goals:    goals,
				Minutes:  minutes,
			})
			return nil
		}, dataset); err != nil {
		return nil, err
	}

	return dataset, nil
}

// readFile streams one CSV file, checks its header, and hands each row
// to parse. Rows that fail to parse are recorded on the dataset and
// skipped rather than aborting the load.
func (s *CSVSource) readFile(ctx context.Context, name string, header []string, parse func(row []string) error, dataset *Dataset) error {
	path := filepath.Join(s.dir, name)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	first, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading %s header: %w", name, err)
	}
	if err := checkHeader(first, header); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		line++
		if err != nil {
			return fmt.Errorf("reading %s line %d: %w", name, line, err)
		}
		if err := parse(row); err != nil {
			dataset.Errors = append(dataset.Errors, fmt.Errorf("%s line %d: %w", name, line, err))
		}
	}
}

func checkHeader(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("expected %d columns, got %d", len(want), len(got))
	}
	for i := range want {
		if !strings.EqualFold(strings.TrimSpace(got[i]), want[i]) {
			return fmt.Errorf("expected column %q, got %q", want[i], got[i])
		}
	}
	return nil
}

func parseOptionalInt(s string) (int, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func parseOptionalDate(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}
