package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"craque/internal/engine"
)

// PostgresSource reads the dataset from a Postgres database with the
// same table layout the SQLite source expects, except that date
// columns use the native date type and unplayed matches carry NULL
// scores.
type PostgresSource struct {
	dsn string
}

func NewPostgresSource(dsn string) *PostgresSource {
	return &PostgresSource{dsn: dsn}
}

func (s *PostgresSource) Name() string {
	return "postgres database"
}

func (s *PostgresSource) Load(ctx context.Context) (*Dataset, error) {
	pool, err := pgxpool.New(ctx, s.dsn)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	dataset := &Dataset{}

	rows, err := pool.Query(ctx, `SELECT team_id, name, city, COALESCE(stadium, ''), COALESCE(founded, 0), COALESCE(colors, '') FROM teams`)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	for rows.Next() {
		var t engine.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.City, &t.Stadium, &t.Founded, &t.Colors); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		dataset.Teams = append(dataset.Teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating teams: %w", err)
	}

	rows, err = pool.Query(ctx, `SELECT competition_id, name, season, kind FROM competitions`)
	if err != nil {
		return nil, fmt.Errorf("querying competitions: %w", err)
	}
	for rows.Next() {
		var c engine.Competition
		if err := rows.Scan(&c.ID, &c.Name, &c.Season, &c.Kind); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning competition: %w", err)
		}
		dataset.Competitions = append(dataset.Competitions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating competitions: %w", err)
	}

	rows, err = pool.Query(ctx, `SELECT player_id, name, position, nationality, birth_date, COALESCE(jersey, 0) FROM players`)
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	for rows.Next() {
		var p engine.Player
		var birthDate *time.Time
		if err := rows.Scan(&p.ID, &p.Name, &p.Position, &p.Nationality, &birthDate, &p.Jersey); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		if birthDate != nil {
			p.BirthDate = *birthDate
		}
		dataset.Players = append(dataset.Players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating players: %w", err)
	}

	rows, err = pool.Query(ctx, `SELECT match_id, date, home_team_id, away_team_id, home_score, away_score, competition_id, season, COALESCE(attendance, 0) FROM matches`)
	if err != nil {
		return nil, fmt.Errorf("querying matches: %w", err)
	}
	for rows.Next() {
		var m engine.Match
		var homeScore, awayScore *int
		if err := rows.Scan(&m.ID, &m.Date, &m.HomeTeamID, &m.AwayTeamID, &homeScore, &awayScore, &m.CompetitionID, &m.Season, &m.Attendance); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning match: %w", err)
		}
		if homeScore != nil && awayScore != nil {
			m.HomeScore, m.AwayScore, m.Finished = *homeScore, *awayScore, true
		}
		dataset.Matches = append(dataset.Matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating matches: %w", err)
	}

	rows, err = pool.Query(ctx, `SELECT player_id, team_id, start_date, end_date FROM contracts`)
	if err != nil {
		return nil, fmt.Errorf("querying contracts: %w", err)
	}
	for rows.Next() {
		var c engine.Contract
		var end *time.Time
		if err := rows.Scan(&c.PlayerID, &c.TeamID, &c.Start, &end); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning contract: %w", err)
		}
		if end != nil {
			c.End = *end
		}
		dataset.Contracts = append(dataset.Contracts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contracts: %w", err)
	}

	rows, err = pool.Query(ctx, `SELECT player_id, match_id, goals, COALESCE(minutes, 0) FROM appearances`)
	if err != nil {
		return nil, fmt.Errorf("querying appearances: %w", err)
	}
	for rows.Next() {
		var a engine.Appearance
		if err := rows.Scan(&a.PlayerID, &a.MatchID, &a.Goals, &a.Minutes); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning appearance: %w", err)
		}
		dataset.Appearances = append(dataset.Appearances, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating appearances: %w", err)
	}

	return dataset, nil
}
