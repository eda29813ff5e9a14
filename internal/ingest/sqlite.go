package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"craque/internal/engine"

	_ "modernc.org/sqlite"
)

// SQLiteSource reads the dataset from a SQLite database with the
// tables teams, competitions, players, matches, contracts and
// appearances. Dates are stored as ISO-8601 text.
type SQLiteSource struct {
	dsn string
}

func NewSQLiteSource(dsn string) *SQLiteSource {
	return &SQLiteSource{dsn: dsn}
}

func (s *SQLiteSource) Name() string {
	return fmt.Sprintf("sqlite database %s", s.dsn)
}

func (s *SQLiteSource) Load(ctx context.Context) (*Dataset, error) {
	db, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("pinging sqlite: %w", err)
	}

	dataset := &Dataset{}

	rows, err := db.QueryContext(ctx, `SELECT team_id, name, city, stadium, founded, colors FROM teams`)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	if err := scanRows(rows, func(scan scanner) error {
		var t engine.Team
		var stadium, colors sql.NullString
		var founded sql.NullInt64
		if err := scan(&t.ID, &t.Name, &t.City, &stadium, &founded, &colors); err != nil {
			return err
		}
		t.Stadium, t.Founded, t.Colors = stadium.String, int(founded.Int64), colors.String
		dataset.Teams = append(dataset.Teams, t)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("scanning teams: %w", err)
	}

	rows, err = db.QueryContext(ctx, `SELECT competition_id, name, season, kind FROM competitions`)
	if err != nil {
		return nil, fmt.Errorf("querying competitions: %w", err)
	}
	if err := scanRows(rows, func(scan scanner) error {
		var c engine.Competition
		if err := scan(&c.ID, &c.Name, &c.Season, &c.Kind); err != nil {
			return err
		}
		dataset.Competitions = append(dataset.Competitions, c)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("scanning competitions: %w", err)
	}

	rows, err = db.QueryContext(ctx, `SELECT player_id, name, position, nationality, birth_date, jersey FROM players`)
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	if err := scanRows(rows, func(scan scanner) error {
		var p engine.Player
		var birthDate sql.NullString
		var jersey sql.NullInt64
		if err := scan(&p.ID, &p.Name, &p.Position, &p.Nationality, &birthDate, &jersey); err != nil {
			return err
		}
		if birthDate.Valid {
			parsed, err := time.Parse(dateLayout, birthDate.String)
			if err != nil {
				return fmt.Errorf("player %s birth_date: %w", p.ID, err)
			}
			p.BirthDate = parsed
		}
		p.Jersey = int(jersey.Int64)
		dataset.Players = append(dataset.Players, p)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("scanning players: %w", err)
	}

	rows, err = db.QueryContext(ctx, `SELECT match_id, date, home_team_id, away_team_id, home_score, away_score, competition_id, season, attendance FROM matches`)
	if err != nil {
		return nil, fmt.Errorf("querying matches: %w", err)
	}
	if err := scanRows(rows, func(scan scanner) error {
		var m engine.Match
		var date string
		var homeScore, awayScore, attendance sql.NullInt64
		if err := scan(&m.ID, &date, &m.HomeTeamID, &m.AwayTeamID, &homeScore, &awayScore, &m.CompetitionID, &m.Season, &attendance); err != nil {
			return err
		}
		parsed, err := time.Parse(dateLayout, date)
		if err != nil {
			return fmt.Errorf("match %s date: %w", m.ID, err)
		}
		m.Date = parsed
		if homeScore.Valid && awayScore.Valid {
			m.HomeScore, m.AwayScore, m.Finished = int(homeScore.Int64), int(awayScore.Int64), true
		}
		m.Attendance = int(attendance.Int64)
		dataset.Matches = append(dataset.Matches, m)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("scanning matches: %w", err)
	}

	rows, err = db.QueryContext(ctx, `SELECT player_id, team_id, start_date, end_date FROM contracts`)
	if err != nil {
		return nil, fmt.Errorf("querying contracts: %w", err)
	}
	if err := scanRows(rows, func(scan scanner) error {
		var c engine.Contract
		var start string
		var end sql.NullString
		if err := scan(&c.PlayerID, &c.TeamID, &start, &end); err != nil {
			return err
		}
		parsed, err := time.Parse(dateLayout, start)
		if err != nil {
			return fmt.Errorf("contract %s/%s start_date: %w", c.PlayerID, c.TeamID, err)
		}
		c.Start = parsed
		if end.Valid && end.String != "" {
			parsed, err := time.Parse(dateLayout, end.String)
			if err != nil {
				return fmt.Errorf("contract %s/%s end_date: %w", c.PlayerID, c.TeamID, err)
			}
			c.End = parsed
		}
		dataset.Contracts = append(dataset.Contracts, c)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("scanning contracts: %w", err)
	}

	rows, err = db.QueryContext(ctx, `SELECT player_id, match_id, goals, minutes FROM appearances`)
	if err != nil {
		return nil, fmt.Errorf("querying appearances: %w", err)
	}
	if err := scanRows(rows, func(scan scanner) error {
		var a engine.Appearance
		var minutes sql.NullInt64
		if err := scan(&a.PlayerID, &a.MatchID, &a.Goals, &minutes); err != nil {
			return err
		}
		a.Minutes = int(minutes.Int64)
		dataset.Appearances = append(dataset.Appearances, a)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("scanning appearances: %w", err)
	}

	return dataset, nil
}

type scanner func(dest ...any) error

func scanRows(rows *sql.Rows, each func(scan scanner) error) error {
	defer rows.Close()
	for rows.Next() {
		if err := each(rows.Scan); err != nil {
			return err
		}
	}
	return rows.Err()
}
