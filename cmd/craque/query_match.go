package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"craque/internal/engine"

	"github.com/spf13/cobra"
)

func queryMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <match-id>",
		Short: "Full details of a single match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryMatch(args[0])
		},
	}
	return cmd
}

func runQueryMatch(matchID string) error {
	ctx := context.Background()

	eng, err := loadEngine(ctx)
	if err != nil {
		return err
	}

	detail, err := eng.MatchDetails(matchID)
	if err != nil {
		return err
	}

	m := detail.Match
	fmt.Fprintf(os.Stdout, "%s: %s vs %s\n", m.Date.Format("2006-01-02"), detail.HomeTeam.Name, detail.AwayTeam.Name)
	if detail.Competition != nil {
		fmt.Fprintf(os.Stdout, "  Competition: %s (%s)\n", detail.Competition.Name, m.Season)
	}
	if m.Finished {
		fmt.Fprintf(os.Stdout, "  Score: %d - %d\n", m.HomeScore, m.AwayScore)
	} else {
		fmt.Fprintln(os.Stdout, "  Score: not played")
	}
	if m.Attendance > 0 {
		fmt.Fprintf(os.Stdout, "  Attendance: %d\n", m.Attendance)
	}
	for _, s := range detail.Scorers {
		fmt.Fprintf(os.Stdout, "  Scorer: %s (%d)\n", s.PlayerName, s.Goals)
	}
	return nil
}

func queryMatchesCmd() *cobra.Command {
	var (
		teamName string
		fromDate string
		toDate   string
	)
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "List matches by team name or date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryMatches(teamName, fromDate, toDate)
		},
	}
	cmd.Flags().StringVar(&teamName, "team", "", "Team name (fuzzy match)")
	cmd.Flags().StringVar(&fromDate, "from", "", "Start date YYYY-MM-DD")
	cmd.Flags().StringVar(&toDate, "to", "", "End date YYYY-MM-DD")
	return cmd
}

func runQueryMatches(teamName, fromDate, toDate string) error {
	ctx := context.Background()

	eng, err := loadEngine(ctx)
	if err != nil {
		return err
	}

	var matches []*engine.Match
	switch {
	case teamName != "":
		matches, err = eng.MatchesByTeam(teamName)
	case fromDate != "" && toDate != "":
		var from, to time.Time
		from, err = time.Parse("2006-01-02", fromDate)
		if err != nil {
			return fmt.Errorf("parsing --from date: %w", err)
		}
		to, err = time.Parse("2006-01-02", toDate)
		if err != nil {
			return fmt.Errorf("parsing --to date: %w", err)
		}
		matches, err = eng.MatchesByDateRange(from, to)
	default:
		return fmt.Errorf("either --team or both --from and --to are required")
	}
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches found.")
		return nil
	}

	for _, m := range matches {
		home, away := m.HomeTeamID, m.AwayTeamID
		if t, err := eng.Team(m.HomeTeamID); err == nil {
			home = t.Name
		}
		if t, err := eng.Team(m.AwayTeamID); err == nil {
			away = t.Name
		}
		if m.Finished {
			fmt.Fprintf(os.Stdout, "%s  %s  %s %d - %d %s\n", m.ID, m.Date.Format("2006-01-02"), home, m.HomeScore, m.AwayScore, away)
		} else {
			fmt.Fprintf(os.Stdout, "%s  %s  %s vs %s (not played)\n", m.ID, m.Date.Format("2006-01-02"), home, away)
		}
	}
	return nil
}
