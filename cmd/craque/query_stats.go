package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func queryTeamStatsCmd() *cobra.Command {
	var season string
	cmd := &cobra.Command{
		Use:   "teamstats <team-id>",
		Short: "Win/draw/loss record and goal totals for a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryTeamStats(args[0], season)
		},
	}
	cmd.Flags().StringVar(&season, "season", "", "Restrict to a season year")
	return cmd
}

func runQueryTeamStats(teamID, season string) error {
	ctx := context.Background()

	eng, err := loadEngine(ctx)
	if err != nil {
		return err
	}

	stats, err := eng.TeamStatistics(teamID, season)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s", stats.TeamName)
	if season != "" {
		fmt.Fprintf(os.Stdout, " (season %s)", season)
	}
	fmt.Fprintln(os.Stdout, "")
	fmt.Fprintf(os.Stdout, "  Matches played: %d\n", stats.MatchesPlayed)
	fmt.Fprintf(os.Stdout, "  Wins:           %d\n", stats.Wins)
	fmt.Fprintf(os.Stdout, "  Draws:          %d\n", stats.Draws)
	fmt.Fprintf(os.Stdout, "  Losses:         %d\n", stats.Losses)
	fmt.Fprintf(os.Stdout, "  Goals for:      %d\n", stats.GoalsFor)
	fmt.Fprintf(os.Stdout, "  Goals against:  %d\n", stats.GoalsAgainst)
	return nil
}

func queryPlayerStatsCmd() *cobra.Command {
	var season string
	cmd := &cobra.Command{
		Use:   "playerstats <player-id>",
		Short: "Goals, appearances and minutes for a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryPlayerStats(args[0], season)
		},
	}
	cmd.Flags().StringVar(&season, "season", "", "Restrict to a season year")
	return cmd
}

func runQueryPlayerStats(playerID, season string) error {
	ctx := context.Background()

	eng, err := loadEngine(ctx)
	if err != nil {
		return err
	}

	stats, err := eng.PlayerStatistics(playerID, season)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s", stats.PlayerName)
	if season != "" {
		fmt.Fprintf(os.Stdout, " (season %s)", season)
	}
	fmt.Fprintln(os.Stdout, "")
	fmt.Fprintf(os.Stdout, "  Appearances: %d\n", stats.Appearances)
	fmt.Fprintf(os.Stdout, "  Goals:       %d\n", stats.Goals)
	fmt.Fprintf(os.Stdout, "  Minutes:     %d\n", stats.Minutes)
	return nil
}
