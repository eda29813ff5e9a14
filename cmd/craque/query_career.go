package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func queryCareerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "career <player-id>",
		Short: "Career history of a player ordered by tenure start",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryCareer(args[0])
		},
	}
	return cmd
}

func runQueryCareer(playerID string) error {
	ctx := context.Background()

	eng, err := loadEngine(ctx)
	if err != nil {
		return err
	}

	player, err := eng.Player(playerID)
	if err != nil {
		return err
	}
	career, err := eng.CareerHistory(playerID)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s (%s)\n", player.Name, player.Position)
	if len(career) == 0 {
		fmt.Fprintln(os.Stdout, "No recorded tenures.")
		return nil
	}
	for _, entry := range career {
		end := "present"
		if !entry.End.IsZero() {
			end = entry.End.Format("2006-01-02")
		}
		fmt.Fprintf(os.Stdout, "  %s: %s to %s\n", entry.TeamName, entry.Start.Format("2006-01-02"), end)
	}
	return nil
}

func queryRosterCmd() *cobra.Command {
	var onDate string
	cmd := &cobra.Command{
		Use:   "roster <team-id>",
		Short: "Players under contract with a team (current roster by default)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryRoster(args[0], onDate)
		},
	}
	cmd.Flags().StringVar(&onDate, "on", "", "Roster date YYYY-MM-DD")
	return cmd
}

func runQueryRoster(teamID, onDate string) error {
	ctx := context.Background()

	eng, err := loadEngine(ctx)
	if err != nil {
		return err
	}

	var on time.Time
	if onDate != "" {
		parsed, err := time.Parse("2006-01-02", onDate)
		if err != nil {
			return fmt.Errorf("parsing --on date: %w", err)
		}
		on = parsed
	}

	players, err := eng.TeamRoster(teamID, on)
	if err != nil {
		return err
	}
	if len(players) == 0 {
		fmt.Fprintln(os.Stdout, "No players found.")
		return nil
	}

	for _, p := range players {
		fmt.Fprintf(os.Stdout, "%s  %s (%s)\n", p.ID, p.Name, p.Position)
	}
	return nil
}
