package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func queryRivalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rivals <team-a-id> <team-b-id>",
		Short: "Players who played for both teams",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryRivals(args[0], args[1])
		},
	}
	return cmd
}

func runQueryRivals(teamAID, teamBID string) error {
	ctx := context.Background()

	eng, err := loadEngine(ctx)
	if err != nil {
		return err
	}

	players, err := eng.PlayersOfBothTeams(teamAID, teamBID)
	if err != nil {
		return err
	}
	if len(players) == 0 {
		fmt.Fprintln(os.Stdout, "No players found who played for both teams.")
		return nil
	}

	for _, p := range players {
		fmt.Fprintf(os.Stdout, "%s  %s (%s)\n", p.ID, p.Name, p.Position)
	}
	return nil
}

func queryTeammatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teammates <player-a-id> <player-b-id>",
		Short: "Players who were teammates of both players at some team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryTeammates(args[0], args[1])
		},
	}
	return cmd
}

func runQueryTeammates(playerAID, playerBID string) error {
	ctx := context.Background()

	eng, err := loadEngine(ctx)
	if err != nil {
		return err
	}

	players, err := eng.CommonTeammates(playerAID, playerBID)
	if err != nil {
		return err
	}
	if len(players) == 0 {
		fmt.Fprintln(os.Stdout, "No common teammates found.")
		return nil
	}

	for _, p := range players {
		fmt.Fprintf(os.Stdout, "%s  %s (%s)\n", p.ID, p.Name, p.Position)
	}
	return nil
}
