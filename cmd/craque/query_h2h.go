package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func queryHeadToHeadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "h2h <team-a-id> <team-b-id>",
		Short: "Head-to-head record between two teams",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryHeadToHead(args[0], args[1])
		},
	}
	return cmd
}

func runQueryHeadToHead(teamAID, teamBID string) error {
	ctx := context.Background()

	eng, err := loadEngine(ctx)
	if err != nil {
		return err
	}

	teamA, err := eng.Team(teamAID)
	if err != nil {
		return err
	}
	teamB, err := eng.Team(teamBID)
	if err != nil {
		return err
	}

	record, err := eng.HeadToHead(teamAID, teamBID)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s vs %s\n", teamA.Name, teamB.Name)
	fmt.Fprintf(os.Stdout, "  Total matches: %d\n", record.TotalMatches)
	fmt.Fprintf(os.Stdout, "  %s wins: %d\n", teamA.Name, record.WinsA)
	fmt.Fprintf(os.Stdout, "  %s wins: %d\n", teamB.Name, record.WinsB)
	fmt.Fprintf(os.Stdout, "  Draws: %d\n", record.Draws)
	fmt.Fprintf(os.Stdout, "  Goals: %s %d - %d %s\n", teamA.Name, record.GoalsA, record.GoalsB, teamB.Name)
	return nil
}
