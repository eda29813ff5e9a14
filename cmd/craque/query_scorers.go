package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func queryScorersCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "scorers <competition-id> <season>",
		Short: "Top scorers of a competition season",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryScorers(args[0], args[1], limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum entries to return (0 for all)")
	return cmd
}

func runQueryScorers(competitionID, season string, limit int) error {
	ctx := context.Background()

	eng, err := loadEngine(ctx)
	if err != nil {
		return err
	}

	scorers, err := eng.TopScorers(competitionID, season, limit)
	if err != nil {
		return err
	}
	if len(scorers) == 0 {
		fmt.Fprintln(os.Stdout, "No goals recorded.")
		return nil
	}

	for i, entry := range scorers {
		fmt.Fprintf(os.Stdout, "%2d. %s - %d goals\n", i+1, entry.PlayerName, entry.Goals)
	}
	return nil
}
