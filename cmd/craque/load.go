package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func loadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load the dataset from the configured source and report what was ingested",
		RunE:  runLoad,
	}
	return cmd
}

func runLoad(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	_, result, err := loadSnapshot(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Load complete.")
	fmt.Fprintf(os.Stdout, "  Teams:        %d\n", result.Teams)
	fmt.Fprintf(os.Stdout, "  Competitions: %d\n", result.Competitions)
	fmt.Fprintf(os.Stdout, "  Players:      %d\n", result.Players)
	fmt.Fprintf(os.Stdout, "  Matches:      %d\n", result.Matches)
	fmt.Fprintf(os.Stdout, "  Contracts:    %d\n", result.Contracts)
	fmt.Fprintf(os.Stdout, "  Appearances:  %d\n", result.Appearances)
	fmt.Fprintf(os.Stdout, "  Skipped:      %d\n", result.Skipped)

	if len(result.Errors) > 0 {
		fmt.Fprintf(os.Stdout, "\nErrors (%d):\n", len(result.Errors))
		for _, item := range result.Errors {
			fmt.Fprintf(os.Stdout, "  - %v\n", item)
		}
		return fmt.Errorf("load completed with errors")
	}

	return nil
}
