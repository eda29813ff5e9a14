package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"craque/internal/engine"
)

func querySearchCmd() *cobra.Command {
	var team string
	var position string
	cmd := &cobra.Command{
		Use:   "search <name>",
		Short: "Search players by partial name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuerySearch(args[0], team, position)
		},
	}
	cmd.Flags().StringVar(&team, "team", "", "Restrict to players who played for a team matching this name")
	cmd.Flags().StringVar(&position, "position", "", "Restrict to an exact position")
	return cmd
}

func runQuerySearch(name, team, position string) error {
	ctx := context.Background()

	eng, err := loadEngine(ctx)
	if err != nil {
		return err
	}

	filters := map[string]string{}
	if team != "" {
		filters[engine.FilterTeam] = team
	}
	if position != "" {
		filters[engine.FilterPosition] = position
	}

	players, err := eng.SearchPlayers(name, filters)
	if err != nil {
		return err
	}
	if len(players) == 0 {
		fmt.Fprintln(os.Stdout, "No players found.")
		return nil
	}

	for _, p := range players {
		fmt.Fprintf(os.Stdout, "%s  %s (%s, %s)\n", p.ID, p.Name, p.Position, p.Nationality)
	}
	return nil
}

func queryTeamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams <name>",
		Short: "Search teams by partial name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueryTeams(args[0])
		},
	}
	return cmd
}

func runQueryTeams(name string) error {
	ctx := context.Background()

	eng, err := loadEngine(ctx)
	if err != nil {
		return err
	}

	teams, err := eng.SearchTeams(name)
	if err != nil {
		return err
	}
	if len(teams) == 0 {
		fmt.Fprintln(os.Stdout, "No teams found.")
		return nil
	}

	for _, t := range teams {
		fmt.Fprintf(os.Stdout, "%s  %s (%s)\n", t.ID, t.Name, t.City)
	}
	return nil
}
