package main

import "github.com/spf13/cobra"

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run graph queries from the CLI",
	}
	cmd.AddCommand(querySearchCmd())
	cmd.AddCommand(queryTeamsCmd())
	cmd.AddCommand(queryCareerCmd())
	cmd.AddCommand(queryRosterCmd())
	cmd.AddCommand(queryRivalsCmd())
	cmd.AddCommand(queryTeammatesCmd())
	cmd.AddCommand(queryScorersCmd())
	cmd.AddCommand(queryTeamStatsCmd())
	cmd.AddCommand(queryPlayerStatsCmd())
	cmd.AddCommand(queryHeadToHeadCmd())
	cmd.AddCommand(queryMatchCmd())
	cmd.AddCommand(queryMatchesCmd())
	return cmd
}
