package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"craque/internal/engine"
	"craque/internal/mcp"
	"craque/internal/validate"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		RunE:  runServe,
	}
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	snapshot, result, err := loadSnapshot(ctx)
	if err != nil {
		return err
	}
	for _, item := range result.Errors {
		fmt.Fprintf(os.Stderr, "warning: skipped record: %v\n", item)
	}

	report, err := validate.Run(snapshot)
	if err != nil {
		return err
	}
	for _, issue := range report.Issues {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", issue.Severity, issue.Entity, issue.Message)
	}
	if report.HasErrors() {
		return fmt.Errorf("refusing to serve: dataset failed consistency checks")
	}

	eng := engine.New()
	eng.Load(snapshot)

	server := mcp.NewServer(eng, version)
	return server.Run(ctx, &sdk.StdioTransport{})
}
