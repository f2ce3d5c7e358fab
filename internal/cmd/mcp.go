package cmd

import (
	"github.com/harrison/uniqyou/internal/mcpserver"
	"github.com/spf13/cobra"
)

// NewMCPCommand creates the 'uniqyou mcp' command
func NewMCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve screening results to MCP hosts over stdio",
		Long: `Run a Model Context Protocol server on stdin/stdout.

Hosts can read uniqyou://screening/results and uniqyou://screening/responses
and call the screening_summary tool. Nothing is served unless sharing was
allowed with 'uniqyou consent --allow-ai-chat'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			a.log.LogInfo("Serving MCP on stdio")
			return mcpserver.Serve(a.store, Version)
		},
	}
}
