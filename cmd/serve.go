/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// serve.go implements the "sift serve" command: an MCP server over stdio
// exposing the grep and json pipelines as tools for LLM clients.

package cmd

import (
	"github.com/jpl-au/sift/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio)",
		Long: `Start a Model Context Protocol server over stdio.

Exposes sift_grep and sift_json as tools, so MCP clients (Claude Desktop,
editors) get the same condensed reports the CLI produces. Diagnostics go to
stderr; stdout carries only MCP JSON-RPC messages.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve(Config())
		},
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
}
