// Package mcp implements the Model Context Protocol server, exposing sift's
// condensed search and JSON-structure reports to LLMs. This lets an AI
// assistant spend tokens on the summary instead of the raw tool output.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/sift/internal/config"
	"github.com/jpl-au/sift/internal/version"
	"github.com/mark3labs/mcp-go/server"
)

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP clients.
func Serve(cfg *config.Config) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h := &handlers{cfg: cfg}

	s := server.NewMCPServer(
		"sift",
		version.Short(),
		server.WithToolCapabilities(true),
	)

	registerTools(s, h)

	slog.Info("sift MCP server ready", "version", version.Short(), "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to configuration.
type handlers struct {
	cfg *config.Config
}
