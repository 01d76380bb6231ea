// tools.go implements the MCP tools mirroring the CLI commands.
//
// Design: tools return the same rendered text reports the CLI prints, not
// structured JSON. The reports are already shaped for LLM consumption -
// that is the whole point of sift - so re-encoding them would only add
// tokens. Every tool call is recorded by the usage tracker under an "mcp:"
// source so CLI and MCP savings aggregate separately.

package mcp

import (
	"context"
	"fmt"
	"os"

	"github.com/jpl-au/sift/internal/report"
	"github.com/jpl-au/sift/internal/ripgrep"
	"github.com/jpl-au/sift/internal/schema"
	"github.com/jpl-au/sift/internal/track"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerTools exposes the grep and json pipelines as MCP tools.
func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("sift_grep",
			mcp.WithDescription("Search a file tree and return a condensed, capped match report. Much cheaper than raw grep output."),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("Search pattern (regex, passed to ripgrep)")),
			mcp.WithString("path", mcp.Description("File or directory to search (default current directory)")),
			mcp.WithNumber("max_len", mcp.Description("Maximum length of each rendered line")),
			mcp.WithNumber("max_results", mcp.Description("Maximum number of rendered matches")),
			mcp.WithBoolean("context", mcp.Description("Prefer tight context-only excerpts around the match")),
		),
		h.grep,
	)

	s.AddTool(
		mcp.NewTool("sift_json",
			mcp.WithDescription("Return the structural schema of a JSON file: types and shapes, never values. Bounded output regardless of file size."),
			mcp.WithString("file", mcp.Required(), mcp.Description("Path to the JSON file")),
			mcp.WithNumber("depth", mcp.Description("Maximum traversal depth")),
		),
		h.json,
	)
}

// grep handles sift_grep tool calls.
func (h *handlers) grep(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("pattern is required"), nil //nolint:nilerr
	}
	path := getString(req, "path", ".")

	maxLen := getInt(req, "max_len", h.cfg.MaxLineLength())
	maxResults := getInt(req, "max_results", h.cfg.MaxResults())
	contextOnly := getBool(req, "context", false)

	raw, err := ripgrep.Search(pattern, path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rendered, _ := report.Render(ripgrep.Parse(raw, path), report.Options{
		Pattern:       pattern,
		MaxLineLength: maxLen,
		MaxResults:    maxResults,
		ContextOnly:   contextOnly,
	})

	track.Event("mcp:grep", fmt.Sprintf("grep -rn '%s' %s", pattern, path)).
		Input(raw).
		Output(rendered).
		Write(nil)

	return mcp.NewToolResultText(rendered), nil
}

// json handles sift_json tool calls.
func (h *handlers) json(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	file, err := req.RequireString("file")
	if err != nil {
		return mcp.NewToolResultError("file is required"), nil //nolint:nilerr
	}
	maxDepth := getInt(req, "depth", h.cfg.MaxDepth())

	content, err := os.ReadFile(file)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read file %s: %v", file, err)), nil
	}

	value, err := schema.Decode(content)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to parse JSON %s: %v", file, err)), nil
	}

	rendered := schema.Infer(value, 0, maxDepth)

	track.Event("mcp:json", "cat "+file).
		Input(string(content)).
		Output(rendered).
		Write(nil)

	return mcp.NewToolResultText(rendered), nil
}
