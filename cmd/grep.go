/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// grep.go implements the "sift grep" command: run an external search and
// compress the hits into a capped per-file report.
//
// Design: the external tool does the searching (rg, falling back to grep),
// sift only summarises. The raw tool output and the rendered report are both
// handed to the usage tracker so savings can be quantified later.

package cmd

import (
	"fmt"
	"os"

	"github.com/jpl-au/sift/internal/report"
	"github.com/jpl-au/sift/internal/ripgrep"
	"github.com/jpl-au/sift/internal/track"
	"github.com/spf13/cobra"
)

func newGrepCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "grep <pattern> [path]",
		Short: "Search files and summarise the matches",
		Long: `Search a file tree and compress the results into a bounded report.

  sift grep "TODO"                # search the current directory
  sift grep "connect" src/        # search a subtree
  sift grep -c "refresh" .        # tight context-only excerpts
  sift grep --max 20 "error" .    # cap rendered matches

Requires ripgrep (rg) or grep on PATH. Matches are grouped by file, files
are capped, per-file matches are capped at 10, and anything omitted is
reported as a +N count.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runGrep,
	}
	c.Flags().Int("max-len", 0, "Maximum length of each rendered line (default from config)")
	c.Flags().Int("max", 0, "Maximum number of rendered matches (default from config)")
	c.Flags().BoolP("context", "c", false, "Prefer tight context-only excerpts around the match")
	return c
}

func runGrep(c *cobra.Command, args []string) error {
	pattern := args[0]
	path := "."
	if len(args) > 1 {
		path = args[1]
	}

	maxLen, _ := c.Flags().GetInt("max-len")
	if maxLen <= 0 {
		maxLen = Config().MaxLineLength()
	}
	maxResults, _ := c.Flags().GetInt("max")
	if maxResults <= 0 {
		maxResults = Config().MaxResults()
	}
	contextOnly, _ := c.Flags().GetBool("context")

	if Verbose() > 0 {
		fmt.Fprintf(os.Stderr, "grep: '%s' in %s\n", pattern, path)
	}

	raw, err := ripgrep.Search(pattern, path)
	if err != nil {
		return PrintJSONError(fmt.Errorf("grep %q: %w", pattern, err))
	}

	rendered, total := report.Render(ripgrep.Parse(raw, path), report.Options{
		Pattern:       pattern,
		MaxLineLength: maxLen,
		MaxResults:    maxResults,
		ContextOnly:   contextOnly,
	})

	if total == 0 {
		fmt.Fprintln(Out(), rendered)
	} else {
		fmt.Fprint(Out(), rendered)
	}

	track.Event("cli:grep", fmt.Sprintf("grep -rn '%s' %s", pattern, path)).
		Input(raw).
		Output(rendered).
		Write(nil)

	if JSON() {
		return PrintJSON(map[string]any{"total": total, "report": rendered})
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newGrepCmd())
}
