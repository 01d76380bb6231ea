/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// json.go implements the "sift json" command: show a JSON document's
// structure (types and shapes) without its values.

package cmd

import (
	"fmt"
	"os"

	"github.com/jpl-au/sift/internal/schema"
	"github.com/jpl-au/sift/internal/track"
	"github.com/spf13/cobra"
)

func newJSONCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "json <file>",
		Short: "Show the structure of a JSON file without its values",
		Long: `Inspect a JSON document and print a compact structural schema.

  sift json response.json             # types and shapes, not values
  sift json --depth 3 big.json        # cap traversal depth

Arrays are sampled by their first element, objects list at most 16 keys,
and long strings report only their length. The output fits a screen no
matter how large the document is.`,
		Args: cobra.ExactArgs(1),
		RunE: runJSON,
	}
	c.Flags().Int("depth", 0, "Maximum traversal depth (default from config)")
	return c
}

func runJSON(c *cobra.Command, args []string) error {
	file := args[0]

	maxDepth, _ := c.Flags().GetInt("depth")
	if maxDepth <= 0 {
		maxDepth = Config().MaxDepth()
	}

	if Verbose() > 0 {
		fmt.Fprintf(os.Stderr, "Analyzing JSON: %s\n", file)
	}

	content, err := os.ReadFile(file)
	if err != nil {
		return PrintJSONError(fmt.Errorf("failed to read file %s: %w", file, err))
	}

	value, err := schema.Decode(content)
	if err != nil {
		return PrintJSONError(fmt.Errorf("failed to parse JSON %s: %w", file, err))
	}

	rendered := schema.Infer(value, 0, maxDepth)
	fmt.Fprintln(Out(), rendered)

	track.Event("cli:json", "cat "+file).
		Input(string(content)).
		Output(rendered).
		Write(nil)

	if JSON() {
		return PrintJSON(map[string]string{"schema": rendered})
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newJSONCmd())
}
