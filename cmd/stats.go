/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// stats.go implements the "sift stats" command: aggregated savings from the
// usage-tracking database. This is the payoff of tracking every invocation -
// it answers "how many tokens has sift actually kept out of the context
// window".

package cmd

import (
	"fmt"

	"github.com/jpl-au/sift/internal/track"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show usage-tracking totals per command",
		Long: `Show aggregated raw vs condensed sizes from the tracking database.

  sift stats

One row per source (cli:grep, cli:json, mcp:...). Raw is the collaborator
output sift consumed; out is the report it rendered; saved is the token
difference.`,
		Args: cobra.NoArgs,
		RunE: runStats,
	}
}

func runStats(_ *cobra.Command, _ []string) error {
	stats, err := track.Summary()
	if err != nil {
		return PrintJSONError(fmt.Errorf("stats: %w", err))
	}

	if JSON() {
		return PrintJSON(stats)
	}

	if len(stats) == 0 {
		fmt.Fprintln(Out(), "no tracked invocations yet")
		return nil
	}

	// Find max source length for alignment
	maxSource := 6 // minimum "SOURCE"
	for _, s := range stats {
		if len(s.Source) > maxSource {
			maxSource = len(s.Source)
		}
	}

	fmt.Fprintf(Out(), "%-*s  %5s  %8s  %8s  %10s  %10s  %10s\n",
		maxSource, "SOURCE", "RUNS", "RAW", "OUT", "RAW TOK", "OUT TOK", "SAVED")

	var totalSaved int64
	for _, s := range stats {
		totalSaved += s.TokensSaved()
		fmt.Fprintf(Out(), "%-*s  %5d  %8s  %8s  %10d  %10d  %10d\n",
			maxSource, s.Source, s.Invocations,
			humanSize(s.InputBytes), humanSize(s.OutputBytes),
			s.InputTokens, s.OutputTokens, s.TokensSaved())
	}
	fmt.Fprintf(Out(), "\ntokens saved: %d\n", totalSaved)
	return nil
}

// humanSize formats a byte count as human-readable (e.g., "1.2K", "3.4M").
func humanSize(bytes int64) string {
	const (
		_        = iota
		KB int64 = 1 << (10 * iota)
		MB
		GB
	)
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1fG", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1fM", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1fK", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

func init() {
	rootCmd.AddCommand(newStatsCmd())
}
