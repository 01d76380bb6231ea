/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: PersistentPreRunE loads configuration and opens the usage tracker
// before any command runs. Tracking is best-effort: an unavailable tracking
// database produces a warning on stderr and nothing else - the primary
// command's output and exit code are never affected.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/sift/internal/config"
	"github.com/jpl-au/sift/internal/track"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sift",
	Short: "Compress developer-tool output for LLM context windows",
	Long: `sift runs noisy developer commands (search, JSON inspection) and compresses
their output into bounded, information-dense summaries. Caps on files, matches,
depth and line length keep the result a fixed size regardless of input; whatever
gets cut is disclosed as a "+N" count, never silently dropped.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		conf = cfg

		if cfg.TrackEnabled() {
			if err := track.Open(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: usage tracking unavailable: %v\n", err)
			}
			track.SetTokens(cfg.TrackTokens())
			if wd, err := os.Getwd(); err == nil {
				track.SetProject(wd)
			}
		}
		return nil
	},
}

// conf is the configuration loaded for this invocation. Set by
// PersistentPreRunE before any RunE executes.
var conf *config.Config

// Config returns the loaded configuration, falling back to defaults when a
// command runs outside the normal cobra lifecycle (tests, MCP handlers).
func Config() *config.Config {
	if conf == nil {
		return &config.Config{}
	}
	return conf
}

// Execute runs the root command and handles process lifecycle.
// Ensures the usage tracker is closed before exit. Exit code 1 indicates error.
func Execute() {
	err := rootCmd.Execute()
	track.Close()
	if err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and MCP server access.
func RootCmd() *cobra.Command {
	return rootCmd
}
