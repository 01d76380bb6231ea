package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("list shows every key with defaults", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("config")
		env.contains(out, "limits.max_line_length: 100")
		env.contains(out, "limits.max_results: 50")
		env.contains(out, "limits.max_depth: 5")
		env.contains(out, "track.enabled: true")
		env.contains(out, "track.tokens: true")
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("config", "limits.max_results", "25")
		env.contains(out, "limits.max_results = 25 (global)")

		out = env.run("config", "limits.max_results")
		env.equals(out, "25")
	})

	t.Run("set writes the global file", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "limits.max_depth", "3")
		if _, err := os.Stat(filepath.Join(env.home, ".sift", "config.yaml")); err != nil {
			t.Errorf("global config not written: %v", err)
		}
	})

	t.Run("local flag targets the working directory", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("config", "--local", "limits.max_results", "7")
		env.contains(out, "limits.max_results = 7 (local)")
		if _, err := os.Stat(filepath.Join(env.dir, ".sift", "config.yaml")); err != nil {
			t.Errorf("local config not written: %v", err)
		}
	})

	t.Run("local overrides global on read", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "limits.max_results", "25")
		env.run("config", "--local", "limits.max_results", "7")

		out := env.run("config", "limits.max_results")
		env.equals(out, "7")
	})

	t.Run("unknown key fails", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("config", "limits.nope")
		if err == nil {
			t.Fatalf("expected failure, got:\n%s", out)
		}
		env.contains(out, "unknown config key")
	})

	t.Run("out of range value fails", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("config", "limits.max_line_length", "2")
		if err == nil {
			t.Fatalf("expected failure, got:\n%s", out)
		}
	})
}
