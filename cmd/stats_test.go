package cmd

import (
	"strings"
	"testing"
)

func TestStats(t *testing.T) {
	t.Run("empty database", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("stats")
		env.contains(out, "no tracked invocations yet")
	})

	t.Run("records grep and json invocations", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.txt", "needle here\n")
		env.write("doc.json", `{"count": 1}`)

		env.run("grep", "needle", ".")
		env.run("json", "doc.json")

		out := env.run("stats")
		env.contains(out, "cli:grep")
		env.contains(out, "cli:json")
		env.contains(out, "tokens saved:")
	})

	t.Run("tracking can be disabled", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.txt", "needle here\n")
		env.run("config", "track.enabled", "false")

		env.run("grep", "needle", ".")

		out := env.run("stats")
		env.contains(out, "no tracked invocations yet")
	})

	t.Run("json output mode", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("a.txt", "needle here\n")
		env.run("grep", "needle", ".")

		out := env.run("stats", "-o", "json")
		env.contains(out, `"Source":"cli:grep"`)
	})
}

func TestGuide(t *testing.T) {
	t.Run("main guide as raw markdown when piped", func(t *testing.T) {
		env := newTestEnv(t)
		out := env.run("guide")
		env.contains(out, "# sift")
	})

	t.Run("per command pages", func(t *testing.T) {
		env := newTestEnv(t)
		env.contains(env.run("guide", "grep"), "# sift grep")
		env.contains(env.run("guide", "json"), "# sift json")
	})

	t.Run("unknown page lists available ones", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("guide", "nope")
		if err == nil {
			t.Fatalf("expected failure, got:\n%s", out)
		}
		if !strings.Contains(out, "grep") || !strings.Contains(out, "json") {
			t.Errorf("expected available pages in error, got:\n%s", out)
		}
	})
}
