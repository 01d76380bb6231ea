package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jpl-au/sift/internal/ripgrep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opts(maxResults int) Options {
	return Options{
		Pattern:       "needle",
		MaxLineLength: 100,
		MaxResults:    maxResults,
	}
}

func match(file string, line int) ripgrep.Match {
	return ripgrep.Match{File: file, Line: line, Content: fmt.Sprintf("needle on line %d", line)}
}

// matchLines counts rendered match rows (indented "line: content" rows).
func matchLines(report string) int {
	n := 0
	for _, line := range strings.Split(report, "\n") {
		if strings.HasPrefix(line, "  ") && strings.Contains(line, ": ") {
			n++
		}
	}
	return n
}

func TestRender(t *testing.T) {
	t.Run("zero matches is a terminal success line", func(t *testing.T) {
		got, total := Render(nil, opts(10))
		assert.Equal(t, "🔍 0 for 'needle'", got)
		assert.Zero(t, total)
		assert.NotContains(t, got, "📄")
	})

	t.Run("header counts matches and files", func(t *testing.T) {
		got, total := Render([]ripgrep.Match{
			match("a.go", 1), match("a.go", 2), match("b.go", 7),
		}, opts(10))
		assert.Equal(t, 3, total)
		assert.True(t, strings.HasPrefix(got, "🔍 3 in 2F:\n\n"))
		assert.Contains(t, got, "📄 a.go (2):")
		assert.Contains(t, got, "📄 b.go (1):")
	})

	t.Run("files render in lexicographic order", func(t *testing.T) {
		got, _ := Render([]ripgrep.Match{
			match("zz.go", 1), match("aa.go", 1), match("mm.go", 1),
		}, opts(10))
		aa := strings.Index(got, "📄 aa.go")
		mm := strings.Index(got, "📄 mm.go")
		zz := strings.Index(got, "📄 zz.go")
		assert.True(t, aa < mm && mm < zz, "got:\n%s", got)
	})

	t.Run("line numbers align right in four columns", func(t *testing.T) {
		got, _ := Render([]ripgrep.Match{match("a.go", 7)}, opts(10))
		assert.Contains(t, got, "     7: needle on line 7")
	})

	t.Run("25 matches in one file with cap 10", func(t *testing.T) {
		var ms []ripgrep.Match
		for i := 1; i <= 25; i++ {
			ms = append(ms, match("only.go", i))
		}
		got, total := Render(ms, opts(10))
		require.Equal(t, 25, total)

		// Exactly 10 rendered rows, a per-file +15, and a trailing +15.
		assert.Equal(t, 10, matchLines(got))
		assert.Contains(t, got, "📄 only.go (25):")
		assert.Contains(t, got, "  +15\n")
		assert.True(t, strings.HasSuffix(got, "... +15\n"), "got:\n%s", got)
	})

	t.Run("global cap stops mid-file", func(t *testing.T) {
		got, total := Render([]ripgrep.Match{
			match("a.go", 1), match("a.go", 2), match("a.go", 3),
			match("b.go", 1), match("b.go", 2),
		}, opts(4))
		require.Equal(t, 5, total)
		assert.Equal(t, 4, matchLines(got))
		assert.Contains(t, got, "📄 b.go (2):")
		assert.True(t, strings.HasSuffix(got, "... +1\n"))
	})

	t.Run("files past the cap are omitted entirely", func(t *testing.T) {
		got, _ := Render([]ripgrep.Match{
			match("a.go", 1), match("a.go", 2),
			match("z.go", 9),
		}, opts(2))
		assert.Contains(t, got, "📄 a.go")
		assert.NotContains(t, got, "z.go")
		assert.True(t, strings.HasSuffix(got, "... +1\n"))
	})

	t.Run("per-file remainder ignores the global cap", func(t *testing.T) {
		// 12 matches in a.go but the global cap stops after 3 rendered rows:
		// the per-file note still reads +2 (12 - 10), by design.
		var ms []ripgrep.Match
		for i := 1; i <= 12; i++ {
			ms = append(ms, match("a.go", i))
		}
		got, _ := Render(ms, opts(3))
		assert.Equal(t, 3, matchLines(got))
		assert.Contains(t, got, "  +2\n")
		assert.True(t, strings.HasSuffix(got, "... +9\n"))
	})

	t.Run("shown plus trailing remainder equals total", func(t *testing.T) {
		var ms []ripgrep.Match
		for f := 0; f < 5; f++ {
			for i := 1; i <= 7; i++ {
				ms = append(ms, match(fmt.Sprintf("f%d.go", f), i))
			}
		}
		for _, cap := range []int{1, 5, 10, 34, 35, 100} {
			got, total := Render(ms, opts(cap))
			shown := matchLines(got)
			assert.LessOrEqual(t, shown, cap)

			remainder := 0
			if idx := strings.LastIndex(got, "... +"); idx >= 0 {
				fmt.Sscanf(got[idx:], "... +%d", &remainder)
			}
			assert.Equal(t, total, shown+remainder, "cap=%d", cap)
		}
	})

	t.Run("no trailing remainder when everything shown", func(t *testing.T) {
		got, _ := Render([]ripgrep.Match{match("a.go", 1)}, opts(10))
		assert.NotContains(t, got, "... +")
	})

	t.Run("content is condensed to the line cap", func(t *testing.T) {
		long := strings.Repeat("x", 300) + "needle" + strings.Repeat("y", 300)
		got, _ := Render([]ripgrep.Match{{File: "a.go", Line: 1, Content: long}}, Options{
			Pattern:       "needle",
			MaxLineLength: 40,
			MaxResults:    10,
		})
		for _, line := range strings.Split(got, "\n") {
			assert.LessOrEqual(t, len(line), 60, "line %q", line)
		}
		assert.Contains(t, got, "needle")
	})

	t.Run("compacts long file paths", func(t *testing.T) {
		long := "/home/user/workspace/project/internal/deeply/nested/handlers/auth.go"
		got, _ := Render([]ripgrep.Match{match(long, 3)}, opts(10))
		assert.Contains(t, got, "📄 /.../handlers/auth.go (1):")
	})
}
