// Package report renders search matches as a compressed, capped summary.
//
// The report is bounded by three independent caps: a global cap on rendered
// match lines (Options.MaxResults), a fixed per-file cap of 10 lines, and
// the per-line length cap applied by condense.Line. Whatever the caps drop
// is disclosed as a "+N" count, never silently omitted.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jpl-au/sift/internal/condense"
	"github.com/jpl-au/sift/internal/ripgrep"
)

// perFileCap is the number of match lines rendered per file before the
// remainder collapses into a "+N" note.
const perFileCap = 10

// Options configures report rendering.
type Options struct {
	Pattern       string // the search pattern, echoed in headers and used for condensing
	MaxLineLength int    // per-line byte cap for condensed content
	MaxResults    int    // global cap on rendered match lines
	ContextOnly   bool   // prefer tight "context + match" excerpts
}

type entry struct {
	line    int
	content string
}

// Render aggregates matches into the final report text and returns it along
// with the total match count. Zero matches is a terminal success case that
// renders a single line.
//
// Files are rendered in lexicographic order. Rendering stops the instant the
// global cap is reached, even mid-file; files past that point are omitted
// entirely. The per-file "+N" note is computed against the file's full match
// count independent of the global cap, so the sum of rendered lines plus the
// trailing "... +N" always accounts for every match.
func Render(matches []ripgrep.Match, opts Options) (string, int) {
	if len(matches) == 0 {
		return fmt.Sprintf("🔍 0 for '%s'", opts.Pattern), 0
	}

	byFile := make(map[string][]entry)
	total := 0
	for _, m := range matches {
		total++
		byFile[m.File] = append(byFile[m.File], entry{
			line:    m.Line,
			content: condense.Line(m.Content, opts.MaxLineLength, opts.ContextOnly, opts.Pattern),
		})
	}

	files := make([]string, 0, len(byFile))
	for f := range byFile {
		files = append(files, f)
	}
	sort.Strings(files)

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 %d in %dF:\n\n", total, len(byFile))

	shown := 0
	for _, file := range files {
		if shown >= opts.MaxResults {
			break
		}

		ms := byFile[file]
		fmt.Fprintf(&b, "📄 %s (%d):\n", condense.Path(file), len(ms))

		limit := len(ms)
		if limit > perFileCap {
			limit = perFileCap
		}
		for _, e := range ms[:limit] {
			fmt.Fprintf(&b, "  %4d: %s\n", e.line, e.content)
			shown++
			if shown >= opts.MaxResults {
				break
			}
		}

		if len(ms) > perFileCap {
			fmt.Fprintf(&b, "  +%d\n", len(ms)-perFileCap)
		}
		b.WriteByte('\n')
	}

	if total > shown {
		fmt.Fprintf(&b, "... +%d\n", total-shown)
	}

	return b.String(), total
}
