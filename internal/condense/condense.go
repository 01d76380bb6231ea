// Package condense produces bounded single-line excerpts of match content
// and display paths. These are the building blocks of sift's compressed
// reports: every line and path shown to the user (or an LLM) passes through
// here so that output size is governed by the caps, not the input.
package condense

import (
	"regexp"
	"strings"
)

// Line returns a length-bounded excerpt of line, at most maxLen bytes.
//
// When contextOnly is set, it first tries a cheap "context + match" excerpt:
// up to 20 characters of lead-in followed by the literal pattern and the rest
// of the line. If that span fits within maxLen it is returned as-is.
//
// Otherwise the line is truncated around the pattern: a window of maxLen
// bytes is placed with a one-third lead-in before the match, shifted left if
// it would run past the end of the line, and ellipsized on whichever sides
// were cut. If the pattern does not occur in the line at all, the head of the
// line is kept and ellipsized.
func Line(line string, maxLen int, contextOnly bool, pattern string) string {
	trimmed := strings.TrimSpace(line)

	if contextOnly {
		re, err := regexp.Compile("(?i).{0,20}" + regexp.QuoteMeta(pattern) + ".*")
		if err == nil {
			if m := re.FindString(trimmed); m != "" && len(m) <= maxLen {
				return m
			}
		}
	}

	if len(trimmed) <= maxLen {
		return trimmed
	}

	lower := strings.ToLower(trimmed)
	pos := strings.Index(lower, strings.ToLower(pattern))
	if pos < 0 {
		cut := maxLen - 3
		if cut < 0 {
			cut = 0
		}
		return trimmed[:cut] + "..."
	}

	start := pos - maxLen/3
	if start < 0 {
		start = 0
	}
	end := start + maxLen
	if end > len(trimmed) {
		end = len(trimmed)
		start = end - maxLen
		if start < 0 {
			start = 0
		}
	}

	slice := trimmed[start:end]
	switch {
	case start > 0 && end < len(trimmed):
		return "..." + slice + "..."
	case start > 0:
		return "..." + slice
	default:
		return slice + "..."
	}
}

// Path shortens a file path for display while keeping the filesystem root
// and the immediate containing directory. Paths of 50 bytes or fewer, or
// with 3 or fewer segments, are returned unchanged, which also makes Path
// idempotent.
func Path(p string) string {
	if len(p) <= 50 {
		return p
	}
	parts := strings.Split(p, "/")
	if len(parts) <= 3 {
		return p
	}
	return parts[0] + "/.../" + parts[len(parts)-2] + "/" + parts[len(parts)-1]
}
