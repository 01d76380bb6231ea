// Package ripgrep invokes an external search tool and normalises its output
// into matches the report package can aggregate. It prefers ripgrep and falls
// back to plain grep when rg is not installed; a non-zero exit (no matches)
// is not a failure, only a launch error is.
package ripgrep

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Match is one search hit: a file, a 1-indexed line number (0 when the tool
// output gave no usable number), and the raw matched line.
type Match struct {
	File    string
	Line    int
	Content string
}

// Search runs rg (or grep as a fallback) for pattern under path and returns
// the tool's raw stdout, lossily decoded as UTF-8. An empty string with a nil
// error means no matches.
func Search(pattern, path string) (string, error) {
	out, err := run("rg", "-n", "--no-heading", pattern, path)
	if err != nil {
		out, err = run("grep", "-rn", pattern, path)
		if err != nil {
			return "", fmt.Errorf("grep/rg failed: %w", err)
		}
	}
	return string(bytes.ToValidUTF8(out, []byte("�"))), nil
}

// run executes a search tool and returns its stdout. A non-zero exit status
// is not an error: both rg and grep exit 1 when nothing matched. Only launch
// failures (binary missing, not executable) propagate, which is what triggers
// the grep fallback in Search.
func run(name string, args ...string) ([]byte, error) {
	var stdout bytes.Buffer
	c := exec.Command(name, args...)
	c.Stdout = &stdout
	err := c.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, err
	}
	return stdout.Bytes(), nil
}

// Parse splits raw tool output into matches. Each line is expected as
// "file:line:content"; grep output for a single file omits the leading file
// segment, so two-field lines fall back to the originally requested path.
// Lines with fewer fields are discarded; unparseable line numbers become 0.
func Parse(out, requestedPath string) []Match {
	var matches []Match
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 3)
		switch len(parts) {
		case 3:
			matches = append(matches, Match{
				File:    parts[0],
				Line:    lineNumber(parts[1]),
				Content: parts[2],
			})
		case 2:
			matches = append(matches, Match{
				File:    requestedPath,
				Line:    lineNumber(parts[0]),
				Content: parts[1],
			})
		}
	}
	return matches
}

func lineNumber(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
