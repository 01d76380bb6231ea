// stats.go implements the read side of the tracking database: aggregated
// savings per source, consumed by the "sift stats" command.
//
// Separated from track_storage.go because querying opens its own read-only
// connection rather than going through the global writer. The stats command
// must work even when tracking is disabled for new entries.

package track

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "modernc.org/sqlite"
)

// SourceStats aggregates tracking entries for one source.
type SourceStats struct {
	Source       string
	Invocations  int
	InputBytes   int64
	OutputBytes  int64
	InputTokens  int64
	OutputTokens int64
}

// TokensSaved returns how many tokens the condensed output saved against
// the raw input. Negative values (output larger than input) are possible
// for tiny inputs and reported as-is.
func (s SourceStats) TokensSaved() int64 {
	return s.InputTokens - s.OutputTokens
}

// Summary reads aggregated per-source stats from the tracking database,
// ordered by source name. A missing database is not an error: it returns
// an empty summary, the same as a fresh install.
func Summary() ([]SourceStats, error) {
	p := dbPath()
	if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return nil, fmt.Errorf("open tracking database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT source, COUNT(*),
		       SUM(input_bytes), SUM(output_bytes),
		       SUM(input_tokens), SUM(output_tokens)
		FROM track
		WHERE success = 1
		GROUP BY source
		ORDER BY source`)
	if err != nil {
		return nil, fmt.Errorf("query tracking database: %w", err)
	}
	defer rows.Close()

	var stats []SourceStats
	for rows.Next() {
		var s SourceStats
		if err := rows.Scan(&s.Source, &s.Invocations,
			&s.InputBytes, &s.OutputBytes,
			&s.InputTokens, &s.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan tracking row: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
