// Package filter selects subsets of parsed records. Every function preserves
// the input order and returns a non-nil slice.
package filter

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/atikulmunna/logtally/internal/model"
)

// ByLevel returns the records whose level equals level, ignoring case.
func ByLevel(records []model.LogRecord, level string) []model.LogRecord {
	out := make([]model.LogRecord, 0)
	for _, rec := range records {
		if strings.EqualFold(rec.Level, level) {
			out = append(out, rec)
		}
	}
	return out
}

// ByMessage returns the records whose message matches a glob pattern such as
// "*timeout*". An empty pattern keeps every record.
func ByMessage(records []model.LogRecord, pattern string) ([]model.LogRecord, error) {
	if pattern == "" {
		return append(make([]model.LogRecord, 0, len(records)), records...), nil
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid message pattern %q: %w", pattern, err)
	}

	out := make([]model.LogRecord, 0)
	for _, rec := range records {
		if g.Match(rec.Message) {
			out = append(out, rec)
		}
	}
	return out, nil
}
