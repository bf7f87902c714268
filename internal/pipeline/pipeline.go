package pipeline

import (
	"log/slog"
	"strings"

	"github.com/atikulmunna/logtally/internal/aggregator"
	"github.com/atikulmunna/logtally/internal/filter"
	"github.com/atikulmunna/logtally/internal/model"
	"github.com/atikulmunna/logtally/internal/parser"
)

// Query selects the detail listing. An empty Level means no listing is wanted.
type Query struct {
	Level   string
	Message string // glob applied to messages of the listed records
}

// Report is the result of one analysis run.
type Report struct {
	Records []model.LogRecord
	Counts  *aggregator.LevelCount

	// Level is the requested level, upper-cased; Details is nil when no level was requested.
	Level   string
	Details []model.LogRecord
}

// HasDetails reports whether a detail listing was requested.
func (r *Report) HasDetails() bool { return r.Details != nil }

// Pipeline parses raw text once and hands the records to the aggregator and
// the level filter. It holds no state between runs.
type Pipeline struct {
	parser parser.Parser
	logger *slog.Logger
}

// New creates a Pipeline that parses with p.
func New(p parser.Parser, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{parser: p, logger: logger}
}

// Analyze runs parse, aggregate and, when q.Level is set, filter.
// The only error is an invalid message pattern.
func (p *Pipeline) Analyze(raw string, q Query) (*Report, error) {
	records := p.parser.Parse(raw)
	r := &Report{
		Records: records,
		Counts:  aggregator.Aggregate(records),
	}
	p.logger.Debug("parsed log text", "bytes", len(raw), "records", len(records), "levels", r.Counts.Len())

	if q.Level == "" {
		return r, nil
	}

	r.Level = strings.ToUpper(q.Level)
	details, err := filter.ByMessage(filter.ByLevel(records, r.Level), q.Message)
	if err != nil {
		return nil, err
	}
	r.Details = details
	p.logger.Debug("filtered records", "level", r.Level, "message", q.Message, "matched", len(details))

	return r, nil
}
