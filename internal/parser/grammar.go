package parser

import (
	"errors"
	"fmt"
	"iter"
	"regexp"

	"github.com/atikulmunna/logtally/internal/model"
)

// DefaultPattern is the line grammar: date, time, level and message separated by
// whitespace. The message never spans a line break because "." does not match "\n".
const DefaultPattern = `(?P<date>\d{4}-\d{2}-\d{2})\s+(?P<time>\d{2}:\d{2}:\d{2})\s+(?P<level>\w+)\s+(?P<message>.+)`

// ErrMissingGroup is returned when a custom pattern lacks one of the named groups.
var ErrMissingGroup = errors.New("pattern is missing a named group")

var requiredGroups = [...]string{"date", "time", "level", "message"}

var defaultGrammar = mustGrammar(DefaultPattern)

// Grammar finds log line occurrences in a block of text.
type Grammar struct {
	re  *regexp.Regexp
	idx [len(requiredGroups)]int // submatch index for each required group
}

// DefaultGrammar returns the built-in line grammar.
func DefaultGrammar() *Grammar { return defaultGrammar }

// NewGrammar compiles a user-supplied pattern. The pattern must declare the named
// groups date, time, level and message.
func NewGrammar(pattern string) (*Grammar, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern: %w", err)
	}

	g := &Grammar{re: re}
	for i, name := range requiredGroups {
		n := re.SubexpIndex(name)
		if n < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingGroup, name)
		}
		g.idx[i] = n
	}
	return g, nil
}

func mustGrammar(pattern string) *Grammar {
	g, err := NewGrammar(pattern)
	if err != nil {
		panic(err)
	}
	return g
}

// Pattern returns the source text of the grammar.
func (g *Grammar) Pattern() string { return g.re.String() }

// All yields every non-overlapping occurrence in text, top to bottom.
// Spans that do not match are skipped silently. The sequence can be ranged over
// any number of times.
func (g *Grammar) All(text string) iter.Seq[model.LogRecord] {
	return func(yield func(model.LogRecord) bool) {
		for _, loc := range g.re.FindAllStringSubmatchIndex(text, -1) {
			rec, ok := g.record(text, loc)
			if !ok {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// Match reports whether line is exactly one occurrence, with no surrounding noise.
func (g *Grammar) Match(line string) (model.LogRecord, bool) {
	loc := g.re.FindStringSubmatchIndex(line)
	if loc == nil || loc[0] != 0 || loc[1] != len(line) {
		return model.LogRecord{}, false
	}
	return g.record(line, loc)
}

// record builds a LogRecord from a submatch index slice. Custom patterns may leave
// a group unmatched or empty; such occurrences yield no record.
func (g *Grammar) record(text string, loc []int) (model.LogRecord, bool) {
	var fields [len(requiredGroups)]string
	for i, n := range g.idx {
		start, end := loc[2*n], loc[2*n+1]
		if start < 0 || end <= start {
			return model.LogRecord{}, false
		}
		fields[i] = text[start:end]
	}

	return model.LogRecord{
		Date:    fields[0],
		Time:    fields[1],
		Level:   fields[2],
		Message: fields[3],
	}, true
}
