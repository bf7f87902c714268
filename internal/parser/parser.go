package parser

import (
	"iter"

	"github.com/atikulmunna/logtally/internal/model"
)

// Parser converts raw log text into structured records.
type Parser interface {
	Parse(raw string) []model.LogRecord
}

// GrammarParser applies a Grammar to the whole input.
type GrammarParser struct {
	grammar *Grammar
}

// New returns a parser using the default line grammar.
func New() *GrammarParser {
	return &GrammarParser{grammar: DefaultGrammar()}
}

// NewWithPattern returns a parser using a custom grammar. An empty pattern
// selects the default grammar.
func NewWithPattern(pattern string) (*GrammarParser, error) {
	if pattern == "" || pattern == DefaultPattern {
		return New(), nil
	}
	g, err := NewGrammar(pattern)
	if err != nil {
		return nil, err
	}
	return &GrammarParser{grammar: g}, nil
}

// Grammar returns the grammar the parser applies.
func (p *GrammarParser) Grammar() *Grammar { return p.grammar }

// Records yields records lazily in document order.
func (p *GrammarParser) Records(raw string) iter.Seq[model.LogRecord] {
	return p.grammar.All(raw)
}

// Parse returns every record in raw, in document order. The result is never nil.
func (p *GrammarParser) Parse(raw string) []model.LogRecord {
	records := make([]model.LogRecord, 0)
	for rec := range p.grammar.All(raw) {
		records = append(records, rec)
	}
	return records
}
