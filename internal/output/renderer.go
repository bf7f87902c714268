package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atikulmunna/logtally/internal/aggregator"
	"github.com/atikulmunna/logtally/internal/model"
)

const (
	levelWidth     = 10
	countWidth     = 5
	separatorWidth = 18
)

// Renderer writes analysis results to an output stream.
type Renderer interface {
	RenderCounts(counts *aggregator.LevelCount) error
	RenderDetails(level string, records []model.LogRecord) error
}

// ---------------------------------------------------------------------------
// Text Renderer (fixed-width table)
// ---------------------------------------------------------------------------

// TextRenderer prints the level table and detail listing as plain text.
// With colour enabled only the level cells and the detail header are styled;
// column widths are computed before styling.
type TextRenderer struct {
	w      io.Writer
	styles *styles
}

type styles struct {
	info   lipgloss.Style
	debug  lipgloss.Style
	warn   lipgloss.Style
	err    lipgloss.Style
	fatal  lipgloss.Style
	header lipgloss.Style
}

// NewTextRenderer returns a Renderer that writes text to w.
func NewTextRenderer(w io.Writer, color bool) *TextRenderer {
	r := &TextRenderer{w: w}
	if color {
		r.styles = newStyles(lipgloss.NewRenderer(w))
	}
	return r
}

func newStyles(lr *lipgloss.Renderer) *styles {
	return &styles{
		info:  lr.NewStyle().Foreground(lipgloss.Color("245")), // gray
		debug: lr.NewStyle().Foreground(lipgloss.Color("245")).Faint(true),
		warn:  lr.NewStyle().Foreground(lipgloss.Color("220")),            // yellow
		err:   lr.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // red bold
		fatal: lr.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("196")).
			Bold(true), // white on red
		header: lr.NewStyle().Foreground(lipgloss.Color("39")).Bold(true), // cyan
	}
}

// RenderCounts prints the two-column level table in the mapping's order.
func (r *TextRenderer) RenderCounts(counts *aggregator.LevelCount) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-*s | %-*s\n", levelWidth, "Level", countWidth, "Count")
	b.WriteString(strings.Repeat("-", separatorWidth))
	b.WriteByte('\n')

	for _, e := range counts.Entries() {
		cell := r.levelTag(e.Level, fmt.Sprintf("%-*s", levelWidth, e.Level))
		fmt.Fprintf(&b, "%s | %-*d\n", cell, countWidth, e.Count)
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

// RenderDetails prints a header followed by one line per record.
func (r *TextRenderer) RenderDetails(level string, records []model.LogRecord) error {
	var b strings.Builder
	header := fmt.Sprintf("Details for log level '%s':", level)
	if r.styles != nil {
		header = r.styles.header.Render(header)
	}
	b.WriteString(header)
	b.WriteByte('\n')

	for _, rec := range records {
		fmt.Fprintf(&b, "%s %s - %s\n", rec.Date, rec.Time, rec.Message)
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *TextRenderer) levelTag(level, padded string) string {
	if r.styles == nil {
		return padded
	}
	switch strings.ToUpper(level) {
	case "DEBUG", "TRACE":
		return r.styles.debug.Render(padded)
	case "WARN", "WARNING":
		return r.styles.warn.Render(padded)
	case "ERROR":
		return r.styles.err.Render(padded)
	case "FATAL", "CRITICAL":
		return r.styles.fatal.Render(padded)
	default:
		return r.styles.info.Render(padded)
	}
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// CountsReport is the JSON shape of a level table.
type CountsReport struct {
	Total  int                    `json:"total"`
	Counts *aggregator.LevelCount `json:"counts"`
}

// DetailsReport is the JSON shape of a detail listing.
type DetailsReport struct {
	Level   string            `json:"level"`
	Records []model.LogRecord `json:"records"`
}

// JSONRenderer prints each result as a single JSON object per line.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes JSON lines to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(w)}
}

func (r *JSONRenderer) RenderCounts(counts *aggregator.LevelCount) error {
	return r.enc.Encode(CountsReport{Total: counts.Total(), Counts: counts})
}

func (r *JSONRenderer) RenderDetails(level string, records []model.LogRecord) error {
	if records == nil {
		records = []model.LogRecord{}
	}
	return r.enc.Encode(DetailsReport{Level: level, Records: records})
}
