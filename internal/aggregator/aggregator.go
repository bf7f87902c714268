package aggregator

import (
	"encoding/json"

	"github.com/atikulmunna/logtally/internal/model"
)

// Entry is one level and its occurrence count.
type Entry struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

// LevelCount maps level tokens to occurrence counts, remembering the order in
// which each level was first seen.
type LevelCount struct {
	order  []string
	counts map[string]int
}

// Aggregate counts records per level. The grouping key is the level token exactly
// as captured; no case folding happens here.
func Aggregate(records []model.LogRecord) *LevelCount {
	lc := &LevelCount{counts: make(map[string]int)}
	for _, rec := range records {
		lc.add(rec.Level)
	}
	return lc
}

func (lc *LevelCount) add(level string) {
	if _, seen := lc.counts[level]; !seen {
		lc.order = append(lc.order, level)
	}
	lc.counts[level]++
}

// Len returns the number of distinct levels.
func (lc *LevelCount) Len() int { return len(lc.order) }

// Count returns the count for a level, or 0 if it never occurred.
func (lc *LevelCount) Count(level string) int { return lc.counts[level] }

// Levels returns the levels in first-seen order.
func (lc *LevelCount) Levels() []string {
	out := make([]string, len(lc.order))
	copy(out, lc.order)
	return out
}

// Total returns the sum of all counts, which equals the number of aggregated records.
func (lc *LevelCount) Total() int {
	total := 0
	for _, n := range lc.counts {
		total += n
	}
	return total
}

// Entries returns a copy of the mapping in first-seen order.
func (lc *LevelCount) Entries() []Entry {
	out := make([]Entry, 0, len(lc.order))
	for _, level := range lc.order {
		out = append(out, Entry{Level: level, Count: lc.counts[level]})
	}
	return out
}

// MarshalJSON encodes the mapping as an ordered array of entries.
func (lc *LevelCount) MarshalJSON() ([]byte, error) {
	return json.Marshal(lc.Entries())
}
