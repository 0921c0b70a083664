// Package level maps level numbers to the numeric ranges used by problem
// generation and decides when a streak moves the player up or down.
package level

import (
	"fmt"
	"sort"
)

// Entry is one row of a level table as stored in YAML.
// Items and SequenceMax are optional; zero means "derive from the level".
type Entry struct {
	Level       int    `yaml:"level"`
	Name        string `yaml:"name"`
	MaxNumber   int    `yaml:"max_number"`
	Items       int    `yaml:"items,omitempty"`
	SequenceMax int    `yaml:"sequence_max,omitempty"`
}

// Params are the immutable generation parameters for one level.
type Params struct {
	Level       int
	Name        string
	MaxOperand  int // upper bound for arithmetic operands
	ItemCount   int // bubbles or items shown per round
	SequenceMax int // upper bound for sequence-mode numbers
}

// Table is a normalized level table sorted by level number.
type Table struct {
	entries []Entry
}

// DefaultEntries is the built-in five level table.
var DefaultEntries = []Entry{
	{Level: 1, Name: "Warm-up", MaxNumber: 5},
	{Level: 2, Name: "Getting Started", MaxNumber: 10},
	{Level: 3, Name: "Building Up", MaxNumber: 15},
	{Level: 4, Name: "Big Numbers", MaxNumber: 20},
	{Level: 5, Name: "Number Master", MaxNumber: 30},
}

// DefaultTable returns the built-in table.
func DefaultTable() Table {
	return NewTable(DefaultEntries)
}

// NewTable normalizes entries: rows with a level below 1 are dropped,
// duplicate levels keep the last row, and max_number is floored at 1.
// An empty result falls back to the default table.
func NewTable(entries []Entry) Table {
	byLevel := make(map[int]Entry, len(entries))
	for _, e := range entries {
		if e.Level < 1 {
			continue
		}
		if e.MaxNumber < 1 {
			e.MaxNumber = 1
		}
		if e.Items < 0 {
			e.Items = 0
		}
		if e.SequenceMax < 0 {
			e.SequenceMax = 0
		}
		byLevel[e.Level] = e
	}

	if len(byLevel) == 0 {
		return NewTable(DefaultEntries)
	}

	normalized := make([]Entry, 0, len(byLevel))
	for _, e := range byLevel {
		normalized = append(normalized, e)
	}
	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].Level < normalized[j].Level
	})

	return Table{entries: normalized}
}

// Entries returns a copy of the table rows.
func (t Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// MaxLevel returns the highest configured level.
func (t Table) MaxLevel() int {
	if len(t.entries) == 0 {
		return 1
	}
	return t.entries[len(t.entries)-1].Level
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.entries)
}

// Clamp restricts a level to [1, MaxLevel].
func (t Table) Clamp(lvl int) int {
	return min(max(lvl, 1), t.MaxLevel())
}

// ParametersFor returns the parameters for a level, clamped into range.
// Gaps in the table resolve to the closest lower row.
func (t Table) ParametersFor(lvl int) Params {
	lvl = t.Clamp(lvl)

	entry := Entry{Level: 1, MaxNumber: 1}
	if len(t.entries) > 0 {
		entry = t.entries[0]
	}
	for _, e := range t.entries {
		if e.Level > lvl {
			break
		}
		entry = e
	}

	p := Params{
		Level:       lvl,
		Name:        entry.Name,
		MaxOperand:  entry.MaxNumber,
		ItemCount:   entry.Items,
		SequenceMax: entry.SequenceMax,
	}
	if p.ItemCount == 0 {
		p.ItemCount = min(5+lvl, 15)
	}
	if p.SequenceMax == 0 {
		p.SequenceMax = 10 + 2*lvl
	}
	if p.Name == "" {
		p.Name = fmt.Sprintf("Level %d", lvl)
	}
	return p
}
