// Package config loads and stores the YAML level table and maps difficulty
// presets onto session rules.
package config

import "github.com/vovakirdan/kids-arcade/internal/level"

// LevelsConfig is the on-disk shape of the level table.
type LevelsConfig struct {
	Levels []level.Entry `yaml:"levels"`
}

// Table normalizes the configured rows into a level table.
func (c LevelsConfig) Table() level.Table {
	return level.NewTable(c.Levels)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
