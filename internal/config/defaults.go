package config

import (
	_ "embed"

	"github.com/vovakirdan/kids-arcade/internal/level"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// DefaultLevelsConfig returns the built-in level table.
func DefaultLevelsConfig() LevelsConfig {
	entries := make([]level.Entry, len(level.DefaultEntries))
	copy(entries, level.DefaultEntries)
	return LevelsConfig{Levels: entries}
}
