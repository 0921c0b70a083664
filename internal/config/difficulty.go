package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/kids-arcade/internal/level"
	"github.com/vovakirdan/kids-arcade/internal/session"
)

// ParsePreset reads a preset name; empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return DifficultyNormal, fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// initialFraction returns how far into the table a preset starts (0.0 to 1.0).
func initialFraction(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// StartLevel maps a preset onto a level of table. Fixed starts at level 1
// and stays there.
func StartLevel(preset DifficultyPreset, table level.Table) int {
	span := float64(table.MaxLevel() - 1)
	return table.Clamp(1 + int(math.Round(initialFraction(preset)*span)))
}

// ApplyPreset adjusts a game's rules for a difficulty preset.
func ApplyPreset(rules *session.Rules, preset DifficultyPreset) {
	rules.FixedLevel = IsFixedPreset(preset)

	switch preset {
	case DifficultyEasy:
		if rules.Lives > 0 {
			rules.Lives += 2
		}
		if rules.Timed() {
			rules.TimeLimit += 15
		}
	case DifficultyHard:
		if rules.Lives > 0 {
			rules.Lives = max(rules.Lives-1, 1)
		}
		if rules.Timed() {
			rules.TimeLimit = max(rules.TimeLimit-15, rules.MinTimeLimit)
		}
	}
}
