// Package core holds the runtime configuration and input vocabulary shared
// by the terminal screens and the CLI.
package core

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kids-arcade/internal/level"
)

// RuntimeConfig contains configuration passed to games at start.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means seed from the clock

	Table      level.Table // level table in use
	Mode       string      // requested mode or board size; empty picks the default
	Difficulty string      // preset name: easy, normal, hard or fixed
	StartLevel int         // explicit start level; 0 derives it from Difficulty
	Players    []string    // seat names for two-player boards

	Logger *log.Logger
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
		Table:   level.DefaultTable(),
	}
}

// WithSelection returns a copy of c for a menu pick: a mode and, for
// memory boards, the player names.
func (c RuntimeConfig) WithSelection(mode string, players []string) RuntimeConfig {
	c.Mode = mode
	c.Players = append([]string(nil), players...)
	return c
}
