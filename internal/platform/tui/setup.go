package tui

import (
	"fmt"

	"github.com/vovakirdan/kids-arcade/internal/config"
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/games/memorymatch"
	"github.com/vovakirdan/kids-arcade/internal/level"
	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/rng"
	"github.com/vovakirdan/kids-arcade/internal/session"
)

// NewGameSession builds and starts a session for a quiz or bubble game:
// the mode comes from cfg.Mode, the rules from the game adjusted by the
// difficulty preset, and the start level from cfg.StartLevel or the preset.
func NewGameSession(g registry.Game, cfg core.RuntimeConfig) (*session.Session, error) {
	mode, err := registry.ResolveMode(g, cfg.Mode)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(cfg.Difficulty)
	if err != nil {
		return nil, err
	}

	table := cfg.Table
	if table.Len() == 0 {
		table = level.DefaultTable()
	}

	rules := g.Rules()
	config.ApplyPreset(&rules, preset)

	start := cfg.StartLevel
	if start <= 0 {
		start = config.StartLevel(preset, table)
	}

	sess := session.New(session.Config{
		Table:  table,
		Rules:  rules,
		Source: rng.New(cfg.Seed),
		Logger: cfg.Logger,
	})
	if err := sess.Start(mode, start); err != nil {
		return nil, fmt.Errorf("tui: cannot start %s: %w", g.ID(), err)
	}
	return sess, nil
}

// NewBoard deals a memory board; cfg.Mode names the board size.
func NewBoard(cfg core.RuntimeConfig) (*memorymatch.Board, error) {
	d, err := memorymatch.ParseDifficulty(cfg.Mode)
	if err != nil {
		return nil, err
	}
	return memorymatch.NewBoard(d, cfg.Players, rng.New(cfg.Seed)), nil
}
