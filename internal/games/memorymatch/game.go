// Package memorymatch is the card matching game: flip two cards at a time
// and find every pair, alone or taking turns with a friend.
package memorymatch

import (
	"github.com/vovakirdan/kids-arcade/internal/problem"
	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/session"
)

// ID is the registry identifier.
const ID = "memory-match"

// Game implements registry.Game.
type Game struct{}

// New creates the game descriptor.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() string            { return ID }
func (g *Game) Title() string         { return "Memory Match" }
func (g *Game) Description() string   { return "Find all the matching animal pairs" }
func (g *Game) Kind() registry.Kind   { return registry.KindMemory }
func (g *Game) Modes() []problem.Mode { return nil }

// Rules are unused: the board has its own turn logic.
func (g *Game) Rules() session.Rules { return session.Rules{} }

func (g *Game) Cheer(correct bool, _ int) string {
	if correct {
		return "It's a match!"
	}
	return "Not a match."
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
