// Package numberbubbles is a timed game: pop number bubbles in order, or
// pop every even or odd number, before the clock runs out.
package numberbubbles

import (
	"github.com/vovakirdan/kids-arcade/internal/problem"
	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/session"
)

// ID is the registry identifier.
const ID = "number-bubbles"

// Round timer settings in seconds.
const (
	TimeLimit    = 60
	MinTimeLimit = 30
	TimeStep     = 5
)

// Game implements registry.Game.
type Game struct{}

// New creates the game descriptor.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() string          { return ID }
func (g *Game) Title() string       { return "Number Bubbles" }
func (g *Game) Description() string { return "Pop the bubbles in order before time runs out" }
func (g *Game) Kind() registry.Kind { return registry.KindBubbles }

func (g *Game) Modes() []problem.Mode {
	return []problem.Mode{problem.Ascending, problem.Descending, problem.EvenFilter, problem.OddFilter}
}

// Rules run a clock that shrinks by TimeStep per level.
func (g *Game) Rules() session.Rules {
	return session.Rules{
		TimeLimit:    TimeLimit,
		MinTimeLimit: MinTimeLimit,
		TimeStep:     TimeStep,
	}
}

func (g *Game) Cheer(correct bool, _ int) string {
	if correct {
		return "Pop!"
	}
	return "Wrong bubble! -5"
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
