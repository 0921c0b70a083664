// Package countingfarm asks about the animals on a farm: how many there
// are, which group is bigger, odd or even, and how to share them fairly.
package countingfarm

import (
	"github.com/vovakirdan/kids-arcade/internal/distractor"
	"github.com/vovakirdan/kids-arcade/internal/problem"
	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/session"
)

// ID is the registry identifier.
const ID = "counting-farm"

// Game implements registry.Game.
type Game struct{}

// New creates the game descriptor.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() string          { return ID }
func (g *Game) Title() string       { return "Counting Farm" }
func (g *Game) Description() string { return "Count, compare and share the farm animals" }
func (g *Game) Kind() registry.Kind { return registry.KindQuiz }

func (g *Game) Modes() []problem.Mode {
	return []problem.Mode{problem.Counting, problem.Comparing, problem.Grouping, problem.Sharing}
}

// Rules have no lives and never lower the level. Sharing answers are
// small, so their distractors stay small too.
func (g *Game) Rules() session.Rules {
	return session.Rules{
		Distractors: distractor.Options{MaxValue: 10},
		MaxValueByMode: map[problem.Mode]int{
			problem.Sharing: 6,
		},
	}
}

func (g *Game) Cheer(correct bool, _ int) string {
	if correct {
		return "Great job! The farmer is proud of you."
	}
	return "Not quite right. Let's count again!"
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
