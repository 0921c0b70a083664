// Package monstermunch is an arithmetic quiz: feed the monster the right
// sum or difference before it runs out of patience.
package monstermunch

import (
	"github.com/vovakirdan/kids-arcade/internal/distractor"
	"github.com/vovakirdan/kids-arcade/internal/problem"
	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/session"
)

// ID is the registry identifier.
const ID = "monster-munch"

// Lives is the number of wrong answers before the monster leaves.
const Lives = 3

var (
	yum = []string{
		"Yum! The monster loved that one!",
		"Munch munch! Great job!",
		"Delicious! You got it right!",
	}
	yuck = []string{
		"Yuck! That's not right.",
		"The monster spat that one out!",
		"Oops! Try the next one.",
	}
)

// Game implements registry.Game.
type Game struct{}

// New creates the game descriptor.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() string          { return ID }
func (g *Game) Title() string       { return "Math Monster Munch" }
func (g *Game) Description() string { return "Feed the monster correct sums and differences" }
func (g *Game) Kind() registry.Kind { return registry.KindQuiz }

// Modes returns addition, subtraction and a random mix of both.
func (g *Game) Modes() []problem.Mode {
	return []problem.Mode{problem.Addition, problem.Subtraction, problem.Mixed}
}

// Rules track three lives and let the level drop after a bad streak.
// Zero is a legal wrong answer here since differences can look like it.
func (g *Game) Rules() session.Rules {
	return session.Rules{
		Lives:     Lives,
		LevelDown: true,
		Distractors: distractor.Options{
			MaxValue:  20,
			AllowZero: true,
		},
	}
}

// Cheer picks a message; n rotates through the list.
func (g *Game) Cheer(correct bool, n int) string {
	if correct {
		return yum[abs(n)%len(yum)]
	}
	return yuck[abs(n)%len(yuck)]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
