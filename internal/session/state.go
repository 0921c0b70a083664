package session

import (
	"github.com/vovakirdan/kids-arcade/internal/level"
	"github.com/vovakirdan/kids-arcade/internal/problem"
)

// Phase is the session lifecycle state.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseActive   Phase = "active"
	PhaseFeedback Phase = "feedback"
	PhaseGameOver Phase = "gameover"
)

// State is the mutable score/level/lives record of a session.
type State struct {
	Mode     problem.Mode
	Score    int
	Level    int
	Lives    int
	Streak   level.Streak
	Round    int
	TimeLeft int
	Phase    Phase
	Problem  *problem.Problem
	Progress Progress
}

// Progress tracks pops within a sequence round.
type Progress struct {
	Next   int // index of the next expected target in ordered rounds
	Popped map[int]bool
}

func newProgress() Progress {
	return Progress{Popped: make(map[int]bool)}
}

// Count returns the number of bubbles popped so far.
func (p Progress) Count() int {
	return len(p.Popped)
}

// Result reports the outcome of one submission.
type Result struct {
	Correct       bool
	Submitted     problem.Answer
	CorrectAnswer problem.Answer
	Points        int // negative for penalized pops
	Score         int
	LevelChanged  bool
	NewLevel      int
	Direction     level.Direction
	LivesLeft     int
	GameOver      bool
	RoundComplete bool
}
