package session

import (
	"github.com/vovakirdan/kids-arcade/internal/distractor"
	"github.com/vovakirdan/kids-arcade/internal/problem"
)

// Rules are the per-game knobs of a session.
type Rules struct {
	// Lives is the number of wrong answers allowed before game over.
	// Zero disables lives entirely.
	Lives int

	// LevelDown lets three wrong answers in a row lower the level.
	LevelDown bool

	// FixedLevel pins the level for the whole session.
	FixedLevel bool

	// TimeLimit is the first round's timer in seconds. Zero means untimed.
	TimeLimit int

	// MinTimeLimit floors the timer of later rounds.
	MinTimeLimit int

	// TimeStep is subtracted from TimeLimit per level for later rounds.
	TimeStep int

	// Distractors configures numeric answer sets.
	Distractors distractor.Options

	// MaxValueByMode overrides Distractors.MaxValue for specific modes.
	MaxValueByMode map[problem.Mode]int
}

// Timed reports whether rounds run against a clock.
func (r Rules) Timed() bool {
	return r.TimeLimit > 0
}

// RoundTime returns the timer for a round at lvl. The first round always
// gets the full TimeLimit.
func (r Rules) RoundTime(lvl int, first bool) int {
	if !r.Timed() {
		return 0
	}
	if first {
		return r.TimeLimit
	}
	return max(r.MinTimeLimit, r.TimeLimit-r.TimeStep*lvl)
}

func (r Rules) distractorOptions(mode problem.Mode) distractor.Options {
	opts := r.Distractors
	if v, ok := r.MaxValueByMode[mode]; ok {
		opts.MaxValue = v
	}
	if opts.MaxValue <= 0 {
		opts.MaxValue = 20
	}
	return opts
}
