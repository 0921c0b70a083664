// Package distractor builds answer sets: the correct value plus unique,
// plausible wrong values near it.
package distractor

import (
	"github.com/vovakirdan/kids-arcade/internal/problem"
	"github.com/vovakirdan/kids-arcade/internal/rng"
)

const (
	// OptionCount is the size of a numeric answer set.
	OptionCount = 4

	// MaxAttempts bounds random draws before the sequential fill.
	MaxAttempts = 50

	smallAnswer = 5
)

// Options tune generation per game.
type Options struct {
	// MaxValue is the soft upper bound for distractors.
	MaxValue int

	// AllowZero lets 0 appear as a distractor.
	AllowZero bool
}

// Numeric returns OptionCount unique numbers containing correct, shuffled.
// It always terminates: random draws are capped at MaxAttempts and any
// shortfall is filled sequentially from the floor upward.
func Numeric(correct int, opts Options, src rng.Source) problem.AnswerSet {
	floor := 1
	if opts.AllowZero {
		floor = 0
	}
	maxValue := max(opts.MaxValue, 1)
	adjustedMax := max(maxValue, correct+5)

	values := []int{correct}
	has := map[int]bool{correct: true}
	add := func(v int) {
		if v < floor || has[v] {
			return
		}
		has[v] = true
		values = append(values, v)
	}

	for attempt := 0; attempt < MaxAttempts && len(values) < OptionCount; attempt++ {
		lo, hi := window(correct, floor, adjustedMax)
		add(src.IntRange(lo, hi))
	}

	limit := max(20, maxValue)
	for v := floor; len(values) < OptionCount && v <= limit; v++ {
		add(v)
	}

	src.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })

	set := make(problem.AnswerSet, len(values))
	for i, v := range values {
		set[i] = problem.Option{Value: problem.Number(v), Correct: v == correct}
	}
	return set
}

// window returns the draw range around correct, widened until it holds at
// least OptionCount values.
func window(correct, floor, adjustedMax int) (lo, hi int) {
	if correct <= smallAnswer {
		lo, hi = floor, min(10, adjustedMax)
	} else {
		spread := max(2, (correct+1)/2)
		lo, hi = max(floor, correct-spread), min(adjustedMax, correct+spread)
	}
	if hi-lo+1 < OptionCount {
		lo, hi = max(floor, correct-3), min(adjustedMax, correct+3)
	}
	if hi-lo+1 < OptionCount {
		lo, hi = floor, max(10, correct+5)
	}
	return lo, hi
}

// Tokens returns a categorical answer set in the given order with the
// matching entry marked correct. Duplicate tokens are dropped.
func Tokens(correct problem.Answer, tokens ...string) problem.AnswerSet {
	set := make(problem.AnswerSet, 0, len(tokens))
	for _, tok := range tokens {
		v := problem.Token(tok)
		if set.Contains(v) {
			continue
		}
		set = append(set, problem.Option{Value: v, Correct: v.Equal(correct)})
	}
	return set
}

// ForProblem builds the answer set for a quiz problem. Sequence problems
// have no answer set and return nil.
func ForProblem(p problem.Problem, opts Options, src rng.Source) problem.AnswerSet {
	switch p.Mode {
	case problem.Addition, problem.Subtraction, problem.Mixed, problem.Counting, problem.Sharing:
		n, _ := p.Answer.Int()
		return Numeric(n, opts, src)
	case problem.Comparing:
		return Tokens(p.Answer, p.Display.Animals[0].Name, p.Display.Animals[1].Name, problem.TokenSame)
	case problem.Grouping:
		return Tokens(p.Answer, problem.TokenOdd, problem.TokenEven)
	case problem.Ascending, problem.Descending, problem.EvenFilter, problem.OddFilter:
		return nil
	default:
		return nil
	}
}
