package session

import (
	"github.com/vovakirdan/kids-arcade/internal/level"
	"github.com/vovakirdan/kids-arcade/internal/problem"
)

const (
	pointsPerLevel = 10
	popReward      = 10
	popPenalty     = 5
)

// Evaluate scores a quiz answer against st.Problem and applies the lives
// and streak rules. Answers that match nothing are simply incorrect.
func Evaluate(st *State, submitted problem.Answer, policy *level.Policy, rules Rules) Result {
	res := Result{Submitted: submitted}
	if st.Problem != nil {
		res.CorrectAnswer = st.Problem.Answer
		res.Correct = submitted.Equal(st.Problem.Answer)
	}

	st.Streak = st.Streak.Record(res.Correct)
	if res.Correct {
		res.Points = pointsPerLevel * st.Level
		st.Score += res.Points
	} else if rules.Lives > 0 {
		st.Lives = max(st.Lives-1, 0)
		res.GameOver = st.Lives == 0
	}

	if rules.FixedLevel {
		res.Score = st.Score
		res.NewLevel = st.Level
		res.LivesLeft = st.Lives
		return res
	}

	tr, streak := policy.Advance(st.Level, st.Streak)
	st.Streak = streak
	if tr.Changed() {
		st.Level = tr.To
		res.LevelChanged = true
		res.Direction = tr.Direction
	}

	res.Score = st.Score
	res.NewLevel = st.Level
	res.LivesLeft = st.Lives
	return res
}

// EvaluatePop scores one bubble pop in a sequence round. Clearing the last
// bubble completes the round and raises the level by one unless the rules
// pin it.
func EvaluatePop(st *State, value int, policy *level.Policy, rules Rules) Result {
	res := Result{Submitted: problem.Number(value)}
	seq := st.Problem.Sequence
	if seq == nil {
		return res
	}

	if seq.Ordered {
		if want, ok := seq.Expected(st.Progress.Next); ok {
			res.CorrectAnswer = problem.Number(want)
			res.Correct = want == value
		}
	} else {
		res.Correct = seq.Contains(value) && !st.Progress.Popped[value]
	}

	if res.Correct {
		st.Progress.Popped[value] = true
		st.Progress.Next++
		res.Points = popReward
		st.Score += popReward
	} else {
		before := st.Score
		st.Score = max(st.Score-popPenalty, 0)
		res.Points = st.Score - before
	}

	if st.Progress.Count() >= seq.Len() {
		res.RoundComplete = true
		next := policy.Table().Clamp(st.Level + 1)
		if !rules.FixedLevel && next != st.Level {
			res.LevelChanged = true
			res.Direction = level.Up
			st.Level = next
		}
	}

	res.Score = st.Score
	res.NewLevel = st.Level
	res.LivesLeft = st.Lives
	return res
}
