package level

// StreakThreshold is the number of consecutive answers that moves a level.
const StreakThreshold = 3

// Streak counts consecutive correct and incorrect answers.
// At most one of the two counters is non-zero.
type Streak struct {
	Correct   int
	Incorrect int
}

// Record returns the streak after one more answer.
func (s Streak) Record(correct bool) Streak {
	if correct {
		return Streak{Correct: s.Correct + 1}
	}
	return Streak{Incorrect: s.Incorrect + 1}
}

// Direction describes how a level changed.
type Direction int

const (
	Same Direction = iota
	Up
	Down
)

// String returns a lowercase name for logs.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "same"
	}
}

// Transition is the outcome of Policy.Advance.
type Transition struct {
	From      int
	To        int
	Direction Direction
}

// Changed reports whether the level moved.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Policy combines a level table with the streak rules.
type Policy struct {
	table     Table
	allowDown bool
}

// NewPolicy creates a policy. When allowDown is false, incorrect streaks
// never lower the level.
func NewPolicy(table Table, allowDown bool) *Policy {
	if table.Len() == 0 {
		table = DefaultTable()
	}
	return &Policy{table: table, allowDown: allowDown}
}

// Table returns the policy's level table.
func (p *Policy) Table() Table {
	return p.table
}

// AllowsDown reports whether incorrect streaks lower the level.
func (p *Policy) AllowsDown() bool {
	return p.allowDown
}

// ParametersFor returns clamped parameters for a level.
func (p *Policy) ParametersFor(lvl int) Params {
	return p.table.ParametersFor(lvl)
}

// Advance applies the streak rules to the current level. A streak that
// reaches the threshold is reset even when the level is already at its
// bound, so a capped player needs another full streak to trigger again.
func (p *Policy) Advance(current int, s Streak) (Transition, Streak) {
	current = p.table.Clamp(current)
	tr := Transition{From: current, To: current}

	switch {
	case s.Correct >= StreakThreshold:
		s.Correct = 0
		tr.To = min(current+1, p.table.MaxLevel())
	case s.Incorrect >= StreakThreshold && p.allowDown:
		s.Incorrect = 0
		tr.To = max(current-1, 1)
	}

	switch {
	case tr.To > tr.From:
		tr.Direction = Up
	case tr.To < tr.From:
		tr.Direction = Down
	}
	return tr, s
}
