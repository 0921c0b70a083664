package problem

// Problem is a single generated question. Mode is always resolved, so it
// is never Mixed.
type Problem struct {
	Mode     Mode
	Level    int
	Operands []int
	Answer   Answer
	Display  Display
	Sequence *Sequence // set for sequence modes only
}

// Display carries presentation hints. The engine never reads it.
type Display struct {
	Question string
	Operator string   // "+" or "-" for arithmetic
	Animals  []Animal // counted or compared categories
	Counts   []int    // per-animal counts, aligned with Animals
	AskMore  bool     // comparing framing: "more" vs "fewer"
	Groups   int      // sharing: number of friends
	Total    int      // sharing: items to share
}

// Sequence is the bubble set of a sequence round.
type Sequence struct {
	Numbers []int // display order
	Targets []int // pop order for ordered modes, the full set otherwise
	Ordered bool
}

// Len returns the number of bubbles.
func (s *Sequence) Len() int {
	return len(s.Targets)
}

// Expected returns the target at position i for ordered rounds.
func (s *Sequence) Expected(i int) (int, bool) {
	if !s.Ordered || i < 0 || i >= len(s.Targets) {
		return 0, false
	}
	return s.Targets[i], true
}

// Contains reports whether n is one of the round's targets.
func (s *Sequence) Contains(n int) bool {
	for _, v := range s.Targets {
		if v == n {
			return true
		}
	}
	return false
}
