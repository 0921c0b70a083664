package rng

// Scripted replays a fixed list of integers for IntRange.
// Each scripted value is clamped into the requested range. Once the script
// runs out, draws fall through to a seeded fallback source. Shuffle never
// reorders anything, which keeps scripted scenarios readable.
type Scripted struct {
	values   []int
	next     int
	fallback *Seeded
}

// NewScripted returns a Source that yields values in order.
func NewScripted(values ...int) *Scripted {
	return &Scripted{
		values:   values,
		fallback: New(1),
	}
}

// IntRange implements Source.
func (s *Scripted) IntRange(lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if s.next >= len(s.values) {
		return s.fallback.IntRange(lo, hi)
	}
	v := s.values[s.next]
	s.next++
	return min(max(v, lo), hi)
}

// Shuffle implements Source as the identity permutation.
func (s *Scripted) Shuffle(int, func(i, j int)) {}

// Remaining reports how many scripted values have not been consumed.
func (s *Scripted) Remaining() int {
	return len(s.values) - s.next
}
