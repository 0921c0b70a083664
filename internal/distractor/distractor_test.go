package distractor

import (
	"testing"

	"github.com/vovakirdan/kids-arcade/internal/level"
	"github.com/vovakirdan/kids-arcade/internal/problem"
	"github.com/vovakirdan/kids-arcade/internal/rng"
)

func checkSet(t *testing.T, set problem.AnswerSet, correct, floor int) {
	t.Helper()

	if len(set) != OptionCount {
		t.Fatalf("correct=%d: len = %d, want %d", correct, len(set), OptionCount)
	}

	seen := map[int]bool{}
	correctCount := 0
	for _, o := range set {
		n, ok := o.Value.Int()
		if !ok {
			t.Fatalf("correct=%d: non-numeric option %v", correct, o.Value)
		}
		if seen[n] {
			t.Fatalf("correct=%d: duplicate option %d in %v", correct, n, set.Values())
		}
		seen[n] = true
		if o.Correct {
			correctCount++
			if n != correct {
				t.Fatalf("correct=%d: option %d marked correct", correct, n)
			}
		} else if n < floor {
			t.Fatalf("correct=%d: distractor %d below floor %d", correct, n, floor)
		}
	}
	if correctCount != 1 {
		t.Fatalf("correct=%d: %d options marked correct", correct, correctCount)
	}
	if !seen[correct] {
		t.Fatalf("correct=%d missing from %v", correct, set.Values())
	}
}

func TestNumericSweep(t *testing.T) {
	for _, maxValue := range []int{6, 10, 20} {
		for seed := int64(1); seed <= 5; seed++ {
			src := rng.New(seed)
			for correct := 0; correct <= 100; correct++ {
				set := Numeric(correct, Options{MaxValue: maxValue}, src)
				checkSet(t, set, correct, 1)
			}
		}
	}
}

func TestNumericAllowZero(t *testing.T) {
	src := rng.New(2)
	for correct := 0; correct <= 30; correct++ {
		checkSet(t, Numeric(correct, Options{MaxValue: 20, AllowZero: true}, src), correct, 0)
	}
}

// stuckSource always returns the low bound, so every random draw after the
// first collides and the sequential fill must complete the set.
type stuckSource struct{}

func (stuckSource) IntRange(lo, _ int) int      { return lo }
func (stuckSource) Shuffle(int, func(i, j int)) {}

func TestNumericFallbackFill(t *testing.T) {
	set := Numeric(1, Options{MaxValue: 10}, stuckSource{})
	checkSet(t, set, 1, 1)

	want := []int{1, 2, 3, 4}
	for i, v := range set.Values() {
		if n, _ := v.Int(); n != want[i] {
			t.Errorf("option %d = %d, want %d", i, n, want[i])
		}
	}
}

func TestWindowWidens(t *testing.T) {
	tests := []struct {
		name        string
		correct     int
		floor       int
		adjustedMax int
	}{
		{"small", 2, 1, 7},
		{"medium", 9, 1, 20},
		{"capped high", 20, 1, 20},
		{"large", 80, 1, 85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := window(tt.correct, tt.floor, tt.adjustedMax)
			if hi-lo+1 < OptionCount {
				t.Errorf("window(%d) = [%d, %d], fewer than %d values", tt.correct, lo, hi, OptionCount)
			}
			if lo < tt.floor {
				t.Errorf("lo %d below floor %d", lo, tt.floor)
			}
		})
	}
}

func TestTokens(t *testing.T) {
	set := Tokens(problem.Token("same"), "cow", "pig", "same")
	if len(set) != 3 {
		t.Fatalf("len = %d, want 3", len(set))
	}
	if set.CorrectIndex() != 2 {
		t.Errorf("CorrectIndex() = %d, want 2", set.CorrectIndex())
	}

	set = Tokens(problem.Token("odd"), "odd", "even", "odd")
	if len(set) != 2 {
		t.Errorf("duplicates not dropped: %v", set.Values())
	}
}

func TestForProblem(t *testing.T) {
	src := rng.New(12)
	params := level.DefaultTable().ParametersFor(3)

	tests := []struct {
		mode problem.Mode
		size int
	}{
		{problem.Addition, 4},
		{problem.Subtraction, 4},
		{problem.Counting, 4},
		{problem.Sharing, 4},
		{problem.Comparing, 3},
		{problem.Grouping, 2},
		{problem.Ascending, 0},
		{problem.OddFilter, 0},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			p := problem.Generate(tt.mode, params, src)
			set := ForProblem(p, Options{MaxValue: 20}, src)
			if len(set) != tt.size {
				t.Fatalf("len = %d, want %d", len(set), tt.size)
			}
			if tt.size > 0 && !set[set.CorrectIndex()].Value.Equal(p.Answer) {
				t.Errorf("correct option %v != answer %v", set[set.CorrectIndex()].Value, p.Answer)
			}
		})
	}
}
