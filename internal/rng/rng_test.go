package rng

import "testing"

func TestSeededIntRangeBounds(t *testing.T) {
	r := New(42)
	for i := 0; i < 1000; i++ {
		v := r.IntRange(3, 7)
		if v < 3 || v > 7 {
			t.Fatalf("IntRange(3, 7) = %d, out of bounds", v)
		}
	}
}

func TestSeededIntRangeDegenerate(t *testing.T) {
	r := New(42)
	if got := r.IntRange(5, 5); got != 5 {
		t.Errorf("IntRange(5, 5) = %d, want 5", got)
	}
	if got := r.IntRange(9, 2); got != 9 {
		t.Errorf("IntRange(9, 2) = %d, want 9", got)
	}
}

func TestSeededDeterminism(t *testing.T) {
	a := New(7)
	b := New(7)
	for i := 0; i < 50; i++ {
		if x, y := a.IntRange(1, 100), b.IntRange(1, 100); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestRestore(t *testing.T) {
	a := New(99)
	for i := 0; i < 10; i++ {
		a.IntRange(1, 1000)
	}
	b := Restore(99, a.Position())

	for i := 0; i < 10; i++ {
		if x, y := a.IntRange(1, 1000), b.IntRange(1, 1000); x != y {
			t.Fatalf("restored draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestShuffleKeepsElements(t *testing.T) {
	r := New(3)
	values := []int{1, 2, 3, 4, 5, 6, 7, 8}
	r.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })

	seen := make(map[int]bool)
	for _, v := range values {
		seen[v] = true
	}
	if len(seen) != 8 {
		t.Errorf("Shuffle lost elements: %v", values)
	}
}

func TestScripted(t *testing.T) {
	s := NewScripted(3, 4, 50, -2)

	if got := s.IntRange(1, 5); got != 3 {
		t.Errorf("first draw = %d, want 3", got)
	}
	if got := s.IntRange(1, 5); got != 4 {
		t.Errorf("second draw = %d, want 4", got)
	}
	if got := s.IntRange(1, 10); got != 10 {
		t.Errorf("clamped high draw = %d, want 10", got)
	}
	if got := s.IntRange(1, 10); got != 1 {
		t.Errorf("clamped low draw = %d, want 1", got)
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", s.Remaining())
	}

	v := s.IntRange(1, 6)
	if v < 1 || v > 6 {
		t.Errorf("fallback draw = %d, out of bounds", v)
	}
}
