package level

import "testing"

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	if table.Len() != 5 {
		t.Fatalf("DefaultTable().Len() = %d, want 5", table.Len())
	}
	if table.MaxLevel() != 5 {
		t.Errorf("MaxLevel() = %d, want 5", table.MaxLevel())
	}

	prev := 0
	for _, e := range table.Entries() {
		if e.MaxNumber < prev {
			t.Errorf("level %d max_number %d decreases from %d", e.Level, e.MaxNumber, prev)
		}
		prev = e.MaxNumber
	}
}

func TestParametersForClamps(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name      string
		level     int
		wantLevel int
		wantMax   int
	}{
		{"below range", 0, 1, 5},
		{"negative", -4, 1, 5},
		{"first", 1, 1, 5},
		{"middle", 3, 3, 15},
		{"last", 5, 5, 30},
		{"above range", 99, 5, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := table.ParametersFor(tt.level)
			if p.Level != tt.wantLevel {
				t.Errorf("Level = %d, want %d", p.Level, tt.wantLevel)
			}
			if p.MaxOperand != tt.wantMax {
				t.Errorf("MaxOperand = %d, want %d", p.MaxOperand, tt.wantMax)
			}
		})
	}
}

func TestParametersForDerivedCounts(t *testing.T) {
	table := DefaultTable()
	p := table.ParametersFor(2)
	if p.ItemCount != 7 {
		t.Errorf("ItemCount = %d, want 7", p.ItemCount)
	}
	if p.SequenceMax != 14 {
		t.Errorf("SequenceMax = %d, want 14", p.SequenceMax)
	}
	if p.Name != "Getting Started" {
		t.Errorf("Name = %q, want %q", p.Name, "Getting Started")
	}
}

func TestNewTableNormalizes(t *testing.T) {
	table := NewTable([]Entry{
		{Level: 3, MaxNumber: 8},
		{Level: 0, MaxNumber: 100},
		{Level: 1, MaxNumber: -2, Items: 4, SequenceMax: 9},
	})

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}

	p := table.ParametersFor(1)
	if p.MaxOperand != 1 {
		t.Errorf("floored MaxOperand = %d, want 1", p.MaxOperand)
	}
	if p.ItemCount != 4 || p.SequenceMax != 9 {
		t.Errorf("overrides not kept: %+v", p)
	}
	if p.Name != "Level 1" {
		t.Errorf("Name = %q, want %q", p.Name, "Level 1")
	}

	// Level 2 is a gap and resolves to the level 1 row.
	if p := table.ParametersFor(2); p.MaxOperand != 1 || p.Level != 2 {
		t.Errorf("gap level params = %+v", p)
	}
}

func TestNewTableEmptyFallsBack(t *testing.T) {
	table := NewTable(nil)
	if table.Len() != len(DefaultEntries) {
		t.Errorf("empty table Len() = %d, want %d", table.Len(), len(DefaultEntries))
	}

	table = NewTable([]Entry{{Level: -1, MaxNumber: 3}})
	if table.Len() != len(DefaultEntries) {
		t.Errorf("invalid table Len() = %d, want %d", table.Len(), len(DefaultEntries))
	}
}

func TestNonMonotonicTable(t *testing.T) {
	table := NewTable([]Entry{
		{Level: 1, MaxNumber: 20},
		{Level: 2, MaxNumber: 3},
	})
	p := NewPolicy(table, true)

	tr, _ := p.Advance(1, Streak{Correct: 3})
	if tr.To != 2 {
		t.Fatalf("Advance() to = %d, want 2", tr.To)
	}
	if got := p.ParametersFor(tr.To).MaxOperand; got != 3 {
		t.Errorf("MaxOperand = %d, want 3", got)
	}
}

func TestStreakRecord(t *testing.T) {
	s := Streak{}
	s = s.Record(true)
	s = s.Record(true)
	if s.Correct != 2 || s.Incorrect != 0 {
		t.Errorf("after two correct: %+v", s)
	}

	s = s.Record(false)
	if s.Correct != 0 || s.Incorrect != 1 {
		t.Errorf("wrong answer should reset correct streak: %+v", s)
	}

	s = s.Record(true)
	if s.Correct != 1 || s.Incorrect != 0 {
		t.Errorf("correct answer should reset incorrect streak: %+v", s)
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name       string
		allowDown  bool
		level      int
		streak     Streak
		wantLevel  int
		wantDir    Direction
		wantStreak Streak
	}{
		{"no change", true, 2, Streak{Correct: 2}, 2, Same, Streak{Correct: 2}},
		{"level up", true, 2, Streak{Correct: 3}, 3, Up, Streak{}},
		{"capped up resets streak", true, 5, Streak{Correct: 3}, 5, Same, Streak{}},
		{"level down", true, 3, Streak{Incorrect: 3}, 2, Down, Streak{}},
		{"floored down resets streak", true, 1, Streak{Incorrect: 3}, 1, Same, Streak{}},
		{"down disabled", false, 3, Streak{Incorrect: 3}, 3, Same, Streak{Incorrect: 3}},
		{"out of range level clamps", true, 40, Streak{}, 5, Same, Streak{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolicy(DefaultTable(), tt.allowDown)
			tr, s := p.Advance(tt.level, tt.streak)
			if tr.To != tt.wantLevel {
				t.Errorf("To = %d, want %d", tr.To, tt.wantLevel)
			}
			if tr.Direction != tt.wantDir {
				t.Errorf("Direction = %v, want %v", tr.Direction, tt.wantDir)
			}
			if s != tt.wantStreak {
				t.Errorf("streak = %+v, want %+v", s, tt.wantStreak)
			}
		})
	}
}
