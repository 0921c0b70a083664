package numberbubbles

import (
	"testing"

	"github.com/vovakirdan/kids-arcade/internal/registry"
)

func TestRegistered(t *testing.T) {
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Kind() != registry.KindBubbles {
		t.Errorf("kind = %s, want bubbles", g.Kind())
	}
	for _, mode := range g.Modes() {
		if !mode.IsSequence() {
			t.Errorf("mode %s is not a bubble mode", mode)
		}
	}
}

func TestRoundTimer(t *testing.T) {
	r := New().Rules()

	tests := []struct {
		level int
		first bool
		want  int
	}{
		{1, true, 60},
		{5, true, 60},
		{1, false, 55},
		{2, false, 50},
		{6, false, 30},
		{10, false, 30},
	}
	for _, tt := range tests {
		if got := r.RoundTime(tt.level, tt.first); got != tt.want {
			t.Errorf("RoundTime(%d, %v) = %d, want %d", tt.level, tt.first, got, tt.want)
		}
	}
}
