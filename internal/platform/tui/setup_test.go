package tui

import (
	"testing"

	"github.com/vovakirdan/kids-arcade/internal/core"
	_ "github.com/vovakirdan/kids-arcade/internal/games/countingfarm"
	"github.com/vovakirdan/kids-arcade/internal/games/monstermunch"
	"github.com/vovakirdan/kids-arcade/internal/games/numberbubbles"
	"github.com/vovakirdan/kids-arcade/internal/level"
	"github.com/vovakirdan/kids-arcade/internal/problem"
	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/session"
)

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func mustCreate(t *testing.T, id string) registry.Game {
	t.Helper()
	g, err := registry.Create(id)
	if err != nil {
		t.Fatalf("Create(%q): %v", id, err)
	}
	return g
}

func TestNewGameSessionPresets(t *testing.T) {
	g := mustCreate(t, monstermunch.ID)

	tests := []struct {
		difficulty string
		startLevel int
		wantLevel  int
		wantLives  int
	}{
		{"", 0, 2, monstermunch.Lives},
		{"easy", 0, 1, monstermunch.Lives + 2},
		{"hard", 0, 4, monstermunch.Lives - 1},
		{"fixed", 0, 1, monstermunch.Lives},
		{"normal", 5, 5, monstermunch.Lives},
		{"normal", 99, level.DefaultTable().MaxLevel(), monstermunch.Lives},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			cfg := testConfig()
			cfg.Difficulty = tt.difficulty
			cfg.StartLevel = tt.startLevel

			sess, err := NewGameSession(g, cfg)
			if err != nil {
				t.Fatalf("NewGameSession: %v", err)
			}
			st := sess.Snapshot()
			if st.Level != tt.wantLevel {
				t.Errorf("level = %d, want %d", st.Level, tt.wantLevel)
			}
			if st.Lives != tt.wantLives {
				t.Errorf("lives = %d, want %d", st.Lives, tt.wantLives)
			}
			if st.Phase != session.PhaseActive {
				t.Errorf("phase = %s, want active", st.Phase)
			}
			if got := sess.Rules().FixedLevel; got != (tt.difficulty == "fixed") {
				t.Errorf("FixedLevel = %v", got)
			}
		})
	}
}

func TestNewGameSessionModes(t *testing.T) {
	g := mustCreate(t, numberbubbles.ID)

	cfg := testConfig()
	sess, err := NewGameSession(g, cfg)
	if err != nil {
		t.Fatalf("default mode: %v", err)
	}
	if got := sess.Snapshot().Mode; got != problem.Ascending {
		t.Errorf("default mode = %s, want ascending", got)
	}
	if sess.Snapshot().TimeLeft != numberbubbles.TimeLimit {
		t.Errorf("first round timer = %d, want %d", sess.Snapshot().TimeLeft, numberbubbles.TimeLimit)
	}

	cfg.Mode = "odd"
	if _, err := NewGameSession(g, cfg); err != nil {
		t.Errorf("odd mode: %v", err)
	}

	cfg.Mode = "addition"
	if _, err := NewGameSession(g, cfg); err == nil {
		t.Error("number bubbles should reject addition")
	}

	cfg.Mode = ""
	cfg.Difficulty = "impossible"
	if _, err := NewGameSession(g, cfg); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestNewBoard(t *testing.T) {
	cfg := testConfig()
	cfg.Mode = "medium"
	board, err := NewBoard(cfg)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if board.Rows != 4 || board.Cols != 4 {
		t.Errorf("size = %dx%d, want 4x4", board.Rows, board.Cols)
	}

	cfg.Mode = "giant"
	if _, err := NewBoard(cfg); err == nil {
		t.Error("unknown board size should fail")
	}
}
