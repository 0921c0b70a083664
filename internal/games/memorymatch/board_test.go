package memorymatch

import (
	"errors"
	"testing"

	"github.com/vovakirdan/kids-arcade/internal/multiplayer"
	"github.com/vovakirdan/kids-arcade/internal/rng"
)

// unshuffled deals cards in deck order: 0,1 are a pair, 2,3 are a pair...
func unshuffled(t *testing.T, d Difficulty, names ...string) *Board {
	t.Helper()
	return NewBoard(d, names, rng.NewScripted())
}

func TestBoardSizes(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		rows, cols int
	}{
		{Easy, 3, 4},
		{Medium, 4, 4},
		{Hard, 4, 6},
	}

	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			b := NewBoard(tt.difficulty, nil, rng.New(1))
			if b.Rows != tt.rows || b.Cols != tt.cols {
				t.Errorf("size = %dx%d, want %dx%d", b.Rows, b.Cols, tt.rows, tt.cols)
			}

			counts := map[string]int{}
			for _, c := range b.Cards() {
				counts[c.Symbol]++
			}
			if len(counts) != tt.rows*tt.cols/2 {
				t.Errorf("distinct symbols = %d, want %d", len(counts), tt.rows*tt.cols/2)
			}
			for sym, n := range counts {
				if n != 2 {
					t.Errorf("symbol %s appears %d times", sym, n)
				}
			}
		})
	}
}

func TestDifficultyLevel(t *testing.T) {
	for i, d := range Difficulties {
		if d.Level() != i+1 {
			t.Errorf("%s.Level() = %d, want %d", d, d.Level(), i+1)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	if d, err := ParseDifficulty(" Hard "); err != nil || d != Hard {
		t.Errorf("ParseDifficulty(Hard) = %v, %v", d, err)
	}
	if d, err := ParseDifficulty(""); err != nil || d != Easy {
		t.Errorf("ParseDifficulty(\"\") = %v, %v", d, err)
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("ParseDifficulty(nightmare) should fail")
	}
}

func TestSoloMatchAndMismatch(t *testing.T) {
	b := unshuffled(t, Easy)

	res, err := b.Flip(0)
	if err != nil || res.Outcome != FlipFirst {
		t.Fatalf("Flip(0) = %+v, %v", res, err)
	}
	res, _ = b.Flip(2)
	if res.Outcome != FlipMismatch || !b.Pending() {
		t.Fatalf("Flip(2) = %+v, want mismatch", res)
	}
	if _, err := b.Flip(4); !errors.Is(err, ErrPendingMismatch) {
		t.Errorf("Flip during mismatch error = %v", err)
	}

	b.Resolve()
	if cards := b.Cards(); cards[0].FaceUp || cards[2].FaceUp {
		t.Error("Resolve() left mismatched cards face up")
	}

	b.Flip(0)
	res, _ = b.Flip(1)
	if res.Outcome != FlipMatch {
		t.Fatalf("Flip(1) = %+v, want match", res)
	}
	if b.Moves() != 2 || b.MatchedPairs() != 1 {
		t.Errorf("moves=%d matched=%d, want 2 and 1", b.Moves(), b.MatchedPairs())
	}

	if res, _ := b.Flip(1); res.Outcome != FlipIgnored {
		t.Errorf("flipping a matched card = %+v, want ignored", res)
	}
	if res, _ := b.Flip(99); res.Outcome != FlipIgnored {
		t.Errorf("flipping out of range = %+v, want ignored", res)
	}
}

func TestSoloCompleteAndScore(t *testing.T) {
	b := unshuffled(t, Easy)
	for i := 0; i < len(b.Cards()); i += 2 {
		b.Flip(i)
		res, _ := b.Flip(i + 1)
		if res.Outcome != FlipMatch {
			t.Fatalf("pair %d not matched", i/2)
		}
		if last := i+2 == len(b.Cards()); res.Complete != last {
			t.Fatalf("pair %d Complete = %v", i/2, res.Complete)
		}
	}

	if !b.Complete() {
		t.Fatal("Complete() = false")
	}
	// Perfect game: 6 pairs, no wasted moves.
	if got := b.Score(); got != 120 {
		t.Errorf("Score() = %d, want 120", got)
	}

	b.Tick()
	if b.Seconds() != 0 {
		t.Error("Tick() counted time after completion")
	}
}

func TestTwoPlayerTurns(t *testing.T) {
	b := unshuffled(t, Easy, "Ana", "Ben")
	if b.Mode() != multiplayer.MatchModeHotSeat {
		t.Fatalf("Mode() = %v, want hot seat", b.Mode())
	}
	if b.Current().Name != "Ana" {
		t.Fatalf("first player = %s, want Ana", b.Current().Name)
	}

	// Ana matches and keeps the turn.
	b.Flip(0)
	b.Flip(1)
	if b.Current().ID != multiplayer.Player1 {
		t.Error("turn passed after a match")
	}

	// Ana misses; the turn passes to Ben after Resolve.
	b.Flip(2)
	b.Flip(4)
	b.Resolve()
	if b.Current().Name != "Ben" {
		t.Fatalf("turn after miss = %s, want Ben", b.Current().Name)
	}

	for i := 2; i < len(b.Cards()); i += 2 {
		b.Flip(i)
		b.Flip(i + 1)
	}

	players := b.Players()
	if players[0].Pairs != 1 || players[1].Pairs != 5 {
		t.Errorf("pairs = %d/%d, want 1/5", players[0].Pairs, players[1].Pairs)
	}
	if out := b.Outcome(); out.Tie || out.Winner != multiplayer.Player2 {
		t.Errorf("Outcome() = %+v, want Ben to win", out)
	}
}

func TestTwoPlayerTie(t *testing.T) {
	b := unshuffled(t, Easy, "Ana", "")
	if b.Players()[1].Name != "Player 2" {
		t.Errorf("blank name = %q, want default", b.Players()[1].Name)
	}

	// Ana takes three pairs, misses, then Ben takes the other three.
	for i := 0; i < 6; i += 2 {
		b.Flip(i)
		b.Flip(i + 1)
	}
	b.Flip(6)
	b.Flip(8)
	b.Resolve()
	for i := 6; i < 12; i += 2 {
		b.Flip(i)
		b.Flip(i + 1)
	}

	if out := b.Outcome(); !out.Tie {
		t.Errorf("Outcome() = %+v, want tie", out)
	}
}
