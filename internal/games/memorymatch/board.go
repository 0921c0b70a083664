package memorymatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/kids-arcade/internal/multiplayer"
	"github.com/vovakirdan/kids-arcade/internal/rng"
)

// Symbols is the card deck; a board uses the first rows*cols/2 of them.
var Symbols = []string{
	"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼",
	"🦁", "🐯", "🐨", "🐮", "🐷", "🐸", "🐵", "🦄",
	"🦉", "🦇", "🐺", "🐗", "🐴", "🦋", "🐙", "🦂",
}

// Difficulty selects the board size.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the board sizes from smallest to largest.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Level ranks the difficulty from 1 (easy) to 3 (hard) for score records.
func (d Difficulty) Level() int {
	switch d {
	case Medium:
		return 2
	case Hard:
		return 3
	default:
		return 1
	}
}

// Size returns rows and columns for the difficulty.
func (d Difficulty) Size() (rows, cols int) {
	switch d {
	case Medium:
		return 4, 4
	case Hard:
		return 4, 6
	default:
		return 3, 4
	}
}

// ParseDifficulty reads a difficulty name; empty means easy.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return Easy, nil
	case Easy, Medium, Hard:
		return d, nil
	default:
		return Easy, fmt.Errorf("memorymatch: unknown difficulty %q", s)
	}
}

// ErrPendingMismatch is returned by Flip while a mismatched pair is still
// face up and waiting for Resolve.
var ErrPendingMismatch = errors.New("memorymatch: resolve the mismatch first")

// Card is one face of the board.
type Card struct {
	Symbol  string
	FaceUp  bool
	Matched bool
}

// FlipOutcome describes what a flip did.
type FlipOutcome int

const (
	FlipIgnored  FlipOutcome = iota // matched, face-up or out-of-range card
	FlipFirst                       // first card of a turn
	FlipMatch                       // second card matched the first
	FlipMismatch                    // second card did not match
)

// FlipResult is returned by Board.Flip.
type FlipResult struct {
	Outcome  FlipOutcome
	Player   multiplayer.PlayerID // who flipped
	Complete bool
}

// Board is a shuffled memory grid with its players.
type Board struct {
	Rows, Cols int

	cards   []Card
	open    []int
	players []multiplayer.Player
	turn    int
	moves   int
	matched int
	seconds int
	pending bool
}

// NewBoard deals a shuffled board. One name plays solo, two names take
// turns; missing names get seat defaults.
func NewBoard(d Difficulty, names []string, src rng.Source) *Board {
	rows, cols := d.Size()
	pairs := rows * cols / 2

	cards := make([]Card, 0, pairs*2)
	for _, sym := range Symbols[:pairs] {
		cards = append(cards, Card{Symbol: sym}, Card{Symbol: sym})
	}
	src.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })

	seats := 1
	if len(names) >= 2 {
		seats = 2
	}
	players := make([]multiplayer.Player, seats)
	for i := range players {
		id := multiplayer.PlayerID(i + 1)
		name := id.String()
		if i < len(names) && strings.TrimSpace(names[i]) != "" {
			name = strings.TrimSpace(names[i])
		}
		players[i] = multiplayer.Player{ID: id, Name: name}
	}

	return &Board{
		Rows:    rows,
		Cols:    cols,
		cards:   cards,
		players: players,
	}
}

// Cards returns a copy of the grid in row-major order.
func (b *Board) Cards() []Card {
	out := make([]Card, len(b.cards))
	copy(out, b.cards)
	return out
}

// Mode reports whether the board is solo or two-player.
func (b *Board) Mode() multiplayer.MatchMode {
	if len(b.players) == 2 {
		return multiplayer.MatchModeHotSeat
	}
	return multiplayer.MatchModeSolo
}

// Players returns the seats and their pair counts.
func (b *Board) Players() []multiplayer.Player {
	out := make([]multiplayer.Player, len(b.players))
	copy(out, b.players)
	return out
}

// Current returns the player whose turn it is.
func (b *Board) Current() multiplayer.Player {
	return b.players[b.turn]
}

// Moves counts completed turns (two flips each).
func (b *Board) Moves() int { return b.moves }

// Seconds is the elapsed solo time.
func (b *Board) Seconds() int { return b.seconds }

// Pairs returns the number of pairs on the board.
func (b *Board) Pairs() int { return len(b.cards) / 2 }

// MatchedPairs returns how many pairs have been found.
func (b *Board) MatchedPairs() int { return b.matched }

// Pending reports whether a mismatched pair waits for Resolve.
func (b *Board) Pending() bool { return b.pending }

// Complete reports whether every pair has been matched.
func (b *Board) Complete() bool {
	return b.matched == b.Pairs()
}

// Flip turns card i face up. The second flip of a turn resolves it: a
// match keeps both cards up and scores for the current player, a mismatch
// leaves both up until Resolve.
func (b *Board) Flip(i int) (FlipResult, error) {
	res := FlipResult{Player: b.Current().ID}
	if b.pending {
		return res, ErrPendingMismatch
	}
	if i < 0 || i >= len(b.cards) || b.cards[i].FaceUp || b.cards[i].Matched {
		return res, nil
	}

	b.cards[i].FaceUp = true
	b.open = append(b.open, i)
	if len(b.open) == 1 {
		res.Outcome = FlipFirst
		return res, nil
	}

	b.moves++
	first, second := b.open[0], b.open[1]
	if b.cards[first].Symbol == b.cards[second].Symbol {
		b.cards[first].Matched = true
		b.cards[second].Matched = true
		b.open = b.open[:0]
		b.matched++
		b.players[b.turn].Pairs++
		res.Outcome = FlipMatch
		res.Complete = b.Complete()
		return res, nil
	}

	b.pending = true
	res.Outcome = FlipMismatch
	return res, nil
}

// Resolve hides a mismatched pair and passes the turn in two-player games.
func (b *Board) Resolve() {
	if !b.pending {
		return
	}
	for _, i := range b.open {
		b.cards[i].FaceUp = false
	}
	b.open = b.open[:0]
	b.pending = false
	if len(b.players) == 2 {
		b.turn = 1 - b.turn
	}
}

// Tick adds a second to the solo clock until the board is complete.
func (b *Board) Tick() {
	if !b.Complete() {
		b.seconds++
	}
}

// Outcome decides a finished two-player board.
func (b *Board) Outcome() multiplayer.Outcome {
	if len(b.players) < 2 {
		return multiplayer.Outcome{Winner: b.players[0].ID}
	}
	return multiplayer.Decide(b.players[0], b.players[1])
}

// Score rates a solo board for the high-score table: 10 points per pair
// plus a bonus that shrinks with every wasted move.
func (b *Board) Score() int {
	wasted := max(b.moves-b.matched, 0)
	bonus := max(10*b.Pairs()-5*wasted, 0)
	return 10*b.matched + bonus
}
