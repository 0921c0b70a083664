// Package multiplayer holds the player and match identifiers shared by
// two-player games and the score store.
package multiplayer

import (
	"fmt"

	"github.com/google/uuid"
)

// PlayerID identifies a seat at the terminal. Player1 always starts.
type PlayerID int

const (
	NoPlayer PlayerID = iota
	Player1
	Player2
)

// String returns a display name for the seat.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Nobody"
	}
}

// MatchID uniquely identifies a finished or running match.
type MatchID string

// NewMatchID returns a random match identifier.
func NewMatchID() MatchID {
	return MatchID(uuid.NewString())
}

// MatchMode defines how many people share a board.
type MatchMode int

const (
	// MatchModeSolo is a single player counting moves.
	MatchModeSolo MatchMode = iota

	// MatchModeHotSeat is two players taking turns on one terminal.
	MatchModeHotSeat
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Solo"
	case MatchModeHotSeat:
		return "Two Players"
	default:
		return "Unknown"
	}
}

// ParseMatchMode maps a player count to a mode.
func ParseMatchMode(players int) (MatchMode, error) {
	switch players {
	case 0, 1:
		return MatchModeSolo, nil
	case 2:
		return MatchModeHotSeat, nil
	default:
		return MatchModeSolo, fmt.Errorf("multiplayer: %d players not supported", players)
	}
}

// Player is a named seat with its collected pairs.
type Player struct {
	ID    PlayerID
	Name  string
	Pairs int
}

// Outcome is the result of a two-player match.
type Outcome struct {
	Winner PlayerID // NoPlayer on a tie
	Tie    bool
}

// Decide compares pair counts of two players.
func Decide(p1, p2 Player) Outcome {
	switch {
	case p1.Pairs > p2.Pairs:
		return Outcome{Winner: p1.ID}
	case p2.Pairs > p1.Pairs:
		return Outcome{Winner: p2.ID}
	default:
		return Outcome{Tie: true}
	}
}
