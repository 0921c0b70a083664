package core

import (
	"strconv"
	"strings"
)

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionConfirm        // Enter, Space - answer, pop or flip
	ActionErase          // Backspace - drop the last typed digit
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionScores         // Tab - open the scoreboard from the menu
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionErase:
		return "Erase"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScores:
		return "Scores"
	default:
		return "Unknown"
	}
}

// MaxDigits bounds a typed answer.
const MaxDigits = 3

// NumberEntry collects digits typed by the player before Enter.
type NumberEntry struct {
	digits []byte
}

// Push appends a digit. It reports false for non-digits or a full entry.
func (e *NumberEntry) Push(r rune) bool {
	if r < '0' || r > '9' || len(e.digits) >= MaxDigits {
		return false
	}
	e.digits = append(e.digits, byte(r))
	return true
}

// Erase drops the last digit.
func (e *NumberEntry) Erase() {
	if len(e.digits) > 0 {
		e.digits = e.digits[:len(e.digits)-1]
	}
}

// Clear empties the entry.
func (e *NumberEntry) Clear() {
	e.digits = e.digits[:0]
}

// Empty reports whether nothing has been typed.
func (e NumberEntry) Empty() bool {
	return len(e.digits) == 0
}

// Value returns the typed number.
func (e NumberEntry) Value() (int, bool) {
	if e.Empty() {
		return 0, false
	}
	n, err := strconv.Atoi(string(e.digits))
	return n, err == nil
}

// String returns the digits typed so far, trimmed of leading zeros.
func (e NumberEntry) String() string {
	s := strings.TrimLeft(string(e.digits), "0")
	if s == "" && !e.Empty() {
		return "0"
	}
	return s
}

// Take returns the typed number and clears the entry.
func (e *NumberEntry) Take() (int, bool) {
	n, ok := e.Value()
	e.Clear()
	return n, ok
}
