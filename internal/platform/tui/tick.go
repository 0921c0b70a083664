// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// clockInterval drives round timers and the memory stopwatch.
	clockInterval = time.Second

	// feedbackDelay is how long an answer stays on screen before the next
	// round starts by itself.
	feedbackDelay = 1500 * time.Millisecond

	// mismatchDelay keeps a wrong pair visible before it flips back.
	mismatchDelay = time.Second
)

// ClockMsg is one second of game time. Gen identifies the clock that sent
// it so a restarted game ignores ticks from the previous one.
type ClockMsg struct {
	Gen int
}

// advanceMsg moves past the feedback of Round.
type advanceMsg struct {
	Round int
}

// resolveMsg flips a mismatched memory pair back.
type resolveMsg struct{}

// clockCmd returns a command that sends one ClockMsg after a second.
func clockCmd(gen int) tea.Cmd {
	return tea.Tick(clockInterval, func(time.Time) tea.Msg {
		return ClockMsg{Gen: gen}
	})
}

func advanceCmd(round int) tea.Cmd {
	return tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return advanceMsg{Round: round}
	})
}

func resolveCmd() tea.Cmd {
	return tea.Tick(mismatchDelay, func(time.Time) tea.Msg {
		return resolveMsg{}
	})
}
