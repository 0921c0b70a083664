package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/storage"
)

// GameScreen is a running game the menu can return from.
type GameScreen interface {
	tea.Model
	IsQuitting() bool
	BackToMenu() bool
}

// NewGameScreen picks the screen for the game's kind.
func NewGameScreen(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (GameScreen, error) {
	switch game.Kind() {
	case registry.KindQuiz, registry.KindBubbles:
		m, err := NewPlayModel(game, store, cfg)
		if err != nil {
			return nil, err
		}
		return m, nil
	case registry.KindMemory:
		m, err := NewMemoryModel(game, store, cfg)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("tui: no screen for %s games", game.Kind())
	}
}

// standalone ends the program when the game asks to go back, since there
// is no menu to return to.
type standalone struct {
	GameScreen
}

func (s standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.GameScreen.Update(msg)
	screen, ok := next.(GameScreen)
	if !ok {
		return next, cmd
	}
	if screen.BackToMenu() {
		return standalone{screen}, tea.Quit
	}
	return standalone{screen}, cmd
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	screen, err := NewGameScreen(game, store, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		standalone{screen},
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
