package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/session"
	"github.com/vovakirdan/kids-arcade/internal/storage"
)

// PlayModel runs a quiz or bubble game on top of a session.
type PlayModel struct {
	game   registry.Game
	sess   *session.Session
	store  *storage.Store
	config core.RuntimeConfig
	logger *log.Logger

	keys  KeyMap
	help  help.Model
	theme Theme

	cursor   int
	entry    core.NumberEntry
	last     *session.Result
	cheer    string
	answered int
	clockGen int

	width, height int
	quitting      bool
	backToMenu    bool
	scoreSaved    bool
}

// NewPlayModel starts a session for game and wraps it in a model.
func NewPlayModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (PlayModel, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	sess, err := NewGameSession(game, cfg)
	if err != nil {
		return PlayModel{}, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return PlayModel{
		game:   game,
		sess:   sess,
		store:  store,
		config: cfg,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		theme:  CurrentTheme(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}, nil
}

// Init starts the round clock for timed games.
func (m PlayModel) Init() tea.Cmd {
	if m.sess.Rules().Timed() {
		return clockCmd(m.clockGen)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ClockMsg:
		return m.handleClock(msg)

	case advanceMsg:
		if m.sess.Phase() == session.PhaseFeedback && m.sess.Snapshot().Round == msg.Round {
			return m.nextRound()
		}
	}

	return m, nil
}

func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	phase := m.sess.Phase()
	if r, ok := digitOf(msg); ok {
		if phase == session.PhaseActive {
			m.entry.Push(r)
		}
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.backToMenu = true
		return m, nil

	case core.ActionLeft, core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionRight, core.ActionDown:
		if m.cursor < m.choiceCount()-1 {
			m.cursor++
		}

	case core.ActionErase:
		m.entry.Erase()

	case core.ActionConfirm:
		switch phase {
		case session.PhaseActive:
			return m.submit()
		case session.PhaseFeedback:
			return m.nextRound()
		}

	case core.ActionRestart:
		if phase == session.PhaseGameOver {
			return m.restart()
		}
	}

	return m, nil
}

// choiceCount is the number of things the cursor can point at.
func (m PlayModel) choiceCount() int {
	if m.sess.Snapshot().Mode.IsSequence() {
		return len(m.sess.Remaining())
	}
	return len(m.sess.Options())
}

// choice returns the raw answer under the cursor or typed by the player.
func (m *PlayModel) choice() (string, bool) {
	if n, ok := m.entry.Take(); ok {
		return strconv.Itoa(n), true
	}

	if m.sess.Snapshot().Mode.IsSequence() {
		remaining := m.sess.Remaining()
		if m.cursor < len(remaining) {
			return strconv.Itoa(remaining[m.cursor]), true
		}
		return "", false
	}

	opts := m.sess.Options()
	if m.cursor < len(opts) {
		return opts[m.cursor].Value.String(), true
	}
	return "", false
}

func (m PlayModel) submit() (tea.Model, tea.Cmd) {
	raw, ok := m.choice()
	if !ok {
		return m, nil
	}

	res, err := m.sess.Submit(raw)
	if err != nil {
		m.logger.Debug("submit rejected", "error", err)
		return m, nil
	}
	m.last = &res
	m.answered++
	m.cheer = m.game.Cheer(res.Correct, m.answered)

	if n := m.choiceCount(); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}

	switch m.sess.Phase() {
	case session.PhaseGameOver:
		m.saveScore()
	case session.PhaseFeedback:
		return m, advanceCmd(m.sess.Snapshot().Round)
	}
	return m, nil
}

func (m PlayModel) nextRound() (tea.Model, tea.Cmd) {
	if err := m.sess.NextRound(); err != nil {
		m.logger.Debug("next round rejected", "error", err)
		return m, nil
	}
	m.cursor = 0
	m.entry.Clear()
	m.last = nil
	m.cheer = ""
	return m, nil
}

func (m PlayModel) restart() (tea.Model, tea.Cmd) {
	if err := m.sess.Restart(); err != nil {
		m.logger.Warn("restart failed", "error", err)
		return m, nil
	}
	m.cursor = 0
	m.entry.Clear()
	m.last = nil
	m.cheer = ""
	m.scoreSaved = false
	m.clockGen++
	return m, m.Init()
}

func (m PlayModel) handleClock(msg ClockMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.clockGen {
		return m, nil
	}
	if m.sess.Phase() == session.PhaseGameOver {
		return m, nil
	}

	expired, err := m.sess.Tick()
	if err != nil {
		m.logger.Warn("clock tick failed", "error", err)
	}
	if expired {
		m.cheer = "Time's up!"
		m.saveScore()
		return m, nil
	}
	return m, clockCmd(m.clockGen)
}

// saveScore stores the final score once per game.
func (m *PlayModel) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	st := m.sess.Snapshot()
	if m.store == nil || st.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), st.Mode.String(), st.Level, st.Score); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current view to a file.
func (m *PlayModel) saveScreenshot() {
	writeScreenshot(m.game.ID(), m.View(), m.logger)
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game.Kind() == registry.KindBubbles {
		return m.bubbleView()
	}
	return m.quizView()
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}

// Session exposes the running session.
func (m PlayModel) Session() *session.Session {
	return m.sess
}

// writeScreenshot saves view under ~/.kidsarcade/screenshots.
func writeScreenshot(gameID, view string, logger *log.Logger) {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".kidsarcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", gameID, timestamp))
	if err := os.WriteFile(path, []byte(view), 0o600); err != nil {
		logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}
