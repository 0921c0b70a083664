package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/games/memorymatch"
	"github.com/vovakirdan/kids-arcade/internal/multiplayer"
	"github.com/vovakirdan/kids-arcade/internal/registry"
	"github.com/vovakirdan/kids-arcade/internal/storage"
)

// MemoryModel runs a memory board, solo or hot-seat.
type MemoryModel struct {
	game   registry.Game
	board  *memorymatch.Board
	store  *storage.Store
	config core.RuntimeConfig
	logger *log.Logger

	keys  KeyMap
	help  help.Model
	theme Theme

	row, col int
	message  string
	clockGen int
	matchID  multiplayer.MatchID

	width, height int
	quitting      bool
	backToMenu    bool
	saved         bool
}

// NewMemoryModel deals a board for game.
func NewMemoryModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (MemoryModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	board, err := NewBoard(cfg)
	if err != nil {
		return MemoryModel{}, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return MemoryModel{
		game:    game,
		board:   board,
		store:   store,
		config:  cfg,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		theme:   CurrentTheme(),
		matchID: multiplayer.NewMatchID(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}, nil
}

// Init starts the stopwatch.
func (m MemoryModel) Init() tea.Cmd {
	return clockCmd(m.clockGen)
}

// Update handles messages for the board.
func (m MemoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ClockMsg:
		if msg.Gen != m.clockGen || m.board.Complete() {
			return m, nil
		}
		m.board.Tick()
		return m, clockCmd(m.clockGen)

	case resolveMsg:
		if m.board.Pending() {
			m.board.Resolve()
			m.message = ""
		}
	}
	return m, nil
}

func (m MemoryModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		writeScreenshot(m.game.ID(), m.View(), m.logger)
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
	case core.ActionUp:
		m.row = max(m.row-1, 0)
	case core.ActionDown:
		m.row = min(m.row+1, m.board.Rows-1)
	case core.ActionLeft:
		m.col = max(m.col-1, 0)
	case core.ActionRight:
		m.col = min(m.col+1, m.board.Cols-1)
	case core.ActionConfirm:
		return m.flip()
	case core.ActionRestart:
		if m.board.Complete() {
			return m.restart()
		}
	}
	return m, nil
}

func (m MemoryModel) flip() (tea.Model, tea.Cmd) {
	if m.board.Pending() {
		// Skip the wait and hide the pair straight away.
		m.board.Resolve()
		m.message = ""
		return m, nil
	}

	res, err := m.board.Flip(m.row*m.board.Cols + m.col)
	if err != nil {
		return m, nil
	}

	switch res.Outcome {
	case memorymatch.FlipMatch:
		m.message = m.game.Cheer(true, m.board.MatchedPairs())
		if res.Complete {
			m.finish()
		}
	case memorymatch.FlipMismatch:
		m.message = m.game.Cheer(false, m.board.Moves())
		return m, resolveCmd()
	}
	return m, nil
}

func (m MemoryModel) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	board, err := NewBoard(m.config)
	if err != nil {
		m.logger.Warn("cannot deal a new board", "error", err)
		return m, nil
	}
	m.board = board
	m.row, m.col = 0, 0
	m.message = ""
	m.saved = false
	m.matchID = multiplayer.NewMatchID()
	m.clockGen++
	return m, m.Init()
}

// finish records the board once: a score for solo play, a duel result for
// two players.
func (m *MemoryModel) finish() {
	if m.saved {
		return
	}
	m.saved = true
	if m.store == nil {
		return
	}

	d, _ := memorymatch.ParseDifficulty(m.config.Mode)
	if m.board.Mode() == multiplayer.MatchModeSolo {
		if _, err := m.store.SaveScore(m.game.ID(), string(d), d.Level(), m.board.Score()); err != nil {
			m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		}
		return
	}

	players := m.board.Players()
	out := m.board.Outcome()
	result := storage.DuelResult{
		MatchID:  m.matchID,
		GameID:   m.game.ID(),
		Player1:  players[0].Name,
		Player2:  players[1].Name,
		Pairs1:   players[0].Pairs,
		Pairs2:   players[1].Pairs,
		Moves:    m.board.Moves(),
		Duration: m.board.Seconds(),
	}
	if !out.Tie {
		result.Winner = players[out.Winner-1].Name
	}
	if _, err := m.store.SaveDuel(result); err != nil {
		m.logger.Warn("could not save duel", "match", m.matchID, "error", err)
	}
}

// View renders the board.
func (m MemoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.hud())
	b.WriteString("\n\n")
	b.WriteString(m.grid())
	b.WriteString("\n\n")

	switch {
	case m.board.Complete():
		b.WriteString(m.summary())
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys.gameOverHelp()))
	default:
		b.WriteString(m.theme.LevelUp.Render(m.message))
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys.boardHelp()))
	}

	if m.width <= 0 {
		return b.String()
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, b.String())
}

func (m MemoryModel) hud() string {
	parts := []string{m.theme.Title.Render(m.game.Title())}
	if m.board.Mode() == multiplayer.MatchModeSolo {
		parts = append(parts,
			m.stat("Pairs", fmt.Sprintf("%d/%d", m.board.MatchedPairs(), m.board.Pairs())),
			m.stat("Moves", fmt.Sprintf("%d", m.board.Moves())),
			m.stat("Time", fmt.Sprintf("%ds", m.board.Seconds())),
		)
		return strings.Join(parts, m.theme.Dim.Render("  │  "))
	}

	current := m.board.Current().ID
	for _, p := range m.board.Players() {
		label := fmt.Sprintf("%s: %d", p.Name, p.Pairs)
		if p.ID == current && !m.board.Complete() {
			parts = append(parts, m.theme.MenuItemActive.Render("▶ "+label))
		} else {
			parts = append(parts, m.theme.MenuItemNormal.Render(label))
		}
	}
	return strings.Join(parts, m.theme.Dim.Render("  │  "))
}

func (m MemoryModel) stat(label, value string) string {
	return m.theme.HUDLabel.Render(label+" ") + m.theme.HUDValue.Render(value)
}

func (m MemoryModel) grid() string {
	cards := m.board.Cards()
	rows := make([]string, 0, m.board.Rows)
	for r := 0; r < m.board.Rows; r++ {
		cells := make([]string, 0, m.board.Cols)
		for c := 0; c < m.board.Cols; c++ {
			card := cards[r*m.board.Cols+c]
			style, face := m.theme.CardHidden, "??"
			switch {
			case card.Matched:
				style, face = m.theme.CardMatched, card.Symbol
			case card.FaceUp:
				style, face = m.theme.CardUp, card.Symbol
			}
			if r == m.row && c == m.col && !m.board.Complete() {
				style = style.BorderForeground(m.theme.CardCursor.GetBorderTopForeground())
			}
			cells = append(cells, style.Render(face))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m MemoryModel) summary() string {
	if m.board.Mode() == multiplayer.MatchModeSolo {
		body := fmt.Sprintf("All pairs found!\n\nMoves: %d\nTime: %ds\nScore: %d",
			m.board.Moves(), m.board.Seconds(), m.board.Score())
		return m.theme.Overlay.Render(body)
	}

	out := m.board.Outcome()
	headline := "It's a tie!"
	if !out.Tie {
		headline = fmt.Sprintf("%s wins!", m.board.Players()[out.Winner-1].Name)
	}
	lines := []string{headline, ""}
	for _, p := range m.board.Players() {
		lines = append(lines, fmt.Sprintf("%s: %d pairs", p.Name, p.Pairs))
	}
	return m.theme.Overlay.Render(strings.Join(lines, "\n"))
}

// IsQuitting returns true if user requested to quit entirely.
func (m MemoryModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m MemoryModel) BackToMenu() bool {
	return m.backToMenu
}

// Board exposes the board being played.
func (m MemoryModel) Board() *memorymatch.Board {
	return m.board
}
