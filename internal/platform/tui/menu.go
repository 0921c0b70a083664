package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/games/memorymatch"
	"github.com/vovakirdan/kids-arcade/internal/multiplayer"
	"github.com/vovakirdan/kids-arcade/internal/registry"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Choices     []MenuChoice
}

// MenuChoice is one way to play a game: a mode or board size, and for
// boards the number of players.
type MenuChoice struct {
	Label   string
	Mode    string
	Players multiplayer.MatchMode
}

// Selection is what the player picked.
type Selection struct {
	GameID  string
	Mode    string
	Players multiplayer.MatchMode
}

// choicesFor lists the ways to play a registered game.
func choicesFor(info registry.GameInfo) []MenuChoice {
	if info.Kind == registry.KindMemory {
		var choices []MenuChoice
		for _, d := range memorymatch.Difficulties {
			rows, cols := d.Size()
			for _, mm := range []multiplayer.MatchMode{multiplayer.MatchModeSolo, multiplayer.MatchModeHotSeat} {
				choices = append(choices, MenuChoice{
					Label:   fmt.Sprintf("%dx%d board · %s", rows, cols, mm),
					Mode:    string(d),
					Players: mm,
				})
			}
		}
		return choices
	}

	g, err := registry.Create(info.ID)
	if err != nil {
		return nil
	}
	choices := make([]MenuChoice, 0, len(g.Modes()))
	for _, mode := range g.Modes() {
		choices = append(choices, MenuChoice{Label: mode.Label(), Mode: mode.String()})
	}
	return choices
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items        []MenuItem
	cursor       int
	choiceCursor int
	inChoices    bool
	width        int
	height       int
	config       core.RuntimeConfig
	keys         KeyMap
	help         help.Model
	theme        Theme

	quitting       bool
	selected       *Selection // Set when user selects a game
	openScoreboard bool       // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{
			GameID:      g.ID,
			Title:       g.Title,
			Description: g.Description,
			Choices:     choicesFor(g),
		})
	}

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		theme:  CurrentTheme(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		if m.inChoices {
			m.choiceCursor = max(m.choiceCursor-1, 0)
		} else {
			m.cursor = max(m.cursor-1, 0)
		}

	case core.ActionDown:
		if m.inChoices {
			m.choiceCursor = min(m.choiceCursor+1, len(m.items[m.cursor].Choices)-1)
		} else {
			m.cursor = min(m.cursor+1, len(m.items)-1)
		}

	case core.ActionConfirm, core.ActionRight:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		if !m.inChoices {
			if len(item.Choices) > 1 {
				m.inChoices = true
				m.choiceCursor = 0
				return m, nil
			}
			m.selected = &Selection{GameID: item.GameID}
			return m, tea.Quit
		}
		choice := item.Choices[m.choiceCursor]
		m.selected = &Selection{GameID: item.GameID, Mode: choice.Mode, Players: choice.Players}
		return m, tea.Quit // Exit menu to start game

	case core.ActionBack, core.ActionLeft:
		m.inChoices = false

	case core.ActionScores:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.theme.Title.Render("★  K I D S   A R C A D E  ★"))
	b.WriteString("\n\n")

	if m.inChoices {
		item := m.items[m.cursor]
		b.WriteString(m.theme.Question.Render(item.Title + ": how do you want to play?"))
		b.WriteString("\n")
		for i, c := range item.Choices {
			b.WriteString(m.line(i == m.choiceCursor, c.Label))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(m.theme.HUDLabel.Render("Pick a game"))
		b.WriteString("\n\n")
		for i, item := range m.items {
			b.WriteString(m.line(i == m.cursor, item.Title))
			b.WriteString("\n")
		}
		if len(m.items) > 0 {
			b.WriteString("\n")
			b.WriteString(m.theme.Dim.Render(m.items[m.cursor].Description))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys.menuHelp()))

	if m.width <= 0 {
		return b.String()
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, b.String())
}

func (m MenuModel) line(active bool, text string) string {
	if active {
		return m.theme.MenuItemActive.Render("> " + text)
	}
	return m.theme.MenuItemNormal.Render("  " + text)
}

// Selected returns the selected game, or nil if none selected.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// ConfigFor returns the runtime config for a selection. Two-player boards
// get seat names, with player1 used for the first seat when given.
func ConfigFor(cfg core.RuntimeConfig, sel Selection, player1 string) core.RuntimeConfig {
	var players []string
	if sel.Players == multiplayer.MatchModeHotSeat {
		if player1 == "" {
			player1 = multiplayer.Player1.String()
		}
		players = []string{player1, multiplayer.Player2.String()}
	}
	return cfg.WithSelection(sel.Mode, players)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.Selection = *m.Selected()
	return result, nil
}
