package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kids-arcade/internal/games/memorymatch"
	"github.com/vovakirdan/kids-arcade/internal/games/monstermunch"
	"github.com/vovakirdan/kids-arcade/internal/multiplayer"
)

func sendMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

// menuAt returns a menu with the cursor on game id.
func menuAt(t *testing.T, id string) MenuModel {
	t.Helper()
	m := NewMenuModel(testConfig())
	for i, item := range m.items {
		if item.GameID == id {
			m.cursor = i
			return m
		}
	}
	t.Fatalf("game %q not in menu", id)
	return m
}

func TestMenuListsGameChoices(t *testing.T) {
	m := menuAt(t, memorymatch.ID)
	item := m.items[m.cursor]
	if want := len(memorymatch.Difficulties) * 2; len(item.Choices) != want {
		t.Fatalf("memory choices = %d, want %d", len(item.Choices), want)
	}
	if item.Choices[1].Players != multiplayer.MatchModeHotSeat {
		t.Error("each board size should offer a two-player choice")
	}

	m = menuAt(t, monstermunch.ID)
	if got := len(m.items[m.cursor].Choices); got != 3 {
		t.Errorf("monster munch choices = %d, want 3", got)
	}
}

func TestMenuSelectChoice(t *testing.T) {
	m := menuAt(t, memorymatch.ID)

	m, _ = sendMenu(t, m, enter)
	if !m.inChoices {
		t.Fatal("enter should open the choices")
	}
	m, _ = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := sendMenu(t, m, enter)

	sel := m.Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	want := Selection{GameID: memorymatch.ID, Mode: string(memorymatch.Easy), Players: multiplayer.MatchModeHotSeat}
	if *sel != want {
		t.Errorf("selection = %+v, want %+v", *sel, want)
	}
	if cmd == nil {
		t.Error("a selection should close the menu")
	}
}

func TestMenuBackLeavesChoices(t *testing.T) {
	m := menuAt(t, monstermunch.ID)
	m, _ = sendMenu(t, m, enter)
	m, _ = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.inChoices || m.Selected() != nil {
		t.Error("esc should return to the game list")
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(testConfig())
	m, _ = sendMenu(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = NewMenuModel(testConfig())
	m, _ = sendMenu(t, m, runeKey("q"))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit the menu")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(testConfig())
	m, _ = sendMenu(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config size = %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestConfigFor(t *testing.T) {
	base := testConfig()

	solo := ConfigFor(base, Selection{GameID: memorymatch.ID, Mode: "hard"}, "ana")
	if solo.Mode != "hard" || len(solo.Players) != 0 {
		t.Errorf("solo config = %q %v", solo.Mode, solo.Players)
	}

	duel := ConfigFor(base, Selection{GameID: memorymatch.ID, Mode: "easy", Players: multiplayer.MatchModeHotSeat}, "ana")
	if len(duel.Players) != 2 || duel.Players[0] != "ana" || duel.Players[1] != "Player 2" {
		t.Errorf("duel players = %v", duel.Players)
	}

	anon := ConfigFor(base, Selection{GameID: memorymatch.ID, Players: multiplayer.MatchModeHotSeat}, "")
	if anon.Players[0] != "Player 1" {
		t.Errorf("default first seat = %q", anon.Players[0])
	}
}

func TestSessionModelFlow(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "ana")
	if m.SessionID() == "" {
		t.Fatal("session id is empty")
	}

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = sm
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Fatal("esc should close the scoreboard")
	}

	for i, item := range m.menu.items {
		if item.GameID == monstermunch.ID {
			m.menu.cursor = i
		}
	}
	step(enter)
	step(enter)
	if m.game == nil {
		t.Fatal("choosing a mode should start the game")
	}
	if m.View() == "" {
		t.Error("game view is empty")
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if m.game != nil {
		t.Error("esc should return to the menu")
	}
}
