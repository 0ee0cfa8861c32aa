package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakdown/internal/config"
	"github.com/vovakirdan/breakdown/internal/core"
	"github.com/vovakirdan/breakdown/internal/storage"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return got
}

func newTestSession(store *storage.Store) SessionModel {
	return NewSessionModel(SessionOptions{
		Store:   store,
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
		Game:    config.DefaultBreakdownConfig(),
		Player:  "remote",
	})
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(nil)
	if m.Screen() != "menu" {
		t.Fatalf("Screen() = %q, expected menu", m.Screen())
	}

	// fixed, easy: select easy
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Screen() != "game" {
		t.Fatalf("Screen() = %q, expected game", m.Screen())
	}
	if m.preset != config.DifficultyEasy {
		t.Errorf("preset = %q, expected easy", m.preset)
	}
	if got := m.game.Game().Lives(); got != 5 {
		t.Errorf("Lives() = %d, expected easy preset lives 5", got)
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Screen() != "menu" {
		t.Errorf("Screen() = %q, expected menu after esc", m.Screen())
	}
	if got := m.menu.items[m.menu.cursor].Preset; got != config.DifficultyEasy {
		t.Errorf("menu cursor on %q, expected the last preset", got)
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession(nil)
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Screen() != "scoreboard" {
		t.Fatalf("Screen() = %q, expected scoreboard", m.Screen())
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Screen() != "menu" {
		t.Errorf("Screen() = %q, expected menu after back", m.Screen())
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}

func TestSessionResizePropagates(t *testing.T) {
	m := newTestSession(nil)
	m = sessionUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if w, h := m.game.Game().ScreenSize(); w != 1200 || h != 800 {
		t.Errorf("ScreenSize() = (%v, %v), expected (1200, 800)", w, h)
	}
}
