package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakdown/internal/core"
)

func TestKeyMapMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestInputStateHoldWindow(t *testing.T) {
	s := NewInputState()
	base := time.Unix(1000, 0)

	s.Press(core.ActionLeft, base)
	if f := s.Frame(base.Add(holdWindow / 2)); !f.Has(core.ActionLeft) {
		t.Error("Left should be held inside the hold window")
	}
	if f := s.Frame(base.Add(holdWindow)); f.Has(core.ActionLeft) {
		t.Error("Left should be released once the hold window passes")
	}

	// Auto-repeat refreshes the window
	s.Press(core.ActionRight, base)
	s.Press(core.ActionRight, base.Add(holdWindow-time.Millisecond))
	if f := s.Frame(base.Add(holdWindow + time.Millisecond)); !f.Has(core.ActionRight) {
		t.Error("Repeated press should extend the hold")
	}
}

func TestInputStateOppositeReleases(t *testing.T) {
	s := NewInputState()
	now := time.Unix(1000, 0)

	s.Press(core.ActionLeft, now)
	s.Press(core.ActionRight, now)
	f := s.Frame(now)
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("frame = %v, expected only Right held", f.Actions)
	}
}

func TestInputStateConfirmOnce(t *testing.T) {
	s := NewInputState()
	now := time.Unix(1000, 0)

	s.Press(core.ActionConfirm, now)
	if !s.Frame(now).Has(core.ActionConfirm) {
		t.Fatal("Confirm should be set on the next frame")
	}
	if s.Frame(now).Has(core.ActionConfirm) {
		t.Error("Confirm should last a single frame")
	}

	s.Press(core.ActionLeft, now)
	s.Press(core.ActionConfirm, now)
	s.Reset()
	if f := s.Frame(now); len(f.Actions) != 0 {
		t.Errorf("Reset should release everything, got %v", f.Actions)
	}
}

func TestFrameDT(t *testing.T) {
	base := time.Unix(1000, 0)

	tests := []struct {
		name string
		last time.Time
		now  time.Time
		want float64
	}{
		{"first tick", time.Time{}, base, 1.0 / 60},
		{"regular", base, base.Add(20 * time.Millisecond), 0.02},
		{"stall capped", base, base.Add(time.Second), maxFrameDT},
		{"clock went back", base, base.Add(-time.Second), 1.0 / 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := frameDT(tt.last, tt.now, 60)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("frameDT() = %v, expected %v", got, tt.want)
			}
		})
	}
}
