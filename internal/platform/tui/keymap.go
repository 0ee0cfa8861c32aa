package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakdown/internal/core"
)

// holdWindow is how long a single key press keeps a direction held.
// Terminals report presses and auto-repeat but never releases.
const holdWindow = 150 * time.Millisecond

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Confirm, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Confirm},
		{k.Screenshot, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start/launch"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// InputState turns discrete key presses into the held-key frame the
// simulation expects.
type InputState struct {
	heldUntil map[core.Action]time.Time
	confirm   bool
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{heldUntil: make(map[core.Action]time.Time)}
}

// Press records a key press at now. Pressing one direction releases the other.
func (s *InputState) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(s.heldUntil, core.ActionRight)
		s.heldUntil[a] = now.Add(holdWindow)
	case core.ActionRight:
		delete(s.heldUntil, core.ActionLeft)
		s.heldUntil[a] = now.Add(holdWindow)
	case core.ActionConfirm:
		s.confirm = true
	}
}

// Frame returns the input for a frame at now and consumes the pending confirm.
func (s *InputState) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, until := range s.heldUntil {
		if now.Before(until) {
			frame.Set(a)
		} else {
			delete(s.heldUntil, a)
		}
	}
	if s.confirm {
		frame.Set(core.ActionConfirm)
		s.confirm = false
	}
	return frame
}

// Reset releases every key.
func (s *InputState) Reset() {
	clear(s.heldUntil)
	s.confirm = false
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit), key.Matches(msg, k.Back):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	}
	return core.ActionNone
}
