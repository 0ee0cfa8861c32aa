package breakdown

import "github.com/vovakirdan/breakdown/internal/core"

// CommandKind distinguishes render commands.
type CommandKind int

const (
	CommandRect CommandKind = iota // Filled rectangle
	CommandText                    // Text with its top-left corner at Pos
)

// Command is one draw call in world units. Commands are replayed in order.
type Command struct {
	Kind  CommandKind
	Rect  core.Rect  // CommandRect
	Text  string     // CommandText
	Pos   core.Vec2  // CommandText
	Size  float64    // CommandText font size
	Color core.Color // Both
}

// Frame is the output of one Advance call.
type Frame struct {
	Commands []Command
	Sounds   []core.Sound
}

// DrawRect appends a filled rectangle.
func (f *Frame) DrawRect(r core.Rect, c core.Color) {
	f.Commands = append(f.Commands, Command{Kind: CommandRect, Rect: r, Color: c})
}

// DrawText appends a text label.
func (f *Frame) DrawText(text string, pos core.Vec2, size float64, c core.Color) {
	f.Commands = append(f.Commands, Command{Kind: CommandText, Text: text, Pos: pos, Size: size, Color: c})
}

// Play queues a sound effect.
func (f *Frame) Play(s core.Sound) {
	f.Sounds = append(f.Sounds, s)
}

// Texts returns the text of every text command, in draw order.
func (f *Frame) Texts() []string {
	var out []string
	for _, cmd := range f.Commands {
		if cmd.Kind == CommandText {
			out = append(out, cmd.Text)
		}
	}
	return out
}
