package input

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Keymap holds the key bindings for steering and quitting.
// Key names follow Bubble Tea's KeyMsg.String() convention.
type Keymap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// DefaultKeymap binds the arrow keys and WASD (either case) to the four
// directions, and Ctrl+C to quit.
func DefaultKeymap() Keymap {
	return Keymap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "W"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "S"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "A"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "D"),
			key.WithHelp("→/d", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// keyName adapts a plain key name to key.Matches.
type keyName string

func (k keyName) String() string {
	return string(k)
}

// Direction maps a key name to a direction.
func (k Keymap) Direction(name string) (snake.Direction, bool) {
	switch n := keyName(name); {
	case key.Matches(n, k.Up):
		return snake.DirUp, true
	case key.Matches(n, k.Down):
		return snake.DirDown, true
	case key.Matches(n, k.Left):
		return snake.DirLeft, true
	case key.Matches(n, k.Right):
		return snake.DirRight, true
	}
	return 0, false
}

// IsQuit reports whether name is bound to quit.
func (k Keymap) IsQuit(name string) bool {
	return key.Matches(keyName(name), k.Quit)
}

// ShortHelp implements help.KeyMap.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Quit}}
}
