package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
)

// KeyMap defines the key bindings shown in the help footer. Keys that are not
// bound here still count as "any key" for starting, flapping and restarting.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Flap       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Flap, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Flap},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev bird"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next bird"),
		),
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "start/flap"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// keyIntent says what the host should do with a key press.
type keyIntent int

const (
	intentGame keyIntent = iota // Forward the event to the game
	intentQuit
	intentScreenshot
)

// InputMapper translates Bubble Tea key and mouse messages into game events.
// Mouse cells are converted to world units at the centre of the cell.
type InputMapper struct {
	keys  KeyMap
	cellW float64
	cellH float64
}

// NewInputMapper creates a mapper for the given bindings and cell scale.
func NewInputMapper(keys KeyMap, cfg config.Render) *InputMapper {
	return &InputMapper{
		keys:  keys,
		cellW: cfg.CellWidth,
		cellH: cfg.CellHeight,
	}
}

// MapKey translates a key message. The event is only meaningful for intentGame.
func (im *InputMapper) MapKey(msg tea.KeyMsg, at time.Time) (core.Event, keyIntent) {
	switch {
	case key.Matches(msg, im.keys.Quit):
		return core.Event{}, intentQuit
	case key.Matches(msg, im.keys.Screenshot):
		return core.Event{}, intentScreenshot
	case key.Matches(msg, im.keys.Left):
		return core.Nudge(-1, at), intentGame
	case key.Matches(msg, im.keys.Right):
		return core.Nudge(1, at), intentGame
	}

	return core.KeyDown(msg.String(), at), intentGame
}

// MapMouse translates a mouse message. Returns false for messages the game
// ignores, such as wheel scrolls and non-left buttons.
func (im *InputMapper) MapMouse(msg tea.MouseMsg, at time.Time) (core.Event, bool) {
	x, y := im.toWorld(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.Event{}, false
		}
		return core.PointerDown(x, y, at), true
	case tea.MouseActionMotion:
		return core.PointerMove(x, y, at), true
	case tea.MouseActionRelease:
		return core.PointerUp(x, y, at), true
	}

	return core.Event{}, false
}

func (im *InputMapper) toWorld(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * im.cellW, (float64(row) + 0.5) * im.cellH
}
