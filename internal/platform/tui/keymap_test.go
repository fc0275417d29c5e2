package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	im := NewInputMapper(DefaultKeyMap(), config.Default().Render)
	now := time.Now()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		intent keyIntent
		kind   core.EventKind
		dir    int
	}{
		{"q quits", runeKey('q'), intentQuit, 0, 0},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, intentQuit, 0, 0},
		{"ctrl+s screenshots", tea.KeyMsg{Type: tea.KeyCtrlS}, intentScreenshot, 0, 0},
		{"left nudges back", tea.KeyMsg{Type: tea.KeyLeft}, intentGame, core.EventNudge, -1},
		{"h nudges back", runeKey('h'), intentGame, core.EventNudge, -1},
		{"right nudges forward", tea.KeyMsg{Type: tea.KeyRight}, intentGame, core.EventNudge, 1},
		{"space is a key", tea.KeyMsg{Type: tea.KeySpace}, intentGame, core.EventKeyDown, 0},
		{"any rune is a key", runeKey('x'), intentGame, core.EventKeyDown, 0},
		{"enter is a key", tea.KeyMsg{Type: tea.KeyEnter}, intentGame, core.EventKeyDown, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, intent := im.MapKey(tt.msg, now)
			if intent != tt.intent {
				t.Fatalf("intent = %d, expected %d", intent, tt.intent)
			}
			if intent != intentGame {
				return
			}
			if ev.Kind != tt.kind || ev.Dir != tt.dir {
				t.Errorf("event = %+v, expected kind %d dir %d", ev, tt.kind, tt.dir)
			}
			if !ev.At.Equal(now) {
				t.Error("event should carry the given timestamp")
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	im := NewInputMapper(DefaultKeyMap(), config.Default().Render)
	now := time.Now()

	ev, ok := im.MapMouse(tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, now)
	if !ok || ev.Kind != core.EventPointerDown {
		t.Fatalf("left press = %+v/%v, expected PointerDown", ev, ok)
	}
	// Centre of cell (2, 3) with 8x16 cells
	if ev.X != 20 || ev.Y != 56 {
		t.Errorf("world position = (%v, %v), expected (20, 56)", ev.X, ev.Y)
	}

	ev, ok = im.MapMouse(tea.MouseMsg{X: 9, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, now)
	if !ok || ev.Kind != core.EventPointerMove || ev.X != 76 {
		t.Errorf("drag = %+v/%v, expected PointerMove at x=76", ev, ok)
	}

	ev, ok = im.MapMouse(tea.MouseMsg{X: 9, Y: 3, Action: tea.MouseActionRelease}, now)
	if !ok || ev.Kind != core.EventPointerUp {
		t.Errorf("release = %+v/%v, expected PointerUp", ev, ok)
	}

	for _, msg := range []tea.MouseMsg{
		{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
		{Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
	} {
		if _, ok := im.MapMouse(msg, now); ok {
			t.Errorf("%+v should be ignored", msg)
		}
	}
}

func TestTickInterval(t *testing.T) {
	if got := tickInterval(60); got != time.Second/60 {
		t.Errorf("tickInterval(60) = %v", got)
	}
	if got := tickInterval(0); got != time.Second/60 {
		t.Errorf("tickInterval(0) = %v, expected the 60 fps fallback", got)
	}
}
