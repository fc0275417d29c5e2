package core

import "time"

// Phase is the top-level game phase. It decides which update rules run each
// tick and how raw input is interpreted.
type Phase int

const (
	PhasePreGame  Phase = iota // Character selection, idle animation
	PhaseRunning               // Physics and obstacles active
	PhaseGameOver              // Entity landed; waiting for restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePreGame:
		return "PreGame"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Command is a semantic game command, abstracted from raw pointer and key events.
type Command int

const (
	CommandNone           Command = iota
	CommandSelectPrevious         // Previous character (PreGame)
	CommandSelectNext             // Next character (PreGame)
	CommandStart                  // PreGame -> Running
	CommandFlap                   // Upward impulse (Running)
	CommandRestart                // GameOver -> PreGame
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandSelectPrevious:
		return "SelectPrevious"
	case CommandSelectNext:
		return "SelectNext"
	case CommandStart:
		return "Start"
	case CommandFlap:
		return "Flap"
	case CommandRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// EventKind identifies the type of a raw input event.
type EventKind int

const (
	EventPointerDown EventKind = iota
	EventPointerMove
	EventPointerUp
	EventKeyDown
	EventNudge // Discrete left/right step from navigation keys
)

// Event is a raw, timestamped input event as delivered by the host.
// Pointer coordinates are in world units, not cells.
type Event struct {
	Kind EventKind
	X, Y float64
	Key  string // Key name for EventKeyDown
	Dir  int    // -1 or +1 for EventNudge
	At   time.Time
}

// PointerDown creates a pointer-press event.
func PointerDown(x, y float64, at time.Time) Event {
	return Event{Kind: EventPointerDown, X: x, Y: y, At: at}
}

// PointerMove creates a pointer-drag event.
func PointerMove(x, y float64, at time.Time) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y, At: at}
}

// PointerUp creates a pointer-release event.
func PointerUp(x, y float64, at time.Time) Event {
	return Event{Kind: EventPointerUp, X: x, Y: y, At: at}
}

// KeyDown creates a key-press event.
func KeyDown(key string, at time.Time) Event {
	return Event{Kind: EventKeyDown, Key: key, At: at}
}

// Nudge creates a discrete selection step event.
func Nudge(dir int, at time.Time) Event {
	return Event{Kind: EventNudge, Dir: dir, At: at}
}
