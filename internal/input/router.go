// Package input turns raw pointer and key events into game commands.
// Gestures that span several events (swipes, double-taps) are tracked here so
// the simulation only ever sees discrete commands.
package input

import (
	"time"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
)

// Router maps events to commands according to the current phase.
// It is not safe for concurrent use; the host calls it from its tick loop.
type Router struct {
	threshold float64
	window    time.Duration

	pressed bool
	swiped  bool // A swipe fired during the current press
	startX  float64
	lastTap time.Time
	hasTap  bool
}

// NewRouter creates a router with the given gesture thresholds.
func NewRouter(cfg config.Input) *Router {
	return &Router{
		threshold: cfg.SwipeThreshold,
		window:    cfg.DoubleTapWindow(),
	}
}

// Route interprets one event in the given phase. Events that mean nothing in
// the phase yield CommandNone. Nudges select only before the game; afterwards
// they count as ordinary key presses.
func (r *Router) Route(phase core.Phase, ev core.Event) core.Command {
	switch phase {
	case core.PhasePreGame:
		return r.routePreGame(ev)

	case core.PhaseRunning:
		switch ev.Kind {
		case core.EventPointerDown, core.EventKeyDown, core.EventNudge:
			return core.CommandFlap
		case core.EventPointerUp:
			r.pressed = false
		}

	case core.PhaseGameOver:
		switch ev.Kind {
		case core.EventPointerUp, core.EventKeyDown, core.EventNudge:
			r.pressed = false
			return core.CommandRestart
		}
	}

	return core.CommandNone
}

func (r *Router) routePreGame(ev core.Event) core.Command {
	switch ev.Kind {
	case core.EventPointerDown:
		r.pressed = true
		r.swiped = false
		r.startX = ev.X

	case core.EventPointerMove:
		if !r.pressed {
			return core.CommandNone
		}
		// The reference point follows each fired swipe, so a long drag
		// steps through several characters.
		switch {
		case ev.X < r.startX-r.threshold:
			r.startX = ev.X
			r.swiped = true
			return core.CommandSelectPrevious
		case ev.X > r.startX+r.threshold:
			r.startX = ev.X
			r.swiped = true
			return core.CommandSelectNext
		}

	case core.EventPointerUp:
		wasSwipe := r.swiped
		r.pressed = false
		r.swiped = false
		if wasSwipe {
			r.hasTap = false
			return core.CommandNone
		}

		double := r.hasTap && ev.At.Sub(r.lastTap) < r.window
		r.lastTap = ev.At
		r.hasTap = true
		if double {
			r.hasTap = false
			return core.CommandStart
		}

	case core.EventKeyDown:
		return core.CommandStart

	case core.EventNudge:
		if ev.Dir < 0 {
			return core.CommandSelectPrevious
		}
		if ev.Dir > 0 {
			return core.CommandSelectNext
		}
	}

	return core.CommandNone
}

// Reset forgets any gesture in progress.
func (r *Router) Reset() {
	*r = Router{threshold: r.threshold, window: r.window}
}
