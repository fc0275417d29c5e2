package game

import (
	"math"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
)

// Entity is the player-controlled sprite. Positions are the top-left corner
// in world units; positive velocity points down.
type Entity struct {
	X, Y     float64
	W, H     float64
	Velocity float64
	Gravity  float64
	Lift     float64

	BaseY         float64 // Centre line of the pre-game bobbing
	IdleAmplitude float64
	IdlePeriod    float64
}

// NewEntity creates the entity centred in a field of the given size.
func NewEntity(cfg config.Config, width, height float64) Entity {
	return Entity{
		X:             width/2 - cfg.Player.XOffset,
		Y:             height / 2,
		W:             cfg.Player.Width,
		H:             cfg.Player.Height,
		Gravity:       cfg.Physics.Gravity,
		Lift:          cfg.Physics.Lift,
		BaseY:         height / 2,
		IdleAmplitude: cfg.Player.IdleAmplitude,
		IdlePeriod:    cfg.Player.IdlePeriod,
	}
}

// Update advances the entity by one tick and reports whether it landed on
// the floor. Only a running entity can land; the pre-game bobbing is clamped
// silently.
func (e *Entity) Update(phase core.Phase, frame int, floorY float64) bool {
	landed := false

	switch phase {
	case core.PhasePreGame:
		e.Y = e.BaseY + e.IdleAmplitude*math.Sin(float64(frame)/e.IdlePeriod)
		if e.Y+e.H > floorY {
			e.Y = floorY - e.H
		}
	case core.PhaseRunning:
		// Semi-implicit Euler: velocity first, then position
		e.Velocity += e.Gravity
		e.Y += e.Velocity
		if e.Y+e.H >= floorY {
			e.Y = floorY - e.H
			e.Velocity = 0
			landed = true
		}
	default:
		return false
	}

	// Ceiling is a wall, not a hazard
	if e.Y < 0 {
		e.Y = 0
		e.Velocity = 0
	}

	return landed
}

// Flap replaces the current velocity with the lift impulse.
// Callers must only flap while the game is running.
func (e *Entity) Flap() {
	e.Velocity = e.Lift
}

// Reset puts the entity back on the given centre line at rest.
func (e *Entity) Reset(centerY float64) {
	e.BaseY = centerY
	e.Y = centerY
	e.Velocity = 0
}
