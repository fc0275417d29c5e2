// Package game implements the flap simulation: a falling sprite steered by
// flaps, a stream of gapped obstacle pairs, and the PreGame -> Running ->
// GameOver phase machine. It has no I/O; a host calls Tick once per frame,
// feeds Commands in between, and renders Snapshots.
package game

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
)

// State owns the whole simulation. All mutation is gated by the phase.
type State struct {
	cfg      config.Config
	phase    core.Phase
	clock    Clock
	entity   Entity
	field    *ObstacleField
	backdrop Backdrop
	roster   Roster
	selected int
	width    float64
	height   float64
}

// TickResult describes what happened during one tick.
type TickResult struct {
	Frame   int
	Phase   core.Phase // Phase after the tick
	Landed  bool       // Entity hit the floor; the phase is now GameOver
	Spawned bool
	Removed int // Obstacle pairs dropped off the left edge
}

// New creates a simulation in the PreGame phase for a field of the given size
// in world units. Degenerate dimensions are rejected here so the tick loop
// never has to handle them.
func New(cfg config.Config, roster Roster, width, height float64, seed int64) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if roster.Len() == 0 {
		return nil, errors.New("game: empty roster")
	}
	if err := cfg.ValidateField(width, height); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	return &State{
		cfg:      cfg,
		phase:    core.PhasePreGame,
		entity:   NewEntity(cfg, width, height),
		field:    NewObstacleField(cfg.Obstacles, width, height, seed),
		backdrop: NewBackdrop(cfg.Backdrop, width),
		roster:   roster.Clone(),
		width:    width,
		height:   height,
	}, nil
}

// Apply executes a command. Commands that do not fit the current phase are
// no-ops. Returns true if the command changed anything.
func (s *State) Apply(cmd core.Command) bool {
	switch cmd {
	case core.CommandStart:
		if s.phase != core.PhasePreGame {
			return false
		}
		s.phase = core.PhaseRunning
		return true

	case core.CommandFlap:
		if s.phase != core.PhaseRunning {
			return false
		}
		s.entity.Flap()
		return true

	case core.CommandRestart:
		if s.phase != core.PhaseGameOver {
			return false
		}
		s.Reset()
		return true

	case core.CommandSelectPrevious, core.CommandSelectNext:
		if s.phase != core.PhasePreGame {
			return false
		}
		next := s.selected + 1
		if cmd == core.CommandSelectPrevious {
			next = s.selected - 1
		}
		next = s.roster.Clamp(next)
		if next == s.selected {
			return false
		}
		s.selected = next
		return true
	}

	return false
}

// Tick advances the simulation by one frame.
func (s *State) Tick() TickResult {
	frame := s.clock.Advance()
	res := TickResult{Frame: frame}

	// The far layer keeps drifting behind the game-over overlay
	s.backdrop.AdvanceBackground()

	// Everything below is gated on the phase the tick started in, so the
	// landing tick still scrolls obstacles once.
	start := s.phase
	if start != core.PhaseGameOver {
		if s.entity.Update(start, frame, s.floorY()) {
			s.phase = core.PhaseGameOver
			res.Landed = true
		}

		if start == core.PhaseRunning {
			res.Spawned = s.field.MaybeSpawn(frame)
			res.Removed = s.field.Advance()
		}

		s.backdrop.AdvanceFloor()
	}

	res.Phase = s.phase
	return res
}

// Reset returns to PreGame: obstacles cleared, entity centred at rest,
// scroll offsets zeroed. The selected character and the frame counter are kept.
func (s *State) Reset() {
	s.field.Clear()
	s.entity.Reset(s.height / 2)
	s.backdrop.Reset()
	s.phase = core.PhasePreGame
}

// Resize applies a new field size. Sizes that cannot host the game are
// rejected and leave the state untouched.
func (s *State) Resize(width, height float64) error {
	if err := s.cfg.ValidateField(width, height); err != nil {
		return fmt.Errorf("game: %w", err)
	}

	s.width = width
	s.height = height
	s.field.Resize(width, height)
	s.backdrop = NewBackdrop(s.cfg.Backdrop, width)
	s.entity.X = width/2 - s.cfg.Player.XOffset
	s.entity.BaseY = height / 2
	s.entity.Y = core.ClampF(s.entity.Y, 0, s.floorY()-s.entity.H)
	return nil
}

// SetSelected selects a character by index, clamped to the roster.
// Only allowed before the game starts.
func (s *State) SetSelected(i int) {
	if s.phase != core.PhasePreGame {
		return
	}
	s.selected = s.roster.Clamp(i)
}

// Phase returns the current phase.
func (s *State) Phase() core.Phase {
	return s.phase
}

// Selected returns the selected character index.
func (s *State) Selected() int {
	return s.selected
}

// SelectedCharacter returns the selected character.
func (s *State) SelectedCharacter() Character {
	return s.roster.At(s.selected)
}

// Frame returns the current frame number.
func (s *State) Frame() int {
	return s.clock.Frame()
}

// Entity returns a copy of the controlled entity.
func (s *State) Entity() Entity {
	return s.entity
}

// Obstacles returns the obstacle field.
func (s *State) Obstacles() *ObstacleField {
	return s.field
}

func (s *State) floorY() float64 {
	return s.cfg.FloorY(s.height)
}
