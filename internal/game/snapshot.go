package game

import "github.com/vovakirdan/flap/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Phase    core.Phase
	Frame    int
	Entity   Entity
	Selected int
	Roster   Roster

	// Obstacles are only exposed while running.
	Obstacles     []ObstaclePair
	ObstacleWidth float64

	BackgroundX float64
	FloorX      float64
	FloorY      float64
	Width       float64
	Height      float64

	// GameOver replaces the gameplay layers with the game-over overlay.
	GameOver bool
}

// Snapshot copies the current state for rendering.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:         s.phase,
		Frame:         s.clock.Frame(),
		Entity:        s.entity,
		Selected:      s.selected,
		Roster:        s.roster.Clone(),
		ObstacleWidth: s.cfg.Obstacles.Width,
		BackgroundX:   s.backdrop.BackgroundX,
		FloorX:        s.backdrop.FloorX,
		FloorY:        s.floorY(),
		Width:         s.width,
		Height:        s.height,
		GameOver:      s.phase == core.PhaseGameOver,
	}

	if s.phase == core.PhaseRunning {
		snap.Obstacles = make([]ObstaclePair, s.field.Len())
		copy(snap.Obstacles, s.field.Pairs())
	}

	return snap
}

// Character returns the selected character.
func (snap Snapshot) Character() Character {
	return snap.Roster.At(snap.Selected)
}
