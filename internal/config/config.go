// Package config provides YAML-based configuration loading and validation
// for the game: physics, obstacle cadence, input thresholds, rendering scale
// and the character roster.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrDegenerateField is returned when the playfield is too small to fit the
// obstacle gap plus its margins, or the entity above the floor.
var ErrDegenerateField = errors.New("config: degenerate playfield")

// ErrInvalid is returned when a configuration value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config contains all tunable parameters of the game.
type Config struct {
	Physics    Physics     `yaml:"physics"`
	Player     Player      `yaml:"player"`
	Obstacles  Obstacles   `yaml:"obstacles"`
	Backdrop   Backdrop    `yaml:"backdrop"`
	Input      Input       `yaml:"input"`
	Render     Render      `yaml:"render"`
	Characters []Character `yaml:"characters"`
}

// Physics defines the vertical motion of the controlled entity, in world
// units per tick.
type Physics struct {
	Gravity float64 `yaml:"gravity"` // Added to velocity every running tick
	Lift    float64 `yaml:"lift"`    // Velocity set by a flap (negative = up)
}

// Player defines the controlled entity's size and idle animation.
type Player struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	XOffset       float64 `yaml:"x_offset"`       // Entity x = field width / 2 - XOffset
	IdleAmplitude float64 `yaml:"idle_amplitude"` // Pre-game bobbing amplitude
	IdlePeriod    float64 `yaml:"idle_period"`    // Frames per radian of the bobbing
}

// Obstacles defines obstacle pair geometry and cadence.
type Obstacles struct {
	Width         float64 `yaml:"width"`
	Gap           float64 `yaml:"gap"`
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between spawns
	ScrollSpeed   float64 `yaml:"scroll_speed"`   // World units per tick
	TopMargin     float64 `yaml:"top_margin"`     // Minimum top segment height
	BottomMargin  float64 `yaml:"bottom_margin"`  // Minimum bottom segment height
}

// Backdrop defines the decorative scrolling layers.
type Backdrop struct {
	BackgroundSpeed float64 `yaml:"background_speed"`
	FloorSpeed      float64 `yaml:"floor_speed"`
	FloorHeight     float64 `yaml:"floor_height"`
}

// Input defines gesture recognition thresholds.
type Input struct {
	SwipeThreshold float64 `yaml:"swipe_threshold"` // World units of horizontal drag per swipe
	DoubleTapMS    int     `yaml:"double_tap_ms"`
}

// DoubleTapWindow returns the maximum gap between two taps of a double-tap.
func (in Input) DoubleTapWindow() time.Duration {
	return time.Duration(in.DoubleTapMS) * time.Millisecond
}

// Render defines how world units map onto terminal cells.
type Render struct {
	CellWidth  float64 `yaml:"cell_width"`  // World units per column
	CellHeight float64 `yaml:"cell_height"` // World units per row
}

// Character is one selectable player sprite.
type Character struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Sprite   string `yaml:"sprite"`
	Unlocked bool   `yaml:"unlocked"`
}

// Validate checks every value that does not depend on the playfield size.
func (c Config) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Physics.Gravity > 0, "physics.gravity must be positive"},
		{c.Physics.Lift < 0, "physics.lift must be negative"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive"},
		{c.Player.IdleAmplitude >= 0, "player.idle_amplitude must not be negative"},
		{c.Player.IdlePeriod > 0, "player.idle_period must be positive"},
		{c.Obstacles.Width > 0, "obstacles.width must be positive"},
		{c.Obstacles.Gap > 0, "obstacles.gap must be positive"},
		{c.Obstacles.SpawnInterval > 0, "obstacles.spawn_interval must be positive"},
		{c.Obstacles.ScrollSpeed > 0, "obstacles.scroll_speed must be positive"},
		{c.Obstacles.TopMargin >= 0 && c.Obstacles.BottomMargin >= 0, "obstacle margins must not be negative"},
		{c.Backdrop.FloorHeight >= 0, "backdrop.floor_height must not be negative"},
		{c.Input.SwipeThreshold > 0, "input.swipe_threshold must be positive"},
		{c.Input.DoubleTapMS > 0, "input.double_tap_ms must be positive"},
		{c.Render.CellWidth > 0 && c.Render.CellHeight > 0, "render cell size must be positive"},
		{len(c.Characters) > 0, "at least one character is required"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.what)
		}
	}

	seen := make(map[string]bool, len(c.Characters))
	for i, ch := range c.Characters {
		if ch.ID == "" || ch.Sprite == "" {
			return fmt.Errorf("%w: character %d needs an id and a sprite", ErrInvalid, i)
		}
		if seen[ch.ID] {
			return fmt.Errorf("%w: duplicate character id %q", ErrInvalid, ch.ID)
		}
		seen[ch.ID] = true
	}
	return nil
}

// ValidateField rejects playfields that cannot host the game: the gap plus
// both margins must leave room for random placement, and the entity must fit
// between the ceiling and the floor.
func (c Config) ValidateField(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %.0fx%.0f", ErrDegenerateField, width, height)
	}
	span := height - c.Obstacles.Gap - c.Obstacles.TopMargin - c.Obstacles.BottomMargin
	if span <= 0 {
		return fmt.Errorf("%w: height %.0f cannot fit gap %.0f with margins %.0f/%.0f",
			ErrDegenerateField, height, c.Obstacles.Gap, c.Obstacles.TopMargin, c.Obstacles.BottomMargin)
	}
	if c.FloorY(height) <= c.Player.Height {
		return fmt.Errorf("%w: height %.0f leaves no room above the floor", ErrDegenerateField, height)
	}
	return nil
}

// FloorY returns the world y-coordinate of the floor surface.
func (c Config) FloorY(height float64) float64 {
	return height - c.Backdrop.FloorHeight
}

// CharacterIDs returns the roster ids in order.
func (c Config) CharacterIDs() []string {
	ids := make([]string, len(c.Characters))
	for i, ch := range c.Characters {
		ids[i] = ch.ID
	}
	return ids
}
