package game

import (
	"math/rand"

	"github.com/vovakirdan/flap/internal/config"
)

// ObstaclePair is one pair of obstacles with a gap between them.
// GapTop is the height of the upper segment, GapBottom of the lower one;
// GapTop + gap + GapBottom always equals the field height at spawn time.
type ObstaclePair struct {
	X         float64 // Left edge
	GapTop    float64
	GapBottom float64
}

// Right returns the x-coordinate of the pair's right edge.
func (p ObstaclePair) Right(width float64) float64 {
	return p.X + width
}

// Offscreen reports whether the pair has fully left the field on the left.
func (p ObstaclePair) Offscreen(width float64) bool {
	return p.Right(width) < 0
}

// ObstacleField handles spawning, scrolling, and removal of obstacle pairs.
// Pairs are kept in spawn order, which is also left-to-right screen order.
type ObstacleField struct {
	pairs   []ObstaclePair
	rng     *rand.Rand
	cfg     config.Obstacles
	width   float64
	height  float64
	spawned int
}

// NewObstacleField creates an empty field with the given RNG seed.
func NewObstacleField(cfg config.Obstacles, width, height float64, seed int64) *ObstacleField {
	return &ObstacleField{
		pairs:  make([]ObstaclePair, 0, 8),
		rng:    rand.New(rand.NewSource(seed)),
		cfg:    cfg,
		width:  width,
		height: height,
	}
}

// MaybeSpawn spawns one pair when frame is a multiple of the spawn interval.
// Returns true if a pair was spawned.
func (f *ObstacleField) MaybeSpawn(frame int) bool {
	if frame%f.cfg.SpawnInterval != 0 {
		return false
	}
	f.Spawn()
	return true
}

// Spawn appends a new pair at the right edge of the field with a uniformly
// random gap position between the configured margins.
func (f *ObstacleField) Spawn() ObstaclePair {
	span := f.height - f.cfg.Gap - f.cfg.TopMargin - f.cfg.BottomMargin
	if span < 0 {
		span = 0 // Field sizes are validated up front; keep segments non-negative regardless
	}

	top := f.cfg.TopMargin + f.rng.Float64()*span
	pair := ObstaclePair{
		X:         f.width,
		GapTop:    top,
		GapBottom: f.height - top - f.cfg.Gap,
	}

	f.pairs = append(f.pairs, pair)
	f.spawned++
	return pair
}

// Advance scrolls every pair left and drops the ones that left the field.
// Returns the number of pairs removed.
func (f *ObstacleField) Advance() int {
	for i := range f.pairs {
		f.pairs[i].X -= f.cfg.ScrollSpeed
	}

	// Stable in-place filter: order is preserved and nothing is skipped
	kept := f.pairs[:0]
	for _, p := range f.pairs {
		if !p.Offscreen(f.cfg.Width) {
			kept = append(kept, p)
		}
	}
	removed := len(f.pairs) - len(kept)
	f.pairs = kept

	return removed
}

// Clear removes all pairs. The RNG keeps its sequence so the next round differs.
func (f *ObstacleField) Clear() {
	f.pairs = f.pairs[:0]
}

// Resize updates the field dimensions used for new spawns.
func (f *ObstacleField) Resize(width, height float64) {
	f.width = width
	f.height = height
}

// Pairs returns the current pairs. The slice must not be modified.
func (f *ObstacleField) Pairs() []ObstaclePair {
	return f.pairs
}

// Len returns the number of live pairs.
func (f *ObstacleField) Len() int {
	return len(f.pairs)
}

// Spawned returns the total number of pairs spawned since creation.
func (f *ObstacleField) Spawned() int {
	return f.spawned
}
