package game

import "github.com/vovakirdan/flap/internal/config"

// Backdrop holds the horizontal offsets of the two decorative layers.
// Offsets run from 0 down to -width and then wrap back to 0.
type Backdrop struct {
	BackgroundX float64
	FloorX      float64

	backgroundSpeed float64
	floorSpeed      float64
	width           float64
}

// NewBackdrop creates a backdrop for a field of the given width.
func NewBackdrop(cfg config.Backdrop, width float64) Backdrop {
	return Backdrop{
		backgroundSpeed: cfg.BackgroundSpeed,
		floorSpeed:      cfg.FloorSpeed,
		width:           width,
	}
}

// AdvanceBackground scrolls the far layer by one tick.
func (b *Backdrop) AdvanceBackground() {
	b.BackgroundX = wrapOffset(b.BackgroundX-b.backgroundSpeed, b.width)
}

// AdvanceFloor scrolls the floor layer by one tick.
func (b *Backdrop) AdvanceFloor() {
	b.FloorX = wrapOffset(b.FloorX-b.floorSpeed, b.width)
}

// Reset zeroes both offsets.
func (b *Backdrop) Reset() {
	b.BackgroundX = 0
	b.FloorX = 0
}

func wrapOffset(x, width float64) float64 {
	if x <= -width {
		return 0
	}
	return x
}
