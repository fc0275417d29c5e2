package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flap/internal/assets"
	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
)

// Layout of the pre-game texts, in world units.
const (
	titleY      = 50
	hintAboveY  = 100 // Selection hint sits this far above the field centre
	lockedLabel = "Locked"
)

// SpriteSource provides named sprites. *assets.Set satisfies it.
type SpriteSource interface {
	Get(name string) (assets.Sprite, bool)
}

// Renderer draws snapshots onto a cell screen, scaling world units to cells.
// It never mutates game state.
type Renderer struct {
	sprites SpriteSource
	cellW   float64
	cellH   float64
}

// NewRenderer creates a renderer using the given sprites and cell scale.
func NewRenderer(sprites SpriteSource, cfg config.Render) *Renderer {
	return &Renderer{
		sprites: sprites,
		cellW:   cfg.CellWidth,
		cellH:   cfg.CellHeight,
	}
}

// Render draws one frame.
func (r *Renderer) Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	r.drawTiled(dst, assets.Background, 1, r.col(snap.BackgroundX))

	if snap.GameOver {
		r.drawGameOver(dst)
		return
	}

	r.drawEntity(dst, snap)

	for _, p := range snap.Obstacles {
		r.drawPair(dst, snap, p)
	}

	r.drawFloor(dst, snap)

	if snap.Phase == core.PhasePreGame {
		r.drawSelection(dst, snap)
	}
}

// col converts a world x-coordinate to a screen column.
func (r *Renderer) col(x float64) int {
	return int(math.Floor(x / r.cellW))
}

// row converts a world y-coordinate to a screen row.
func (r *Renderer) row(y float64) int {
	return int(math.Floor(y / r.cellH))
}

// drawTiled repeats a sprite horizontally across the screen, shifted by offset columns.
func (r *Renderer) drawTiled(dst *core.Screen, name string, y, offset int) {
	sp, ok := r.sprites.Get(name)
	if !ok {
		return
	}
	for i, line := range sp.Lines {
		if len(line) == 0 {
			continue
		}
		for x := 0; x < dst.Width(); x++ {
			ch := line[mod(x-offset, len(line))]
			if ch != ' ' {
				dst.SetColored(x, y+i, ch, sp.Color)
			}
		}
	}
}

// drawSprite draws a sprite with its top-left corner at (x, y).
func drawSprite(dst *core.Screen, sp assets.Sprite, x, y int, c core.Color) {
	for i, line := range sp.Lines {
		for j, ch := range line {
			if ch != ' ' {
				dst.SetColored(x+j, y+i, ch, c)
			}
		}
	}
}

func (r *Renderer) drawEntity(dst *core.Screen, snap Snapshot) {
	ch := snap.Character()
	sp, ok := r.sprites.Get(ch.Sprite)
	if !ok {
		return
	}

	x, y := r.col(snap.Entity.X), r.row(snap.Entity.Y)
	color := sp.Color
	if !ch.Unlocked {
		color = core.ColorRed
	}
	drawSprite(dst, sp, x, y, color)

	if !ch.Unlocked {
		labelX := x + (sp.Width()-len(lockedLabel))/2
		dst.DrawTextColored(labelX, y+sp.Height(), lockedLabel, core.ColorBrightWhite)
	}
}

func (r *Renderer) drawPair(dst *core.Screen, snap Snapshot, p ObstaclePair) {
	x0 := r.col(p.X)
	w := core.Max(1, int(math.Round(snap.ObstacleWidth/r.cellW)))
	floorRow := r.row(snap.FloorY)

	if top, ok := r.sprites.Get(assets.TopPipe); ok {
		end := r.row(p.GapTop)
		for y := 0; y < end && y < floorRow; y++ {
			line := top.Lines[0]
			if y == end-1 {
				line = top.Lines[len(top.Lines)-1]
			}
			drawStretched(dst, line, x0, y, w, top.Color)
		}
	}

	if bottom, ok := r.sprites.Get(assets.BottomPipe); ok {
		start := r.row(snap.Height - p.GapBottom)
		for y := start; y < floorRow; y++ {
			line := bottom.Lines[len(bottom.Lines)-1]
			if y == start {
				line = bottom.Lines[0]
			}
			drawStretched(dst, line, x0, y, w, bottom.Color)
		}
	}
}

// drawStretched draws one sprite line resampled to w columns.
func drawStretched(dst *core.Screen, line []rune, x, y, w int, c core.Color) {
	if len(line) == 0 {
		return
	}
	for j := 0; j < w; j++ {
		dst.SetColored(x+j, y, line[j*len(line)/w], c)
	}
}

func (r *Renderer) drawFloor(dst *core.Screen, snap Snapshot) {
	sp, ok := r.sprites.Get(assets.Floor)
	if !ok {
		return
	}
	start := r.row(snap.FloorY)
	offset := r.col(snap.FloorX)
	r.drawTiled(dst, assets.Floor, start, offset)

	// Terminals taller than the sprite repeat its last line down to the bottom
	last := sp.Lines[len(sp.Lines)-1]
	for y := start + sp.Height(); y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if len(last) > 0 {
				dst.SetColored(x, y, last[mod(x-offset, len(last))], sp.Color)
			}
		}
	}
}

func (r *Renderer) drawSelection(dst *core.Screen, snap Snapshot) {
	if title, ok := r.sprites.Get(assets.Title); ok {
		x := (dst.Width() - title.Width()) / 2
		drawSprite(dst, title, x, r.row(titleY), title.Color)
	}

	hintRow := core.Max(0, r.row(snap.Height/2-hintAboveY))
	dst.DrawTextCentered(hintRow, "Swipe to select your bird", core.ColorBrightWhite)

	ch := snap.Character()
	left, right := "◀", "▶"
	if snap.Selected == 0 {
		left = " "
	}
	if snap.Selected >= snap.Roster.Len()-1 {
		right = " "
	}
	picker := fmt.Sprintf("%s %s (%d/%d) %s", left, ch.Name, snap.Selected+1, snap.Roster.Len(), right)
	dst.DrawTextCentered(hintRow+1, picker, core.ColorWhite)
	dst.DrawTextCentered(hintRow+2, "Double-tap or press any key to start", core.ColorGray)
}

// drawGameOver draws the centred game-over box.
func (r *Renderer) drawGameOver(dst *core.Screen) {
	title := "Game Over"
	subtitle := "Tap or press any key to restart"

	boxW := core.Min(core.Max(len(title), len(subtitle))+4, dst.Width())
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawHLine(boxX+1, boxY+2, boxW-2, '─', core.ColorGray)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}

// mod returns a non-negative remainder.
func mod(a, n int) int {
	return ((a % n) + n) % n
}
