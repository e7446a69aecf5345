// Package breakout implements a Breakout brick breaker in field pixels.
package breakout

import (
	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// rowColors cycles over brick rows from the top.
var rowColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
}

// Wall is the set of bricks for one level.
type Wall struct {
	Bricks []Brick
}

// NewWall lays out a full grid of bricks.
func NewWall(cfg config.BreakoutBricks) *Wall {
	w := &Wall{Bricks: make([]Brick, 0, cfg.Rows*cfg.Cols)}
	for row := range cfg.Rows {
		for col := range cfg.Cols {
			w.Bricks = append(w.Bricks, Brick{
				Box: core.NewRectF(
					float64(col)*(cfg.Width+cfg.Padding)+cfg.OffsetLeft,
					float64(row)*(cfg.Height+cfg.Padding)+cfg.OffsetTop,
					cfg.Width,
					cfg.Height,
				),
				Row:   row,
				Alive: true,
			})
		}
	}
	return w
}

// CountAlive returns the number of remaining bricks.
func (w *Wall) CountAlive() int {
	n := 0
	for _, b := range w.Bricks {
		if b.Alive {
			n++
		}
	}
	return n
}

// Cleared reports whether every brick is gone.
func (w *Wall) Cleared() bool {
	return w.CountAlive() == 0
}

// Smash destroys every live brick the body overlaps and returns how many.
// The result does not depend on brick order.
func (w *Wall) Smash(body core.Body) int {
	hits := 0
	for i := range w.Bricks {
		b := &w.Bricks[i]
		if b.Alive && core.Collides(body, b) {
			b.Alive = false
			hits++
		}
	}
	return hits
}
