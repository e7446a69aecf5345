package snake

import (
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	top := dst.DrawHUD(fmt.Sprintf("%s — Score: %d  Best: %d  Level: %d",
		g.Title(), g.board.Score, g.board.Best, g.Level()))

	w, h := g.cfg.Grid.Width, g.cfg.Grid.Height
	boxW, boxH := w*2+2, (h+1)/2+2
	if !dst.Fits(boxW, boxH+top) {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", boxW, boxH+top))
		return
	}

	frame := core.NewRect((dst.Width()-boxW)/2, top, boxW, boxH)
	dst.DrawBox(frame)

	cells := make(map[core.Point]core.Color, len(g.snake)+1)
	if g.hasApple {
		cells[g.apple] = core.ColorRed
	}
	for i := len(g.snake) - 1; i >= 0; i-- {
		c := core.ColorGreen
		if i == 0 {
			c = core.ColorBrightGreen
		}
		cells[g.snake[i]] = c
	}
	dst.DrawHalfBlocks(frame.X+1, frame.Y+1, w, h, func(x, y int) (core.Color, bool) {
		c, ok := cells[core.Point{X: x, Y: y}]
		return c, ok
	})

	switch g.machine.Phase() {
	case core.PhaseIdle:
		dst.DrawOverlay(g.Title(), "Arrows or Enter to start")
	case core.PhasePaused:
		dst.DrawOverlay("Paused", "Press P to continue")
	case core.PhaseOver:
		dst.DrawOverlay("Game Over", fmt.Sprintf("Score: %d  R to restart", g.board.Score))
	case core.PhaseWon:
		dst.DrawOverlay("Board full!", fmt.Sprintf("Score: %d  R to restart", g.board.Score))
	}
}
