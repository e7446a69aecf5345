package tetris

import (
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

const sidePanelW = 14

// Render draws the well, the falling piece with its ghost and a side
// panel with the lookahead piece.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	top := dst.DrawHUD(fmt.Sprintf("%s — Score: %d  Best: %d  Level: %d  Lines: %d",
		g.Title(), g.board.Score, g.board.Best, g.level, g.lines))

	w, h := g.well.W, g.well.H
	boxW, boxH := w*2+2, (h+1)/2+2
	totalW := boxW + 2 + sidePanelW
	if !dst.Fits(totalW, boxH+top) {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", totalW, boxH+top))
		return
	}

	frame := core.NewRect((dst.Width()-totalW)/2, top, boxW, boxH)
	dst.DrawBox(frame)

	active := make(map[core.Point]core.Color, 8)
	ghost := g.piece
	ghost.Y += g.well.DropDistance(g.piece)
	for _, p := range ghost.Blocks() {
		active[p] = core.ColorGray
	}
	for _, p := range g.piece.Blocks() {
		active[p] = g.piece.Kind.Color()
	}

	dst.DrawHalfBlocks(frame.X+1, frame.Y+1, w, h, func(x, y int) (core.Color, bool) {
		if v := g.well.At(x, y); v != 0 {
			return kindOf(v).Color(), true
		}
		c, ok := active[core.Point{X: x, Y: y}]
		return c, ok
	})

	panel := core.NewRect(frame.Right()+2, top, sidePanelW, 6)
	dst.DrawBox(panel)
	dst.DrawText(panel.X+2, panel.Y, " Next ")
	next := ShapeOf(g.next)
	dst.DrawHalfBlocks(panel.X+(panel.W-next.Width()*2)/2, panel.Y+2, next.Width(), next.Height(),
		func(x, y int) (core.Color, bool) {
			return g.next.Color(), next[y][x]
		})

	switch g.machine.Phase() {
	case core.PhaseIdle:
		dst.DrawOverlay(g.Title(), "Enter or Space to start")
	case core.PhasePaused:
		dst.DrawOverlay("Paused", "Press P to continue")
	case core.PhaseOver:
		dst.DrawOverlay("Game Over", fmt.Sprintf("Score: %d  R to restart", g.board.Score))
	}
}
