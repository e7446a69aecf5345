package t2048

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf("%s — Score: %d  Best: %d", g.Title(), g.board.Score, g.board.Best)
	if m, ok := MilestoneFor(MaxTile(g.grid)); ok {
		hud += "  " + m.Name
	}
	top := dst.DrawHUD(hud)

	size := g.grid.W
	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1
	if !dst.Fits(boardW, boardH+top) {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH+top))
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := top + max(0, (dst.Height()-top-boardH)/2)
	g.renderGrid(dst, boardX, boardY)
	g.renderTiles(dst, boardX, boardY)

	switch g.machine.Phase() {
	case core.PhaseIdle:
		dst.DrawOverlay(g.Title(), "Arrows to slide, Enter to start")
	case core.PhasePaused:
		dst.DrawOverlay("Paused", "Press P to continue")
	case core.PhaseWon:
		dst.DrawOverlay(fmt.Sprintf("%d reached!", g.cfg.Board.WinTile), "Enter to keep going, R to restart")
	case core.PhaseOver:
		dst.DrawOverlay("Game Over", fmt.Sprintf("Max tile: %d  R to restart", MaxTile(g.grid)))
	}
}

// renderGrid draws the cell borders.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY int) {
	size := g.grid.W
	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < size {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}
}

// renderTiles writes each value centred in its cell. Tiles touched by the
// last move are drawn bright for a few ticks.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int) {
	for y, row := range g.grid.Cells {
		for x, val := range row {
			if val == 0 {
				continue
			}
			s := strconv.Itoa(val)
			pad := max(0, (cellWidth-1-len(s))/2)

			c := tileColor(val)
			p := core.Point{X: x, Y: y}
			if g.flash > 0 && (p == g.spawned || slices.Contains(g.merged, p)) {
				c = core.ColorBrightWhite
			}
			dst.DrawTextColor(boardX+x*cellWidth+1+pad, boardY+y*cellHeight+1, s, c)
		}
	}
}
