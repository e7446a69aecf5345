package breakout

import (
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

const (
	minFieldW = 40
	minFieldH = 14
)

// Render draws the game to the screen, scaling the pixel field to fit.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	top := dst.DrawHUD(fmt.Sprintf("%s — Score: %d  Best: %d  Lives: %d  Level: %d",
		g.Title(), g.board.Score, g.board.Best, g.lives, g.level))

	if !dst.Fits(minFieldW+2, minFieldH+2+top) {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", minFieldW+2, minFieldH+2+top))
		return
	}

	frame := core.NewRect(0, top, dst.Width(), dst.Height()-top)
	dst.DrawBox(frame)
	vp := core.Viewport{
		Screen: core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2),
		FieldW: g.cfg.Field.Width,
		FieldH: g.cfg.Field.Height,
	}

	for _, b := range g.wall.Bricks {
		if b.Alive {
			dst.DrawRect(vp.Project(b.Box), '█', rowColors[b.Row%len(rowColors)])
		}
	}
	dst.DrawRect(vp.Project(g.paddle.Bounds()), '▀', core.ColorBrightGreen)

	ball := vp.Project(g.ball.Bounds())
	bx, by := ball.Center()
	dst.SetColor(bx, by, '●', core.ColorBrightWhite)

	switch g.machine.Phase() {
	case core.PhaseIdle:
		dst.DrawOverlay(g.Title(), "Space to launch, arrows to move")
	case core.PhasePaused:
		dst.DrawOverlay("Paused", "Press P to continue")
	case core.PhaseOver:
		dst.DrawOverlay("Game Over", fmt.Sprintf("Score: %d  R to restart", g.board.Score))
	case core.PhaseWon:
		dst.DrawOverlay(fmt.Sprintf("Level %d cleared!", g.level), "Space for the next level")
	default:
		if g.serving {
			dst.DrawTextCentered(frame.Bottom()-2, "Press Space to launch")
		}
	}
}
