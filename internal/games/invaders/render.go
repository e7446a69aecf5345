package invaders

import (
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

const (
	minFieldW = 40
	minFieldH = 16
)

// Render draws the game to the screen, scaling the pixel field to fit.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	top := dst.DrawHUD(fmt.Sprintf("%s — Score: %d  Best: %d  Lives: %d  Wave: %d  Weapon: %s",
		g.Title(), g.board.Score, g.board.Best, g.lives, g.wave, g.armory.Current().Name))

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

	for _, b := range g.beams {
		dst.DrawRect(vp.Project(b.Bounds(g.cfg.Field.Height)), '┃', core.ColorBrightMagenta)
	}
	for _, e := range g.enemies {
		dst.DrawRect(vp.Project(e.Box), enemyGlyph(e.Type.Name), enemyColor(e.Type.Name))
	}
	if g.boss != nil {
		r := vp.Project(g.boss.Box)
		dst.DrawRect(r, '▓', core.ColorBrightMagenta)
		dst.DrawTextColor(r.X, r.Y-1, fmt.Sprintf("HP %d", hpOf(g.boss.HP)), core.ColorBrightRed)
	}
	for _, b := range g.bullets {
		x, y := vp.Project(b.Box).Center()
		dst.SetColor(x, y, '|', core.ColorBrightCyan)
	}
	for _, b := range g.bombs {
		x, y := vp.Project(b.Box).Center()
		dst.SetColor(x, y, '*', core.ColorOrange)
	}
	dst.DrawRect(vp.Project(g.player.Box), '▲', core.ColorBrightGreen)

	switch g.machine.Phase() {
	case core.PhaseIdle:
		dst.DrawOverlay(g.Title(), "Space to start, arrows to move")
	case core.PhasePaused:
		dst.DrawOverlay("Paused", "Press P to continue")
	case core.PhaseOver:
		dst.DrawOverlay("Game Over", fmt.Sprintf("Score: %d  R to restart", g.board.Score))
	case core.PhaseWon:
		dst.DrawOverlay(fmt.Sprintf("Wave %d cleared!", g.wave), "Space for the next wave")
	default:
		if g.alert > 0 {
			dst.DrawOverlay("BOSS INCOMING", fmt.Sprintf("%d", g.alertSeconds()))
		}
	}
}

func enemyGlyph(name string) rune {
	switch name {
	case "fast":
		return 'W'
	case "tank":
		return 'H'
	default:
		return 'M'
	}
}
