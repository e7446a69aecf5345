package invaders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// enemyColors maps enemy type names to colours.
var enemyColors = map[string]core.Color{
	"normal": core.ColorBrightRed,
	"fast":   core.ColorBrightYellow,
	"tank":   core.ColorRed,
}

func enemyColor(name string) core.Color {
	if c, ok := enemyColors[name]; ok {
		return c
	}
	return core.ColorMagenta
}

// hpOf rounds a fractional hit pool up for display.
func hpOf(hp float64) int {
	return int(math.Ceil(hp))
}

// Snapshot returns the read-only view of the field in pixels.
func (g *Game) Snapshot() core.Snapshot {
	h := g.cfg.Field.Height
	ents := []core.Entity{{
		Kind:  core.KindPlayer,
		Box:   g.player.Box,
		Color: core.ColorBrightGreen,
		HP:    g.lives,
		Label: g.armory.Current().Name,
	}}
	for _, e := range g.enemies {
		ents = append(ents, core.Entity{
			Kind:  core.KindEnemy,
			Box:   e.Box,
			Color: enemyColor(e.Type.Name),
			HP:    hpOf(e.HP),
			Label: e.Type.Name,
		})
	}
	if g.boss != nil {
		ents = append(ents, core.Entity{
			Kind:  core.KindBoss,
			Box:   g.boss.Box,
			Color: core.ColorBrightMagenta,
			HP:    hpOf(g.boss.HP),
			Label: fmt.Sprintf("phase %d", g.boss.Phase),
		})
	}
	for _, b := range g.bullets {
		ents = append(ents, core.Entity{Kind: core.KindBullet, Box: b.Box, Color: core.ColorBrightCyan})
	}
	for _, b := range g.beams {
		ents = append(ents, core.Entity{Kind: core.KindLaser, Box: b.Bounds(h), Color: core.ColorBrightMagenta})
	}
	for _, b := range g.bombs {
		ents = append(ents, core.Entity{Kind: core.KindBomb, Box: b.Box, Color: core.ColorOrange})
	}

	msg := ""
	if g.alert > 0 {
		ents = append(ents, core.Entity{
			Kind:  core.KindBanner,
			Box:   core.NewRectF(0, h/2-20, g.cfg.Field.Width, 40),
			Color: core.ColorBrightRed,
		})
		msg = fmt.Sprintf("BOSS INCOMING %d", g.alertSeconds())
	}

	st := g.State()
	return core.Snapshot{
		GameID:   g.ID(),
		Tick:     g.tick,
		Phase:    st.Phase,
		Score:    st.Score,
		Best:     st.Best,
		Lives:    st.Lives,
		Level:    st.Level,
		Width:    g.cfg.Field.Width,
		Height:   h,
		Entities: ents,
		Message:  msg,
	}
}

// alertSeconds is the whole-second countdown shown during the boss alert.
func (g *Game) alertSeconds() int {
	rate := g.runtime.TickRateOrDefault()
	return (g.alert + rate - 1) / rate
}
