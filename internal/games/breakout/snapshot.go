package breakout

import "github.com/vovakirdan/retro-arcade/internal/core"

// Snapshot returns the read-only view of the field in pixels.
func (g *Game) Snapshot() core.Snapshot {
	ents := make([]core.Entity, 0, len(g.wall.Bricks)+2)
	for _, b := range g.wall.Bricks {
		if !b.Alive {
			continue
		}
		ents = append(ents, core.Entity{
			Kind:  core.KindBrick,
			Box:   b.Box,
			Color: rowColors[b.Row%len(rowColors)],
			HP:    1,
		})
	}
	ents = append(ents,
		core.Entity{Kind: core.KindPaddle, Box: g.paddle.Bounds(), Color: core.ColorBrightGreen},
		core.Entity{Kind: core.KindBall, Box: g.ball.Bounds(), Color: core.ColorBrightWhite},
	)

	msg := ""
	if g.serving && g.machine.Active() {
		msg = "Press Space to launch"
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
		Height:   g.cfg.Field.Height,
		Entities: ents,
		Message:  msg,
	}
}
