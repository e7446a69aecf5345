package snake

import "github.com/vovakirdan/retro-arcade/internal/core"

// Snapshot returns the read-only view of the board. Cells are unit boxes
// in grid coordinates; the head comes first.
func (g *Game) Snapshot() core.Snapshot {
	ents := make([]core.Entity, 0, len(g.snake)+1)
	for i, seg := range g.snake {
		e := core.Entity{
			Kind:  core.KindSnake,
			Box:   core.NewRectF(float64(seg.X), float64(seg.Y), 1, 1),
			Color: core.ColorGreen,
		}
		if i == 0 {
			e.Kind = core.KindHead
			e.Color = core.ColorBrightGreen
		}
		ents = append(ents, e)
	}
	if g.hasApple {
		ents = append(ents, core.Entity{
			Kind:  core.KindApple,
			Box:   core.NewRectF(float64(g.apple.X), float64(g.apple.Y), 1, 1),
			Color: core.ColorRed,
		})
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
		Width:    float64(g.cfg.Grid.Width),
		Height:   float64(g.cfg.Grid.Height),
		Entities: ents,
	}
}

// Head returns the head cell.
func (g *Game) Head() core.Point {
	return g.snake[0]
}

// Len returns the number of body segments.
func (g *Game) Len() int {
	return len(g.snake)
}
