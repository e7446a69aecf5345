package tetris

import "github.com/vovakirdan/retro-arcade/internal/core"

// Snapshot returns the read-only view of the well. Grid holds the locked
// blocks (0 empty, kind+1 otherwise). The falling piece and its landing
// ghost are unit boxes in board coordinates; the lookahead piece is given
// in its own mask coordinates.
func (g *Game) Snapshot() core.Snapshot {
	var ents []core.Entity

	ghost := g.piece
	ghost.Y += g.well.DropDistance(g.piece)
	if ghost.Y != g.piece.Y {
		ents = appendCells(ents, ghost.Blocks(), core.KindGhost, core.ColorGray)
	}
	ents = appendCells(ents, g.piece.Blocks(), core.KindPiece, g.piece.Kind.Color())
	ents = appendCells(ents, ShapeOf(g.next).Cells(), core.KindNext, g.next.Color())

	st := g.State()
	return core.Snapshot{
		GameID:   g.ID(),
		Tick:     g.tick,
		Phase:    st.Phase,
		Score:    st.Score,
		Best:     st.Best,
		Lives:    st.Lives,
		Level:    st.Level,
		Width:    float64(g.well.W),
		Height:   float64(g.well.H),
		Entities: ents,
		Grid:     g.well.Rows(),
	}
}

func appendCells(ents []core.Entity, pts []core.Point, kind core.EntityKind, c core.Color) []core.Entity {
	for _, p := range pts {
		ents = append(ents, core.Entity{
			Kind:  kind,
			Box:   core.NewRectF(float64(p.X), float64(p.Y), 1, 1),
			Color: c,
		})
	}
	return ents
}
