package t2048

import (
	"strconv"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Snapshot returns the read-only view of the board. Grid holds the tile
// values; each tile is also listed as an entity labelled with its value.
func (g *Game) Snapshot() core.Snapshot {
	var ents []core.Entity
	for y, row := range g.grid.Cells {
		for x, v := range row {
			if v == 0 {
				continue
			}
			ents = append(ents, core.Entity{
				Kind:  core.KindPiece,
				Box:   core.NewRectF(float64(x), float64(y), 1, 1),
				Color: tileColor(v),
				Label: strconv.Itoa(v),
			})
		}
	}

	msg := ""
	if g.machine.Is(core.PhaseWon) {
		msg = "You win! Press Enter to keep going"
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
		Width:    float64(g.grid.W),
		Height:   float64(g.grid.H),
		Entities: ents,
		Grid:     g.grid.Rows(),
		Message:  msg,
	}
}

// tileColor picks a colour per tile value.
func tileColor(v int) core.Color {
	switch {
	case v <= 4:
		return core.ColorWhite
	case v <= 16:
		return core.ColorOrange
	case v <= 64:
		return core.ColorRed
	case v <= 512:
		return core.ColorYellow
	case v <= 2048:
		return core.ColorBrightYellow
	default:
		return core.ColorMagenta
	}
}
