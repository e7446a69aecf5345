package tetris

import "github.com/vovakirdan/retro-arcade/internal/core"

// Board is the well of locked blocks.
type Board struct {
	*core.Grid
}

// NewBoard returns an empty cols x rows well.
func NewBoard(cols, rows int) Board {
	return Board{Grid: core.NewGrid(cols, rows)}
}

// IsValidMove reports whether shape fits with its top-left at (x, y).
// Cells above the top edge are allowed so pieces can spawn partly hidden.
func (b Board) IsValidMove(x, y int, shape Shape) bool {
	for _, p := range shape.Cells() {
		nx, ny := x+p.X, y+p.Y
		if nx < 0 || nx >= b.W || ny >= b.H {
			return false
		}
		if ny >= 0 && b.Occupied(nx, ny) {
			return false
		}
	}
	return true
}

// Lock writes the piece into the board. Blocks above the top edge are dropped.
func (b Board) Lock(p Piece) {
	for _, pt := range p.Blocks() {
		if pt.Y >= 0 {
			b.Set(pt.X, pt.Y, p.Kind.cell())
		}
	}
}

// ClearLines removes every full row, shifts the rows above down and
// returns how many were removed.
func (b Board) ClearLines() int {
	kept := make([][]int, 0, b.H)
	for _, row := range b.Cells {
		if !full(row) {
			kept = append(kept, row)
		}
	}
	cleared := b.H - len(kept)
	if cleared == 0 {
		return 0
	}
	rows := make([][]int, 0, b.H)
	for range cleared {
		rows = append(rows, make([]int, b.W))
	}
	b.Cells = append(rows, kept...)
	return cleared
}

func full(row []int) bool {
	for _, v := range row {
		if v == 0 {
			return false
		}
	}
	return true
}

// DropDistance returns how many rows the piece can fall before it rests.
func (b Board) DropDistance(p Piece) int {
	d := 0
	for b.IsValidMove(p.X, p.Y+d+1, p.Shape) {
		d++
	}
	return d
}
