// Package tetris implements falling-block Tetris on a fixed grid.
package tetris

import "github.com/vovakirdan/retro-arcade/internal/core"

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	kindCount
)

// Shape is a rectangular occupancy mask, indexed [row][col].
type Shape [][]bool

var shapes = [kindCount]Shape{
	mask("####"),
	mask("##", "##"),
	mask(".#.", "###"),
	mask(".##", "##."),
	mask("##.", ".##"),
	mask("#..", "###"),
	mask("..#", "###"),
}

var kindColors = [kindCount]core.Color{
	core.ColorRed,
	core.ColorCyan,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorMagenta,
	core.ColorBlue,
	core.ColorOrange,
}

func mask(rows ...string) Shape {
	s := make(Shape, len(rows))
	for r, row := range rows {
		s[r] = make([]bool, len(row))
		for c, ch := range row {
			s[r][c] = ch == '#'
		}
	}
	return s
}

// String returns the tetromino letter.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "?"
	}
	return string("IOTSZJL"[k])
}

// Color returns the display colour for the kind.
func (k Kind) Color() core.Color {
	if k < 0 || k >= kindCount {
		return core.ColorDefault
	}
	return kindColors[k]
}

// cell is the value a locked block of kind k stores in the board grid.
func (k Kind) cell() int {
	return int(k) + 1
}

// kindOf reverses cell.
func kindOf(v int) Kind {
	return Kind(v - 1)
}

// ShapeOf returns a fresh copy of the spawn orientation for k.
func ShapeOf(k Kind) Shape {
	return shapes[k].clone()
}

func (s Shape) clone() Shape {
	c := make(Shape, len(s))
	for r := range s {
		c[r] = append([]bool(nil), s[r]...)
	}
	return c
}

// Width returns the number of columns in the mask.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows in the mask.
func (s Shape) Height() int {
	return len(s)
}

// Rotate returns the mask turned 90 degrees clockwise.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for r := range w {
		out[r] = make([]bool, h)
		for c := range h {
			out[r][c] = s[h-1-c][r]
		}
	}
	return out
}

// Cells lists the occupied offsets of the mask.
func (s Shape) Cells() []core.Point {
	var pts []core.Point
	for r, row := range s {
		for c, on := range row {
			if on {
				pts = append(pts, core.Point{X: c, Y: r})
			}
		}
	}
	return pts
}

// Piece is the falling tetromino.
type Piece struct {
	Kind  Kind
	Shape Shape
	X, Y  int // top-left of the mask on the board
}

// Blocks returns the board coordinates the piece covers.
func (p Piece) Blocks() []core.Point {
	pts := p.Shape.Cells()
	for i := range pts {
		pts[i] = pts[i].Add(core.Point{X: p.X, Y: p.Y})
	}
	return pts
}
