package core

import "math/rand"

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid is a fixed-size board of integer cells. Zero means empty.
type Grid struct {
	W, H  int
	Cells [][]int
}

// NewGrid allocates an empty w x h grid.
func NewGrid(w, h int) *Grid {
	g := &Grid{W: w, H: h, Cells: make([][]int, h)}
	for y := range g.Cells {
		g.Cells[y] = make([]int, w)
	}
	return g
}

// InBounds reports whether (x, y) lies on the board.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y), or 0 out of bounds.
func (g *Grid) At(x, y int) int {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.Cells[y][x]
}

// Set writes v at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y, v int) {
	if g.InBounds(x, y) {
		g.Cells[y][x] = v
	}
}

// Occupied reports whether (x, y) holds a non-zero value.
func (g *Grid) Occupied(x, y int) bool {
	return g.At(x, y) != 0
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for y := range g.Cells {
		clear(g.Cells[y])
	}
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.W, g.H)
	for y := range g.Cells {
		copy(c.Cells[y], g.Cells[y])
	}
	return c
}

// Rows returns a copy of the cell values.
func (g *Grid) Rows() [][]int {
	return g.Clone().Cells
}

// EmptyCells lists the coordinates with value 0, row by row.
func (g *Grid) EmptyCells() []Point {
	var out []Point
	for y := range g.H {
		for x := range g.W {
			if g.Cells[y][x] == 0 {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// placeAttempts bounds the random retries before falling back to a scan.
const placeAttempts = 64

// PlaceRandom picks a random in-bounds cell for which occupied returns
// false. It retries random draws, then scans the free cells so that a
// nearly full board still terminates. ok is false only when no cell is free.
func PlaceRandom(rng *rand.Rand, w, h int, occupied func(Point) bool) (Point, bool) {
	if w <= 0 || h <= 0 {
		return Point{}, false
	}
	for range placeAttempts {
		p := Point{X: rng.Intn(w), Y: rng.Intn(h)}
		if !occupied(p) {
			return p, true
		}
	}

	var free []Point
	for y := range h {
		for x := range w {
			p := Point{x, y}
			if !occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[rng.Intn(len(free))], true
}

// PlaceRandom picks a random empty cell of the grid, also rejecting cells
// for which extra returns true (extra may be nil).
func (g *Grid) PlaceRandom(rng *rand.Rand, extra func(Point) bool) (Point, bool) {
	return PlaceRandom(rng, g.W, g.H, func(p Point) bool {
		if g.Occupied(p.X, p.Y) {
			return true
		}
		return extra != nil && extra(p)
	})
}
