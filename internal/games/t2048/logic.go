package t2048

import "github.com/vovakirdan/retro-arcade/internal/core"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "?"
	}
}

// MergeLine slides a line towards index 0 and merges equal neighbours.
// Each tile merges at most once per move. It returns the new line, the
// sum of merged values and whether anything changed.
func MergeLine(line []int) (out []int, gained int, moved bool) {
	out, gained, moved, _ = mergeLine(line)
	return out, gained, moved
}

// mergeLine is MergeLine that also reports the output indices holding a
// merged tile.
func mergeLine(line []int) (out []int, gained int, moved bool, mergedAt []int) {
	out = make([]int, len(line))
	n := 0
	for _, v := range line {
		if v == 0 {
			continue
		}
		last := len(mergedAt) > 0 && mergedAt[len(mergedAt)-1] == n-1
		if n > 0 && !last && out[n-1] == v {
			out[n-1] *= 2
			gained += out[n-1]
			mergedAt = append(mergedAt, n-1)
			continue
		}
		out[n] = v
		n++
	}
	for i := range line {
		if line[i] != out[i] {
			moved = true
			break
		}
	}
	return out, gained, moved, mergedAt
}

// lineCoords lists the cells of line i read in the direction tiles travel
// towards, so MergeLine's index 0 is the wall being pushed against.
func lineCoords(size, i int, dir Direction) []core.Point {
	pts := make([]core.Point, size)
	for j := range size {
		switch dir {
		case DirLeft:
			pts[j] = core.Point{X: j, Y: i}
		case DirRight:
			pts[j] = core.Point{X: size - 1 - j, Y: i}
		case DirUp:
			pts[j] = core.Point{X: i, Y: j}
		case DirDown:
			pts[j] = core.Point{X: i, Y: size - 1 - j}
		}
	}
	return pts
}

// Slide applies a move to a square grid in place. It returns the points
// gained, whether the board changed and the cells that received a merge.
func Slide(g *core.Grid, dir Direction) (gained int, moved bool, merges []core.Point) {
	for i := range g.H {
		pts := lineCoords(g.W, i, dir)
		line := make([]int, len(pts))
		for j, p := range pts {
			line[j] = g.At(p.X, p.Y)
		}

		out, got, changed, mergedAt := mergeLine(line)
		if !changed {
			continue
		}
		moved = true
		gained += got
		for j, p := range pts {
			g.Set(p.X, p.Y, out[j])
		}
		for _, j := range mergedAt {
			merges = append(merges, pts[j])
		}
	}
	return gained, moved, merges
}

// HasPossibleMerge returns true if any adjacent tiles can merge.
func HasPossibleMerge(g *core.Grid) bool {
	for y := range g.H {
		for x := range g.W {
			val := g.At(x, y)
			if val == 0 {
				continue
			}
			if x < g.W-1 && g.At(x+1, y) == val {
				return true
			}
			if y < g.H-1 && g.At(x, y+1) == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(g *core.Grid) bool {
	return len(g.EmptyCells()) > 0 || HasPossibleMerge(g)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(g *core.Grid) int {
	best := 0
	for _, row := range g.Cells {
		for _, v := range row {
			best = max(best, v)
		}
	}
	return best
}
