// Package t2048 implements the 2048 sliding-tile puzzle.
package t2048

// Milestone names a tile value worth announcing in the HUD.
// Reaching one raises the reported level; only the configured win tile
// ends the run.
type Milestone struct {
	Name string
	Tile int
}

// Milestones are ordered by tile value.
var Milestones = []Milestone{
	{Name: "Warm-up", Tile: 128},
	{Name: "Getting Started", Tile: 256},
	{Name: "Building Momentum", Tile: 512},
	{Name: "The Climb", Tile: 1024},
	{Name: "Classic 2048", Tile: 2048},
	{Name: "Beyond Limits", Tile: 4096},
	{Name: "Master Class", Tile: 8192},
}

// LevelFor returns 1 plus the number of milestones reached by maxTile.
func LevelFor(maxTile int) int {
	level := 1
	for _, m := range Milestones {
		if maxTile >= m.Tile {
			level++
		}
	}
	return level
}

// MilestoneFor returns the highest milestone reached, if any.
func MilestoneFor(maxTile int) (Milestone, bool) {
	var best Milestone
	found := false
	for _, m := range Milestones {
		if maxTile >= m.Tile {
			best, found = m, true
		}
	}
	return best, found
}
