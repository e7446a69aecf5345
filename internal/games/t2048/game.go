package t2048

import (
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// flashTicks is how long merged and spawned tiles stay highlighted.
const flashTicks = 8

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
}

// Game implements the 2048 puzzle game.
type Game struct {
	cfg     config.T2048Config
	runtime core.RuntimeConfig
	rng     *rand.Rand

	machine core.Machine
	board   core.Scoreboard
	tick    uint64

	grid      *core.Grid
	continued bool // player chose to keep going after the win tile

	merged  []core.Point
	spawned core.Point
	flash   int
}

// New creates a new 2048 game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadT2048(configPath)
	if err != nil {
		cfg = config.DefaultT2048Config()
	}
	g.ResetWith(rt, cfg)
}

// ResetWith initializes the game from an explicit configuration.
func (g *Game) ResetWith(rt core.RuntimeConfig, cfg config.T2048Config) {
	g.cfg = cfg
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.machine.Restart()
	g.board.Reset(rt.Best)
	g.tick = 0
	g.grid = core.NewGrid(cfg.Board.Size, cfg.Board.Size)
	g.continued = false
	g.merged = nil
	g.flash = 0

	for range cfg.Spawn.StartTiles {
		g.spawnTile()
	}
}

// spawnTile puts a 2 or 4 on a random empty cell.
func (g *Game) spawnTile() bool {
	p, ok := g.grid.PlaceRandom(g.rng, nil)
	if !ok {
		return false
	}
	value := 2
	if g.rng.Float64() < g.cfg.Spawn.FourChance {
		value = 4
	}
	g.grid.Set(p.X, p.Y, value)
	g.spawned = p
	return true
}

// Step advances the game by one tick. Only a move input changes the board.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.ResetWith(g.runtime, g.cfg)
		return core.StepResult{State: g.State()}
	}

	if g.machine.Is(core.PhaseWon) && in.Has(core.ActionConfirm) {
		g.continued = true
		g.machine.Resume()
		if !CanMove(g.grid) {
			g.machine.Lose()
		}
		return core.StepResult{State: g.State()}
	}

	if !g.machine.HandleCommon(in, core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight) {
		return core.StepResult{State: g.State()}
	}
	g.tick++
	if g.flash > 0 {
		g.flash--
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}
	gained := g.Move(dir)
	return core.StepResult{State: g.State(), Scored: gained}
}

// directionFor maps the frame's direction to a slide.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch in.Direction() {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// Move slides the board. A move that changes nothing spawns nothing.
// It returns the points gained.
func (g *Game) Move(dir Direction) int {
	gained, moved, merges := Slide(g.grid, dir)
	if !moved {
		return 0
	}
	g.board.Add(gained)
	g.merged = merges
	g.spawnTile()
	g.flash = flashTicks

	if !g.continued && MaxTile(g.grid) >= g.cfg.Board.WinTile {
		g.machine.Win()
		return gained
	}
	if !CanMove(g.grid) {
		g.machine.Lose()
	}
	return gained
}

// Board returns a copy of the tile values.
func (g *Game) Board() [][]int {
	return g.grid.Rows()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.board.Score,
		Best:  g.board.Best,
		Lives: 1,
		Level: LevelFor(MaxTile(g.grid)),
		Phase: g.machine.Phase(),
	}
}
