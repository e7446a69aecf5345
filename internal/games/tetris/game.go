package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// Game implements Tetris.
type Game struct {
	cfg        config.TetrisConfig
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	machine core.Machine
	board   core.Scoreboard
	tick    uint64

	well  Board
	piece Piece
	next  Kind

	lines int
	level int

	dropTicks  int // ticks between gravity steps
	dropTicker int
}

// New creates a new Tetris game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath, difficultyPreset)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	g.ResetWith(rt, cfg)
}

// ResetWith initializes the game from an explicit configuration.
func (g *Game) ResetWith(rt core.RuntimeConfig, cfg config.TetrisConfig) {
	g.cfg = cfg
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.machine.Restart()
	g.board.Reset(rt.Best)
	g.tick = 0
	g.well = NewBoard(cfg.Board.Cols, cfg.Board.Rows)
	g.lines = 0
	g.level = 1
	g.dropTicker = 0

	g.next = g.randomKind()
	g.spawn()
	g.updateGravity()
}

func (g *Game) randomKind() Kind {
	return Kind(g.rng.Intn(int(kindCount)))
}

// spawn promotes the lookahead piece and draws a new one.
// It reports false when the piece does not fit.
func (g *Game) spawn() bool {
	shape := ShapeOf(g.next)
	g.piece = Piece{
		Kind:  g.next,
		Shape: shape,
		X:     g.well.W/2 - shape.Width()/2,
		Y:     0,
	}
	g.next = g.randomKind()
	return g.well.IsValidMove(g.piece.X, g.piece.Y, g.piece.Shape)
}

// DropInterval returns the gravity interval for the current level.
func (g *Game) DropInterval() time.Duration {
	gr := g.cfg.Gravity
	ms := max(gr.MinMs, gr.BaseMs-(g.level-1)*gr.StepMs)
	base := time.Duration(ms) * time.Millisecond
	floor := time.Duration(gr.MinMs) * time.Millisecond
	return g.difficulty.Interval(base, floor, g.board.Score, int(g.tick))
}

func (g *Game) updateGravity() {
	g.dropTicks = core.TicksFor(g.DropInterval(), g.runtime.TickRateOrDefault())
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.ResetWith(g.runtime, g.cfg)
		return core.StepResult{State: g.State()}
	}

	// The frame that starts the game only starts it.
	if g.machine.Is(core.PhaseIdle) {
		g.machine.HandleCommon(in, core.ActionFire)
		return core.StepResult{State: g.State()}
	}

	scoreBefore := g.board.Score
	if !g.machine.HandleCommon(in) {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	switch {
	case in.Has(core.ActionLeft):
		g.Shift(-1)
	case in.Has(core.ActionRight):
		g.Shift(1)
	}
	if in.Has(core.ActionUp) {
		g.Rotate()
	}

	switch {
	case in.Has(core.ActionFire):
		g.HardDrop()
		g.dropTicker = 0
	case in.Has(core.ActionDown) && g.SoftDrop():
		g.dropTicker = 0
	default:
		// A blocked soft drop falls through so a resting piece still locks.
		g.dropTicker++
		if g.dropTicker >= g.dropTicks {
			g.dropTicker = 0
			g.gravity()
		}
	}

	g.updateGravity()
	return core.StepResult{State: g.State(), Scored: g.board.Score - scoreBefore}
}

// Shift moves the piece sideways when the target is free.
func (g *Game) Shift(dx int) bool {
	if !g.well.IsValidMove(g.piece.X+dx, g.piece.Y, g.piece.Shape) {
		return false
	}
	g.piece.X += dx
	return true
}

// Rotate turns the piece clockwise when the rotated mask fits in place.
func (g *Game) Rotate() bool {
	rotated := g.piece.Shape.Rotate()
	if !g.well.IsValidMove(g.piece.X, g.piece.Y, rotated) {
		return false
	}
	g.piece.Shape = rotated
	return true
}

// SoftDrop moves the piece down one row, scoring only when it moved.
func (g *Game) SoftDrop() bool {
	if !g.well.IsValidMove(g.piece.X, g.piece.Y+1, g.piece.Shape) {
		return false
	}
	g.piece.Y++
	g.board.Add(g.cfg.Scoring.SoftDrop)
	return true
}

// HardDrop drops the piece to rest, scoring per row, and locks it.
func (g *Game) HardDrop() {
	d := g.well.DropDistance(g.piece)
	g.piece.Y += d
	g.board.Add(d * g.cfg.Scoring.HardDrop)
	g.lock()
}

// gravity moves the piece down one row or locks it when blocked.
func (g *Game) gravity() {
	if g.well.IsValidMove(g.piece.X, g.piece.Y+1, g.piece.Shape) {
		g.piece.Y++
		return
	}
	g.lock()
}

// lock fixes the piece, clears lines and spawns from the lookahead slot.
func (g *Game) lock() {
	g.well.Lock(g.piece)

	if n := g.well.ClearLines(); n > 0 {
		g.board.Add(n * g.cfg.Scoring.LinePoints * g.level)
		g.lines += n
		if per := g.cfg.Scoring.LinesPerLevel; per > 0 {
			g.level = max(g.level, g.lines/per+1)
		}
	}

	if !g.spawn() {
		g.machine.Lose()
	}
}

// Lines returns the number of cleared lines.
func (g *Game) Lines() int {
	return g.lines
}

// Next returns the kind waiting in the lookahead slot.
func (g *Game) Next() Kind {
	return g.next
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.board.Score,
		Best:  g.board.Best,
		Lives: 1,
		Level: g.level,
		Phase: g.machine.Phase(),
	}
}
