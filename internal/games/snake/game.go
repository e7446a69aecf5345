package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Variant selects the rule set.
type Variant string

const (
	VariantClassic Variant = "snake"
	VariantPlus    Variant = "snake_plus"
)

// delta returns the one-cell step for a direction.
func (d Direction) delta() core.Point {
	switch d {
	case DirUp:
		return core.Point{X: 0, Y: -1}
	case DirDown:
		return core.Point{X: 0, Y: 1}
	case DirLeft:
		return core.Point{X: -1, Y: 0}
	default:
		return core.Point{X: 1, Y: 0}
	}
}

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
		return "unknown"
	}
}

// directionFor maps a directional action to a Direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// isOpposite checks if two directions are opposite.
func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements Snake on a bounded grid.
type Game struct {
	variant Variant
	cfg     config.SnakeConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	machine    core.Machine
	board      core.Scoreboard
	difficulty *config.DifficultyManager
	tick       uint64

	snake         []core.Point // head at index 0
	direction     Direction
	nextDir       Direction
	pendingGrowth int
	apple         core.Point
	hasApple      bool

	apples     int
	interval   time.Duration
	moveTicks  int
	moveTicker int
}

// New creates a Snake game of the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New(VariantClassic)
	})
	registry.Register(string(VariantPlus), func() registry.Game {
		return New(VariantPlus)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantPlus {
		return "Snake Plus"
	}
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadSnake(g.ID(), configPath, difficultyPreset)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
		if g.variant == VariantPlus {
			cfg = config.DefaultSnakePlusConfig()
		}
	}
	g.ResetWith(rt, cfg)
}

// ResetWith initializes the game from an explicit configuration.
func (g *Game) ResetWith(rt core.RuntimeConfig, cfg config.SnakeConfig) {
	g.cfg = cfg
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.machine.Restart()
	g.board.Reset(rt.Best)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.tick = 0
	g.apples = 0
	g.pendingGrowth = 0

	// Body starts centred, heading right, tail to the left of the head.
	cx, cy := cfg.Grid.Width/2, cfg.Grid.Height/2
	length := max(1, cfg.Gameplay.StartLength)
	g.snake = make([]core.Point, 0, length)
	for i := range length {
		g.snake = append(g.snake, core.Point{X: cx - i, Y: cy})
	}
	g.direction = DirRight
	g.nextDir = DirRight

	g.interval = time.Duration(cfg.Gameplay.MoveIntervalMs) * time.Millisecond
	g.updateSpeed()
	g.moveTicker = 0

	g.spawnApple()
}

// updateSpeed recomputes how many ticks pass between moves.
func (g *Game) updateSpeed() {
	floor := time.Duration(g.cfg.Gameplay.MinIntervalMs) * time.Millisecond
	effective := g.difficulty.Interval(g.interval, floor, g.board.Score, int(g.tick))
	g.moveTicks = core.TicksFor(effective, g.runtime.TickRateOrDefault())
}

// spawnApple places the apple on a random cell not covered by the body.
func (g *Game) spawnApple() {
	p, ok := core.PlaceRandom(g.rng, g.cfg.Grid.Width, g.cfg.Grid.Height, g.isSnakeAt)
	g.apple = p
	g.hasApple = ok
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.ResetWith(g.runtime, g.cfg)
		return core.StepResult{State: g.State()}
	}

	scoreBefore := g.board.Score
	if !g.machine.HandleCommon(in, core.ActionFire, core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight) {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	g.latchDirection(in)

	g.moveTicker++
	if g.moveTicker >= g.moveTicks {
		g.moveTicker = 0
		g.moveSnake()
	}

	return core.StepResult{State: g.State(), Scored: g.board.Score - scoreBefore}
}

// latchDirection records the latest direction intent for the next move.
// A reversal relative to the current heading is ignored so it cannot
// overwrite an earlier valid intent.
func (g *Game) latchDirection(in core.InputFrame) {
	d, ok := directionFor(in.Direction())
	if !ok || isOpposite(d, g.direction) {
		return
	}
	g.nextDir = d
}

// moveSnake moves the snake one cell in the latched direction.
func (g *Game) moveSnake() {
	if isOpposite(g.nextDir, g.direction) {
		g.nextDir = g.direction
	}
	g.direction = g.nextDir

	newHead := g.snake[0].Add(g.direction.delta())

	if newHead.X < 0 || newHead.X >= g.cfg.Grid.Width ||
		newHead.Y < 0 || newHead.Y >= g.cfg.Grid.Height {
		g.machine.Lose()
		return
	}

	// The tail cell is vacated this move unless the snake is growing.
	checkLen := len(g.snake)
	if g.pendingGrowth == 0 {
		checkLen--
	}
	for i := range checkLen {
		if g.snake[i] == newHead {
			g.machine.Lose()
			return
		}
	}

	g.snake = append([]core.Point{newHead}, g.snake...)

	ate := g.hasApple && newHead == g.apple
	if ate {
		g.board.Add(g.cfg.Gameplay.ApplePoints)
		g.apples++
		g.pendingGrowth += max(1, g.cfg.Gameplay.Growth)
		if every := g.cfg.Gameplay.SpeedUpEvery; every > 0 && g.apples%every == 0 {
			floor := time.Duration(g.cfg.Gameplay.MinIntervalMs) * time.Millisecond
			g.interval = max(floor, g.interval-time.Duration(g.cfg.Gameplay.SpeedUpMs)*time.Millisecond)
		}
		g.updateSpeed()
	}

	if g.pendingGrowth > 0 {
		g.pendingGrowth--
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	if ate {
		g.spawnApple()
		if !g.hasApple {
			// The body covers the whole board.
			g.machine.Win()
		}
	}
}

// Level is 1 plus the number of completed speed-up steps.
func (g *Game) Level() int {
	if every := g.cfg.Gameplay.SpeedUpEvery; every > 0 {
		return 1 + g.apples/every
	}
	return 1
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.board.Score,
		Best:  g.board.Best,
		Lives: 1,
		Level: g.Level(),
		Phase: g.machine.Phase(),
	}
}
