package breakout

import (
	"math"
	"math/rand"

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
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}

// Game implements the Breakout game logic.
type Game struct {
	cfg        config.BreakoutConfig
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	machine core.Machine
	board   core.Scoreboard
	tick    uint64

	paddle  Paddle
	ball    Ball
	wall    *Wall
	serving bool // ball rides the paddle until Fire

	lives     int
	level     int
	ballSpeed float64 // base speed for the current level
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadBreakout(configPath, difficultyPreset)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	g.ResetWith(rt, cfg)
}

// ResetWith initializes the game from an explicit configuration.
func (g *Game) ResetWith(rt core.RuntimeConfig, cfg config.BreakoutConfig) {
	g.cfg = cfg
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.machine.Restart()
	g.board.Reset(rt.Best)
	g.tick = 0
	g.lives = cfg.Gameplay.Lives
	g.level = 1
	g.ballSpeed = cfg.Ball.Speed

	g.paddle = Paddle{
		W:     cfg.Paddle.Width,
		H:     cfg.Paddle.Height,
		Y:     cfg.Field.Height - cfg.Paddle.BottomOffset,
		Speed: cfg.Paddle.Speed,
	}
	g.wall = NewWall(cfg.Bricks)
	g.serve()
}

// serve centres the paddle and parks the ball on it.
func (g *Game) serve() {
	g.paddle.X = (g.cfg.Field.Width - g.paddle.W) / 2
	g.ball = Ball{Radius: g.cfg.Ball.Radius}
	g.serving = true
	g.followPaddle()
}

// followPaddle keeps a served ball on top of the paddle.
func (g *Game) followPaddle() {
	g.ball.X = g.paddle.CenterX()
	g.ball.Y = g.paddle.Y - g.ball.Radius - 2
}

// launch releases the ball at a random angle within the configured cone.
func (g *Game) launch() {
	maxRad := g.cfg.Ball.MaxLaunchDeg * math.Pi / 180
	angle := (g.rng.Float64()*2 - 1) * maxRad
	speed := g.difficulty.Speed(g.ballSpeed, g.board.Score, int(g.tick))
	g.ball.Launch(speed, angle)
	g.serving = false
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.ResetWith(g.runtime, g.cfg)
		return core.StepResult{State: g.State()}
	}

	if g.machine.Is(core.PhaseWon) && (in.Has(core.ActionFire) || in.Has(core.ActionConfirm)) {
		g.nextLevel()
		return core.StepResult{State: g.State()}
	}

	scoreBefore := g.board.Score
	if !g.machine.HandleCommon(in, core.ActionFire) {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	switch {
	case in.Has(core.ActionLeft):
		g.paddle.Nudge(-1, g.cfg.Field.Width)
	case in.Has(core.ActionRight):
		g.paddle.Nudge(1, g.cfg.Field.Width)
	}

	if g.serving {
		g.followPaddle()
		if in.Has(core.ActionFire) {
			g.launch()
		}
		return core.StepResult{State: g.State(), Scored: g.board.Score - scoreBefore}
	}

	g.stepBall()
	return core.StepResult{State: g.State(), Scored: g.board.Score - scoreBefore}
}

// stepBall moves the ball and resolves walls, paddle, bricks and misses.
func (g *Game) stepBall() {
	b := &g.ball
	b.Move()
	b.reflectWalls(g.cfg.Field.Width)

	if b.VY > 0 && core.Collides(b, &g.paddle) {
		b.VX = g.paddle.HitPos(b.X) * g.currentSpeed()
		b.VY = -math.Abs(b.VY)
	}

	if hits := g.wall.Smash(b); hits > 0 {
		b.VY = -b.VY
		g.board.Add(hits * g.cfg.Gameplay.BrickPoints * g.level)
		if g.wall.Cleared() {
			g.machine.Win()
			return
		}
	}

	if b.Y+b.Radius > g.cfg.Field.Height {
		g.lives--
		if g.lives <= 0 {
			g.lives = 0
			g.machine.Lose()
			return
		}
		g.serve()
	}
}

// currentSpeed is the ball speed used for paddle deflection.
func (g *Game) currentSpeed() float64 {
	return g.difficulty.Speed(g.ballSpeed, g.board.Score, int(g.tick))
}

// nextLevel rebuilds the wall, speeds the ball up and serves again.
func (g *Game) nextLevel() {
	g.level++
	g.ballSpeed += g.cfg.Ball.SpeedPerLevel
	g.wall = NewWall(g.cfg.Bricks)
	g.serve()
	g.machine.Resume()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.board.Score,
		Best:  g.board.Best,
		Lives: g.lives,
		Level: g.level,
		Phase: g.machine.Phase(),
	}
}
