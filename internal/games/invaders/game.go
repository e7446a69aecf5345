package invaders

import (
	"math"
	"math/rand"
	"slices"
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
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}

func msDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Game implements Space Invaders.
type Game struct {
	cfg        config.InvadersConfig
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	machine core.Machine
	board   core.Scoreboard
	tick    uint64

	player  Player
	enemies []Enemy
	dir     float64 // formation direction, +1 right, -1 left
	bullets []Bullet
	bombs   []Bullet // enemy and boss projectiles
	beams   []Beam
	boss    *Boss
	alert   int // ticks left before the boss appears
	armory  Armory

	lives int
	wave  int
}

// New creates a new Space Invaders game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadInvaders(configPath, difficultyPreset)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	g.ResetWith(rt, cfg)
}

// ResetWith initializes the game from an explicit configuration.
func (g *Game) ResetWith(rt core.RuntimeConfig, cfg config.InvadersConfig) {
	g.cfg = cfg
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.machine.Restart()
	g.board.Reset(rt.Best)
	g.tick = 0
	g.lives = cfg.Player.Lives
	g.wave = 1
	g.armory = NewArmory(cfg.Weapons)

	pc := cfg.Player
	g.player = Player{
		Box:   core.NewRectF((cfg.Field.Width-pc.Width)/2, pc.Y, pc.Width, pc.Height),
		Speed: pc.Speed,
	}
	g.startWave()
}

// IsBossWave reports whether wave n is a boss wave.
func (g *Game) IsBossWave(n int) bool {
	return g.cfg.Boss.Every > 0 && n%g.cfg.Boss.Every == 0
}

// startWave clears projectiles and either spawns the formation or starts
// the boss alert.
func (g *Game) startWave() {
	g.bullets = nil
	g.bombs = nil
	g.beams = nil
	g.boss = nil
	g.enemies = nil
	g.alert = 0
	g.dir = 1

	if g.IsBossWave(g.wave) {
		g.alert = core.TicksFor(msDuration(g.cfg.Boss.AlertMs), g.runtime.TickRateOrDefault())
		return
	}
	g.spawnFormation()
}

// FormationRows returns how many enemy rows wave n gets.
func (g *Game) FormationRows(n int) int {
	f := g.cfg.Formation
	return min(f.BaseRows+n/2, f.MaxRows)
}

// spawnFormation lays out the enemy grid with randomly drawn types.
func (g *Game) spawnFormation() {
	f := g.cfg.Formation
	if len(g.cfg.Enemies) == 0 {
		return
	}
	rows := g.FormationRows(g.wave)
	g.enemies = make([]Enemy, 0, rows*f.Cols)
	for row := range rows {
		for col := range f.Cols {
			t := g.cfg.Enemies[g.rng.Intn(len(g.cfg.Enemies))]
			g.enemies = append(g.enemies, Enemy{
				Box:   core.NewRectF(f.OriginX+float64(col)*f.StepX, f.OriginY+float64(row)*f.StepY, f.Size, f.Size),
				Type:  t,
				HP:    float64(t.HP),
				Speed: t.Speed,
			})
		}
	}
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.ResetWith(g.runtime, g.cfg)
		return core.StepResult{State: g.State()}
	}

	if g.machine.Is(core.PhaseWon) && (in.Has(core.ActionFire) || in.Has(core.ActionConfirm)) {
		g.nextWave()
		return core.StepResult{State: g.State()}
	}

	scoreBefore := g.board.Score
	if !g.machine.HandleCommon(in, core.ActionFire) {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	g.stepPlayer(in)
	g.moveBullets()
	if g.moveBombs() {
		return core.StepResult{State: g.State(), Scored: g.board.Score - scoreBefore}
	}

	switch {
	case g.alert > 0:
		g.alert--
		if g.alert == 0 {
			g.boss = newBoss(g.cfg.Boss, g.wave)
		}
	case g.boss != nil:
		g.updateBoss()
	default:
		g.updateEnemies()
	}
	g.ageBeams()

	if g.machine.Active() && g.boss == nil && g.alert == 0 && len(g.enemies) == 0 {
		g.machine.Win()
	}
	return core.StepResult{State: g.State(), Scored: g.board.Score - scoreBefore}
}

// stepPlayer moves the ship, switches weapons and fires.
func (g *Game) stepPlayer(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		g.player.Box.X -= g.player.Speed
	case in.Has(core.ActionRight):
		g.player.Box.X += g.player.Speed
	}
	g.player.Box.X = core.ClampF(g.player.Box.X, 0, g.cfg.Field.Width-g.player.Box.W)

	switch {
	case in.Has(core.ActionUp):
		g.armory.Cycle(1, g.board.Score)
	case in.Has(core.ActionDown):
		g.armory.Cycle(-1, g.board.Score)
	}

	g.armory.tick()
	if in.Has(core.ActionFire) && g.armory.Ready() {
		shots, beam := g.armory.fire(&g.player, g.cfg.PlayerBullet, g.runtime.TickRateOrDefault())
		g.bullets = append(g.bullets, shots...)
		if beam != nil {
			g.beams = append(g.beams, *beam)
		}
	}
}

// moveBullets advances player bullets and drops those off the field.
func (g *Game) moveBullets() {
	w, h := g.cfg.Field.Width, g.cfg.Field.Height
	for i := range g.bullets {
		g.bullets[i].Move()
	}
	g.bullets = slices.DeleteFunc(g.bullets, func(b Bullet) bool {
		return b.Box.Bottom() < 0 || !b.inField(w, h)
	})
}

// moveBombs advances enemy projectiles and resolves hits on the player.
// It reports whether the player ran out of lives.
func (g *Game) moveBombs() bool {
	w, h := g.cfg.Field.Width, g.cfg.Field.Height
	kept := g.bombs[:0]
	for _, b := range g.bombs {
		b.Move()
		if core.Collides(&b, &g.player) {
			g.lives--
			if g.lives <= 0 {
				g.lives = 0
				g.machine.Lose()
				g.bombs = nil
				return true
			}
			continue
		}
		if b.inField(w, h) {
			kept = append(kept, b)
		}
	}
	g.bombs = kept
	return false
}

// ageBeams counts down laser lifetimes.
func (g *Game) ageBeams() {
	g.beams = slices.DeleteFunc(g.beams, func(b Beam) bool {
		return b.Life <= 1
	})
	for i := range g.beams {
		g.beams[i].Life--
	}
}

// updateEnemies moves the formation, lets it shoot and resolves hits.
func (g *Game) updateEnemies() {
	w := g.cfg.Field.Width
	factor := g.difficulty.Factor(g.board.Score, int(g.tick))
	fire := g.cfg.EnemyFire
	chance := fire.BaseChance + float64(g.wave)*fire.ChancePerWave
	bombSpeed := fire.Speed + float64(g.wave)*fire.SpeedPerWave

	edge := false
	for i := range g.enemies {
		e := &g.enemies[i]
		e.Box.X += e.Speed * factor * g.dir
		if (g.dir > 0 && e.Box.Right() >= w) || (g.dir < 0 && e.Box.X <= 0) {
			edge = true
		}
		if g.rng.Float64() < chance {
			g.bombs = append(g.bombs, newBullet(e.Box.X+e.Box.W/2, e.Box.Bottom(), fire.Size, fire.Size, bombSpeed, math.Pi/2))
		}
	}

	if edge {
		g.dir = -g.dir
		for i := range g.enemies {
			e := &g.enemies[i]
			e.Box.Y += g.cfg.Formation.Drop
			if e.Box.Bottom() >= g.player.Box.Y {
				g.machine.Lose()
				return
			}
		}
	}

	g.hitEnemies()
}

// hitEnemies applies beams and bullets to the formation and removes the
// destroyed enemies, scoring each one. A bullet damages at most one enemy.
func (g *Game) hitEnemies() {
	for _, beam := range g.beams {
		for i := range g.enemies {
			if beam.hitsEnemy(&g.enemies[i]) {
				g.enemies[i].HP -= beam.Damage * beamHitRate
			}
		}
	}

	g.bullets = slices.DeleteFunc(g.bullets, func(b Bullet) bool {
		for i := len(g.enemies) - 1; i >= 0; i-- {
			e := &g.enemies[i]
			if e.HP > 0 && core.Collides(&b, e) {
				e.HP -= b.Damage
				return true
			}
		}
		return false
	})

	g.enemies = slices.DeleteFunc(g.enemies, func(e Enemy) bool {
		if e.HP > 0 {
			return false
		}
		g.board.Add(e.Type.Score)
		return true
	})
}

// updateBoss moves the boss, runs its attacks and resolves hits.
func (g *Game) updateBoss() {
	b := g.boss
	b.move(g.cfg.Field.Width)

	b.cooldown--
	if b.cooldown <= 0 {
		g.bombs = append(g.bombs, b.attack(g.player.Box)...)
		b.cooldown = core.TicksFor(msDuration(attackInterval(g.cfg.Boss, b.Phase)), g.runtime.TickRateOrDefault())
	}
	b.updatePhase(g.cfg.Boss.PhaseAt)

	for _, beam := range g.beams {
		if beam.X >= b.Box.X && beam.X <= b.Box.Right() {
			b.HP -= beam.Damage * beamBossHit
		}
	}
	g.bullets = slices.DeleteFunc(g.bullets, func(bl Bullet) bool {
		if core.Collides(&bl, b) {
			b.HP -= bl.Damage
			return true
		}
		return false
	})

	if b.HP <= 0 {
		g.board.Add(g.cfg.Boss.Reward)
		g.boss = nil
	}
}

// nextWave advances to the next wave after a win.
func (g *Game) nextWave() {
	g.wave++
	g.startWave()
	g.machine.Resume()
}

// Wave returns the current wave number.
func (g *Game) Wave() int {
	return g.wave
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.board.Score,
		Best:  g.board.Best,
		Lives: g.lives,
		Level: g.wave,
		Phase: g.machine.Phase(),
	}
}
