package invaders

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 2024}

var (
	normal = config.EnemyType{Name: "normal", Speed: 1, HP: 2, Score: 10}
	fast   = config.EnemyType{Name: "fast", Speed: 1.5, HP: 1, Score: 20}
	tank   = config.EnemyType{Name: "tank", Speed: 0.5, HP: 3, Score: 30}
)

// quietConfig is the stock configuration with enemy fire turned off.
func quietConfig() config.InvadersConfig {
	cfg := config.DefaultInvadersConfig()
	cfg.EnemyFire.BaseChance = 0
	cfg.EnemyFire.ChancePerWave = 0
	return cfg
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.ResetWith(testRuntime, quietConfig())
	return g
}

// started returns a running game.
func started(t *testing.T) *Game {
	t.Helper()
	g := newTestGame(t)
	g.Step(core.FrameOf(core.ActionConfirm))
	if !g.machine.Active() {
		t.Fatalf("Phase = %v, expected running", g.machine.Phase())
	}
	return g
}

func enemyAt(x, y float64, typ config.EnemyType) Enemy {
	return Enemy{Box: core.NewRectF(x, y, 40, 40), Type: typ, HP: float64(typ.HP), Speed: typ.Speed}
}

func playerShot(x, y float64) Bullet {
	return Bullet{Box: core.NewRectF(x, y, 6, 15), VY: -10, Damage: 1}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("invaders") {
		t.Error("invaders not registered")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t)
	st := g.State()

	if st.Phase != core.PhaseIdle {
		t.Errorf("Phase = %v, expected idle", st.Phase)
	}
	if st.Lives != 3 || st.Level != 1 || st.Score != 0 {
		t.Errorf("lives/wave/score = %d/%d/%d, expected 3/1/0", st.Lives, st.Level, st.Score)
	}
	if len(g.enemies) != 24 {
		t.Errorf("len(enemies) = %d, expected 24", len(g.enemies))
	}
	if g.player.Box.X != 375 || g.player.Box.Y != 500 {
		t.Errorf("player = (%v,%v), expected (375,500)", g.player.Box.X, g.player.Box.Y)
	}
	if g.armory.Current().Name != "basic" {
		t.Errorf("weapon = %q, expected basic", g.armory.Current().Name)
	}
}

func TestFormationRows(t *testing.T) {
	g := newTestGame(t)
	tests := []struct {
		wave, rows int
	}{
		{1, 3},
		{2, 4},
		{3, 4},
		{4, 5},
		{9, 5},
	}
	for _, tt := range tests {
		if got := g.FormationRows(tt.wave); got != tt.rows {
			t.Errorf("FormationRows(%d) = %d, expected %d", tt.wave, got, tt.rows)
		}
	}
}

func TestFormationLayout(t *testing.T) {
	g := newTestGame(t)
	first, last := g.enemies[0], g.enemies[len(g.enemies)-1]
	if first.Box.X != 50 || first.Box.Y != 50 {
		t.Errorf("first enemy at (%v,%v), expected (50,50)", first.Box.X, first.Box.Y)
	}
	if last.Box.X != 680 || last.Box.Y != 170 {
		t.Errorf("last enemy at (%v,%v), expected (680,170)", last.Box.X, last.Box.Y)
	}
	for i, e := range g.enemies {
		if e.HP != float64(e.Type.HP) {
			t.Errorf("enemy %d HP = %v, expected %d", i, e.HP, e.Type.HP)
		}
	}
}

func TestFormationReversesAtEdge(t *testing.T) {
	g := started(t)
	g.enemies = []Enemy{enemyAt(759.5, 100, normal)}
	g.dir = 1

	g.Step(core.NewInputFrame())

	e := g.enemies[0]
	if g.dir != -1 {
		t.Errorf("dir = %v, expected -1", g.dir)
	}
	if e.Box.X != 760.5 || e.Box.Y != 108 {
		t.Errorf("enemy at (%v,%v), expected (760.5,108)", e.Box.X, e.Box.Y)
	}

	g.Step(core.NewInputFrame())
	if g.dir != -1 {
		t.Errorf("dir flipped again to %v", g.dir)
	}
	if g.enemies[0].Box.Y != 108 {
		t.Errorf("enemy dropped again to y=%v", g.enemies[0].Box.Y)
	}
}

func TestFormationReachesPlayer(t *testing.T) {
	g := started(t)
	g.enemies = []Enemy{enemyAt(760, 460, normal)}
	g.dir = 1

	g.Step(core.NewInputFrame())

	if g.State().Phase != core.PhaseOver {
		t.Errorf("Phase = %v, expected over", g.State().Phase)
	}
}

func TestBulletHitsOneEnemy(t *testing.T) {
	g := started(t)
	g.enemies = []Enemy{enemyAt(300, 200, fast), enemyAt(300, 200, fast)}
	g.bullets = []Bullet{playerShot(315, 215)}

	res := g.Step(core.NewInputFrame())

	if len(g.enemies) != 1 {
		t.Errorf("len(enemies) = %d, expected 1", len(g.enemies))
	}
	if len(g.bullets) != 0 {
		t.Errorf("len(bullets) = %d, expected 0", len(g.bullets))
	}
	if res.Scored != 20 || g.board.Score != 20 {
		t.Errorf("Scored = %d, Score = %d, expected 20", res.Scored, g.board.Score)
	}
}

func TestTankTakesSeveralHits(t *testing.T) {
	g := started(t)
	g.enemies = []Enemy{enemyAt(300, 200, tank), enemyAt(600, 200, normal)}
	g.bullets = []Bullet{playerShot(315, 215)}

	g.Step(core.NewInputFrame())

	if len(g.enemies) != 2 {
		t.Fatalf("len(enemies) = %d, expected 2", len(g.enemies))
	}
	if g.enemies[0].HP != 2 {
		t.Errorf("tank HP = %v, expected 2", g.enemies[0].HP)
	}
	if g.board.Score != 0 {
		t.Errorf("Score = %d, expected 0", g.board.Score)
	}
}

func TestBulletsLeaveField(t *testing.T) {
	g := started(t)
	g.bullets = []Bullet{playerShot(100, -10), playerShot(200, 300)}

	g.Step(core.NewInputFrame())

	if len(g.bullets) != 1 {
		t.Fatalf("len(bullets) = %d, expected 1", len(g.bullets))
	}
	if g.bullets[0].Box.Y != 290 {
		t.Errorf("bullet y = %v, expected 290", g.bullets[0].Box.Y)
	}
}

func TestBeamDamage(t *testing.T) {
	g := started(t)
	g.enemies = []Enemy{enemyAt(300, 200, tank), enemyAt(600, 200, tank)}
	g.beams = []Beam{{X: 320, Width: beamWidth, Life: 30, Damage: 3}}

	g.Step(core.NewInputFrame())

	if hp := g.enemies[0].HP; math.Abs(hp-2.7) > 1e-9 {
		t.Errorf("hit tank HP = %v, expected 2.7", hp)
	}
	if hp := g.enemies[1].HP; hp != 3 {
		t.Errorf("missed tank HP = %v, expected 3", hp)
	}
	if g.beams[0].Life != 29 {
		t.Errorf("beam life = %d, expected 29", g.beams[0].Life)
	}
}

func TestBeamExpires(t *testing.T) {
	g := started(t)
	g.beams = []Beam{{X: 20, Width: beamWidth, Life: 2, Damage: 3}}

	g.Step(core.NewInputFrame())
	if len(g.beams) != 1 {
		t.Fatalf("len(beams) = %d after one tick, expected 1", len(g.beams))
	}
	g.Step(core.NewInputFrame())
	if len(g.beams) != 0 {
		t.Errorf("len(beams) = %d after two ticks, expected 0", len(g.beams))
	}
}

func TestWeaponUnlock(t *testing.T) {
	a := NewArmory(config.DefaultInvadersConfig().Weapons)
	tests := []struct {
		idx, score int
		expected   bool
	}{
		{0, 0, true},
		{1, 499, false},
		{1, 500, true},
		{2, 999, false},
		{2, 1000, true},
		{3, 1500, true},
		{4, 9999, false},
		{-1, 9999, false},
	}
	for _, tt := range tests {
		if got := a.Unlocked(tt.idx, tt.score); got != tt.expected {
			t.Errorf("Unlocked(%d, %d) = %v, expected %v", tt.idx, tt.score, got, tt.expected)
		}
	}
}

func TestWeaponCycle(t *testing.T) {
	a := NewArmory(config.DefaultInvadersConfig().Weapons)

	a.Cycle(1, 0)
	if got := a.Current().Name; got != "basic" {
		t.Errorf("Cycle at score 0 selected %q, expected basic", got)
	}
	a.Cycle(1, 600)
	if got := a.Current().Name; got != "double" {
		t.Errorf("Cycle(1, 600) selected %q, expected double", got)
	}
	a.Cycle(1, 600)
	if got := a.Current().Name; got != "basic" {
		t.Errorf("Cycle(1, 600) wrapped to %q, expected basic", got)
	}
	a.Cycle(-1, 2000)
	if got := a.Current().Name; got != "spread" {
		t.Errorf("Cycle(-1, 2000) selected %q, expected spread", got)
	}
}

func TestWeaponPatterns(t *testing.T) {
	weapons := config.DefaultInvadersConfig().Weapons
	bullet := config.DefaultInvadersConfig().PlayerBullet
	p := &Player{Box: core.NewRectF(375, 500, 50, 50), Speed: 6}

	tests := []struct {
		idx   int
		shots int
		beam  bool
		xs    []float64
	}{
		{0, 1, false, []float64{397}},
		{1, 2, false, []float64{387, 407}},
		{2, 0, true, nil},
		{3, 5, false, nil},
	}
	for _, tt := range tests {
		a := NewArmory(weapons)
		a.current = tt.idx
		shots, beam := a.fire(p, bullet, 60)
		if len(shots) != tt.shots {
			t.Errorf("%s: len(shots) = %d, expected %d", weapons[tt.idx].Name, len(shots), tt.shots)
		}
		if (beam != nil) != tt.beam {
			t.Errorf("%s: beam = %v, expected beam %v", weapons[tt.idx].Name, beam, tt.beam)
		}
		for i, x := range tt.xs {
			if shots[i].Box.X != x {
				t.Errorf("%s: shot %d x = %v, expected %v", weapons[tt.idx].Name, i, shots[i].Box.X, x)
			}
		}
		for i, s := range shots {
			if s.VY >= 0 {
				t.Errorf("%s: shot %d VY = %v, expected upward", weapons[tt.idx].Name, i, s.VY)
			}
			if s.Damage != weapons[tt.idx].Damage {
				t.Errorf("%s: shot %d damage = %v, expected %v", weapons[tt.idx].Name, i, s.Damage, weapons[tt.idx].Damage)
			}
		}
		if a.Ready() {
			t.Errorf("%s: Ready() right after firing", weapons[tt.idx].Name)
		}
	}
}

func TestSpreadIsSymmetric(t *testing.T) {
	a := NewArmory(config.DefaultInvadersConfig().Weapons)
	a.current = 3
	p := &Player{Box: core.NewRectF(375, 500, 50, 50)}
	shots, _ := a.fire(p, config.DefaultInvadersConfig().PlayerBullet, 60)

	if math.Abs(shots[2].VX) > 1e-9 {
		t.Errorf("middle shot VX = %v, expected 0", shots[2].VX)
	}
	if math.Abs(shots[0].VX+shots[4].VX) > 1e-9 {
		t.Errorf("outer shots VX = %v, %v, expected mirrored", shots[0].VX, shots[4].VX)
	}
}

func TestFireCooldown(t *testing.T) {
	g := started(t)

	g.Step(core.FrameOf(core.ActionFire))
	if len(g.bullets) != 1 {
		t.Fatalf("len(bullets) = %d, expected 1", len(g.bullets))
	}
	if y := g.bullets[0].Box.Y; y != 490 {
		t.Errorf("bullet y = %v, expected 490", y)
	}

	// basic fires every 300ms, 18 ticks at 60/s.
	for i := 0; i < 17; i++ {
		g.Step(core.FrameOf(core.ActionFire))
	}
	if len(g.bullets) != 1 {
		t.Errorf("len(bullets) = %d during cooldown, expected 1", len(g.bullets))
	}
	g.Step(core.FrameOf(core.ActionFire))
	if len(g.bullets) != 2 {
		t.Errorf("len(bullets) = %d after cooldown, expected 2", len(g.bullets))
	}
}

func TestPlayerClamped(t *testing.T) {
	g := started(t)
	for i := 0; i < 200; i++ {
		g.Step(core.FrameOf(core.ActionLeft))
	}
	if g.player.Box.X != 0 {
		t.Errorf("player x = %v, expected 0", g.player.Box.X)
	}
	for i := 0; i < 200; i++ {
		g.Step(core.FrameOf(core.ActionRight))
	}
	if g.player.Box.X != 750 {
		t.Errorf("player x = %v, expected 750", g.player.Box.X)
	}
}

func TestBombCostsLife(t *testing.T) {
	g := started(t)
	g.bombs = []Bullet{{Box: core.NewRectF(395, 490, 8, 8), VY: 3}}

	g.Step(core.NewInputFrame())

	if g.lives != 2 {
		t.Errorf("lives = %d, expected 2", g.lives)
	}
	if len(g.bombs) != 0 {
		t.Errorf("len(bombs) = %d, expected 0", len(g.bombs))
	}
	if g.State().Phase != core.PhaseRunning {
		t.Errorf("Phase = %v, expected running", g.State().Phase)
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	g := started(t)
	g.lives = 1
	g.bombs = []Bullet{{Box: core.NewRectF(395, 490, 8, 8), VY: 3}}

	g.Step(core.NewInputFrame())

	st := g.State()
	if st.Phase != core.PhaseOver || st.Lives != 0 {
		t.Errorf("phase/lives = %v/%d, expected over/0", st.Phase, st.Lives)
	}
}

func TestBossAlert(t *testing.T) {
	g := started(t)
	g.wave = 5
	g.startWave()

	if !g.IsBossWave(5) || g.IsBossWave(4) {
		t.Error("IsBossWave should hold for wave 5 only")
	}
	if len(g.enemies) != 0 || g.alert != 180 {
		t.Fatalf("enemies/alert = %d/%d, expected 0/180", len(g.enemies), g.alert)
	}
	snap := g.Snapshot()
	if snap.Count(core.KindBanner) != 1 || !strings.HasPrefix(snap.Message, "BOSS INCOMING") {
		t.Errorf("alert snapshot: banners=%d message=%q", snap.Count(core.KindBanner), snap.Message)
	}

	for i := 0; i < 179; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.boss != nil {
		t.Fatal("boss spawned before the alert ended")
	}
	g.Step(core.NewInputFrame())
	if g.boss == nil {
		t.Fatal("boss not spawned after the alert")
	}
	if g.boss.HP != 100 || g.boss.Phase != 1 {
		t.Errorf("boss hp/phase = %v/%d, expected 100/1", g.boss.HP, g.boss.Phase)
	}
	if g.State().Phase != core.PhaseRunning {
		t.Errorf("Phase = %v, expected running", g.State().Phase)
	}
}

func TestBossPhases(t *testing.T) {
	cfg := config.DefaultInvadersConfig().Boss
	b := newBoss(cfg, 5)
	target := core.NewRectF(375, 500, 50, 50)

	if n := len(b.attack(target)); n != 1 {
		t.Errorf("phase 1 shots = %d, expected 1", n)
	}

	b.HP = 60
	b.updatePhase(cfg.PhaseAt)
	if b.Phase != 2 {
		t.Errorf("Phase at 60%% = %d, expected 2", b.Phase)
	}
	if n := len(b.attack(target)); n != 3 {
		t.Errorf("phase 2 shots = %d, expected 3", n)
	}

	b.HP = 100
	b.updatePhase(cfg.PhaseAt)
	if b.Phase != 2 {
		t.Errorf("Phase went back to %d", b.Phase)
	}

	b.HP = 30
	b.updatePhase(cfg.PhaseAt)
	if b.Phase != 3 {
		t.Errorf("Phase at 30%% = %d, expected 3", b.Phase)
	}
	shots := b.attack(target)
	if len(shots) != 6 {
		t.Fatalf("phase 3 shots = %d, expected 6", len(shots))
	}
	if shots[0].VY <= 0 {
		t.Errorf("aimed shot VY = %v, expected toward the player", shots[0].VY)
	}

	if got := attackInterval(cfg, 3); got != 500 {
		t.Errorf("attackInterval(3) = %d, expected 500", got)
	}
}

func TestBossBounces(t *testing.T) {
	b := newBoss(config.DefaultInvadersConfig().Boss, 5)
	b.Box.X = 679
	b.move(800)
	if b.VX >= 0 {
		t.Errorf("VX = %v at the right wall, expected negative", b.VX)
	}
	b.Box.X = 1
	b.move(800)
	if b.VX <= 0 {
		t.Errorf("VX = %v at the left wall, expected positive", b.VX)
	}
}

func TestBossRewardAndNextWave(t *testing.T) {
	g := started(t)
	g.wave = 5
	g.startWave()
	g.alert = 0
	g.boss = newBoss(g.cfg.Boss, 5)
	g.boss.HP = 1
	g.bullets = []Bullet{playerShot(395, 100)}

	res := g.Step(core.NewInputFrame())

	if g.boss != nil {
		t.Fatal("boss should be destroyed")
	}
	if res.Scored != 1000 {
		t.Errorf("Scored = %d, expected 1000", res.Scored)
	}
	if g.State().Phase != core.PhaseWon {
		t.Fatalf("Phase = %v, expected won", g.State().Phase)
	}

	g.Step(core.FrameOf(core.ActionFire))
	st := g.State()
	if st.Phase != core.PhaseRunning || st.Level != 6 {
		t.Errorf("phase/wave = %v/%d, expected running/6", st.Phase, st.Level)
	}
	if len(g.enemies) != 5*8 {
		t.Errorf("len(enemies) = %d, expected 40", len(g.enemies))
	}
}

func TestBossLaserKill(t *testing.T) {
	g := started(t)
	g.wave = 5
	g.startWave()
	g.alert = 0
	g.boss = newBoss(g.cfg.Boss, 5)
	g.boss.HP = 0.2
	g.beams = []Beam{{X: 400, Width: beamWidth, Life: 30, Damage: 3}}

	g.Step(core.NewInputFrame())

	if g.boss != nil {
		t.Error("boss should die to beam damage")
	}
	if g.board.Score != 1000 {
		t.Errorf("Score = %d, expected 1000", g.board.Score)
	}
}

func TestWaveCleared(t *testing.T) {
	g := started(t)
	g.enemies = []Enemy{enemyAt(300, 200, fast)}
	g.bullets = []Bullet{playerShot(315, 215)}

	g.Step(core.NewInputFrame())
	if g.State().Phase != core.PhaseWon {
		t.Fatalf("Phase = %v, expected won", g.State().Phase)
	}

	// Won ignores movement until the next wave is confirmed.
	x := g.player.Box.X
	g.Step(core.FrameOf(core.ActionLeft))
	if g.player.Box.X != x {
		t.Errorf("player moved while won")
	}

	g.Step(core.FrameOf(core.ActionConfirm))
	st := g.State()
	if st.Phase != core.PhaseRunning || st.Level != 2 {
		t.Errorf("phase/wave = %v/%d, expected running/2", st.Phase, st.Level)
	}
	if len(g.enemies) != 32 {
		t.Errorf("len(enemies) = %d, expected 32", len(g.enemies))
	}
	if g.board.Score != 20 {
		t.Errorf("Score = %d, expected 20 carried into wave 2", g.board.Score)
	}
}

func TestGamePause(t *testing.T) {
	g := started(t)
	g.Step(core.FrameOf(core.ActionPause))
	if g.State().Phase != core.PhasePaused {
		t.Fatalf("Phase = %v, expected paused", g.State().Phase)
	}

	before := g.Snapshot().Hash()
	for i := 0; i < 30; i++ {
		g.Step(core.FrameOf(core.ActionLeft, core.ActionFire))
	}
	if after := g.Snapshot().Hash(); after != before {
		t.Error("state changed while paused")
	}

	g.Step(core.FrameOf(core.ActionPause))
	if g.State().Phase != core.PhaseRunning {
		t.Errorf("Phase = %v, expected running", g.State().Phase)
	}
}

func TestRestart(t *testing.T) {
	g := started(t)
	g.enemies = []Enemy{enemyAt(300, 200, fast), enemyAt(600, 200, tank)}
	g.bullets = []Bullet{playerShot(315, 215)}
	g.Step(core.NewInputFrame())
	g.lives = 1
	if !g.machine.Lose() {
		t.Fatal("Lose() should succeed while running")
	}

	g.Step(core.FrameOf(core.ActionRestart))

	st := g.State()
	if st.Phase != core.PhaseIdle {
		t.Errorf("Phase = %v, expected idle", st.Phase)
	}
	if st.Score != 0 || st.Lives != 3 || st.Level != 1 {
		t.Errorf("score/lives/wave = %d/%d/%d, expected 0/3/1", st.Score, st.Lives, st.Level)
	}
	if st.Best != 20 {
		t.Errorf("Best = %d, expected 20", st.Best)
	}
	if len(g.enemies) != 24 || len(g.bullets) != 0 {
		t.Errorf("enemies/bullets = %d/%d, expected 24/0", len(g.enemies), len(g.bullets))
	}
}

func TestGameDeterminism(t *testing.T) {
	script := []core.Action{core.ActionLeft, core.ActionFire, core.ActionRight, core.ActionFire, core.ActionUp}
	run := func() uint64 {
		g := New()
		g.ResetWith(testRuntime, config.DefaultInvadersConfig())
		g.Step(core.FrameOf(core.ActionConfirm))
		for i := 0; i < 600; i++ {
			g.Step(core.FrameOf(script[(i/20)%len(script)]))
		}
		return g.Snapshot().Hash()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("Hash mismatch: %x != %x", a, b)
	}
}

func TestSnapshot(t *testing.T) {
	g := started(t)
	g.Step(core.FrameOf(core.ActionFire))
	snap := g.Snapshot()

	if snap.GameID != "invaders" {
		t.Errorf("GameID = %q, expected invaders", snap.GameID)
	}
	if snap.Width != 800 || snap.Height != 600 {
		t.Errorf("size = %vx%v, expected 800x600", snap.Width, snap.Height)
	}
	counts := map[core.EntityKind]int{
		core.KindPlayer: 1,
		core.KindEnemy:  24,
		core.KindBullet: 1,
		core.KindBoss:   0,
	}
	for kind, n := range counts {
		if got := snap.Count(kind); got != n {
			t.Errorf("Count(%s) = %d, expected %d", kind, got, n)
		}
	}
	if snap.Level != 1 || snap.Lives != 3 {
		t.Errorf("level/lives = %d/%d, expected 1/3", snap.Level, snap.Lives)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Space Invaders") {
		t.Error("render missing title")
	}

	g.Step(core.FrameOf(core.ActionConfirm))
	g.Render(screen)
	if !strings.Contains(screen.String(), "▲") {
		t.Error("render missing player ship")
	}

	small := core.NewScreen(20, 8)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("small screen should show the size warning")
	}
}
