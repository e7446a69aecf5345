package invaders

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Boss attack patterns per phase.
const (
	bossShotSize   = 10
	bossShotSpeed  = 5
	bossFanSize    = 8
	bossFanSpeed   = 5
	bossFanStep    = 0.4
	bossHomingSize = 12
	bossHomingSpd  = 4
	bossHomingRate = 0.7 // share of speed a homing shot travels at
	bossRainSize   = 6
	bossRainSpeed  = 6
	bossRainStep   = 0.3
)

// Boss is the large enemy of every boss wave.
type Boss struct {
	Box      core.RectF
	VX       float64
	HP       float64
	MaxHP    float64
	Phase    int // 1..3
	cooldown int // ticks until the next attack
}

// Bounds returns the boss's box.
func (b *Boss) Bounds() core.RectF {
	return b.Box
}

// newBoss spawns a boss scaled to the wave.
func newBoss(cfg config.InvadersBoss, wave int) *Boss {
	hp := float64(cfg.BaseHP + cfg.HPPerWave*wave)
	return &Boss{
		Box:   core.NewRectF(cfg.X, cfg.Y, cfg.Width, cfg.Height),
		VX:    cfg.Speed,
		HP:    hp,
		MaxHP: hp,
		Phase: 1,
	}
}

// move slides the boss and bounces it off the side walls.
func (b *Boss) move(fieldW float64) {
	b.Box.X += b.VX
	if b.Box.X < 0 {
		b.VX = math.Abs(b.VX)
	} else if b.Box.Right() > fieldW {
		b.VX = -math.Abs(b.VX)
	}
}

// updatePhase advances the phase as hp drops past the thresholds.
// Phases never go back.
func (b *Boss) updatePhase(thresholds []float64) {
	frac := b.HP / b.MaxHP
	for i, at := range thresholds {
		if frac <= at && b.Phase < i+2 {
			b.Phase = i + 2
		}
	}
}

// attack returns the bullets for the current phase. Homing shots aim at
// target when fired and then fly straight.
func (b *Boss) attack(target core.RectF) []Bullet {
	cx := b.Box.X + b.Box.W/2
	y := b.Box.Bottom()
	down := math.Pi / 2

	var out []Bullet
	switch b.Phase {
	case 1:
		out = append(out, newBullet(cx, y, bossShotSize, bossShotSize, bossShotSpeed, down))
	case 2:
		for i := -1; i <= 1; i++ {
			out = append(out, newBullet(cx, y, bossFanSize, bossFanSize, bossFanSpeed, down+float64(i)*bossFanStep))
		}
	default:
		tx, ty := target.X+target.W/2, target.Y+target.H/2
		aim := math.Atan2(ty-y, tx-cx)
		out = append(out, newBullet(cx, y, bossHomingSize, bossHomingSize, bossHomingSpd*bossHomingRate, aim))
		for i := -2; i <= 2; i++ {
			out = append(out, newBullet(cx, y, bossRainSize, bossRainSize, bossRainSpeed, down+float64(i)*bossRainStep))
		}
	}
	return out
}

// attackInterval returns the configured interval for the current phase.
func attackInterval(cfg config.InvadersBoss, phase int) int {
	if len(cfg.AttackMs) == 0 {
		return 1000
	}
	return cfg.AttackMs[min(phase-1, len(cfg.AttackMs)-1)]
}
