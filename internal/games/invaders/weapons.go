package invaders

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Spread shots are smaller and slower than regular bullets.
const (
	spreadW     = 5
	spreadH     = 12
	spreadSpeed = 9
	spreadStep  = 0.2 // radians between spread bullets

	doubleInset = 15 // distance of each double-shot barrel from the ship edge
	beamWidth   = 10
	beamHitRate = 0.10 // share of weapon damage a beam deals per tick to enemies
	beamBossHit = 0.15 // and to the boss
)

// Armory tracks the weapons and which one is selected.
type Armory struct {
	weapons  []config.WeaponConfig
	current  int
	cooldown int // ticks until the next shot
}

// NewArmory starts with the first weapon selected.
func NewArmory(weapons []config.WeaponConfig) Armory {
	return Armory{weapons: weapons}
}

// Current returns the selected weapon.
func (a *Armory) Current() config.WeaponConfig {
	if len(a.weapons) == 0 {
		return config.WeaponConfig{Name: "none"}
	}
	return a.weapons[a.current]
}

// Unlocked reports whether weapon i is available at the given score.
func (a *Armory) Unlocked(i, score int) bool {
	return i >= 0 && i < len(a.weapons) && score >= a.weapons[i].Unlock
}

// Cycle selects the next unlocked weapon in direction step (+1 or -1).
// The basic weapon is always unlocked, so the search terminates.
func (a *Armory) Cycle(step, score int) {
	n := len(a.weapons)
	if n == 0 {
		return
	}
	for i := 1; i <= n; i++ {
		j := ((a.current+step*i)%n + n) % n
		if a.Unlocked(j, score) {
			a.current = j
			return
		}
	}
}

// tick counts down the cooldown.
func (a *Armory) tick() {
	if a.cooldown > 0 {
		a.cooldown--
	}
}

// Ready reports whether the selected weapon can fire.
func (a *Armory) Ready() bool {
	return a.cooldown == 0 && len(a.weapons) > 0
}

// fire produces the shots of the selected weapon from the player's ship and
// starts the cooldown. A weapon with beam ticks produces a beam instead of
// bullets.
func (a *Armory) fire(p *Player, bullet config.BulletConfig, tickRate int) ([]Bullet, *Beam) {
	w := a.Current()
	a.cooldown = core.TicksFor(msDuration(w.CooldownMs), tickRate)

	cx := p.CenterX()
	up := -math.Pi / 2

	if w.BeamTicks > 0 {
		return nil, &Beam{X: cx, Width: beamWidth, Life: w.BeamTicks, Damage: w.Damage}
	}

	var shots []Bullet
	switch {
	case w.Shots == 2:
		for _, x := range []float64{p.Box.X + doubleInset, p.Box.Right() - doubleInset} {
			shots = append(shots, newBullet(x, p.Box.Y, bullet.Width, bullet.Height, bullet.Speed, up))
		}
	case w.Shots > 2:
		half := w.Shots / 2
		for i := -half; i <= half; i++ {
			// Spread angles are measured off vertical.
			angle := up + float64(i)*spreadStep
			shots = append(shots, newBullet(cx, p.Box.Y, spreadW, spreadH, spreadSpeed, angle))
		}
	default:
		shots = append(shots, newBullet(cx, p.Box.Y, bullet.Width, bullet.Height, bullet.Speed, up))
	}
	for i := range shots {
		shots[i].Damage = w.Damage
	}
	return shots, nil
}
