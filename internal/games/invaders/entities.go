// Package invaders implements Space Invaders with waves, a boss and
// unlockable weapons, simulated in field pixels.
package invaders

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Player is the ship at the bottom of the field.
type Player struct {
	Box   core.RectF
	Speed float64
}

// Bounds returns the ship's box.
func (p *Player) Bounds() core.RectF {
	return p.Box
}

// CenterX returns the horizontal centre of the ship.
func (p *Player) CenterX() float64 {
	return p.Box.X + p.Box.W/2
}

// Enemy is one member of the formation.
type Enemy struct {
	Box   core.RectF
	Type  config.EnemyType
	HP    float64
	Speed float64
}

// Bounds returns the enemy's box.
func (e *Enemy) Bounds() core.RectF {
	return e.Box
}

// Bullet is any moving projectile, the player's or an enemy's.
type Bullet struct {
	Box    core.RectF
	VX, VY float64
	Damage float64
}

// Bounds returns the bullet's box.
func (b *Bullet) Bounds() core.RectF {
	return b.Box
}

// Move advances the bullet by its velocity.
func (b *Bullet) Move() {
	b.Box.X += b.VX
	b.Box.Y += b.VY
}

// newBullet centres a w x h bullet on (cx, y) moving at speed along angle,
// measured from the positive x axis with y pointing down.
func newBullet(cx, y, w, h, speed, angle float64) Bullet {
	return Bullet{
		Box: core.NewRectF(cx-w/2, y, w, h),
		VX:  math.Cos(angle) * speed,
		VY:  math.Sin(angle) * speed,
	}
}

// inField reports whether the bullet is still inside the field, with a
// small margin so bullets leave the screen before they are dropped.
func (b *Bullet) inField(w, h float64) bool {
	const margin = 10
	r := b.Box
	return r.Bottom() > -margin && r.Y < h && r.Right() > -margin && r.X < w+margin
}

// Beam is a laser column that lasts several ticks.
type Beam struct {
	X      float64 // centre column
	Width  float64
	Life   int
	Damage float64
}

// Bounds returns the beam's box across the full field height.
func (b *Beam) Bounds(fieldH float64) core.RectF {
	return core.NewRectF(b.X-b.Width/2, 0, b.Width, fieldH)
}

// beamReach is the extra horizontal tolerance of a beam against enemies.
const beamReach = 4

// hitsEnemy reports whether the beam column passes through the enemy.
func (b *Beam) hitsEnemy(e *Enemy) bool {
	return b.X >= e.Box.X-beamReach && b.X <= e.Box.Right()+beamReach
}
