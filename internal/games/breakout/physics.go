package breakout

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Ball is a circle in field pixels; collision uses its bounding box.
type Ball struct {
	X, Y   float64 // centre
	VX, VY float64 // pixels per tick
	Radius float64
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.RectF {
	return core.CenteredRectF(b.X, b.Y, b.Radius*2, b.Radius*2)
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// Launch sets the velocity from an angle off vertical, in radians.
// Zero points straight up.
func (b *Ball) Launch(speed, angle float64) {
	b.VX = speed * math.Sin(angle)
	b.VY = -speed * math.Cos(angle)
}

// reflectWalls bounces the ball off the left, right and top walls.
// Velocity is pointed away from the wall rather than negated, so a ball
// that overshoots cannot stick inside it.
func (b *Ball) reflectWalls(width float64) {
	if b.X-b.Radius < 0 {
		b.VX = math.Abs(b.VX)
	} else if b.X+b.Radius > width {
		b.VX = -math.Abs(b.VX)
	}
	if b.Y-b.Radius < 0 {
		b.VY = math.Abs(b.VY)
	}
}

// Paddle is the player's bat.
type Paddle struct {
	X, Y  float64 // top-left
	W, H  float64
	Speed float64
}

// Bounds returns the paddle's box.
func (p *Paddle) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// CenterX returns the paddle's horizontal centre.
func (p *Paddle) CenterX() float64 {
	return p.X + p.W/2
}

// Nudge moves the paddle by dir*Speed and keeps it inside the field.
func (p *Paddle) Nudge(dir, fieldW float64) {
	p.X = core.ClampF(p.X+dir*p.Speed, 0, fieldW-p.W)
}

// HitPos returns where x falls along the paddle, -1 at the left edge,
// 1 at the right edge.
func (p *Paddle) HitPos(x float64) float64 {
	return core.ClampF((x-p.CenterX())/(p.W/2), -1, 1)
}

// Brick is one destructible block.
type Brick struct {
	Box   core.RectF
	Row   int
	Alive bool
}

// Bounds returns the brick's box.
func (b *Brick) Bounds() core.RectF {
	return b.Box
}
