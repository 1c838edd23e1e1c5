package motion

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Body is the kinematic state of the player. Step is its only writer during a
// tick; everything else reads.
type Body struct {
	Pos  dmath.Vec2 // top-left corner, px
	Size dmath.Vec2 // width, height, px
	Vel  dmath.Vec2 // px/s

	State          State
	Wall           WallSide
	RemainingJumps int

	// Countdown windows, seconds. Decremented by dt each tick, so they only
	// run while gameplay runs and pausing never consumes them.
	coyoteLeft float64
	bufferLeft float64
	lockLeft   float64

	// Jumps performed since last grounded, exponent for multijump decay.
	jumpsSinceGround int
}

// NewBody places a body at (x, y) with the given extent. It starts airborne
// with a full set of jump charges and settles onto whatever is below on the
// first tick.
func NewBody(x, y, w, h float64, cfg *Config) Body {
	return Body{
		Pos:            dmath.Vec2{X: x, Y: y},
		Size:           dmath.Vec2{X: w, Y: h},
		State:          StateAirborne,
		Wall:           WallNone,
		RemainingJumps: cfg.MaxJumps,
	}
}

// Box returns the body's collision box.
func (b *Body) Box() AABB {
	return AABB{X: b.Pos.X, Y: b.Pos.Y, W: b.Size.X, H: b.Size.Y}
}

// Teleport moves the body to (x, y) with velocity and contact state cleared,
// as used by respawn.
func (b *Body) Teleport(x, y float64, cfg *Config) {
	b.Pos = dmath.Vec2{X: x, Y: y}
	b.Vel = dmath.Vec2{}
	b.State = StateAirborne
	b.Wall = WallNone
	b.RemainingJumps = cfg.MaxJumps
	b.coyoteLeft = 0
	b.bufferLeft = 0
	b.lockLeft = 0
	b.jumpsSinceGround = 0
}

// ControlLocked reports whether horizontal input is currently ignored
// (the window after a wall jump).
func (b *Body) ControlLocked() bool { return b.lockLeft > 0 }

// JumpBuffered reports whether a jump press is waiting to execute.
func (b *Body) JumpBuffered() bool { return b.bufferLeft > 0 }

// CoyoteActive reports whether a jump would still count as grounded.
func (b *Body) CoyoteActive() bool { return b.coyoteLeft > 0 }
