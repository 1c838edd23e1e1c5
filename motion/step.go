package motion

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Intent is the per-tick input to the controller, produced by the action
// mapping layer from whatever devices are bound.
type Intent struct {
	MoveAxis    float64 // -1..1, left negative
	JumpPressed bool    // pressed this tick
	JumpHeld    bool
}

// Step advances the body by one fixed tick of dt seconds. The phases run in a
// fixed order: horizontal intent, horizontal sweep, gravity, jump resolution,
// early-release damping, vertical sweep, wall-contact maintenance. Identical
// (body, intent, geometry, config) always produce identical results.
func (b *Body) Step(col Collider, in Intent, cfg *Config, dt float64) {
	b.coyoteLeft = math.Max(b.coyoteLeft-dt, 0)
	b.bufferLeft = math.Max(b.bufferLeft-dt, 0)
	b.lockLeft = math.Max(b.lockLeft-dt, 0)

	if in.JumpPressed {
		b.bufferLeft = cfg.JumpBufferTime
	}

	axis := in.MoveAxis
	if b.lockLeft > 0 {
		axis = 0
	}

	// Horizontal intent. Steering away from the wall lets go of the slide.
	if b.State == StateSliding && axisOpposesWall(axis, b.Wall) {
		b.State = StateAirborne
		b.Wall = WallNone
	}
	b.Vel.X = Approach(b.Vel.X, axis*cfg.MoveSpeed, b.horizontalAccel(axis, cfg)*dt)

	// Horizontal sweep.
	moved, hit := col.Sweep(b.Box(), dmath.Vec2{X: b.Vel.X * dt})
	b.Pos.X += moved.X
	if hit.Has(ContactLeft) || hit.Has(ContactRight) {
		b.Vel.X = 0
		if b.State != StateGrounded && cfg.WallSlidingEnabled {
			side := WallRight
			if hit.Has(ContactLeft) {
				side = WallLeft
			}
			b.engageWall(side, cfg)
		}
	}

	// Gravity. Ascending with jump held falls under the weaker jump gravity.
	g := cfg.Gravity
	if in.JumpHeld && b.Vel.Y < 0 {
		g = cfg.JumpGravity
	}
	b.Vel.Y = Clamp(b.Vel.Y+g*dt, -cfg.TerminalVelocity, cfg.TerminalVelocity)
	if b.State == StateSliding && b.Vel.Y > cfg.WallSlideSpeedCap {
		b.Vel.Y = cfg.WallSlideSpeedCap
	}

	// Jump resolution. Unexecutable attempts stay buffered until the window
	// lapses.
	if b.bufferLeft > 0 {
		b.tryJump(cfg)
	}

	// Early release shortens the jump.
	if !in.JumpHeld && b.Vel.Y < 0 {
		b.Vel.Y *= cfg.JumpCutFactor
	}

	// Vertical sweep.
	moved, hit = col.Sweep(b.Box(), dmath.Vec2{Y: b.Vel.Y * dt})
	b.Pos.Y += moved.Y
	if hit.Has(ContactBottom) {
		b.land(cfg)
	} else {
		if hit.Has(ContactTop) {
			b.Vel.Y = 0
		}
		if b.State == StateGrounded {
			b.State = StateAirborne
			// Walking off an edge opens the coyote window; jumping off does not.
			if b.Vel.Y >= 0 {
				b.coyoteLeft = cfg.CoyoteTime
			}
		}
	}

	b.refreshWall(col, cfg)
}

func (b *Body) tryJump(cfg *Config) {
	switch {
	case b.State == StateSliding && cfg.WallJumpingEnabled &&
		(!cfg.WallJumpConsumesCharge || b.RemainingJumps > 0):
		b.Vel.Y = -cfg.WallJumpImpulse.Y
		if b.Wall == WallLeft {
			b.Vel.X = cfg.WallJumpImpulse.X
		} else {
			b.Vel.X = -cfg.WallJumpImpulse.X
		}
		b.State = StateAirborne
		b.Wall = WallNone
		b.lockLeft = cfg.WallJumpControlLockTime
		if cfg.WallJumpConsumesCharge {
			b.RemainingJumps--
		}

	case b.State == StateGrounded || b.coyoteLeft > 0:
		b.Vel.Y = -b.jumpStrength(cfg)
		b.jumpsSinceGround++
		b.coyoteLeft = 0

	case b.RemainingJumps > 0:
		b.Vel.Y = -b.jumpStrength(cfg)
		b.jumpsSinceGround++
		b.RemainingJumps--

	default:
		return
	}
	b.bufferLeft = 0
}

// jumpStrength decays the impulse for every jump already taken since the body
// was last grounded.
func (b *Body) jumpStrength(cfg *Config) float64 {
	return cfg.JumpImpulse * math.Pow(cfg.MultijumpCoefficient, float64(b.jumpsSinceGround))
}

func (b *Body) land(cfg *Config) {
	b.Vel.Y = 0
	b.State = StateGrounded
	b.Wall = WallNone
	b.RemainingJumps = cfg.MaxJumps
	b.jumpsSinceGround = 0
	b.coyoteLeft = 0
}

func (b *Body) engageWall(side WallSide, cfg *Config) {
	b.State = StateSliding
	b.Wall = side
	if cfg.WallContactResetsJumps {
		b.RemainingJumps = cfg.MaxJumps
		b.jumpsSinceGround = 0
	}
}

// refreshWall keeps the wall contact honest after movement: the wall may have
// ended, the body may have drifted to the other side of a shaft, or both
// sides may touch at once (squeeze). Left wins the squeeze tie-break.
func (b *Body) refreshWall(col Collider, cfg *Config) {
	if b.State == StateGrounded {
		return
	}
	if !cfg.WallSlidingEnabled {
		b.Wall = WallNone
		return
	}

	hit := col.Probe(b.Box(), WallProbeDistance)
	if hit.Has(ContactLeft | ContactRight) {
		b.Vel.X = 0
		b.engageWall(WallLeft, cfg)
		return
	}
	if b.State != StateSliding {
		return
	}
	switch {
	case b.Wall == WallLeft && hit.Has(ContactLeft):
	case b.Wall == WallRight && hit.Has(ContactRight):
	case hit.Has(ContactLeft):
		b.engageWall(WallLeft, cfg)
	case hit.Has(ContactRight):
		b.engageWall(WallRight, cfg)
	default:
		b.State = StateAirborne
		b.Wall = WallNone
	}
}

func (b *Body) horizontalAccel(axis float64, cfg *Config) float64 {
	grounded := b.State == StateGrounded
	switch {
	case axis == 0:
		if grounded {
			return cfg.GroundDeceleration
		}
		return cfg.AirDeceleration
	case b.Vel.X*axis < 0:
		if grounded {
			return cfg.GroundTurnAcceleration
		}
		return cfg.AirTurnAcceleration
	case math.Abs(b.Vel.X) > cfg.MoveSpeed:
		// Over the run cap (a wall jump can put us there): bleed off at the
		// deceleration rate rather than snapping.
		if grounded {
			return cfg.GroundDeceleration
		}
		return cfg.AirDeceleration
	default:
		if grounded {
			return cfg.GroundAcceleration
		}
		return cfg.AirAcceleration
	}
}

func axisOpposesWall(axis float64, wall WallSide) bool {
	return (wall == WallLeft && axis > 0) || (wall == WallRight && axis < 0)
}
