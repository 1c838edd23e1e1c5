package motion

import (
	"fmt"

	dmath "github.com/yohamta/donburi/features/math"
)

// Config holds every tunable of the kinematic controller. Distances are
// pixels, speeds pixels/second, accelerations pixels/second², durations
// seconds. Validate before use; Step assumes a valid config.
type Config struct {
	// Horizontal movement
	MoveSpeed              float64 `yaml:"move_speed"`
	GroundAcceleration     float64 `yaml:"ground_acceleration"`
	GroundDeceleration     float64 `yaml:"ground_deceleration"`
	GroundTurnAcceleration float64 `yaml:"ground_turn_acceleration"`
	AirAcceleration        float64 `yaml:"air_acceleration"`
	AirDeceleration        float64 `yaml:"air_deceleration"`
	AirTurnAcceleration    float64 `yaml:"air_turn_acceleration"`

	// Vertical movement
	Gravity          float64 `yaml:"gravity"`
	JumpGravity      float64 `yaml:"jump_gravity"` // applied instead of Gravity while ascending with jump held
	TerminalVelocity float64 `yaml:"terminal_velocity"`

	// Jumping
	JumpImpulse          float64 `yaml:"jump_impulse"`
	JumpCutFactor        float64 `yaml:"jump_cut_factor"` // per-tick upward damping after early release
	MaxJumps             int     `yaml:"max_jumps"`       // air jumps available after leaving the ground
	MultijumpCoefficient float64 `yaml:"multijump_coefficient"`
	CoyoteTime           float64 `yaml:"coyote_time"`
	JumpBufferTime       float64 `yaml:"jump_buffer_time"`

	// Wall sliding
	WallSlidingEnabled bool    `yaml:"wall_sliding_enabled"`
	WallSlideSpeedCap  float64 `yaml:"wall_slide_speed_cap"`

	// Wall jumping
	WallJumpingEnabled      bool       `yaml:"wall_jumping_enabled"`
	WallJumpImpulse         dmath.Vec2 `yaml:"wall_jump_impulse"` // X away from the wall, Y upward
	WallJumpControlLockTime float64    `yaml:"wall_jump_control_lock_time"`
	WallJumpConsumesCharge  bool       `yaml:"wall_jump_consumes_charge"`
	WallContactResetsJumps  bool       `yaml:"wall_contact_resets_jumps"`
}

// DefaultConfig returns the playground tuning.
func DefaultConfig() Config {
	return Config{
		MoveSpeed:              192,
		GroundAcceleration:     1360,
		GroundDeceleration:     1040,
		GroundTurnAcceleration: 2000,
		AirAcceleration:        800,
		AirDeceleration:        320,
		AirTurnAcceleration:    1600,

		Gravity:          1600,
		JumpGravity:      912,
		TerminalVelocity: 720,

		JumpImpulse:          352,
		JumpCutFactor:        0.5,
		MaxJumps:             2,
		MultijumpCoefficient: 0.8,
		CoyoteTime:           0.1,
		JumpBufferTime:       0.15,

		WallSlidingEnabled: true,
		WallSlideSpeedCap:  240,

		WallJumpingEnabled:      true,
		WallJumpImpulse:         dmath.Vec2{X: 160, Y: 320},
		WallJumpControlLockTime: 0.2,
		WallJumpConsumesCharge:  false,
		WallContactResetsJumps:  false,
	}
}

// Validate rejects configurations the controller cannot run with.
func (c *Config) Validate() error {
	if c.MoveSpeed < 0 {
		return fmt.Errorf("move_speed must be >= 0, got %v", c.MoveSpeed)
	}
	accels := []struct {
		name string
		v    float64
	}{
		{"ground_acceleration", c.GroundAcceleration},
		{"ground_deceleration", c.GroundDeceleration},
		{"ground_turn_acceleration", c.GroundTurnAcceleration},
		{"air_acceleration", c.AirAcceleration},
		{"air_deceleration", c.AirDeceleration},
		{"air_turn_acceleration", c.AirTurnAcceleration},
	}
	for _, a := range accels {
		if a.v < 0 {
			return fmt.Errorf("%s must be >= 0, got %v", a.name, a.v)
		}
	}
	if c.Gravity < 0 {
		return fmt.Errorf("gravity must be >= 0, got %v", c.Gravity)
	}
	if c.JumpGravity < 0 {
		return fmt.Errorf("jump_gravity must be >= 0, got %v", c.JumpGravity)
	}
	if c.TerminalVelocity <= 0 {
		return fmt.Errorf("terminal_velocity must be > 0, got %v", c.TerminalVelocity)
	}
	if c.JumpImpulse < 0 {
		return fmt.Errorf("jump_impulse must be >= 0, got %v", c.JumpImpulse)
	}
	if c.JumpCutFactor < 0 || c.JumpCutFactor > 1 {
		return fmt.Errorf("jump_cut_factor must be in [0, 1], got %v", c.JumpCutFactor)
	}
	if c.MaxJumps < 1 {
		return fmt.Errorf("max_jumps must be >= 1, got %d", c.MaxJumps)
	}
	if c.MultijumpCoefficient <= 0 || c.MultijumpCoefficient > 1 {
		return fmt.Errorf("multijump_coefficient must be in (0, 1], got %v", c.MultijumpCoefficient)
	}
	if c.CoyoteTime < 0 {
		return fmt.Errorf("coyote_time must be >= 0, got %v", c.CoyoteTime)
	}
	if c.JumpBufferTime < 0 {
		return fmt.Errorf("jump_buffer_time must be >= 0, got %v", c.JumpBufferTime)
	}
	if c.WallSlideSpeedCap < 0 {
		return fmt.Errorf("wall_slide_speed_cap must be >= 0, got %v", c.WallSlideSpeedCap)
	}
	if c.WallJumpImpulse.X < 0 || c.WallJumpImpulse.Y < 0 {
		return fmt.Errorf("wall_jump_impulse components must be >= 0, got (%v, %v)",
			c.WallJumpImpulse.X, c.WallJumpImpulse.Y)
	}
	if c.WallJumpControlLockTime < 0 {
		return fmt.Errorf("wall_jump_control_lock_time must be >= 0, got %v", c.WallJumpControlLockTime)
	}
	return nil
}
