package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidateRejects(t *testing.T) {
	for _, tc := range []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"negative move speed", func(c *Config) { c.MoveSpeed = -1 }, "move_speed"},
		{"negative ground acceleration", func(c *Config) { c.GroundAcceleration = -1 }, "ground_acceleration"},
		{"negative air turn acceleration", func(c *Config) { c.AirTurnAcceleration = -1 }, "air_turn_acceleration"},
		{"negative gravity", func(c *Config) { c.Gravity = -1 }, "gravity"},
		{"negative jump gravity", func(c *Config) { c.JumpGravity = -1 }, "jump_gravity"},
		{"zero terminal velocity", func(c *Config) { c.TerminalVelocity = 0 }, "terminal_velocity"},
		{"negative jump impulse", func(c *Config) { c.JumpImpulse = -1 }, "jump_impulse"},
		{"cut factor above one", func(c *Config) { c.JumpCutFactor = 1.5 }, "jump_cut_factor"},
		{"zero max jumps", func(c *Config) { c.MaxJumps = 0 }, "max_jumps"},
		{"zero multijump coefficient", func(c *Config) { c.MultijumpCoefficient = 0 }, "multijump_coefficient"},
		{"multijump coefficient above one", func(c *Config) { c.MultijumpCoefficient = 1.1 }, "multijump_coefficient"},
		{"negative coyote time", func(c *Config) { c.CoyoteTime = -0.1 }, "coyote_time"},
		{"negative buffer time", func(c *Config) { c.JumpBufferTime = -0.1 }, "jump_buffer_time"},
		{"negative slide cap", func(c *Config) { c.WallSlideSpeedCap = -1 }, "wall_slide_speed_cap"},
		{"negative wall jump impulse", func(c *Config) { c.WallJumpImpulse.X = -1 }, "wall_jump_impulse"},
		{"negative control lock", func(c *Config) { c.WallJumpControlLockTime = -0.1 }, "wall_jump_control_lock_time"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantSub)
		})
	}
}
