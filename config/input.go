package config

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionRespawn
	ActionPause
	ActionNextLevel
	ActionToggleOverlay
	ActionToggleCollision
	ActionCount // Must be last - used for array sizing
)

// actionNames maps config file keys to actions for rebinding.
var actionNames = map[string]ActionID{
	"move_left":        ActionMoveLeft,
	"move_right":       ActionMoveRight,
	"jump":             ActionJump,
	"respawn":          ActionRespawn,
	"pause":            ActionPause,
	"next_level":       ActionNextLevel,
	"toggle_overlay":   ActionToggleOverlay,
	"toggle_collision": ActionToggleCollision,
}

// InputBinding represents the keys and buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// InputSettings is the input section of the config file. Key lists replace
// the default keyboard binding for the named action; gamepad bindings are
// not rebindable. Key names are ebiten's ("Space", "ArrowLeft", "A", ...).
type InputSettings struct {
	AnalogDeadzone float64             `yaml:"analog_deadzone"`
	Keys           map[string][]string `yaml:"keys"`
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				// D-pad Left (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				// D-pad Right (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyX, ebiten.KeyW},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionRespawn: {
				Keys: []ebiten.Key{ebiten.KeyR},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionNextLevel: {
				Keys: []ebiten.Key{ebiten.KeyN},
			},
			ActionToggleOverlay: {
				Keys: []ebiten.Key{ebiten.KeyF1},
				// Select / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionToggleCollision: {
				Keys: []ebiten.Key{ebiten.KeyF2},
			},
		},
	}
}

// applyInputSettings overlays config file input settings onto the global
// bindings.
func applyInputSettings(s InputSettings) error {
	if s.AnalogDeadzone > 0 {
		Input.AnalogDeadzone = s.AnalogDeadzone
	}
	for name, keyNames := range s.Keys {
		id, ok := actionNames[name]
		if !ok {
			return fmt.Errorf("unknown input action %q", name)
		}
		keys := make([]ebiten.Key, 0, len(keyNames))
		for _, keyName := range keyNames {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(keyName)); err != nil {
				return fmt.Errorf("action %q: %w", name, err)
			}
			keys = append(keys, key)
		}
		binding := Input.Bindings[id]
		binding.Keys = keys
		Input.Bindings[id] = binding
	}
	return nil
}
