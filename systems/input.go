package systems

import (
	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateControl in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Digital axis from the move actions, then let the analog stick override
	// past the deadzone so partial deflections give partial run speed.
	axis := 0.0
	if input.Current[cfg.ActionMoveLeft] {
		axis -= 1
	}
	if input.Current[cfg.ActionMoveRight] {
		axis += 1
	}
	if analog, ok := getAnalogAxis(gamepadIDs); ok {
		axis = analog
		if analog < 0 {
			input.Current[cfg.ActionMoveLeft] = true
		} else {
			input.Current[cfg.ActionMoveRight] = true
		}
	}
	input.AxisX = axis
}

// getAnalogAxis reads the left stick's horizontal axis from all gamepads and
// returns the largest deflection beyond the deadzone.
func getAnalogAxis(gamepads []ebiten.GamepadID) (float64, bool) {
	deadzone := cfg.Input.AnalogDeadzone

	best := 0.0
	found := false
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h > -deadzone && h < deadzone {
			continue
		}
		if !found || h*h > best*best {
			best = h
			found = true
		}
	}
	if !found {
		return 0, false
	}
	if best > 1 {
		best = 1
	} else if best < -1 {
		best = -1
	}
	return best, true
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetOrCreateInput is the exported variant for scene code that needs to read
// actions outside the systems package.
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	return getOrCreateInput(ecs)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
