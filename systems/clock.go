package systems

import (
	"github.com/automoto/wallhop/components"
	"github.com/yohamta/donburi/ecs"
)

// dt is the fixed simulation timestep in seconds. Ebitengine ticks at 60 TPS
// so every system sees the same delta regardless of render framerate.
const dt = 1.0 / 60.0

// UpdateClock advances gameplay time. Register it wrapped with
// WithGameplayChecks so the clock freezes while paused.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	clock.Seconds += dt
	clock.Ticks++
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
