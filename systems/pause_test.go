package systems

import (
	"testing"

	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// pauseTick runs one UpdatePause frame, optionally with the pause action
// freshly pressed.
func pauseTick(e *ecs.ECS, pressed bool) {
	in := getOrCreateInput(e)
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.Current[cfg.ActionPause] = pressed
	UpdatePause(e)
}

func TestPauseToggleAndFade(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	pause := GetOrCreatePause(e)
	require.False(t, pause.IsPaused)
	require.Zero(t, pause.Overlay)

	pauseTick(e, true)
	assert.True(t, pause.IsPaused)
	assert.Positive(t, pause.Overlay)

	for i := 0; i < 20; i++ {
		pauseTick(e, false)
	}
	assert.InDelta(t, 1, pause.Overlay, 1e-4)
	assert.Nil(t, pause.Fade, "finished fade should be released")

	pauseTick(e, true)
	assert.False(t, pause.IsPaused)
	for i := 0; i < 20; i++ {
		pauseTick(e, false)
	}
	assert.InDelta(t, 0, pause.Overlay, 1e-4)
}

func TestPauseRapidToggleReverses(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	pause := GetOrCreatePause(e)

	pauseTick(e, true)
	for i := 0; i < 3; i++ {
		pauseTick(e, false)
	}
	mid := pause.Overlay
	require.Less(t, mid, float32(1))

	// Unpausing mid-fade reverses from the current value, no snap.
	pauseTick(e, true)
	assert.LessOrEqual(t, pause.Overlay, mid)
	pauseTick(e, false)
	assert.Less(t, pause.Overlay, mid)
}

func TestPauseGatesGameplay(t *testing.T) {
	e, player := newRoomWorld(t, 40, 104)
	mo := components.Motion.Get(player)
	tick(e, 0)
	require.Equal(t, 104.0, mo.Body.Pos.Y)

	pause := GetOrCreatePause(e)
	pause.IsPaused = true

	wrapped := WithGameplayChecks(UpdateControl)
	in := getOrCreateInput(e)
	in.AxisX = 1
	in.Current[cfg.ActionMoveRight] = true
	before := mo.Body.Pos
	wrapped(e)
	assert.Equal(t, before, mo.Body.Pos)

	pause.IsPaused = false
	wrapped(e)
	assert.Greater(t, mo.Body.Pos.X, before.X)
}

func TestClockFreezesWhilePaused(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	clock := GetOrCreateClock(e)
	wrapped := WithGameplayChecks(UpdateClock)

	for i := 0; i < 60; i++ {
		wrapped(e)
	}
	assert.InDelta(t, 1.0, clock.Seconds, 1e-9)
	assert.Equal(t, int64(60), clock.Ticks)

	GetOrCreatePause(e).IsPaused = true
	for i := 0; i < 60; i++ {
		wrapped(e)
	}
	assert.InDelta(t, 1.0, clock.Seconds, 1e-9)
	assert.Equal(t, int64(60), clock.Ticks)
}
