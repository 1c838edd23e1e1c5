package systems

import (
	"image/color"

	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// pauseFadeTime is how long the overlay takes to fade in or out, in seconds.
const pauseFadeTime = 0.2

// UpdatePause handles the pause toggle and animates the overlay fade.
// This system should run AFTER UpdateInput but BEFORE the gameplay systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		target := float32(0)
		if pause.IsPaused {
			target = 1
		}
		// Restart the fade from wherever the overlay currently is, so
		// rapid toggles reverse smoothly instead of snapping.
		pause.Fade = gween.New(pause.Overlay, target, pauseFadeTime, ease.Linear)
	}

	if pause.Fade != nil {
		v, done := pause.Fade.Update(float32(dt))
		pause.Overlay = v
		if done {
			pause.Fade = nil
		}
	}
}

// DrawPause renders the darkening veil and the pause caption.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if pause.Overlay <= 0 {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	veil := cfg.BlackOverlay
	veil.A = uint8(float32(veil.A) * pause.Overlay)
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		veil,
		false,
	)

	if !pause.IsPaused {
		return
	}

	caption := "PAUSED"
	captionFont := fonts.Title.Get()
	captionWidth := len(caption) * 18
	x := int((width - float64(captionWidth)) / 2)
	text.Draw(screen, caption, captionFont, x, int(height/2), color.White)

	hint := "Esc: Resume   R: Respawn   N: Next Level"
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 6
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.White)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{})
	}
	entry, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(entry)
}
