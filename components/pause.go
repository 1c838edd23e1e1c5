package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PauseData is the singleton pause state. Overlay holds the current darkness
// of the pause veil; Fade animates it toward its target when the state flips.
type PauseData struct {
	IsPaused bool

	Overlay float32
	Fade    *gween.Tween
}

var Pause = donburi.NewComponentType[PauseData]()
