package components

import (
	cfg "github.com/automoto/wallhop/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions, merged across keyboard and gamepads.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	// AxisX is the merged horizontal move axis in [-1, 1]. Digital bindings
	// contribute whole units; the analog stick overrides them past the
	// deadzone so partial deflections give partial speed.
	AxisX float64
}

var Input = donburi.NewComponentType[InputData]()
