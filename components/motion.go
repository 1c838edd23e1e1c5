package components

import (
	"github.com/automoto/wallhop/motion"
	"github.com/yohamta/donburi"
)

// MotionData holds an entity's kinematic body plus the state it was in on the
// previous tick, so systems can react to transitions (logging, effects).
type MotionData struct {
	Body motion.Body

	PrevState motion.State
	PrevWall  motion.WallSide
}

var Motion = donburi.NewComponentType[MotionData]()
