package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the resolv object that mirrors an entity's collision box
// in the space. For the player the object is repositioned from the kinematic
// body every tick; for walls it never moves.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
