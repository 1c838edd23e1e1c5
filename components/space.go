package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space holds the resolv space all collision objects live in. One per world.
var Space = donburi.NewComponentType[resolv.Space]()
