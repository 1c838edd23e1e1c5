package systems

import (
	"github.com/automoto/wallhop/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes every object's cell registration after the movement
// systems have repositioned them.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
