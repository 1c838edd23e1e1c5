package factory

import (
	"github.com/automoto/wallhop/archetypes"
	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/motion"
	"github.com/automoto/wallhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its body's top-left corner at (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := cfg.C.Game.PlayerWidth
	h := cfg.C.Game.PlayerHeight

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	body := motion.NewBody(x, y, w, h, &cfg.C.Movement)
	components.Motion.SetValue(player, components.MotionData{
		Body:      body,
		PrevState: body.State,
		PrevWall:  body.Wall,
	})
	components.Player.SetValue(player, components.PlayerData{
		SpawnX: x,
		SpawnY: y,
	})

	return player
}
