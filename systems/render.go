package systems

import (
	"image/color"

	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	solidFill   = color.RGBA{58, 58, 70, 255}
	solidEdge   = color.RGBA{90, 90, 105, 255}
	spawnMarker = cfg.Magenta
)

// DrawLevel renders the level geometry: filled solids with a lighter top edge
// so surfaces read clearly, plus markers on the spawn points.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Current == nil {
		return
	}

	for _, r := range level.Current.SolidRects {
		vector.DrawFilledRect(screen,
			float32(r.X), float32(r.Y),
			float32(r.W), float32(r.H),
			solidFill, false)
		vector.DrawFilledRect(screen,
			float32(r.X), float32(r.Y),
			float32(r.W), 1,
			solidEdge, false)
	}

	for _, sp := range level.Current.SpawnPoints {
		vector.DrawFilledRect(screen,
			float32(sp.X)-2, float32(sp.Y)-2,
			4, 4,
			spawnMarker, false)
	}
}

// DrawPlayer renders each player body as a rectangle colored by locomotion
// state, with a strip on the side marking the wall being slid on.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Motion.Each(ecs.World, func(e *donburi.Entry) {
		body := &components.Motion.Get(e).Body

		fill := cfg.LightBlue
		switch body.State {
		case motion.StateGrounded:
			fill = cfg.Green
		case motion.StateSliding:
			fill = cfg.Yellow
		}

		x := float32(body.Pos.X)
		y := float32(body.Pos.Y)
		w := float32(body.Size.X)
		h := float32(body.Size.Y)
		vector.DrawFilledRect(screen, x, y, w, h, fill, false)

		switch body.Wall {
		case motion.WallLeft:
			vector.DrawFilledRect(screen, x, y, 2, h, cfg.Orange, false)
		case motion.WallRight:
			vector.DrawFilledRect(screen, x+w-2, y, 2, h, cfg.Orange, false)
		}
	})
}
