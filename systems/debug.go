package systems

import (
	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/logger"
	"github.com/automoto/wallhop/motion"
	"github.com/automoto/wallhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateDebugToggles flips the collision outline overlay at runtime.
func UpdateDebugToggles(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionToggleCollision).JustPressed {
		cfg.C.Debug.DrawCollision = !cfg.C.Debug.DrawCollision
		logger.Debug("collision outlines toggled", zap.Bool("on", cfg.C.Debug.DrawCollision))
	}
}

// DrawDebug outlines every object registered in the collision space.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.C.Debug.DrawCollision {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := cfg.LightGreen
		if obj.HasTags(tags.ResolvSolid) {
			c = cfg.Red
		}

		x := float32(obj.X)
		y := float32(obj.Y)
		w := float32(obj.W)
		h := float32(obj.H)

		// Draw outline
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}

	drawBodyDiagnostics(ecs, screen)
}

// drawBodyDiagnostics adds the velocity vector and the wall-probe result to
// each player box.
func drawBodyDiagnostics(ecs *ecs.ECS, screen *ebiten.Image) {
	for e := range components.Motion.Iter(ecs.World) {
		mo := components.Motion.Get(e)
		obj := components.Object.Get(e)
		body := &mo.Body

		// Velocity, drawn as the displacement of the next tenth of a second.
		cx := float32(body.Pos.X + body.Size.X/2)
		cy := float32(body.Pos.Y + body.Size.Y/2)
		vector.StrokeLine(screen, cx, cy,
			cx+float32(body.Vel.X*0.1), cy+float32(body.Vel.Y*0.1),
			1, cfg.Yellow, false)

		// Probe markers at mid-height: red side has a wall in reach.
		hit := newSpaceCollider(obj.Object).Probe(body.Box(), motion.WallProbeDistance)
		left, right := cfg.LightGreen, cfg.LightGreen
		if hit.Has(motion.ContactLeft) {
			left = cfg.Red
		}
		if hit.Has(motion.ContactRight) {
			right = cfg.Red
		}
		vector.FillRect(screen, float32(body.Pos.X)-3, cy-4, 2, 8, left, false)
		vector.FillRect(screen, float32(body.Pos.X+body.Size.X)+1, cy-4, 2, 8, right, false)
	}
}
