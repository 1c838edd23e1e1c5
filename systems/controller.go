package systems

import (
	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/logger"
	"github.com/automoto/wallhop/motion"
	"github.com/automoto/wallhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateControl turns the polled input into a movement intent, steps every
// player body against the collision space and mirrors the result back onto
// the resolv object. Runs after UpdateInput and before UpdateObjects.
func UpdateControl(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	in := motion.Intent{
		MoveAxis:    input.AxisX,
		JumpPressed: GetAction(input, cfg.ActionJump).JustPressed,
		JumpHeld:    GetAction(input, cfg.ActionJump).Pressed,
	}
	respawnPressed := GetAction(input, cfg.ActionRespawn).JustPressed

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		mo := components.Motion.Get(e)
		obj := components.Object.Get(e)

		col := newSpaceCollider(obj.Object)
		mo.Body.Step(col, in, &cfg.C.Movement, dt)

		if respawnPressed || belowKillPlane(ecs, &mo.Body) {
			respawnPlayer(e, mo)
		}

		obj.X = mo.Body.Pos.X
		obj.Y = mo.Body.Pos.Y

		logTransitions(mo)
	})
}

// belowKillPlane reports whether the body has fallen out of the level.
func belowKillPlane(ecs *ecs.ECS, body *motion.Body) bool {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return false
	}
	level := components.Level.Get(levelEntry)
	if level.Current == nil {
		return false
	}
	return body.Pos.Y > float64(level.Current.PixelHeight)+cfg.C.Game.KillPlaneMargin
}

func respawnPlayer(e *donburi.Entry, mo *components.MotionData) {
	player := components.Player.Get(e)
	mo.Body.Teleport(player.SpawnX, player.SpawnY, &cfg.C.Movement)
	player.Respawns++
	logger.Info("player respawned",
		zap.Float64("x", player.SpawnX),
		zap.Float64("y", player.SpawnY),
		zap.Int("respawns", player.Respawns),
	)
}

func logTransitions(mo *components.MotionData) {
	if mo.Body.State != mo.PrevState || mo.Body.Wall != mo.PrevWall {
		logger.Debug("locomotion change",
			zap.Stringer("from", mo.PrevState),
			zap.Stringer("to", mo.Body.State),
			zap.Stringer("wall", mo.Body.Wall),
			zap.Float64("x", mo.Body.Pos.X),
			zap.Float64("y", mo.Body.Pos.Y),
			zap.Float64("vx", mo.Body.Vel.X),
			zap.Float64("vy", mo.Body.Vel.Y),
			zap.Int("jumps_left", mo.Body.RemainingJumps),
		)
	}
	mo.PrevState = mo.Body.State
	mo.PrevWall = mo.Body.Wall
}
