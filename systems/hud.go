package systems

import (
	"fmt"

	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/fonts"
	"github.com/automoto/wallhop/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 8
	hudLineHeight = 12
)

// DrawHUD renders the movement readout in the top-left corner: locomotion
// state, kinematics, jump charges and the gameplay clock.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Motion.First(ecs.World)
	if !ok {
		return
	}
	body := &components.Motion.Get(playerEntry).Body
	player := components.Player.Get(playerEntry)
	clock := GetOrCreateClock(ecs)

	face := fonts.Main.Get()
	line := 0
	drawLine := func(s string) {
		y := hudMargin + hudLineHeight*(line+1)
		text.Draw(screen, s, face, hudMargin, y, cfg.White)
		line++
	}

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(levelEntry)
		mins := int(clock.Seconds) / 60
		secs := clock.Seconds - float64(mins*60)
		drawLine(fmt.Sprintf("%s  %02d:%04.1f", level.Name(), mins, secs))
	}

	state := body.State.String()
	if body.State == motion.StateSliding {
		state += " " + body.Wall.String()
	}
	for _, badge := range []struct {
		on   bool
		name string
	}{
		{body.CoyoteActive(), "coyote"},
		{body.JumpBuffered(), "buffered"},
		{body.ControlLocked(), "locked"},
	} {
		if badge.on {
			state += "  [" + badge.name + "]"
		}
	}
	drawLine(state)

	drawLine(fmt.Sprintf("pos %6.1f %6.1f", body.Pos.X, body.Pos.Y))
	drawLine(fmt.Sprintf("vel %6.1f %6.1f", body.Vel.X, body.Vel.Y))
	drawLine(fmt.Sprintf("jumps %d/%d  deaths %d", body.RemainingJumps, cfg.C.Movement.MaxJumps, player.Respawns))

	if cfg.C.Game.ShowFPS {
		drawLine(fmt.Sprintf("tps %4.1f  fps %4.1f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}
