package components

import (
	"github.com/yohamta/donburi"
)

// PlayerData carries per-player bookkeeping that sits outside the kinematic
// body: where the player respawns and how often they have died or reset.
type PlayerData struct {
	SpawnX float64
	SpawnY float64

	Respawns int
}

var Player = donburi.NewComponentType[PlayerData]()
