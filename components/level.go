package components

import (
	"github.com/automoto/wallhop/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData is the singleton holding every loaded level plus the one the
// player is currently in. Names is sorted so level cycling is deterministic.
type LevelData struct {
	Maps  map[string]*leveldata.CollisionData
	Names []string
	Index int

	Current *leveldata.CollisionData
	Spawn   leveldata.SpawnPoint
}

// Name returns the name of the current level.
func (l *LevelData) Name() string {
	if l.Index < 0 || l.Index >= len(l.Names) {
		return ""
	}
	return l.Names[l.Index]
}

var Level = donburi.NewComponentType[LevelData]()
