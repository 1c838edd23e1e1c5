package factory

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/wallhop/archetypes"
	"github.com/automoto/wallhop/assets"
	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/leveldata"
	"github.com/automoto/wallhop/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateLevel loads every level the game can see and activates the one with
// the given name, falling back to the first when the name is unknown.
func CreateLevel(ecs *ecs.ECS, name string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	fsys, root := assets.Levels(cfg.C.Game.LevelsDir)
	maps, names, err := leveldata.LoadAll(fsys, root)
	if err != nil {
		panic("load levels: " + err.Error())
	}
	loadWorlds(fsys, root, maps, &names)
	if len(names) == 0 {
		panic("no levels found")
	}

	index := 0
	for i, n := range names {
		if n == name {
			index = i
			break
		}
	}

	data := components.LevelData{
		Maps:  maps,
		Names: names,
		Index: index,
	}
	activate(&data, index)
	components.Level.SetValue(level, data)

	return level
}

func activate(data *components.LevelData, index int) {
	data.Index = index
	data.Current = data.Maps[data.Names[index]]
	spawn, ok := data.Current.DefaultSpawn()
	if !ok {
		// A map with no spawn objects still has to put the player somewhere.
		spawn = leveldata.SpawnPoint{X: float64(data.Current.TileWidth) * 2, Y: float64(data.Current.TileHeight) * 2}
	}
	data.Spawn = spawn
}

// loadWorlds composes any .world indexes in the levels directory into extra
// selectable levels named after the world file.
func loadWorlds(fsys fs.FS, root string, maps map[string]*leveldata.CollisionData, names *[]string) {
	worlds, err := fs.Glob(fsys, path.Join(root, "*.world"))
	if err != nil {
		return
	}
	for _, wp := range worlds {
		combined, err := leveldata.LoadWorldCollision(fsys, wp)
		if err != nil {
			logger.Warn("skipping world", zap.String("path", wp), zap.Error(err))
			continue
		}
		name := strings.TrimSuffix(path.Base(wp), ".world")
		if _, dup := maps[name]; dup {
			continue
		}
		maps[name] = combined
		*names = append(*names, name)
	}
	sort.Strings(*names)
}
