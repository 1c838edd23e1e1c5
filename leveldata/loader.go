package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// SolidLayerName is the tile layer read for collision geometry. Maps without
// a layer by this name fall back to their first tile layer.
const SolidLayerName = "solid"

// SpawnGroupName is the object group read for spawn points. Maps without a
// group by this name fall back to their first object group.
const SpawnGroupName = "spawns"

// LoadLevel parses a TMX file into collision data. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		PixelWidth:  levelMap.Width * levelMap.TileWidth,
		PixelHeight: levelMap.Height * levelMap.TileHeight,
		TileWidth:   levelMap.TileWidth,
		TileHeight:  levelMap.TileHeight,
	}

	layer := solidLayer(levelMap)
	if layer == nil {
		return nil, fmt.Errorf("load TMX %s: no tile layers", tmxPath)
	}

	// Horizontal runs of solid tiles merge into single rects, so a floor is
	// one object instead of forty.
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for y := 0; y < levelMap.Height; y++ {
		run := -1
		for x := 0; x <= levelMap.Width; x++ {
			solid := x < levelMap.Width && !layer.Tiles[y*levelMap.Width+x].IsNil()
			switch {
			case solid && run < 0:
				run = x
			case !solid && run >= 0:
				data.SolidRects = append(data.SolidRects, SolidRect{
					X: float64(run) * tileW,
					Y: float64(y) * tileH,
					W: float64(x-run) * tileW,
					H: tileH,
				})
				run = -1
			}
		}
	}

	group := spawnGroup(levelMap)
	if group != nil {
		for _, o := range group.Objects {
			data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
				Name:  o.Name,
				X:     o.X,
				Y:     o.Y,
				Index: o.Properties.GetInt("index"),
			})
		}
	}

	// Sort by index, then left-to-right, so the default spawn is stable.
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		a, b := data.SpawnPoints[i], data.SpawnPoints[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.X < b.X
	})

	return data, nil
}

func solidLayer(levelMap *tiled.Map) *tiled.Layer {
	for _, layer := range levelMap.Layers {
		if layer.Name == SolidLayerName {
			return layer
		}
	}
	if len(levelMap.Layers) > 0 {
		return levelMap.Layers[0]
	}
	return nil
}

func spawnGroup(levelMap *tiled.Map) *tiled.ObjectGroup {
	for _, og := range levelMap.ObjectGroups {
		if og.Name == SpawnGroupName {
			return og
		}
	}
	if len(levelMap.ObjectGroups) > 0 {
		return levelMap.ObjectGroups[0]
	}
	return nil
}

// LoadAll discovers every .tmx file in levelsDir, loads each, and returns a
// map keyed by stem name plus the sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
