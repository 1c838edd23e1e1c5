package leveldata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
)

// World is a Tiled .world index: a set of maps placed at pixel offsets.
type World struct {
	Maps []WorldMap `json:"maps"`
	Type string     `json:"type"`
}

// WorldMap is one map entry in a world file. FileName is relative to the
// world file's directory.
type WorldMap struct {
	FileName string `json:"fileName"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

// LoadWorld parses a Tiled .world file. The format is plain JSON, so it does
// not go through the TMX loader.
func LoadWorld(fsys fs.FS, worldPath string) (*World, error) {
	raw, err := fs.ReadFile(fsys, worldPath)
	if err != nil {
		return nil, fmt.Errorf("load world %s: %w", worldPath, err)
	}
	var w World
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("parse world %s: %w", worldPath, err)
	}
	if len(w.Maps) == 0 {
		return nil, fmt.Errorf("parse world %s: no maps", worldPath)
	}
	return &w, nil
}

// LoadWorldCollision loads every map in a world file and composes them into a
// single CollisionData, with each map's geometry shifted by its world offset.
// All maps must share a tile size.
func LoadWorldCollision(fsys fs.FS, worldPath string) (*CollisionData, error) {
	world, err := LoadWorld(fsys, worldPath)
	if err != nil {
		return nil, err
	}

	dir := path.Dir(worldPath)
	combined := &CollisionData{}
	for _, entry := range world.Maps {
		data, err := LoadLevel(fsys, path.Join(dir, entry.FileName))
		if err != nil {
			return nil, err
		}
		if combined.TileWidth == 0 {
			combined.TileWidth = data.TileWidth
			combined.TileHeight = data.TileHeight
		} else if data.TileWidth != combined.TileWidth || data.TileHeight != combined.TileHeight {
			return nil, fmt.Errorf("world %s: map %s tile size %dx%d does not match %dx%d",
				worldPath, entry.FileName, data.TileWidth, data.TileHeight,
				combined.TileWidth, combined.TileHeight)
		}

		data.Translate(float64(entry.X), float64(entry.Y))
		combined.SolidRects = append(combined.SolidRects, data.SolidRects...)
		combined.SpawnPoints = append(combined.SpawnPoints, data.SpawnPoints...)

		if right := entry.X + data.PixelWidth; right > combined.PixelWidth {
			combined.PixelWidth = right
		}
		if bottom := entry.Y + data.PixelHeight; bottom > combined.PixelHeight {
			combined.PixelHeight = bottom
		}
	}
	return combined, nil
}
