// Package leveldata parses Tiled maps into the collision geometry the
// controller runs against. It has no dependencies on ebitengine, donburi, or
// resolv — pure data only.
package leveldata

// CollisionData holds everything collision-relevant parsed from a level:
// solid rectangles, spawn points, and the pixel extent of the map.
type CollisionData struct {
	SolidRects  []SolidRect
	SpawnPoints []SpawnPoint
	PixelWidth  int
	PixelHeight int
	TileWidth   int
	TileHeight  int
}

// SolidRect is one solid collision tile in pixel coordinates.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint is a player spawn location. Index orders spawns; the lowest
// index is the default.
type SpawnPoint struct {
	Name  string
	X, Y  float64
	Index int
}

// DefaultSpawn returns the first spawn point and whether one exists.
func (d *CollisionData) DefaultSpawn() (SpawnPoint, bool) {
	if len(d.SpawnPoints) == 0 {
		return SpawnPoint{}, false
	}
	return d.SpawnPoints[0], true
}

// Translate shifts all geometry by (dx, dy), used when composing world files
// from several maps.
func (d *CollisionData) Translate(dx, dy float64) {
	for i := range d.SolidRects {
		d.SolidRects[i].X += dx
		d.SolidRects[i].Y += dy
	}
	for i := range d.SpawnPoints {
		d.SpawnPoints[i].X += dx
		d.SpawnPoints[i].Y += dy
	}
}
