package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const worldJSON = `{
  "maps": [
    {"fileName": "basic.tmx", "x": 0, "y": 0},
    {"fileName": "fallback.tmx", "x": 96, "y": 32}
  ],
  "onlyShowAdjacentMaps": false,
  "type": "world"
}
`

func worldFS() fstest.MapFS {
	fsys := testFS()
	fsys["levels/pair.world"] = &fstest.MapFile{Data: []byte(worldJSON)}
	return fsys
}

func TestLoadWorld(t *testing.T) {
	w, err := LoadWorld(worldFS(), "levels/pair.world")
	require.NoError(t, err)
	require.Len(t, w.Maps, 2)
	assert.Equal(t, WorldMap{FileName: "basic.tmx"}, w.Maps[0])
	assert.Equal(t, WorldMap{FileName: "fallback.tmx", X: 96, Y: 32}, w.Maps[1])
}

func TestLoadWorldErrors(t *testing.T) {
	_, err := LoadWorld(worldFS(), "levels/missing.world")
	assert.Error(t, err)

	fsys := fstest.MapFS{"empty.world": &fstest.MapFile{Data: []byte(`{"maps": [], "type": "world"}`)}}
	_, err = LoadWorld(fsys, "empty.world")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no maps")
}

func TestLoadWorldCollision(t *testing.T) {
	data, err := LoadWorldCollision(worldFS(), "levels/pair.world")
	require.NoError(t, err)

	// 2 merged rects from basic, 1 from fallback shifted by (96, 32).
	require.Len(t, data.SolidRects, 3)
	assert.Contains(t, data.SolidRects, SolidRect{X: 32, Y: 16, W: 16, H: 16})
	assert.Contains(t, data.SolidRects, SolidRect{X: 96, Y: 48, W: 32, H: 16})

	assert.Equal(t, 128, data.PixelWidth)
	assert.Equal(t, 64, data.PixelHeight)
	assert.Equal(t, 16, data.TileWidth)

	spawn, ok := data.DefaultSpawn()
	require.True(t, ok)
	assert.Equal(t, "start", spawn.Name)
}
