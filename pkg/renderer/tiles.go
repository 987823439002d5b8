package renderer

import (
	"image"
	"math/rand"

	"github.com/rjstrand/lumentrace/pkg/core"
)

// Tile is a rectangular region of the image, with its own persistent RNG
// stream so a tile's samples are reproducible across Render calls
// regardless of which worker goroutine happens to draw it (spec.md §5's
// "parallel across pixels/tiles with per-worker RNG streams split from a
// master seed").
type Tile struct {
	ID      int
	Bounds  image.Rectangle
	Sampler core.Sampler
}

// NewTileGrid splits a width x height image into tileSize x tileSize tiles
// (the last row/column may be smaller), each seeded from seed and its own
// ID so the same tile always draws the same stream of randoms.
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	id := 0

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0, y0 := tx*tileSize, ty*tileSize
			x1, y1 := min(x0+tileSize, width), min(y0+tileSize, height)

			tiles = append(tiles, &Tile{
				ID:      id,
				Bounds:  image.Rect(x0, y0, x1, y1),
				Sampler: core.NewRandomSampler(rand.New(rand.NewSource(seed + int64(id) + 1))),
			})
			id++
		}
	}

	return tiles
}
