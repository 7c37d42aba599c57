package terrain

import (
	"github.com/dvalenta/terrainforge/services/heightmap"
	"github.com/dvalenta/terrainforge/services/texture"
)

// Surface is the host terrain a generation pass commits to. The engine-side
// implementation owns rendering and collision; this module only hands it the
// finished grids.
type Surface interface {
	// SetHeights commits the normalized heightmap. The host scales values by
	// its vertical size.
	SetHeights(grid *heightmap.Grid)
	// SetTextureLayers commits the ordered texture-layer list.
	SetTextureLayers(layers []texture.Layer)
	// SetAlphamaps commits the one-hot splat weights.
	SetAlphamaps(splat *texture.SplatMap)
}

// MemorySurface is an in-memory Surface for tests and tooling.
type MemorySurface struct {
	Heights *heightmap.Grid
	Layers  []texture.Layer
	Splat   *texture.SplatMap
}

// NewMemorySurface creates an empty in-memory surface.
func NewMemorySurface() *MemorySurface {
	return &MemorySurface{}
}

func (s *MemorySurface) SetHeights(grid *heightmap.Grid) {
	s.Heights = grid
}

func (s *MemorySurface) SetTextureLayers(layers []texture.Layer) {
	s.Layers = layers
}

func (s *MemorySurface) SetAlphamaps(splat *texture.SplatMap) {
	s.Splat = splat
}
