package texture

import (
	"fmt"
	"time"

	"github.com/dvalenta/terrainforge/internal/logging"
	"github.com/dvalenta/terrainforge/services/heightmap"
)

// Layer pairs a texture identifier with the minimum height (as a fraction of
// total terrain height) at which it starts to apply.
type Layer struct {
	Name      string
	MinHeight float64
}

// Painter assigns one dominant texture layer per alpha-map cell based on
// sampled height.
//
// Selection rule: the layer whose MinHeight is the greatest value still <= h
// wins. The comparison is strictly greater-than, so when two layers share a
// MinHeight the one supplied first wins. If the sampled height falls below
// every layer's MinHeight the painter clamps to the lowest band instead of
// leaving the cell unpainted.
type Painter struct {
	layers []Layer
	lowest int
}

// NewPainter creates a painter for the given ordered layer table.
func NewPainter(layers []Layer) (*Painter, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("texture painter requires at least one layer")
	}

	// Precompute the fallback band for heights below every MinHeight.
	lowest := 0
	for i, l := range layers[1:] {
		if l.MinHeight < layers[lowest].MinHeight {
			lowest = i + 1
		}
	}

	return &Painter{
		layers: layers,
		lowest: lowest,
	}, nil
}

// Layers returns the ordered layer table.
func (p *Painter) Layers() []Layer {
	return p.layers
}

// Select returns the index of the layer chosen for normalized height h.
func (p *Painter) Select(h float64) int {
	best := -1
	for i, l := range p.layers {
		if l.MinHeight > h {
			continue
		}
		if best == -1 || l.MinHeight > p.layers[best].MinHeight {
			best = i
		}
	}
	if best == -1 {
		return p.lowest
	}
	return best
}

// Paint builds a one-hot alpha map over the heightmap. The alpha map may have
// a different resolution than the heightmap; heights are sampled bilinearly
// at each alpha cell's normalized position. Heightmap values are already
// fractions of total terrain height, the same unit the layer table uses.
func (p *Painter) Paint(grid *heightmap.Grid, alphaResolution int) (*SplatMap, error) {
	if grid == nil {
		return nil, fmt.Errorf("texture painter requires a heightmap")
	}
	if alphaResolution < 1 {
		return nil, fmt.Errorf("alpha map resolution must be >= 1, got %d", alphaResolution)
	}

	logger := logging.WithFields("alpha_resolution", alphaResolution, "layers", len(p.layers))
	logger.Debug("Starting alpha map painting")

	start := time.Now()
	splat := NewSplatMap(alphaResolution, len(p.layers))

	denom := float64(alphaResolution - 1)
	if alphaResolution == 1 {
		denom = 1
	}

	layerCounts := make([]int, len(p.layers))
	for z := 0; z < alphaResolution; z++ {
		for x := 0; x < alphaResolution; x++ {
			h := grid.Sample(float64(x)/denom, float64(z)/denom)
			layer := p.Select(h)
			splat.setOneHot(x, z, layer)
			layerCounts[layer]++
		}
	}

	logger.Debug("Alpha map painting completed", "duration", time.Since(start), "layer_distribution", layerCounts)
	return splat, nil
}
