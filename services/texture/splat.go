package texture

// SplatMap is a per-cell grid of texture-layer opacity weights. Painting is
// hard selection: exactly one layer has weight 1 at each cell, the rest 0.
type SplatMap struct {
	resolution int
	layerCount int
	weights    []float64
}

// NewSplatMap allocates a zeroed resolution x resolution x layerCount map.
func NewSplatMap(resolution, layerCount int) *SplatMap {
	return &SplatMap{
		resolution: resolution,
		layerCount: layerCount,
		weights:    make([]float64, resolution*resolution*layerCount),
	}
}

// Resolution returns the alpha map's side length in cells.
func (s *SplatMap) Resolution() int {
	return s.resolution
}

// LayerCount returns the number of texture layers.
func (s *SplatMap) LayerCount() int {
	return s.layerCount
}

// WeightsAt returns the weight vector across layers at cell (x, z).
// The returned slice aliases the map's storage.
func (s *SplatMap) WeightsAt(x, z int) []float64 {
	base := (z*s.resolution + x) * s.layerCount
	return s.weights[base : base+s.layerCount]
}

// DominantAt returns the index of the layer with the highest weight at (x, z).
func (s *SplatMap) DominantAt(x, z int) int {
	weights := s.WeightsAt(x, z)
	best := 0
	for i, w := range weights {
		if w > weights[best] {
			best = i
		}
	}
	return best
}

// setOneHot marks layer as the single selected texture at cell (x, z).
func (s *SplatMap) setOneHot(x, z, layer int) {
	weights := s.WeightsAt(x, z)
	for i := range weights {
		weights[i] = 0
	}
	weights[layer] = 1
}
