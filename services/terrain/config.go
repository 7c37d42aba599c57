package terrain

import (
	"fmt"

	"github.com/dvalenta/terrainforge/services/texture"
)

// Extents are the terrain's world-space dimensions: Width and Length span the
// horizontal plane, Height is the vertical scale applied to heightmap values.
type Extents struct {
	Width  float64
	Height float64
	Length float64
}

// Config is the input configuration for one generation run.
type Config struct {
	// Resolution is the heightmap's side length in vertices.
	Resolution int
	// AlphaResolution is the alpha (splat) map's side length in cells. It may
	// differ from Resolution.
	AlphaResolution int
	// Size is the terrain's world-space extents.
	Size Extents

	// Seed selects the noise permutation table.
	Seed int64
	// Offset shifts sampling coordinates in noise space.
	Offset float64
	// Step is the base sampling frequency.
	Step float64
	// Octaves is the number of fractal noise layers.
	Octaves int
	// Lacunarity is the per-octave frequency multiplier.
	Lacunarity float64
	// Persistence is the per-octave amplitude multiplier.
	Persistence float64

	// WaterLevel is the water plane's height as a fraction of Size.Height.
	WaterLevel float64
	// Layers is the ordered height-to-texture table.
	Layers []texture.Layer
}

// Validate reports configuration errors. A failing config skips generation
// entirely; it never produces a partial result.
func (c Config) Validate() error {
	if c.Resolution < 1 {
		return fmt.Errorf("resolution must be >= 1, got %d", c.Resolution)
	}
	if c.AlphaResolution < 1 {
		return fmt.Errorf("alpha resolution must be >= 1, got %d", c.AlphaResolution)
	}
	if c.Size.Width <= 0 || c.Size.Height <= 0 || c.Size.Length <= 0 {
		return fmt.Errorf("terrain extents must be positive, got %+v", c.Size)
	}
	if c.Octaves < 0 {
		return fmt.Errorf("octaves must be >= 0, got %d", c.Octaves)
	}
	if c.Octaves > 0 && c.Lacunarity <= 0 {
		return fmt.Errorf("lacunarity must be positive, got %g", c.Lacunarity)
	}
	if c.WaterLevel < 0 || c.WaterLevel > 1 {
		return fmt.Errorf("water level must be in [0, 1], got %g", c.WaterLevel)
	}
	if len(c.Layers) == 0 {
		return fmt.Errorf("at least one texture layer is required")
	}
	return nil
}

// DefaultConfig returns a config that generates a reasonable-looking terrain.
func DefaultConfig() Config {
	return Config{
		Resolution:      257,
		AlphaResolution: 256,
		Size:            Extents{Width: 500, Height: 100, Length: 500},
		Seed:            1,
		Offset:          0,
		Step:            0.02,
		Octaves:         5,
		Lacunarity:      2.0,
		Persistence:     0.5,
		WaterLevel:      0.25,
		Layers: []texture.Layer{
			{Name: "sand", MinHeight: 0.0},
			{Name: "grass", MinHeight: 0.3},
			{Name: "rock", MinHeight: 0.6},
			{Name: "snow", MinHeight: 0.85},
		},
	}
}
