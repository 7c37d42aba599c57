package noise

import (
	"github.com/aquilax/go-perlin"
)

// GeneratorInterface defines the interface for noise generation operations.
// This enables dependency injection and makes services easily testable.
type GeneratorInterface interface {
	Noise2D(x, y float64) float64
	Noise01(x, y float64) float64
	Seed() int64
}

// Generator implements the GeneratorInterface using Perlin noise.
type Generator struct {
	noise *perlin.Perlin
	seed  int64
}

// NewGenerator creates a new noise generator with the given seed.
func NewGenerator(seed int64) *Generator {
	// Create perlin noise with alpha=2, beta=2, n=3
	// These values give good terrain-like noise
	return &Generator{
		noise: perlin.NewPerlin(2, 2, 3, seed),
		seed:  seed,
	}
}

// Noise2D returns a noise value between -1 and 1 for the given coordinates
func (g *Generator) Noise2D(x, y float64) float64 {
	return g.noise.Noise2D(x, y)
}

// Noise01 returns a noise value remapped into [0, 1]. Heightmap accumulation
// works on non-negative layers so that the observed-maximum normalization
// keeps the result inside [0, 1].
func (g *Generator) Noise01(x, y float64) float64 {
	return (g.noise.Noise2D(x, y) + 1.0) / 2.0
}

// Seed returns the current seed
func (g *Generator) Seed() int64 {
	return g.seed
}
