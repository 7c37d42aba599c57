package heightmap

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/dvalenta/terrainforge/internal/logging"
	"github.com/dvalenta/terrainforge/services/noise"
)

// Params are the octave parameters for one generation run. Immutable once
// handed to Generate.
type Params struct {
	// Offset shifts sampling coordinates in noise space. Together with the
	// noise generator's seed it makes runs reproducible or varied.
	Offset float64
	// Step is the base sampling frequency. Values in [0, 1] work well.
	Step float64
	// Octaves is the number of noise layers to accumulate.
	Octaves int
	// Lacunarity multiplies the frequency between successive octaves.
	Lacunarity float64
	// Persistence multiplies the amplitude between successive octaves.
	// Values in [0, 1] work well.
	Persistence float64
}

// Validate checks parameter constraints that would make generation meaningless.
func (p Params) Validate() error {
	if p.Octaves < 0 {
		return fmt.Errorf("octaves must be >= 0, got %d", p.Octaves)
	}
	if p.Octaves > 0 && p.Lacunarity <= 0 {
		return fmt.Errorf("lacunarity must be positive, got %g", p.Lacunarity)
	}
	return nil
}

// Generator produces normalized heightmaps from layered noise.
type Generator struct {
	noiseGen noise.GeneratorInterface
	workers  int
}

// NewGenerator creates a heightmap generator backed by the given noise source.
func NewGenerator(noiseGen noise.GeneratorInterface) *Generator {
	return &Generator{
		noiseGen: noiseGen,
		workers:  runtime.NumCPU(),
	}
}

// SetWorkers overrides the number of goroutines used for the per-cell pass.
// Values below 1 force the serial path. Output is identical either way since
// every cell is computed independently.
func (g *Generator) SetWorkers(n int) {
	g.workers = n
}

// Generate produces a resolution x resolution grid of elevations in [0, 1].
//
// Each cell accumulates Octaves layers of noise: layer k samples at
// (Offset + Step*Lacunarity^k * x, Offset + Step*Lacunarity^k * z) and is
// weighted by Persistence^k. The finished grid is divided by its observed
// maximum, so the maximum cell is exactly 1. The theoretical minimum is not
// normalized away; the floor is whatever the noise produced.
//
// With Octaves = 0 every cell accumulates to 0; the grid is treated as
// already normalized and returned as-is rather than dividing by zero.
func (g *Generator) Generate(resolution int, p Params) (*Grid, error) {
	if resolution < 1 {
		return nil, fmt.Errorf("resolution must be >= 1, got %d", resolution)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid heightmap params: %w", err)
	}

	logger := logging.WithGridSize(resolution)
	logger.Debug("Starting heightmap generation",
		"octaves", p.Octaves, "step", p.Step,
		"lacunarity", p.Lacunarity, "persistence", p.Persistence)

	start := time.Now()
	grid := NewGrid(resolution)

	if g.workers > 1 && resolution > 1 {
		g.fillRowsParallel(grid, p)
	} else {
		g.fillRows(grid, p, 0, resolution)
	}

	max := grid.Max()
	if max > 0 {
		for i := range grid.cells {
			grid.cells[i] /= max
		}
	} else {
		// All-zero accumulation (octaves = 0): already normalized.
		logger.Debug("Skipping normalization of all-zero heightmap")
	}

	logger.Debug("Heightmap generation completed", "duration", time.Since(start), "max_raw", max)
	return grid, nil
}

// fillRows accumulates octave layers for rows [zFrom, zTo).
func (g *Generator) fillRows(grid *Grid, p Params, zFrom, zTo int) {
	for z := zFrom; z < zTo; z++ {
		for x := 0; x < grid.resolution; x++ {
			freq := p.Step
			amp := 1.0
			var h float64
			for k := 0; k < p.Octaves; k++ {
				h += g.noiseGen.Noise01(p.Offset+freq*float64(x), p.Offset+freq*float64(z)) * amp
				freq *= p.Lacunarity
				amp *= p.Persistence
			}
			grid.Set(x, z, h)
		}
	}
}

// fillRowsParallel splits rows across workers. Each cell is a pure function
// of its coordinates, so no locking is needed.
func (g *Generator) fillRowsParallel(grid *Grid, p Params) {
	workers := g.workers
	if workers > grid.resolution {
		workers = grid.resolution
	}

	rowsPerWorker := (grid.resolution + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		zFrom := w * rowsPerWorker
		zTo := zFrom + rowsPerWorker
		if zTo > grid.resolution {
			zTo = grid.resolution
		}
		if zFrom >= zTo {
			break
		}

		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			g.fillRows(grid, p, from, to)
		}(zFrom, zTo)
	}
	wg.Wait()
}
