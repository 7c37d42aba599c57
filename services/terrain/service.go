package terrain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dvalenta/terrainforge/internal/logging"
	"github.com/dvalenta/terrainforge/services/heightmap"
	"github.com/dvalenta/terrainforge/services/noise"
	"github.com/dvalenta/terrainforge/services/texture"
)

// Service orchestrates one terrain generation pass: heightmap, splat map and
// water placement, committed to a Surface. Generation is synchronous and
// all-or-nothing; a failing stage leaves the surface untouched.
type Service struct {
	cfg       Config
	generator *heightmap.Generator
	painter   *texture.Painter
}

// Result describes one completed generation run.
type Result struct {
	RunID    string
	Grid     *heightmap.Grid
	Splat    *texture.SplatMap
	Water    WaterPlane
	Duration time.Duration
}

// NewService creates a terrain service for the given configuration.
func NewService(cfg Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid terrain config: %w", err)
	}

	painter, err := texture.NewPainter(cfg.Layers)
	if err != nil {
		return nil, err
	}

	logging.WithSeed(cfg.Seed).Debug("Creating new terrain service",
		"resolution", cfg.Resolution, "alpha_resolution", cfg.AlphaResolution)

	return &Service{
		cfg:       cfg,
		generator: heightmap.NewGenerator(noise.NewGenerator(cfg.Seed)),
		painter:   painter,
	}, nil
}

// Config returns the service's configuration.
func (s *Service) Config() Config {
	return s.cfg
}

// Generate runs a full generation pass and commits the results to surface.
// The pass runs to completion; ctx is only consulted before work starts.
func (s *Service) Generate(ctx context.Context, surface Surface) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if surface == nil {
		return nil, fmt.Errorf("terrain generation requires a surface")
	}

	runID := uuid.New().String()
	logger := logging.WithRunID(runID)
	logger.Debug("Starting terrain generation", "seed", s.cfg.Seed)

	start := time.Now()

	grid, err := s.generator.Generate(s.cfg.Resolution, heightmap.Params{
		Offset:      s.cfg.Offset,
		Step:        s.cfg.Step,
		Octaves:     s.cfg.Octaves,
		Lacunarity:  s.cfg.Lacunarity,
		Persistence: s.cfg.Persistence,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate heightmap: %w", err)
	}

	splat, err := s.painter.Paint(grid, s.cfg.AlphaResolution)
	if err != nil {
		return nil, fmt.Errorf("failed to paint alpha map: %w", err)
	}

	surface.SetHeights(grid)
	surface.SetTextureLayers(s.painter.Layers())
	surface.SetAlphamaps(splat)

	water := ComputeWaterPlane(s.cfg)

	duration := time.Since(start)
	logger.Info("Terrain generation completed", "duration", duration,
		"resolution", s.cfg.Resolution, "water_level", s.cfg.WaterLevel)

	return &Result{
		RunID:    runID,
		Grid:     grid,
		Splat:    splat,
		Water:    water,
		Duration: duration,
	}, nil
}
