package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dvalenta/terrainforge/services/terrain"
	"github.com/dvalenta/terrainforge/services/texture"
)

func main() {
	res := flag.Int("res", 257, "heightmap resolution (vertices per side)")
	alphaRes := flag.Int("alphares", 256, "alpha map resolution (cells per side)")
	seed := flag.Int64("seed", 0, "noise seed (0 = time-derived)")
	offset := flag.Float64("offset", 0, "sampling offset into noise space")
	step := flag.Float64("step", 0.02, "base sampling frequency")
	octaves := flag.Int("octaves", 5, "number of fractal noise layers")
	lacunarity := flag.Float64("lacunarity", 2.0, "per-octave frequency multiplier")
	persistence := flag.Float64("persistence", 0.5, "per-octave amplitude multiplier")
	water := flag.Float64("water", 0.25, "water level as a fraction of terrain height")
	size := flag.String("size", "500x100x500", "terrain extents as WxHxL")
	layerSpec := flag.String("layers", "sand:0,grass:0.3,rock:0.6,snow:0.85", "texture layers as name:minheight,...")
	out := flag.String("out", "terrain.png", "output PNG file")
	logLevel := flag.String("log", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	switch *logLevel {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	extents, err := parseSize(*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	layers, err := parseLayers(*layerSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := terrain.Config{
		Resolution:      *res,
		AlphaResolution: *alphaRes,
		Size:            extents,
		Seed:            *seed,
		Offset:          *offset,
		Step:            *step,
		Octaves:         *octaves,
		Lacunarity:      *lacunarity,
		Persistence:     *persistence,
		WaterLevel:      *water,
		Layers:          layers,
	}

	svc, err := terrain.NewService(cfg)
	if err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}

	surface := terrain.NewMemorySurface()
	result, err := svc.Generate(context.Background(), surface)
	if err != nil {
		log.Fatal("Terrain generation failed", "error", err)
	}

	log.Info("Generated terrain", "run_id", result.RunID, "seed", *seed, "duration", result.Duration)

	if err := writePreview(*out, result, cfg); err != nil {
		log.Fatal("Failed to write preview", "error", err, "path", *out)
	}

	log.Info("Wrote preview", "path", *out, "size", fmt.Sprintf("%dx%d", *alphaRes, *alphaRes))
}

// parseSize parses a WxHxL extent string like "500x100x500".
func parseSize(s string) (terrain.Extents, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 3 {
		return terrain.Extents{}, fmt.Errorf("size must be WxHxL, got %q", s)
	}

	vals := make([]float64, 3)
	for i, p := range parts {
		if _, err := fmt.Sscanf(p, "%g", &vals[i]); err != nil {
			return terrain.Extents{}, fmt.Errorf("invalid size component %q: %w", p, err)
		}
		if vals[i] <= 0 {
			return terrain.Extents{}, fmt.Errorf("size components must be positive, got %q", s)
		}
	}
	return terrain.Extents{Width: vals[0], Height: vals[1], Length: vals[2]}, nil
}

// parseLayers parses a layer table like "sand:0,grass:0.3".
func parseLayers(s string) ([]texture.Layer, error) {
	var layers []texture.Layer
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, minStr, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("layer entry must be name:minheight, got %q", entry)
		}
		var min float64
		if _, err := fmt.Sscanf(minStr, "%g", &min); err != nil {
			return nil, fmt.Errorf("invalid min height in %q: %w", entry, err)
		}
		layers = append(layers, texture.Layer{Name: name, MinHeight: min})
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("at least one texture layer is required")
	}
	return layers, nil
}
