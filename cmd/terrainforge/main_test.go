package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvalenta/terrainforge/internal/testutil"
	"github.com/dvalenta/terrainforge/services/terrain"
	"github.com/dvalenta/terrainforge/services/texture"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected terrain.Extents
		wantErr  bool
	}{
		{name: "integers", input: "500x100x500", expected: terrain.Extents{Width: 500, Height: 100, Length: 500}},
		{name: "fractional", input: "12.5x4x8.25", expected: terrain.Extents{Width: 12.5, Height: 4, Length: 8.25}},
		{name: "missing component", input: "500x100", wantErr: true},
		{name: "non-numeric", input: "500xbigx500", wantErr: true},
		{name: "zero component", input: "500x0x500", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extents, err := parseSize(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, extents)
		})
	}
}

func TestParseLayers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []texture.Layer
		wantErr  bool
	}{
		{
			name:  "full table",
			input: "sand:0,grass:0.3,rock:0.6",
			expected: []texture.Layer{
				{Name: "sand", MinHeight: 0},
				{Name: "grass", MinHeight: 0.3},
				{Name: "rock", MinHeight: 0.6},
			},
		},
		{
			name:     "single layer with spaces",
			input:    " grass:0.5 ",
			expected: []texture.Layer{{Name: "grass", MinHeight: 0.5}},
		},
		{name: "missing separator", input: "grass", wantErr: true},
		{name: "bad height", input: "grass:tall", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layers, err := parseLayers(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, layers)
		})
	}
}

func TestWritePreview(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	cfg := terrain.DefaultConfig()
	cfg.Resolution = 33
	cfg.AlphaResolution = 32

	svc, err := terrain.NewService(cfg)
	require.NoError(t, err)

	result, err := svc.Generate(context.Background(), terrain.NewMemorySurface())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "preview.png")
	require.NoError(t, writePreview(path, result, cfg))

	assert.FileExists(t, path)
}
