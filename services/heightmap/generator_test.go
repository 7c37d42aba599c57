package heightmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvalenta/terrainforge/internal/testutil"
	"github.com/dvalenta/terrainforge/services/noise"
)

func defaultParams() Params {
	return Params{
		Offset:      0,
		Step:        0.02,
		Octaves:     5,
		Lacunarity:  2.0,
		Persistence: 0.5,
	}
}

func TestGenerator_Generate_Range(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	tests := []struct {
		name       string
		resolution int
		params     Params
	}{
		{name: "default params", resolution: 33, params: defaultParams()},
		{name: "single cell", resolution: 1, params: defaultParams()},
		{name: "single octave", resolution: 33, params: Params{Step: 0.05, Octaves: 1, Lacunarity: 2, Persistence: 0.5}},
		{name: "offset sampling", resolution: 33, params: Params{Offset: 1000.5, Step: 0.02, Octaves: 4, Lacunarity: 2, Persistence: 0.5}},
		{name: "high lacunarity", resolution: 17, params: Params{Step: 0.01, Octaves: 6, Lacunarity: 3.1, Persistence: 0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := NewGenerator(noise.NewGenerator(12345))
			grid, err := generator.Generate(tt.resolution, tt.params)
			require.NoError(t, err)
			require.Equal(t, tt.resolution, grid.Resolution())

			for z := 0; z < tt.resolution; z++ {
				for x := 0; x < tt.resolution; x++ {
					v := grid.At(x, z)
					assert.GreaterOrEqual(t, v, 0.0, "cell (%d, %d) should be >= 0", x, z)
					assert.LessOrEqual(t, v, 1.0, "cell (%d, %d) should be <= 1", x, z)
				}
			}

			assert.Equal(t, 1.0, grid.Max(), "at least one cell should equal exactly 1 after normalization")
		})
	}
}

func TestGenerator_Generate_ZeroOctaves(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	generator := NewGenerator(noise.NewGenerator(12345))
	params := defaultParams()
	params.Octaves = 0

	grid, err := generator.Generate(16, params)
	require.NoError(t, err)

	// All-zero accumulation must skip normalization instead of dividing by zero.
	for z := 0; z < 16; z++ {
		for x := 0; x < 16; x++ {
			assert.Equal(t, 0.0, grid.At(x, z), "cell (%d, %d) should be exactly 0", x, z)
		}
	}
}

func TestGenerator_Generate_ZeroPersistenceMatchesSingleOctave(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	// With persistence 0 every layer past octave 0 is scaled by 0^k, so the
	// multi-octave path must degenerate to the single-octave result.
	single := Params{Step: 0.03, Octaves: 1, Lacunarity: 2, Persistence: 0.5}
	degenerate := Params{Step: 0.03, Octaves: 4, Lacunarity: 2, Persistence: 0}

	genA := NewGenerator(noise.NewGenerator(777))
	genB := NewGenerator(noise.NewGenerator(777))

	gridA, err := genA.Generate(33, single)
	require.NoError(t, err)
	gridB, err := genB.Generate(33, degenerate)
	require.NoError(t, err)

	for z := 0; z < 33; z++ {
		for x := 0; x < 33; x++ {
			assert.Equal(t, gridA.At(x, z), gridB.At(x, z), "cell (%d, %d) should match", x, z)
		}
	}
}

func TestGenerator_Generate_SingleOctaveIsNormalizedNoise(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	params := Params{Step: 0.04, Octaves: 1, Lacunarity: 2, Persistence: 0.5}
	generator := NewGenerator(noise.NewGenerator(99))
	grid, err := generator.Generate(17, params)
	require.NoError(t, err)

	// Reproduce the expected grid directly from the noise source.
	reference := noise.NewGenerator(99)
	raw := make([]float64, 17*17)
	max := 0.0
	for z := 0; z < 17; z++ {
		for x := 0; x < 17; x++ {
			v := reference.Noise01(params.Step*float64(x), params.Step*float64(z))
			raw[z*17+x] = v
			if v > max {
				max = v
			}
		}
	}
	require.Greater(t, max, 0.0)

	for z := 0; z < 17; z++ {
		for x := 0; x < 17; x++ {
			assert.Equal(t, raw[z*17+x]/max, grid.At(x, z), "cell (%d, %d)", x, z)
		}
	}
}

func TestGenerator_Generate_Determinism(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	params := defaultParams()

	genA := NewGenerator(noise.NewGenerator(4242))
	genB := NewGenerator(noise.NewGenerator(4242))

	gridA, err := genA.Generate(65, params)
	require.NoError(t, err)
	gridB, err := genB.Generate(65, params)
	require.NoError(t, err)

	for z := 0; z < 65; z++ {
		for x := 0; x < 65; x++ {
			assert.Equal(t, gridA.At(x, z), gridB.At(x, z),
				"regeneration with identical seed and params should be bit-identical at (%d, %d)", x, z)
		}
	}
}

func TestGenerator_Generate_ParallelMatchesSerial(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	params := defaultParams()

	serial := NewGenerator(noise.NewGenerator(31337))
	serial.SetWorkers(1)
	parallel := NewGenerator(noise.NewGenerator(31337))
	parallel.SetWorkers(8)

	gridA, err := serial.Generate(64, params)
	require.NoError(t, err)
	gridB, err := parallel.Generate(64, params)
	require.NoError(t, err)

	for z := 0; z < 64; z++ {
		for x := 0; x < 64; x++ {
			assert.Equal(t, gridA.At(x, z), gridB.At(x, z),
				"parallel generation should be bit-identical to serial at (%d, %d)", x, z)
		}
	}
}

func TestGenerator_Generate_InvalidInputs(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	tests := []struct {
		name       string
		resolution int
		params     Params
	}{
		{name: "zero resolution", resolution: 0, params: defaultParams()},
		{name: "negative resolution", resolution: -4, params: defaultParams()},
		{name: "negative octaves", resolution: 16, params: Params{Octaves: -1, Lacunarity: 2}},
		{name: "zero lacunarity with octaves", resolution: 16, params: Params{Octaves: 3, Lacunarity: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := NewGenerator(noise.NewGenerator(1))
			grid, err := generator.Generate(tt.resolution, tt.params)
			assert.Error(t, err)
			assert.Nil(t, grid)
		})
	}
}

func BenchmarkGenerator_Generate(b *testing.B) {
	generator := NewGenerator(noise.NewGenerator(12345))
	params := defaultParams()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := generator.Generate(129, params); err != nil {
			b.Fatal(err)
		}
	}
}
