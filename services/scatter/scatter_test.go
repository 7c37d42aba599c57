package scatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvalenta/terrainforge/internal/testutil"
)

func testBounds() Rect {
	return Rect{MinX: 0, MinZ: 0, MaxX: 100, MaxZ: 80}
}

func TestUniformRect(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	t.Run("points stay inside bounds", func(t *testing.T) {
		points, err := UniformRect(42, 200, testBounds())
		require.NoError(t, err)
		require.Len(t, points, 200)

		for i, p := range points {
			assert.True(t, testBounds().Contains(p), "point %d (%+v) should be inside bounds", i, p)
		}
	})

	t.Run("deterministic under a fixed seed", func(t *testing.T) {
		a, err := UniformRect(7, 50, testBounds())
		require.NoError(t, err)
		b, err := UniformRect(7, 50, testBounds())
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("different seeds differ", func(t *testing.T) {
		a, err := UniformRect(1, 50, testBounds())
		require.NoError(t, err)
		b, err := UniformRect(2, 50, testBounds())
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("zero points", func(t *testing.T) {
		points, err := UniformRect(1, 0, testBounds())
		require.NoError(t, err)
		assert.Empty(t, points)
	})

	t.Run("negative count rejected", func(t *testing.T) {
		_, err := UniformRect(1, -1, testBounds())
		assert.Error(t, err)
	})

	t.Run("degenerate bounds rejected", func(t *testing.T) {
		_, err := UniformRect(1, 10, Rect{MinX: 5, MaxX: 5, MinZ: 0, MaxZ: 10})
		assert.Error(t, err)
	})
}

func TestUniformDisc(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	center := Point{X: 50, Z: 50}

	t.Run("points stay inside the disc", func(t *testing.T) {
		points, err := UniformDisc(42, 200, center, 10)
		require.NoError(t, err)

		for i, p := range points {
			assert.LessOrEqual(t, distance(p, center), 10.0, "point %d should be within the radius", i)
		}
	})

	t.Run("deterministic under a fixed seed", func(t *testing.T) {
		a, err := UniformDisc(9, 30, center, 5)
		require.NoError(t, err)
		b, err := UniformDisc(9, 30, center, 5)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("non-positive radius rejected", func(t *testing.T) {
		_, err := UniformDisc(1, 10, center, 0)
		assert.Error(t, err)
	})
}

func TestClusters(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	params := ClusterParams{
		Seed:              1234,
		Bounds:            testBounds(),
		MaxClusters:       8,
		MinCenterDistance: 10,
		MembersMin:        2,
		MembersMax:        5,
		Spread:            3,
	}

	t.Run("centers respect the minimum distance", func(t *testing.T) {
		clusters, err := Clusters(params)
		require.NoError(t, err)
		require.NotEmpty(t, clusters)

		for i := range clusters {
			for j := i + 1; j < len(clusters); j++ {
				d := distance(clusters[i].Center, clusters[j].Center)
				assert.GreaterOrEqual(t, d, params.MinCenterDistance,
					"clusters %d and %d are too close", i, j)
			}
		}
	})

	t.Run("member counts stay within bounds", func(t *testing.T) {
		clusters, err := Clusters(params)
		require.NoError(t, err)

		for i, c := range clusters {
			assert.GreaterOrEqual(t, len(c.Members), params.MembersMin, "cluster %d", i)
			assert.LessOrEqual(t, len(c.Members), params.MembersMax, "cluster %d", i)
			for j, m := range c.Members {
				assert.True(t, params.Bounds.Contains(m), "member %d of cluster %d (%+v) should be inside bounds", j, i, m)
			}
		}
	})

	t.Run("deterministic under a fixed seed", func(t *testing.T) {
		a, err := Clusters(params)
		require.NoError(t, err)
		b, err := Clusters(params)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("saturated region stops early instead of looping", func(t *testing.T) {
		crowded := params
		crowded.MaxClusters = 1000
		crowded.MinCenterDistance = 60

		clusters, err := Clusters(crowded)
		require.NoError(t, err)
		assert.Less(t, len(clusters), 1000, "rejection sampling must give up once the region is saturated")
	})

	t.Run("invalid member bounds rejected", func(t *testing.T) {
		bad := params
		bad.MembersMin = 5
		bad.MembersMax = 2
		_, err := Clusters(bad)
		assert.Error(t, err)
	})

	t.Run("zero clusters", func(t *testing.T) {
		none := params
		none.MaxClusters = 0
		clusters, err := Clusters(none)
		require.NoError(t, err)
		assert.Empty(t, clusters)
	})
}
