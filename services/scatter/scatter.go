// Package scatter computes deterministic spawn positions for object groups.
// It only produces coordinates; instantiating objects at them is the host's
// concern.
package scatter

import (
	"fmt"
	"math"

	"github.com/dvalenta/terrainforge/internal/logging"
)

// Point is a position on the terrain's horizontal plane.
type Point struct {
	X float64
	Z float64
}

// Rect is an axis-aligned placement region on the horizontal plane.
type Rect struct {
	MinX float64
	MinZ float64
	MaxX float64
	MaxZ float64
}

// Contains reports whether p lies inside the region.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Z >= r.MinZ && p.Z <= r.MaxZ
}

func (r Rect) width() float64  { return r.MaxX - r.MinX }
func (r Rect) length() float64 { return r.MaxZ - r.MinZ }

// UniformRect places n points uniformly inside bounds. The same seed always
// yields the same points.
func UniformRect(seed int64, n int, bounds Rect) ([]Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("point count must be >= 0, got %d", n)
	}
	if bounds.width() <= 0 || bounds.length() <= 0 {
		return nil, fmt.Errorf("placement bounds must have positive extent, got %+v", bounds)
	}

	rnd := NewRandomGenerator(seed)
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: bounds.MinX + rnd.Float64()*bounds.width(),
			Z: bounds.MinZ + rnd.Float64()*bounds.length(),
		}
	}
	return points, nil
}

// UniformDisc places n points uniformly inside a disc. The radial coordinate
// uses a square root so density is even across the area, not bunched at the
// center.
func UniformDisc(seed int64, n int, center Point, radius float64) ([]Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("point count must be >= 0, got %d", n)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("disc radius must be positive, got %g", radius)
	}

	rnd := NewRandomGenerator(seed)
	points := make([]Point, n)
	for i := range points {
		angle := rnd.Float64() * 2 * math.Pi
		dist := math.Sqrt(rnd.Float64()) * radius
		points[i] = Point{
			X: center.X + math.Cos(angle)*dist,
			Z: center.Z + math.Sin(angle)*dist,
		}
	}
	return points, nil
}

// Cluster is a group of points spread around a shared center.
type Cluster struct {
	Center  Point
	Members []Point
}

// ClusterParams configures grouped placement.
type ClusterParams struct {
	Seed   int64
	Bounds Rect
	// MaxClusters caps the number of cluster centers.
	MaxClusters int
	// MinCenterDistance rejects centers closer than this to an accepted one.
	MinCenterDistance float64
	// MembersMin and MembersMax bound the member count per cluster, inclusive.
	MembersMin int
	MembersMax int
	// Spread is the standard deviation of member offsets around the center.
	Spread float64
}

func (p ClusterParams) validate() error {
	if p.MaxClusters < 0 {
		return fmt.Errorf("max clusters must be >= 0, got %d", p.MaxClusters)
	}
	if p.Bounds.width() <= 0 || p.Bounds.length() <= 0 {
		return fmt.Errorf("placement bounds must have positive extent, got %+v", p.Bounds)
	}
	if p.MembersMin < 1 || p.MembersMax < p.MembersMin {
		return fmt.Errorf("member bounds must satisfy 1 <= min <= max, got [%d, %d]", p.MembersMin, p.MembersMax)
	}
	if p.Spread < 0 {
		return fmt.Errorf("spread must be >= 0, got %g", p.Spread)
	}
	return nil
}

// candidatesPerCluster bounds the rejection sampling for each center.
const candidatesPerCluster = 16

// Clusters places groups of points inside bounds. Centers are drawn uniformly
// and rejected when closer than MinCenterDistance to an accepted center;
// members are normally distributed around their center and clamped to bounds.
// Deterministic under a fixed seed.
func Clusters(p ClusterParams) ([]Cluster, error) {
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid cluster params: %w", err)
	}

	logger := logging.WithSeed(p.Seed)
	rnd := NewRandomGenerator(p.Seed)

	clusters := make([]Cluster, 0, p.MaxClusters)
	for len(clusters) < p.MaxClusters {
		center, ok := pickCenter(rnd, p, clusters)
		if !ok {
			// Region is saturated at this minimum distance.
			break
		}

		memberCount := p.MembersMin
		if p.MembersMax > p.MembersMin {
			memberCount += rnd.Intn(p.MembersMax - p.MembersMin + 1)
		}

		members := make([]Point, memberCount)
		for i := range members {
			members[i] = clampToRect(Point{
				X: center.X + rnd.NormFloat64()*p.Spread,
				Z: center.Z + rnd.NormFloat64()*p.Spread,
			}, p.Bounds)
		}

		clusters = append(clusters, Cluster{Center: center, Members: members})
	}

	logger.Debug("Cluster placement completed", "clusters", len(clusters), "max_clusters", p.MaxClusters)
	return clusters, nil
}

// pickCenter draws candidate centers until one clears the minimum distance to
// every accepted center, giving up after a bounded number of attempts.
func pickCenter(rnd RandomGeneratorInterface, p ClusterParams, accepted []Cluster) (Point, bool) {
	for attempt := 0; attempt < candidatesPerCluster; attempt++ {
		candidate := Point{
			X: p.Bounds.MinX + rnd.Float64()*p.Bounds.width(),
			Z: p.Bounds.MinZ + rnd.Float64()*p.Bounds.length(),
		}

		tooClose := false
		for _, c := range accepted {
			if distance(candidate, c.Center) < p.MinCenterDistance {
				tooClose = true
				break
			}
		}
		if !tooClose {
			return candidate, true
		}
	}
	return Point{}, false
}

func distance(a, b Point) float64 {
	dx := a.X - b.X
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dz*dz)
}

func clampToRect(p Point, r Rect) Point {
	if p.X < r.MinX {
		p.X = r.MinX
	}
	if p.X > r.MaxX {
		p.X = r.MaxX
	}
	if p.Z < r.MinZ {
		p.Z = r.MinZ
	}
	if p.Z > r.MaxZ {
		p.Z = r.MaxZ
	}
	return p
}
