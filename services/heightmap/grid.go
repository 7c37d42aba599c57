package heightmap

import "math"

// Grid is a square grid of normalized elevation values, one per vertex.
// Values are in [0, 1] once a generation pass has normalized them.
type Grid struct {
	resolution int
	cells      []float64
}

// NewGrid allocates a zeroed resolution x resolution grid.
func NewGrid(resolution int) *Grid {
	return &Grid{
		resolution: resolution,
		cells:      make([]float64, resolution*resolution),
	}
}

// Resolution returns the grid's side length in vertices.
func (g *Grid) Resolution() int {
	return g.resolution
}

// At returns the elevation at vertex (x, z). Row-major order, z is the row.
func (g *Grid) At(x, z int) float64 {
	return g.cells[z*g.resolution+x]
}

// Set stores an elevation at vertex (x, z).
func (g *Grid) Set(x, z int, v float64) {
	g.cells[z*g.resolution+x] = v
}

// Max returns the largest elevation in the grid.
func (g *Grid) Max() float64 {
	max := 0.0
	for _, v := range g.cells {
		if v > max {
			max = v
		}
	}
	return max
}

// Sample returns the bilinearly interpolated elevation at normalized
// coordinates (u, v) in [0, 1]. Coordinates outside the range are clamped.
func (g *Grid) Sample(u, v float64) float64 {
	u = clamp01(u)
	v = clamp01(v)

	fx := u * float64(g.resolution-1)
	fz := v * float64(g.resolution-1)

	x0 := int(math.Floor(fx))
	z0 := int(math.Floor(fz))
	x1 := x0 + 1
	z1 := z0 + 1
	if x1 > g.resolution-1 {
		x1 = g.resolution - 1
	}
	if z1 > g.resolution-1 {
		z1 = g.resolution - 1
	}

	tx := fx - float64(x0)
	tz := fz - float64(z0)

	bottom := g.At(x0, z0)*(1-tx) + g.At(x1, z0)*tx
	top := g.At(x0, z1)*(1-tx) + g.At(x1, z1)*tx
	return bottom*(1-tz) + top*tz
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
