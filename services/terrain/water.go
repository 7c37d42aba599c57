package terrain

// Vec3 is a world-space position or scale.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// WaterPlane describes a flat plane covering the terrain's horizontal extent
// at the configured water level.
type WaterPlane struct {
	Center Vec3
	Scale  Vec3
}

// ComputeWaterPlane positions the plane at the terrain's horizontal center,
// at WaterLevel * Size.Height vertically, scaled to cover the full extent.
func ComputeWaterPlane(cfg Config) WaterPlane {
	return WaterPlane{
		Center: Vec3{
			X: cfg.Size.Width / 2,
			Y: cfg.WaterLevel * cfg.Size.Height,
			Z: cfg.Size.Length / 2,
		},
		Scale: Vec3{
			X: cfg.Size.Width,
			Y: 1,
			Z: cfg.Size.Length,
		},
	}
}

// Bounds is an axis-aligned box around the terrain, for visualization tooling.
type Bounds struct {
	Min Vec3
	Max Vec3
}

// ComputeBounds returns the terrain's axis-aligned bounds. This is a query
// for debug drawing only; nothing in the generation path depends on it.
func ComputeBounds(cfg Config) Bounds {
	return Bounds{
		Min: Vec3{X: 0, Y: 0, Z: 0},
		Max: Vec3{X: cfg.Size.Width, Y: cfg.Size.Height, Z: cfg.Size.Length},
	}
}
