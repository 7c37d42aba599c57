package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/dvalenta/terrainforge/services/terrain"
)

// Layer tints cycle when the table has more layers than the palette.
var layerPalette = []color.RGBA{
	{R: 218, G: 198, B: 140, A: 255}, // sand
	{R: 110, G: 170, B: 90, A: 255},  // grass
	{R: 130, G: 130, B: 130, A: 255}, // rock
	{R: 240, G: 240, B: 245, A: 255}, // snow
	{R: 160, G: 120, B: 90, A: 255},  // dirt
}

var waterColor = color.RGBA{R: 60, G: 110, B: 200, A: 255}

// writePreview renders the splat map tinted by dominant layer and shaded by
// height, with cells under the water level drawn as water.
func writePreview(path string, result *terrain.Result, cfg terrain.Config) error {
	res := result.Splat.Resolution()
	img := image.NewRGBA(image.Rect(0, 0, res, res))

	denom := float64(res - 1)
	if res == 1 {
		denom = 1
	}

	for z := 0; z < res; z++ {
		for x := 0; x < res; x++ {
			h := result.Grid.Sample(float64(x)/denom, float64(z)/denom)

			var c color.RGBA
			if h < cfg.WaterLevel {
				c = waterColor
			} else {
				layer := result.Splat.DominantAt(x, z)
				c = layerPalette[layer%len(layerPalette)]
				// Shade by height so relief reads in the preview.
				shade := 0.6 + 0.4*h
				c.R = uint8(float64(c.R) * shade)
				c.G = uint8(float64(c.G) * shade)
				c.B = uint8(float64(c.B) * shade)
			}

			img.SetRGBA(x, z, c)
		}
	}

	return writePNG(path, img)
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
