package renderer

import (
	"image"
	"image/color"

	"github.com/richard-dennehy/gotracer/pkg/core"
)

// Canvas is the render target: a row-major buffer of linear, unclamped
// RGB values. Clamping and quantisation happen only on export.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// SetPixel writes a pixel; coordinates outside the canvas are ignored
func (c *Canvas) SetPixel(x, y int, col core.Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.pixels[y*c.Width+x] = col
}

// PixelAt reads a pixel; coordinates outside the canvas read black
func (c *Canvas) PixelAt(x, y int) core.Color {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return core.Black
	}
	return c.pixels[y*c.Width+x]
}

// ToImage converts the canvas to an 8-bit RGBA image, clamping each
// channel to [0, 1]
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.pixels[y*c.Width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: quantise(p.R),
				G: quantise(p.G),
				B: quantise(p.B),
				A: 255,
			})
		}
	}
	return img
}

func quantise(channel float64) uint8 {
	if channel <= 0 {
		return 0
	}
	if channel >= 1 {
		return 255
	}
	return uint8(channel*255 + 0.5)
}
