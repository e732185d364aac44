package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/richard-dennehy/gotracer/log"
	"github.com/richard-dennehy/gotracer/pkg/core"
	"github.com/richard-dennehy/gotracer/pkg/material"
)

var logger = log.New("loaders")

// LoadTexture reads an image file (PNG, JPEG, BMP or TIFF, detected from
// the file header) and converts it into a texture sampling with the given
// filter.
func LoadTexture(filename string, filter material.Filter) (*material.ImageTexture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %q: %w", filename, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 channels in [0, 65535]
			pixels[y*width+x] = core.NewColor(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	logger.Debugf("loaded %s texture %q (%dx%d)", format, filename, width, height)

	texture := material.NewImageTexture(width, height, pixels)
	texture.Filter = filter
	return texture, nil
}
