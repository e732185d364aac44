package renderer

import (
	"math"

	"github.com/richard-dennehy/gotracer/pkg/core"
)

// Camera maps pixel coordinates to world-space rays. The view plane sits
// at z = -1 in camera space; FieldOfView is the angle subtended by the
// wider of the two image dimensions.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	inverse    core.Matrix
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera for a hsize x vsize image with the given
// field of view and view transform. The transform must be invertible.
func NewCamera(hsize, vsize int, fieldOfView float64, transform core.Matrix) (*Camera, error) {
	inverse, err := transform.Inverse()
	if err != nil {
		return nil, err
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		inverse:     inverse,
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
		pixelSize:   halfWidth * 2 / float64(hsize),
	}, nil
}

// PixelSize returns the world-space edge length of one pixel on the view
// plane
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the world-space ray through pixel (px, py) at the
// sub-pixel offset (ox, oy), with offsets in [0, 1). Offset (0.5, 0.5) is
// the pixel centre.
func (c *Camera) RayForPixel(px, py int, ox, oy float64) core.Ray {
	xOffset := (float64(px) + ox) * c.pixelSize
	yOffset := (float64(py) + oy) * c.pixelSize

	// Camera space looks down -z with +x to the left, hence the flip
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MulPoint(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MulPoint(core.NewPoint(0, 0, 0))

	return core.Ray{
		Origin:    origin,
		Direction: pixel.Sub(origin).Normalize(),
	}
}
