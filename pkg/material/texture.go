package material

import (
	"math"

	"github.com/richard-dennehy/gotracer/pkg/core"
)

// Filter selects how an image texture is sampled
type Filter int

const (
	// Nearest snaps UV coordinates to the closest texel
	Nearest Filter = iota
	// Bilinear blends the four texels surrounding the UV coordinate
	Bilinear
)

// UVMapping converts a pattern-space point to 2D texture coordinates in [0, 1)
type UVMapping func(p core.Point) (u, v float64)

// SphericalMap maps a point on the unit sphere to UV via spherical coordinates
func SphericalMap(p core.Point) (float64, float64) {
	// Azimuthal angle, -pi..pi, measured from the -z axis
	theta := math.Atan2(p.X, p.Z)

	radius := p.Sub(core.Point{}).Magnitude()
	if radius == 0 {
		return 0, 0
	}

	// Polar angle, 0 at the south pole
	phi := math.Acos(p.Y / radius)

	u := 1 - (theta/(2*math.Pi) + 0.5)
	v := 1 - phi/math.Pi
	return u, v
}

// PlanarMap maps a point onto the x-z plane, tiling every unit
func PlanarMap(p core.Point) (float64, float64) {
	u := p.X - math.Floor(p.X)
	v := p.Z - math.Floor(p.Z)
	return u, v
}

// ImageTexture is a fixed row-major buffer of linear colours sampled by UV
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Color // Pixels[y*Width + x]
	Filter Filter
}

// NewImageTexture creates a texture over an existing pixel buffer
func NewImageTexture(width, height int, pixels []core.Color) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels, Filter: Nearest}
}

// ColorAtUV samples the texture at (u, v), with v = 0 at the bottom edge
func (t *ImageTexture) ColorAtUV(u, v float64) core.Color {
	// Wrap UV outside [0, 1]; exactly 1 stays at the far edge
	if u < 0 || u > 1 {
		u -= math.Floor(u)
	}
	if v < 0 || v > 1 {
		v -= math.Floor(v)
	}

	// Flip v: image rows run top to bottom
	fx := u * float64(t.Width-1)
	fy := (1 - v) * float64(t.Height-1)

	if t.Filter == Nearest {
		return t.texel(int(math.Round(fx)), int(math.Round(fy)))
	}

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	top := t.texel(x0, y0).Scale(1 - dx).Add(t.texel(x0+1, y0).Scale(dx))
	bottom := t.texel(x0, y0+1).Scale(1 - dx).Add(t.texel(x0+1, y0+1).Scale(dx))
	return top.Scale(1 - dy).Add(bottom.Scale(dy))
}

func (t *ImageTexture) texel(x, y int) core.Color {
	if x < 0 {
		x = 0
	} else if x >= t.Width {
		x = t.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.Height {
		y = t.Height - 1
	}
	return t.Pixels[y*t.Width+x]
}

// TextureMap samples an image texture through a shape-specific UV mapping
type TextureMap struct {
	base
	Texture *ImageTexture
	Mapping UVMapping
}

// NewTextureMap creates a UV-mapped image pattern
func NewTextureMap(texture *ImageTexture, mapping UVMapping) *TextureMap {
	return &TextureMap{base: newBase(), Texture: texture, Mapping: mapping}
}

// LocalColorAt maps the pattern-space point to UV and samples the texture
func (tm *TextureMap) LocalColorAt(p core.Point) core.Color {
	u, v := tm.Mapping(p)
	return tm.Texture.ColorAtUV(u, v)
}
