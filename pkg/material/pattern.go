package material

import (
	"math"

	"github.com/richard-dennehy/gotracer/pkg/core"
)

// Pattern produces a colour for a point in pattern space. Callers are
// responsible for converting world points to pattern space first: the
// pattern's own transform composes independently of the owning object's
// transform, so textures can be scaled or offset without moving the object.
type Pattern interface {
	// LocalColorAt evaluates the pattern at a pattern-space point
	LocalColorAt(p core.Point) core.Color
	// InverseTransform returns the cached inverse of the pattern transform
	InverseTransform() core.Matrix
}

// base carries the transform shared by all pattern kinds.
type base struct {
	transform core.Matrix
	inverse   core.Matrix
}

func newBase() base {
	return base{transform: core.Identity(), inverse: core.Identity()}
}

// SetTransform replaces the pattern transform, caching its inverse
func (b *base) SetTransform(m core.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return err
	}
	b.transform = m
	b.inverse = inverse
	return nil
}

// Transform returns the pattern transform
func (b *base) Transform() core.Matrix {
	return b.transform
}

// InverseTransform returns the cached inverse of the pattern transform
func (b *base) InverseTransform() core.Matrix {
	return b.inverse
}

// Solid is a single uniform colour
type Solid struct {
	base
	Color core.Color
}

// NewSolid creates a pattern with a single uniform colour
func NewSolid(c core.Color) *Solid {
	return &Solid{base: newBase(), Color: c}
}

// LocalColorAt returns the solid colour regardless of position
func (s *Solid) LocalColorAt(core.Point) core.Color {
	return s.Color
}

// Stripe alternates between two colours along the x axis
type Stripe struct {
	base
	A, B core.Color
}

// NewStripe creates a stripe pattern alternating between a and b
func NewStripe(a, b core.Color) *Stripe {
	return &Stripe{base: newBase(), A: a, B: b}
}

// LocalColorAt picks a colour by the floor of the x coordinate mod 2
func (s *Stripe) LocalColorAt(p core.Point) core.Color {
	if math.Mod(math.Floor(p.X), 2) == 0 {
		return s.A
	}
	return s.B
}

// Gradient blends linearly between two colours along the x axis
type Gradient struct {
	base
	A, B core.Color
}

// NewGradient creates a gradient pattern blending from a to b
func NewGradient(a, b core.Color) *Gradient {
	return &Gradient{base: newBase(), A: a, B: b}
}

// LocalColorAt interpolates using the fractional part of the x coordinate
func (g *Gradient) LocalColorAt(p core.Point) core.Color {
	distance := g.B.Sub(g.A)
	fraction := p.X - math.Floor(p.X)
	return g.A.Add(distance.Scale(fraction))
}
