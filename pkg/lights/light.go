package lights

import (
	"math/rand"

	"github.com/richard-dennehy/gotracer/pkg/core"
)

// Sample is one virtual point-light position with its contribution weight.
// Point lights have a single sample of weight 1; area lights spread unit
// weight over a grid.
type Sample struct {
	Position core.Point
	Weight   float64
}

// Light is anything that can illuminate a surface point. Samples must be
// safe to call concurrently: the render loop shades pixels in parallel.
type Light interface {
	// Intensity returns the light's colour
	Intensity() core.Color
	// Samples returns the light's sample positions and weights
	Samples() []Sample
}

// PointLight is a single-position light source
type PointLight struct {
	Position core.Point
	Color    core.Color
}

// NewPointLight creates a point light
func NewPointLight(position core.Point, intensity core.Color) *PointLight {
	return &PointLight{Position: position, Color: intensity}
}

// Intensity returns the light's colour
func (l *PointLight) Intensity() core.Color {
	return l.Color
}

// Samples returns the single sample at the light's position
func (l *PointLight) Samples() []Sample {
	return []Sample{{Position: l.Position, Weight: 1}}
}

// AreaLight is a rectangle of virtual point lights: a corner plus two
// edge vectors divided into a USteps x VSteps grid. Partial occlusion of
// the grid is what produces soft shadow edges.
type AreaLight struct {
	Corner core.Point
	// UVec and VVec span one grid cell (the full edge divided by steps)
	UVec   core.Vector
	VVec   core.Vector
	USteps int
	VSteps int
	Color  core.Color

	jitter bool
	seed   int64
}

// NewAreaLight creates an area light over the rectangle spanned by two
// full edge vectors from the corner, sampled on a uSteps x vSteps grid.
// Without jitter each sample sits at its cell midpoint, which makes a
// 1x1 grid equivalent to a point light at the rectangle centre.
func NewAreaLight(corner core.Point, fullUVec core.Vector, uSteps int, fullVVec core.Vector, vSteps int, intensity core.Color) *AreaLight {
	if uSteps < 1 {
		uSteps = 1
	}
	if vSteps < 1 {
		vSteps = 1
	}
	return &AreaLight{
		Corner: corner,
		UVec:   fullUVec.Scale(1 / float64(uSteps)),
		VVec:   fullVVec.Scale(1 / float64(vSteps)),
		USteps: uSteps,
		VSteps: vSteps,
		Color:  intensity,
	}
}

// WithJitter enables jittered sampling with the given seed. The jitter
// sequence is regenerated from the seed on every Samples call, so sample
// positions are deterministic and the method stays safe for concurrent
// use by render workers.
func (l *AreaLight) WithJitter(seed int64) *AreaLight {
	l.jitter = true
	l.seed = seed
	return l
}

// Intensity returns the light's colour
func (l *AreaLight) Intensity() core.Color {
	return l.Color
}

// Samples returns the grid of sample positions, each weighted by
// 1/(USteps*VSteps)
func (l *AreaLight) Samples() []Sample {
	weight := 1 / float64(l.USteps*l.VSteps)
	samples := make([]Sample, 0, l.USteps*l.VSteps)

	var rng *rand.Rand
	if l.jitter {
		rng = rand.New(rand.NewSource(l.seed))
	}

	for v := 0; v < l.VSteps; v++ {
		for u := 0; u < l.USteps; u++ {
			uFrac, vFrac := 0.5, 0.5
			if rng != nil {
				uFrac, vFrac = rng.Float64(), rng.Float64()
			}
			position := l.Corner.
				Add(l.UVec.Scale(float64(u) + uFrac)).
				Add(l.VVec.Scale(float64(v) + vFrac))
			samples = append(samples, Sample{Position: position, Weight: weight})
		}
	}
	return samples
}
