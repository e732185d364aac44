package world

import (
	"math"

	"github.com/richard-dennehy/gotracer/pkg/core"
	"github.com/richard-dennehy/gotracer/pkg/geometry"
	"github.com/richard-dennehy/gotracer/pkg/lights"
)

const (
	// DefaultMaxDepth bounds the reflection/refraction recursion
	DefaultMaxDepth = 5
	// DefaultShadowBias is the offset applied along the surface normal to
	// keep secondary rays from re-intersecting their origin surface. Too
	// small causes shadow acne, too large causes visible light leaks.
	DefaultShadowBias = core.Epsilon
)

// World owns the objects and lights of a scene. It is immutable once a
// render pass starts, so render workers may share it freely.
type World struct {
	Objects []*geometry.Object
	Lights  []lights.Light

	// CullBounds enables bounding-box rejection before exact intersection
	// tests. It only ever changes how much work a ray does, never which
	// intersections it returns.
	CullBounds bool
	MaxDepth   int
	ShadowBias float64
}

// New creates an empty world with default recursion depth and shadow bias
func New() *World {
	return &World{
		CullBounds: true,
		MaxDepth:   DefaultMaxDepth,
		ShadowBias: DefaultShadowBias,
	}
}

// Intersect returns every intersection of the ray with the world's
// objects, sorted by ascending t
func (w *World) Intersect(ray core.Ray) Intersections {
	var xs Intersections
	for _, obj := range w.Objects {
		xs = append(xs, obj.Intersect(ray, w.CullBounds)...)
	}
	xs.Sort()
	return xs
}

// ColorAt resolves a ray to its final colour, recursing into reflections
// and refractions until remaining reaches zero. Rays that hit nothing
// resolve to black.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}
	comps := prepareComputations(hit, ray, xs, w.ShadowBias)
	return w.shadeHit(comps, remaining)
}

// shadeHit combines surface shading from every light with the reflected
// and refracted contributions
func (w *World) shadeHit(comps Computations, remaining int) core.Color {
	surface := core.Black
	for _, light := range w.Lights {
		occluded := func(lightPos core.Point) bool {
			return w.IsShadowed(comps.OverPoint, lightPos)
		}
		surface = surface.Add(lights.Lighting(comps.Object, light, comps.OverPoint, comps.Eye, comps.Normal, occluded))
	}

	reflected := w.reflectedColor(comps, remaining)
	refracted := w.refractedColor(comps, remaining)
	return surface.Add(reflected).Add(refracted)
}

// reflectedColor traces the reflection ray and scales the result by the
// material's reflectivity. Depth zero or a matte surface contributes
// nothing.
func (w *World) reflectedColor(comps Computations, remaining int) core.Color {
	reflective := comps.Object.Material.Reflective
	if remaining <= 0 || reflective == 0 {
		return core.Black
	}

	reflectRay := core.Ray{Origin: comps.OverPoint, Direction: comps.Reflect}
	return w.ColorAt(reflectRay, remaining-1).Scale(reflective)
}

// refractedColor traces the refraction ray through the surface via
// Snell's law. Total internal reflection contributes nothing.
func (w *World) refractedColor(comps Computations, remaining int) core.Color {
	transparency := comps.Object.Material.Transparency
	if remaining <= 0 || transparency == 0 {
		return core.Black
	}

	ratio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2T := ratio * ratio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.Normal.Scale(ratio*cosI - cosT).Sub(comps.Eye.Scale(ratio))
	refractRay := core.Ray{Origin: comps.UnderPoint, Direction: direction}
	return w.ColorAt(refractRay, remaining-1).Scale(transparency)
}

// IsShadowed reports whether anything shadow-casting blocks the segment
// from the point to the light sample position
func (w *World) IsShadowed(point core.Point, lightPos core.Point) bool {
	toLight := lightPos.Sub(point)
	distance := toLight.Magnitude()
	shadowRay := core.Ray{Origin: point, Direction: toLight.Normalize()}

	for _, obj := range w.Objects {
		for _, x := range obj.Intersect(shadowRay, w.CullBounds) {
			if x.T > 0 && x.T < distance && x.Object.Material.CastsShadow {
				return true
			}
		}
	}
	return false
}
