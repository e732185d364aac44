package geometry

import (
	"math"

	"github.com/richard-dennehy/gotracer/pkg/core"
)

// Sphere is the unit sphere centred on the local-space origin. Size and
// placement come from the owning Object's transform.
type Sphere struct{}

// NewSphere creates a unit sphere object at the origin
func NewSphere() *Object {
	return NewObject(Sphere{})
}

// NewGlassSphere creates a sphere with a fully transparent glass material
func NewGlassSphere() *Object {
	o := NewObject(Sphere{})
	o.Material.Transparency = 1.0
	o.Material.RefractiveIndex = 1.5
	return o
}

// LocalIntersect solves the quadratic for the unit sphere. A tangent ray
// produces a double root; a ray originating inside yields one negative
// and one positive t.
func (Sphere) LocalIntersect(ray core.Ray) []Intersection {
	// Vector from the sphere centre (origin) to the ray origin
	oc := ray.Origin.Sub(core.Point{})

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return []Intersection{{T: t1}, {T: t2}}
}

// LocalNormalAt returns the vector from the centre to the point
func (Sphere) LocalNormalAt(p core.Point, _ Intersection) core.Vector {
	return p.Sub(core.Point{})
}

// BoundingBox returns the unit box
func (Sphere) BoundingBox() AABB {
	return NewAABB(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
}
