package geometry

import (
	"math"

	"github.com/richard-dennehy/gotracer/pkg/core"
)

// Plane is the infinite local-space x-z plane with normal +y.
type Plane struct{}

// NewPlane creates an x-z plane object
func NewPlane() *Object {
	return NewObject(Plane{})
}

// LocalIntersect returns the single crossing, or nothing for rays
// parallel to (including coplanar with) the plane.
func (Plane) LocalIntersect(ray core.Ray) []Intersection {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	t := -ray.Origin.Y / ray.Direction.Y
	return []Intersection{{T: t}}
}

// LocalNormalAt returns +y everywhere
func (Plane) LocalNormalAt(core.Point, Intersection) core.Vector {
	return core.NewVector(0, 1, 0)
}

// BoundingBox is infinite in x and z, flat in y
func (Plane) BoundingBox() AABB {
	inf := math.Inf(1)
	return NewAABB(core.NewPoint(-inf, 0, -inf), core.NewPoint(inf, 0, inf))
}
