package geometry

import (
	"math"

	"github.com/richard-dennehy/gotracer/pkg/core"
)

// Cube is the local-space axis-aligned cube from (-1,-1,-1) to (1,1,1).
type Cube struct{}

// NewCube creates a unit cube object at the origin
func NewCube() *Object {
	return NewObject(Cube{})
}

// checkAxis intersects the ray component against one slab pair
func checkAxis(origin, direction float64) (float64, float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	var tMin, tMax float64
	if math.Abs(direction) >= core.Epsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = tMinNumerator * math.Inf(1)
		tMax = tMaxNumerator * math.Inf(1)
	}

	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

// LocalIntersect intersects the three slab intervals; a hit needs the
// combined interval to remain non-empty.
func (Cube) LocalIntersect(ray core.Ray) []Intersection {
	xtMin, xtMax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytMin, ytMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztMin, ztMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	if tMin > tMax {
		return nil
	}
	return []Intersection{{T: tMin}, {T: tMax}}
}

// LocalNormalAt picks the axis with the largest absolute component
func (Cube) LocalNormalAt(p core.Point, _ Intersection) core.Vector {
	maxC := math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Z)))

	switch maxC {
	case math.Abs(p.X):
		return core.NewVector(p.X, 0, 0)
	case math.Abs(p.Y):
		return core.NewVector(0, p.Y, 0)
	default:
		return core.NewVector(0, 0, p.Z)
	}
}

// BoundingBox returns the unit box
func (Cube) BoundingBox() AABB {
	return NewAABB(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
}
