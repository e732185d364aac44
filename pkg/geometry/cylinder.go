package geometry

import (
	"fmt"
	"math"

	"github.com/richard-dennehy/gotracer/pkg/core"
)

// Cylinder is the unit-radius cylinder around the local y axis, truncated
// to the open interval (Min, Max) in y, with optional end caps.
type Cylinder struct {
	Min    float64
	Max    float64
	Closed bool
}

// NewCylinder creates an infinite open cylinder object
func NewCylinder() *Object {
	return NewObject(Cylinder{Min: math.Inf(-1), Max: math.Inf(1)})
}

// NewBoundedCylinder creates a cylinder truncated to [min, max] in local
// y, optionally capped. A min above max is geometrically invalid and
// rejected at construction time.
func NewBoundedCylinder(min, max float64, closed bool) (*Object, error) {
	if min > max {
		return nil, fmt.Errorf("cylinder: min extent %g exceeds max extent %g: %w", min, max, ErrConstruction)
	}
	return NewObject(Cylinder{Min: min, Max: max, Closed: closed}), nil
}

// checkCap reports whether the ray at t lies within the unit-radius disc
func (c Cylinder) checkCap(ray core.Ray, t float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= 1
}

// intersectCaps appends crossings with the two end-cap discs
func (c Cylinder) intersectCaps(ray core.Ray, xs []Intersection) []Intersection {
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	// Lower cap, plane y = Min
	t := (c.Min - ray.Origin.Y) / ray.Direction.Y
	if c.checkCap(ray, t) {
		xs = append(xs, Intersection{T: t})
	}

	// Upper cap, plane y = Max
	t = (c.Max - ray.Origin.Y) / ray.Direction.Y
	if c.checkCap(ray, t) {
		xs = append(xs, Intersection{T: t})
	}
	return xs
}

// LocalIntersect solves the lateral-surface quadratic in x and z,
// restricts the roots to the y extent, then adds any cap crossings.
func (c Cylinder) LocalIntersect(ray core.Ray) []Intersection {
	var xs []Intersection

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if math.Abs(a) >= core.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			return nil
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		for _, t := range [2]float64{t0, t1} {
			y := ray.Origin.Y + t*ray.Direction.Y
			if c.Min < y && y < c.Max {
				xs = append(xs, Intersection{T: t})
			}
		}
	}

	return c.intersectCaps(ray, xs)
}

// LocalNormalAt distinguishes the caps from the lateral surface by the
// point's distance from the axis.
func (c Cylinder) LocalNormalAt(p core.Point, _ Intersection) core.Vector {
	dist := p.X*p.X + p.Z*p.Z

	if dist < 1 && p.Y >= c.Max-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < 1 && p.Y <= c.Min+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}
	return core.NewVector(p.X, 0, p.Z)
}

// BoundingBox spans the y extent, which may be infinite
func (c Cylinder) BoundingBox() AABB {
	return NewAABB(core.NewPoint(-1, c.Min, -1), core.NewPoint(1, c.Max, 1))
}
