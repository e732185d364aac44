package geometry

import (
	"math"

	"github.com/richard-dennehy/gotracer/pkg/core"
)

// AABB represents an axis-aligned bounding box. The empty box has
// Min = +Inf and Max = -Inf so that adding the first point works without
// special cases.
type AABB struct {
	Min core.Point
	Max core.Point
}

// NewAABB creates a box from min and max corners
func NewAABB(min, max core.Point) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns the empty box, the identity for Union and Add
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: core.NewPoint(inf, inf, inf),
		Max: core.NewPoint(-inf, -inf, -inf),
	}
}

// Add returns the box grown to contain the given point
func (b AABB) Add(p core.Point) AABB {
	return AABB{
		Min: core.NewPoint(math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)),
		Max: core.NewPoint(math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)),
	}
}

// Union returns a box that bounds both this box and another
func (b AABB) Union(other AABB) AABB {
	return b.Add(other.Min).Add(other.Max)
}

// Contains reports whether the point lies inside the box
func (b AABB) Contains(p core.Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ContainsBox reports whether other lies entirely inside the box
func (b AABB) ContainsBox(other AABB) bool {
	return b.Contains(other.Min) && b.Contains(other.Max)
}

// Transform returns the box bounding all 8 transformed corners. The result
// is axis-aligned in the target space, so it may be looser than the
// original box.
func (b AABB) Transform(m core.Matrix) AABB {
	corners := [8]core.Point{
		b.Min,
		core.NewPoint(b.Min.X, b.Min.Y, b.Max.Z),
		core.NewPoint(b.Min.X, b.Max.Y, b.Min.Z),
		core.NewPoint(b.Min.X, b.Max.Y, b.Max.Z),
		core.NewPoint(b.Max.X, b.Min.Y, b.Min.Z),
		core.NewPoint(b.Max.X, b.Min.Y, b.Max.Z),
		core.NewPoint(b.Max.X, b.Max.Y, b.Min.Z),
		b.Max,
	}

	result := EmptyAABB()
	for _, corner := range corners {
		p := m.MulPoint(corner)
		// Rotating an infinite box produces 0 * Inf = NaN corners; fall
		// back to the infinite box, which culls nothing
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z) {
			inf := math.Inf(1)
			return AABB{
				Min: core.NewPoint(-inf, -inf, -inf),
				Max: core.NewPoint(inf, inf, inf),
			}
		}
		result = result.Add(p)
	}
	return result
}

// IntersectedBy tests the ray against the box using the slab method.
// This is a pure culling test: it reports possible intersection without
// computing t values.
func (b AABB) IntersectedBy(ray core.Ray) bool {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		var min, max, origin, direction float64
		switch axis {
		case 0:
			min, max, origin, direction = b.Min.X, b.Max.X, ray.Origin.X, ray.Direction.X
		case 1:
			min, max, origin, direction = b.Min.Y, b.Max.Y, ray.Origin.Y, ray.Direction.Y
		case 2:
			min, max, origin, direction = b.Min.Z, b.Max.Z, ray.Origin.Z, ray.Direction.Z
		}

		if math.Abs(direction) < 1e-12 {
			// Parallel to this slab: the origin must lie within it
			if origin < min || origin > max {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (min - origin) * invDirection
		t2 := (max - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}
