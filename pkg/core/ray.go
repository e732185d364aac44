package core

import "errors"

// ErrInvalidRay is returned when a ray is constructed with a zero-length
// direction; such a ray has no positions and cannot be intersected.
var ErrInvalidRay = errors.New("ray direction must be non-zero")

// Ray represents a ray with an origin and direction. Internal code builds
// rays from directions that are non-zero by construction and uses the
// struct literal form; NewRay validates externally supplied directions.
type Ray struct {
	Origin    Point
	Direction Vector
}

// NewRay creates a new ray, rejecting a zero-length direction
func NewRay(origin Point, direction Vector) (Ray, error) {
	if direction.X == 0 && direction.Y == 0 && direction.Z == 0 {
		return Ray{}, ErrInvalidRay
	}
	return Ray{Origin: origin, Direction: direction}, nil
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) Point {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform returns the ray with origin and direction transformed by m.
// The direction is deliberately not renormalised: scaling transforms
// encode their scale in the direction length so that t values measured in
// the local frame carry back to the world frame unchanged.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MulPoint(r.Origin),
		Direction: m.MulVector(r.Direction),
	}
}
