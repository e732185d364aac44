package core

import "math"

// Epsilon is the tolerance used for floating point comparisons throughout
// the tracer. Accumulated transform error makes exact equality useless.
const Epsilon = 1e-5

// FloatEq compares two floats within Epsilon.
func FloatEq(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Point represents a position in 3D space (homogeneous w = 1).
// Keeping points and vectors as distinct types makes translation
// type-safe: a Vector cannot accidentally be translated.
type Point struct {
	X, Y, Z float64
}

// Vector represents a direction and magnitude in 3D space (homogeneous w = 0).
type Vector struct {
	X, Y, Z float64
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// NewVector creates a new Vector
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns the point displaced by a vector
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the vector from other to p
func (p Point) Sub(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// SubVector returns the point displaced backwards by a vector
func (p Point) SubVector(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Eq compares two points within Epsilon
func (p Point) Eq(other Point) bool {
	return FloatEq(p.X, other.X) && FloatEq(p.Y, other.Y) && FloatEq(p.Z, other.Z)
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the difference of two vectors
func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Negate returns the vector pointing the opposite way
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Scale returns the vector scaled by a scalar
func (v Vector) Scale(scalar float64) Vector {
	return Vector{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Magnitude returns the length of the vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the same direction
func (v Vector) Normalize() Vector {
	length := v.Magnitude()
	if length == 0 {
		return Vector{0, 0, 0}
	}
	return Vector{v.X / length, v.Y / length, v.Z / length}
}

// Reflect returns the vector reflected about a surface normal
func (v Vector) Reflect(normal Vector) Vector {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// Eq compares two vectors within Epsilon
func (v Vector) Eq(other Vector) bool {
	return FloatEq(v.X, other.X) && FloatEq(v.Y, other.Y) && FloatEq(v.Z, other.Z)
}
