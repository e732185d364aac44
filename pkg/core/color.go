package core

// Color represents a linear-space RGB colour. Components are unclamped;
// tone mapping happens at encoding time, outside the render loop.
type Color struct {
	R, G, B float64
}

// Common colours used by scene builders and tests.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colours
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Sub returns the difference of two colours
func (c Color) Sub(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Scale returns the colour scaled by a scalar
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Mul returns the Hadamard (component-wise) product of two colours
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Eq compares two colours within Epsilon
func (c Color) Eq(other Color) bool {
	return FloatEq(c.R, other.R) && FloatEq(c.G, other.G) && FloatEq(c.B, other.B)
}
