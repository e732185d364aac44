package core

import (
	"errors"
	"math"
)

// ErrSingularMatrix is returned when a matrix cannot be inverted. A
// singular transform makes an object unusable for rendering, so callers
// surface this at scene-construction time instead of panicking.
var ErrSingularMatrix = errors.New("matrix is singular and cannot be inverted")

// Matrix is a 4x4 affine transformation matrix, row-major.
type Matrix [4][4]float64

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns the matrix product m * other. Composing transforms
// multiplies them in reverse order of application.
func (m Matrix) Mul(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MulPoint applies the transform to a point (homogeneous w = 1), so the
// translation column participates.
func (m Matrix) MulPoint(p Point) Point {
	return Point{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// MulVector applies the transform to a vector (homogeneous w = 0), so
// vectors are translation-invariant by construction.
func (m Matrix) MulVector(v Vector) Vector {
	return Vector{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// submatrix returns the 3x3 matrix left after removing the given row and column
func (m Matrix) submatrix(dropRow, dropCol int) [3][3]float64 {
	var result [3][3]float64
	outRow := 0
	for row := 0; row < 4; row++ {
		if row == dropRow {
			continue
		}
		outCol := 0
		for col := 0; col < 4; col++ {
			if col == dropCol {
				continue
			}
			result[outRow][outCol] = m[row][col]
			outCol++
		}
		outRow++
	}
	return result
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// cofactor returns the signed minor for the given element
func (m Matrix) cofactor(row, col int) float64 {
	minor := det3(m.submatrix(row, col))
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant via cofactor expansion along the first row
func (m Matrix) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.cofactor(0, col)
	}
	return det
}

// Inverse returns the inverse of the matrix using the cofactor/adjugate
// method, or ErrSingularMatrix if the determinant is zero.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return Matrix{}, ErrSingularMatrix
	}

	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// Note the transposed indices: adjugate = transpose of cofactors
			result[col][row] = m.cofactor(row, col) / det
		}
	}
	return result, nil
}

// Eq compares two matrices element-wise within Epsilon
func (m Matrix) Eq(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !FloatEq(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

// Translation returns a transform that moves points by (x, y, z)
func Translation(x, y, z float64) Matrix {
	return Matrix{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

// Scaling returns a transform that scales by (x, y, z)
func Scaling(x, y, z float64) Matrix {
	return Matrix{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// RotationX returns a transform rotating around the x axis by r radians
func RotationX(r float64) Matrix {
	sin, cos := math.Sin(r), math.Cos(r)
	return Matrix{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns a transform rotating around the y axis by r radians
func RotationY(r float64) Matrix {
	sin, cos := math.Sin(r), math.Cos(r)
	return Matrix{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns a transform rotating around the z axis by r radians
func RotationZ(r float64) Matrix {
	sin, cos := math.Sin(r), math.Cos(r)
	return Matrix{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Shearing returns a transform where each coordinate is sheared in
// proportion to the other two.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Matrix{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	}
}

// ViewTransform returns the transform that orients the world relative to
// a camera at from, looking at to, with the given approximate up vector.
func ViewTransform(from, to Point, up Vector) Matrix {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Mul(Translation(-from.X, -from.Y, -from.Z))
}
