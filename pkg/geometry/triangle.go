package geometry

import (
	"fmt"
	"math"

	"github.com/richard-dennehy/gotracer/pkg/core"
)

// Triangle is a flat triangle with a face normal fixed at construction.
type Triangle struct {
	P1, P2, P3 core.Point
	// Cached edges and normal
	E1, E2 core.Vector
	Normal core.Vector
}

// newTriangleShape validates the vertices and precomputes edges and the
// face normal. Collinear or coincident vertices produce a zero-area
// triangle, which is rejected.
func newTriangleShape(p1, p2, p3 core.Point) (Triangle, error) {
	e1 := p2.Sub(p1)
	e2 := p3.Sub(p1)

	cross := e1.Cross(e2)
	if cross.Magnitude() < core.Epsilon {
		return Triangle{}, fmt.Errorf("triangle: vertices %v, %v, %v have zero area: %w", p1, p2, p3, ErrConstruction)
	}

	return Triangle{
		P1: p1, P2: p2, P3: p3,
		E1:     e1,
		E2:     e2,
		Normal: cross.Normalize(),
	}, nil
}

// NewTriangle creates a flat triangle object from three vertices
func NewTriangle(p1, p2, p3 core.Point) (*Object, error) {
	shape, err := newTriangleShape(p1, p2, p3)
	if err != nil {
		return nil, err
	}
	return NewObject(shape), nil
}

// intersectBarycentric runs the Möller-Trumbore test, returning t and the
// barycentric weights u, v when the ray crosses the triangle's interior.
func (t Triangle) intersectBarycentric(ray core.Ray) (float64, float64, float64, bool) {
	dirCrossE2 := ray.Direction.Cross(t.E2)
	determinant := t.E1.Dot(dirCrossE2)
	if math.Abs(determinant) < core.Epsilon {
		// Ray is parallel to the triangle's plane
		return 0, 0, 0, false
	}

	f := 1.0 / determinant
	p1ToOrigin := ray.Origin.Sub(t.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	originCrossE1 := p1ToOrigin.Cross(t.E1)
	v := f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	return f * t.E2.Dot(originCrossE1), u, v, true
}

// LocalIntersect returns the single crossing, if any
func (t Triangle) LocalIntersect(ray core.Ray) []Intersection {
	tHit, u, v, ok := t.intersectBarycentric(ray)
	if !ok {
		return nil
	}
	return []Intersection{{T: tHit, U: u, V: v}}
}

// LocalNormalAt returns the precomputed face normal
func (t Triangle) LocalNormalAt(core.Point, Intersection) core.Vector {
	return t.Normal
}

// BoundingBox bounds the three vertices
func (t Triangle) BoundingBox() AABB {
	return EmptyAABB().Add(t.P1).Add(t.P2).Add(t.P3)
}
