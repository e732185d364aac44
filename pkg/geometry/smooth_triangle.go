package geometry

import "github.com/richard-dennehy/gotracer/pkg/core"

// SmoothTriangle intersects like a flat triangle but interpolates the
// normal across per-vertex normals using the barycentric weights captured
// at intersection time. This is what makes low-poly meshes shade as if
// they were curved.
type SmoothTriangle struct {
	Triangle
	N1, N2, N3 core.Vector
}

// NewSmoothTriangle creates a triangle object with per-vertex normals
func NewSmoothTriangle(p1, p2, p3 core.Point, n1, n2, n3 core.Vector) (*Object, error) {
	flat, err := newTriangleShape(p1, p2, p3)
	if err != nil {
		return nil, err
	}
	return NewObject(SmoothTriangle{
		Triangle: flat,
		N1:       n1.Normalize(),
		N2:       n2.Normalize(),
		N3:       n3.Normalize(),
	}), nil
}

// LocalIntersect records the barycentric weights alongside t
func (t SmoothTriangle) LocalIntersect(ray core.Ray) []Intersection {
	tHit, u, v, ok := t.intersectBarycentric(ray)
	if !ok {
		return nil
	}
	return []Intersection{{T: tHit, U: u, V: v}}
}

// LocalNormalAt blends the vertex normals by the hit's barycentric
// weights: n2 weighted by u, n3 by v, n1 by the remainder.
func (t SmoothTriangle) LocalNormalAt(_ core.Point, hit Intersection) core.Vector {
	blended := t.N2.Scale(hit.U).
		Add(t.N3.Scale(hit.V)).
		Add(t.N1.Scale(1 - hit.U - hit.V))
	return blended.Normalize()
}
