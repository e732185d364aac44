package geometry

import "github.com/richard-dennehy/gotracer/pkg/core"

// Intersection records one crossing of a ray and an object. Negative t
// values are kept: they identify rays originating inside a surface, which
// the refraction code needs, even though they are never the visible hit.
type Intersection struct {
	T      float64
	Object *Object
	// Barycentric weights, only meaningful for smooth triangles
	U, V float64
}

// Shape is the uniform local-space protocol implemented by every
// primitive kind. All three operations work in the shape's own coordinate
// frame; the Object wrapper handles world-space conversion.
type Shape interface {
	// LocalIntersect returns every crossing of the local-space ray with
	// the shape, with T (and barycentric U/V where relevant) filled in.
	// The Object reference is attached by the wrapper.
	LocalIntersect(ray core.Ray) []Intersection
	// LocalNormalAt returns the surface normal at a local-space point.
	// The intersection that produced the point is passed through for
	// shapes whose normal depends on it.
	LocalNormalAt(p core.Point, hit Intersection) core.Vector
	// BoundingBox returns the shape's local-space axis-aligned box
	BoundingBox() AABB
}
