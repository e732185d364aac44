package geometry

import (
	"sort"

	"github.com/richard-dennehy/gotracer/pkg/core"
	"github.com/richard-dennehy/gotracer/pkg/material"
)

// Object places a shape in the world: it pairs a Shape with a transform,
// a material, and a cached parent-space bounding box. The transform's
// inverse and inverse-transpose are cached at assignment time so the
// render loop never inverts a matrix.
type Object struct {
	shape            Shape
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	Material         material.Material

	parent      *Object
	bounds      AABB
	boundsValid bool
}

// NewObject wraps a shape with the identity transform and default material
func NewObject(shape Shape) *Object {
	return &Object{
		shape:            shape,
		transform:        core.Identity(),
		inverse:          core.Identity(),
		inverseTranspose: core.Identity(),
		Material:         material.Default(),
	}
}

// Shape returns the wrapped shape
func (o *Object) Shape() Shape {
	return o.shape
}

// Transform returns the object's transform
func (o *Object) Transform() core.Matrix {
	return o.transform
}

// Parent returns the enclosing group object, or nil for top-level objects
func (o *Object) Parent() *Object {
	return o.parent
}

// SetTransform replaces the object's transform, caching the inverse and
// inverse-transpose. A singular transform is rejected with
// core.ErrSingularMatrix.
func (o *Object) SetTransform(m core.Matrix) error {
	inverse, err := m.Inverse()
	if err != nil {
		return err
	}
	o.transform = m
	o.inverse = inverse
	o.inverseTranspose = inverse.Transpose()
	o.invalidateBounds()
	return nil
}

// Intersect returns every crossing of the world-space (or enclosing
// group's space) ray with this object. When cull is true the ray is
// slab-tested against the cached bounding box first; a miss skips the
// shape test entirely. Culling never changes the result set, only the
// work performed.
func (o *Object) Intersect(ray core.Ray, cull bool) []Intersection {
	if cull && !o.Bounds().IntersectedBy(ray) {
		return nil
	}

	local := ray.Transform(o.inverse)

	var xs []Intersection
	if group, ok := o.shape.(*Group); ok {
		xs = group.localIntersect(local, cull)
	} else {
		xs = o.shape.LocalIntersect(local)
	}

	for i := range xs {
		if xs[i].Object == nil {
			xs[i].Object = o
		}
	}
	return xs
}

// NormalAt computes the world-space surface normal at a world-space point
// on the object. The hit carries barycentric weights for smooth triangles.
func (o *Object) NormalAt(worldPoint core.Point, hit Intersection) core.Vector {
	localPoint := o.WorldToObject(worldPoint)
	localNormal := o.shape.LocalNormalAt(localPoint, hit)
	return o.NormalToWorld(localNormal)
}

// WorldToObject converts a world-space point to this object's local
// space, applying every enclosing group's inverse on the way down.
func (o *Object) WorldToObject(p core.Point) core.Point {
	if o.parent != nil {
		p = o.parent.WorldToObject(p)
	}
	return o.inverse.MulPoint(p)
}

// NormalToWorld converts a local-space normal to world space via the
// inverse-transpose at each level. The homogeneous component is zero by
// construction since Vector multiplication ignores translation.
func (o *Object) NormalToWorld(n core.Vector) core.Vector {
	n = o.inverseTranspose.MulVector(n).Normalize()
	if o.parent != nil {
		n = o.parent.NormalToWorld(n)
	}
	return n
}

// ColorAt evaluates the object's pattern at a world-space point:
// world -> object space via the object (and group) inverses, then
// object -> pattern space via the pattern's own inverse.
func (o *Object) ColorAt(worldPoint core.Point) core.Color {
	objectPoint := o.WorldToObject(worldPoint)
	pattern := o.Material.Pattern
	patternPoint := pattern.InverseTransform().MulPoint(objectPoint)
	return pattern.LocalColorAt(patternPoint)
}

// Bounds returns the object's bounding box in its parent's space (world
// space for top-level objects): the shape's local box with all 8 corners
// pushed through the object transform. The box is cached; scenes are
// assembled single-threaded before a render pass begins.
func (o *Object) Bounds() AABB {
	if !o.boundsValid {
		o.bounds = o.shape.BoundingBox().Transform(o.transform)
		o.boundsValid = true
	}
	return o.bounds
}

func (o *Object) invalidateBounds() {
	o.boundsValid = false
	if o.parent != nil {
		o.parent.invalidateBounds()
	}
	if group, ok := o.shape.(*Group); ok {
		group.boundsValid = false
	}
}

// sortIntersections orders intersections by ascending t. The sort is
// stable so that ties keep insertion order, giving hit selection a
// deterministic tie-break.
func sortIntersections(xs []Intersection) {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}
