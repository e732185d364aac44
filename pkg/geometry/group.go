package geometry

import (
	"fmt"

	"github.com/richard-dennehy/gotracer/pkg/core"
)

// Group is a composite shape holding child objects. Its bounding box is
// the union of the children's boxes, cached bottom-up, which lets a
// single slab test cull the whole subtree.
type Group struct {
	children    []*Object
	bounds      AABB
	boundsValid bool
}

// NewGroup creates a group object containing the given children
func NewGroup(children ...*Object) *Object {
	group := &Group{}
	o := NewObject(group)
	for _, child := range children {
		child.parent = o
		group.children = append(group.children, child)
	}
	return o
}

// AddChild adds a child object to a group object. Returns an error when
// called on a non-group object.
func (o *Object) AddChild(child *Object) error {
	group, ok := o.shape.(*Group)
	if !ok {
		return fmt.Errorf("cannot add child to %T", o.shape)
	}
	child.parent = o
	group.children = append(group.children, child)
	o.invalidateBounds()
	return nil
}

// Children returns the group's child objects, or nil for other shapes
func (o *Object) Children() []*Object {
	if group, ok := o.shape.(*Group); ok {
		return group.children
	}
	return nil
}

// localIntersect dispatches the group-local ray to every child and
// concatenates the results, sorted by t. The cull flag propagates so each
// child's own box can reject the ray before its shape test runs.
func (g *Group) localIntersect(ray core.Ray, cull bool) []Intersection {
	var xs []Intersection
	for _, child := range g.children {
		xs = append(xs, child.Intersect(ray, cull)...)
	}
	sortIntersections(xs)
	return xs
}

// LocalIntersect satisfies Shape for callers that test a group directly;
// the Object wrapper routes through localIntersect to thread the culling
// flag.
func (g *Group) LocalIntersect(ray core.Ray) []Intersection {
	return g.localIntersect(ray, false)
}

// LocalNormalAt is never meaningful for a group: normals always come from
// the child that was actually hit.
func (g *Group) LocalNormalAt(core.Point, Intersection) core.Vector {
	panic("group has no surface normal; normals come from intersected children")
}

// BoundingBox returns the cached union of the children's parent-space
// boxes. An empty group yields the empty box, which no ray intersects.
func (g *Group) BoundingBox() AABB {
	if !g.boundsValid {
		bounds := EmptyAABB()
		for _, child := range g.children {
			bounds = bounds.Union(child.Bounds())
		}
		g.bounds = bounds
		g.boundsValid = true
	}
	return g.bounds
}
