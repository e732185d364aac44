package geometry

import (
	"errors"
	"testing"

	"github.com/richard-dennehy/gotracer/pkg/core"
	"github.com/richard-dennehy/gotracer/pkg/material"
)

func TestObject_Defaults(t *testing.T) {
	obj := NewSphere()

	if !obj.Transform().Eq(core.Identity()) {
		t.Errorf("default transform = %v, want identity", obj.Transform())
	}
	if obj.Parent() != nil {
		t.Error("new object should have no parent")
	}
	if obj.Material.Ambient != 0.1 || !obj.Material.CastsShadow {
		t.Errorf("default material = %+v", obj.Material)
	}
}

func TestObject_SetTransform_RejectsSingular(t *testing.T) {
	obj := NewSphere()
	err := obj.SetTransform(core.Scaling(0, 0, 0))
	if !errors.Is(err, core.ErrSingularMatrix) {
		t.Errorf("expected ErrSingularMatrix, got %v", err)
	}

	// The old transform must survive a failed assignment
	if !obj.Transform().Eq(core.Identity()) {
		t.Errorf("failed SetTransform clobbered transform: %v", obj.Transform())
	}
}

func TestObject_ColorAt_ObjectTransform(t *testing.T) {
	obj := NewSphere()
	if err := obj.SetTransform(core.Scaling(2, 2, 2)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	obj.Material.Pattern = material.NewStripe(core.White, core.Black)

	// x = 1.5 world is x = 0.75 object: first stripe
	if got := obj.ColorAt(core.NewPoint(1.5, 0, 0)); !got.Eq(core.White) {
		t.Errorf("ColorAt = %v, want white", got)
	}
}

func TestObject_ColorAt_PatternTransform(t *testing.T) {
	obj := NewSphere()
	pattern := material.NewStripe(core.White, core.Black)
	if err := pattern.SetTransform(core.Scaling(2, 2, 2)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	obj.Material.Pattern = pattern

	if got := obj.ColorAt(core.NewPoint(1.5, 0, 0)); !got.Eq(core.White) {
		t.Errorf("ColorAt = %v, want white", got)
	}
}

func TestObject_ColorAt_BothTransforms(t *testing.T) {
	obj := NewSphere()
	if err := obj.SetTransform(core.Scaling(2, 2, 2)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	pattern := material.NewStripe(core.White, core.Black)
	if err := pattern.SetTransform(core.Translation(0.5, 0, 0)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	obj.Material.Pattern = pattern

	// 2.5 world -> 1.25 object -> 0.75 pattern: first stripe
	if got := obj.ColorAt(core.NewPoint(2.5, 0, 0)); !got.Eq(core.White) {
		t.Errorf("ColorAt = %v, want white", got)
	}
}

func TestObject_CullingSkipsPrimitives(t *testing.T) {
	sphere := NewSphere()
	if err := sphere.SetTransform(core.Translation(0, 0, 100)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}

	miss := localRay(core.NewPoint(0, 5, 0), core.NewVector(1, 0, 0))
	hit := localRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))

	for _, cull := range []bool{false, true} {
		if xs := sphere.Intersect(miss, cull); len(xs) != 0 {
			t.Errorf("cull=%t: expected miss, got %v", cull, xs)
		}
		if xs := sphere.Intersect(hit, cull); len(xs) != 2 {
			t.Errorf("cull=%t: expected 2 intersections, got %d", cull, len(xs))
		}
	}
}
