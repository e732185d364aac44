package world

import (
	"testing"

	"github.com/richard-dennehy/gotracer/pkg/core"
	"github.com/richard-dennehy/gotracer/pkg/geometry"
	"github.com/richard-dennehy/gotracer/pkg/lights"
	"github.com/richard-dennehy/gotracer/pkg/material"
)

// defaultWorld is the two-sphere scene most shading tests run against: an
// outer green-ish sphere and a smaller inner one, lit from the upper left.
func defaultWorld(t *testing.T) *World {
	t.Helper()

	outer := geometry.NewSphere()
	outer.Material.Pattern = material.NewSolid(core.NewColor(0.8, 1.0, 0.6))
	outer.Material.Diffuse = 0.7
	outer.Material.Specular = 0.2

	inner := geometry.NewSphere()
	if err := inner.SetTransform(core.Scaling(0.5, 0.5, 0.5)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}

	w := New()
	w.Objects = []*geometry.Object{outer, inner}
	w.Lights = []lights.Light{lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)}
	return w
}

func worldRay(origin core.Point, direction core.Vector) core.Ray {
	return core.Ray{Origin: origin, Direction: direction}
}

func TestWorld_Intersect(t *testing.T) {
	w := defaultWorld(t)
	ray := worldRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	xs := w.Intersect(ray)
	if len(xs) != 4 {
		t.Fatalf("got %d intersections, want 4", len(xs))
	}
	wantT := []float64{4, 4.5, 5.5, 6}
	for i, want := range wantT {
		if !core.FloatEq(xs[i].T, want) {
			t.Errorf("xs[%d].T = %f, want %f", i, xs[i].T, want)
		}
	}
}

func TestIntersections_Hit(t *testing.T) {
	obj := geometry.NewSphere()
	ix := func(t float64) geometry.Intersection {
		return geometry.Intersection{T: t, Object: obj}
	}

	tests := []struct {
		name  string
		xs    Intersections
		want  float64
		found bool
	}{
		{"all positive", Intersections{ix(1), ix(2)}, 1, true},
		{"some negative", Intersections{ix(-1), ix(1)}, 1, true},
		{"all negative", Intersections{ix(-2), ix(-1)}, 0, false},
		{"lowest non-negative", Intersections{ix(-3), ix(2), ix(5.5), ix(7)}, 2, true},
		{"zero counts as a hit", Intersections{ix(-1), ix(0), ix(3)}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.xs.Sort()
			hit, ok := tt.xs.Hit()
			if ok != tt.found {
				t.Fatalf("found = %t, want %t", ok, tt.found)
			}
			if ok && !core.FloatEq(hit.T, tt.want) {
				t.Errorf("hit.T = %f, want %f", hit.T, tt.want)
			}
		})
	}
}

func TestPrepareComputations_Outside(t *testing.T) {
	obj := geometry.NewSphere()
	ray := worldRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	hit := geometry.Intersection{T: 4, Object: obj}

	comps := prepareComputations(hit, ray, Intersections{hit}, DefaultShadowBias)

	if comps.Inside {
		t.Error("hit from outside flagged as inside")
	}
	if !comps.Point.Eq(core.NewPoint(0, 0, -1)) {
		t.Errorf("point = %v", comps.Point)
	}
	if !comps.Eye.Eq(core.NewVector(0, 0, -1)) || !comps.Normal.Eq(core.NewVector(0, 0, -1)) {
		t.Errorf("eye = %v, normal = %v", comps.Eye, comps.Normal)
	}
	if comps.OverPoint.Z >= comps.Point.Z {
		t.Errorf("over point %v not offset towards the eye", comps.OverPoint)
	}
	if comps.UnderPoint.Z <= comps.Point.Z {
		t.Errorf("under point %v not offset into the surface", comps.UnderPoint)
	}
}

func TestPrepareComputations_InsideFlipsNormal(t *testing.T) {
	obj := geometry.NewSphere()
	ray := worldRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
	hit := geometry.Intersection{T: 1, Object: obj}

	comps := prepareComputations(hit, ray, Intersections{hit}, DefaultShadowBias)

	if !comps.Inside {
		t.Error("hit from inside not flagged")
	}
	if !comps.Point.Eq(core.NewPoint(0, 0, 1)) {
		t.Errorf("point = %v", comps.Point)
	}
	// The outward normal (0, 0, 1) is flipped to face the eye
	if !comps.Normal.Eq(core.NewVector(0, 0, -1)) {
		t.Errorf("normal = %v, want flipped (0, 0, -1)", comps.Normal)
	}
}

func TestPrepareComputations_ReflectVector(t *testing.T) {
	obj := geometry.NewPlane()
	sqrt2over2 := 0.7071067811865476
	ray := worldRay(core.NewPoint(0, 1, -1), core.NewVector(0, -sqrt2over2, sqrt2over2))
	hit := geometry.Intersection{T: 1.4142135623730951, Object: obj}

	comps := prepareComputations(hit, ray, Intersections{hit}, DefaultShadowBias)
	if !comps.Reflect.Eq(core.NewVector(0, sqrt2over2, sqrt2over2)) {
		t.Errorf("reflect = %v", comps.Reflect)
	}
}

func TestPrepareComputations_RefractiveIndexWalk(t *testing.T) {
	// Three overlapping glass spheres with distinct indices; a ray through
	// all of them crosses six surfaces.
	a := geometry.NewGlassSphere()
	if err := a.SetTransform(core.Scaling(2, 2, 2)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	a.Material.RefractiveIndex = 1.5

	b := geometry.NewGlassSphere()
	if err := b.SetTransform(core.Translation(0, 0, -0.25)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	b.Material.RefractiveIndex = 2.0

	c := geometry.NewGlassSphere()
	if err := c.SetTransform(core.Translation(0, 0, 0.25)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	c.Material.RefractiveIndex = 2.5

	ray := worldRay(core.NewPoint(0, 0, -4), core.NewVector(0, 0, 1))
	xs := Intersections{
		{T: 2, Object: a},
		{T: 2.75, Object: b},
		{T: 3.25, Object: c},
		{T: 4.75, Object: b},
		{T: 5.25, Object: c},
		{T: 6, Object: a},
	}

	want := []struct{ n1, n2 float64 }{
		{1.0, 1.5},
		{1.5, 2.0},
		{2.0, 2.5},
		{2.5, 2.5},
		{2.5, 1.5},
		{1.5, 1.0},
	}
	for i, x := range xs {
		comps := prepareComputations(x, ray, xs, DefaultShadowBias)
		if !core.FloatEq(comps.N1, want[i].n1) || !core.FloatEq(comps.N2, want[i].n2) {
			t.Errorf("index %d: n1/n2 = %f/%f, want %f/%f", i, comps.N1, comps.N2, want[i].n1, want[i].n2)
		}
	}
}

func TestWorld_ColorAt(t *testing.T) {
	w := defaultWorld(t)

	t.Run("ray misses everything", func(t *testing.T) {
		got := w.ColorAt(worldRay(core.NewPoint(0, 0, -5), core.NewVector(0, 1, 0)), w.MaxDepth)
		if !got.Eq(core.Black) {
			t.Errorf("ColorAt = %v, want black", got)
		}
	})

	t.Run("ray hits the outer sphere", func(t *testing.T) {
		got := w.ColorAt(worldRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1)), w.MaxDepth)
		if !got.Eq(core.NewColor(0.38066, 0.47583, 0.2855)) {
			t.Errorf("ColorAt = %v, want (0.38066, 0.47583, 0.2855)", got)
		}
	})

	t.Run("hit from inside the outer sphere", func(t *testing.T) {
		// Ambient cranked to 1 on both spheres so the expected colour is
		// exactly the inner sphere's surface colour
		w := defaultWorld(t)
		w.Objects[0].Material.Ambient = 1
		w.Objects[0].Material.Diffuse = 0
		w.Objects[0].Material.Specular = 0
		w.Objects[1].Material.Ambient = 1
		w.Objects[1].Material.Diffuse = 0
		w.Objects[1].Material.Specular = 0

		got := w.ColorAt(worldRay(core.NewPoint(0, 0, 0.75), core.NewVector(0, 0, -1)), w.MaxDepth)
		if !got.Eq(core.White) {
			t.Errorf("ColorAt = %v, want inner sphere colour (white)", got)
		}
	})
}

func TestWorld_ShadeHit_Shadowed(t *testing.T) {
	s1 := geometry.NewSphere()
	s2 := geometry.NewSphere()
	if err := s2.SetTransform(core.Translation(0, 0, 10)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}

	w := New()
	w.Objects = []*geometry.Object{s1, s2}
	w.Lights = []lights.Light{lights.NewPointLight(core.NewPoint(0, 0, -10), core.White)}

	// The ray hits s2 from between the spheres; s1 blocks the light
	got := w.ColorAt(worldRay(core.NewPoint(0, 0, 5), core.NewVector(0, 0, 1)), w.MaxDepth)
	if !got.Eq(core.NewColor(0.1, 0.1, 0.1)) {
		t.Errorf("shadowed colour = %v, want ambient only (0.1)", got)
	}
}

func TestWorld_IsShadowed(t *testing.T) {
	w := defaultWorld(t)
	lightPos := core.NewPoint(-10, 10, -10)

	tests := []struct {
		name     string
		point    core.Point
		shadowed bool
	}{
		{"nothing between point and light", core.NewPoint(0, 10, 0), false},
		{"sphere between point and light", core.NewPoint(10, -10, 10), true},
		{"light between point and sphere", core.NewPoint(-20, 20, -20), false},
		{"point between light and sphere", core.NewPoint(-2, 2, -2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.IsShadowed(tt.point, lightPos); got != tt.shadowed {
				t.Errorf("IsShadowed = %t, want %t", got, tt.shadowed)
			}
		})
	}
}

func TestWorld_IsShadowed_IgnoresNonCasters(t *testing.T) {
	w := defaultWorld(t)
	w.Objects[0].Material.CastsShadow = false
	w.Objects[1].Material.CastsShadow = false

	if w.IsShadowed(core.NewPoint(10, -10, 10), core.NewPoint(-10, 10, -10)) {
		t.Error("objects with CastsShadow disabled still cast a shadow")
	}
}

func TestWorld_ReflectedColor(t *testing.T) {
	t.Run("matte surface reflects nothing", func(t *testing.T) {
		w := defaultWorld(t)
		w.Objects[1].Material.Ambient = 1

		ray := worldRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
		xs := w.Intersect(ray)
		hit, ok := xs.Hit()
		if !ok {
			t.Fatal("expected a hit")
		}
		comps := prepareComputations(hit, ray, xs, w.ShadowBias)
		if got := w.reflectedColor(comps, w.MaxDepth); !got.Eq(core.Black) {
			t.Errorf("reflectedColor = %v, want black", got)
		}
	})

	t.Run("reflective floor below the spheres", func(t *testing.T) {
		w := defaultWorld(t)
		floor := geometry.NewPlane()
		floor.Material.Reflective = 0.5
		if err := floor.SetTransform(core.Translation(0, -1, 0)); err != nil {
			t.Fatalf("SetTransform: %v", err)
		}
		w.Objects = append(w.Objects, floor)

		sqrt2over2 := 0.7071067811865476
		ray := worldRay(core.NewPoint(0, 0, -3), core.NewVector(0, -sqrt2over2, sqrt2over2))
		got := w.ColorAt(ray, w.MaxDepth)
		if !got.Eq(core.NewColor(0.87677, 0.92436, 0.82918)) {
			t.Errorf("ColorAt = %v, want (0.87677, 0.92436, 0.82918)", got)
		}
	})

	t.Run("depth zero stops the recursion", func(t *testing.T) {
		w := defaultWorld(t)
		floor := geometry.NewPlane()
		floor.Material.Reflective = 0.5
		if err := floor.SetTransform(core.Translation(0, -1, 0)); err != nil {
			t.Fatalf("SetTransform: %v", err)
		}
		w.Objects = append(w.Objects, floor)

		sqrt2over2 := 0.7071067811865476
		ray := worldRay(core.NewPoint(0, 0, -3), core.NewVector(0, -sqrt2over2, sqrt2over2))
		xs := w.Intersect(ray)
		hit, ok := xs.Hit()
		if !ok {
			t.Fatal("expected a hit")
		}
		comps := prepareComputations(hit, ray, xs, w.ShadowBias)
		if got := w.reflectedColor(comps, 0); !got.Eq(core.Black) {
			t.Errorf("reflectedColor at depth 0 = %v, want black", got)
		}
	})
}

func TestWorld_MutuallyReflectiveSurfacesTerminate(t *testing.T) {
	lower := geometry.NewPlane()
	lower.Material.Reflective = 1
	if err := lower.SetTransform(core.Translation(0, -1, 0)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	upper := geometry.NewPlane()
	upper.Material.Reflective = 1
	if err := upper.SetTransform(core.Translation(0, 1, 0)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}

	w := New()
	w.Objects = []*geometry.Object{lower, upper}
	w.Lights = []lights.Light{lights.NewPointLight(core.NewPoint(0, 0, 0), core.White)}

	// Must return rather than recurse forever
	_ = w.ColorAt(worldRay(core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0)), w.MaxDepth)
}

func TestWorld_RefractedColor(t *testing.T) {
	t.Run("opaque surface refracts nothing", func(t *testing.T) {
		w := defaultWorld(t)
		ray := worldRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
		xs := w.Intersect(ray)
		hit, ok := xs.Hit()
		if !ok {
			t.Fatal("expected a hit")
		}
		comps := prepareComputations(hit, ray, xs, w.ShadowBias)
		if got := w.refractedColor(comps, w.MaxDepth); !got.Eq(core.Black) {
			t.Errorf("refractedColor = %v, want black", got)
		}
	})

	t.Run("depth zero stops the recursion", func(t *testing.T) {
		w := defaultWorld(t)
		w.Objects[0].Material.Transparency = 1
		w.Objects[0].Material.RefractiveIndex = 1.5

		ray := worldRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
		xs := w.Intersect(ray)
		hit, ok := xs.Hit()
		if !ok {
			t.Fatal("expected a hit")
		}
		comps := prepareComputations(hit, ray, xs, w.ShadowBias)
		if got := w.refractedColor(comps, 0); !got.Eq(core.Black) {
			t.Errorf("refractedColor at depth 0 = %v, want black", got)
		}
	})

	t.Run("total internal reflection", func(t *testing.T) {
		w := defaultWorld(t)
		w.Objects[0].Material.Transparency = 1
		w.Objects[0].Material.RefractiveIndex = 1.5

		sqrt2over2 := 0.7071067811865476
		ray := worldRay(core.NewPoint(0, 0, sqrt2over2), core.NewVector(0, 1, 0))
		xs := Intersections{
			{T: -sqrt2over2, Object: w.Objects[0]},
			{T: sqrt2over2, Object: w.Objects[0]},
		}
		comps := prepareComputations(xs[1], ray, xs, w.ShadowBias)
		if got := w.refractedColor(comps, w.MaxDepth); !got.Eq(core.Black) {
			t.Errorf("refractedColor under TIR = %v, want black", got)
		}
	})
}

func TestWorld_ShadeHit_Transparent(t *testing.T) {
	w := defaultWorld(t)

	floor := geometry.NewPlane()
	if err := floor.SetTransform(core.Translation(0, -1, 0)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	floor.Material.Transparency = 0.5
	floor.Material.RefractiveIndex = 1.5

	ball := geometry.NewSphere()
	ball.Material.Pattern = material.NewSolid(core.NewColor(1, 0, 0))
	ball.Material.Ambient = 0.5
	if err := ball.SetTransform(core.Translation(0, -3.5, -0.5)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}

	w.Objects = append(w.Objects, floor, ball)

	sqrt2over2 := 0.7071067811865476
	ray := worldRay(core.NewPoint(0, 0, -3), core.NewVector(0, -sqrt2over2, sqrt2over2))
	got := w.ColorAt(ray, w.MaxDepth)
	if !got.Eq(core.NewColor(0.93642, 0.68642, 0.68642)) {
		t.Errorf("ColorAt = %v, want (0.93642, 0.68642, 0.68642)", got)
	}
}

func TestWorld_CullingIsResultIdentical(t *testing.T) {
	w := defaultWorld(t)

	group := geometry.NewGroup(geometry.NewSphere())
	if err := group.SetTransform(core.Translation(3, 0, 0)); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
	w.Objects = append(w.Objects, group)

	rays := []core.Ray{
		worldRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1)),
		worldRay(core.NewPoint(3, 0, -5), core.NewVector(0, 0, 1)),
		worldRay(core.NewPoint(0, 5, -5), core.NewVector(0, 1, 0)),
		worldRay(core.NewPoint(-5, 0, 0), core.NewVector(1, 0, 0)),
	}
	for i, ray := range rays {
		w.CullBounds = false
		plain := w.ColorAt(ray, w.MaxDepth)
		w.CullBounds = true
		culled := w.ColorAt(ray, w.MaxDepth)
		if plain != culled {
			t.Errorf("ray %d: culling changed the colour: %v != %v", i, plain, culled)
		}
	}
}
