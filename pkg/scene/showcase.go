package scene

import (
	"math"

	"github.com/richard-dennehy/gotracer/pkg/core"
	"github.com/richard-dennehy/gotracer/pkg/geometry"
	"github.com/richard-dennehy/gotracer/pkg/lights"
	"github.com/richard-dennehy/gotracer/pkg/material"
	"github.com/richard-dennehy/gotracer/pkg/renderer"
	"github.com/richard-dennehy/gotracer/pkg/world"
)

// Showcase builds a scene exercising the remaining primitives: a group of
// capped cylinders around a cube, a triangle pyramid, soft shadows from a
// jittered area light.
func Showcase(width, height int) (*Scene, error) {
	floor := geometry.NewPlane()
	floor.Material.Pattern = material.NewSolid(core.NewColor(0.8, 0.8, 0.75))
	floor.Material.Specular = 0

	pillars, err := pillarRing()
	if err != nil {
		return nil, err
	}

	cube := geometry.NewCube()
	if err := cube.SetTransform(core.Translation(0, 0.5, 0).Mul(core.Scaling(0.5, 0.5, 0.5)).Mul(core.RotationY(math.Pi / 6))); err != nil {
		return nil, err
	}
	cube.Material.Pattern = material.NewSolid(core.NewColor(0.2, 0.3, 0.7))
	cube.Material.Reflective = 0.2

	pyramid, err := pyramid()
	if err != nil {
		return nil, err
	}

	w := world.New()
	w.Objects = []*geometry.Object{floor, pillars, cube, pyramid}
	w.Lights = []lights.Light{
		lights.NewAreaLight(
			core.NewPoint(-4, 4, -5),
			core.NewVector(2, 0, 0), 4,
			core.NewVector(0, 2, 0), 4,
			core.NewColor(1, 1, 0.9),
		).WithJitter(7),
	}

	camera, err := renderer.NewCamera(width, height, math.Pi/3, core.ViewTransform(
		core.NewPoint(0, 2.5, -6),
		core.NewPoint(0, 0.5, 0),
		core.NewVector(0, 1, 0),
	))
	if err != nil {
		return nil, err
	}

	return &Scene{
		Name:        "showcase",
		Description: "cylinder ring, cube and pyramid under an area light",
		World:       w,
		Camera:      camera,
	}, nil
}

// pillarRing arranges six capped cylinders in a circle inside one group
func pillarRing() (*geometry.Object, error) {
	var pillars []*geometry.Object
	for i := 0; i < 6; i++ {
		pillar, err := geometry.NewBoundedCylinder(0, 1, true)
		if err != nil {
			return nil, err
		}
		angle := float64(i) * math.Pi / 3
		transform := core.RotationY(angle).
			Mul(core.Translation(2.5, 0, 0)).
			Mul(core.Scaling(0.25, 1, 0.25))
		if err := pillar.SetTransform(transform); err != nil {
			return nil, err
		}
		pillar.Material.Pattern = material.NewSolid(core.NewColor(0.7, 0.6, 0.5))
		pillars = append(pillars, pillar)
	}
	return geometry.NewGroup(pillars...), nil
}

// pyramid builds a four-sided pyramid from flat triangles
func pyramid() (*geometry.Object, error) {
	apex := core.NewPoint(0, 1, 0)
	base := []core.Point{
		core.NewPoint(-0.5, 0, -0.5),
		core.NewPoint(0.5, 0, -0.5),
		core.NewPoint(0.5, 0, 0.5),
		core.NewPoint(-0.5, 0, 0.5),
	}

	var faces []*geometry.Object
	for i := range base {
		face, err := geometry.NewTriangle(base[i], base[(i+1)%len(base)], apex)
		if err != nil {
			return nil, err
		}
		face.Material.Pattern = material.NewSolid(core.NewColor(0.9, 0.6, 0.2))
		faces = append(faces, face)
	}

	group := geometry.NewGroup(faces...)
	if err := group.SetTransform(core.Translation(-2, 0, 2)); err != nil {
		return nil, err
	}
	return group, nil
}
