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

// Default builds the standard demo scene: a striped floor, a large
// reflective sphere flanked by a glass sphere and a matte one, lit by a
// single point light.
func Default(width, height int) (*Scene, error) {
	floor := geometry.NewPlane()
	stripes := material.NewStripe(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.4, 0.45, 0.5))
	if err := stripes.SetTransform(core.RotationY(math.Pi / 4)); err != nil {
		return nil, err
	}
	floor.Material.Pattern = stripes
	floor.Material.Specular = 0.1
	floor.Material.Reflective = 0.1

	middle := geometry.NewSphere()
	if err := middle.SetTransform(core.Translation(-0.5, 1, 0.5)); err != nil {
		return nil, err
	}
	middle.Material.Pattern = material.NewSolid(core.NewColor(0.1, 0.6, 0.4))
	middle.Material.Diffuse = 0.6
	middle.Material.Specular = 0.9
	middle.Material.Shininess = 300
	middle.Material.Reflective = 0.4

	glass := geometry.NewGlassSphere()
	if err := glass.SetTransform(core.Translation(1.3, 0.5, -0.6).Mul(core.Scaling(0.5, 0.5, 0.5))); err != nil {
		return nil, err
	}
	glass.Material.Pattern = material.NewSolid(core.NewColor(0.05, 0.05, 0.05))
	glass.Material.Diffuse = 0.1
	glass.Material.Specular = 0.9
	glass.Material.Shininess = 300
	glass.Material.Reflective = 0.9
	glass.Material.CastsShadow = false

	small := geometry.NewSphere()
	if err := small.SetTransform(core.Translation(-1.7, 0.33, -0.75).Mul(core.Scaling(0.33, 0.33, 0.33))); err != nil {
		return nil, err
	}
	small.Material.Pattern = material.NewGradient(core.NewColor(1, 0.5, 0.2), core.NewColor(0.8, 0.1, 0.1))

	w := world.New()
	w.Objects = []*geometry.Object{floor, middle, glass, small}
	w.Lights = []lights.Light{
		lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White),
	}

	camera, err := renderer.NewCamera(width, height, math.Pi/3, core.ViewTransform(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))
	if err != nil {
		return nil, err
	}

	return &Scene{
		Name:        "default",
		Description: "striped floor with reflective, glass and gradient spheres",
		World:       w,
		Camera:      camera,
	}, nil
}
