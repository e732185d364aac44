package material

import "github.com/richard-dennehy/gotracer/pkg/core"

// Material holds the surface properties fed into the Phong shading
// equation, plus the reflection/refraction coefficients used by the
// recursive trace.
type Material struct {
	Pattern         Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
	CastsShadow     bool
}

// Default returns the standard material: matte white, fully opaque,
// shadow-casting.
func Default() Material {
	return Material{
		Pattern:         NewSolid(core.White),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: 1.0,
		CastsShadow:     true,
	}
}
