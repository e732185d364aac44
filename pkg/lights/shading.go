package lights

import (
	"math"

	"github.com/richard-dennehy/gotracer/pkg/core"
	"github.com/richard-dennehy/gotracer/pkg/geometry"
)

// Occlusion reports whether the path from the shaded point to a light
// sample position is blocked. The world supplies this; passing nil means
// nothing is ever in shadow (useful for tests and ambient-only scenes).
type Occlusion func(lightPosition core.Point) bool

// Lighting evaluates the Phong shading equation for one light at a
// surface point. Ambient is always included, even for fully occluded
// points; diffuse and specular are evaluated per light sample, dropped
// for occluded samples, and averaged by total weight.
func Lighting(obj *geometry.Object, light Light, point core.Point, eye, normal core.Vector, occluded Occlusion) core.Color {
	m := obj.Material
	effective := obj.ColorAt(point).Mul(light.Intensity())

	ambient := effective.Scale(m.Ambient)

	sum := core.Black
	totalWeight := 0.0
	for _, sample := range light.Samples() {
		totalWeight += sample.Weight
		if occluded != nil && occluded(sample.Position) {
			continue
		}
		contribution := phongSample(m.Diffuse, m.Specular, m.Shininess, effective, light.Intensity(), sample.Position, point, eye, normal)
		sum = sum.Add(contribution.Scale(sample.Weight))
	}

	if totalWeight > 0 {
		sum = sum.Scale(1 / totalWeight)
	}
	return ambient.Add(sum)
}

// phongSample computes the diffuse + specular contribution of a single
// light sample.
func phongSample(diffuse, specular, shininess float64, effective, intensity core.Color, samplePos, point core.Point, eye, normal core.Vector) core.Color {
	lightVec := samplePos.Sub(point).Normalize()

	lightDotNormal := lightVec.Dot(normal)
	if lightDotNormal <= 0 {
		// Surface faces away from the light
		return core.Black
	}

	result := effective.Scale(diffuse * lightDotNormal)

	reflectVec := lightVec.Negate().Reflect(normal)
	reflectDotEye := reflectVec.Dot(eye)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, shininess)
		result = result.Add(intensity.Scale(specular * factor))
	}
	return result
}
