package world

import (
	"github.com/richard-dennehy/gotracer/pkg/core"
	"github.com/richard-dennehy/gotracer/pkg/geometry"
)

// Computations carries everything the shading step needs about one hit,
// precomputed once so the recursive trace never revisits the geometry.
type Computations struct {
	T      float64
	Object *geometry.Object
	Point  core.Point
	// OverPoint is nudged along the normal to keep shadow rays from
	// re-hitting the surface they start on; UnderPoint is nudged the other
	// way for refracted rays that must start just inside it.
	OverPoint  core.Point
	UnderPoint core.Point
	Eye        core.Vector
	Normal     core.Vector
	Reflect    core.Vector
	Inside     bool
	// N1 and N2 are the refractive indices either side of the hit surface,
	// in the direction of travel.
	N1 float64
	N2 float64
}

// prepareComputations resolves a hit into shading inputs. The full
// intersection list is needed to work out which media the ray is leaving
// and entering at the hit.
func prepareComputations(hit geometry.Intersection, ray core.Ray, xs Intersections, bias float64) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
		Point:  ray.Position(hit.T),
		Eye:    ray.Direction.Negate(),
	}

	comps.Normal = hit.Object.NormalAt(comps.Point, hit)
	if comps.Normal.Dot(comps.Eye) < 0 {
		comps.Inside = true
		comps.Normal = comps.Normal.Negate()
	}
	comps.Reflect = ray.Direction.Reflect(comps.Normal)

	offset := comps.Normal.Scale(bias)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.SubVector(offset)

	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps
}

// refractiveIndices walks the sorted intersection list up to the hit,
// tracking which objects the ray is currently inside. The index of the
// medium being left is N1; the medium being entered is N2. Empty space
// counts as vacuum (index 1).
func refractiveIndices(hit geometry.Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = 1, 1
	var containers []*geometry.Object

	for _, x := range xs {
		atHit := x == hit

		if atHit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material.RefractiveIndex
			}
		}

		if idx := indexOf(containers, x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if atHit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material.RefractiveIndex
			}
			return n1, n2
		}
	}
	return n1, n2
}

func indexOf(objects []*geometry.Object, target *geometry.Object) int {
	for i, o := range objects {
		if o == target {
			return i
		}
	}
	return -1
}
