package world

import (
	"sort"

	"github.com/richard-dennehy/gotracer/pkg/geometry"
)

// Intersections is the full, t-sorted list of hits for one ray against a
// scene. Negative t values are kept: they mark surfaces behind the ray
// origin, which the refraction index walk needs to know about.
type Intersections []geometry.Intersection

// Sort orders the intersections by ascending t, keeping the original
// relative order of equal values so that ties break the same way every
// render.
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the visible intersection: the one with the smallest
// non-negative t. The list must already be sorted. The second return is
// false when every intersection lies behind the ray origin.
func (xs Intersections) Hit() (geometry.Intersection, bool) {
	for _, x := range xs {
		if x.T >= 0 {
			return x, true
		}
	}
	return geometry.Intersection{}, false
}
