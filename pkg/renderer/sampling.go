package renderer

// Offset is a sub-pixel sample position, with both components in [0, 1)
type Offset struct {
	U float64
	V float64
}

// Sampler yields the sub-pixel offsets rendered for every pixel; the
// resulting colours are averaged
type Sampler interface {
	Offsets() []Offset
}

type singleSampler struct{}

// Single samples every pixel once, at its centre
func Single() Sampler {
	return singleSampler{}
}

func (singleSampler) Offsets() []Offset {
	return []Offset{{U: 0.5, V: 0.5}}
}

type gridSampler struct {
	offsets []Offset
}

// Grid samples every pixel on a regular n x n sub-pixel grid. Grid(1) is
// equivalent to Single.
func Grid(n int) Sampler {
	if n < 1 {
		n = 1
	}
	offsets := make([]Offset, 0, n*n)
	for v := 0; v < n; v++ {
		for u := 0; u < n; u++ {
			offsets = append(offsets, Offset{
				U: (float64(u) + 0.5) / float64(n),
				V: (float64(v) + 0.5) / float64(n),
			})
		}
	}
	return gridSampler{offsets: offsets}
}

func (s gridSampler) Offsets() []Offset {
	return s.offsets
}
