package scene

import (
	"fmt"
	"sort"

	"github.com/richard-dennehy/gotracer/pkg/renderer"
	"github.com/richard-dennehy/gotracer/pkg/world"
)

// Scene bundles a populated world with a camera ready for rendering
type Scene struct {
	Name        string
	Description string
	World       *world.World
	Camera      *renderer.Camera
}

// Builder assembles a scene at the requested image size
type Builder func(width, height int) (*Scene, error)

var builders = map[string]Builder{
	"default":  Default,
	"showcase": Showcase,
}

// ByName returns the builder for a named scene
func ByName(name string) (Builder, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return builder, nil
}

// List returns the available scene names, sorted
func List() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
