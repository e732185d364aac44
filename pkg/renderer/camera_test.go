package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/richard-dennehy/gotracer/pkg/core"
)

func TestNewCamera_PixelSize(t *testing.T) {
	t.Run("horizontal canvas", func(t *testing.T) {
		c, err := NewCamera(200, 125, math.Pi/2, core.Identity())
		if err != nil {
			t.Fatalf("NewCamera: %v", err)
		}
		if !core.FloatEq(c.PixelSize(), 0.01) {
			t.Errorf("pixel size = %f, want 0.01", c.PixelSize())
		}
	})

	t.Run("vertical canvas", func(t *testing.T) {
		c, err := NewCamera(125, 200, math.Pi/2, core.Identity())
		if err != nil {
			t.Fatalf("NewCamera: %v", err)
		}
		if !core.FloatEq(c.PixelSize(), 0.01) {
			t.Errorf("pixel size = %f, want 0.01", c.PixelSize())
		}
	})
}

func TestNewCamera_RejectsSingularTransform(t *testing.T) {
	_, err := NewCamera(100, 100, math.Pi/2, core.Scaling(0, 0, 0))
	if !errors.Is(err, core.ErrSingularMatrix) {
		t.Errorf("expected ErrSingularMatrix, got %v", err)
	}
}

func TestCamera_RayForPixel(t *testing.T) {
	c, err := NewCamera(201, 101, math.Pi/2, core.Identity())
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}

	t.Run("through the canvas centre", func(t *testing.T) {
		ray := c.RayForPixel(100, 50, 0.5, 0.5)
		if !ray.Origin.Eq(core.NewPoint(0, 0, 0)) {
			t.Errorf("origin = %v", ray.Origin)
		}
		if !ray.Direction.Eq(core.NewVector(0, 0, -1)) {
			t.Errorf("direction = %v", ray.Direction)
		}
	})

	t.Run("through a canvas corner", func(t *testing.T) {
		ray := c.RayForPixel(0, 0, 0.5, 0.5)
		if !ray.Origin.Eq(core.NewPoint(0, 0, 0)) {
			t.Errorf("origin = %v", ray.Origin)
		}
		if !ray.Direction.Eq(core.NewVector(0.66519, 0.33259, -0.66851)) {
			t.Errorf("direction = %v", ray.Direction)
		}
	})

	t.Run("with a transformed camera", func(t *testing.T) {
		transform := core.RotationY(math.Pi / 4).Mul(core.Translation(0, -2, 5))
		c, err := NewCamera(201, 101, math.Pi/2, transform)
		if err != nil {
			t.Fatalf("NewCamera: %v", err)
		}

		ray := c.RayForPixel(100, 50, 0.5, 0.5)
		if !ray.Origin.Eq(core.NewPoint(0, 2, -5)) {
			t.Errorf("origin = %v", ray.Origin)
		}
		sqrt2over2 := math.Sqrt2 / 2
		if !ray.Direction.Eq(core.NewVector(sqrt2over2, 0, -sqrt2over2)) {
			t.Errorf("direction = %v", ray.Direction)
		}
	})

	t.Run("sub-pixel offsets move within one pixel", func(t *testing.T) {
		nearEdge := c.RayForPixel(100, 50, 0.0, 0.5)
		farEdge := c.RayForPixel(100, 50, 1.0, 0.5)
		nextPixel := c.RayForPixel(101, 50, 0.0, 0.5)

		if nearEdge.Direction.Eq(farEdge.Direction) {
			t.Error("offsets across the pixel produced the same ray")
		}
		// The far edge of one pixel meets the near edge of the next
		if !farEdge.Direction.Eq(nextPixel.Direction) {
			t.Errorf("pixel edges do not tile: %v vs %v", farEdge.Direction, nextPixel.Direction)
		}
	})
}
