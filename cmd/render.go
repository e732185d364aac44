package cmd

import (
	"fmt"
	"image/png"
	"os"

	"github.com/urfave/cli"

	"github.com/richard-dennehy/gotracer/pkg/renderer"
	"github.com/richard-dennehy/gotracer/pkg/scene"
)

// RenderScene renders a built-in scene and writes it out as a PNG
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	builder, err := scene.ByName(ctx.String("scene"))
	if err != nil {
		return err
	}

	width := ctx.Int("width")
	height := ctx.Int("height")
	if width < 1 || height < 1 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}

	sc, err := builder(width, height)
	if err != nil {
		return err
	}
	sc.World.CullBounds = !ctx.Bool("no-culling")

	var sampler renderer.Sampler
	if n := ctx.Int("samples"); n > 1 {
		sampler = renderer.Grid(n)
	} else {
		sampler = renderer.Single()
	}

	logger.Noticef("rendering scene %q", sc.Name)
	canvas, stats := renderer.Render(sc.World, sc.Camera, renderer.Options{
		Workers: ctx.Int("workers"),
		Sampler: sampler,
	})

	if err := writePNG(ctx.String("out"), canvas); err != nil {
		return err
	}
	logger.Noticef("wrote %s", ctx.String("out"))

	fmt.Println(stats)
	return nil
}

func writePNG(filename string, canvas *renderer.Canvas) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := png.Encode(file, canvas.ToImage()); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return file.Close()
}
