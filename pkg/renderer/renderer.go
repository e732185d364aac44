package renderer

import (
	"runtime"
	"sync"
	"time"

	"github.com/richard-dennehy/gotracer/log"
	"github.com/richard-dennehy/gotracer/pkg/core"
	"github.com/richard-dennehy/gotracer/pkg/world"
)

var logger = log.New("renderer")

// Options controls the render loop. The zero value renders single-sampled
// on all available CPUs.
type Options struct {
	// Workers is the number of parallel render workers; values below 1
	// mean one worker per CPU
	Workers int
	// Sampler is the sub-pixel sampling strategy; nil means Single
	Sampler Sampler
}

// Render traces every pixel of the camera's image through the world and
// returns the finished canvas. Rows are distributed over a worker pool;
// each worker writes only its own rows, so the canvas needs no locking.
func Render(w *world.World, camera *Camera, opts Options) (*Canvas, RenderStats) {
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	sampler := opts.Sampler
	if sampler == nil {
		sampler = Single()
	}
	offsets := sampler.Offsets()

	canvas := NewCanvas(camera.HSize, camera.VSize)
	logger.Noticef("rendering %dx%d image, %d samples/pixel, %d workers", camera.HSize, camera.VSize, len(offsets), workers)
	start := time.Now()

	rows := make(chan int, camera.VSize)
	for y := 0; y < camera.VSize; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				renderRow(w, camera, canvas, offsets, y)
				logger.Debugf("row %d done", y)
			}
		}()
	}
	wg.Wait()

	stats := RenderStats{
		Width:           camera.HSize,
		Height:          camera.VSize,
		SamplesPerPixel: len(offsets),
		Workers:         workers,
		Duration:        time.Since(start),
	}
	logger.Noticef("render finished in %s", stats.Duration)
	return canvas, stats
}

func renderRow(w *world.World, camera *Camera, canvas *Canvas, offsets []Offset, y int) {
	for x := 0; x < camera.HSize; x++ {
		sum := core.Black
		for _, offset := range offsets {
			ray := camera.RayForPixel(x, y, offset.U, offset.V)
			sum = sum.Add(w.ColorAt(ray, w.MaxDepth))
		}
		canvas.SetPixel(x, y, sum.Scale(1/float64(len(offsets))))
	}
}
