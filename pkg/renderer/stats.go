package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderStats summarises a completed render pass
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	Workers         int
	Duration        time.Duration
}

// TotalSamples returns the number of primary rays traced
func (s RenderStats) TotalSamples() int {
	return s.Width * s.Height * s.SamplesPerPixel
}

// String renders the stats as a table for display after a render
func (s RenderStats) String() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", s.Width, s.Height)})
	table.Append([]string{"Samples/pixel", fmt.Sprintf("%d", s.SamplesPerPixel)})
	table.Append([]string{"Primary rays", fmt.Sprintf("%d", s.TotalSamples())})
	table.Append([]string{"Workers", fmt.Sprintf("%d", s.Workers)})
	table.Append([]string{"Render time", s.Duration.String()})
	table.Render()
	return buf.String()
}
