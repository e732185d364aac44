package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/richard-dennehy/gotracer/pkg/scene"
)

// ListScenes prints the built-in scenes as a table
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Scene", "Description"})

	for _, name := range scene.List() {
		builder, err := scene.ByName(name)
		if err != nil {
			return err
		}
		sc, err := builder(1, 1)
		if err != nil {
			return err
		}
		table.Append([]string{sc.Name, sc.Description})
	}

	table.Render()
	fmt.Print(buf.String())
	return nil
}
