package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/richard-dennehy/gotracer/cmd"
)

func main() {
	app := cli.NewApp()
	app.Name = "gotracer"
	app.Usage = "render scenes using recursive ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to a PNG file",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "name of the scene to render",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 800,
					Usage: "image width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 600,
					Usage: "image height",
				},
				cli.IntFlag{
					Name:  "samples",
					Value: 1,
					Usage: "sub-pixel grid size; n means n*n samples per pixel",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers; 0 uses all CPUs",
				},
				cli.BoolFlag{
					Name:  "no-culling",
					Usage: "disable bounding-box culling",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	app.Run(os.Args)
}
