// Command lumentrace is a demo driver for the progressive path tracer: it
// assembles one of the built-in scenes, runs the renderer to a target
// sample count, and writes the tone-mapped result to a PNG.
package main

import (
	"os"

	"github.com/rjstrand/lumentrace/pkg/rlog"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "lumentrace"
	app.Usage = "render scenes with a progressive unidirectional/bidirectional path tracer"
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
			Name:   "render",
			Usage:  "render a scene to a PNG file",
			Action: renderAction,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene",
					Value: "cornell",
					Usage: "scene to render (cornell, default)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "output image width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 400,
					Usage: "output image height",
				},
				cli.IntFlag{
					Name:  "samples",
					Value: 64,
					Usage: "total samples per pixel",
				},
				cli.Float64Flag{
					Name:  "exposure",
					Value: 1.0,
					Usage: "exposure used by the ACES tone-mapping compositor",
				},
				cli.StringFlag{
					Name:  "tracer",
					Value: "unidirectional",
					Usage: "transport strategy: unidirectional, direct, bidirectional, position, normal",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 64,
					Usage: "renderer tile size in pixels",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "worker goroutines (0 = runtime.NumCPU())",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "master RNG seed",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "output PNG filename",
				},
			},
		},
		{
			Name:   "list-scenes",
			Usage:  "list the built-in scenes",
			Action: listScenesAction,
		},
	}

	if err := app.Run(os.Args); err != nil {
		rlog.New("lumentrace").Errorf("%v", err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		rlog.SetLevel(rlog.Info)
	}
	if ctx.GlobalBool("vv") {
		rlog.SetLevel(rlog.Debug)
	}
}
