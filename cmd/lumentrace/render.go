package main

import (
	"context"
	"fmt"
	"image/png"
	"os"

	"github.com/rjstrand/lumentrace/pkg/compositor"
	"github.com/rjstrand/lumentrace/pkg/core"
	"github.com/rjstrand/lumentrace/pkg/renderer"
	"github.com/rjstrand/lumentrace/pkg/rlog"
	"github.com/rjstrand/lumentrace/pkg/transport"
	"github.com/urfave/cli"
)

func newCLILogger() rlog.Logger { return rlog.New("lumentrace") }

func buildTracer(name string, sampling core.SamplingConfig) (transport.Tracer, error) {
	switch name {
	case "unidirectional":
		return transport.NewUnidirectTracer(sampling), nil
	case "direct":
		return transport.NewDirectTracer(sampling), nil
	case "bidirectional":
		return transport.NewBidirectMISTracer(sampling), nil
	case "position":
		return transport.NewPositionTracer(), nil
	case "normal":
		return transport.NewNormalTracer(), nil
	default:
		return nil, fmt.Errorf("lumentrace: unknown tracer %q", name)
	}
}

func renderAction(ctx *cli.Context) error {
	setupLogging(ctx)
	log := newCLILogger()

	sceneName := ctx.String("scene")
	sc, err := buildScene(sceneName)
	if err != nil {
		return err
	}
	log.Noticef("built scene %q with %d primitives", sceneName, sc.PrimitiveCount())

	tracer, err := buildTracer(ctx.String("tracer"), sc.Sampling)
	if err != nil {
		return err
	}

	width, height := ctx.Int("width"), ctx.Int("height")
	comp := compositor.NewACESCompositor(width, height, ctx.Float64("exposure"))

	rendererConfig := renderer.Config{
		TileSize:   ctx.Int("tile-size"),
		NumWorkers: ctx.Int("workers"),
		Seed:       ctx.Int64("seed"),
	}
	r := renderer.New(sc.PathSpace, sc.Mats, sc.Lights, tracer, sc.Sampling, rendererConfig)
	defer r.Close()

	target := ctx.Int("samples")
	for total := 0; total < target; {
		stats, err := r.Render(context.Background(), sc.Camera, comp)
		if err != nil {
			return fmt.Errorf("lumentrace: render: %w", err)
		}
		total = stats.TotalSamples
		log.Infof("rendered pass: %d/%d samples per pixel", total, target)
	}

	outFile := ctx.String("out")
	f, err := os.Create(outFile)
	if err != nil {
		return core.Wrap(core.ResourceIO, "lumentrace.renderAction", err)
	}
	defer f.Close()

	if err := png.Encode(f, comp.Image()); err != nil {
		return core.Wrap(core.ResourceIO, "lumentrace.renderAction", err)
	}

	log.Noticef("wrote %s", outFile)
	return nil
}
