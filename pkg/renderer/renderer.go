// Package renderer implements the progressive image renderer (C10): it
// drives pkg/transport's tracers one render() call at a time, accumulating
// samples into a per-pixel running average and writing the result into a
// core.Compositor.
package renderer

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rjstrand/lumentrace/pkg/core"
	"github.com/rjstrand/lumentrace/pkg/rlog"
	"github.com/rjstrand/lumentrace/pkg/transport"
)

// Config holds the renderer's own knobs, distinct from core.SamplingConfig's
// path-tracing knobs (max_path_len, epsilons, etc): how the image is tiled
// for parallel work, how many workers to run, and the master RNG seed the
// per-tile streams are split from.
type Config struct {
	TileSize   int
	NumWorkers int // 0 = runtime.NumCPU()
	Seed       int64
}

// DefaultConfig returns the renderer's own sensible defaults, independent
// of the path-tracing sampling knobs in core.DefaultSamplingConfig.
func DefaultConfig() Config {
	return Config{TileSize: 64, NumWorkers: 0, Seed: 1}
}

// ProgressiveRenderer is the `(W, H, projection, rays, rad, samps)` state
// machine named in spec.md §4.8: each call to Render draws
// sampling.SamplesPerPass more samples per pixel and writes the running
// average to the compositor, regenerating primary rays and resetting the
// accumulator whenever the camera or output resolution changes.
type ProgressiveRenderer struct {
	pathSpace core.PathSpace
	mats      core.MaterialContainer
	lights    core.LightSources
	tracer    transport.Tracer
	sampling  core.SamplingConfig

	config Config
	logger rlog.Logger

	width, height int
	tiles         []*Tile
	pool          *WorkerPool

	hasProjection bool
	projection    core.Mat4
	rays          []core.Ray
	hits          []transport.FirstHit
	rad           []core.Color3
	samps         int
}

// New builds a renderer over a read-only scene (pathSpace, mats, lights),
// a transport strategy, and the sampling knobs that strategy reads
// (MaxPathLen, MultiLightSamps, SamplesPerPass, epsilons).
func New(pathSpace core.PathSpace, mats core.MaterialContainer, lights core.LightSources, tracer transport.Tracer, sampling core.SamplingConfig, config Config) *ProgressiveRenderer {
	return &ProgressiveRenderer{
		pathSpace: pathSpace,
		mats:      mats,
		lights:    lights,
		tracer:    tracer,
		sampling:  sampling,
		config:    config,
		logger:    rlog.New("renderer"),
	}
}

// Close stops the worker pool, if one was ever started. Safe to call
// without a prior Render call.
func (r *ProgressiveRenderer) Close() {
	if r.pool != nil {
		r.pool.Stop()
		r.pool = nil
	}
}

// Render runs one pass of spec.md §4.8's algorithm:
//  1. Regenerate primary rays and reset the accumulator if cam's
//     projection or the compositor's resolution changed since the last call.
//  2. Recompute first hits for the (possibly unchanged) primary rays.
//  3. Draw sampling.SamplesPerPass new radiance samples per pixel.
//  4. Accumulate into rad, advance samps once, and write rad/samps to the
//     compositor.
//
// Cancellation is pass-structured (spec.md §5): ctx is only checked before
// the pass starts, never mid-pass.
func (r *ProgressiveRenderer) Render(ctx context.Context, cam core.Camera, compositor core.Compositor) (RenderStats, error) {
	select {
	case <-ctx.Done():
		return RenderStats{}, ctx.Err()
	default:
	}

	width, height := compositor.Width(), compositor.Height()
	projection := cam.Projection()
	if !r.hasProjection || projection != r.projection || width != r.width || height != r.height {
		r.regenerate(cam, width, height)
		r.projection = projection
		r.hasProjection = true
	}

	r.hits = transport.ComputeFirstHits(r.rays, r.pathSpace, r.lights)

	if r.pool == nil {
		r.pool = NewWorkerPool(r, r.config.NumWorkers)
		r.pool.Start()
	}

	nSamples := r.sampling.SamplesPerPass
	if nSamples < 1 {
		nSamples = 1
	}

	for _, tile := range r.tiles {
		r.pool.SubmitTask(TileTask{TaskID: tile.ID, Tile: tile, Samples: nSamples})
	}
	for range r.tiles {
		result, ok := r.pool.GetResult()
		if !ok {
			return RenderStats{}, fmt.Errorf("renderer: worker pool closed unexpectedly")
		}
		if result.Error != nil {
			return RenderStats{}, result.Error
		}
	}

	r.samps += nSamples
	invSamps := 1.0 / float64(r.samps)
	for j := 0; j < height; j++ {
		row := j * width
		for i := 0; i < width; i++ {
			compositor.Set(i, j, r.rad[row+i].Multiply(invSamps))
		}
	}

	stats := RenderStats{TotalPixels: width * height, PassSamples: nSamples, TotalSamples: r.samps}
	r.logger.Debugf("render: %dx%d +%d samples (%d total)", width, height, nSamples, r.samps)
	return stats, nil
}

// regenerate rebuilds the primary-ray array, tile grid, and accumulator,
// and restarts the worker pool against the new tile count. Called
// whenever the camera's projection or the output resolution changes
// (spec.md §4.8 step 1).
func (r *ProgressiveRenderer) regenerate(cam core.Camera, width, height int) {
	if r.pool != nil {
		r.pool.Stop()
		r.pool = nil
	}

	r.width, r.height = width, height
	r.tiles = NewTileGrid(width, height, r.config.TileSize, r.config.Seed)
	r.rays = make([]core.Ray, width*height)
	r.rad = make([]core.Color3, width*height)
	r.samps = 0

	jitter := core.NewRandomSampler(rand.New(rand.NewSource(r.config.Seed)))
	for j := 0; j < height; j++ {
		row := j * width
		for i := 0; i < width; i++ {
			ray, _ := cam.Sample(i, j, width, height, jitter)
			r.rays[row+i] = ray
		}
	}

	r.logger.Infof("regenerated %dx%d primary rays (%d tiles)", width, height, len(r.tiles))
}
