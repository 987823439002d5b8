// Package scene assembles the external-interface collaborators named in
// spec.md §6 — a core.PathSpace, core.MaterialContainer, core.LightSources,
// and core.Camera — into runnable scenes, plus a couple of demo builders
// exercised by cmd/lumentrace.
package scene

import (
	"fmt"

	"github.com/rjstrand/lumentrace/pkg/camera"
	"github.com/rjstrand/lumentrace/pkg/core"
	"github.com/rjstrand/lumentrace/pkg/lights"
	"github.com/rjstrand/lumentrace/pkg/pathspace"
)

// worldPreprocessor is the Preprocess contract infinite lights implement:
// they need the scene's bounding sphere, known only once every shape has
// been added, to convert directional emission into area sampling.
type worldPreprocessor interface {
	Preprocess(worldCenter core.Vec3, worldRadius float64) error
}

// Scene bundles everything a render() call needs: the visibility oracle,
// material lookup, light sampler, and camera, plus the sampling knobs this
// scene was tuned for.
type Scene struct {
	Camera    *camera.Camera
	PathSpace core.PathSpace
	Mats      core.MaterialContainer
	Lights    core.LightSources
	Sampling  core.SamplingConfig

	shapes []core.Shape
}

// Builder accumulates shapes and lights before a final Build call
// constructs the BVH, preprocesses infinite lights against the resulting
// bounding sphere, and assembles the light sampler — mirroring the
// teacher's Scene.Preprocess two-phase shape.
type Builder struct {
	cam      *camera.Camera
	sampling core.SamplingConfig
	shapes   []core.Shape
	lights   []core.Light
}

// NewBuilder starts a scene around the given camera and sampling config.
func NewBuilder(cam *camera.Camera, sampling core.SamplingConfig) *Builder {
	return &Builder{cam: cam, sampling: sampling}
}

// AddShape adds an opaque (non-emissive) shape to the scene.
func (b *Builder) AddShape(shapes ...core.Shape) *Builder {
	b.shapes = append(b.shapes, shapes...)
	return b
}

// AddAreaLight adds a finite-area light and its underlying shape, so it is
// both directly visible (primary rays can hit it) and sampled for direct
// illumination.
func (b *Builder) AddAreaLight(light core.Light, shape core.Shape) *Builder {
	b.lights = append(b.lights, light)
	b.shapes = append(b.shapes, shape)
	return b
}

// AddInfiniteLight adds an environment light with no underlying shape
// (sky gradients, uniform ambient).
func (b *Builder) AddInfiniteLight(light core.Light) *Builder {
	b.lights = append(b.lights, light)
	return b
}

// Build constructs the BVH, preprocesses every infinite light against the
// scene's bounding sphere, and assembles the light sampler.
func (b *Builder) Build() (*Scene, error) {
	bvh := pathspace.New(b.shapes)
	worldCenter, worldRadius := bvh.AABB().BoundingSphere()

	for _, light := range b.lights {
		if p, ok := light.(worldPreprocessor); ok {
			if err := p.Preprocess(worldCenter, worldRadius); err != nil {
				return nil, fmt.Errorf("scene: preprocessing light: %w", err)
			}
		}
	}

	return &Scene{
		Camera:    b.cam,
		PathSpace: bvh,
		Mats:      core.GeoMaterialContainer{},
		Lights:    lights.NewLightSources(b.lights, worldRadius),
		Sampling:  b.sampling,
		shapes:    b.shapes,
	}, nil
}

// PrimitiveCount returns the number of shapes in the scene, for logging.
func (s *Scene) PrimitiveCount() int { return len(s.shapes) }
