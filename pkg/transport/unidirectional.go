package transport

import (
	"github.com/rjstrand/lumentrace/pkg/core"
)

// Tracer is the per-pixel estimator every unidirectional and bidirectional
// strategy in this package implements: given a precomputed primary ray
// and its FirstHit, return one sample of the pixel's radiance.
type Tracer interface {
	Sample(sampler core.Sampler, ray core.Ray, hit FirstHit, pathSpace core.PathSpace, mats core.MaterialContainer, lights core.LightSources) core.Color3
}

// primaryEmission returns the direct-emission term of a subpath's first
// pathlet: nonzero only if the camera ray landed directly on a light.
func primaryEmission(path Subpath) core.Color3 {
	if len(path) == 0 || path[0].Light == nil {
		return core.Color3{}
	}
	return path[0].Light.Radiance(path[0].TowardsPrev(), path[0].Vertex.Normal)
}

// accumulateImplicitEmission sums every pathlet's emission term (the
// primary hit plus every bounce that happens to land on a light),
// weighted by the running product of each step's throughput. This is
// unidirectional path tracing's pure random-walk estimator: no shadow
// rays, light is only ever picked up by accidentally hitting it.
func accumulateImplicitEmission(path Subpath) core.Color3 {
	radiance := core.Color3{}
	running := core.NewVec3(1, 1, 1)
	for k, p := range path {
		if k > 0 {
			running = running.MultiplyVec(p.Weight)
		}
		if p.Light != nil {
			radiance = radiance.Add(running.MultiplyVec(p.Light.Radiance(p.TowardsPrev(), p.Vertex.Normal)))
		}
	}
	return radiance
}

// DirectTracer evaluates only the primary hit's own emission plus one
// shadow-ray connection to the lights — no recursive bouncing at all.
type DirectTracer struct {
	config core.SamplingConfig
}

// NewDirectTracer creates a DirectTracer using config's light-sampling
// knobs (MaxPathLen is unused since this tracer never recurses).
func NewDirectTracer(config core.SamplingConfig) *DirectTracer {
	return &DirectTracer{config: config}
}

func (t *DirectTracer) Sample(sampler core.Sampler, ray core.Ray, hit FirstHit, pathSpace core.PathSpace, mats core.MaterialContainer, lights core.LightSources) core.Color3 {
	if !hit.Intersect.Valid {
		return core.Color3{}
	}

	radiance := core.Color3{}
	if hit.Light != nil {
		radiance = radiance.Add(hit.Light.Radiance(ray.Direction.Negate(), hit.Intersect.Normal))
	}

	o := ray.Direction.Negate()
	radiance = radiance.Add(DirectIllumination(sampler, pathSpace, mats, lights, hit.Intersect, o, t.config))
	return radiance
}

// mutateDepthUnidirect is the bounce count past which unidirect-family
// tracers start applying Russian roulette.
const mutateDepthUnidirect = 2

// UnidirectTracer walks a full random-walk subpath and sums every
// implicit light hit along it, with no next-event estimation at all.
// High variance on scenes with small lights; used as the baseline the
// NEE-augmented tracers below are compared against.
type UnidirectTracer struct {
	config core.SamplingConfig
}

func NewUnidirectTracer(config core.SamplingConfig) *UnidirectTracer {
	return &UnidirectTracer{config: config}
}

func (t *UnidirectTracer) Sample(sampler core.Sampler, ray core.Ray, hit FirstHit, pathSpace core.PathSpace, mats core.MaterialContainer, lights core.LightSources) core.Color3 {
	path := SamplePathFromHit(sampler, ray, hit, pathSpace, mats, t.config.MaxPathLen, mutateDepthUnidirect)
	if len(path) == 0 {
		return core.Color3{}
	}
	for k := 1; k < len(path); k++ {
		if light, ok := lights.ObjLight(path[k].Vertex.Geo); ok {
			path[k].Light = light
		}
	}
	return accumulateImplicitEmission(path)
}

// UnidirectLT1Tracer walks the same random-walk subpath as UnidirectTracer
// but replaces implicit light hits with an explicit shadow-ray connection
// at every vertex, keeping the primary-hit emission term (the one thing
// NEE can never reach) so nothing is double-counted. Past the first
// vertex, each connection uses a single light sample regardless of
// SamplingConfig.MultiLightSamps — extra light samples only pay off at
// the primary vertex, where they're cheap relative to one more bounce.
type UnidirectLT1Tracer struct {
	config core.SamplingConfig
}

func NewUnidirectLT1Tracer(config core.SamplingConfig) *UnidirectLT1Tracer {
	return &UnidirectLT1Tracer{config: config}
}

func (t *UnidirectLT1Tracer) Sample(sampler core.Sampler, ray core.Ray, hit FirstHit, pathSpace core.PathSpace, mats core.MaterialContainer, lights core.LightSources) core.Color3 {
	path := SamplePathFromHit(sampler, ray, hit, pathSpace, mats, t.config.MaxPathLen, mutateDepthUnidirect)
	if len(path) == 0 {
		return core.Color3{}
	}

	radiance := primaryEmission(path)

	running := core.NewVec3(1, 1, 1)
	for k, p := range path {
		if k > 0 {
			running = running.MultiplyVec(p.Weight)
		}

		samplingConfig := t.config
		if k > 0 {
			samplingConfig.MultiLightSamps = 1
		}
		direct := DirectIllumination(sampler, pathSpace, mats, lights, p.Vertex, p.TowardsPrev(), samplingConfig)
		radiance = radiance.Add(running.MultiplyVec(direct))
	}
	return radiance
}

// mutateDepthBidirectLT2 is the bounce count past which BidirectLT2Tracer
// starts applying Russian roulette — one shallower than the unidirect
// family since every vertex here already pays for two light connections.
const mutateDepthBidirectLT2 = 1

// BidirectLT2Tracer augments UnidirectLT1Tracer's per-vertex NEE (p1) with
// a second connection (p2) to a one-bounce light subpath: a light surface
// point, one scattered direction sampled from its emission distribution,
// and a shadow-ray join from wherever that scatter lands back to the
// camera vertex. p2 recovers light transport p1 structurally can't see —
// light reflecting off a surface before illuminating the shading point.
// The two estimators are blended p1 + 0.5*p2 at the primary vertex (since
// p1 there already carries the primary-emission term p2 would otherwise
// double up on) and 0.5*(p1+p2) at every deeper vertex.
type BidirectLT2Tracer struct {
	config core.SamplingConfig
}

func NewBidirectLT2Tracer(config core.SamplingConfig) *BidirectLT2Tracer {
	return &BidirectLT2Tracer{config: config}
}

func (t *BidirectLT2Tracer) Sample(sampler core.Sampler, ray core.Ray, hit FirstHit, pathSpace core.PathSpace, mats core.MaterialContainer, lights core.LightSources) core.Color3 {
	path := SamplePathFromHit(sampler, ray, hit, pathSpace, mats, t.config.MaxPathLen, mutateDepthBidirectLT2)
	if len(path) == 0 {
		return core.Color3{}
	}

	radiance := primaryEmission(path)

	running := core.NewVec3(1, 1, 1)
	for k, p := range path {
		if k > 0 {
			running = running.MultiplyVec(p.Weight)
		}

		p1 := DirectIllumination(sampler, pathSpace, mats, lights, p.Vertex, p.TowardsPrev(), t.config)
		p2 := sampleLightSubpathConnection(sampler, pathSpace, mats, lights, p.Vertex, p.TowardsPrev(), t.config)

		var combined core.Color3
		if k == 0 {
			combined = p1.Add(p2.Multiply(0.5))
		} else {
			combined = p1.Add(p2).Multiply(0.5)
		}
		radiance = radiance.Add(running.MultiplyVec(combined))
	}
	return radiance
}

// sampleLightSubpathConnection samples a light's emission surface and one
// scattered direction from it, traces that single edge into the scene,
// and connects the resulting vertex back to (vertex, o) via a shadow
// ray. This is the two-vertex light-subpath term used by BidirectLT2Tracer
// (and reused, generalized to arbitrary subpath lengths, by the
// bidirectional estimator in bidirectional.go).
func sampleLightSubpathConnection(sampler core.Sampler, pathSpace core.PathSpace, mats core.MaterialContainer, lights core.LightSources, vertex core.IntersectInfo, o core.Vec3, config core.SamplingConfig) core.Color3 {
	if lights.Count() == 0 {
		return core.Color3{}
	}

	light, lightProb := lights.SampleLight(sampler)
	if light == nil || lightProb <= 0 {
		return core.Color3{}
	}

	emission := light.SampleEmission(sampler)
	if emission.Surface.AreaPDF <= 0 || emission.SolidAnglePDF <= 0 {
		return core.Color3{}
	}

	cos0 := emission.Surface.Normal.Dot(emission.Direction)
	if cos0 <= 0 {
		return core.Color3{}
	}

	r0 := core.NewRay(emission.Surface.Point, emission.Direction)
	lightPath := SamplePath(sampler, r0, emission.SolidAnglePDF, pathSpace, mats, 1, 0)
	if len(lightPath) == 0 {
		return core.Color3{}
	}
	bounce := lightPath[0]

	connection := connectVertices(pathSpace, mats, vertex, o, bounce.Vertex, bounce.TowardsPrev(), config.EpsilonStart, config.EpsilonEnd)
	if connection.IsZero() {
		return core.Color3{}
	}

	le := light.Radiance(emission.Direction, emission.Surface.Normal)
	alphaLight := le.Multiply(cos0 / (emission.Surface.AreaPDF * emission.SolidAnglePDF * lightProb))

	return connection.MultiplyVec(alphaLight)
}
