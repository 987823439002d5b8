package transport

import (
	"github.com/rjstrand/lumentrace/pkg/core"
)

// mutateDepthBidirect is the bounce count past which both subpaths of
// BidirectMISTracer start applying Russian roulette.
const mutateDepthBidirect = 1

// BidirectMISTracer is the bidirectional estimator: it samples a camera
// subpath and an independent light subpath, then sums every way the two
// can be joined into a complete light-carrying path (spec.md C9). Despite
// the name, weighting across those joins is uniform rather than a true
// power-heuristic MIS combination — every partition of a given total
// path length contributes equally, averaged within that length and
// summed across lengths. This is a deliberate simplification over full
// balance/power-heuristic MIS: it sums every connectible camera/light
// subpath pair without weighting by each pair's relative sampling
// efficiency, so it converges to the right image but not with MIS's
// variance reduction.
type BidirectMISTracer struct {
	config core.SamplingConfig
}

func NewBidirectMISTracer(config core.SamplingConfig) *BidirectMISTracer {
	return &BidirectMISTracer{config: config}
}

func (t *BidirectMISTracer) Sample(sampler core.Sampler, ray core.Ray, hit FirstHit, pathSpace core.PathSpace, mats core.MaterialContainer, lights core.LightSources) core.Color3 {
	camPath := SamplePathFromHit(sampler, ray, hit, pathSpace, mats, t.config.MaxPathLen, mutateDepthBidirect)
	if len(camPath) == 0 || lights.Count() == 0 {
		return core.Color3{}
	}

	light, lightProb := lights.SampleLight(sampler)
	if light == nil || lightProb <= 0 {
		return core.Color3{}
	}
	emission := light.SampleEmission(sampler)
	cos0 := emission.Surface.Normal.Dot(emission.Direction)
	if emission.Surface.AreaPDF <= 0 || emission.SolidAnglePDF <= 0 || cos0 <= 0 {
		return core.Color3{}
	}

	lightRay := core.NewRay(emission.Surface.Point, emission.Direction)
	lightPath := SamplePath(sampler, lightRay, emission.SolidAnglePDF, pathSpace, mats, t.config.MaxPathLen, mutateDepthBidirect)

	le := light.Radiance(emission.Direction, emission.Surface.Normal)
	lightRoot := le.Multiply(cos0 / (emission.SolidAnglePDF * emission.Surface.AreaPDF * lightProb))

	camTransport := prefixTransport(camPath)
	lightTransport := prefixTransport(lightPath)

	// plen sweeps total path length; within a plen bucket, camPlen and
	// lightPlen partition it between the two subpaths. Both are
	// one-offset *counts* of real vertices used from their subpath (0
	// meaning none), distinct from the 0-based array index of the last
	// vertex used (camPlen-1/lightPlen-1) — conflating the two misroutes
	// the camPlen==1/lightPlen==0 partition (ordinary NEE off the
	// camera's primary visible vertex) into the camPlen==0 sentinel.
	maxPlen := len(camPath) + len(lightPath) + 1
	radiance := core.Color3{}
	for plen := 1; plen <= maxPlen; plen++ {
		bucketSum := core.Color3{}
		bucketCount := 0

		camPlen := plen - 1
		if camPlen > len(camPath) {
			camPlen = len(camPath)
		}
		lightPlen := plen - 1 - camPlen

		for camPlen >= 0 && lightPlen <= len(lightPath) {
			bucketCount++
			bucketSum = bucketSum.Add(t.evaluatePartition(
				pathSpace, mats, camPath, camTransport, camPlen,
				lightPath, lightTransport, lightPlen,
				light, lightProb, emission, lightRoot,
			))
			camPlen--
			lightPlen++
		}

		if bucketCount > 0 {
			radiance = radiance.Add(bucketSum.Multiply(1.0 / float64(bucketCount)))
		}
	}
	return radiance
}

// evaluatePartition dispatches to one of the four cases spec.md §4.7
// names for joining a camera subpath prefix of camPlen real vertices
// with a light subpath prefix of lightPlen real vertices. camPlen/
// lightPlen of 0 mean the respective subpath contributes no vertex to
// this partition at all, not "its first vertex" — that's camPlen/
// lightPlen of 1, indexed into the subpath at camPlen-1/lightPlen-1.
func (t *BidirectMISTracer) evaluatePartition(
	pathSpace core.PathSpace, mats core.MaterialContainer,
	camPath Subpath, camTransport []core.Color3, camPlen int,
	lightPath Subpath, lightTransport []core.Color3, lightPlen int,
	light core.Light, lightProb float64, emission core.EmissionSample, lightRoot core.Color3,
) core.Color3 {
	switch {
	case camPlen == 0 && lightPlen == 0:
		// Case 1: the camera ray hit a light directly, no join vertex
		// from either subpath involved.
		if camPath[0].Light == nil {
			return core.Color3{}
		}
		return camTransport[0].MultiplyVec(camPath[0].Light.Radiance(camPath[0].TowardsPrev(), camPath[0].Vertex.Normal))

	case lightPlen == 0:
		// Case 2: next-event estimation from the light's sampled
		// surface point to the camera subpath's camPlen'th vertex
		// (camPlen>=1 here, so this covers the primary visible vertex
		// too).
		camIdx := camPlen - 1
		cam := camPath[camIdx]
		contribution := connectToLightSurface(pathSpace, mats, cam.Vertex, cam.TowardsPrev(), light, lightProb, emission, t.config.EpsilonStart, t.config.EpsilonEnd)
		return camTransport[camIdx].MultiplyVec(contribution)

	case camPlen == 0:
		// Case 3: the chance of a light subpath landing directly on a
		// pinhole lens is zero — no camera vertex to join through.
		return core.Color3{}

	default:
		// Case 4: inner join between the two subpaths' last vertices.
		camIdx := camPlen - 1
		lightIdx := lightPlen - 1
		cam := camPath[camIdx]
		lightVert := lightPath[lightIdx]
		connection := connectVertices(pathSpace, mats, cam.Vertex, cam.TowardsPrev(), lightVert.Vertex, lightVert.TowardsPrev(), t.config.EpsilonStart, t.config.EpsilonEnd)
		if connection.IsZero() {
			return core.Color3{}
		}
		weight := camTransport[camIdx].MultiplyVec(lightRoot).MultiplyVec(lightTransport[lightIdx])
		return connection.MultiplyVec(weight)
	}
}

// prefixTransport returns, for each pathlet index k, the running product
// of every step weight from pathlet 1 up to k (index 0 is always the
// identity, since pathlet 0's own throughput relative to whatever seeded
// the subpath is accounted for by the caller, not by the walk itself).
func prefixTransport(path Subpath) []core.Color3 {
	transport := make([]core.Color3, len(path))
	if len(path) == 0 {
		return transport
	}
	transport[0] = core.NewVec3(1, 1, 1)
	running := transport[0]
	for k := 1; k < len(path); k++ {
		running = running.MultiplyVec(path[k].Weight)
		transport[k] = running
	}
	return transport
}

// connectToLightSurface is case 2's shadow connection: it joins vertex
// directly to the light subpath's sampled emission-surface point (area
// sampling, not the traced one-bounce vertex connectVertices expects),
// the same formula pkg/transport's plain next-event estimation uses.
func connectToLightSurface(pathSpace core.PathSpace, mats core.MaterialContainer, vertex core.IntersectInfo, o core.Vec3, light core.Light, lightProb float64, emission core.EmissionSample, epsStart, epsEnd float64) core.Color3 {
	toLight := emission.Surface.Point.Subtract(vertex.Point)
	distance := toLight.Length()
	if distance <= 0 {
		return core.Color3{}
	}
	dir := toLight.Multiply(1.0 / distance)

	cosCam := vertex.Normal.Dot(dir)
	cosLight := emission.Surface.Normal.Dot(dir.Negate())
	if cosCam <= 0 || cosLight <= 0 {
		return core.Color3{}
	}

	shadow := core.NewRay(vertex.Point, dir)
	if pathSpace.HasIntersect(shadow, epsStart, distance-epsEnd) {
		return core.Color3{}
	}

	f := brdf(mats, vertex, o, dir, core.Radiance)
	if f.IsZero() {
		return core.Color3{}
	}

	le := light.Radiance(dir.Negate(), emission.Surface.Normal)
	geometry := cosCam * cosLight / (distance * distance)
	return f.MultiplyVec(le).Multiply(geometry / (emission.Surface.AreaPDF * lightProb))
}
