package transport

import (
	"github.com/rjstrand/lumentrace/pkg/core"
)

// transportIllumSource connects vertex to a sampled point on light via a
// shadow ray, returning the light's contribution to vertex's reflected
// radiance along o, or zero if the connection is occluded, backfacing,
// or has zero density. epsStart/epsEnd trim the shadow ray away from
// both endpoints to dodge self-intersection at the surfaces it starts
// and ends on.
func transportIllumSource(pathSpace core.PathSpace, mats core.MaterialContainer, vertex core.IntersectInfo, o core.Vec3, light core.Light, lightProb float64, epsStart, epsEnd float64, sample core.Vec2) core.Color3 {
	ls := light.Sample(vertex.Point, vertex.Normal, sample)
	if ls.PDF <= 0 || lightProb <= 0 {
		return core.Color3{}
	}

	cosTheta := vertex.Normal.Dot(ls.Direction)
	if cosTheta <= 0 {
		return core.Color3{}
	}

	shadow := core.NewRay(vertex.Point, ls.Direction)
	if pathSpace.HasIntersect(shadow, epsStart, ls.Distance-epsEnd) {
		return core.Color3{}
	}

	f := brdf(mats, vertex, o, ls.Direction, core.Radiance)
	if f.IsZero() {
		return core.Color3{}
	}

	return ls.Emission.MultiplyVec(f).Multiply(cosTheta / (ls.PDF * lightProb))
}

// connectVertices is the general two-vertex shadow connection shared by
// every transport strategy that joins a camera-side vertex to a
// light-side vertex directly (rather than through a known light
// surface point): visibility, both ends' BRDF response, and the
// cos*cos/distance^2 geometry term. Either side being specular collapses
// the result to zero, which is physically correct — a delta BRDF has no
// response to an arbitrary connection direction.
func connectVertices(pathSpace core.PathSpace, mats core.MaterialContainer, camVertex core.IntersectInfo, camO core.Vec3, lightVertex core.IntersectInfo, lightO core.Vec3, epsStart, epsEnd float64) core.Color3 {
	d := lightVertex.Point.Subtract(camVertex.Point)
	distance := d.Length()
	if distance <= 0 {
		return core.Color3{}
	}
	dir := d.Multiply(1.0 / distance)

	cosCam := camVertex.Normal.Dot(dir)
	cosLight := lightVertex.Normal.Dot(dir.Negate())
	if cosCam <= 0 || cosLight <= 0 {
		return core.Color3{}
	}

	shadow := core.NewRay(camVertex.Point, dir)
	if pathSpace.HasIntersect(shadow, epsStart, distance-epsEnd) {
		return core.Color3{}
	}

	fCam := brdf(mats, camVertex, camO, dir, core.Radiance)
	if fCam.IsZero() {
		return core.Color3{}
	}
	fLight := brdf(mats, lightVertex, lightO, dir.Negate(), core.Importance)
	if fLight.IsZero() {
		return core.Color3{}
	}

	geometry := cosCam * cosLight / (distance * distance)
	return fCam.MultiplyVec(fLight).Multiply(geometry)
}

// sampleDirectIllumination draws one light, one point on it, and one
// shadow-ray connection to vertex.
func sampleDirectIllumination(sampler core.Sampler, pathSpace core.PathSpace, mats core.MaterialContainer, lights core.LightSources, vertex core.IntersectInfo, o core.Vec3, config core.SamplingConfig) core.Color3 {
	light, lightProb := lights.SampleLight(sampler)
	if light == nil {
		return core.Color3{}
	}
	return transportIllumSource(pathSpace, mats, vertex, o, light, lightProb, config.EpsilonStart, config.EpsilonEnd, sampler.Get2D())
}

// DirectIllumination is the next-event-estimation term (spec.md C7):
// the average of config.MultiLightSamps independent single-light shadow
// connections from vertex back toward o.
func DirectIllumination(sampler core.Sampler, pathSpace core.PathSpace, mats core.MaterialContainer, lights core.LightSources, vertex core.IntersectInfo, o core.Vec3, config core.SamplingConfig) core.Color3 {
	if lights.Count() == 0 {
		return core.Color3{}
	}

	samps := config.MultiLightSamps
	if samps < 1 {
		samps = 1
	}

	sum := core.Color3{}
	for k := 0; k < samps; k++ {
		sum = sum.Add(sampleDirectIllumination(sampler, pathSpace, mats, lights, vertex, o, config))
	}
	return sum.Multiply(1.0 / float64(samps))
}
