// Package transport implements the path-sampling and transport-evaluation
// machinery: random-walk path construction (C6), shadow-ray direct
// illumination (C7), the unidirectional tracers (C8), and the
// bidirectional estimator (C9).
package transport

import (
	"github.com/rjstrand/lumentrace/pkg/core"
)

// Pathlet is one step of a random walk. Away points from this pathlet's
// vertex back toward the previous vertex (reverse of travel), matching
// the "the end of the vector is anchored rather than the beginning"
// convention this is ported from. Dens is only meaningful on a subpath's
// first pathlet: 1 for a camera subpath (the primary ray is deterministic
// given the pixel) or the light's own emission solid-angle density for a
// light subpath. Weight is the throughput ratio BRDF(o,i)*cos(n,i)/dens
// for the step that produced this pathlet from the previous vertex —
// already unified across finite-pdf and delta (specular) BRDFs, so the
// prefix-transport recurrence (bidirectional.go) never needs to
// re-evaluate a material. The walk sets Light only on pathlet 0 (from the
// FirstHit); UnidirectTracer fills it in on later pathlets whose vertex
// lies on an emissive surface. CondDens is dA[k], this vertex's
// sampling density converted from (projected) solid angle to area,
// conditioned on the previous vertex: the step's density times
// cos(normal, towards-prev) over the squared distance to the previous
// vertex. It's precomputed for every pathlet but zero for one reached
// through a specular (delta) bounce, which has no finite density to
// convert.
type Pathlet struct {
	Away     core.Vec3
	Dens     float64
	Weight   core.Color3
	Vertex   core.IntersectInfo
	Light    core.Light
	CondDens float64
}

// TowardsPrev returns the direction from this pathlet's vertex toward the
// previous one.
func (p Pathlet) TowardsPrev() core.Vec3 { return p.Away }

// Towards returns the direction this pathlet's vertex was reached from
// (the reverse of TowardsPrev).
func (p Pathlet) Towards() core.Vec3 { return p.Away.Negate() }

// Subpath is an ordered sequence of pathlets, at most SamplingConfig's
// MaxPathLen long.
type Subpath []Pathlet

// FirstHit is the precomputed, light-annotated primary intersection the
// progressive renderer batches per pixel (spec.md §4.8 step 2).
type FirstHit struct {
	Intersect core.IntersectInfo
	Light     core.Light
}

// ComputeFirstHits intersects every ray against the scene and resolves
// each valid, front-facing hit's light, if any.
func ComputeFirstHits(rays []core.Ray, pathSpace core.PathSpace, lights core.LightSources) []FirstHit {
	hits := make([]FirstHit, len(rays))
	for i, ray := range rays {
		info := pathSpace.Intersect(ray)
		if !info.Valid || info.Normal.Dot(ray.Direction.Negate()) <= 0 {
			continue
		}
		hits[i].Intersect = info
		if light, ok := lights.ObjLight(info.Geo); ok {
			hits[i].Light = light
		}
	}
	return hits
}

// survivalChance is the Russian-roulette survival probability applied to
// every bounce at or past a tracer's mutateDepth.
const survivalChance = 0.5

// SamplePath constructs a subpath by intersecting r0, seeding pathlet 0
// with density dens0, and continuing by BRDF sampling until maxLen,
// absorption, Russian-roulette termination past mutateDepth, or the walk
// leaves the scene. This is the bootstrap entry form used to seed light
// subpaths, where no first-hit has been precomputed. mutateDepth <= 0
// disables Russian roulette (every step up to maxLen is forced).
func SamplePath(sampler core.Sampler, r0 core.Ray, dens0 float64, pathSpace core.PathSpace, mats core.MaterialContainer, maxLen, mutateDepth int) Subpath {
	if maxLen == 0 {
		return nil
	}
	vert0 := pathSpace.Intersect(r0)
	if !vert0.Valid || vert0.Normal.Dot(r0.Direction.Negate()) <= 0 {
		return nil
	}

	path := make(Subpath, 1, maxLen)
	path[0] = Pathlet{
		Away:     r0.Direction.Negate(),
		Dens:     dens0,
		Vertex:   vert0,
		CondDens: conditionalAreaDensity(dens0, vert0.Normal, r0.Direction.Negate(), r0.Origin, vert0.Point),
	}
	return continuePath(sampler, path, pathSpace, mats, maxLen, mutateDepth)
}

// SamplePathFromHit is the camera entry form: it reuses a precomputed
// FirstHit (and its resolved light) instead of re-intersecting r0, with
// density fixed at 1 since the camera ray itself is deterministic given
// the pixel.
func SamplePathFromHit(sampler core.Sampler, r0 core.Ray, hit FirstHit, pathSpace core.PathSpace, mats core.MaterialContainer, maxLen, mutateDepth int) Subpath {
	if !hit.Intersect.Valid || maxLen == 0 {
		return nil
	}

	path := make(Subpath, 1, maxLen)
	path[0] = Pathlet{
		Away:     r0.Direction.Negate(),
		Dens:     1.0,
		Vertex:   hit.Intersect,
		Light:    hit.Light,
		CondDens: conditionalAreaDensity(1.0, hit.Intersect.Normal, r0.Direction.Negate(), r0.Origin, hit.Intersect.Point),
	}
	return continuePath(sampler, path, pathSpace, mats, maxLen, mutateDepth)
}

// conditionalAreaDensity converts a (projected) solid-angle sampling
// density into an area density conditioned on the vertex it was sampled
// from: dens * cos(normal, towardsPrev) / t^2, where t is the distance
// between the new vertex and the one it was sampled from. Returns 0 if
// the two vertices coincide, to avoid dividing by zero.
func conditionalAreaDensity(dens float64, normal, towardsPrev, prevPoint, point core.Vec3) float64 {
	t := point.Subtract(prevPoint).Length()
	if t == 0 {
		return 0
	}
	cos := normal.Dot(towardsPrev)
	return dens * cos / (t * t)
}

// continuePath is the recursive step of spec.md §4.4 turned into an
// explicit loop: draw a BRDF direction from the last vertex, stop if its
// density is zero or the new ray leaves the scene or hits a backface,
// otherwise append the new pathlet and keep walking. Once the walk
// reaches mutateDepth, every further bounce survives with probability
// survivalChance, its weight scaled by 1/survivalChance to keep the
// estimator unbiased.
func continuePath(sampler core.Sampler, path Subpath, pathSpace core.PathSpace, mats core.MaterialContainer, maxLen, mutateDepth int) Subpath {
	for len(path) < maxLen {
		if mutateDepth > 0 && len(path) >= mutateDepth {
			if sampler.Get1D() >= survivalChance {
				break
			}
		}

		last := path[len(path)-1]
		direction, weight, dens, ok := sampleBRDFStep(sampler, mats, last.Vertex, last.TowardsPrev())
		if !ok {
			break
		}

		next := pathSpace.Intersect(core.NewRay(last.Vertex.Point, direction))
		if !next.Valid || next.Normal.Dot(direction.Negate()) <= 0 {
			break
		}

		if mutateDepth > 0 && len(path) >= mutateDepth {
			weight = weight.Multiply(1.0 / survivalChance)
		}
		condDens := conditionalAreaDensity(dens, next.Normal, direction.Negate(), last.Vertex.Point, next.Point)
		path = append(path, Pathlet{Away: direction.Negate(), Weight: weight, Vertex: next, CondDens: condDens})
	}
	return path
}

// sampleBRDFStep draws the next walk direction from the BRDF at vert
// given outgoing direction o, and returns the throughput weight for that
// step along with the projected-solid-angle density the direction was
// drawn from. Finite-pdf materials contribute Eval(o,i)/densPSSA
// (cos(theta_i) already cancels against the material's own
// projected-solid-angle density — see pkg/material); core.SpecularMaterial
// contributes its own attenuation directly, bypassing Eval/dens entirely
// since a delta BRDF has no finite density to divide by, so its reported
// density is 0. When SampleSpecular reports ok=false (e.g. a Mix whose
// chosen branch is not specular), the step falls back to Sample/Eval.
func sampleBRDFStep(sampler core.Sampler, mats core.MaterialContainer, vert core.IntersectInfo, o core.Vec3) (direction core.Vec3, weight core.Color3, densPSSA float64, ok bool) {
	mat := mats.Find(vert.Geo)
	if specular, isSpecular := mat.(core.SpecularMaterial); isSpecular {
		i, attenuation, sampled := specular.SampleSpecular(sampler, vert.UV, vert.Normal, o)
		if sampled {
			return i, attenuation, 0, true
		}
	}

	i, dens := mat.Sample(sampler, vert.UV, vert.Normal, o)
	if dens == 0 {
		return core.Vec3{}, core.Color3{}, 0, false
	}
	weight = mat.Eval(vert.UV, vert.Normal, o, i, core.Radiance).Multiply(1.0 / dens)
	return i, weight, dens, true
}

// brdf evaluates the raw BRDF value at vert (no sampling, no cos term
// folded in), used by shadow-ray connections where the direction i comes
// from the light rather than the material's own sampler. Specular
// materials always evaluate to zero here, which is physically correct:
// a delta BRDF has zero measure against an arbitrary direction, so a
// shadow ray can never connect through a mirror or glass surface.
func brdf(mats core.MaterialContainer, vert core.IntersectInfo, o, i core.Vec3, mode core.TransportMode) core.Color3 {
	return mats.Find(vert.Geo).Eval(vert.UV, vert.Normal, o, i, mode)
}
