package core

// GeoRef is the opaque geometry back-reference carried on an IntersectInfo
// (C2). Materials are looked up through it rather than by a separate
// material-id table: every concrete Shape already carries its own
// Material, so MaterialContainer.Find (below) collapses to GeoRef.Material
// without losing the external interface spec.md names.
type GeoRef interface {
	Material() Material
}

// IntersectInfo is the intersection record shared by every ray query
// (C2). Invariant: Valid implies T > 0 and Normal is unit length.
type IntersectInfo struct {
	Point  Vec3
	Normal Vec3 // unit, outward-facing
	UV     Vec2
	T      float64
	Geo    GeoRef
	Valid  bool
}

// Shape is a piece of geometry the path-space oracle can intersect (C3
// collaborator). BoundingBox feeds BVH construction.
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (*IntersectInfo, bool)
	BoundingBox() AABB
	Material() Material
}

// PathSpace answers visibility queries against the scene (C3). Implemented
// by pkg/pathspace.BVH. Guaranteed deterministic for a fixed scene
// snapshot and safe for concurrent readers.
type PathSpace interface {
	// Intersect returns the closest hit with T > epsilon; Valid is false
	// if none.
	Intersect(ray Ray) IntersectInfo

	// HasIntersect reports any-hit within [tMin, tMax].
	HasIntersect(ray Ray, tMin, tMax float64) bool

	// AABB returns the world bound, used by the position/normal tracers.
	AABB() AABB
}

// TransportMode distinguishes the two adjoint conventions a BRDF may be
// evaluated under: radiance transport (camera subpaths) and importance
// transport (light subpaths). Materials that are not perfectly reciprocal
// would need to know which; the materials in this repository are all
// reciprocal and ignore it, but it's threaded through so a future
// non-reciprocal material (e.g. a shading-normal-adjusted BRDF) has
// somewhere to hook in.
type TransportMode int

const (
	Radiance TransportMode = iota
	Importance
)

// Material is the BRDF model (C4). Eval and Sample both operate in world
// space against a local frame (UV, N).
type Material interface {
	// Eval returns the BRDF value f_r(o,i) at the given surface point.
	Eval(uv Vec2, normal, o, i Vec3, mode TransportMode) Color3

	// Sample draws an incoming direction i and returns it along with its
	// projected-solid-angle density (pdf divided by cos(theta_i)). A
	// returned density of 0 means no further propagation (absorption);
	// callers must check before dividing by it.
	Sample(sampler Sampler, uv Vec2, normal, o Vec3) (i Vec3, densPSSA float64)
}

// SpecularMaterial is implemented by materials whose BRDF is a delta
// function (Metal, Dielectric) — Eval/Sample's finite-pdf contract can't
// express a direction with zero measure, so these materials are detected
// via this interface and sampled directly: the returned attenuation is
// the full contribution (BRDF already divided by its own sampling
// density), bypassing the Eval/densPSSA division entirely.
type SpecularMaterial interface {
	SampleSpecular(sampler Sampler, uv Vec2, normal, o Vec3) (i Vec3, attenuation Color3, ok bool)
}

// Emitter is implemented by materials that emit light directly: Emissive
// in pkg/material and the spot emitter behind lights.DiscSpotLight.
type Emitter interface {
	// Radiance returns the emitted radiance along w (pointing away from
	// the surface) given the surface normal. Must be zero unless w and n
	// are in the same hemisphere.
	Radiance(w, normal Vec3) Color3
}

// MaterialContainer maps opaque geometry to a material in constant time
// (C4 external interface). Every Shape in this repository already stores
// its Material directly, so the container below is a thin pass-through
// that exists to satisfy the external interface without introducing a
// second, redundant material-id table.
type MaterialContainer interface {
	Find(geo GeoRef) Material
}

// GeoMaterialContainer is the trivial MaterialContainer backed by the
// geometry's own Material() accessor.
type GeoMaterialContainer struct{}

func (GeoMaterialContainer) Find(geo GeoRef) Material { return geo.Material() }

// LightType distinguishes finite (area) emitters from point/spot sources
// and from infinite (environment) lights, which sample differently.
type LightType string

const (
	LightTypeArea     LightType = "area"
	LightTypePoint    LightType = "point"
	LightTypeInfinite LightType = "infinite"
)

// SurfaceSample is a point on a light's emissive surface plus its area
// density (used by both direct illumination and BDPT light-subpath seeding).
type SurfaceSample struct {
	Point   Vec3
	Normal  Vec3
	AreaPDF float64
}

// EmissionSample is a SurfaceSample extended with an outgoing direction
// and its solid-angle density, as drawn when seeding a light subpath.
type EmissionSample struct {
	Surface       SurfaceSample
	Direction     Vec3
	SolidAnglePDF float64
}

// LightSample is what a Light returns when sampled toward a shading
// point for direct illumination: a direction from that point to the
// light, plus the information needed to weight the contribution.
type LightSample struct {
	Point     Vec3
	Normal    Vec3
	Direction Vec3 // from the shading point toward the light
	Distance  float64
	Emission  Color3
	PDF       float64 // solid-angle density at the shading point
}

// Light is the emission model (C5). w in Radiance/ProjectedRadiance points
// away from the light's surface (toward the direction light travels).
type Light interface {
	Type() LightType

	// Radiance returns emitted radiance along w from a surface with
	// normal n. Must be zero when w.Dot(n) <= 0 (spec invariant).
	Radiance(w, normal Vec3) Color3

	// ProjectedRadiance is Radiance(w, n) * max(0, w.Dot(n)).
	ProjectedRadiance(w, normal Vec3) Color3

	// Sample samples this light toward point for direct illumination.
	Sample(point, normal Vec3, sample Vec2) LightSample

	// PDF is the solid-angle density of sampling direction from point
	// toward this light via Sample.
	PDF(point, normal, direction Vec3) float64

	// SampleEmissionSurface draws a point on the light's surface.
	SampleEmissionSurface(sampler Sampler) SurfaceSample

	// SampleEmission draws a surface point and an outgoing direction,
	// used to seed light subpaths in bidirectional transport.
	SampleEmission(sampler Sampler) EmissionSample
}

// LightSources is the scene-wide light container (C5 external interface).
type LightSources interface {
	// SampleLight discretely selects a light, returning it and the
	// probability mass with which it was selected.
	SampleLight(sampler Sampler) (Light, float64)

	// ObjLight reports whether geo is an emissive surface, returning the
	// associated Light if so.
	ObjLight(geo GeoRef) (Light, bool)

	Count() int
}

// Camera generates primary rays (external interface, C10 collaborator).
type Camera interface {
	// Projection returns the camera's projection matrix; the progressive
	// renderer resets its accumulator whenever this (or the resolution)
	// changes between calls.
	Projection() Mat4

	// Sample returns the primary ray through pixel (i, j) of a W x H
	// image and its direction-sampling density.
	Sample(i, j, width, height int, sampler Sampler) (ray Ray, pdf float64)
}

// Compositor is the presentation-layer collaborator the core writes
// finished pixels to (external interface; concrete tone-mapping lives in
// pkg/compositor, out of the core's scope per spec.md §1).
type Compositor interface {
	Width() int
	Height() int
	Set(i, j int, c Color3)
}

// SamplingConfig holds the configuration knobs named in spec.md §6.
type SamplingConfig struct {
	MaxPathLen      int     // default 5-8
	MultiLightSamps int     // default 1
	SamplesPerPass  int     // default 5
	EpsilonStart    float64 // default 1e-4
	EpsilonEnd      float64 // default 1e-3
}

// DefaultSamplingConfig returns the spec's named defaults.
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		MaxPathLen:      6,
		MultiLightSamps: 1,
		SamplesPerPass:  5,
		EpsilonStart:    1e-4,
		EpsilonEnd:      1e-3,
	}
}

// Logger is the minimal Printf-only logging surface; rlog.PrintfAdapter
// wraps an rlog.Logger to satisfy it.
type Logger interface {
	Printf(format string, args ...interface{})
}
