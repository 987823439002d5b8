package material

import "github.com/rjstrand/lumentrace/pkg/core"

// Metal is a specular reflector, optionally fuzzed by perturbing the
// reflection direction inside a small sphere.
type Metal struct {
	Albedo   core.Color3
	Fuzzness float64 // 0 = perfect mirror, 1 = very fuzzy
}

// NewMetal creates a metal material, clamping fuzzness to [0,1].
func NewMetal(albedo core.Color3, fuzzness float64) *Metal {
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Eval is always zero: a delta BRDF has no finite density against an
// arbitrary direction pair.
func (m *Metal) Eval(uv core.Vec2, normal, o, i core.Vec3, mode core.TransportMode) core.Color3 {
	return core.Color3{}
}

// Sample reports no further propagation through the finite-pdf path;
// callers should use SampleSpecular instead.
func (m *Metal) Sample(sampler core.Sampler, uv core.Vec2, normal, o core.Vec3) (core.Vec3, float64) {
	return core.Vec3{}, 0
}

// SampleSpecular reflects o about normal, perturbing by Fuzzness, and
// returns the albedo as the full attenuation (no cosine or pdf division:
// a delta BRDF's contribution is already normalized by its own sampling).
func (m *Metal) SampleSpecular(sampler core.Sampler, uv core.Vec2, normal, o core.Vec3) (core.Vec3, core.Color3, bool) {
	reflected := reflect(o.Negate(), normal)

	if m.Fuzzness > 0 {
		perturbation := core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Fuzzness)
		reflected = reflected.Add(perturbation).Normalize()
	}

	if reflected.Dot(normal) <= 0 {
		return core.Vec3{}, core.Color3{}, false
	}
	return reflected, m.Albedo, true
}

// reflect returns the reflection of v about surface normal n.
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
