package material

import "github.com/rjstrand/lumentrace/pkg/core"

// Emissive is a light-emitting material: it never scatters, only emits.
type Emissive struct {
	Emission core.Color3
}

// NewEmissive creates an emissive material with the given radiance.
func NewEmissive(emission core.Color3) *Emissive {
	return &Emissive{Emission: emission}
}

func (e *Emissive) Eval(uv core.Vec2, normal, o, i core.Vec3, mode core.TransportMode) core.Color3 {
	return core.Color3{}
}

func (e *Emissive) Sample(sampler core.Sampler, uv core.Vec2, normal, o core.Vec3) (core.Vec3, float64) {
	return core.Vec3{}, 0
}

// Radiance returns the emitted radiance along w, zero unless w is on the
// same side of the surface as normal. The teacher's Emit had no such
// check; omitting it double-counts light leaking through the backface of
// a one-sided emitter.
func (e *Emissive) Radiance(w, normal core.Vec3) core.Color3 {
	if w.Dot(normal) <= 0 {
		return core.Color3{}
	}
	return e.Emission
}
