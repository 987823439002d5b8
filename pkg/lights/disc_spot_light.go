package lights

import (
	"math"

	"github.com/rjstrand/lumentrace/pkg/core"
)

// spotEmitter is the material backing DiscSpotLight: emission falls off
// from full intensity inside the inner cone to zero outside the outer
// cone, smoothed by a quartic curve through the transition band.
type spotEmitter struct {
	baseEmission    core.Color3
	spotDirection   core.Vec3
	cosTotalWidth   float64
	cosFalloffStart float64
}

func (e *spotEmitter) Eval(uv core.Vec2, normal, o, i core.Vec3, mode core.TransportMode) core.Color3 {
	return core.Color3{}
}

func (e *spotEmitter) Sample(sampler core.Sampler, uv core.Vec2, normal, o core.Vec3) (core.Vec3, float64) {
	return core.Vec3{}, 0
}

func (e *spotEmitter) Radiance(w, normal core.Vec3) core.Color3 {
	if w.Dot(normal) <= 0 {
		return core.Color3{}
	}
	return e.baseEmission.Multiply(e.falloff(w.Dot(e.spotDirection)))
}

// falloff is 1 inside the inner cone, 0 outside the outer cone, and a
// quartic ramp between the two.
func (e *spotEmitter) falloff(cosAngle float64) float64 {
	if cosAngle < e.cosTotalWidth {
		return 0
	}
	if cosAngle >= e.cosFalloffStart {
		return 1
	}
	delta := (cosAngle - e.cosTotalWidth) / (e.cosFalloffStart - e.cosTotalWidth)
	return delta * delta * delta * delta
}

// DiscSpotLight is a directional spot light implemented as a disc area
// light whose material attenuates emission outside a cone — the falloff
// lives entirely in spotEmitter, so DiscSpotLight itself adds nothing to
// DiscLight's Sample/PDF/SampleEmission beyond the material it installs.
type DiscSpotLight struct {
	*DiscLight
}

// NewDiscSpotLight creates a spot light at `from`, aimed at `to`, with
// coneAngleDegrees as the total (outer) cone half-angle and
// coneDeltaAngleDegrees as the width of the falloff transition band
// measured inward from the outer edge.
func NewDiscSpotLight(from, to, emission core.Vec3, coneAngleDegrees, coneDeltaAngleDegrees, radius float64) *DiscSpotLight {
	direction := to.Subtract(from).Normalize()
	totalWidthRadians := coneAngleDegrees * math.Pi / 180.0
	falloffStartRadians := (coneAngleDegrees - coneDeltaAngleDegrees) * math.Pi / 180.0

	mat := &spotEmitter{
		baseEmission:    emission,
		spotDirection:   direction,
		cosTotalWidth:   math.Cos(totalWidthRadians),
		cosFalloffStart: math.Cos(falloffStartRadians),
	}

	return &DiscSpotLight{DiscLight: NewDiscLight(from, direction, radius, mat)}
}
