package material

import (
	"math"

	"github.com/rjstrand/lumentrace/pkg/core"
)

// Lambertian is a perfectly diffuse BRDF: albedo/pi, constant over the
// hemisphere.
type Lambertian struct {
	Albedo ColorSource
}

// NewLambertian creates a solid-color Lambertian material.
func NewLambertian(albedo core.Color3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo.X, albedo.Y, albedo.Z)}
}

// NewTexturedLambertian creates a Lambertian material with a textured
// albedo.
func NewTexturedLambertian(albedo ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Eval returns albedo/pi when i lies in the hemisphere of the normal, zero
// otherwise; o is not checked.
func (l *Lambertian) Eval(uv core.Vec2, normal, o, i core.Vec3, mode core.TransportMode) core.Color3 {
	if i.Dot(normal) <= 0 {
		return core.Color3{}
	}
	return l.Albedo.Value(uv).Multiply(1.0 / math.Pi)
}

// Sample draws a cosine-weighted direction. Because pdf(w) = cos(theta)/pi,
// the projected-solid-angle density (pdf/cos) is the constant 1/pi.
func (l *Lambertian) Sample(sampler core.Sampler, uv core.Vec2, normal, o core.Vec3) (core.Vec3, float64) {
	i := core.SampleCosineHemisphere(normal, sampler.Get2D())
	return i, 1.0 / math.Pi
}
