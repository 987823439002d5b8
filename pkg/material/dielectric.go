package material

import (
	"math"

	"github.com/rjstrand/lumentrace/pkg/core"
)

// Dielectric is a smooth refractive interface (glass, water) that both
// reflects and refracts according to Fresnel's equations, stochastically
// choosing one per sample via Schlick's approximation.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a dielectric material with the given index of
// refraction (1.5 for typical glass).
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

func (d *Dielectric) Eval(uv core.Vec2, normal, o, i core.Vec3, mode core.TransportMode) core.Color3 {
	return core.Color3{}
}

func (d *Dielectric) Sample(sampler core.Sampler, uv core.Vec2, normal, o core.Vec3) (core.Vec3, float64) {
	return core.Vec3{}, 0
}

// SampleSpecular chooses reflection or refraction at the interface. front
// is inferred from the sign of o.Dot(normal): the surface normal passed
// in by callers is always the outward-facing geometric normal, so a
// negative dot means the ray is exiting the medium.
func (d *Dielectric) SampleSpecular(sampler core.Sampler, uv core.Vec2, normal, o core.Vec3) (core.Vec3, core.Color3, bool) {
	front := o.Dot(normal) > 0
	n := normal
	var refractionRatio float64
	if front {
		refractionRatio = 1.0 / d.RefractiveIndex
	} else {
		refractionRatio = d.RefractiveIndex
		n = normal.Negate()
	}

	incident := o.Negate().Normalize()
	cosTheta := math.Min(-incident.Dot(n), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || schlickReflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = reflect(incident, n)
	} else {
		direction = refract(incident, n, refractionRatio)
	}

	return direction, core.NewVec3(1, 1, 1), true
}

// refract applies Snell's law to unit vector uv crossing an interface
// with normal n (pointing against uv) and relative index etaiOverEtat.
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// schlickReflectance is Schlick's approximation to the Fresnel
// reflectance of an unpolarized ray at the given incidence angle.
func schlickReflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
