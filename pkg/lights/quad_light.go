package lights

import (
	"math"

	"github.com/rjstrand/lumentrace/pkg/core"
	"github.com/rjstrand/lumentrace/pkg/geometry"
)

// QuadLight is a rectangular area light, the ceiling light of the Cornell
// box scene.
type QuadLight struct {
	*geometry.Quad
	Area float64
}

// NewQuadLight creates a new quad light from a corner point and two edge
// vectors; Area is cached since PDF() needs it on every call.
func NewQuadLight(corner, u, v core.Vec3, mat core.Material) *QuadLight {
	quad := geometry.NewQuad(corner, u, v, mat)
	return &QuadLight{Quad: quad, Area: u.Cross(v).Length()}
}

func (ql *QuadLight) geoRef() core.GeoRef { return ql.Quad }

func (ql *QuadLight) Type() core.LightType { return core.LightTypeArea }

func (ql *QuadLight) Radiance(w, normal core.Vec3) core.Color3 {
	if emitter, ok := ql.Mat.(core.Emitter); ok {
		return emitter.Radiance(w, normal)
	}
	return core.Color3{}
}

func (ql *QuadLight) ProjectedRadiance(w, normal core.Vec3) core.Color3 {
	cosTheta := w.Dot(normal)
	if cosTheta <= 0 {
		return core.Color3{}
	}
	return ql.Radiance(w, normal).Multiply(cosTheta)
}

// Sample draws a point uniformly on the quad and converts its area density
// to the solid-angle density a shading point at `point` sees.
func (ql *QuadLight) Sample(point, normal core.Vec3, sample core.Vec2) core.LightSample {
	samplePoint := ql.Corner.Add(ql.U.Multiply(sample.X)).Add(ql.V.Multiply(sample.Y))

	toLight := samplePoint.Subtract(point)
	distance := toLight.Length()
	direction := toLight.Multiply(1.0 / distance)

	cosTheta := math.Abs(ql.Normal.Dot(direction))
	if cosTheta < 1e-8 {
		return core.LightSample{Point: samplePoint, Normal: ql.Normal, Direction: direction, Distance: distance}
	}

	areaPDF := 1.0 / ql.Area
	solidAnglePDF := areaPDF * distance * distance / cosTheta

	return core.LightSample{
		Point:     samplePoint,
		Normal:    ql.Normal,
		Direction: direction,
		Distance:  distance,
		Emission:  ql.Radiance(direction.Negate(), ql.Normal),
		PDF:       solidAnglePDF,
	}
}

func (ql *QuadLight) PDF(point, normal, direction core.Vec3) float64 {
	ray := core.NewRay(point, direction)
	hit, ok := ql.Quad.Hit(ray, 1e-3, math.Inf(1))
	if !ok {
		return 0
	}

	cosTheta := math.Abs(ql.Normal.Dot(direction))
	if cosTheta < 1e-8 {
		return 0
	}

	areaPDF := 1.0 / ql.Area
	return areaPDF * hit.T * hit.T / cosTheta
}

func (ql *QuadLight) SampleEmissionSurface(sampler core.Sampler) core.SurfaceSample {
	s := sampler.Get2D()
	point := ql.Corner.Add(ql.U.Multiply(s.X)).Add(ql.V.Multiply(s.Y))
	return core.SurfaceSample{Point: point, Normal: ql.Normal, AreaPDF: 1.0 / ql.Area}
}

func (ql *QuadLight) SampleEmission(sampler core.Sampler) core.EmissionSample {
	return sampleCosineEmission(ql.SampleEmissionSurface(sampler), sampler)
}
