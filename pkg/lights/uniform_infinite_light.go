package lights

import (
	"math"

	"github.com/rjstrand/lumentrace/pkg/core"
)

// UniformInfiniteLight is a constant-radiance environment light, used as a
// flat ambient background when a scene has no sky gradient.
type UniformInfiniteLight struct {
	emission    core.Color3
	worldCenter core.Vec3
	worldRadius float64
}

// NewUniformInfiniteLight creates a uniform infinite light. Preprocess must
// be called once the scene's bounding sphere is known, before SampleEmission
// is used.
func NewUniformInfiniteLight(emission core.Color3) *UniformInfiniteLight {
	return &UniformInfiniteLight{emission: emission}
}

func (uil *UniformInfiniteLight) Type() core.LightType { return core.LightTypeInfinite }

// Preprocess records the scene's bounding sphere, needed to convert
// directional emission into the disk-sampling parameterization
// SampleEmission uses to seed light subpaths.
func (uil *UniformInfiniteLight) Preprocess(worldCenter core.Vec3, worldRadius float64) error {
	uil.worldCenter = worldCenter
	uil.worldRadius = worldRadius
	return nil
}

func (uil *UniformInfiniteLight) Radiance(w, normal core.Vec3) core.Color3 {
	return uil.emission
}

func (uil *UniformInfiniteLight) ProjectedRadiance(w, normal core.Vec3) core.Color3 {
	cosTheta := w.Dot(normal)
	if cosTheta <= 0 {
		return core.Color3{}
	}
	return uil.emission.Multiply(cosTheta)
}

// Sample draws a cosine-weighted direction over the shading point's
// hemisphere; the cosine term cancels against the rendering equation's own
// cosine factor, which is why environment lights importance-sample this way
// rather than uniformly over the sphere.
func (uil *UniformInfiniteLight) Sample(point, normal core.Vec3, sample core.Vec2) core.LightSample {
	direction := core.SampleCosineHemisphere(normal, sample)
	cosTheta := direction.Dot(normal)

	return core.LightSample{
		Point:     point.Add(direction.Multiply(1e10)),
		Normal:    direction.Negate(),
		Direction: direction,
		Distance:  math.Inf(1),
		Emission:  uil.emission,
		PDF:       cosTheta / math.Pi,
	}
}

func (uil *UniformInfiniteLight) PDF(point, normal, direction core.Vec3) float64 {
	cosTheta := direction.Dot(normal)
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}

func (uil *UniformInfiniteLight) SampleEmissionSurface(sampler core.Sampler) core.SurfaceSample {
	point, direction, areaPDF, _ := sampleInfiniteEmission(uil.worldCenter, uil.worldRadius, sampler)
	return core.SurfaceSample{Point: point, Normal: direction.Negate(), AreaPDF: areaPDF}
}

// SampleEmission draws its own direction rather than delegating to
// SampleEmissionSurface: for an infinite light the emission point and
// direction are coupled (the point lies on a disk perpendicular to the
// sampled direction), so sampling them independently would desynchronize
// the pair SampleEmissionSurface returns from the one SampleEmission needs.
func (uil *UniformInfiniteLight) SampleEmission(sampler core.Sampler) core.EmissionSample {
	point, direction, areaPDF, dirPDF := sampleInfiniteEmission(uil.worldCenter, uil.worldRadius, sampler)
	surface := core.SurfaceSample{Point: point, Normal: direction, AreaPDF: areaPDF}
	return core.EmissionSample{Surface: surface, Direction: direction, SolidAnglePDF: dirPDF}
}
