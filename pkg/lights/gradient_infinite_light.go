package lights

import (
	"math"

	"github.com/rjstrand/lumentrace/pkg/core"
)

// GradientInfiniteLight is a sky-gradient environment light: emission
// varies linearly between a bottom and a top color by the ray direction's
// Y component, the classic raytracer-in-a-weekend background.
type GradientInfiniteLight struct {
	topColor    core.Color3
	bottomColor core.Color3
	worldCenter core.Vec3
	worldRadius float64
}

// NewGradientInfiniteLight creates a gradient infinite light.
func NewGradientInfiniteLight(topColor, bottomColor core.Color3) *GradientInfiniteLight {
	return &GradientInfiniteLight{topColor: topColor, bottomColor: bottomColor}
}

func (gil *GradientInfiniteLight) Type() core.LightType { return core.LightTypeInfinite }

func (gil *GradientInfiniteLight) Preprocess(worldCenter core.Vec3, worldRadius float64) error {
	gil.worldCenter = worldCenter
	gil.worldRadius = worldRadius
	return nil
}

func (gil *GradientInfiniteLight) emissionForDirection(direction core.Vec3) core.Color3 {
	t := 0.5 * (direction.Y + 1.0)
	return gil.bottomColor.Multiply(1.0 - t).Add(gil.topColor.Multiply(t))
}

func (gil *GradientInfiniteLight) Radiance(w, normal core.Vec3) core.Color3 {
	return gil.emissionForDirection(w)
}

func (gil *GradientInfiniteLight) ProjectedRadiance(w, normal core.Vec3) core.Color3 {
	cosTheta := w.Dot(normal)
	if cosTheta <= 0 {
		return core.Color3{}
	}
	return gil.emissionForDirection(w).Multiply(cosTheta)
}

func (gil *GradientInfiniteLight) Sample(point, normal core.Vec3, sample core.Vec2) core.LightSample {
	direction := core.SampleCosineHemisphere(normal, sample)
	cosTheta := direction.Dot(normal)

	return core.LightSample{
		Point:     point.Add(direction.Multiply(1e10)),
		Normal:    direction.Negate(),
		Direction: direction,
		Distance:  math.Inf(1),
		Emission:  gil.emissionForDirection(direction),
		PDF:       cosTheta / math.Pi,
	}
}

func (gil *GradientInfiniteLight) PDF(point, normal, direction core.Vec3) float64 {
	cosTheta := direction.Dot(normal)
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}

func (gil *GradientInfiniteLight) SampleEmissionSurface(sampler core.Sampler) core.SurfaceSample {
	point, direction, areaPDF, _ := sampleInfiniteEmission(gil.worldCenter, gil.worldRadius, sampler)
	return core.SurfaceSample{Point: point, Normal: direction.Negate(), AreaPDF: areaPDF}
}

func (gil *GradientInfiniteLight) SampleEmission(sampler core.Sampler) core.EmissionSample {
	point, direction, areaPDF, dirPDF := sampleInfiniteEmission(gil.worldCenter, gil.worldRadius, sampler)
	surface := core.SurfaceSample{Point: point, Normal: direction, AreaPDF: areaPDF}
	return core.EmissionSample{Surface: surface, Direction: direction, SolidAnglePDF: dirPDF}
}
