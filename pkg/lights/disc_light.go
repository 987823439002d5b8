package lights

import (
	"math"

	"github.com/rjstrand/lumentrace/pkg/core"
	"github.com/rjstrand/lumentrace/pkg/geometry"
)

// DiscLight is a circular area light.
type DiscLight struct {
	*geometry.Disc
}

// NewDiscLight creates a new circular disc light.
func NewDiscLight(center, normal core.Vec3, radius float64, mat core.Material) *DiscLight {
	return &DiscLight{Disc: geometry.NewDisc(center, normal, radius, mat)}
}

func (dl *DiscLight) geoRef() core.GeoRef { return dl.Disc }

func (dl *DiscLight) Type() core.LightType { return core.LightTypeArea }

func (dl *DiscLight) Radiance(w, normal core.Vec3) core.Color3 {
	if emitter, ok := dl.Mat.(core.Emitter); ok {
		return emitter.Radiance(w, normal)
	}
	return core.Color3{}
}

func (dl *DiscLight) ProjectedRadiance(w, normal core.Vec3) core.Color3 {
	cosTheta := w.Dot(normal)
	if cosTheta <= 0 {
		return core.Color3{}
	}
	return dl.Radiance(w, normal).Multiply(cosTheta)
}

func (dl *DiscLight) Sample(point, normal core.Vec3, sample core.Vec2) core.LightSample {
	samplePoint, discNormal := dl.Disc.SampleUniform(sample)

	toLight := samplePoint.Subtract(point)
	distance := toLight.Length()
	if distance == 0 {
		return core.LightSample{Point: samplePoint, Normal: discNormal, Direction: core.NewVec3(0, 1, 0), PDF: 1.0}
	}
	direction := toLight.Multiply(1.0 / distance)

	cosTheta := math.Abs(discNormal.Dot(direction))
	if cosTheta < 1e-6 {
		return core.LightSample{Point: samplePoint, Normal: discNormal, Direction: direction, Distance: distance}
	}

	areaPDF := 1.0 / (math.Pi * dl.Radius * dl.Radius)
	solidAnglePDF := areaPDF * distance * distance / cosTheta

	return core.LightSample{
		Point:     samplePoint,
		Normal:    discNormal,
		Direction: direction,
		Distance:  distance,
		Emission:  dl.Radiance(direction.Negate(), discNormal),
		PDF:       solidAnglePDF,
	}
}

func (dl *DiscLight) PDF(point, normal, direction core.Vec3) float64 {
	ray := core.NewRay(point, direction)
	hit, ok := dl.Disc.Hit(ray, 1e-3, math.Inf(1))
	if !ok {
		return 0
	}

	cosTheta := math.Abs(dl.Normal.Dot(direction))
	if cosTheta < 1e-6 {
		return 0
	}

	areaPDF := 1.0 / (math.Pi * dl.Radius * dl.Radius)
	return areaPDF * hit.T * hit.T / cosTheta
}

func (dl *DiscLight) SampleEmissionSurface(sampler core.Sampler) core.SurfaceSample {
	point, normal := dl.Disc.SampleUniform(sampler.Get2D())
	areaPDF := 1.0 / (math.Pi * dl.Radius * dl.Radius)
	return core.SurfaceSample{Point: point, Normal: normal, AreaPDF: areaPDF}
}

func (dl *DiscLight) SampleEmission(sampler core.Sampler) core.EmissionSample {
	return sampleCosineEmission(dl.SampleEmissionSurface(sampler), sampler)
}
