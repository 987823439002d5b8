package lights

import (
	"math"

	"github.com/rjstrand/lumentrace/pkg/core"
	"github.com/rjstrand/lumentrace/pkg/geometry"
)

// SphereLight is a spherical area light.
type SphereLight struct {
	*geometry.Sphere
}

// NewSphereLight creates a new spherical light.
func NewSphereLight(center core.Vec3, radius float64, mat core.Material) *SphereLight {
	return &SphereLight{Sphere: geometry.NewSphere(center, radius, mat)}
}

func (sl *SphereLight) geoRef() core.GeoRef { return sl.Sphere }

func (sl *SphereLight) Type() core.LightType { return core.LightTypeArea }

func (sl *SphereLight) Radiance(w, normal core.Vec3) core.Color3 {
	if emitter, ok := sl.Mat.(core.Emitter); ok {
		return emitter.Radiance(w, normal)
	}
	return core.Color3{}
}

func (sl *SphereLight) ProjectedRadiance(w, normal core.Vec3) core.Color3 {
	cosTheta := w.Dot(normal)
	if cosTheta <= 0 {
		return core.Color3{}
	}
	return sl.Radiance(w, normal).Multiply(cosTheta)
}

// Sample samples the sphere for direct lighting: uniformly over the whole
// surface if the shading point is inside it, otherwise over the cone of
// directions the sphere subtends (PBRT's visible-hemisphere sampling).
func (sl *SphereLight) Sample(point, normal core.Vec3, sample core.Vec2) core.LightSample {
	toCenter := sl.Center.Subtract(point)
	if toCenter.Length() <= sl.Radius {
		return sl.sampleUniform(point, sample)
	}
	return sl.sampleVisible(point, sample)
}

func (sl *SphereLight) sampleUniform(point core.Vec3, sample core.Vec2) core.LightSample {
	localDir := core.SampleOnUnitSphere(sample)
	samplePoint := sl.Center.Add(localDir.Multiply(sl.Radius))

	toLight := samplePoint.Subtract(point)
	distance := toLight.Length()
	direction := toLight.Multiply(1.0 / distance)

	pdf := 1.0 / (4.0 * math.Pi * sl.Radius * sl.Radius)

	return core.LightSample{
		Point:     samplePoint,
		Normal:    localDir,
		Direction: direction,
		Distance:  distance,
		Emission:  sl.Radiance(direction.Negate(), localDir),
		PDF:       pdf,
	}
}

func (sl *SphereLight) sampleVisible(point core.Vec3, sample core.Vec2) core.LightSample {
	toCenter := sl.Center.Subtract(point)
	distanceToCenter := toCenter.Length()
	w := toCenter.Normalize()

	var up core.Vec3
	if math.Abs(w.X) > 0.1 {
		up = core.NewVec3(0, 1, 0)
	} else {
		up = core.NewVec3(1, 0, 0)
	}
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	sinThetaMax := sl.Radius / distanceToCenter
	cosThetaMax := math.Sqrt(math.Max(0, 1.0-sinThetaMax*sinThetaMax))

	cosTheta := 1.0 - sample.X*(1.0-cosThetaMax)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * sample.Y

	direction := u.Multiply(sinTheta * math.Cos(phi)).
		Add(v.Multiply(sinTheta * math.Sin(phi))).
		Add(w.Multiply(cosTheta))

	ray := core.NewRay(point, direction)
	hit, ok := sl.Sphere.Hit(ray, 1e-3, math.Inf(1))
	if !ok {
		return sl.sampleUniform(point, sample)
	}

	pdf := uniformConePDF(cosThetaMax)

	return core.LightSample{
		Point:     hit.Point,
		Normal:    hit.Normal,
		Direction: direction,
		Distance:  hit.T,
		Emission:  sl.Radiance(direction.Negate(), hit.Normal),
		PDF:       pdf,
	}
}

func (sl *SphereLight) PDF(point, normal, direction core.Vec3) float64 {
	ray := core.NewRay(point, direction)
	if _, ok := sl.Sphere.Hit(ray, 1e-3, math.Inf(1)); !ok {
		return 0
	}

	toCenter := sl.Center.Subtract(point)
	distanceToCenter := toCenter.Length()
	if distanceToCenter <= sl.Radius {
		return 1.0 / (4.0 * math.Pi * sl.Radius * sl.Radius)
	}

	sinThetaMax := sl.Radius / distanceToCenter
	cosThetaMax := math.Sqrt(math.Max(0, 1.0-sinThetaMax*sinThetaMax))
	return uniformConePDF(cosThetaMax)
}

func (sl *SphereLight) SampleEmissionSurface(sampler core.Sampler) core.SurfaceSample {
	localDir := core.SampleOnUnitSphere(sampler.Get2D())
	point := sl.Center.Add(localDir.Multiply(sl.Radius))
	areaPDF := 1.0 / (4.0 * math.Pi * sl.Radius * sl.Radius)
	return core.SurfaceSample{Point: point, Normal: localDir, AreaPDF: areaPDF}
}

func (sl *SphereLight) SampleEmission(sampler core.Sampler) core.EmissionSample {
	return sampleCosineEmission(sl.SampleEmissionSurface(sampler), sampler)
}
