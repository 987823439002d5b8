package lights

import (
	"math"

	"github.com/rjstrand/lumentrace/pkg/core"
)

// sampleCosineEmission draws a cosine-weighted emission direction from a
// surface sample, shared by every area light's SampleEmission. The emitted
// radiance along that direction is recovered by the caller via Radiance,
// since EmissionSample carries only the geometry of the draw.
func sampleCosineEmission(surface core.SurfaceSample, sampler core.Sampler) core.EmissionSample {
	direction := core.SampleCosineHemisphere(surface.Normal, sampler.Get2D())
	cosTheta := direction.Dot(surface.Normal)

	return core.EmissionSample{
		Surface:       surface,
		Direction:     direction,
		SolidAnglePDF: cosTheta / math.Pi,
	}
}

// uniformConePDF is the solid-angle density of sampling a direction
// uniformly within a cone of half-angle acos(cosTotalWidth).
func uniformConePDF(cosTotalWidth float64) float64 {
	return 1.0 / (2.0 * math.Pi * (1.0 - cosTotalWidth))
}

// sampleInfiniteEmission draws a direction uniformly over the sphere and a
// point on the disk of radius worldRadius perpendicular to it, the PBRT
// disk-sampling scheme used to seed light subpaths from an infinite light
// (there's no finite surface to sample directly).
func sampleInfiniteEmission(worldCenter core.Vec3, worldRadius float64, sampler core.Sampler) (point, direction core.Vec3, areaPDF, dirPDF float64) {
	direction = core.SampleOnUnitSphere(sampler.Get2D())

	var up core.Vec3
	if math.Abs(direction.X) > 0.9 {
		up = core.NewVec3(0, 1, 0)
	} else {
		up = core.NewVec3(1, 0, 0)
	}
	right := direction.Cross(up).Normalize()
	up = right.Cross(direction).Normalize()

	disk := core.SamplePointInUnitDisk(sampler.Get2D())
	diskPoint := worldCenter.Add(right.Multiply(disk.X * worldRadius)).Add(up.Multiply(disk.Y * worldRadius))
	point = diskPoint.Add(direction.Multiply(-worldRadius))

	areaPDF = 1.0 / (math.Pi * worldRadius * worldRadius)
	dirPDF = 1.0 / (4.0 * math.Pi)
	return point, direction, areaPDF, dirPDF
}
