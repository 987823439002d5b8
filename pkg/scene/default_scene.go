package scene

import (
	"github.com/rjstrand/lumentrace/pkg/camera"
	"github.com/rjstrand/lumentrace/pkg/core"
	"github.com/rjstrand/lumentrace/pkg/geometry"
	"github.com/rjstrand/lumentrace/pkg/lights"
	"github.com/rjstrand/lumentrace/pkg/material"
)

// NewDefaultScene builds a small showcase scene: four spheres over a
// ground plane under a gradient sky, exercising Lambertian, Metal,
// Dielectric, and Mix materials plus the hollow-glass-shell trick (a
// negative-radius sphere nested inside a positive one).
func NewDefaultScene(cameraOverrides ...camera.Config) (*Scene, error) {
	cfg := camera.Config{
		Center:      core.NewVec3(0, 0.75, 2),
		LookAt:      core.NewVec3(0, 0.5, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.05,
	}
	if len(cameraOverrides) > 0 {
		cfg = cameraOverrides[0]
	}
	cam := camera.New(cfg)

	b := NewBuilder(cam, core.DefaultSamplingConfig())

	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	// A faint specular sheen over a matte red base: mostly Lambertian,
	// occasionally a mirror bounce.
	sheenRed := material.NewMix(lambertianRed, metalSilver, 0.15)

	sphereCenter := geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, sheenRed)
	sphereLeft := geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver)
	sphereRight := geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold)
	solidGlassSphere := geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass)

	ground := NewGroundQuad(core.NewVec3(0, 0, 0), 10000.0, lambertianGreen)

	hollowGlassOuter := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, glass)
	hollowGlassInner := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), -0.24, glass)
	hollowGlassCenter := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.20, lambertianBlue)

	b.AddShape(sphereCenter, sphereLeft, sphereRight, ground,
		solidGlassSphere, hollowGlassOuter, hollowGlassInner, hollowGlassCenter)

	sphereLight := lights.NewSphereLight(core.NewVec3(30, 30.5, 15), 10, material.NewEmissive(core.NewVec3(15.0, 14.0, 13.0)))
	b.AddAreaLight(sphereLight, sphereLight.Sphere)

	b.AddInfiniteLight(lights.NewGradientInfiniteLight(
		core.NewVec3(0.5, 0.7, 1.0),
		core.NewVec3(1.0, 1.0, 1.0),
	))

	return b.Build()
}

// NewGroundQuad builds a large finite quad standing in for an infinite
// ground plane, centered at center with its normal pointing up.
func NewGroundQuad(center core.Vec3, size float64, mat core.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	u := core.NewVec3(size, 0, 0)
	v := core.NewVec3(0, 0, size)
	return geometry.NewQuad(corner, u, v, mat)
}
