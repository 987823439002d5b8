package scene

import (
	"github.com/rjstrand/lumentrace/pkg/camera"
	"github.com/rjstrand/lumentrace/pkg/core"
	"github.com/rjstrand/lumentrace/pkg/geometry"
	"github.com/rjstrand/lumentrace/pkg/lights"
	"github.com/rjstrand/lumentrace/pkg/material"
)

// NewCornellScene builds the standard Cornell box (555-unit cube, white
// walls, red/green side walls, a 130-unit ceiling light, a metal sphere
// and a glass sphere) — the fixed test scene named in
// original_source/test/testdirectrenderer.cpp's built-in Cornell
// resource.
func NewCornellScene() (*Scene, error) {
	cam := camera.New(camera.Config{
		Center:      core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 1.0,
	})

	sampling := core.DefaultSamplingConfig()
	sampling.MaxPathLen = 8

	b := NewBuilder(cam, sampling)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	const boxSize = 555.0

	floor := geometry.NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, boxSize),
		white,
	)
	ceiling := geometry.NewQuad(
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, boxSize),
		white,
	)
	backWall := geometry.NewQuad(
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, boxSize, 0),
		white,
	)
	leftWall := geometry.NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(0, boxSize, 0),
		red,
	)
	rightWall := geometry.NewQuad(
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(0, 0, boxSize),
		green,
	)
	b.AddShape(floor, ceiling, backWall, leftWall, rightWall)

	const lightSize = 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	lightMat := material.NewEmissive(core.NewVec3(15.0, 15.0, 15.0))
	ceilingLight := lights.NewQuadLight(
		core.NewVec3(lightOffset, boxSize-1, lightOffset),
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
		lightMat,
	)
	b.AddAreaLight(ceilingLight, ceilingLight.Quad)

	leftSphere := geometry.NewSphere(
		core.NewVec3(185, 82.5, 169), 82.5,
		material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.0),
	)
	rightSphere := geometry.NewSphere(
		core.NewVec3(370, 90, 351), 90,
		material.NewDielectric(1.5),
	)
	b.AddShape(leftSphere, rightSphere)

	return b.Build()
}
