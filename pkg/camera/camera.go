// Package camera implements the core.Camera external interface (C10
// collaborator): a pinhole camera with optional thin-lens depth of field,
// positioned by look-from/look-at/up the way the scene builders in
// pkg/scene configure it.
package camera

import (
	"math"

	"github.com/rjstrand/lumentrace/pkg/core"
)

// Config mirrors the camera knobs the scene builders fill in (position,
// orientation, field of view, and depth-of-field lens parameters).
type Config struct {
	Center        core.Vec3
	LookAt        core.Vec3
	Up            core.Vec3
	VFov          float64 // vertical field of view, degrees
	AspectRatio   float64 // width / height
	Aperture      float64 // lens diameter; 0 disables depth of field
	FocusDistance float64 // 0 auto-focuses on LookAt
}

// Camera is a pinhole (or thin-lens, when Aperture > 0) camera. It builds
// its basis and image-plane rectangle once at construction and reuses them
// for every Sample call.
type Camera struct {
	origin     core.Vec3
	lookAt     core.Vec3 // world-space point the camera is aimed at
	worldUp    core.Vec3 // up vector as configured, before orthonormalization
	back       core.Vec3 // points from LookAt toward Center
	right, up  core.Vec3
	lowerLeft  core.Vec3
	horizontal core.Vec3
	vertical   core.Vec3

	lensRadius     float64
	vfovRadians    float64
	aspectRatio    float64
	imagePlaneArea float64
}

// New builds a Camera from cfg. FocusDistance of 0 auto-focuses on the
// distance between Center and LookAt.
func New(cfg Config) *Camera {
	focusDistance := cfg.FocusDistance
	if focusDistance <= 0 {
		focusDistance = cfg.Center.Subtract(cfg.LookAt).Length()
	}

	back := cfg.Center.Subtract(cfg.LookAt).Normalize()
	right := cfg.Up.Cross(back).Normalize()
	up := back.Cross(right)

	vfovRadians := cfg.VFov * math.Pi / 180.0
	halfHeight := math.Tan(vfovRadians / 2)
	halfWidth := cfg.AspectRatio * halfHeight

	viewportHeight := 2 * halfHeight * focusDistance
	viewportWidth := 2 * halfWidth * focusDistance

	horizontal := right.Multiply(viewportWidth)
	vertical := up.Multiply(viewportHeight)
	lowerLeft := cfg.Center.
		Subtract(back.Multiply(focusDistance)).
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5))

	return &Camera{
		origin:         cfg.Center,
		lookAt:         cfg.LookAt,
		worldUp:        cfg.Up,
		back:           back,
		right:          right,
		up:             up,
		lowerLeft:      lowerLeft,
		horizontal:     horizontal,
		vertical:       vertical,
		lensRadius:     cfg.Aperture / 2,
		vfovRadians:    vfovRadians,
		aspectRatio:    cfg.AspectRatio,
		imagePlaneArea: viewportWidth * viewportHeight,
	}
}

// Projection returns the camera's perspective*view matrix. Near/far clip
// planes are fixed; nothing in this renderer rasterizes against them, but
// core.Camera names Projection() as the signal the progressive renderer
// watches to decide whether to reset its accumulator, so the view half
// must carry position and orientation or a camera move between frames
// would go unnoticed.
func (c *Camera) Projection() core.Mat4 {
	const near, far = 0.01, 10000.0
	perspective := core.Perspective(c.vfovRadians, c.aspectRatio, near, far)
	view := core.LookAt(c.origin, c.lookAt, c.worldUp)
	return perspective.Mul4(view)
}

// Sample returns the primary ray through pixel (i, j) of a width x height
// image, jittered within the pixel for antialiasing and, when the lens has
// nonzero radius, offset across the lens for depth of field. pdf is the
// combined lens-area times solid-angle density of generating this exact
// ray: the image-plane point is uniform over the plane's area A, so the
// solid-angle factor is r^2/(A cos(theta)) for a ray of length r to it.
// Nothing in this repository reads pdf: the progressive renderer discards
// it and pkg/transport seeds camera subpaths with density 1.
func (c *Camera) Sample(i, j, width, height int, sampler core.Sampler) (ray core.Ray, pdf float64) {
	jitter := sampler.Get2D()
	s := (float64(i) + jitter.X) / float64(width)
	t := (float64(j) + jitter.Y) / float64(height)

	pointOnPlane := c.lowerLeft.Add(c.horizontal.Multiply(s)).Add(c.vertical.Multiply(t))

	rayOrigin := c.origin
	lensPDF := 1.0
	if c.lensRadius > 0 {
		lens := core.SamplePointInUnitDisk(sampler.Get2D())
		offset := c.right.Multiply(lens.X * c.lensRadius).Add(c.up.Multiply(lens.Y * c.lensRadius))
		rayOrigin = c.origin.Add(offset)
		lensPDF = 1.0 / (math.Pi * c.lensRadius * c.lensRadius)
	}

	direction := pointOnPlane.Subtract(rayOrigin)
	ray = core.NewRay(rayOrigin, direction)

	cosTheta := direction.Normalize().Dot(c.back.Negate())
	if cosTheta <= 0 {
		return ray, 0
	}
	directionPDF := direction.LengthSquared() / (c.imagePlaneArea * cosTheta)

	return ray, lensPDF * directionPDF
}
