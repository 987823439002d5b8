package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rjstrand/lumentrace/pkg/core"
)

func TestCameraForwardDirection(t *testing.T) {
	cam := New(Config{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        45.0,
		AspectRatio: 1.0,
	})

	forward := cam.back.Negate()
	expected := core.NewVec3(0, 0, -1)
	if math.Abs(forward.X-expected.X) > 1e-9 ||
		math.Abs(forward.Y-expected.Y) > 1e-9 ||
		math.Abs(forward.Z-expected.Z) > 1e-9 {
		t.Errorf("expected forward %v, got %v", expected, forward)
	}
}

func TestCameraSample_PointsTowardLookAt(t *testing.T) {
	cam := New(Config{
		Center:      core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 1.0,
	})
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))

	ray, pdf := cam.Sample(200, 200, 400, 400, sampler)
	if pdf <= 0 {
		t.Fatalf("expected positive pdf for a centered pixel, got %f", pdf)
	}
	dir := ray.Direction.Normalize()
	if dir.Z <= 0 {
		t.Errorf("expected the center pixel's ray to point toward +Z, got %v", dir)
	}
}

func TestCameraSample_PDFHigherOffAxis(t *testing.T) {
	cam := New(Config{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        60.0,
		AspectRatio: 1.0,
	})
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(2)))

	_, centerPDF := cam.Sample(200, 200, 400, 400, sampler)
	_, cornerPDF := cam.Sample(5, 5, 400, 400, sampler)

	if cornerPDF <= centerPDF {
		t.Errorf("expected a corner pixel to have a higher pdf than the on-axis pixel: center=%e corner=%e", centerPDF, cornerPDF)
	}
}

func TestCameraSample_ZeroPDFBehindCamera(t *testing.T) {
	cam := New(Config{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        170.0, // extreme FOV so an edge pixel can point backward
		AspectRatio: 1.0,
	})
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(3)))

	_, pdf := cam.Sample(0, 0, 400, 400, sampler)
	if pdf < 0 {
		t.Errorf("pdf should never be negative, got %f", pdf)
	}
}

func TestCameraSample_DepthOfFieldSpreadsLensOrigin(t *testing.T) {
	cam := New(Config{
		Center:        core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		AspectRatio:   1.0,
		Aperture:      2.0,
		FocusDistance: 10.0,
	})
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(4)))

	origins := make(map[core.Vec3]bool)
	for i := 0; i < 50; i++ {
		ray, _ := cam.Sample(200, 200, 400, 400, sampler)
		origins[ray.Origin] = true
	}
	if len(origins) < 2 {
		t.Error("expected depth-of-field sampling to vary the ray origin across samples")
	}
}

func TestCameraSample_PinholeOriginIsFixed(t *testing.T) {
	cam := New(Config{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 1.0,
	})
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(5)))

	ray, _ := cam.Sample(200, 200, 400, 400, sampler)
	if ray.Origin != cam.origin {
		t.Errorf("expected a zero-aperture camera to always ray-originate from its center, got %v", ray.Origin)
	}
}

func TestCameraProjectionMatchesFOV(t *testing.T) {
	cam := New(Config{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 1.0,
	})

	proj := cam.Projection()
	// For a square aspect ratio at 90 degrees vfov, m[0][0] == m[1][1].
	if math.Abs(proj[0]-proj[5]) > 1e-9 {
		t.Errorf("expected a square aspect ratio to produce equal x/y scale terms, got %v", proj)
	}
}
