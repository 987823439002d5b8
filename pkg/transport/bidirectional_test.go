package transport

import (
	"math/rand"
	"testing"

	"github.com/rjstrand/lumentrace/pkg/core"
)

func TestBidirectMISTracer_LightsTheFloor(t *testing.T) {
	pathSpace, mats, lightSources, _, _ := testScene(t)
	ray := core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0))
	hit := FirstHit{Intersect: pathSpace.Intersect(ray)}

	tracer := NewBidirectMISTracer(core.DefaultSamplingConfig())
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))

	sum := core.Color3{}
	const samples = 64
	for k := 0; k < samples; k++ {
		sum = sum.Add(tracer.Sample(sampler, ray, hit, pathSpace, mats, lightSources))
	}
	avg := sum.Multiply(1.0 / samples)

	if avg.Luminance() <= 0 {
		t.Error("expected the bidirectional estimator to light an unoccluded floor point")
	}
}

func TestBidirectMISTracer_InvalidHitIsZero(t *testing.T) {
	pathSpace, mats, lightSources, _, _ := testScene(t)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(8)))

	ray := core.NewRay(core.NewVec3(0, 10, 0), core.NewVec3(0, 1, 0))
	tracer := NewBidirectMISTracer(core.DefaultSamplingConfig())
	radiance := tracer.Sample(sampler, ray, FirstHit{}, pathSpace, mats, lightSources)
	if !radiance.IsZero() {
		t.Errorf("expected a miss to produce zero radiance, got %v", radiance)
	}
}

func TestPrefixTransport_FirstEntryIsIdentity(t *testing.T) {
	path := Subpath{
		{Weight: core.NewVec3(1, 1, 1)},
		{Weight: core.NewVec3(0.5, 0.5, 0.5)},
		{Weight: core.NewVec3(0.5, 0.5, 0.5)},
	}
	transport := prefixTransport(path)
	if transport[0] != core.NewVec3(1, 1, 1) {
		t.Errorf("expected pathlet 0's transport to be the identity, got %v", transport[0])
	}
	if transport[2] != core.NewVec3(0.25, 0.25, 0.25) {
		t.Errorf("expected transport[2] = 0.5*0.5, got %v", transport[2])
	}
}

func TestPrefixTransport_EmptyPath(t *testing.T) {
	transport := prefixTransport(nil)
	if len(transport) != 0 {
		t.Errorf("expected an empty transport slice for an empty path, got %v", transport)
	}
}

// TestEvaluatePartition_NEEFromPrimaryVertex pins down the partition that
// a camPlen/lightPlen mixup previously swallowed entirely: next-event
// estimation from the light's sampled surface point straight to the
// camera subpath's own first (and here, only) vertex — camPlen=1,
// lightPlen=0. This is ordinary direct illumination of whatever the
// primary ray hit, not a sentinel case, so it must produce nonzero
// radiance for an unoccluded, mutually-facing floor/light pair.
func TestEvaluatePartition_NEEFromPrimaryVertex(t *testing.T) {
	pathSpace, mats, _, _, quadLight := testScene(t)

	ray := core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0))
	hit := FirstHit{Intersect: pathSpace.Intersect(ray)}
	camPath := SamplePathFromHit(core.NewRandomSampler(rand.New(rand.NewSource(9))), ray, hit, pathSpace, mats, 1, 0)
	if len(camPath) != 1 {
		t.Fatalf("expected a single-vertex camera subpath, got %d", len(camPath))
	}
	camTransport := prefixTransport(camPath)

	emission := core.EmissionSample{
		Surface: core.SurfaceSample{
			Point:   core.NewVec3(0, 5, 0),
			Normal:  core.NewVec3(0, -1, 0),
			AreaPDF: 1.0 / quadLight.Area,
		},
	}

	tracer := NewBidirectMISTracer(core.DefaultSamplingConfig())
	contribution := tracer.evaluatePartition(
		pathSpace, mats, camPath, camTransport, 1,
		nil, nil, 0,
		quadLight, 1.0, emission, core.Color3{},
	)
	if contribution.IsZero() {
		t.Error("expected nonzero NEE radiance from the primary visible vertex to an unoccluded, facing light")
	}
}

// TestEvaluatePartition_ZeroCameraVerticesIsMeasureZero confirms the true
// zero-camera-vertex sentinel (camPlen=0 with a real light vertex) still
// returns zero, as opposed to the camPlen=1 case above that it used to be
// conflated with.
func TestEvaluatePartition_ZeroCameraVerticesIsMeasureZero(t *testing.T) {
	pathSpace, mats, _, _, quadLight := testScene(t)

	ray := core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0))
	hit := FirstHit{Intersect: pathSpace.Intersect(ray)}
	camPath := SamplePathFromHit(core.NewRandomSampler(rand.New(rand.NewSource(10))), ray, hit, pathSpace, mats, 1, 0)
	camTransport := prefixTransport(camPath)

	lightPath := Subpath{{Vertex: core.IntersectInfo{Valid: true, Point: core.NewVec3(0, 5, 0), Normal: core.NewVec3(0, -1, 0)}}}
	lightTransport := prefixTransport(lightPath)

	tracer := NewBidirectMISTracer(core.DefaultSamplingConfig())
	contribution := tracer.evaluatePartition(
		pathSpace, mats, camPath, camTransport, 0,
		lightPath, lightTransport, 1,
		quadLight, 1.0, core.EmissionSample{}, core.Color3{},
	)
	if !contribution.IsZero() {
		t.Errorf("expected a light path landing on the camera with no real camera vertex to be measure zero, got %v", contribution)
	}
}
