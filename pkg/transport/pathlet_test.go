package transport

import (
	"math/rand"
	"testing"

	"github.com/rjstrand/lumentrace/pkg/core"
	"github.com/rjstrand/lumentrace/pkg/geometry"
	"github.com/rjstrand/lumentrace/pkg/lights"
	"github.com/rjstrand/lumentrace/pkg/material"
	"github.com/rjstrand/lumentrace/pkg/pathspace"
)

// testScene builds a small open box: a white diffuse floor and a quad
// light above it, facing down. Small enough to reason about by hand,
// rich enough to exercise shadow rays and light sampling.
func testScene(t *testing.T) (core.PathSpace, core.MaterialContainer, core.LightSources, *geometry.Quad, *lights.QuadLight) {
	t.Helper()

	floorMat := material.NewLambertian(core.NewVec3(0.7, 0.7, 0.7))
	floor := geometry.NewQuad(core.NewVec3(-5, 0, -5), core.NewVec3(10, 0, 0), core.NewVec3(0, 0, 10), floorMat)

	lightMat := material.NewEmissive(core.NewVec3(15, 15, 15))
	quadLight := lights.NewQuadLight(core.NewVec3(-1, 5, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), lightMat)

	bvh := pathspace.New([]core.Shape{floor, quadLight.Quad})
	lightSources := lights.NewLightSources([]core.Light{quadLight}, 20.0)

	return bvh, core.GeoMaterialContainer{}, lightSources, floor, quadLight
}

func TestComputeFirstHits_ResolvesLightAndBackface(t *testing.T) {
	pathSpace, _, lightSources, _, _ := testScene(t)

	downward := core.NewRay(core.NewVec3(0, 10, 0), core.NewVec3(0, -1, 0))
	upward := core.NewRay(core.NewVec3(0, 10, 0), core.NewVec3(0, 1, 0))

	hits := ComputeFirstHits([]core.Ray{downward, upward}, pathSpace, lightSources)
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if !hits[0].Intersect.Valid || hits[0].Light == nil {
		t.Error("expected the downward ray to hit the light from below")
	}
	if hits[1].Intersect.Valid {
		t.Error("expected the upward ray to miss everything (no ceiling)")
	}
}

func TestSamplePathFromHit_StopsAtMaxLen(t *testing.T) {
	pathSpace, mats, _, _, _ := testScene(t)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))

	ray := core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0))
	floorHit := pathSpace.Intersect(ray)
	hit := FirstHit{Intersect: floorHit}

	path := SamplePathFromHit(sampler, ray, hit, pathSpace, mats, 4, 0)
	if len(path) == 0 {
		t.Fatal("expected a non-empty subpath from a valid hit")
	}
	if len(path) > 4 {
		t.Errorf("expected at most maxLen=4 pathlets, got %d", len(path))
	}
}

func TestSamplePathFromHit_InvalidHitReturnsNil(t *testing.T) {
	pathSpace, mats, _, _, _ := testScene(t)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(2)))

	ray := core.NewRay(core.NewVec3(0, 10, 0), core.NewVec3(0, 1, 0))
	path := SamplePathFromHit(sampler, ray, FirstHit{}, pathSpace, mats, 4, 0)
	if path != nil {
		t.Errorf("expected nil subpath for an invalid FirstHit, got %v", path)
	}
}

func TestSamplePath_RussianRouletteShortensPathsOnAverage(t *testing.T) {
	pathSpace, mats, _, _, _ := testScene(t)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(3)))

	ray := core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0))

	totalWithRR, totalWithoutRR := 0, 0
	const trials = 2000
	for k := 0; k < trials; k++ {
		hit := FirstHit{Intersect: pathSpace.Intersect(ray)}
		withRR := SamplePathFromHit(sampler, ray, hit, pathSpace, mats, 8, 1)
		withoutRR := SamplePathFromHit(sampler, ray, hit, pathSpace, mats, 8, 0)
		totalWithRR += len(withRR)
		totalWithoutRR += len(withoutRR)
	}

	if totalWithRR >= totalWithoutRR {
		t.Errorf("expected Russian roulette to shorten paths on average: withRR=%d withoutRR=%d", totalWithRR, totalWithoutRR)
	}
}

func TestSampleBRDFStep_SpecularBypassesEval(t *testing.T) {
	mirror := material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0)
	vertex := core.IntersectInfo{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
		Valid:  true,
		Geo:    geometry.NewSphere(core.NewVec3(0, 0, 0), 1, mirror),
	}
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(4)))

	_, weight, dens, ok := sampleBRDFStep(sampler, core.GeoMaterialContainer{}, vertex, core.NewVec3(0, 1, 0))
	if !ok {
		t.Fatal("expected a mirror reflection to always sample successfully")
	}
	if weight.IsZero() {
		t.Error("expected a mirror's reflectance to carry through as the step weight")
	}
	if dens != 0 {
		t.Errorf("expected a specular bounce to report zero finite density, got %f", dens)
	}
}
