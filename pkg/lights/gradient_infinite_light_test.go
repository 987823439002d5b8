package lights

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rjstrand/lumentrace/pkg/core"
)

func TestGradientInfiniteLightEmissionForDirection(t *testing.T) {
	top := core.NewVec3(0.5, 0.7, 1.0)
	bottom := core.NewVec3(1.0, 1.0, 1.0)
	light := NewGradientInfiniteLight(top, bottom)

	straightUp := light.emissionForDirection(core.NewVec3(0, 1, 0))
	if straightUp != top {
		t.Errorf("straight up should give top color, got %v", straightUp)
	}

	straightDown := light.emissionForDirection(core.NewVec3(0, -1, 0))
	if straightDown != bottom {
		t.Errorf("straight down should give bottom color, got %v", straightDown)
	}

	horizon := light.emissionForDirection(core.NewVec3(1, 0, 0))
	expected := bottom.Multiply(0.5).Add(top.Multiply(0.5))
	if horizon.Subtract(expected).Length() > 1e-9 {
		t.Errorf("horizon should be the midpoint blend, got %v, expected %v", horizon, expected)
	}
}

func TestGradientInfiniteLightSample(t *testing.T) {
	top := core.NewVec3(0.5, 0.7, 1.0)
	bottom := core.NewVec3(1.0, 1.0, 1.0)
	light := NewGradientInfiniteLight(top, bottom)
	light.Preprocess(core.NewVec3(0, 0, 0), 10.0)

	point := core.NewVec3(0, 0, 0)
	normal := core.NewVec3(0, 1, 0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	sample := light.Sample(point, normal, sampler.Get2D())

	if !math.IsInf(sample.Distance, 1) {
		t.Errorf("expected infinite distance, got %f", sample.Distance)
	}
	expectedEmission := light.emissionForDirection(sample.Direction)
	if sample.Emission != expectedEmission {
		t.Errorf("expected emission %v, got %v", expectedEmission, sample.Emission)
	}
	if sample.PDF <= 0 {
		t.Errorf("expected positive PDF, got %f", sample.PDF)
	}
}

func TestGradientInfiniteLightPDF(t *testing.T) {
	light := NewGradientInfiniteLight(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))
	normal := core.NewVec3(0, 1, 0)

	if pdf := light.PDF(core.Vec3{}, normal, core.NewVec3(0, -1, 0)); pdf != 0 {
		t.Errorf("expected zero PDF below the hemisphere, got %f", pdf)
	}

	direction := core.NewVec3(0, 1, 0)
	expected := direction.Dot(normal) / math.Pi
	if pdf := light.PDF(core.Vec3{}, normal, direction); math.Abs(pdf-expected) > 1e-9 {
		t.Errorf("expected PDF %f, got %f", expected, pdf)
	}
}

func TestGradientInfiniteLightSampleEmission(t *testing.T) {
	light := NewGradientInfiniteLight(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))
	light.Preprocess(core.NewVec3(0, 0, 0), 5.0)

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))
	es := light.SampleEmission(sampler)

	if es.Surface.AreaPDF <= 0 {
		t.Errorf("expected positive area PDF, got %f", es.Surface.AreaPDF)
	}
	if es.SolidAnglePDF <= 0 {
		t.Errorf("expected positive solid angle PDF, got %f", es.SolidAnglePDF)
	}

	radiance := light.Radiance(es.Direction, es.Surface.Normal)
	expected := light.emissionForDirection(es.Direction)
	if radiance != expected {
		t.Errorf("radiance incorrect: got %v, expected %v", radiance, expected)
	}
}

func TestGradientInfiniteLightType(t *testing.T) {
	light := NewGradientInfiniteLight(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))
	if light.Type() != core.LightTypeInfinite {
		t.Errorf("expected LightTypeInfinite, got %v", light.Type())
	}
}
