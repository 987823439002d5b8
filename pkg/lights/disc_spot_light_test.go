package lights

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rjstrand/lumentrace/pkg/core"
)

func TestDiscSpotLightFalloff(t *testing.T) {
	from := core.NewVec3(0, 5, 0)
	to := core.NewVec3(0, 0, 0)
	emission := core.NewVec3(10, 10, 10)
	coneAngle := 30.0
	deltaAngle := 5.0
	radius := 0.1

	spotLight := NewDiscSpotLight(from, to, emission, coneAngle, deltaAngle, radius)
	emitter := spotLight.Mat.(*spotEmitter)

	tests := []struct {
		name           string
		cosAngle       float64
		expectedResult float64
	}{
		{name: "inside inner cone (full intensity)", cosAngle: math.Cos(20 * math.Pi / 180), expectedResult: 1.0},
		{name: "at falloff start edge", cosAngle: math.Cos(25 * math.Pi / 180), expectedResult: 1.0},
		{name: "in falloff region", cosAngle: math.Cos(27.5 * math.Pi / 180), expectedResult: -1},
		{name: "at total width edge", cosAngle: math.Cos(30 * math.Pi / 180), expectedResult: 0.0},
		{name: "outside cone", cosAngle: math.Cos(35 * math.Pi / 180), expectedResult: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := emitter.falloff(tt.cosAngle)

			if tt.expectedResult == -1 {
				cosTotalWidth := math.Cos(30 * math.Pi / 180)
				cosFalloffStart := math.Cos(25 * math.Pi / 180)
				delta := (tt.cosAngle - cosTotalWidth) / (cosFalloffStart - cosTotalWidth)
				expected := delta * delta * delta * delta
				if math.Abs(result-expected) > 1e-6 {
					t.Errorf("expected falloff=%v, got %v", expected, result)
				}
			} else if math.Abs(result-tt.expectedResult) > 1e-6 {
				t.Errorf("expected falloff=%v, got %v", tt.expectedResult, result)
			}
		})
	}
}

func TestDiscSpotLightSample(t *testing.T) {
	from := core.NewVec3(0, 2, 0)
	to := core.NewVec3(0, 0, 0)
	emission := core.NewVec3(5, 5, 5)
	coneAngle := 45.0
	deltaAngle := 10.0
	radius := 0.2

	spotLight := NewDiscSpotLight(from, to, emission, coneAngle, deltaAngle, radius)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	tests := []struct {
		name           string
		testPoint      core.Vec3
		expectEmission bool
	}{
		{name: "point directly below (center of cone)", testPoint: core.NewVec3(0, 0, 0), expectEmission: true},
		{name: "point at edge of inner cone", testPoint: core.NewVec3(0.7, 0, 0), expectEmission: true},
		{name: "point in falloff region", testPoint: core.NewVec3(1.0, 0, 0), expectEmission: true},
		{name: "point outside cone", testPoint: core.NewVec3(3.0, 0, 0), expectEmission: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample := spotLight.Sample(tt.testPoint, core.NewVec3(0, 1, 0), sampler.Get2D())

			if sample.Point.Subtract(from).Length() > radius+1e-6 {
				t.Errorf("sample point outside disc: %v", sample.Point)
			}

			if tt.expectEmission {
				if sample.Emission.Equals(core.NewVec3(0, 0, 0)) {
					t.Errorf("expected non-zero emission for point %v, got %v", tt.testPoint, sample.Emission)
				}
				if sample.PDF <= 0 {
					t.Errorf("expected positive PDF for illuminated point, got %v", sample.PDF)
				}
			} else if !sample.Emission.Equals(core.NewVec3(0, 0, 0)) {
				t.Errorf("expected zero emission for point %v, got %v", tt.testPoint, sample.Emission)
			}
		})
	}
}

func TestDiscSpotLightConsistentFalloff(t *testing.T) {
	// Guards against falloff being computed from the disc center rather than
	// the actual sampled point on the disc.
	from := core.NewVec3(0, 3, 0)
	to := core.NewVec3(0, 0, 0)
	emission := core.NewVec3(10, 10, 10)
	coneAngle := 30.0
	deltaAngle := 5.0
	radius := 1.5

	spotLight := NewDiscSpotLight(from, to, emission, coneAngle, deltaAngle, radius)
	testPoint := core.NewVec3(1.5, 0, 0)
	normal := core.NewVec3(0, 1, 0)

	samples := []core.Vec2{
		{X: 0.0, Y: 0.0},
		{X: 1.0, Y: 0.0},
		{X: -1.0, Y: 0.0},
	}

	var emissions []core.Vec3
	for _, samplePos := range samples {
		lightSample := spotLight.Sample(testPoint, normal, samplePos)
		emissions = append(emissions, lightSample.Emission)
	}

	centerEmission, closeEdgeEmission, farEdgeEmission := emissions[0], emissions[1], emissions[2]

	allIdentical := centerEmission.Equals(closeEdgeEmission) && centerEmission.Equals(farEdgeEmission)
	if allIdentical && !centerEmission.Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("all emissions identical despite different sample positions: center=%v, close=%v, far=%v",
			centerEmission, closeEdgeEmission, farEdgeEmission)
	}

	if !farEdgeEmission.Equals(core.NewVec3(0, 0, 0)) && !closeEdgeEmission.Equals(core.NewVec3(0, 0, 0)) {
		if farEdgeEmission.Length() >= closeEdgeEmission.Length() {
			t.Errorf("expected far edge emission (%v) to be less than close edge emission (%v)",
				farEdgeEmission, closeEdgeEmission)
		}
	}
}

func TestDiscSpotLightCreation(t *testing.T) {
	from := core.NewVec3(1, 2, 3)
	to := core.NewVec3(4, 5, 6)
	emission := core.NewVec3(2, 3, 4)
	coneAngle := 25.0
	deltaAngle := 8.0
	radius := 0.3

	spotLight := NewDiscSpotLight(from, to, emission, coneAngle, deltaAngle, radius)
	emitter := spotLight.Mat.(*spotEmitter)

	if !spotLight.Center.Equals(from) {
		t.Errorf("expected position %v, got %v", from, spotLight.Center)
	}

	expectedDirection := to.Subtract(from).Normalize()
	if !emitter.spotDirection.Equals(expectedDirection) {
		t.Errorf("expected direction %v, got %v", expectedDirection, emitter.spotDirection)
	}
	if !emitter.baseEmission.Equals(emission) {
		t.Errorf("expected emission %v, got %v", emission, emitter.baseEmission)
	}

	expectedCosTotalWidth := math.Cos(coneAngle * math.Pi / 180.0)
	expectedCosFalloffStart := math.Cos((coneAngle - deltaAngle) * math.Pi / 180.0)
	if math.Abs(emitter.cosTotalWidth-expectedCosTotalWidth) > 1e-6 {
		t.Errorf("expected cosTotalWidth %v, got %v", expectedCosTotalWidth, emitter.cosTotalWidth)
	}
	if math.Abs(emitter.cosFalloffStart-expectedCosFalloffStart) > 1e-6 {
		t.Errorf("expected cosFalloffStart %v, got %v", expectedCosFalloffStart, emitter.cosFalloffStart)
	}

	if spotLight.Radius != radius {
		t.Errorf("expected disc radius %v, got %v", radius, spotLight.Radius)
	}
}

func TestDiscSpotLightGeoRef(t *testing.T) {
	spotLight := NewDiscSpotLight(core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), 30, 5, 0.1)

	if spotLight.geoRef() != spotLight.Disc {
		t.Error("geoRef should promote through the embedded DiscLight to the underlying Disc")
	}
}
