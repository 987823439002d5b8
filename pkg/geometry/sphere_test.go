package geometry

import (
	"math"
	"testing"

	"github.com/rjstrand/lumentrace/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if _, isHit := sphere.Hit(ray, 0.001, 1000.0); isHit {
		t.Error("expected miss")
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{"front face hit", core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1), 1.0, core.NewVec3(0, 0, 1)},
		{"back face hit (ray from inside)", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 1.0, core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
			if !isHit {
				t.Fatal("expected hit")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("t = %f, want %f", hit.T, tt.expectedT)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("normal = %v, want %v (shading normal always faces the ray)", hit.Normal, tt.expectedNormal)
			}
		})
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	if _, isHit := sphere.Hit(ray, 0.001, 0.5); isHit {
		t.Error("expected miss due to tMax bound")
	}
	if _, isHit := sphere.Hit(ray, 3.5, 1000.0); isHit {
		t.Error("expected miss due to tMin bound")
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2.0, nil)
	bbox := sphere.BoundingBox()

	if bbox.Min != core.NewVec3(-1, 0, 1) || bbox.Max != core.NewVec3(3, 4, 5) {
		t.Errorf("bbox = %v, want min (-1,0,1) max (3,4,5)", bbox)
	}
}

func TestSphere_Hit_SetsGeo(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, _ := sphere.Hit(ray, 0.001, 1000.0)
	if hit.Geo != sphere {
		t.Error("IntersectInfo.Geo should reference the sphere that was hit")
	}
}
