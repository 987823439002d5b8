package geometry

import (
	"math"
	"testing"

	"github.com/rjstrand/lumentrace/pkg/core"
)

func TestPlane_Hit(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), nil)
	ray := core.NewRay(core.NewVec3(1, 2, 3), core.NewVec3(0, -1, 0))

	hit, isHit := plane.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("t = %f, want 2.0", hit.T)
	}
}

func TestPlane_Hit_Parallel(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), nil)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))

	if _, isHit := plane.Hit(ray, 0.001, 1000.0); isHit {
		t.Error("expected miss for a ray parallel to the plane")
	}
}

func TestPlane_BoundingBox_AxisAligned(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 5, 0), core.NewVec3(0, 1, 0), nil)
	bbox := plane.BoundingBox()

	if bbox.Max.Y-bbox.Min.Y > 1.0 {
		t.Errorf("axis-aligned plane should have a thin bounding box, got extent %f", bbox.Max.Y-bbox.Min.Y)
	}
}
