package geometry

import (
	"math"
	"testing"

	"github.com/rjstrand/lumentrace/pkg/core"
)

func TestBox_Hit_AxisAligned(t *testing.T) {
	box := NewAxisAlignedBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), nil)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	hit, isHit := box.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("t = %f, want 4.0", hit.T)
	}
	if hit.Geo != box {
		t.Error("IntersectInfo.Geo should reference the box, not the internal face quad")
	}
}

func TestBox_Hit_Miss(t *testing.T) {
	box := NewAxisAlignedBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), nil)
	ray := core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(0, 0, -1))

	if _, isHit := box.Hit(ray, 0.001, 1000.0); isHit {
		t.Error("expected miss")
	}
}

func TestBox_RotationPreservesVolume(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), core.NewVec3(0, math.Pi/4, 0), nil)
	bbox := box.BoundingBox()

	if !bbox.IsValid() {
		t.Error("rotated box should still produce a valid bounding box")
	}
}
