package core

import "testing"

func TestAABB_Hit_StraightThrough(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))

	if !box.Hit(ray, 1e-8, 1000.0) {
		t.Error("expected a ray pointed at the box center to hit")
	}
}

func TestAABB_Hit_Miss(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(5, 5, -5), NewVec3(0, 0, 1))

	if box.Hit(ray, 1e-8, 1000.0) {
		t.Error("expected a ray that passes beside the box to miss")
	}
}

func TestAABB_Hit_RespectsTRange(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))

	if box.Hit(ray, 1e-8, 2.0) {
		t.Error("expected the box (entered at t=4) to miss a [epsilon, 2.0] range")
	}
	if !box.Hit(ray, 1e-8, 10.0) {
		t.Error("expected the box to hit within a [epsilon, 10.0] range")
	}
}

func TestAABB_Hit_ParallelRayInsideSlab(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	// Travels along X, with Y and Z origins inside the box's Y/Z slabs but
	// never converging on them (direction.Y == direction.Z == 0).
	ray := NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0))

	if !box.Hit(ray, 1e-8, 1000.0) {
		t.Error("expected a ray parallel to two axes but inside their slabs to hit")
	}
}

func TestAABB_Hit_ParallelRayOutsideSlab(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(-5, 5, 0), NewVec3(1, 0, 0))

	if box.Hit(ray, 1e-8, 1000.0) {
		t.Error("expected a ray parallel to an axis but outside its slab to miss")
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(NewVec3(-1, -1, -1), NewVec3(0, 0, 0))
	b := NewAABB(NewVec3(0, 0, 0), NewVec3(2, 2, 2))

	union := a.Union(b)
	if union.Min != NewVec3(-1, -1, -1) || union.Max != NewVec3(2, 2, 2) {
		t.Errorf("expected union bounds [-1,-1,-1]-[2,2,2], got %v-%v", union.Min, union.Max)
	}
}

func TestAABB_LongestAxis(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 5, 2))
	if got := box.LongestAxis(); got != 1 {
		t.Errorf("expected the Y axis (1) to be longest, got %d", got)
	}
}

func TestAABB_IsValid(t *testing.T) {
	if !NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1)).IsValid() {
		t.Error("expected min <= max to be valid")
	}
	if NewAABB(NewVec3(1, 0, 0), NewVec3(0, 1, 1)).IsValid() {
		t.Error("expected min.X > max.X to be invalid")
	}
}
