package core

import "math"

// AABB is an axis-aligned bounding box used by the path-space oracle (C3)
// for both acceleration and the position tracer's normalization range.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates a new AABB from min and max points.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// Hit tests if a ray intersects this AABB within [tMin, tMax] by slabbing
// each axis in turn against the caller's interval, unrolled rather than
// switched over since `pathspace.BVH` calls this once per node on the hot
// path and every node only ever tests the same three fixed axes.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	var ok bool
	if tMin, tMax, ok = slab(aabb.Min.X, aabb.Max.X, ray.Origin.X, ray.Direction.X, tMin, tMax); !ok {
		return false
	}
	if tMin, tMax, ok = slab(aabb.Min.Y, aabb.Max.Y, ray.Origin.Y, ray.Direction.Y, tMin, tMax); !ok {
		return false
	}
	_, _, ok = slab(aabb.Min.Z, aabb.Max.Z, ray.Origin.Z, ray.Direction.Z, tMin, tMax)
	return ok
}

// slab narrows [tMin, tMax] to the sub-range along which a ray stays
// within [lo, hi] on one axis, given that axis's ray origin and
// direction components. ok is false once the narrowed range is empty,
// letting Hit bail out after any axis instead of testing all three.
func slab(lo, hi, origin, direction, tMin, tMax float64) (narrowedMin, narrowedMax float64, ok bool) {
	if math.Abs(direction) < 1e-8 {
		// Parallel to this axis: the whole ray is either inside the
		// slab or misses it entirely, independent of tMin/tMax.
		return tMin, tMax, origin >= lo && origin <= hi
	}

	invDirection := 1.0 / direction
	t1 := (lo - origin) * invDirection
	t2 := (hi - origin) * invDirection
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	narrowedMin = math.Max(tMin, t1)
	narrowedMax = math.Min(tMax, t2)
	return narrowedMin, narrowedMax, narrowedMin <= narrowedMax
}

// Union returns an AABB that bounds both this AABB and another.
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, other.Min.X),
			Y: math.Min(aabb.Min.Y, other.Min.Y),
			Z: math.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Max.X, other.Max.X),
			Y: math.Max(aabb.Max.Y, other.Max.Y),
			Z: math.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// Center returns the center point of the AABB.
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent of the AABB along each axis.
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// IsValid reports whether min <= max on every axis.
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X && aabb.Min.Y <= aabb.Max.Y && aabb.Min.Z <= aabb.Max.Z
}

// Expand returns an AABB grown by amount in every direction.
func (aabb AABB) Expand(amount float64) AABB {
	e := NewVec3(amount, amount, amount)
	return AABB{Min: aabb.Min.Subtract(e), Max: aabb.Max.Add(e)}
}

// BoundingSphere returns a world-space center and radius enclosing the
// AABB, used by infinite lights to convert directional emission into a
// disk-sampling problem (see sampleInfiniteEmission in pkg/lights).
func (aabb AABB) BoundingSphere() (center Vec3, radius float64) {
	center = aabb.Center()
	radius = aabb.Max.Subtract(center).Length()
	return center, radius
}
