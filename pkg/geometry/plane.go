package geometry

import (
	"math"

	"github.com/rjstrand/lumentrace/pkg/core"
)

// Plane is an infinite plane defined by a point and normal.
type Plane struct {
	Point  core.Vec3
	Normal core.Vec3
	Mat    core.Material
}

// NewPlane creates a new plane.
func NewPlane(point, normal core.Vec3, material core.Material) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize(), Mat: material}
}

func (p *Plane) Material() core.Material { return p.Mat }

// Hit tests if a ray intersects with the plane.
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*core.IntersectInfo, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	normal := p.Normal
	if ray.Direction.Dot(normal) > 0 {
		normal = normal.Negate()
	}

	return &core.IntersectInfo{
		Point:  hitPoint,
		Normal: normal,
		T:      t,
		Geo:    p,
		Valid:  true,
	}, true
}

// BoundingBox returns a bounding box for this plane, thinned to a fixed
// slab along its normal when axis-aligned so the BVH can still prune it.
func (p *Plane) BoundingBox() core.AABB {
	const largeValue = 1e6
	const epsilon = 0.001

	switch getAxisAlignment(p.Normal) {
	case XAxisAligned:
		x := p.Point.X
		return core.NewAABB(
			core.NewVec3(x-epsilon, -largeValue, -largeValue),
			core.NewVec3(x+epsilon, largeValue, largeValue),
		)
	case YAxisAligned:
		y := p.Point.Y
		return core.NewAABB(
			core.NewVec3(-largeValue, y-epsilon, -largeValue),
			core.NewVec3(largeValue, y+epsilon, largeValue),
		)
	case ZAxisAligned:
		z := p.Point.Z
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, z-epsilon),
			core.NewVec3(largeValue, largeValue, z+epsilon),
		)
	default:
		return core.NewAABB(
			core.NewVec3(-largeValue, -largeValue, -largeValue),
			core.NewVec3(largeValue, largeValue, largeValue),
		)
	}
}
