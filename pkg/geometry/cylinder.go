package geometry

import (
	"math"

	"github.com/rjstrand/lumentrace/pkg/core"
)

// Cylinder is a finite, open-ended (uncapped) cylinder.
type Cylinder struct {
	BaseCenter core.Vec3
	TopCenter  core.Vec3
	Radius     float64
	Mat        core.Material

	axis   core.Vec3
	height float64
}

// NewCylinder creates a new cylinder.
func NewCylinder(baseCenter, topCenter core.Vec3, radius float64, mat core.Material) *Cylinder {
	axisVector := topCenter.Subtract(baseCenter)
	height := axisVector.Length()
	axis := axisVector.Normalize()

	return &Cylinder{BaseCenter: baseCenter, TopCenter: topCenter, Radius: radius, Mat: mat, axis: axis, height: height}
}

func (c *Cylinder) Material() core.Material { return c.Mat }

// BoundingBox returns the axis-aligned bounding box for this cylinder.
func (c *Cylinder) BoundingBox() core.AABB {
	minCorner := core.NewVec3(
		math.Min(c.BaseCenter.X, c.TopCenter.X),
		math.Min(c.BaseCenter.Y, c.TopCenter.Y),
		math.Min(c.BaseCenter.Z, c.TopCenter.Z),
	)
	maxCorner := core.NewVec3(
		math.Max(c.BaseCenter.X, c.TopCenter.X),
		math.Max(c.BaseCenter.Y, c.TopCenter.Y),
		math.Max(c.BaseCenter.Z, c.TopCenter.Z),
	)

	const parallelThreshold = 0.9999
	extent := core.NewVec3(c.Radius, c.Radius, c.Radius)
	if math.Abs(c.axis.X) > parallelThreshold {
		extent.X = 0
	}
	if math.Abs(c.axis.Y) > parallelThreshold {
		extent.Y = 0
	}
	if math.Abs(c.axis.Z) > parallelThreshold {
		extent.Z = 0
	}

	return core.NewAABB(minCorner.Subtract(extent), maxCorner.Add(extent))
}

// Hit tests if a ray intersects with the cylinder's curved body.
func (c *Cylinder) Hit(ray core.Ray, tMin, tMax float64) (*core.IntersectInfo, bool) {
	delta := ray.Origin.Subtract(c.BaseCenter)

	dv := ray.Direction.Dot(c.axis)
	deltaV := delta.Dot(c.axis)

	a := ray.Direction.LengthSquared() - dv*dv
	b := 2.0 * (delta.Dot(ray.Direction) - deltaV*dv)
	cc := delta.LengthSquared() - deltaV*deltaV - c.Radius*c.Radius

	const epsilon = 1e-8
	if math.Abs(a) < epsilon {
		return nil, false
	}

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	for _, t := range [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
		if t < tMin || t > tMax {
			continue
		}
		point := ray.At(t)
		h := point.Subtract(c.BaseCenter).Dot(c.axis)
		if h < 0 || h > c.height {
			continue
		}

		axisPoint := c.BaseCenter.Add(c.axis.Multiply(h))
		outwardNormal := point.Subtract(axisPoint).Normalize()
		normal := outwardNormal
		if ray.Direction.Dot(normal) > 0 {
			normal = normal.Negate()
		}

		return &core.IntersectInfo{Point: point, Normal: normal, T: t, Geo: c, Valid: true}, true
	}

	return nil, false
}
