package geometry

import (
	"fmt"
	"math"

	"github.com/rjstrand/lumentrace/pkg/core"
)

// Cone is a finite cone or frustum shape.
type Cone struct {
	BaseCenter core.Vec3
	BaseRadius float64
	TopCenter  core.Vec3
	TopRadius  float64 // 0 for a pointed cone, >0 for a frustum
	Capped     bool
	Mat        core.Material

	axis     core.Vec3
	height   float64
	tanAngle float64
	apex     core.Vec3
}

// NewCone creates a new cone or frustum. TopRadius must be strictly less
// than BaseRadius; use NewCylinder for equal radii.
func NewCone(baseCenter core.Vec3, baseRadius float64, topCenter core.Vec3, topRadius float64, capped bool, mat core.Material) (*Cone, error) {
	if baseRadius <= 0 {
		return nil, fmt.Errorf("base radius must be positive, got %f", baseRadius)
	}
	if topRadius < 0 {
		return nil, fmt.Errorf("top radius must be non-negative, got %f", topRadius)
	}
	if baseRadius <= topRadius {
		return nil, fmt.Errorf("base radius must be greater than top radius (got base=%f, top=%f); use NewCylinder for equal radii", baseRadius, topRadius)
	}

	axisVector := topCenter.Subtract(baseCenter)
	height := axisVector.Length()
	if height <= 0 {
		return nil, fmt.Errorf("base and top centers cannot be the same")
	}

	axis := axisVector.Normalize()
	tanAngle := (baseRadius - topRadius) / height

	var apex core.Vec3
	if topRadius == 0 {
		apex = topCenter
	} else {
		dFromTop := topRadius * height / (baseRadius - topRadius)
		apex = topCenter.Add(axis.Multiply(dFromTop))
	}

	return &Cone{
		BaseCenter: baseCenter, BaseRadius: baseRadius,
		TopCenter: topCenter, TopRadius: topRadius,
		Capped: capped, Mat: mat,
		axis: axis, height: height, tanAngle: tanAngle, apex: apex,
	}, nil
}

func (c *Cone) Material() core.Material { return c.Mat }

// BoundingBox returns the axis-aligned bounding box for this cone.
func (c *Cone) BoundingBox() core.AABB {
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
	extent := core.NewVec3(c.BaseRadius, c.BaseRadius, c.BaseRadius)
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

// Hit tests if a ray intersects with the cone body and, if capped, its
// end cap(s).
func (c *Cone) Hit(ray core.Ray, tMin, tMax float64) (*core.IntersectInfo, bool) {
	var closest *core.IntersectInfo
	closestT := tMax

	if bodyHit := c.hitBody(ray, tMin, closestT); bodyHit != nil {
		closest = bodyHit
		closestT = bodyHit.T
	}

	if c.Capped {
		if baseHit := c.hitCap(ray, c.BaseCenter, c.axis.Negate(), c.BaseRadius, tMin, closestT); baseHit != nil {
			closest = baseHit
			closestT = baseHit.T
		}
		if c.TopRadius > 0 {
			if topHit := c.hitCap(ray, c.TopCenter, c.axis, c.TopRadius, tMin, closestT); topHit != nil {
				closest = topHit
			}
		}
	}

	if closest != nil {
		closest.Geo = c
		return closest, true
	}
	return nil, false
}

func (c *Cone) hitBody(ray core.Ray, tMin, tMax float64) *core.IntersectInfo {
	co := ray.Origin.Subtract(c.apex)

	ddotV := ray.Direction.Dot(c.axis)
	codotV := co.Dot(c.axis)

	k := c.tanAngle * c.tanAngle
	a := ray.Direction.LengthSquared() - (1+k)*ddotV*ddotV
	b := 2.0 * (ray.Direction.Dot(co) - (1+k)*ddotV*codotV)
	cc := co.LengthSquared() - (1+k)*codotV*codotV

	const epsilon = 1e-8
	if math.Abs(a) < epsilon {
		return nil
	}

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return nil
	}
	sqrtD := math.Sqrt(discriminant)

	t := (-b - sqrtD) / (2 * a)
	if !c.validIntersection(ray, t, tMin, tMax) {
		t = (-b + sqrtD) / (2 * a)
		if !c.validIntersection(ray, t, tMin, tMax) {
			return nil
		}
	}

	point := ray.At(t)
	h := point.Subtract(c.BaseCenter).Dot(c.axis)
	centerPoint := c.BaseCenter.Add(c.axis.Multiply(h))
	radial := point.Subtract(centerPoint)

	normalScale := (c.BaseRadius - c.TopRadius) / c.height
	outwardNormal := radial.Add(c.axis.Multiply(normalScale)).Normalize()
	normal := outwardNormal
	if ray.Direction.Dot(normal) > 0 {
		normal = normal.Negate()
	}

	return &core.IntersectInfo{Point: point, Normal: normal, T: t, Valid: true}
}

func (c *Cone) validIntersection(ray core.Ray, t, tMin, tMax float64) bool {
	const epsilon = 1e-8
	if t < tMin || t > tMax {
		return false
	}

	point := ray.At(t)
	h := point.Subtract(c.BaseCenter).Dot(c.axis)
	if h < -epsilon || h > c.height+epsilon {
		return false
	}

	apexToPoint := point.Subtract(c.apex)
	return apexToPoint.Dot(c.axis) <= epsilon
}

func (c *Cone) hitCap(ray core.Ray, center, normal core.Vec3, radius, tMin, tMax float64) *core.IntersectInfo {
	const epsilon = 1e-8
	denom := ray.Direction.Dot(normal)
	if math.Abs(denom) < epsilon {
		return nil
	}

	t := center.Subtract(ray.Origin).Dot(normal) / denom
	if t < tMin || t > tMax {
		return nil
	}

	point := ray.At(t)
	if point.Subtract(center).Length() > radius {
		return nil
	}

	n := normal
	if ray.Direction.Dot(n) > 0 {
		n = n.Negate()
	}
	return &core.IntersectInfo{Point: point, Normal: n, T: t, Valid: true}
}
