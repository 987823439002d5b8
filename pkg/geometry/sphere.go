package geometry

import (
	"math"

	"github.com/rjstrand/lumentrace/pkg/core"
)

// Sphere is a sphere shape, the simplest non-planar primitive and the base
// geometry for SphereLight.
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    core.Material
}

// NewSphere creates a new sphere.
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: material}
}

func (s *Sphere) Material() core.Material { return s.Mat }

// Hit tests if a ray intersects with the sphere.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.IntersectInfo, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	normal := outwardNormal
	if ray.Direction.Dot(outwardNormal) > 0 {
		normal = outwardNormal.Negate()
	}

	return &core.IntersectInfo{
		Point:  point,
		Normal: normal,
		UV:     sphereUV(outwardNormal),
		T:      root,
		Geo:    s,
		Valid:  true,
	}, true
}

// sphereUV maps a unit outward normal to equirectangular (u, v) coordinates.
func sphereUV(outwardNormal core.Vec3) core.Vec2 {
	theta := math.Acos(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox returns the axis-aligned bounding box for this sphere. Uses
// the absolute radius since a negative radius (the hollow-sphere trick: an
// inward-facing surface for a dielectric shell) still occupies the same
// region of space.
func (s *Sphere) BoundingBox() core.AABB {
	r := math.Abs(s.Radius)
	radius := core.NewVec3(r, r, r)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius))
}
