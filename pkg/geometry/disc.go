package geometry

import (
	"math"

	"github.com/rjstrand/lumentrace/pkg/core"
)

// Disc is a circular disc in 3D space, the base geometry for DiscLight and
// DiscSpotLight.
type Disc struct {
	Center core.Vec3
	Normal core.Vec3
	Radius float64
	Mat    core.Material
	Right  core.Vec3
	Up     core.Vec3
}

// NewDisc creates a new disc.
func NewDisc(center, normal core.Vec3, radius float64, material core.Material) *Disc {
	n := normal.Normalize()

	var right core.Vec3
	if math.Abs(n.X) > 0.1 {
		right = core.NewVec3(0, 1, 0)
	} else {
		right = core.NewVec3(1, 0, 0)
	}
	right = right.Cross(n).Normalize()
	up := n.Cross(right).Normalize()

	return &Disc{Center: center, Normal: n, Radius: radius, Mat: material, Right: right, Up: up}
}

func (d *Disc) Material() core.Material { return d.Mat }

// Area returns the disc's surface area.
func (d *Disc) Area() float64 {
	return math.Pi * d.Radius * d.Radius
}

// Hit tests if a ray intersects with the disc.
func (d *Disc) Hit(ray core.Ray, tMin, tMax float64) (*core.IntersectInfo, bool) {
	denom := d.Normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-6 {
		return nil, false
	}

	t := d.Normal.Dot(d.Center.Subtract(ray.Origin)) / denom
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	centerToHit := hitPoint.Subtract(d.Center)
	if centerToHit.LengthSquared() > d.Radius*d.Radius {
		return nil, false
	}

	normal := d.Normal
	if ray.Direction.Dot(normal) > 0 {
		normal = normal.Negate()
	}

	radial := centerToHit.Length() / d.Radius
	angle := math.Atan2(centerToHit.Dot(d.Up), centerToHit.Dot(d.Right))

	return &core.IntersectInfo{
		Point:  hitPoint,
		Normal: normal,
		UV:     core.NewVec2(angle/(2*math.Pi)+0.5, radial),
		T:      t,
		Geo:    d,
		Valid:  true,
	}, true
}

// BoundingBox returns the axis-aligned bounding box for this disc.
func (d *Disc) BoundingBox() core.AABB {
	rightExtent := d.Right.Multiply(d.Radius)
	upExtent := d.Up.Multiply(d.Radius)

	return core.NewAABBFromPoints(
		d.Center.Add(rightExtent).Add(upExtent),
		d.Center.Add(rightExtent).Subtract(upExtent),
		d.Center.Subtract(rightExtent).Add(upExtent),
		d.Center.Subtract(rightExtent).Subtract(upExtent),
	).Expand(0.0001)
}

// SampleUniform samples a random point uniformly on the disc surface.
func (d *Disc) SampleUniform(sample core.Vec2) (core.Vec3, core.Vec3) {
	r := math.Sqrt(sample.X) * d.Radius
	theta := 2.0 * math.Pi * sample.Y

	x := r * math.Cos(theta)
	y := r * math.Sin(theta)

	point := d.Center.Add(d.Right.Multiply(x)).Add(d.Up.Multiply(y))
	return point, d.Normal
}
