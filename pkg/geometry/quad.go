package geometry

import (
	"math"

	"github.com/rjstrand/lumentrace/pkg/core"
)

// Quad is a rectangular surface defined by a corner and two edge vectors,
// the base geometry for QuadLight and the walls of the Cornell box.
type Quad struct {
	Corner core.Vec3
	U      core.Vec3
	V      core.Vec3
	Normal core.Vec3
	Mat    core.Material
	D      float64
	W      core.Vec3
}

// NewQuad creates a new quad from a corner point and two edge vectors.
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	normal := u.Cross(v).Normalize()
	d := normal.Dot(corner)

	cross := u.Cross(v)
	w := normal.Multiply(1.0 / normal.Dot(cross))

	return &Quad{Corner: corner, U: u, V: v, Normal: normal, Mat: material, D: d, W: w}
}

func (q *Quad) Material() core.Material { return q.Mat }

// Area returns the quad's surface area.
func (q *Quad) Area() float64 {
	return q.U.Cross(q.V).Length()
}

// Hit tests if a ray intersects with the quad.
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*core.IntersectInfo, bool) {
	denominator := ray.Direction.Dot(q.Normal)
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)

	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	normal := q.Normal
	if ray.Direction.Dot(normal) > 0 {
		normal = normal.Negate()
	}

	return &core.IntersectInfo{
		Point:  hitPoint,
		Normal: normal,
		UV:     core.NewVec2(alpha, beta),
		T:      t,
		Geo:    q,
		Valid:  true,
	}, true
}

// BoundingBox returns a bounding box for this quad, thickened slightly
// along its normal so BVH nodes built from axis-aligned quads keep a
// nonzero extent on every axis.
func (q *Quad) BoundingBox() core.AABB {
	const epsilon = 0.0001
	corners := []core.Vec3{
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	}
	bbox := core.NewAABBFromPoints(corners...)
	return bbox.Expand(epsilon)
}
