package geometry

import "github.com/rjstrand/lumentrace/pkg/core"

// Triangle is a single triangle defined by three vertices, the primitive
// a TriangleMesh is built from.
type Triangle struct {
	V0, V1, V2 core.Vec3
	Mat        core.Material
	normal     core.Vec3
	bbox       core.AABB
}

// NewTriangle creates a new triangle from three vertices, deriving its
// normal from the winding order.
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Mat: material}
	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)
	return t
}

// NewTriangleWithNormal creates a new triangle from three vertices with a
// caller-supplied normal, used for smooth-shaded meshes.
func NewTriangleWithNormal(v0, v1, v2, normal core.Vec3, material core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Mat: material, normal: normal.Normalize()}
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)
	return t
}

func (t *Triangle) Material() core.Material { return t.Mat }

// Hit tests if a ray intersects with the triangle using Möller-Trumbore.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*core.IntersectInfo, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tHit := f * edge2.Dot(q)
	if tHit < tMin || tHit > tMax {
		return nil, false
	}

	normal := t.normal
	if ray.Direction.Dot(normal) > 0 {
		normal = normal.Negate()
	}

	return &core.IntersectInfo{
		Point:  ray.At(tHit),
		Normal: normal,
		UV:     core.NewVec2(u, v),
		T:      tHit,
		Geo:    t,
		Valid:  true,
	}, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle.
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}
