package geometry

import (
	"math"

	"github.com/rjstrand/lumentrace/pkg/core"
)

// Box is a rectangular box built from 6 quads, with optional rotation
// about its center.
type Box struct {
	Center   core.Vec3
	Size     core.Vec3
	Rotation core.Vec3
	Mat      core.Material
	faces    [6]*Quad
	bbox     core.AABB
}

// NewBox creates a new box with the given center, half-extent size,
// rotation (radians around X, Y, Z, applied in that order), and material.
func NewBox(center, size, rotation core.Vec3, material core.Material) *Box {
	b := &Box{Center: center, Size: size, Rotation: rotation, Mat: material}
	b.generateFaces()
	return b
}

// NewAxisAlignedBox creates a new box with no rotation.
func NewAxisAlignedBox(center, size core.Vec3, material core.Material) *Box {
	return NewBox(center, size, core.Vec3{}, material)
}

func (b *Box) Material() core.Material { return b.Mat }

func (b *Box) generateFaces() {
	corners := [8]core.Vec3{
		core.NewVec3(-1, -1, -1),
		core.NewVec3(1, -1, -1),
		core.NewVec3(1, 1, -1),
		core.NewVec3(-1, 1, -1),
		core.NewVec3(-1, -1, 1),
		core.NewVec3(1, -1, 1),
		core.NewVec3(1, 1, 1),
		core.NewVec3(-1, 1, 1),
	}

	for i := range corners {
		corners[i] = core.NewVec3(corners[i].X*b.Size.X, corners[i].Y*b.Size.Y, corners[i].Z*b.Size.Z)
		corners[i] = rotateVertex(corners[i], b.Rotation)
		corners[i] = corners[i].Add(b.Center)
	}

	b.faces[0] = NewQuad(corners[4], corners[5].Subtract(corners[4]), corners[7].Subtract(corners[4]), b.Mat)
	b.faces[1] = NewQuad(corners[1], corners[0].Subtract(corners[1]), corners[2].Subtract(corners[1]), b.Mat)
	b.faces[2] = NewQuad(corners[5], corners[1].Subtract(corners[5]), corners[6].Subtract(corners[5]), b.Mat)
	b.faces[3] = NewQuad(corners[0], corners[4].Subtract(corners[0]), corners[3].Subtract(corners[0]), b.Mat)
	b.faces[4] = NewQuad(corners[3], corners[7].Subtract(corners[3]), corners[2].Subtract(corners[3]), b.Mat)
	b.faces[5] = NewQuad(corners[4], corners[0].Subtract(corners[4]), corners[5].Subtract(corners[4]), b.Mat)

	b.bbox = core.NewAABBFromPoints(corners[:]...)
}

// Hit tests if a ray intersects with any face of the box.
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*core.IntersectInfo, bool) {
	var closest *core.IntersectInfo
	closestT := tMax

	for _, face := range b.faces {
		if hit, ok := face.Hit(ray, tMin, closestT); ok {
			closestT = hit.T
			hit.Geo = b
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the axis-aligned bounding box for this box.
func (b *Box) BoundingBox() core.AABB {
	return b.bbox
}

// rotateVertex applies rotation around X, Y, Z axes in that order.
func rotateVertex(vertex, rotation core.Vec3) core.Vec3 {
	v := vertex
	if rotation.X != 0 {
		cos, sin := math.Cos(rotation.X), math.Sin(rotation.X)
		v = core.NewVec3(v.X, v.Y*cos-v.Z*sin, v.Y*sin+v.Z*cos)
	}
	if rotation.Y != 0 {
		cos, sin := math.Cos(rotation.Y), math.Sin(rotation.Y)
		v = core.NewVec3(v.X*cos+v.Z*sin, v.Y, -v.X*sin+v.Z*cos)
	}
	if rotation.Z != 0 {
		cos, sin := math.Cos(rotation.Z), math.Sin(rotation.Z)
		v = core.NewVec3(v.X*cos-v.Y*sin, v.X*sin+v.Y*cos, v.Z)
	}
	return v
}
