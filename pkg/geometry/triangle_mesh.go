package geometry

import (
	"github.com/rjstrand/lumentrace/pkg/core"
	"github.com/rjstrand/lumentrace/pkg/pathspace"
)

// TriangleMesh is a collection of triangles sharing a default material,
// indexed by an internal BVH for fast intersection.
type TriangleMesh struct {
	triangles []core.Shape
	bvh       *pathspace.BVH
	bbox      core.AABB
	mat       core.Material
}

// TriangleMeshOptions holds optional parameters for mesh construction.
type TriangleMeshOptions struct {
	Normals   []core.Vec3     // optional custom normal per triangle
	Materials []core.Material // optional per-triangle material override
	Rotation  *core.Vec3      // optional rotation applied to vertices
	Center    *core.Vec3      // pivot for Rotation
}

// NewTriangleMesh builds a mesh from a vertex buffer and a flat face-index
// list (each run of 3 indices is one triangle).
func NewTriangleMesh(vertices []core.Vec3, faces []int, material core.Material, options *TriangleMeshOptions) *TriangleMesh {
	if len(faces)%3 != 0 {
		panic("face indices must be a multiple of 3")
	}
	numTriangles := len(faces) / 3

	if options != nil {
		if options.Normals != nil && len(options.Normals) != numTriangles {
			panic("number of normals must match number of triangles")
		}
		if options.Materials != nil && len(options.Materials) != numTriangles {
			panic("number of materials must match number of triangles")
		}
	}

	workingVertices := vertices
	if options != nil && options.Rotation != nil {
		workingVertices = make([]core.Vec3, len(vertices))
		for i, vertex := range vertices {
			if options.Center != nil {
				vertex = vertex.Subtract(*options.Center)
			}
			vertex = rotateVertex(vertex, *options.Rotation)
			if options.Center != nil {
				vertex = vertex.Add(*options.Center)
			}
			workingVertices[i] = vertex
		}
	}

	triangles := make([]core.Shape, numTriangles)
	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		if i0 >= len(workingVertices) || i1 >= len(workingVertices) || i2 >= len(workingVertices) ||
			i0 < 0 || i1 < 0 || i2 < 0 {
			panic("face index out of bounds")
		}

		triMaterial := material
		if options != nil && options.Materials != nil {
			triMaterial = options.Materials[i]
		}

		if options != nil && options.Normals != nil {
			triangles[i] = NewTriangleWithNormal(workingVertices[i0], workingVertices[i1], workingVertices[i2], options.Normals[i], triMaterial)
		} else {
			triangles[i] = NewTriangle(workingVertices[i0], workingVertices[i1], workingVertices[i2], triMaterial)
		}
	}

	bvh := pathspace.New(triangles)

	var bbox core.AABB
	if len(triangles) > 0 {
		bbox = triangles[0].BoundingBox()
		for _, tri := range triangles[1:] {
			bbox = bbox.Union(tri.BoundingBox())
		}
	}

	return &TriangleMesh{triangles: triangles, bvh: bvh, bbox: bbox, mat: material}
}

func (tm *TriangleMesh) Material() core.Material { return tm.mat }

// Hit tests if a ray intersects with any triangle in the mesh.
func (tm *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64) (*core.IntersectInfo, bool) {
	info := tm.bvh.IntersectRange(ray, tMin, tMax)
	if !info.Valid {
		return nil, false
	}
	info.Geo = tm
	return &info, true
}

// BoundingBox returns the axis-aligned bounding box for the entire mesh.
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.bbox
}

// TriangleCount returns the number of triangles in this mesh.
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.triangles)
}
