// Package pathspace implements the visibility oracle (C3): given a ray, find
// the closest surface it hits, or answer whether anything blocks it within a
// distance range. BVH is the only implementation.
package pathspace

import (
	"sort"

	"github.com/rjstrand/lumentrace/pkg/core"
)

// leafThreshold is the shape count at which a node stops splitting and
// falls back to linear search.
const leafThreshold = 8

type bvhNode struct {
	bounds core.AABB
	left   *bvhNode
	right  *bvhNode
	shapes []core.Shape
}

// BVH is a median-split bounding volume hierarchy implementing
// core.PathSpace.
type BVH struct {
	root   *bvhNode
	bounds core.AABB
}

// New builds a BVH over shapes. The slice is copied before sorting, so
// callers keep ownership of the one they passed in.
func New(shapes []core.Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	owned := make([]core.Shape, len(shapes))
	copy(owned, shapes)

	bounds := owned[0].BoundingBox()
	for _, s := range owned[1:] {
		bounds = bounds.Union(s.BoundingBox())
	}

	return &BVH{root: build(owned), bounds: bounds}
}

func build(shapes []core.Shape) *bvhNode {
	bounds := shapes[0].BoundingBox()
	for _, s := range shapes[1:] {
		bounds = bounds.Union(s.BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &bvhNode{bounds: bounds, shapes: shapes}
	}

	axis := bounds.LongestAxis()
	sortByAxis(shapes, axis)

	mid := len(shapes) / 2
	return &bvhNode{
		bounds: bounds,
		left:   build(shapes[:mid]),
		right:  build(shapes[mid:]),
	}
}

func sortByAxis(shapes []core.Shape, axis int) {
	sort.Slice(shapes, func(i, j int) bool {
		ci := shapes[i].BoundingBox().Center()
		cj := shapes[j].BoundingBox().Center()
		switch axis {
		case 0:
			return ci.X < cj.X
		case 1:
			return ci.Y < cj.Y
		default:
			return ci.Z < cj.Z
		}
	})
}

// AABB returns the world bound of everything in the hierarchy.
func (b *BVH) AABB() core.AABB {
	return b.bounds
}

// Intersect returns the closest hit with T in (epsilon, +inf), or a
// zero-value IntersectInfo with Valid=false if nothing is hit.
func (b *BVH) Intersect(ray core.Ray) core.IntersectInfo {
	return b.IntersectRange(ray, 1e-8, maxT)
}

// IntersectRange is Intersect restricted to a caller-chosen [tMin, tMax],
// used by aggregate shapes (TriangleMesh) that embed a BVH and must honor
// the tMin/tMax their own Hit was called with.
func (b *BVH) IntersectRange(ray core.Ray, tMin, tMax float64) core.IntersectInfo {
	if b.root == nil {
		return core.IntersectInfo{}
	}
	hit, ok := hitNode(b.root, ray, tMin, tMax)
	if !ok {
		return core.IntersectInfo{}
	}
	return *hit
}

// HasIntersect reports whether anything blocks ray within [tMin, tMax],
// without computing the closest-hit record (any-hit query, used for
// shadow rays).
func (b *BVH) HasIntersect(ray core.Ray, tMin, tMax float64) bool {
	if b.root == nil {
		return false
	}
	return hasHitNode(b.root, ray, tMin, tMax)
}

const maxT = 1e30

func hitNode(node *bvhNode, ray core.Ray, tMin, tMax float64) (*core.IntersectInfo, bool) {
	if !node.bounds.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.shapes != nil {
		var closest *core.IntersectInfo
		closestSoFar := tMax
		for _, shape := range node.shapes {
			if hit, ok := shape.Hit(ray, tMin, closestSoFar); ok {
				closestSoFar = hit.T
				closest = hit
			}
		}
		return closest, closest != nil
	}

	var closest *core.IntersectInfo
	closestSoFar := tMax

	if node.left != nil {
		if hit, ok := hitNode(node.left, ray, tMin, closestSoFar); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}
	if node.right != nil {
		if hit, ok := hitNode(node.right, ray, tMin, closestSoFar); ok {
			closest = hit
		}
	}

	return closest, closest != nil
}

func hasHitNode(node *bvhNode, ray core.Ray, tMin, tMax float64) bool {
	if !node.bounds.Hit(ray, tMin, tMax) {
		return false
	}

	if node.shapes != nil {
		for _, shape := range node.shapes {
			if _, ok := shape.Hit(ray, tMin, tMax); ok {
				return true
			}
		}
		return false
	}

	if node.left != nil && hasHitNode(node.left, ray, tMin, tMax) {
		return true
	}
	return node.right != nil && hasHitNode(node.right, ray, tMin, tMax)
}
