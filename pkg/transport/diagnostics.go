package transport

import (
	"github.com/rjstrand/lumentrace/pkg/core"
)

// PositionTracer visualizes the primary hit point normalized against the
// scene's bounding box, one component per axis. Useful for spotting
// degenerate or mis-scaled geometry without running a full render.
type PositionTracer struct{}

func NewPositionTracer() *PositionTracer { return &PositionTracer{} }

func (t *PositionTracer) Sample(sampler core.Sampler, ray core.Ray, hit FirstHit, pathSpace core.PathSpace, mats core.MaterialContainer, lights core.LightSources) core.Color3 {
	if !hit.Intersect.Valid {
		return core.Color3{}
	}

	bounds := pathSpace.AABB()
	size := bounds.Size()
	offset := hit.Intersect.Point.Subtract(bounds.Min)

	normalized := core.Color3{}
	if size.X > 0 {
		normalized.X = offset.X / size.X
	}
	if size.Y > 0 {
		normalized.Y = offset.Y / size.Y
	}
	if size.Z > 0 {
		normalized.Z = offset.Z / size.Z
	}
	return normalized.Clamp(0, 1)
}

// NormalTracer visualizes the primary hit's shading normal, remapped
// from [-1, 1] to [0, 1] per component the way a normal map is displayed.
type NormalTracer struct{}

func NewNormalTracer() *NormalTracer { return &NormalTracer{} }

func (t *NormalTracer) Sample(sampler core.Sampler, ray core.Ray, hit FirstHit, pathSpace core.PathSpace, mats core.MaterialContainer, lights core.LightSources) core.Color3 {
	if !hit.Intersect.Valid {
		return core.Color3{}
	}
	return hit.Intersect.Normal.Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
}
