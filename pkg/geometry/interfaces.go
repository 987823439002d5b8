package geometry

import "github.com/rjstrand/lumentrace/pkg/core"

// Preprocessor is implemented by shapes or lights that need to know the
// finite world bounds before they can sample correctly (infinite lights,
// which convert a directional sample into a disk over the scene's
// bounding sphere).
type Preprocessor interface {
	Preprocess(worldCenter core.Vec3, worldRadius float64) error
}

// AxisAlignment classifies a normal as aligned with one of the coordinate
// axes, used to build a tight bounding box for an otherwise-infinite plane.
type AxisAlignment int

const (
	NotAxisAligned AxisAlignment = iota
	XAxisAligned
	YAxisAligned
	ZAxisAligned
)

const axisAlignmentTolerance = 0.9999

func getAxisAlignment(normal core.Vec3) AxisAlignment {
	abs := core.NewVec3(absf(normal.X), absf(normal.Y), absf(normal.Z))
	switch {
	case abs.X > axisAlignmentTolerance:
		return XAxisAligned
	case abs.Y > axisAlignmentTolerance:
		return YAxisAligned
	case abs.Z > axisAlignmentTolerance:
		return ZAxisAligned
	default:
		return NotAxisAligned
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
