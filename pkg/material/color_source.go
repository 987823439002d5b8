package material

import "github.com/rjstrand/lumentrace/pkg/core"

// ColorSource abstracts a material parameter that may be a constant or a
// texture lookup, so a BRDF can take "albedo" as one value instead of
// branching on whether it's textured.
type ColorSource interface {
	Value(uv core.Vec2) core.Color3
}

// SolidColor is a ColorSource that ignores uv.
type SolidColor struct {
	Color core.Color3
}

// NewSolidColor creates a SolidColor from RGB components.
func NewSolidColor(r, g, b float64) SolidColor {
	return SolidColor{Color: core.NewVec3(r, g, b)}
}

func (s SolidColor) Value(uv core.Vec2) core.Color3 { return s.Color }
