package material

import (
	"testing"

	"github.com/rjstrand/lumentrace/pkg/core"
)

func TestImageTexture_Value(t *testing.T) {
	// 2x2 checkerboard: row 0 is white/black, row 1 is black/white.
	pixels := []core.Color3{
		core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1),
	}
	texture := NewImageTexture(2, 2, pixels)

	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)

	cases := []struct {
		uv       core.Vec2
		expected core.Color3
	}{
		{core.NewVec2(0.1, 0.1), black}, // bottom-left -> row 1, col 0
		{core.NewVec2(0.9, 0.1), white}, // bottom-right -> row 1, col 1
		{core.NewVec2(0.1, 0.9), white}, // top-left -> row 0, col 0
		{core.NewVec2(0.9, 0.9), black}, // top-right -> row 0, col 1
	}

	for _, c := range cases {
		if got := texture.Value(c.uv); got != c.expected {
			t.Errorf("Value(%v) = %v, expected %v", c.uv, got, c.expected)
		}
	}
}

func TestImageTexture_WrapsUVOutsideUnitSquare(t *testing.T) {
	red := core.NewVec3(1, 0, 0)
	texture := NewImageTexture(1, 1, []core.Color3{red})

	for _, uv := range []core.Vec2{
		core.NewVec2(0.5, 0.5),
		core.NewVec2(1.5, 0.5),
		core.NewVec2(0.5, 1.5),
		core.NewVec2(-0.5, -0.5),
		core.NewVec2(2.3, 3.7),
	} {
		if got := texture.Value(uv); got != red {
			t.Errorf("Value(%v) = %v, expected %v", uv, got, red)
		}
	}
}

func TestSolidColor_IgnoresUV(t *testing.T) {
	color := core.NewVec3(0.7, 0.3, 0.1)
	solid := NewSolidColor(color.X, color.Y, color.Z)

	for _, uv := range []core.Vec2{{}, core.NewVec2(1, 1), core.NewVec2(0.5, 0.5)} {
		if got := solid.Value(uv); got != color {
			t.Errorf("Value(%v) = %v, expected %v", uv, got, color)
		}
	}
}
