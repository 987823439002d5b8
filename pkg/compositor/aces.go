// Package compositor implements the core.Compositor external interface:
// the presentation-layer surface the renderer writes finished radiance
// values to.
package compositor

import (
	"image"
	"image/color"
	"math"

	"github.com/rjstrand/lumentrace/pkg/core"
)

// ACESCompositor tone-maps linear radiance with the Narkowicz ACES filmic
// fit and writes the result into an *image.RGBA, gamma-corrected for
// display. Exposure is a fixed multiplier applied before the curve;
// there is no auto-exposure metering, since this compositor is a
// stateless per-pixel sink and metering needs a temporal luminance
// history the interface doesn't carry.
type ACESCompositor struct {
	img      *image.RGBA
	width    int
	height   int
	exposure float64
}

// NewACESCompositor creates a compositor for a width x height image with
// the given fixed exposure multiplier (1.0 leaves mid-grey unchanged).
func NewACESCompositor(width, height int, exposure float64) *ACESCompositor {
	return &ACESCompositor{
		img:      image.NewRGBA(image.Rect(0, 0, width, height)),
		width:    width,
		height:   height,
		exposure: exposure,
	}
}

func (c *ACESCompositor) Width() int  { return c.width }
func (c *ACESCompositor) Height() int { return c.height }

// Set tone-maps c and writes it to pixel (i, j), flipping to image-space
// row order (j counted from the bottom of the frame, like the teacher's
// raytracer.RenderPass).
func (c *ACESCompositor) Set(i, j int, col core.Color3) {
	mapped := col.Multiply(c.exposure)
	mapped = tonemapACES(mapped)
	mapped = mapped.GammaCorrect(2.2).Clamp(0.0, 1.0)

	c.img.SetRGBA(i, c.height-1-j, color.RGBA{
		R: uint8(255*mapped.X + 0.5),
		G: uint8(255*mapped.Y + 0.5),
		B: uint8(255*mapped.Z + 0.5),
		A: 255,
	})
}

// Image returns the composited frame for encoding (e.g. to PNG).
func (c *ACESCompositor) Image() *image.RGBA { return c.img }

// tonemapACES applies the Narkowicz ACES filmic curve componentwise.
func tonemapACES(v core.Vec3) core.Vec3 {
	return core.NewVec3(acesFilmic(v.X), acesFilmic(v.Y), acesFilmic(v.Z))
}

// acesFilmic is Krzysztof Narkowicz's single-precision fit to the ACES
// reference tonemapping curve.
func acesFilmic(x float64) float64 {
	const a, b, c, d, e = 2.51, 0.03, 2.43, 0.59, 0.14
	mapped := (x * (a*x + b)) / (x*(c*x+d) + e)
	return math.Max(0, math.Min(1, mapped))
}
