package material

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/rjstrand/lumentrace/pkg/core"
)

// ImageTexture is a ColorSource backed by a decoded raster image, sampled
// with nearest-neighbor filtering.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Color3 // row-major: Pixels[y*Width+x]
}

// NewImageTexture creates an image texture from raw decoded pixel data.
func NewImageTexture(width, height int, pixels []core.Color3) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

// DecodeImageTexture reads and decodes an image in any registered format
// (PNG and JPEG via the standard library; BMP and TIFF via
// golang.org/x/image, imported here for their side-effecting format
// registration) into an ImageTexture. Gamma decoding is deliberately
// skipped: texture authors are expected to supply linear data.
func DecodeImageTexture(r io.Reader) (*ImageTexture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, core.Wrap(core.ResourceIO, "material.DecodeImageTexture", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Color3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r16, g16, b16, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*width+x] = core.NewVec3(
				float64(r16)/0xffff,
				float64(g16)/0xffff,
				float64(b16)/0xffff,
			)
		}
	}

	return NewImageTexture(width, height, pixels), nil
}

// Value samples the texture at uv with nearest-neighbor filtering,
// wrapping coordinates outside [0,1] and flipping V so v=1 is the image
// top.
func (t *ImageTexture) Value(uv core.Vec2) core.Color3 {
	u := uv.X - math.Floor(uv.X)
	v := uv.Y - math.Floor(uv.Y)

	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return t.Pixels[y*t.Width+x]
}
