package resample

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// kernel is the interpolator used for every downscale. Catmull-Rom is the
// sharpest filter x/image/draw offers and is what the icon sizes are tuned
// against.
var kernel draw.Interpolator = draw.CatmullRom

// Square scales src to a size×size NRGBA image. src is only read.
func Square(src image.Image, size int) *image.NRGBA {
	if size <= 0 {
		panic(fmt.Sprintf("resample: non-positive size %d", size))
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	kernel.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
	return dst
}
