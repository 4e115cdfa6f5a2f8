// Package mask cuts square images into circles for round launcher icons.
package mask

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Circle returns a size×size alpha mask that is opaque inside the inscribed
// circle and transparent outside it. A pixel counts as inside when its
// center lies within the circle.
func Circle(size int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		dy := float64(y) + 0.5 - r
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			if dx*dx+dy*dy <= r*r {
				m.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return m
}

// Round composites src onto a transparent canvas through a circular mask
// of the same size. Pixels outside the circle end up fully transparent.
// src should be square; for other shapes the mask follows the shorter edge.
func Round(src image.Image) *image.NRGBA {
	b := src.Bounds()
	size := min(b.Dx(), b.Dy())
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.DrawMask(dst, dst.Rect, src, b.Min, Circle(size), image.Point{}, draw.Over)
	return dst
}
