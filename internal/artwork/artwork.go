// Package artwork draws the base app icon: a dark tile with an outer ring,
// a circuit trace on the right, concentric rings in the middle and a
// centered "A".
package artwork

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// BaseSize is the edge length of the base canvas in pixels.
const BaseSize = 512

const (
	center = BaseSize / 2
	letter = "A"
)

var (
	background = color.NRGBA{0x2a, 0x2a, 0x2a, 255}
	ringOuter  = color.NRGBA{100, 150, 180, 255}
	circuit    = color.NRGBA{50, 200, 150, 255}
	ringInner  = color.NRGBA{140, 120, 100, 200}
	letterFill = color.NRGBA{70, 180, 220, 255}
)

// segment is a straight circuit trace between two points.
type segment struct{ x1, y1, x2, y2 float64 }

var traces = []segment{
	{256, 100, 380, 100},
	{380, 100, 380, 150},
	{256, 150, 380, 150},
	{256, 150, 256, 200},
	{256, 250, 350, 250},
}

// pads are the solder dots at the trace ends.
var pads = []image.Point{{380, 150}, {256, 200}, {350, 250}}

const (
	outerInset = 20
	outerWidth = 15
	traceWidth = 3
	padRadius  = 5
	ringWidth  = 8
)

// ringRadii are the outer radii of the inner rings, largest first.
var ringRadii = []float64{150, 110, 70}

// Draw renders the icon on a fresh BaseSize×BaseSize canvas and returns it.
// Later operations paint over earlier ones. face is used for the letter;
// nil falls back to a small built-in bitmap face.
func Draw(face font.Face) image.Image {
	dc := gg.NewContext(BaseSize, BaseSize)
	dc.SetColor(background)
	dc.Clear()
	dc.SetLineCap(gg.LineCapButt)

	// Strokes are kept inside their bounding circle, so the path runs at
	// the radius minus half the width.
	outer := float64(center - outerInset)
	dc.SetColor(ringOuter)
	dc.SetLineWidth(outerWidth)
	dc.DrawCircle(center, center, outer-outerWidth/2.0)
	dc.Stroke()

	dc.SetColor(circuit)
	dc.SetLineWidth(traceWidth)
	for _, s := range traces {
		dc.DrawLine(s.x1, s.y1, s.x2, s.y2)
		dc.Stroke()
	}
	for _, p := range pads {
		dc.DrawCircle(float64(p.X), float64(p.Y), padRadius)
		dc.Fill()
	}

	dc.SetColor(ringInner)
	dc.SetLineWidth(ringWidth)
	for _, r := range ringRadii {
		dc.DrawCircle(center, center, r-ringWidth/2.0)
		dc.Stroke()
	}

	if face == nil {
		face = basicfont.Face7x13
	}
	dc.SetFontFace(face)
	dc.SetColor(letterFill)
	x, y := letterOrigin(face, dc.MeasureString)
	dc.DrawString(letter, x, y)

	return dc.Image()
}

// letterOrigin returns the baseline start that centers the letter
// horizontally on its advance and vertically on the midpoint between the
// ascender and descender lines.
func letterOrigin(face font.Face, measure func(string) (float64, float64)) (x, y float64) {
	m := face.Metrics()
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64
	w, _ := measure(letter)
	return center - w/2, center + (ascent-descent)/2
}
