package mask

import (
	"image"
	"image/color"
	"testing"
)

func opaque(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestCircleCornersAndCenter(t *testing.T) {
	for _, size := range []int{10, 48, 72, 96, 144, 192} {
		m := Circle(size)
		last := size - 1
		for _, p := range []image.Point{{0, 0}, {last, 0}, {0, last}, {last, last}} {
			if a := m.AlphaAt(p.X, p.Y).A; a != 0 {
				t.Errorf("size %d: corner %v alpha = %d, want 0", size, p, a)
			}
		}
		if a := m.AlphaAt(size/2, size/2).A; a != 0xff {
			t.Errorf("size %d: center alpha = %d, want 255", size, a)
		}
	}
}

func TestCircleIsSymmetric(t *testing.T) {
	const size = 37
	m := Circle(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			a := m.AlphaAt(x, y).A
			if b := m.AlphaAt(size-1-x, y).A; a != b {
				t.Fatalf("not mirror-symmetric at (%d,%d)", x, y)
			}
			if b := m.AlphaAt(y, x).A; a != b {
				t.Fatalf("not diagonal-symmetric at (%d,%d)", x, y)
			}
		}
	}
}

func TestCircleTouchesEdgeMidpoints(t *testing.T) {
	m := Circle(10)
	if a := m.AlphaAt(0, 5).A; a != 0xff {
		t.Errorf("left edge midpoint alpha = %d, want 255", a)
	}
	if a := m.AlphaAt(5, 9).A; a != 0xff {
		t.Errorf("bottom edge midpoint alpha = %d, want 255", a)
	}
}

func TestRound(t *testing.T) {
	c := color.NRGBA{70, 180, 220, 255}
	out := Round(opaque(10, c))

	if b := out.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Fatalf("bounds = %v, want 10x10", b)
	}
	for _, p := range []image.Point{{0, 0}, {9, 0}, {0, 9}, {9, 9}} {
		if a := out.NRGBAAt(p.X, p.Y).A; a != 0 {
			t.Errorf("corner %v alpha = %d, want 0", p, a)
		}
	}
	if got := out.NRGBAAt(5, 5); got != c {
		t.Errorf("center = %v, want %v", got, c)
	}
}

func TestRoundSubImageOrigin(t *testing.T) {
	full := opaque(20, color.NRGBA{255, 0, 0, 255})
	sub := full.SubImage(image.Rect(5, 5, 15, 15))
	out := Round(sub)
	if got := out.NRGBAAt(5, 5); got.A != 255 || got.R != 255 {
		t.Errorf("center = %v, want opaque red", got)
	}
	if a := out.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}
