package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func TestDownsampleSize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 40, 20))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = 200, 100, 50, 255
	}

	dst := Downsample(src, 20, 10)
	if b := dst.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Fatalf("size %v, want 20x10", b)
	}
	c := dst.NRGBAAt(10, 5)
	if absDiff(c.R, 200) > 1 || absDiff(c.G, 100) > 1 || absDiff(c.B, 50) > 1 || c.A != 255 {
		t.Errorf("uniform color changed to %v", c)
	}

	if same := Downsample(dst, 20, 10); same != dst {
		t.Error("Downsample should return the input when already small enough")
	}
}

func TestDownsampleNoDarkHalo(t *testing.T) {
	// Left half opaque white, right half transparent black.
	src := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 16; x++ {
			src.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	dst := Downsample(src, 8, 8)
	for x := 0; x < 8; x++ {
		c := dst.NRGBAAt(x, 4)
		if c.A > 16 && c.R < 240 {
			t.Errorf("pixel %d darkened at the edge: %v", x, c)
		}
	}
}

func TestFlatten(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})

	out := Flatten(src, ClearColor)
	if c := out.NRGBAAt(0, 0); c != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("opaque pixel = %v", c)
	}
	if c := out.NRGBAAt(1, 0); c != ClearColor {
		t.Errorf("transparent pixel = %v, want %v", c, ClearColor)
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
