package postprocess

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ClearColor is the viewer background, (0, 0.333, 0.333) in unit RGB.
var ClearColor = color.NRGBA{R: 0, G: 85, B: 85, A: 255}

// Flatten composites img over an opaque background color.
func Flatten(img *image.NRGBA, bg color.NRGBA) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(dst, b, img, b.Min, draw.Over)
	return dst
}
