package raster

import "math"

// RasterizeTriangle fills one flat-colored triangle with a z-buffer test.
// Vertices are in pixel space with y down; z is larger-is-nearer depth.
// Counter-clockwise triangles in NDC arrive clockwise here (det < 0); with cullBack
// set, anything else is skipped. Reports whether the triangle was drawn.
//
// Hot path: no allocations in the pixel loop.
func RasterizeTriangle(
	fb *FrameBuffer,
	x0, y0, z0, x1, y1, z1, x2, y2, z2 float64,
	color [4]uint8,
	cullBack bool,
) bool {
	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return false
	}
	if cullBack && det > 0 {
		return false
	}
	invDet := 1.0 / det

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return false
	}

	// Precompute edge deltas
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	drawn := false
	for sy := minY; sy <= maxY; sy++ {
		// Sample at pixel centers.
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = color[0]
			fb.Color[pxIdx+1] = color[1]
			fb.Color[pxIdx+2] = color[2]
			fb.Color[pxIdx+3] = color[3]
			drawn = true
		}
	}
	return drawn
}
