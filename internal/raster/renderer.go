package raster

import (
	"image"

	"icosphere-renderer/internal/scene"
)

// Options controls a single render.
type Options struct {
	Width       int
	Height      int
	Supersample int      // render at Width*Supersample; the caller downsamples
	Color       [3]uint8 // sRGB base color
	CullBack    bool
	Light       *LightConfig // nil = DefaultLightConfig
}

// DefaultColor is the base surface color.
var DefaultColor = [3]uint8{160, 160, 170}

// Stats reports what a render did.
type Stats struct {
	Triangles int // submitted
	Drawn     int // wrote at least one pixel
	Culled    int // everything else: back-facing, degenerate, off-screen, hidden
}

// Render draws the frame's mesh to an NRGBA image of Width×Supersample by
// Height×Supersample pixels with flat per-face lighting.
func Render(f scene.Frame, opts Options) (*image.NRGBA, Stats) {
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	w, h := opts.Width*ss, opts.Height*ss
	fb := NewFrameBuffer(w, h)

	var st Stats
	if f.Mesh == nil || w <= 0 || h <= 0 {
		return fb.Image(), st
	}

	lc := opts.Light
	if lc == nil {
		def := DefaultLightConfig()
		lc = &def
	}

	p := Project(f, w, h)
	for _, t := range f.Mesh.Triangles {
		st.Triangles++
		if !p.Valid[t[0]] || !p.Valid[t[1]] || !p.Valid[t[2]] {
			st.Culled++
			continue
		}

		rgb := lc.Shade(opts.Color, lc.ComputeShade(p.faceNormal(t)))
		color := [4]uint8{rgb[0], rgb[1], rgb[2], 255}

		a, b, c := t[0], t[1], t[2]
		if RasterizeTriangle(fb,
			p.X[a], p.Y[a], p.Depth[a],
			p.X[b], p.Y[b], p.Depth[b],
			p.X[c], p.Y[c], p.Depth[c],
			color, opts.CullBack) {
			st.Drawn++
		} else {
			st.Culled++
		}
	}

	return fb.Image(), st
}
