package roto

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/willow-compositor/mathutil"
	"github.com/phanxgames/willow-compositor/model"
)

// Composite combines src and matte according to mode, producing a
// non-premultiplied RGBA buffer the pipeline can hand to the GPU as an
// unmanaged image (spec §4.4 "Output modes").
func Composite(src *Source, matte *Matte, mode OutputMode) []model.Color {
	w, h := src.Width, src.Height
	out := make([]model.Color, w*h)

	switch mode {
	case OutputAlpha:
		for i, a := range matte.Alpha {
			c := src.RGB[i]
			out[i] = model.Color{R: c[0] * a, G: c[1] * a, B: c[2] * a, A: a}
		}
	case OutputMatteView:
		for i, a := range matte.Alpha {
			out[i] = model.Color{R: a, G: a, B: a, A: 1}
		}
	case OutputBoundary:
		drawBoundary(out, src, matte)
	case OutputOverlay:
		drawOverlay(out, src, matte)
	default: // OutputComposite
		for i, a := range matte.Alpha {
			c := src.RGB[i]
			out[i] = model.Color{R: c[0], G: c[1], B: c[2], A: a}
		}
	}
	return out
}

// drawBoundary shows the source at full opacity with a green contour traced
// where the matte's gradient magnitude exceeds 0.2 inside the [0.3, 0.7]
// alpha band.
func drawBoundary(out []model.Color, src *Source, matte *Matte) {
	w, h := src.Width, src.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			c := src.RGB[idx]
			out[idx] = model.Color{R: c[0], G: c[1], B: c[2], A: 1}

			a := matte.at(x, y)
			if a < 0.3 || a > 0.7 {
				continue
			}
			gx := matte.at(x+1, y) - matte.at(x-1, y)
			gy := matte.at(x, y+1) - matte.at(x, y-1)
			mag := math.Hypot(gx, gy)
			if mag > 0.2 {
				out[idx] = model.Color{R: 0, G: 1, B: 0, A: 1}
			}
		}
	}
}

// drawOverlay shows the matted foreground normally and tints everything
// outside the matte toward red, proportional to (1 - alpha).
func drawOverlay(out []model.Color, src *Source, matte *Matte) {
	for i, a := range matte.Alpha {
		c := src.RGB[i]
		tint := 1 - a
		out[i] = model.Color{
			R: c[0] + (1-c[0])*tint*0.5,
			G: c[1] * (1 - tint*0.5),
			B: c[2] * (1 - tint*0.5),
			A: 1,
		}
	}
}

// DrawMatted draws src onto dst keyed through matte using the GPU blend
// mode pair model.BlendMask/model.BlendErase, for the two output modes that
// key a clip rather than visualize the matte itself ("composite" and
// "alpha"). Other output modes (matte/boundary/overlay) are CPU views built
// by Composite and have no blend-mode equivalent.
func DrawMatted(dst, src *ebiten.Image, matte *Matte, mode OutputMode) {
	var op ebiten.DrawImageOptions
	dst.DrawImage(src, &op)

	switch mode {
	case OutputComposite:
		// Source-in: clip whatever was just drawn to the matte's alpha.
		var maskOp ebiten.DrawImageOptions
		maskOp.Blend = model.BlendMask.EbitenBlend()
		dst.DrawImage(matteImage(matte, false), &maskOp)
	case OutputAlpha:
		// Multiply by matte: punch out everywhere the matte is not opaque by
		// erasing with the matte's complement.
		var eraseOp ebiten.DrawImageOptions
		eraseOp.Blend = model.BlendErase.EbitenBlend()
		dst.DrawImage(matteImage(matte, true), &eraseOp)
	}
}

// matteImage uploads matte's alpha channel as a flat-white ebiten.Image —
// RGB opaque, A equal to the (optionally inverted) matte value — so it can
// be drawn purely for the alpha channel it carries through a blend mode.
func matteImage(matte *Matte, invert bool) *ebiten.Image {
	w, h := matte.Width, matte.Height
	pix := make([]byte, w*h*4)
	for i, a := range matte.Alpha {
		if invert {
			a = 1 - a
		}
		v := byte(mathutil.Clamp01(a)*255 + 0.5)
		pix[i*4+0] = v
		pix[i*4+1] = v
		pix[i*4+2] = v
		pix[i*4+3] = v
	}
	img := ebiten.NewImage(w, h)
	img.WritePixels(pix)
	return img
}
