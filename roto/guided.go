package roto

import "github.com/phanxgames/willow-compositor/mathutil"

// integralImage builds a summed-area table of buf (w*h, row-major) with a
// 1-pixel zero border for O(1) box-sum queries.
type integralImage struct {
	w, h int
	sum  []float64 // (w+1)*(h+1)
}

func buildIntegral(buf []float64, w, h int) *integralImage {
	sum := make([]float64, (w+1)*(h+1))
	stride := w + 1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum[(y+1)*stride+(x+1)] = buf[y*w+x] + sum[y*stride+(x+1)] + sum[(y+1)*stride+x] - sum[y*stride+x]
		}
	}
	return &integralImage{w: w, h: h, sum: sum}
}

// boxSum returns the sum of buf over [x0,x1] x [y0,y1] inclusive, clamped
// to image bounds.
func (ii *integralImage) boxSum(x0, y0, x1, y1 int) float64 {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= ii.w {
		x1 = ii.w - 1
	}
	if y1 >= ii.h {
		y1 = ii.h - 1
	}
	if x0 > x1 || y0 > y1 {
		return 0
	}
	stride := ii.w + 1
	return ii.sum[(y1+1)*stride+(x1+1)] - ii.sum[y0*stride+(x1+1)] - ii.sum[(y1+1)*stride+x0] + ii.sum[y0*stride+x0]
}

// boxMean returns the mean of buf over a (2*radius+1) square centered at
// (x, y), clamped at image edges (the window shrinks rather than wrapping).
func (ii *integralImage) boxMean(x, y, radius int) float64 {
	x0, y0 := x-radius, y-radius
	x1, y1 := x+radius, y+radius
	cx0, cy0 := max(x0, 0), max(y0, 0)
	cx1, cy1 := min(x1, ii.w-1), min(y1, ii.h-1)
	area := float64((cx1 - cx0 + 1) * (cy1 - cy0 + 1))
	if area <= 0 {
		return 0
	}
	return ii.boxSum(x0, y0, x1, y1) / area
}

// GuidedFilter refines alpha using guide as the edge-preserving reference,
// per spec §4.4: a local linear model alpha ~= a*I + b fit over a box of
// the given radius with regularization eps, using integral images so the
// whole pass is O(N). With radius 0 it is the identity; as eps -> infinity
// it converges to the local mean of alpha.
func GuidedFilter(alpha, guide *Matte, radius int, eps float64) *Matte {
	w, h := alpha.Width, alpha.Height
	if radius <= 0 {
		out := NewMatte(w, h)
		copy(out.Alpha, alpha.Alpha)
		return out
	}

	guideI := buildIntegral(guide.Alpha, w, h)
	alphaI := buildIntegral(alpha.Alpha, w, h)

	prod := make([]float64, w*h)
	guideSq := make([]float64, w*h)
	for i := range prod {
		prod[i] = guide.Alpha[i] * alpha.Alpha[i]
		guideSq[i] = guide.Alpha[i] * guide.Alpha[i]
	}
	prodI := buildIntegral(prod, w, h)
	guideSqI := buildIntegral(guideSq, w, h)

	aField := make([]float64, w*h)
	bField := make([]float64, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			meanI := guideI.boxMean(x, y, radius)
			meanP := alphaI.boxMean(x, y, radius)
			meanIP := prodI.boxMean(x, y, radius)
			meanII := guideSqI.boxMean(x, y, radius)

			varI := meanII - meanI*meanI
			covIP := meanIP - meanI*meanP

			a := covIP / (varI + eps)
			b := meanP - a*meanI

			aField[y*w+x] = a
			bField[y*w+x] = b
		}
	}

	aI := buildIntegral(aField, w, h)
	bI := buildIntegral(bField, w, h)

	out := NewMatte(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			meanA := aI.boxMean(x, y, radius)
			meanB := bI.boxMean(x, y, radius)
			v := meanA*guide.at(x, y) + meanB
			out.set(x, y, mathutil.Clamp01(v))
		}
	}
	return out
}

// lumaGuide returns the BT.709 luma of src as a guidance matte.
func lumaGuide(src *Source) *Matte {
	out := NewMatte(src.Width, src.Height)
	for i, c := range src.RGB {
		out.Alpha[i] = mathutil.Luma709(c[0], c[1], c[2])
	}
	return out
}
