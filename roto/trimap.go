package roto

// Trimap values follow spec §4.4: 255 definite foreground, 0 definite
// background, 128 unknown.
const (
	TrimapBG      = 0.0
	TrimapUnknown = 128.0
	TrimapFG      = 255.0
)

// buildTrimap dilates fgMask by refineRadius, then classifies each pixel:
// fgMask -> definite FG; else bgMask -> definite BG; else inside the
// dilation -> unknown; else background.
func buildTrimap(fgMask, bgMask *binaryMask, refineRadius float64) *Matte {
	dilated := dilateEuclidean(fgMask, refineRadius)
	w, h := fgMask.Width, fgMask.Height
	out := NewMatte(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch {
			case fgMask.at(x, y):
				out.set(x, y, TrimapFG)
			case bgMask.at(x, y):
				out.set(x, y, TrimapBG)
			case dilated.at(x, y):
				out.set(x, y, TrimapUnknown)
			default:
				out.set(x, y, TrimapBG)
			}
		}
	}
	return out
}

// trimapFromPrior seeds a trimap from a previously computed matte: pixels
// with matte > 0.9 are FG, < 0.1 are BG, the rest are "edge"; a
// refineRadius band around edge pixels is then expanded into the unknown
// region (spec §4.4 propagation).
func trimapFromPrior(prior *Matte, refineRadius float64) *Matte {
	w, h := prior.Width, prior.Height
	edge := newBinaryMask(w, h)
	base := NewMatte(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := prior.at(x, y)
			switch {
			case a > 0.9:
				base.set(x, y, TrimapFG)
			case a < 0.1:
				base.set(x, y, TrimapBG)
			default:
				edge.set(x, y, true)
			}
		}
	}
	band := dilateEuclidean(edge, refineRadius)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if band.at(x, y) {
				base.set(x, y, TrimapUnknown)
			}
		}
	}
	return base
}
