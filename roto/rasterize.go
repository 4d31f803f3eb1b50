package roto

import (
	"math"

	"github.com/phanxgames/willow-compositor/model"
)

// binaryMask is a row-major []bool-equivalent stored as []bool for
// simplicity; dilation/erosion operate directly on it.
type binaryMask struct {
	Width, Height int
	Set           []bool
}

func newBinaryMask(w, h int) *binaryMask {
	return &binaryMask{Width: w, Height: h, Set: make([]bool, w*h)}
}

func (m *binaryMask) at(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.Set[y*m.Width+x]
}

func (m *binaryMask) set(x, y int, v bool) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	m.Set[y*m.Width+x] = v
}

// rasterizeStrokes draws each stroke as a polyline with round caps, line
// width 2*radius, solid fill, thresholding alpha at 128 to produce a binary
// mask (spec §4.4 "Stroke rasterization"). Stroke points and radius are in
// normalized [0,1]^2 clip space; this function denormalizes them against
// (w, h) before rasterizing.
func rasterizeStrokes(w, h int, strokes []model.RotoStroke) *binaryMask {
	mask := newBinaryMask(w, h)
	for _, s := range strokes {
		radiusPx := s.Radius * float64(w)
		pts := make([][2]float64, len(s.Points))
		for i, p := range s.Points {
			pts[i] = [2]float64{p.X * float64(w), p.Y * float64(h)}
		}
		for i := 0; i < len(pts); i++ {
			stampDisc(mask, pts[i][0], pts[i][1], radiusPx)
			if i+1 < len(pts) {
				stampSegment(mask, pts[i], pts[i+1], radiusPx)
			}
		}
	}
	return mask
}

// stampDisc fills a solid disc of the given radius (round stroke cap).
func stampDisc(mask *binaryMask, cx, cy, radius float64) {
	r := int(math.Ceil(radius))
	minX, maxX := int(cx)-r, int(cx)+r
	minY, maxY := int(cy)-r, int(cy)+r
	r2 := radius * radius
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r2 {
				mask.set(x, y, true)
			}
		}
	}
}

// stampSegment fills a capsule (line width 2*radius) between two points by
// sampling discs along the segment at sub-radius spacing. Simple and exact
// for the mask's intended use (solid fill, threshold at creation time).
func stampSegment(mask *binaryMask, a, b [2]float64, radius float64) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return
	}
	step := math.Max(radius*0.5, 0.5)
	steps := int(math.Ceil(length / step))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		stampDisc(mask, a[0]+dx*t, a[1]+dy*t, radius)
	}
}

// dilateEuclidean grows mask by radius pixels in Euclidean distance.
func dilateEuclidean(mask *binaryMask, radius float64) *binaryMask {
	out := newBinaryMask(mask.Width, mask.Height)
	r := int(math.Ceil(radius))
	r2 := radius * radius
	for y := 0; y < mask.Height; y++ {
		for x := 0; x < mask.Width; x++ {
			if mask.at(x, y) {
				out.set(x, y, true)
				continue
			}
			found := false
			for dy := -r; dy <= r && !found; dy++ {
				for dx := -r; dx <= r; dx++ {
					if float64(dx*dx+dy*dy) > r2 {
						continue
					}
					if mask.at(x+dx, y+dy) {
						found = true
						break
					}
				}
			}
			out.set(x, y, found)
		}
	}
	return out
}
