package roto

import (
	"math"

	"github.com/phanxgames/willow-compositor/mathutil"
)

// postProcess applies the fixed post-processing chain to a refined matte,
// in this exact order (spec §4.4): connected-component clean-up,
// morphological open, choke, shift-edge, contrast, feather.
func postProcess(m *Matte, params Params) *Matte {
	m = keepLargestComponents(m)
	m = morphologicalOpen(m, 1)
	m = applyChoke(m, params.Choke)
	m = applyShiftEdge(m, params.ShiftEdge)
	m = applyContrast(m, params.Contrast)
	m = applyFeather(m, params.Feather)
	return m
}

// keepLargestComponents flood-fills connected regions of pixels above a
// 0.3 threshold, drops any component covering less than 0.5% of the total
// pixel count, and zeroes the alpha of dropped components.
func keepLargestComponents(m *Matte) *Matte {
	w, h := m.Width, m.Height
	const threshold = 0.3
	visited := make([]bool, w*h)
	minSize := int(math.Ceil(float64(w*h) * 0.005))

	type point struct{ x, y int }
	var stack []point

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if visited[idx] || m.Alpha[idx] <= threshold {
				continue
			}
			var component []int
			stack = stack[:0]
			stack = append(stack, point{x, y})
			visited[idx] = true
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				pidx := p.y*w + p.x
				component = append(component, pidx)
				neighbors := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
				for _, n := range neighbors {
					nx, ny := p.x+n[0], p.y+n[1]
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					nidx := ny*w + nx
					if visited[nidx] || m.Alpha[nidx] <= threshold {
						continue
					}
					visited[nidx] = true
					stack = append(stack, point{nx, ny})
				}
			}
			if len(component) < minSize {
				for _, ci := range component {
					m.Alpha[ci] = 0
				}
			}
		}
	}
	return m
}

// morphologicalOpen erodes then dilates a thresholded binary view of m at
// the given radius, removing small isolated specks and thin protrusions.
// Pixels outside the reopened region are zeroed; pixels inside keep their
// original alpha value.
func morphologicalOpen(m *Matte, radius int) *Matte {
	w, h := m.Width, m.Height
	mask := newBinaryMask(w, h)
	for i, v := range m.Alpha {
		mask.Set[i] = v > 0.5
	}
	eroded := erode(mask, radius)
	opened := dilateBinary(eroded, radius)

	out := NewMatte(w, h)
	for i, v := range opened.Set {
		if v {
			out.Alpha[i] = m.Alpha[i]
		}
	}
	return out
}

func erode(mask *binaryMask, radius int) *binaryMask {
	out := newBinaryMask(mask.Width, mask.Height)
	for y := 0; y < mask.Height; y++ {
		for x := 0; x < mask.Width; x++ {
			all := true
			for dy := -radius; dy <= radius && all; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					if !mask.at(x+dx, y+dy) {
						all = false
						break
					}
				}
			}
			out.set(x, y, all)
		}
	}
	return out
}

func dilateBinary(mask *binaryMask, radius int) *binaryMask {
	out := newBinaryMask(mask.Width, mask.Height)
	for y := 0; y < mask.Height; y++ {
		for x := 0; x < mask.Width; x++ {
			any := false
			for dy := -radius; dy <= radius && !any; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					if mask.at(x+dx, y+dy) {
						any = true
						break
					}
				}
			}
			out.set(x, y, any)
		}
	}
	return out
}

// applyChoke shrinks (negative choke) or grows (positive choke) the matte
// by a flat bias, clamped to [0,1]. choke is in [-100, 100].
func applyChoke(m *Matte, choke float64) *Matte {
	bias := choke / 100
	out := NewMatte(m.Width, m.Height)
	for i, v := range m.Alpha {
		out.Alpha[i] = mathutil.Clamp01(v + bias)
	}
	return out
}

// applyShiftEdge dilates the matte's edge outward for positive values
// (max-filter) or erodes it inward for negative values (min-filter), over
// a window of |shiftEdge| pixels.
func applyShiftEdge(m *Matte, shiftEdge int) *Matte {
	if shiftEdge == 0 {
		return m
	}
	radius := shiftEdge
	if radius < 0 {
		radius = -radius
	}
	w, h := m.Width, m.Height
	out := NewMatte(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			best := m.at(x, y)
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					v := m.at(x+dx, y+dy)
					if shiftEdge > 0 && v > best {
						best = v
					} else if shiftEdge < 0 && v < best {
						best = v
					}
				}
			}
			out.set(x, y, best)
		}
	}
	return out
}

// applyContrast pushes alpha values toward 0 or 1 with a logistic sigmoid
// centered at 0.5, steepness controlled by contrast.
func applyContrast(m *Matte, contrast float64) *Matte {
	k := 1 + contrast*0.19
	out := NewMatte(m.Width, m.Height)
	for i, v := range m.Alpha {
		out.Alpha[i] = 1 / (1 + math.Exp(-k*(v-0.5)))
	}
	return out
}

// applyFeather softens the matte edge with a separable Gaussian blur of
// sigma = max(0.5, feather).
func applyFeather(m *Matte, feather float64) *Matte {
	sigma := math.Max(0.5, feather)
	radius := int(math.Ceil(sigma * 3))
	if radius < 1 {
		radius = 1
	}
	weights := make([]float64, 2*radius+1)
	sum := 0.0
	for i := -radius; i <= radius; i++ {
		wgt := math.Exp(-0.5 * float64(i*i) / (sigma * sigma))
		weights[i+radius] = wgt
		sum += wgt
	}
	for i := range weights {
		weights[i] /= sum
	}

	w, h := m.Width, m.Height
	horiz := NewMatte(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := 0.0
			for i := -radius; i <= radius; i++ {
				v += m.at(x+i, y) * weights[i+radius]
			}
			horiz.set(x, y, v)
		}
	}
	out := NewMatte(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := 0.0
			for i := -radius; i <= radius; i++ {
				v += horiz.at(x, y+i) * weights[i+radius]
			}
			out.set(x, y, mathutil.Clamp01(v))
		}
	}
	return out
}

