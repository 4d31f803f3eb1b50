// Package curvelut turns a set of bezier control points into a dense
// 256-entry lookup table suitable for texture upload, using a
// Fritsch-Carlson monotone cubic Hermite spline over the sorted control
// points.
//
// Grounded on the ICC Lut interface
// (other_examples/bd6d914a_seehuhn-go-icc__lut.go.go): a pure function from
// control data to a dense table, no I/O, an Apply-style entry point per
// sample. This package carries that shape forward: LUTs are built once from
// control points and then indexed directly, never recomputed per pixel.
package curvelut

import (
	"math"
	"sort"
)

// Size is the number of entries in a built LUT.
const Size = 256

// Point is a single control point in [0,1]^2.
type Point struct {
	X, Y float64
}

// Build samples the monotone cubic Hermite spline through points at Size
// evenly spaced abscissas and returns the resulting LUT, clamped to [0,1].
// With fewer than two points it returns the identity ramp i/(Size-1).
func Build(points []Point) [Size]float64 {
	var lut [Size]float64
	if len(points) < 2 {
		for i := range lut {
			lut[i] = float64(i) / float64(Size-1)
		}
		return lut
	}

	pts := make([]Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })

	n := len(pts)
	delta := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		dx := pts[i+1].X - pts[i].X
		if dx < 1e-6 {
			dx = 1e-6
		}
		delta[i] = (pts[i+1].Y - pts[i].Y) / dx
	}

	m := make([]float64, n)
	m[0] = delta[0]
	m[n-1] = delta[n-2]
	for i := 1; i < n-1; i++ {
		if delta[i-1]*delta[i] <= 0 {
			m[i] = 0
			continue
		}
		m[i] = (delta[i-1] + delta[i]) / 2
	}

	for i := 0; i < n-1; i++ {
		if math.Abs(delta[i]) < 1e-6 {
			m[i] = 0
			m[i+1] = 0
			continue
		}
		alpha := m[i] / delta[i]
		beta := m[i+1] / delta[i]
		if alpha*alpha+beta*beta > 9 {
			tau := 3 / math.Sqrt(alpha*alpha+beta*beta)
			m[i] *= tau
			m[i+1] *= tau
		}
	}

	seg := 0
	for i := 0; i < Size; i++ {
		x := float64(i) / float64(Size-1)
		for seg < n-2 && x > pts[seg+1].X {
			seg++
		}
		lut[i] = clamp01(hermite(pts[seg], pts[seg+1], m[seg], m[seg+1], x))
	}
	return lut
}

// hermite evaluates the cubic Hermite segment between p0 and p1 (with
// tangents m0, m1) at abscissa x.
func hermite(p0, p1 Point, m0, m1, x float64) float64 {
	dx := p1.X - p0.X
	if dx < 1e-6 {
		dx = 1e-6
	}
	t := (x - p0.X) / dx
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*p0.Y + h10*dx*m0 + h01*p1.Y + h11*dx*m1
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
