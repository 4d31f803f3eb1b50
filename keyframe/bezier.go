package keyframe

import "github.com/phanxgames/willow-compositor/model"

// sampleCurve evaluates a single cubic-bezier axis (the CSS-style
// cubic-bezier(0,0,1,1)-normalized form) with control coordinates p1, p2 at
// parameter t.
func sampleCurve(p1, p2, t float64) float64 {
	// Bezier basis for endpoints fixed at 0 and 1:
	//   B(t) = 3*(1-t)^2*t*p1 + 3*(1-t)*t^2*p2 + t^3
	c := 3 * p1
	b := 3*(p2-p1) - c
	a := 1 - c - b
	return ((a*t+b)*t + c) * t
}

// evalBezierEasing maps input x in [0,1] (the horizontal coordinate) to the
// bezier parameter via 20 binary-search iterations on sampleCurve(x1,x2,·),
// then evaluates sampleCurve(y1,y2,·) at that parameter.
func evalBezierEasing(h model.BezierHandle, x float64) float64 {
	lo, hi := 0.0, 1.0
	var mid float64
	for i := 0; i < 20; i++ {
		mid = (lo + hi) / 2
		if sampleCurve(h.X1, h.X2, mid) < x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return sampleCurve(h.Y1, h.Y2, mid)
}
