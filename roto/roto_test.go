package roto

import (
	"testing"

	"github.com/phanxgames/willow-compositor/model"
)

func flatSource(w, h int, r, g, b float64) *Source {
	src := &Source{Width: w, Height: h, RGB: make([][3]float64, w*h)}
	for i := range src.RGB {
		src.RGB[i] = [3]float64{r, g, b}
	}
	return src
}

func TestComputeMatteNoStrokesNoPriorReturnsEmpty(t *testing.T) {
	src := flatSource(8, 8, 0.5, 0.5, 0.5)
	m := ComputeMatte(src, nil, nil, nil, Params{})
	for i, a := range m.Alpha {
		if a != 0 {
			t.Fatalf("expected empty matte, got alpha %v at %d", a, i)
		}
	}
}

func TestComputeMatteBasicTrimapSeparatesForegroundBackground(t *testing.T) {
	// Left half is bright (foreground), right half is dark (background).
	w, h := 16, 16
	src := &Source{Width: w, Height: h, RGB: make([][3]float64, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				src.RGB[y*w+x] = [3]float64{1, 1, 1}
			} else {
				src.RGB[y*w+x] = [3]float64{0, 0, 0}
			}
		}
	}
	fg := []model.RotoStroke{{
		Type:   model.StrokeForeground,
		Points: []model.StrokePoint{{X: 0.15, Y: 0.5}},
		Radius: 0.05,
	}}
	bg := []model.RotoStroke{{
		Type:   model.StrokeBackground,
		Points: []model.StrokePoint{{X: 0.85, Y: 0.5}},
		Radius: 0.05,
	}}
	m := ComputeMatte(src, fg, bg, nil, Params{RefineRadius: 4})

	fgAlpha := m.at(2, h/2)
	bgAlpha := m.at(w-3, h/2)
	if fgAlpha < 0.5 {
		t.Errorf("expected foreground region alpha >= 0.5, got %v", fgAlpha)
	}
	if bgAlpha > 0.5 {
		t.Errorf("expected background region alpha <= 0.5, got %v", bgAlpha)
	}
}

func TestApplyChokeAlwaysInRange(t *testing.T) {
	m := NewMatte(4, 4)
	for i := range m.Alpha {
		m.Alpha[i] = float64(i%5) / 4
	}
	for _, choke := range []float64{-100, -50, 0, 50, 100} {
		out := applyChoke(m, choke)
		for _, v := range out.Alpha {
			if v < 0 || v > 1 {
				t.Fatalf("choke=%v produced out-of-range alpha %v", choke, v)
			}
		}
	}
}

func TestGuidedFilterRadiusZeroIsIdentity(t *testing.T) {
	alpha := NewMatte(4, 4)
	guide := NewMatte(4, 4)
	for i := range alpha.Alpha {
		alpha.Alpha[i] = float64(i) / 16
		guide.Alpha[i] = float64(16-i) / 16
	}
	out := GuidedFilter(alpha, guide, 0, 0.01)
	for i := range alpha.Alpha {
		if out.Alpha[i] != alpha.Alpha[i] {
			t.Fatalf("radius=0 should be identity, got %v want %v at %d", out.Alpha[i], alpha.Alpha[i], i)
		}
	}
}

func TestGuidedFilterLargeEpsConvergesToLocalMean(t *testing.T) {
	w, h := 6, 6
	alpha := NewMatte(w, h)
	guide := NewMatte(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				alpha.set(x, y, 1)
			}
			guide.set(x, y, float64(x)/float64(w))
		}
	}
	out := GuidedFilter(alpha, guide, 2, 1e9)

	cx, cy := 1, 1
	window := 0.0
	count := 0
	radius := 2
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x, y := cx+dx, cy+dy
			if x < 0 || x >= w || y < 0 || y >= h {
				continue
			}
			window += alpha.at(x, y)
			count++
		}
	}
	want := window / float64(count)
	got := out.at(cx, cy)
	if diff := got - want; diff > 0.05 || diff < -0.05 {
		t.Errorf("expected convergence to local mean %.4f, got %.4f", want, got)
	}
}

func TestGuidedFilterPreservesEdge(t *testing.T) {
	// A hard edge in both alpha and guide should stay sharp after filtering
	// with a small eps, unlike a plain box blur which would smear it.
	w, h := 10, 10
	alpha := NewMatte(w, h)
	guide := NewMatte(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := 0.0
			if x >= w/2 {
				v = 1
			}
			alpha.set(x, y, v)
			guide.set(x, y, v)
		}
	}
	out := GuidedFilter(alpha, guide, 3, 1e-6)
	left := out.at(w/2-2, h/2)
	right := out.at(w/2+1, h/2)
	if left > 0.1 {
		t.Errorf("expected edge preserved on left side, got %v", left)
	}
	if right < 0.9 {
		t.Errorf("expected edge preserved on right side, got %v", right)
	}
}
