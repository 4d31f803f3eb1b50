package keyframe

import (
	"math"
	"testing"

	"github.com/phanxgames/willow-compositor/model"
)

const epsilon = 1e-6

func TestValueAtEmpty(t *testing.T) {
	if v := ValueAt(nil, 10); v != nil {
		t.Errorf("ValueAt(nil, 10) = %v, want nil", v)
	}
}

func TestValueAtBeforeFirst(t *testing.T) {
	kfs := []model.Keyframe{{Frame: 10, Value: 1.0}, {Frame: 20, Value: 2.0}}
	if v := ValueAt(kfs, 0); v.(float64) != 1.0 {
		t.Errorf("ValueAt before first = %v, want 1.0", v)
	}
}

func TestValueAtAfterLast(t *testing.T) {
	kfs := []model.Keyframe{{Frame: 10, Value: 1.0}, {Frame: 20, Value: 2.0}}
	if v := ValueAt(kfs, 100); v.(float64) != 2.0 {
		t.Errorf("ValueAt after last = %v, want 2.0", v)
	}
}

func TestValueAtLinearMidpoint(t *testing.T) {
	kfs := []model.Keyframe{
		{Frame: 0, Value: 0.0},
		{Frame: 10, Value: 10.0, Easing: model.Linear},
	}
	v := ValueAt(kfs, 5).(float64)
	if math.Abs(v-5.0) > epsilon {
		t.Errorf("midpoint = %v, want 5.0", v)
	}
}

func TestValueAtEaseIn(t *testing.T) {
	kfs := []model.Keyframe{
		{Frame: 0, Value: 0.0},
		{Frame: 10, Value: 1.0, Easing: model.EasingKind{Kind: model.EasingEaseIn}},
	}
	v := ValueAt(kfs, 5).(float64) // t=0.5, t^2=0.25
	if math.Abs(v-0.25) > epsilon {
		t.Errorf("ease-in midpoint = %v, want 0.25", v)
	}
}

func TestValueAtEaseOut(t *testing.T) {
	kfs := []model.Keyframe{
		{Frame: 0, Value: 0.0},
		{Frame: 10, Value: 1.0, Easing: model.EasingKind{Kind: model.EasingEaseOut}},
	}
	v := ValueAt(kfs, 5).(float64) // t=0.5, 1-(1-t)^2 = 0.75
	if math.Abs(v-0.75) > epsilon {
		t.Errorf("ease-out midpoint = %v, want 0.75", v)
	}
}

func TestValueAtHold(t *testing.T) {
	kfs := []model.Keyframe{
		{Frame: 0, Value: 1.0},
		{Frame: 10, Value: 9.0, Easing: model.Hold()},
	}
	v := ValueAt(kfs, 5).(float64)
	if v != 1.0 {
		t.Errorf("hold midpoint = %v, want 1.0 (lower keyframe)", v)
	}
}

func TestValueAtBezierPathLerp(t *testing.T) {
	a := model.BezierPath{Points: []model.BezierPathPoint{{X: 0, Y: 0}}}
	b := model.BezierPath{Points: []model.BezierPathPoint{{X: 10, Y: 10}}}
	kfs := []model.Keyframe{
		{Frame: 0, Value: a},
		{Frame: 10, Value: b, Easing: model.Linear},
	}
	v := ValueAt(kfs, 5).(model.BezierPath)
	if math.Abs(v.Points[0].X-5) > epsilon || math.Abs(v.Points[0].Y-5) > epsilon {
		t.Errorf("path midpoint = %+v, want (5,5)", v.Points[0])
	}
}

func TestValueAtSnapFallback(t *testing.T) {
	kfs := []model.Keyframe{
		{Frame: 0, Value: "a"},
		{Frame: 10, Value: "b", Easing: model.Linear},
	}
	if v := ValueAt(kfs, 3); v != "a" {
		t.Errorf("t<0.5 snap = %v, want a", v)
	}
	if v := ValueAt(kfs, 8); v != "b" {
		t.Errorf("t>=0.5 snap = %v, want b", v)
	}
}

func TestAddKeyframeInsertsSorted(t *testing.T) {
	var kfs []model.Keyframe
	kfs = AddKeyframe(kfs, 20, 2.0, model.Linear)
	kfs = AddKeyframe(kfs, 0, 0.0, model.Linear)
	kfs = AddKeyframe(kfs, 10, 1.0, model.Linear)
	want := []int{0, 10, 20}
	for i, f := range want {
		if kfs[i].Frame != f {
			t.Errorf("kfs[%d].Frame = %d, want %d", i, kfs[i].Frame, f)
		}
	}
}

func TestAddKeyframeReplacesExisting(t *testing.T) {
	kfs := []model.Keyframe{{Frame: 10, Value: 1.0}}
	kfs = AddKeyframe(kfs, 10, 99.0, model.Linear)
	if len(kfs) != 1 || kfs[0].Value.(float64) != 99.0 {
		t.Errorf("kfs = %+v, want single replaced keyframe", kfs)
	}
}

func TestRemoveKeyframe(t *testing.T) {
	kfs := []model.Keyframe{{Frame: 0, Value: 0.0}, {Frame: 10, Value: 1.0}}
	kfs = RemoveKeyframe(kfs, 0)
	if len(kfs) != 1 || kfs[0].Frame != 10 {
		t.Errorf("kfs = %+v, want only frame 10 left", kfs)
	}
}

func TestResolveParamsFastPath(t *testing.T) {
	fx := model.NewEffectInstance("fx1", model.EffectOpacity)
	fx.Params["opacity"] = 0.5
	resolved := ResolveParams(fx, 5)
	if &resolved == nil {
		t.Fatal("unreachable")
	}
	// Fast path returns the same map (no animated params).
	resolved["opacity"] = 0.9
	if fx.Params["opacity"] != 0.9 {
		t.Error("expected fast path to return fx.Params by reference")
	}
}

func TestResolveParamsAnimated(t *testing.T) {
	fx := model.NewEffectInstance("fx1", model.EffectOpacity)
	fx.Params["opacity"] = 0.5
	fx.Keyframes["opacity"] = []model.Keyframe{
		{Frame: 0, Value: 0.0},
		{Frame: 10, Value: 1.0, Easing: model.Linear},
	}
	resolved := ResolveParams(fx, 5)
	if math.Abs(resolved["opacity"].(float64)-0.5) > epsilon {
		t.Errorf("resolved opacity = %v, want 0.5", resolved["opacity"])
	}
	// Must not mutate the instance's own params map.
	if fx.Params["opacity"] != 0.5 {
		t.Error("ResolveParams mutated fx.Params")
	}
}

func TestBezierEasingEndpoints(t *testing.T) {
	h := model.BezierHandle{X1: 0.25, Y1: 0.1, X2: 0.25, Y2: 1}
	if v := evalBezierEasing(h, 0); math.Abs(v) > 1e-3 {
		t.Errorf("bezier at 0 = %v, want ~0", v)
	}
	if v := evalBezierEasing(h, 1); math.Abs(v-1) > 1e-3 {
		t.Errorf("bezier at 1 = %v, want ~1", v)
	}
}
