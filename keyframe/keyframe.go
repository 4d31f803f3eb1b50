// Package keyframe evaluates parameter timelines: given a sorted keyframe
// array and a query frame, it returns the interpolated value; given an
// EffectInstance, it returns a resolved view of that effect's parameters at
// a frame.
//
// The mechanism is grounded on the teacher's TweenGroup (animation.go): a
// small state holder advanced by querying it at a point in time, using
// github.com/tanema/gween/ease's Penner formulas for the easing math. Unlike
// TweenGroup, which owns mutable *float64 targets and is advanced by dt, a
// timeline here is immutable keyframe data queried at an arbitrary frame —
// there is no "current time" to own, so the package exposes pure functions
// instead of a ticking struct.
package keyframe

import (
	"sort"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/willow-compositor/model"
)

// ValueAt returns the interpolated value of kfs at frame, or nil if kfs is
// empty. Matches spec: clamps to the first/last keyframe's value outside the
// timeline's range, otherwise brackets and lerps with the upper keyframe's
// easing.
func ValueAt(kfs []model.Keyframe, frame int) model.Value {
	if len(kfs) == 0 {
		return nil
	}
	if frame <= kfs[0].Frame {
		return kfs[0].Value
	}
	last := kfs[len(kfs)-1]
	if frame >= last.Frame {
		return last.Value
	}
	for i := 0; i < len(kfs)-1; i++ {
		lo, hi := kfs[i], kfs[i+1]
		if frame >= lo.Frame && frame <= hi.Frame {
			span := float64(hi.Frame - lo.Frame)
			t := float64(frame-lo.Frame) / span
			t = applyEasing(hi.Easing, t)
			return lerpValue(lo.Value, hi.Value, t)
		}
	}
	// unreachable given the sorted-on-insert invariant, but fall back to
	// the nearest endpoint rather than panic.
	return last.Value
}

// AddKeyframe inserts value at frame, replacing any existing keyframe at
// that exact frame, and keeps kfs sorted by frame.
func AddKeyframe(kfs []model.Keyframe, frame int, value model.Value, easing model.EasingKind) []model.Keyframe {
	for i := range kfs {
		if kfs[i].Frame == frame {
			kfs[i].Value = value
			kfs[i].Easing = easing
			return kfs
		}
	}
	kfs = append(kfs, model.Keyframe{Frame: frame, Value: value, Easing: easing})
	sort.Slice(kfs, func(i, j int) bool { return kfs[i].Frame < kfs[j].Frame })
	return kfs
}

// RemoveKeyframe deletes the keyframe at frame, if present.
func RemoveKeyframe(kfs []model.Keyframe, frame int) []model.Keyframe {
	for i := range kfs {
		if kfs[i].Frame == frame {
			return append(kfs[:i], kfs[i+1:]...)
		}
	}
	return kfs
}

// ResolveParams returns fx's parameters as seen at frame. The fast path
// (no animated parameter) returns fx.Params directly with no copy; otherwise
// it returns a shallow copy with each animated parameter overridden by
// ValueAt.
func ResolveParams(fx *model.EffectInstance, frame int) map[model.ParamId]model.Value {
	if !fx.IsAnimated() {
		return fx.Params
	}
	resolved := make(map[model.ParamId]model.Value, len(fx.Params))
	for k, v := range fx.Params {
		resolved[k] = v
	}
	for paramID, kfs := range fx.Keyframes {
		if len(kfs) == 0 {
			continue
		}
		resolved[paramID] = ValueAt(kfs, frame)
	}
	return resolved
}

// applyEasing reparametrizes t in [0,1] according to kind.
func applyEasing(kind model.EasingKind, t float64) float64 {
	switch kind.Kind {
	case model.EasingLinear:
		return float64(ease.Linear(float32(t), 0, 1, 1))
	case model.EasingEaseIn:
		return float64(ease.InQuad(float32(t), 0, 1, 1))
	case model.EasingEaseOut:
		return float64(ease.OutQuad(float32(t), 0, 1, 1))
	case model.EasingEaseInOut:
		return float64(ease.InOutQuad(float32(t), 0, 1, 1))
	case model.EasingHold:
		return 0
	case model.EasingBezier:
		return evalBezierEasing(kind.Bezier, t)
	default:
		return t
	}
}

// lerpValue implements the spec's three lerp rules: numeric lerp, bezier
// path component-wise lerp when both sides match shape, otherwise a hard
// snap at t < 0.5.
func lerpValue(a, b model.Value, t float64) model.Value {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			return af + (bf-af)*t
		}
	}
	if ap, aok := a.(model.BezierPath); aok {
		if bp, bok := b.(model.BezierPath); bok && len(ap.Points) == len(bp.Points) {
			return lerpBezierPath(ap, bp, t)
		}
	}
	if t < 0.5 {
		return a
	}
	return b
}

func lerpBezierPath(a, b model.BezierPath, t float64) model.BezierPath {
	out := model.BezierPath{Closed: a.Closed, Points: make([]model.BezierPathPoint, len(a.Points))}
	for i := range a.Points {
		pa, pb := a.Points[i], b.Points[i]
		out.Points[i] = model.BezierPathPoint{
			X:    pa.X + (pb.X-pa.X)*t,
			Y:    pa.Y + (pb.Y-pa.Y)*t,
			InX:  pa.InX + (pb.InX-pa.InX)*t,
			InY:  pa.InY + (pb.InY-pa.InY)*t,
			OutX: pa.OutX + (pb.OutX-pa.OutX)*t,
			OutY: pa.OutY + (pb.OutY-pa.OutY)*t,
		}
	}
	return out
}

func toFloat(v model.Value) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
