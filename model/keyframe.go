package model

// EasingKind tags how the time parameter between two keyframes is
// reparametrized before the lerp. Bezier carries its own control points so
// the tag is self-contained — no side table to keep in sync.
type EasingKind struct {
	Kind   EasingTag
	Bezier BezierHandle // only meaningful when Kind == EasingBezier
}

// EasingTag is the discriminant for EasingKind.
type EasingTag uint8

const (
	EasingLinear EasingTag = iota
	EasingEaseIn
	EasingEaseOut
	EasingEaseInOut
	EasingHold
	EasingBezier
)

// BezierHandle is the (x1,y1,x2,y2) control-point pair for a cubic bezier
// easing curve, per spec §3's Keyframe.bezierCP.
type BezierHandle struct {
	X1, Y1, X2, Y2 float64
}

// Linear is the zero-value easing (EasingLinear), used as the default for
// keyframes that don't specify one.
var Linear = EasingKind{Kind: EasingLinear}

// Hold returns the "hold" easing (always emits the lower keyframe's value).
func Hold() EasingKind { return EasingKind{Kind: EasingHold} }

// Bezier returns a cubic-bezier easing with the given control points.
func Bezier(x1, y1, x2, y2 float64) EasingKind {
	return EasingKind{Kind: EasingBezier, Bezier: BezierHandle{x1, y1, x2, y2}}
}

// Value is the dynamic payload of a keyframe: a scalar, a BezierPath, or a
// uniform slice of either. Kept as `any` rather than a generic type
// parameter because the keyframe array's element type is only known at
// runtime (it comes from the host's per-parameter property bag — see §9
// Design Notes on dynamic parameter maps) and because valueAt's lerp rule
// ("otherwise: snap") requires runtime type inspection regardless.
type Value = any

// BezierPathPoint is one vertex of a bezier path parameter value, e.g. a
// mask or custom shape keyframe.
type BezierPathPoint struct {
	X, Y               float64
	InX, InY           float64
	OutX, OutY         float64
}

// BezierPath is a closed or open polyline of vertices with in/out handle
// offsets, used for mask and shape keyframes (spec §3: "a bezier-path").
type BezierPath struct {
	Closed bool
	Points []BezierPathPoint
}

// Keyframe is a single (frame, value, easing) tuple on a parameter timeline.
type Keyframe struct {
	Frame  int
	Value  Value
	Easing EasingKind
}
