package model

// MaskMode selects how a mask's shape combines with the clip's alpha.
type MaskMode uint8

const (
	MaskAdd MaskMode = iota
	MaskSubtract
	MaskIntersect
	MaskDifference
)

// MaskParams are the scalar shaping knobs applied after the raw path
// coverage is rasterized: feather blurs the edge, opacity scales the
// resulting coverage, expansion grows or shrinks the shape before feathering.
type MaskParams struct {
	Feather   float64
	Opacity   float64
	Expansion float64
}

// Mask is a single vector mask attached to a clip: a path (optionally
// animated via pathKeyframes) plus the combine mode and shaping params.
type Mask struct {
	ID            string
	Mode          MaskMode
	Inverted      bool
	Enabled       bool
	Params        MaskParams
	Keyframes     map[ParamId][]Keyframe // keyframes for feather/opacity/expansion
	Path          BezierPath
	PathKeyframes []Keyframe // Value is a BezierPath at each keyframe
}

// NewMask returns an enabled, additive mask with identity params.
func NewMask(id string) *Mask {
	return &Mask{
		ID:        id,
		Mode:      MaskAdd,
		Enabled:   true,
		Params:    MaskParams{Feather: 0, Opacity: 1, Expansion: 0},
		Keyframes: make(map[ParamId][]Keyframe),
	}
}

// IsAnimated reports whether the mask's path or any of its params carry
// keyframes.
func (m *Mask) IsAnimated() bool {
	if len(m.PathKeyframes) > 0 {
		return true
	}
	for _, kfs := range m.Keyframes {
		if len(kfs) > 0 {
			return true
		}
	}
	return false
}
