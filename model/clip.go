package model

// Rect is an axis-aligned rectangle in pixels, origin at top-left, Y down.
// Grounded on the teacher's willow.Rect (willow.go); reused verbatim since a
// clip's sourceRect needs the exact same shape as a sprite's bounds.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle,
// edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Clip is the core-relevant projection of a timeline clip: enough state to
// drive the effect pipeline and roto matte engine. Everything else (track
// membership, audio routing, waveform cache, ...) belongs to the host
// timeline, which owns the Clip's lifecycle (spec §3 Lifecycle: "Clips are
// created by the host timeline and destroyed by it; the core only reads
// them").
type Clip struct {
	ID             string
	SourceRect     Rect
	StartFrame     int
	SourceInFrame  int
	SourceOutFrame int
	Speed          float64
	Effects        []*EffectInstance
	Masks          []*Mask
	LinkedClipID   string // empty if unlinked; spec §9 "model as two IDs", never a raw pointer cycle
}

// Validate checks the clip invariants from spec §3: sourceInFrame <=
// sourceOutFrame, speed > 0.
func (c *Clip) Validate() bool {
	return c.SourceInFrame <= c.SourceOutFrame && c.Speed > 0
}

// EffectByID returns the effect instance with the given id, or nil.
func (c *Clip) EffectByID(id string) *EffectInstance {
	for _, fx := range c.Effects {
		if fx.ID == id {
			return fx
		}
	}
	return nil
}

// IntrinsicEffect returns the clip's always-present effect instance for the
// given intrinsic effect id, lazily creating it if the clip doesn't have one
// yet (spec §3: "EffectInstances are created ... lazily for intrinsic
// effects that already exist").
func (c *Clip) IntrinsicEffect(id EffectId) *EffectInstance {
	if !IsIntrinsic(id) {
		return nil
	}
	for _, fx := range c.Effects {
		if fx.EffectId == id {
			return fx
		}
	}
	fx := NewEffectInstance(string(id), id)
	c.Effects = append(c.Effects, fx)
	return fx
}
