// Package transition computes the active timeline range of a transition and
// blends two composited frames according to its type and progress.
//
// Grounded on the teacher's Affine2D/compositing idiom in mathutil and the
// roto package's flat-buffer, function-over-slices style: a transition
// operates on plain []model.Color frame buffers rather than introducing its
// own image type, and reuses mathutil.Clamp01/Lerp for blending math.
package transition

import "github.com/phanxgames/willow-compositor/mathutil"

// Alignment anchors a transition's duration relative to an edit point.
type Alignment string

const (
	AlignCenter Alignment = "center"
	AlignStart  Alignment = "start"
	AlignEnd    Alignment = "end"
)

// Type selects the blend function applied between the outgoing and incoming
// frames.
type Type string

const (
	TypeCrossDissolve Type = "cross-dissolve"
	TypeDipToColor    Type = "dip-to-color"
	TypeWipeLeft      Type = "wipe-left"
	TypeWipeRight     Type = "wipe-right"
	TypeWipeUp        Type = "wipe-up"
	TypeWipeDown      Type = "wipe-down"
	TypeSlide         Type = "slide"
	TypePush          Type = "push"
)

// Color is a non-premultiplied RGBA color with components in [0, 1],
// matching model.Color's representation for pipeline interop.
type Color struct {
	R, G, B, A float64
}

// Transition describes one edit-point transition between an outgoing clip A
// and an incoming clip B.
type Transition struct {
	Type      Type
	Duration  int // in frames
	Alignment Alignment
	Offset    int
	DipColor  Color // used only by TypeDipToColor
	OutClipID string
	InClipID  string
}

// ActiveRange computes the transition's timeline range [start, end) around
// editPoint, per spec §4.5. An invalid (empty or inverted) range collapses
// to a 1-frame placeholder at editPoint.
func ActiveRange(editPoint, duration int, alignment Alignment, offset int) (start, end int) {
	switch alignment {
	case AlignStart:
		start, end = editPoint, editPoint+duration
	case AlignEnd:
		start, end = editPoint-duration, editPoint
	default: // AlignCenter
		start, end = editPoint-duration/2, editPoint-duration/2+duration
	}
	start += offset
	end += offset
	if end <= start {
		return editPoint, editPoint + 1
	}
	return start, end
}

// Progress returns the transition progress at frame, clamped to [0, 1].
func Progress(frame, start, end int) float64 {
	if end <= start {
		return 0
	}
	return mathutil.Clamp01(float64(frame-start) / float64(end-start))
}

// Blend combines outFrame (clip A) and inFrame (clip B), both canvasW x
// canvasH row-major buffers, according to t.Type and progress p.
func Blend(t Transition, outFrame, inFrame []Color, canvasW, canvasH int, p float64) []Color {
	switch t.Type {
	case TypeDipToColor:
		return blendDipToColor(outFrame, inFrame, t.DipColor, p)
	case TypeWipeLeft:
		return blendWipe(outFrame, inFrame, canvasW, canvasH, p, wipeLeft)
	case TypeWipeRight:
		return blendWipe(outFrame, inFrame, canvasW, canvasH, p, wipeRight)
	case TypeWipeUp:
		return blendWipe(outFrame, inFrame, canvasW, canvasH, p, wipeUp)
	case TypeWipeDown:
		return blendWipe(outFrame, inFrame, canvasW, canvasH, p, wipeDown)
	case TypeSlide:
		return blendSlide(outFrame, inFrame, canvasW, canvasH, p)
	case TypePush:
		return blendPush(outFrame, inFrame, canvasW, canvasH, p)
	default: // TypeCrossDissolve
		return blendCrossDissolve(outFrame, inFrame, p)
	}
}

func blendCrossDissolve(out, in []Color, p float64) []Color {
	result := make([]Color, len(out))
	for i := range out {
		result[i] = lerpColor(out[i], in[i], p)
	}
	return result
}

func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: mathutil.Lerp(a.R, b.R, t),
		G: mathutil.Lerp(a.G, b.G, t),
		B: mathutil.Lerp(a.B, b.B, t),
		A: mathutil.Lerp(a.A, b.A, t),
	}
}

// blendDipToColor fades the outgoing frame to a solid color over [0, 0.5],
// then fades from that color to the incoming frame over [0.5, 1].
func blendDipToColor(out, in []Color, dip Color, p float64) []Color {
	result := make([]Color, len(out))
	if p < 0.5 {
		t := p / 0.5
		for i := range out {
			result[i] = lerpColor(out[i], dip, t)
		}
	} else {
		t := (p - 0.5) / 0.5
		for i := range in {
			result[i] = lerpColor(dip, in[i], t)
		}
	}
	return result
}

type wipeTest func(x, y, w, h int, p float64) bool

func wipeLeft(x, y, w, h int, p float64) bool {
	return float64(x) < float64(w)*p
}

func wipeRight(x, y, w, h int, p float64) bool {
	return float64(x) >= float64(w)*(1-p)
}

func wipeUp(x, y, w, h int, p float64) bool {
	return float64(y) < float64(h)*p
}

func wipeDown(x, y, w, h int, p float64) bool {
	return float64(y) >= float64(h)*(1-p)
}

// blendWipe reveals the incoming frame through an axis-aligned clip rect
// that grows with progress.
func blendWipe(out, in []Color, w, h int, p float64, test wipeTest) []Color {
	result := make([]Color, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if test(x, y, w, h, p) {
				result[idx] = in[idx]
			} else {
				result[idx] = out[idx]
			}
		}
	}
	return result
}

// blendSlide moves the incoming frame in from the right while the outgoing
// frame stays put; pixels not yet covered by the incoming frame show the
// outgoing frame.
func blendSlide(out, in []Color, w, h int, p float64) []Color {
	result := make([]Color, w*h)
	shift := int(float64(w) * (1 - p))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			srcX := x - shift
			if srcX >= 0 {
				result[idx] = in[y*w+srcX]
			} else {
				result[idx] = out[idx]
			}
		}
	}
	return result
}

// blendPush moves both frames together: the outgoing frame slides left off
// canvas while the incoming frame slides in from the right to replace it.
func blendPush(out, in []Color, w, h int, p float64) []Color {
	result := make([]Color, w*h)
	shift := int(float64(w) * p)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			outSrcX := x + shift
			if outSrcX < w {
				result[idx] = out[y*w+outSrcX]
				continue
			}
			inSrcX := outSrcX - w
			result[idx] = in[y*w+inSrcX]
		}
	}
	return result
}
