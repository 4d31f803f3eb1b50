package compositor

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/willow-compositor/mathutil"
	"github.com/phanxgames/willow-compositor/model"
)

// Frame is a persistent, caller-owned offscreen canvas holding one
// composited result. Unlike the effect pipeline's pooled render targets
// (pipeline.RenderTargetPool), a Frame is never recycled — it is handed to
// the host and lives until the host calls Dispose.
//
// Adapted from the teacher's RenderTexture (rendertexture.go): the same
// persistent-vs-pooled distinction, trimmed to the draw operations a
// composited video frame actually needs and dropped of its sprite-atlas
// machinery (TextureRegion paging, the magenta placeholder) which has no
// equivalent in this domain.
type Frame struct {
	image *ebiten.Image
	w, h  int
}

// NewFrame allocates a persistent canvas of the given size.
func NewFrame(w, h int) *Frame {
	return &Frame{image: ebiten.NewImage(w, h), w: w, h: h}
}

// Image returns the underlying *ebiten.Image for direct submission to a
// host's display pipeline or encoder.
func (f *Frame) Image() *ebiten.Image {
	return f.image
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.w }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.h }

// Clear fills the frame with transparent black, used for the "missing
// frame bitmap" fallback (spec §7, category 3).
func (f *Frame) Clear() {
	f.image.Clear()
}

// Fill fills the entire frame with c, premultiplying alpha as Ebitengine
// expects.
func (f *Frame) Fill(c model.Color) {
	f.image.Fill(premultiplied{c})
}

// DrawImage draws src onto the frame using the given options.
func (f *Frame) DrawImage(src *ebiten.Image, op *ebiten.DrawImageOptions) {
	f.image.DrawImage(src, op)
}

// Resize deallocates the current image and allocates a new one at the
// given dimensions, e.g. when the project canvas size changes.
func (f *Frame) Resize(width, height int) {
	if f.image != nil {
		f.image.Deallocate()
	}
	f.image = ebiten.NewImage(width, height)
	f.w, f.h = width, height
}

// Dispose releases the underlying GPU image. The Frame must not be used
// after calling Dispose.
func (f *Frame) Dispose() {
	if f.image != nil {
		f.image.Deallocate()
		f.image = nil
	}
}

// premultiplied adapts a non-premultiplied model.Color to color.Color for
// ebiten.Image.Fill, which expects premultiplied alpha.
type premultiplied struct {
	c model.Color
}

func (p premultiplied) RGBA() (r, g, b, a uint32) {
	r = uint32(mathutil.Clamp01(p.c.R*p.c.A) * 0xffff)
	g = uint32(mathutil.Clamp01(p.c.G*p.c.A) * 0xffff)
	b = uint32(mathutil.Clamp01(p.c.B*p.c.A) * 0xffff)
	a = uint32(mathutil.Clamp01(p.c.A) * 0xffff)
	return
}
