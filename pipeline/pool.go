// Package pipeline applies an ordered list of enabled EffectInstances to a
// source image, producing a final image at canvas resolution. It owns the
// only ebiten-backed state in the module: compiled shaders, render target
// pooling, and uniform/texture binding.
//
// Grounded on the teacher's filter.go (applyFilters, the Filter interface)
// and rendertarget.go (renderTexturePool): ping-pong between two pooled
// render targets, one shader pass per step, power-of-two bucket reuse so
// Acquire/Release are zero-alloc after warmup.
package pipeline

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// RenderTargetPool manages reusable offscreen ebiten.Images keyed by
// power-of-two dimensions, exactly as the teacher's renderTexturePool does.
type RenderTargetPool struct {
	buckets map[uint64][]*ebiten.Image
}

func poolKey(w, h int) uint64 {
	return uint64(w)<<32 | uint64(h)
}

// Acquire returns a cleared offscreen image with at least (w, h) pixels.
// Dimensions are rounded up to the next power of two so a pipeline running
// at a fixed canvas size stabilizes into a handful of reused buffers.
func (p *RenderTargetPool) Acquire(w, h int) *ebiten.Image {
	pw, ph := nextPowerOfTwo(w), nextPowerOfTwo(h)
	key := poolKey(pw, ph)

	if p.buckets != nil {
		if stack := p.buckets[key]; len(stack) > 0 {
			img := stack[len(stack)-1]
			p.buckets[key] = stack[:len(stack)-1]
			img.Clear()
			return img
		}
	}
	return ebiten.NewImageWithOptions(
		image.Rect(0, 0, pw, ph),
		&ebiten.NewImageOptions{Unmanaged: true},
	)
}

// Release returns img to the pool for reuse on a later Acquire.
func (p *RenderTargetPool) Release(img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	key := poolKey(b.Dx(), b.Dy())
	if p.buckets == nil {
		p.buckets = make(map[uint64][]*ebiten.Image)
	}
	p.buckets[key] = append(p.buckets[key], img)
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << int(math.Ceil(math.Log2(float64(n))))
}
