package pipeline

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"

	"github.com/phanxgames/willow-compositor/keyframe"
	"github.com/phanxgames/willow-compositor/mathutil"
	"github.com/phanxgames/willow-compositor/model"
	"github.com/phanxgames/willow-compositor/shaderlib"
)

// CurveType selects the input log/gamma curve to linearize before the
// effect chain runs (spec §4.3's input-linearize row).
type CurveType string

const (
	CurveSRGB  CurveType = "srgb"
	CurveSLog3 CurveType = "slog3"
	CurveCLog  CurveType = "clog"
	CurveCLog3 CurveType = "clog3"
	CurveVLog  CurveType = "vlog"
	CurveLogC3 CurveType = "logc3"
	CurveLogC4 CurveType = "logc4"
	CurveNLog  CurveType = "nlog"
)

var linearizePassByCurve = map[CurveType]shaderlib.PassName{
	CurveSRGB:  shaderlib.PassLinearizeSRGB,
	CurveSLog3: shaderlib.PassLinearizeSLog3,
	CurveCLog:  shaderlib.PassLinearizeCLog,
	CurveCLog3: shaderlib.PassLinearizeCLog3,
	CurveVLog:  shaderlib.PassLinearizeVLog,
	CurveLogC3: shaderlib.PassLinearizeLogC3,
	CurveLogC4: shaderlib.PassLinearizeLogC4,
	CurveNLog:  shaderlib.PassLinearizeNLog,
}

// ToneMap selects the tone-mapping operator applied when delinearizing back
// from linear-light compositing.
type ToneMap string

const (
	ToneMapReinhard ToneMap = "reinhard"
	ToneMapACES     ToneMap = "aces"
)

// FrameSettings carries the per-frame, project-level knobs the pipeline
// needs that aren't part of any single effect: canvas size, color
// management mode, and the clip's declared input curve.
type FrameSettings struct {
	CanvasWidth, CanvasHeight int
	InputCurve                CurveType
	LinearCompositing         bool
	ToneMapOperator           ToneMap
}

// TextureRegistry resolves stable string-keyed texture uniforms (curve
// LUTs) to *ebiten.Image. The pipeline never owns LUT textures directly —
// callers upload them once and register under the names effectConfig's
// uniforms reference (e.g. "lumetri-curve", "lumetri-hsl-curve").
type TextureRegistry map[string]*ebiten.Image

// Pipeline holds the ebiten-backed state shared across frames: the render
// target pool and the compiled-shader cache. One Pipeline is meant to be
// reused for the life of a program, not recreated per frame.
type Pipeline struct {
	pool    RenderTargetPool
	shaders *ShaderCache
}

// New returns a Pipeline with empty caches.
func New() *Pipeline {
	return &Pipeline{shaders: NewShaderCache()}
}

// Run executes the full per-frame state machine: selectPasses →
// schedulePassChain → bindUniformsAndRun → readback/handoff, followed by the
// final composite pass (motion, crop, opacity). It returns a newly allocated
// canvas-size image that is not taken from the pool; pooled intermediates
// are released before Run returns.
func (p *Pipeline) Run(source *ebiten.Image, clip *model.Clip, frame int, settings FrameSettings, textures TextureRegistry) *ebiten.Image {
	current := source
	owned := false
	w, h := settings.CanvasWidth, settings.CanvasHeight

	if bounds := source.Bounds(); bounds.Dx() != w || bounds.Dy() != h {
		resized := p.pool.Acquire(w, h)
		resampleToCanvas(resized, source, w, h)
		current = resized
		owned = true
	}

	if settings.InputCurve != "" && settings.InputCurve != CurveSRGB {
		if pass, ok := linearizePassByCurve[settings.InputCurve]; ok {
			if next, ran := p.runPass(current, w, h, PassInvocation{Name: pass}, textures); ran {
				current = p.swap(current, next, owned)
				owned = true
			}
		}
	}

	for _, fx := range clip.Effects {
		if !fx.Enabled {
			continue
		}
		params := keyframe.ResolveParams(fx, frame)
		for _, inv := range EffectConfig(fx, params) {
			if next, ran := p.runPass(current, w, h, inv, textures); ran {
				current = p.swap(current, next, owned)
				owned = true
			}
		}
	}

	if settings.LinearCompositing {
		tonemapPass := shaderlib.PassToneMapReinhard
		if settings.ToneMapOperator == ToneMapACES {
			tonemapPass = shaderlib.PassToneMapACES
		}
		if next, ran := p.runPass(current, w, h, PassInvocation{Name: tonemapPass}, textures); ran {
			current = p.swap(current, next, owned)
			owned = true
		}
	}

	result := p.composite(current, w, h, clip, settings)
	if owned {
		p.pool.Release(current)
	}
	return result
}

// runPass compiles (if needed) and runs a single shader pass at the given
// logical width/height (not src.Bounds(), which may be padded to the next
// power of two by the render target pool), returning the destination image
// and whether the pass actually ran. A pass whose shader failed to compile
// is skipped — the source image passes through unchanged, per the
// pipeline's failure model.
func (p *Pipeline) runPass(src *ebiten.Image, w, h int, inv PassInvocation, textures TextureRegistry) (*ebiten.Image, bool) {
	shader, ok := p.shaders.Get(inv.Name)
	if !ok {
		return src, false
	}
	dst := p.pool.Acquire(w, h)

	var op ebiten.DrawRectShaderOptions
	op.Images[0] = src
	if tex, ok := textures["lumetri-curve"]; ok && inv.Name == shaderlib.PassLumetriCurves {
		op.Images[1] = tex
	}
	if tex, ok := textures["lumetri-hsl-curve"]; ok && inv.Name == shaderlib.PassLumetriCurves {
		op.Images[2] = tex
	}
	op.Uniforms = inv.Uniforms
	dst.DrawRectShader(w, h, shader, &op)
	return dst, true
}

// resampleToCanvas resizes src into dst's top-left w x h region using a
// Catmull-Rom resampler. This is the only resampling point anywhere in the
// pipeline: every later pass runs at fixed canvas resolution.
func resampleToCanvas(dst *ebiten.Image, src *ebiten.Image, w, h int) {
	dr := image.Rect(0, 0, w, h)
	draw.CatmullRom.Scale(dst, dr, src, src.Bounds(), draw.Src, nil)
}

// swap releases prev if the pipeline already owns it (i.e. it isn't the
// caller's original source image) and returns next.
func (p *Pipeline) swap(prev, next *ebiten.Image, prevOwned bool) *ebiten.Image {
	if prevOwned {
		p.pool.Release(prev)
	}
	return next
}

// composite applies intrinsic motion, crop, and opacity in a single pass,
// producing the final canvas-resolution image. w and h are the logical
// dimensions of src, which callers must track explicitly rather than read
// from src.Bounds() — the render target pool pads pooled images up to the
// next power of two, so a pooled src's Bounds() generally exceeds its
// logical size.
func (p *Pipeline) composite(src *ebiten.Image, w, h int, clip *model.Clip, settings FrameSettings) *ebiten.Image {
	shader, ok := p.shaders.Get(shaderlib.PassComposite)
	dst := ebiten.NewImage(settings.CanvasWidth, settings.CanvasHeight)
	if !ok {
		var op ebiten.DrawImageOptions
		dst.DrawImage(src, &op)
		return dst
	}

	motionFx := clip.IntrinsicEffect(model.EffectMotion)
	opacityFx := clip.IntrinsicEffect(model.EffectOpacity)

	posX := paramF64(motionFx.Params, "positionX", 0)
	posY := paramF64(motionFx.Params, "positionY", 0)
	scaleX := paramF64(motionFx.Params, "scaleX", 1)
	scaleY := paramF64(motionFx.Params, "scaleY", 1)
	rotation := paramF64(motionFx.Params, "rotation", 0)
	anchorX := paramF64(motionFx.Params, "anchorX", 0.5)
	anchorY := paramF64(motionFx.Params, "anchorY", 0.5)

	fw, fh := float64(w), float64(h)

	forward := mathutil.ComposeMotion(posX, posY, scaleX, scaleY, rotation, anchorX, anchorY, fw, fh)
	inverse := forward.Invert()

	opacity := paramF64(opacityFx.Params, "opacity", 100) / 100

	var op ebiten.DrawRectShaderOptions
	op.Images[0] = src
	op.Uniforms = map[string]any{
		"InverseMotion": []float32{
			float32(inverse[0]), float32(inverse[2]), float32(inverse[4]),
			float32(inverse[1]), float32(inverse[3]), float32(inverse[5]),
			0, 0, 1,
		},
		"CropLeft":   float32(paramF64(motionFx.Params, "cropLeft", 0)),
		"CropRight":  float32(paramF64(motionFx.Params, "cropRight", 0)),
		"CropTop":    float32(paramF64(motionFx.Params, "cropTop", 0)),
		"CropBottom": float32(paramF64(motionFx.Params, "cropBottom", 0)),
		"Opacity":    float32(opacity),
		"SourceSize": []float32{float32(fw), float32(fh)},
	}
	dst.DrawRectShader(settings.CanvasWidth, settings.CanvasHeight, shader, &op)
	return dst
}

// Release returns a pooled image obtained indirectly through Run (e.g. an
// intermediate the caller chose to keep) back to the pool.
func (p *Pipeline) Release(img *ebiten.Image) {
	p.pool.Release(img)
}
