package compositor

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/willow-compositor/colorspace"
	"github.com/phanxgames/willow-compositor/job"
	"github.com/phanxgames/willow-compositor/model"
	"github.com/phanxgames/willow-compositor/pipeline"
	"github.com/phanxgames/willow-compositor/roto"
	"github.com/phanxgames/willow-compositor/store"
)

// Core is the compositing engine's root object: one instance per project,
// owning the effect pipeline's GPU resources, the observable project
// settings, the background job manager, and a matte cache per roto-enabled
// clip.
type Core struct {
	Store  *store.Store
	Events *store.EventBus
	Jobs   *job.Manager

	pipeline *pipeline.Pipeline

	mu          sync.Mutex
	matteCaches map[string]*roto.Cache
}

// New constructs a Core with empty state and a fresh pipeline.
func New() *Core {
	return &Core{
		Store:       store.New(),
		Events:      store.NewEventBus(),
		Jobs:        job.NewManager(),
		pipeline:    pipeline.New(),
		matteCaches: make(map[string]*roto.Cache),
	}
}

// projectFrameSettings converts the store's project settings into the
// pipeline's FrameSettings, using the input curve supplied by the caller.
func (c *Core) projectFrameSettings(inputCurve pipeline.CurveType) pipeline.FrameSettings {
	settings := store.ReadProjectSettings(c.Store)
	toneMap := pipeline.ToneMapACES
	return pipeline.FrameSettings{
		CanvasWidth:       settings.CanvasWidth,
		CanvasHeight:      settings.CanvasHeight,
		InputCurve:        inputCurve,
		LinearCompositing: settings.LinearCompositing,
		ToneMapOperator:   toneMap,
	}
}

// RenderFrame runs clip's effect pipeline for frame, given the decoded
// source bitmap and any curve-LUT textures the clip's effects reference.
func (c *Core) RenderFrame(clip *model.Clip, frame int, source *ebiten.Image, inputCurve pipeline.CurveType, textures pipeline.TextureRegistry) *ebiten.Image {
	settings := c.projectFrameSettings(inputCurve)
	return c.pipeline.Run(source, clip, frame, settings, textures)
}

// ReleaseFrame returns a pipeline-owned intermediate image to the pool. It
// must not be called on images returned directly from the source decoder.
func (c *Core) ReleaseFrame(img *ebiten.Image) {
	c.pipeline.Release(img)
}

// matteCache returns (creating if needed) the matte cache for clipID.
func (c *Core) matteCache(clipID string) *roto.Cache {
	c.mu.Lock()
	defer c.mu.Unlock()
	cache, ok := c.matteCaches[clipID]
	if !ok {
		cache = roto.NewCache()
		c.matteCaches[clipID] = cache
	}
	return cache
}

// RenderMatte computes (or returns the cached) alpha matte for clipID at
// frame. Only the render path for clipID ever writes its cache (spec §5,
// "shared-resource policy").
func (c *Core) RenderMatte(clipID string, src *roto.Source, fg, bg []model.RotoStroke, prior *roto.Matte, params roto.Params, frame int) *roto.Matte {
	cache := c.matteCache(clipID)
	if m, ok := cache.Get(frame); ok {
		return m
	}
	m := roto.ComputeMatte(src, fg, bg, prior, params)
	cache.Put(frame, m)
	return m
}

// InvalidateMatteCache drops every cached matte for clipID, called when its
// strokes or roto parameters change, and emits TIMELINE_UPDATED.
func (c *Core) InvalidateMatteCache(clipID string) {
	c.matteCache(clipID).Invalidate()
	c.Events.PublishTimelineUpdated(clipID)
}

// DrawMattedClip composites src onto frame through matte using mode,
// dispatching to roto.DrawMatted for the GPU blend (model.BlendMask for
// "composite", model.BlendErase for "alpha"). Other output modes have no
// blend-mode equivalent and must be rendered via roto.Composite's CPU path
// and uploaded by the caller instead.
func (c *Core) DrawMattedClip(frame *Frame, src *ebiten.Image, matte *roto.Matte, mode roto.OutputMode) {
	roto.DrawMatted(frame.Image(), src, matte, mode)
}

// ExportColorSpace returns the bit-exact color tagging for the project's
// configured output space.
func (c *Core) ExportColorSpace() colorspace.ExportParams {
	settings := store.ReadProjectSettings(c.Store)
	return colorspace.ExportColorSpace(colorspace.OutputSpace(settings.OutputSpace))
}
