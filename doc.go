// Package compositor is the video-editing compositing core: given a
// timeline of clips built from an effect pipeline, roto mattes, and
// transitions, it renders one composited frame at a time.
//
// [Core] is the single entry point a host constructs and holds for the
// lifetime of a project. It owns the effect pipeline's GPU resources, the
// per-clip matte cache, the background job manager, and the observable
// project-settings store, wiring them together the way a teacher-style
// retained-mode framework wires its root Scene to cameras, nodes, and
// filters — one owned struct per concern, passed down by reference rather
// than reached for through package-level state.
//
// # Rendering a frame
//
//	core := compositor.New()
//	frame := core.RenderFrame(clip, frameNumber, source, pipeline.CurveSRGB, textures)
//
// # Computing a roto matte
//
//	matte := core.RenderMatte(clip.ID, src, fgStrokes, bgStrokes, prior, params, frameNumber)
package compositor
