package pipeline

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/willow-compositor/corelog"
	"github.com/phanxgames/willow-compositor/shaderlib"
)

// ShaderCache lazily compiles and caches *ebiten.Shader values by pass name.
// Mirrors the teacher's ensureColorMatrixShader/ensurePPOutlineShader/...
// pattern, generalized from one global per shader to a single map — willow
// is single-threaded so neither version needs a sync.Once.
type ShaderCache struct {
	compiled map[shaderlib.PassName]*ebiten.Shader
	failed   map[shaderlib.PassName]bool
}

// NewShaderCache returns an empty cache.
func NewShaderCache() *ShaderCache {
	return &ShaderCache{
		compiled: make(map[shaderlib.PassName]*ebiten.Shader),
		failed:   make(map[shaderlib.PassName]bool),
	}
}

// Get returns the compiled shader for name, compiling and caching it on
// first use. If compilation fails, the failure is logged once and every
// subsequent Get for that pass returns (nil, false) without recompiling —
// the effect pipeline's failure model (§7 category 2) treats this as "the
// effect is disabled for that instance".
func (c *ShaderCache) Get(name shaderlib.PassName) (*ebiten.Shader, bool) {
	if s, ok := c.compiled[name]; ok {
		return s, true
	}
	if c.failed[name] {
		return nil, false
	}
	src, ok := shaderlib.Source(name)
	if !ok {
		c.failed[name] = true
		return nil, false
	}
	s, err := ebiten.NewShader([]byte(src))
	if err != nil {
		corelog.Warnf("pipeline: shader pass %q failed to compile/link: %v", name, err)
		c.failed[name] = true
		return nil, false
	}
	c.compiled[name] = s
	return s, true
}
