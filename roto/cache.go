package roto

import "sync"

// Cache stores computed mattes keyed by frame number, so scrubbing the
// timeline without touching strokes never recomputes a matte (spec §4.4/§5,
// "idempotent" and scoped to a single clip's roto-brush state).
type Cache struct {
	mu     sync.Mutex
	frames map[int]*Matte
}

// NewCache returns an empty matte cache.
func NewCache() *Cache {
	return &Cache{frames: make(map[int]*Matte)}
}

// Get returns the cached matte for frame, if any.
func (c *Cache) Get(frame int) (*Matte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.frames[frame]
	return m, ok
}

// Put stores the matte for frame, overwriting any previous entry.
func (c *Cache) Put(frame int, m *Matte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames[frame] = m
}

// Invalidate drops every cached matte, used when strokes or effect
// parameters affecting the matte are mutated.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = make(map[int]*Matte)
}

// InvalidateFrame drops the cached matte for a single frame.
func (c *Cache) InvalidateFrame(frame int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.frames, frame)
}
