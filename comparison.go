package sight

import "sync"

// Comparison holds the two sights shown side by side and the requested
// mode. Night is only used when both sights are nocturnal; otherwise both
// sides fall back to their day descriptors.
//
// Comparison is safe for concurrent use: input handlers write it and the
// render loop reads it.
type Comparison struct {
	mu    sync.RWMutex
	left  Sight
	right Sight
	mode  Mode
}

// NewComparison returns a comparison in day mode.
func NewComparison(left, right Sight) *Comparison {
	return &Comparison{left: left, right: right}
}

// Left returns the left sight.
func (c *Comparison) Left() Sight {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.left
}

// Right returns the right sight.
func (c *Comparison) Right() Sight {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.right
}

// Mode returns the requested mode, which may differ from the mode in
// effect; see EffectiveMode.
func (c *Comparison) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// SelectLeft replaces the left sight.
func (c *Comparison) SelectLeft(s Sight) {
	c.mu.Lock()
	c.left = s
	c.mu.Unlock()
}

// SelectRight replaces the right sight.
func (c *Comparison) SelectRight(s Sight) {
	c.mu.Lock()
	c.right = s
	c.mu.Unlock()
}

// SetMode requests day or night.
func (c *Comparison) SetMode(m Mode) {
	c.mu.Lock()
	c.mode = m
	c.mu.Unlock()
}

// NightAvailable reports whether both sights are nocturnal.
func (c *Comparison) NightAvailable() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nightAvailable()
}

func (c *Comparison) nightAvailable() bool {
	return c.left.Set.IsNocturnal() && c.right.Set.IsNocturnal()
}

// EffectiveMode returns Night only when night was requested and is
// available.
func (c *Comparison) EffectiveMode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.mode == Night && c.nightAvailable() {
		return Night
	}
	return Day
}

// Active returns the descriptors to render on each side.
func (c *Comparison) Active() (left, right Descriptor) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	mode := Day
	if c.mode == Night && c.nightAvailable() {
		mode = Night
	}
	return c.left.Set.Active(mode), c.right.Set.Active(mode)
}
