package sight

import (
	"math/rand/v2"
	"sync"
)

// IconPicker picks a display icon for a sight uniformly at random. The
// random source is injected so that picks are reproducible.
type IconPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewIconPicker returns a picker drawing from src.
//
// Example:
//
//	picker := sight.NewIconPicker(rand.NewPCG(1, 2))
func NewIconPicker(src rand.Source) *IconPicker {
	return &IconPicker{rng: rand.New(src)}
}

// Pick returns one of s.Icons, or "" when there are none.
func (p *IconPicker) Pick(s Sight) string {
	switch len(s.Icons) {
	case 0:
		return ""
	case 1:
		return s.Icons[0]
	}
	p.mu.Lock()
	i := p.rng.IntN(len(s.Icons))
	p.mu.Unlock()
	return s.Icons[i]
}
