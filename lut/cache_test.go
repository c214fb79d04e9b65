package lut

import (
	"testing"

	"github.com/gogpu/sight/colorspace"
)

func counting(n *int) Transform {
	return func(c colorspace.RGB) colorspace.RGB {
		*n++
		return c
	}
}

func TestCacheBakesOnce(t *testing.T) {
	c := NewCache(0)
	var calls int
	a := c.GetOrBake("id", 4, counting(&calls))
	b := c.GetOrBake("id", 4, counting(&calls))
	if a != b {
		t.Error("second lookup returned a different cube")
	}
	if calls != 64 {
		t.Errorf("transform called %d times, want 64", calls)
	}

	// Same name, other dimension is a separate entry.
	if d := c.GetOrBake("id", 2, Identity); d.Dimension != 2 {
		t.Errorf("Dimension = %d, want 2", d.Dimension)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
}

func TestCacheEviction(t *testing.T) {
	c := NewCache(4)
	for _, name := range []string{"a", "b", "c", "d"} {
		c.GetOrBake(name, 2, Identity)
	}
	c.GetOrBake("a", 2, Identity) // a becomes most recent
	c.GetOrBake("e", 2, Identity) // over the limit: trims to 3

	if got := c.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	var calls int
	c.GetOrBake("a", 2, counting(&calls))
	c.GetOrBake("e", 2, counting(&calls))
	if calls != 0 {
		t.Errorf("recent entries were evicted (%d re-bakes)", calls)
	}
}

func TestBakedShared(t *testing.T) {
	if Baked("lut-test-identity", Identity) != Baked("lut-test-identity", Identity) {
		t.Error("Baked returned distinct cubes for one name")
	}
}
