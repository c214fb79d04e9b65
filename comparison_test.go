package sight

import (
	"testing"

	"github.com/gogpu/sight/effect"
)

func TestComparisonNightAvailability(t *testing.T) {
	dayA, nightA := effect.Blur(1), effect.Blur(2)
	dayB, nightB := effect.Blur(3), effect.Blur(4)
	a := NewSight(nil, "a", dayA, nightA, false)
	b := NewSight(nil, "b", dayB, nightB, false)
	s := NewSimpleSight(nil, "s", dayB, false)

	tests := []struct {
		name        string
		left, right Sight
		mode        Mode
		available   bool
		wantLeft    effect.Effect
		wantRight   effect.Effect
	}{
		{"both nocturnal day", a, b, Day, true, dayA, dayB},
		{"both nocturnal night", a, b, Night, true, nightA, nightB},
		{"right simple night", a, s, Night, false, dayA, dayB},
		{"left simple night", s, a, Night, false, dayB, dayA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewComparison(tt.left, tt.right)
			c.SetMode(tt.mode)
			if got := c.NightAvailable(); got != tt.available {
				t.Errorf("NightAvailable() = %v, want %v", got, tt.available)
			}
			l, r := c.Active()
			if !l.Effect.Equal(tt.wantLeft) || !r.Effect.Equal(tt.wantRight) {
				t.Errorf("Active() = (%v, %v), want (%v, %v)", l.Effect, r.Effect, tt.wantLeft, tt.wantRight)
			}
			if c.Mode() != tt.mode {
				t.Errorf("Mode() = %v, want requested %v", c.Mode(), tt.mode)
			}
		})
	}
}

func TestComparisonSelect(t *testing.T) {
	a := NewSight(nil, "a", effect.None(), effect.None(), false)
	s := NewSimpleSight(nil, "s", effect.None(), false)
	c := NewComparison(a, a)
	c.SetMode(Night)
	if c.EffectiveMode() != Night {
		t.Fatal("night should be in effect")
	}

	c.SelectRight(s)
	if c.EffectiveMode() != Day {
		t.Error("selecting a simple sight should fall back to day")
	}
	if c.Right().DisplayName != "s" {
		t.Errorf("Right() = %q, want s", c.Right().DisplayName)
	}

	c.SelectRight(a)
	c.SelectLeft(s)
	if c.NightAvailable() || c.Left().DisplayName != "s" {
		t.Error("SelectLeft not applied")
	}
}
