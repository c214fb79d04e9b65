package sight

import "github.com/gogpu/sight/effect"

// Mode selects the day or night view of a sight.
type Mode uint8

// Modes.
const (
	Day Mode = iota
	Night
)

// String returns "day" or "night".
func (m Mode) String() string {
	if m == Night {
		return "night"
	}
	return "day"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Night {
		return Day
	}
	return Night
}

// Descriptor is one way of seeing: the effect applied to camera frames and
// whether the magnetic field overlay is drawn on top.
type Descriptor struct {
	Effect               effect.Effect
	ShowsMagneticOverlay bool
}

// Set holds either a single descriptor or a day/night pair. The zero value
// is a simple set with the identity effect.
type Set struct {
	day       Descriptor
	night     Descriptor
	nocturnal bool
}

// Simple returns a set that looks the same in both modes.
func Simple(d Descriptor) Set {
	return Set{day: d, night: d}
}

// Nocturnal returns a set with separate day and night descriptors.
func Nocturnal(day, night Descriptor) Set {
	return Set{day: day, night: night, nocturnal: true}
}

// Day returns the day descriptor.
func (s Set) Day() Descriptor { return s.day }

// Night returns the night descriptor. For a simple set it is the same as
// Day.
func (s Set) Night() Descriptor { return s.night }

// IsNocturnal reports whether the set was built with Nocturnal.
func (s Set) IsNocturnal() bool { return s.nocturnal }

// Active returns the descriptor for mode. Night is only honored for
// nocturnal sets.
func (s Set) Active(mode Mode) Descriptor {
	if mode == Night && s.nocturnal {
		return s.night
	}
	return s.day
}

// Sight is an animal, or a person, that can be compared.
type Sight struct {
	Icons       []string
	DisplayName string
	Set         Set
}

// NewSight returns a nocturnal sight with the given day and night effects.
// magnetic applies to both modes.
func NewSight(icons []string, name string, day, night effect.Effect, magnetic bool) Sight {
	return Sight{
		Icons:       append([]string(nil), icons...),
		DisplayName: name,
		Set: Nocturnal(
			Descriptor{Effect: day, ShowsMagneticOverlay: magnetic},
			Descriptor{Effect: night, ShowsMagneticOverlay: magnetic},
		),
	}
}

// NewSimpleSight returns a sight that looks the same by day and night.
func NewSimpleSight(icons []string, name string, e effect.Effect, magnetic bool) Sight {
	return Sight{
		Icons:       append([]string(nil), icons...),
		DisplayName: name,
		Set:         Simple(Descriptor{Effect: e, ShowsMagneticOverlay: magnetic}),
	}
}
