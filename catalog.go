package sight

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/sight/effect"
)

// Animal names accepted by ByName.
const (
	NameHuman = "human"
	NameDog   = "dog"
	NameCat   = "cat"
	NameEagle = "eagle"
	NameBull  = "bull"
	NameSnake = "snake"
	NameBee   = "bee"
)

var humanIcons = []string{"🧔", "👩", "👩‍💻", "👨‍🎨", "👩‍🔬", "👨‍🍳", "🕵️‍♂️", "👩‍✈️", "👨‍⚖️", "👨‍🔧"}

type entry struct {
	name     string
	icons    []string
	preset   effect.Preset
	magnetic bool
}

var catalog = []entry{
	{NameHuman, humanIcons, effect.Human, false},
	{NameDog, []string{"🐶"}, effect.Dog, false},
	{NameCat, []string{"🐈"}, effect.Cat, false},
	{NameEagle, []string{"🦅"}, effect.Eagle, true},
	{NameBull, []string{"🐂"}, effect.Bull, false},
	{NameSnake, []string{"🐍"}, effect.Snake, false},
	{NameBee, []string{"🐝"}, effect.Bee, false},
}

func (e entry) build(opts []effect.PresetOption) Sight {
	// A Caser is stateful; one per call keeps ByName safe for concurrent use.
	name := cases.Title(language.English).String(e.name)
	return NewSight(e.icons, name, e.preset(false, opts...), e.preset(true, opts...), e.magnetic)
}

// Names returns the catalog names in display order.
func Names() []string {
	out := make([]string, len(catalog))
	for i, e := range catalog {
		out[i] = e.name
	}
	return out
}

// ByName builds the named sight. The name is matched exactly against the
// Name constants.
func ByName(name string, opts ...effect.PresetOption) (Sight, bool) {
	for _, e := range catalog {
		if e.name == name {
			return e.build(opts), true
		}
	}
	return Sight{}, false
}

// Catalog builds every sight. Color cubes come from the lut cache, so only
// the first build pays for baking.
func Catalog(opts ...effect.PresetOption) []Sight {
	out := make([]Sight, len(catalog))
	for i, e := range catalog {
		out[i] = e.build(opts)
	}
	return out
}

// LeftDefaults returns the sights offered on the left side: the human.
func LeftDefaults(opts ...effect.PresetOption) []Sight {
	s, _ := ByName(NameHuman, opts...)
	return []Sight{s}
}

// RightDefaults returns the animals offered on the right side.
func RightDefaults(opts ...effect.PresetOption) []Sight {
	out := make([]Sight, 0, len(catalog)-1)
	for _, e := range catalog[1:] {
		out = append(out, e.build(opts))
	}
	return out
}
