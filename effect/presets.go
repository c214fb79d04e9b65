package effect

import stdimage "image"

// PresetOption configures the animal presets.
//
// Example:
//
//	night := effect.Dog(true, effect.WithNightContrast(0.3))
type PresetOption func(*presetOptions)

type presetOptions struct {
	nightContrast    float64
	hasNightContrast bool
	heatmap          stdimage.Image
}

func applyOptions(opts []PresetOption) presetOptions {
	var o presetOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithNightContrast prepends Contrast(adj) to the dog and cat night chains.
// Other presets ignore it.
func WithNightContrast(adj float64) PresetOption {
	return func(o *presetOptions) {
		o.nightContrast = adj
		o.hasNightContrast = true
	}
}

// WithHeatmapGradient replaces the snake's thermal gradient with the
// middle row of img. A nil image keeps the built-in gradient.
func WithHeatmapGradient(img stdimage.Image) PresetOption {
	return func(o *presetOptions) {
		o.heatmap = img
	}
}

// contrast returns the optional contrast stage for the dichromat
// night chains, or None.
func (o presetOptions) contrast() Effect {
	if !o.hasNightContrast {
		return None()
	}
	return Contrast(o.nightContrast)
}

// Human is unchanged by day and dim and desaturated at night.
func Human(night bool, _ ...PresetOption) Effect {
	if !night {
		return None()
	}
	return Concat(Brightness(-1.6), Saturation(-0.9))
}

// Dog is a red-green dichromat with soft acuity. At night it keeps more
// light and color than a human.
func Dog(night bool, opts ...PresetOption) Effect {
	if !night {
		return Concat(Deuteranopia(), Saturation(-0.2), Blur(4))
	}
	o := applyOptions(opts)
	return Concat(o.contrast(), Deuteranopia(), Brightness(-1.2), Saturation(-0.5), Blur(4))
}

// Cat sees like a dog with sharper acuity and better night vision.
func Cat(night bool, opts ...PresetOption) Effect {
	if !night {
		return Concat(Deuteranopia(), Saturation(-0.2), Blur(2))
	}
	o := applyOptions(opts)
	return Concat(o.contrast(), Deuteranopia(), Brightness(-0.8), Saturation(-0.5), Blur(2))
}

// Bull sees little color and a blurry picture, worse at night.
func Bull(night bool, _ ...PresetOption) Effect {
	if !night {
		return Concat(Brightness(-0.5), Saturation(-0.9), Blur(10))
	}
	return Concat(Brightness(-1.4), Saturation(-0.9), Blur(20))
}

// Eagle sees ultraviolet with vivid color and sharp acuity.
func Eagle(night bool, _ ...PresetOption) Effect {
	day := Concat(Ultraviolet(), Saturation(1.0), Sharpen(0.5))
	if !night {
		return day
	}
	return Concat(Brightness(-1.0), day)
}

// Snake sees a blurred thermal image, the same by day and night.
func Snake(_ bool, opts ...PresetOption) Effect {
	if o := applyOptions(opts); o.heatmap != nil {
		return Concat(Blur(10), HeatmapFromImage(o.heatmap))
	}
	return Concat(Blur(10), Heatmap())
}

// Bee sees ultraviolet through a compound eye.
func Bee(night bool, _ ...PresetOption) Effect {
	day := Concat(Ultraviolet(), Saturation(2.0), OpTile(), Bump(2, -0.5))
	if !night {
		return day
	}
	return Concat(Brightness(-1.4), day)
}

// Preset builds one side of a day/night pair.
type Preset func(night bool, opts ...PresetOption) Effect
