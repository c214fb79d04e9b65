// Package effect composes image stages into immutable effects.
//
// An Effect is an ordered list of Stage values. Stages are small immutable
// structs, each tagged with a Kind, and applying an effect folds the source
// buffer through its stages from first to last:
//
//	dog := effect.Concat(
//		effect.Deuteranopia(),
//		effect.Saturation(-0.2),
//		effect.Blur(4),
//	)
//	out := dog.Apply(frame, viewSize)
//
// Constructors clamp their parameters to the supported range instead of
// failing, so any effect built from constants is valid. Size-dependent
// stages (Bump, OpTile, Scale and Crop) read the target size passed to
// Apply.
//
// The package also carries the per-animal presets: Human, Dog, Cat, Bull,
// Eagle, Snake and Bee.
package effect
