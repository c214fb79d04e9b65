package lut

import "github.com/gogpu/sight/colorspace"

// Dimension is the cube resolution used throughout the system.
const Dimension = 64

// MinDimension is the smallest usable cube resolution.
const MinDimension = 2

// Transform maps one linear RGB sample to another.
type Transform func(colorspace.RGB) colorspace.RGB

// Bake evaluates transform at every quantized input of a cube with the given
// dimension. Dimensions below MinDimension are raised to it.
//
// Iteration order is b outer, g middle, r inner, matching the layout that
// Cube.Index and the filter backends expect.
func Bake(dimension int, transform Transform) *Cube {
	dim := max(dimension, MinDimension)
	data := make([]float32, 0, dim*dim*dim*4)
	step := 1 / float32(dim-1)

	for b := range dim {
		for g := range dim {
			for r := range dim {
				out := transform(colorspace.RGB{
					R: float32(r) * step,
					G: float32(g) * step,
					B: float32(b) * step,
				})
				data = append(data, out.R, out.G, out.B, 1)
			}
		}
	}

	return &Cube{Dimension: dim, Data: data}
}

// Identity returns the transform that leaves every sample unchanged.
func Identity(c colorspace.RGB) colorspace.RGB { return c }
