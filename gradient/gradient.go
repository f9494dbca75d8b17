// Package gradient implements the Sobel-operator luma gradient probe
// (spec.md §4.2) the admissibility check uses to compare a segment's two
// edges' luma gradients.
package gradient

import (
	"math"

	"github.com/fieldvision/linedetect/geom"
	"github.com/fieldvision/linedetect/imagesrc"
)

// zeroNormThreshold is the minimum gradient magnitude below which the
// gradient is reported as the zero vector, per spec.md §4.2.
const zeroNormThreshold = 1e-4

// At returns the unit gradient vector of the luma channel at pixel
// (u, v), or the zero vector when the pixel is within one row/column of
// the image border, or when the raw gradient magnitude is below 1e-4.
//
// The Sobel kernels below are the transposed pair spec.md §4.2/§9
// specifies; the sign convention must be preserved exactly, since
// reversing it would invert the admissibility gradient-alignment
// semantics (spec.md §9).
func At(img imagesrc.LumaImage, u, v int) geom.Point[float64] {
	if u < 1 || v < 1 || u > img.Width()-2 || v > img.Height()-2 {
		return geom.NewPoint(0.0, 0.0)
	}

	// Sobel matrix x (transposed):
	//  -1 -2 -1
	//   0  0  0
	//   1  2  1
	gx := -1*float64(img.At(u-1, v-1)) +
		-2*float64(img.At(u, v-1)) +
		-1*float64(img.At(u+1, v-1)) +
		1*float64(img.At(u-1, v+1)) +
		2*float64(img.At(u, v+1)) +
		1*float64(img.At(u+1, v+1))

	// Sobel matrix y (transposed):
	//   1  0 -1
	//   2  0 -2
	//   1  0 -1
	gy := 1*float64(img.At(u-1, v-1)) +
		-1*float64(img.At(u+1, v-1)) +
		2*float64(img.At(u-1, v)) +
		-2*float64(img.At(u+1, v)) +
		1*float64(img.At(u-1, v+1)) +
		-1*float64(img.At(u+1, v+1))

	norm := math.Hypot(gx, gy)
	if norm < zeroNormThreshold {
		return geom.NewPoint(0.0, 0.0)
	}

	return geom.NewPoint(gx/norm, gy/norm)
}
