package gradient

import (
	"testing"

	"github.com/fieldvision/linedetect/imagesrc"
	"github.com/stretchr/testify/assert"
)

func TestAt_ZeroImage(t *testing.T) {
	img := imagesrc.NewGrid(4, 4)
	g := At(img, 1, 1)
	assert.Equal(t, 0.0, g.X())
	assert.Equal(t, 0.0, g.Y())
}

func TestAt_BorderPixelsReturnZero(t *testing.T) {
	img := imagesrc.NewGrid(4, 4)
	for v := 0; v < 4; v++ {
		for u := 0; u < 4; u++ {
			img.Set(u, v, uint8((u+v)*30))
		}
	}
	cases := []struct{ u, v int }{
		{0, 1}, {1, 0}, {3, 1}, {1, 3},
	}
	for _, c := range cases {
		g := At(img, c.u, c.v)
		assert.Equal(t, 0.0, g.X())
		assert.Equal(t, 0.0, g.Y())
	}
}

func TestAt_UnitVector(t *testing.T) {
	img := imagesrc.NewGrid(5, 5)
	// a vertical bright stripe: strong horizontal gradient at its edges.
	for v := 0; v < 5; v++ {
		img.Set(2, v, 255)
	}
	// probe the stripe's left edge; its centre is symmetric and has a
	// zero Sobel response.
	g := At(img, 1, 2)
	assert.InDelta(t, 1.0, g.X()*g.X()+g.Y()*g.Y(), 1e-9)
}

func TestAt_FlatRegionIsZero(t *testing.T) {
	img := imagesrc.NewGrid(5, 5)
	for v := 0; v < 5; v++ {
		for u := 0; u < 5; u++ {
			img.Set(u, v, 128)
		}
	}
	g := At(img, 2, 2)
	assert.Equal(t, 0.0, g.X())
	assert.Equal(t, 0.0, g.Y())
}
