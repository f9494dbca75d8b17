package camera

import (
	"math"
	"testing"

	"github.com/fieldvision/linedetect/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPinhole() Pinhole {
	return NewPinhole(
		0.6, 0.6, // focal
		0.5, 0.5, // center
		640, 480, // image size
		math.Pi/6, // pitch: 30 degrees down
		[3]float64{0, 0, 0.5}, // camera height 0.5m
	)
}

func TestPinhole_PixelToGround_BelowHorizon(t *testing.T) {
	cam := testPinhole()
	ground, ok := cam.PixelToGround(geom.NewPoint(400, 400))
	require.True(t, ok)
	assert.Greater(t, ground.X(), 0.0)
}

func TestPinhole_PixelToGround_AboveHorizon(t *testing.T) {
	cam := testPinhole()
	// a pixel near the top of the image, at the principal point's column,
	// looks above the horizon for a downward-pitched camera.
	_, ok := cam.PixelToGround(geom.NewPoint(320, 0))
	assert.False(t, ok)
}

func TestPinhole_RoundTrip(t *testing.T) {
	cam := testPinhole()
	original := geom.NewPoint(420, 300)
	ground, ok := cam.PixelToGround(original)
	require.True(t, ok)

	pixel, ok := cam.GroundToPixel(ground)
	require.True(t, ok)

	assert.InDelta(t, float64(original.X()), float64(pixel.X()), 1.0)
	assert.InDelta(t, float64(original.Y()), float64(pixel.Y()), 1.0)
}

func TestPinhole_CloserToHorizonIsFartherOnGround(t *testing.T) {
	cam := testPinhole()
	near, ok := cam.PixelToGround(geom.NewPoint(320, 460))
	require.True(t, ok)
	far, ok := cam.PixelToGround(geom.NewPoint(320, 320))
	require.True(t, ok)

	// rows closer to the horizon (smaller v, for a downward-pitched
	// camera) project farther away on the ground — the perspective
	// foreshortening the admissibility projected-length check relies on.
	assert.Greater(t, far.X(), near.X())
}
