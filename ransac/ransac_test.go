package ransac

import (
	"testing"

	"github.com/fieldvision/linedetect/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collinearPoints() []geom.Point[float64] {
	xs := []float64{0, 0.1, 0.2, 0.3, 2.0, 2.1, 2.2}
	points := make([]geom.Point[float64], len(xs))
	for i, x := range xs {
		points[i] = geom.NewPoint(x, 0.0)
	}
	return points
}

func TestNextLine_TooFewPoints(t *testing.T) {
	f := New([]geom.Point[float64]{geom.NewPoint(0.0, 0.0)}, 1, 2)
	_, inliers, ok := f.NextLine(20, 0.02)
	assert.False(t, ok)
	assert.Nil(t, inliers)
}

func TestNextLine_EmptyPool(t *testing.T) {
	f := New(nil, 1, 2)
	_, _, ok := f.NextLine(20, 0.02)
	assert.False(t, ok)
}

func TestNextLine_AllCollinearPointsAreInliers(t *testing.T) {
	f := New(collinearPoints(), 7, 42)
	line, inliers, ok := f.NextLine(20, 0.02)
	require.True(t, ok)
	assert.Len(t, inliers, 7)
	assert.Equal(t, 0, f.Len(), "all inliers must be removed from the pool")
	assert.InDelta(t, 0.0, line.Start().Y(), 1e-9)
	assert.InDelta(t, 0.0, line.End().Y(), 1e-9)
}

func TestNextLine_SecondCallOnExhaustedPoolFails(t *testing.T) {
	f := New(collinearPoints(), 7, 42)
	_, _, ok := f.NextLine(20, 0.02)
	require.True(t, ok)

	_, _, ok = f.NextLine(20, 0.02)
	assert.False(t, ok)
}

func TestNextLine_Deterministic(t *testing.T) {
	points := collinearPoints()

	f1 := New(points, 123, 456)
	line1, inliers1, ok1 := f1.NextLine(20, 0.02)

	f2 := New(points, 123, 456)
	line2, inliers2, ok2 := f2.NextLine(20, 0.02)

	require.Equal(t, ok1, ok2)
	assert.Equal(t, line1, line2)
	assert.Equal(t, inliers1, inliers2)
}

func TestNextLine_ReturnRepopulatesPool(t *testing.T) {
	f := New(collinearPoints(), 7, 42)
	_, inliers, ok := f.NextLine(20, 0.02)
	require.True(t, ok)

	f.Return(inliers)
	assert.Equal(t, len(inliers), f.Len())
}
