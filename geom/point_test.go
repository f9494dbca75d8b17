package geom

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_DotProductAndCrossProduct(t *testing.T) {
	p := NewPoint(2, 3)
	q := NewPoint(4, 5)
	assert.Equal(t, 23, p.DotProduct(q))
	assert.Equal(t, -2, p.CrossProduct(q))
}

func TestPoint_DistanceToPoint(t *testing.T) {
	p := NewPoint(0.0, 0.0)
	q := NewPoint(3.0, 4.0)
	assert.Equal(t, 5.0, p.DistanceToPoint(q))
	assert.Equal(t, 25.0, p.DistanceSquaredToPoint(q))
}

func TestPoint_Eq(t *testing.T) {
	assert.True(t, NewPoint(1, 2).Eq(NewPoint(1, 2)))
	assert.False(t, NewPoint(1, 2).Eq(NewPoint(1, 3)))
}

func TestNewPointFromImagePoint(t *testing.T) {
	p := NewPointFromImagePoint(image.Pt(3, 7))
	assert.Equal(t, 3, p.X())
	assert.Equal(t, 7, p.Y())
}

func TestPoint_ProjectOntoLine_Unclamped(t *testing.T) {
	// a horizontal line through y=0; a point projected beyond the
	// segment's own endpoints must NOT clamp to an endpoint, since
	// RANSAC support routinely extends past the two sampled points.
	l := NewLineSegment(NewPoint(0.0, 0.0), NewPoint(1.0, 0.0))
	p := NewPoint(5.0, 3.0)
	foot := p.ProjectOntoLine(l)
	assert.InDelta(t, 5.0, foot.X(), 1e-9)
	assert.InDelta(t, 0.0, foot.Y(), 1e-9)
}

func TestPoint_ProjectOntoLine_Degenerate(t *testing.T) {
	l := NewLineSegment(NewPoint(2.0, 2.0), NewPoint(2.0, 2.0))
	p := NewPoint(9.0, 9.0)
	foot := p.ProjectOntoLine(l)
	assert.Equal(t, 2.0, foot.X())
	assert.Equal(t, 2.0, foot.Y())
}

func TestPoint_MarshalJSON(t *testing.T) {
	b, err := NewPoint(3, 4).MarshalJSON()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"x":3,"y":4}`, string(b))
}

func TestPoint_DistanceToLine(t *testing.T) {
	l := NewLineSegment(NewPoint(0.0, 0.0), NewPoint(10.0, 0.0))
	p := NewPoint(5.0, 3.0)
	assert.InDelta(t, 3.0, p.DistanceToLine(l), 1e-9)
}
