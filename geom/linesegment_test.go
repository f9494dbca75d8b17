package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineSegment_LengthAndCenter(t *testing.T) {
	l := NewLineSegment(NewPoint(0.0, 0.0), NewPoint(3.0, 4.0))
	assert.Equal(t, 5.0, l.Length())
	center := l.Center()
	assert.Equal(t, 1.5, center.X())
	assert.Equal(t, 2.0, center.Y())
}

func TestLineSegment_ProjectPoint(t *testing.T) {
	l := NewLineSegment(NewPoint(0, 0), NewPoint(10, 0))
	foot := l.ProjectPoint(NewPoint(4, 7))
	assert.Equal(t, 4.0, foot.X())
	assert.Equal(t, 0.0, foot.Y())
}

func TestLineSegment_AsFloat(t *testing.T) {
	l := NewLineSegment(NewPoint(1, 2), NewPoint(3, 4))
	lf := l.AsFloat()
	assert.Equal(t, 1.0, lf.Start().X())
	assert.Equal(t, 4.0, lf.End().Y())
}
