package geom

import (
	"encoding/json"
	"fmt"

	"github.com/fieldvision/linedetect/types"
)

// LineSegment represents a line segment in 2D space, defined by two
// endpoints, a start and an end, both of generic numeric type T.
//
// Unlike the general-purpose library this package descends from,
// LineSegment here carries no relationship/intersection machinery — the
// detection pipeline only ever needs length, center, and perpendicular
// projection.
type LineSegment[T types.SignedNumber] struct {
	start Point[T]
	end   Point[T]
}

// NewLineSegment creates a LineSegment from two endpoints.
func NewLineSegment[T types.SignedNumber](start, end Point[T]) LineSegment[T] {
	return LineSegment[T]{start: start, end: end}
}

// Start returns the line segment's start point.
func (l LineSegment[T]) Start() Point[T] { return l.start }

// End returns the line segment's end point.
func (l LineSegment[T]) End() Point[T] { return l.end }

// Length returns the Euclidean length of the line segment.
func (l LineSegment[T]) Length() float64 {
	return l.start.DistanceToPoint(l.end)
}

// Center returns the midpoint of the line segment.
func (l LineSegment[T]) Center() Point[float64] {
	return NewPoint(
		(float64(l.start.x)+float64(l.end.x))/2,
		(float64(l.start.y)+float64(l.end.y))/2,
	)
}

// ProjectPoint returns the perpendicular foot of p on the infinite line
// passing through l's endpoints. See [Point.ProjectOntoLine].
func (l LineSegment[T]) ProjectPoint(p Point[T]) Point[float64] {
	return p.ProjectOntoLine(l)
}

// AsFloat converts a LineSegment's endpoints to float64.
func (l LineSegment[T]) AsFloat() LineSegment[float64] {
	return LineSegment[float64]{start: l.start.AsFloat(), end: l.end.AsFloat()}
}

// String returns a string representation of the line segment.
func (l LineSegment[T]) String() string {
	return fmt.Sprintf("LineSegment[%v -> %v]", l.start, l.end)
}

// MarshalJSON serializes LineSegment as a {"start":...,"end":...} object.
func (l LineSegment[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Start Point[T] `json:"start"`
		End   Point[T] `json:"end"`
	}{Start: l.start, End: l.end})
}
