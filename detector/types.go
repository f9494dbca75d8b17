// Package detector assembles the merge, gradient, admit, and ransac
// packages into the per-cycle line-detection entry point (spec.md §4.4,
// §4.6, §4.7): candidate-point extraction, RANSAC dominant-line
// extraction, gap-split/length/distance post-processing, and an optional
// debug re-projection pass.
package detector

import "github.com/fieldvision/linedetect/geom"

// PixelPoint is a point in image pixel coordinates.
type PixelPoint = geom.Point[int]

// GroundPoint is a point in the robot-relative ground plane, in meters.
type GroundPoint = geom.Point[float64]

// LineData is the always-produced per-cycle result: the accepted lines
// in the ground frame, plus the deduplicated set of pixel origins of every
// admissible, projectable candidate segment, including those whose points
// ended up in no accepted line.
type LineData struct {
	LinesInRobot                 []geom.LineSegment[float64]
	UsedVerticalFilteredSegments []PixelPoint
}

// DiscardReason classifies why a candidate line was not retained.
type DiscardReason uint8

const (
	// TooFewPoints indicates the (raw or gap-split) support fell below
	// MinimumNumberOfPointsOnLine.
	TooFewPoints DiscardReason = iota
	// LineTooShort indicates the fitted line's ground length fell below
	// AllowedLineLengthInField.Min.
	LineTooShort
	// LineTooLong indicates the fitted line's ground length exceeded
	// AllowedLineLengthInField.Max.
	LineTooLong
	// TooFarAway indicates the fitted line's midpoint ground distance
	// exceeded MaximumDistanceToRobot.
	TooFarAway
)

// String returns a human-readable discard reason.
func (r DiscardReason) String() string {
	switch r {
	case TooFewPoints:
		return "TooFewPoints"
	case LineTooShort:
		return "LineTooShort"
	case LineTooLong:
		return "LineTooLong"
	case TooFarAway:
		return "TooFarAway"
	default:
		return "Unknown"
	}
}

// DiscardedLine pairs a rejected candidate line (pixel frame) with the
// reason it was discarded.
type DiscardedLine struct {
	Line   geom.LineSegment[int]
	Reason DiscardReason
}

// ImageLines is the optional per-cycle debug record: the full candidate
// ground-point cloud and every accepted/discarded line, re-projected
// back into pixel coordinates.
type ImageLines struct {
	Points         []PixelPoint
	Lines          []geom.LineSegment[int]
	DiscardedLines []DiscardedLine
}
