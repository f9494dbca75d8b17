// Package admit implements the segment admissibility predicate (spec.md
// §4.3): given a merged segment on one scanline, decide whether it is a
// plausible cross-section of a field line.
package admit

import (
	"github.com/fieldvision/linedetect/camera"
	"github.com/fieldvision/linedetect/config"
	"github.com/fieldvision/linedetect/geom"
	"github.com/fieldvision/linedetect/gradient"
	"github.com/fieldvision/linedetect/imagesrc"
	"github.com/fieldvision/linedetect/internal/dbg"
	"github.com/fieldvision/linedetect/segment"
)

// IsLineSegment reports whether seg, found at pixel column column, passes
// every check cfg enables. Checks run in the fixed order spec.md §4.3
// specifies and are side-effect free; a failure at any enabled check
// rejects the segment immediately.
func IsLineSegment(seg segment.Segment, column int, img imagesrc.LumaImage, cam camera.Matrix, cfg config.Config) bool {
	// Check 1: polarity. A true line cross-section rises into the line
	// and falls out of it; any other pairing (including a Border edge)
	// is rejected regardless of the other checks.
	if seg.StartEdge != segment.Rising || seg.EndEdge != segment.Falling {
		dbg.Printf("admit: column %d segment [%d,%d] rejected: polarity %v/%v", column, seg.Start, seg.End, seg.StartEdge, seg.EndEdge)
		return false
	}

	startPixel := geom.NewPoint(column, seg.Start)
	endPixel := geom.NewPoint(column, seg.End)

	// Check 2: projected ground length. A failed projection is treated
	// as non-disqualifying, since the upstream gate on individual pixel
	// projection failures is "drop the candidate", not "reject the
	// segment".
	if cfg.CheckLineSegmentsProjection {
		startGround, startOK := cam.PixelToGround(startPixel)
		endGround, endOK := cam.PixelToGround(endPixel)
		if startOK && endOK {
			if startGround.DistanceToPoint(endGround) > cfg.MaximumProjectedSegmentLength {
				dbg.Printf("admit: column %d segment [%d,%d] rejected: projected length exceeds bound", column, seg.Start, seg.End)
				return false
			}
		}
	}

	// Check 3: gradient alignment. A genuine line's two edges carry
	// antiparallel luma gradients, so their dot product is strongly
	// negative; reject when it fails to clear the (typically negative)
	// threshold.
	if cfg.CheckEdgeGradient {
		startGradient := gradient.At(img, column, seg.Start)
		endGradient := gradient.At(img, column, seg.End)
		if startGradient.DotProduct(endGradient) >= cfg.GradientAlignment {
			dbg.Printf("admit: column %d segment [%d,%d] rejected: gradient alignment", column, seg.Start, seg.End)
			return false
		}
	}

	return true
}
