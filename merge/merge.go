// Package merge implements the per-scanline segment merger (spec.md §4.1):
// a greedy, left-to-right adjacency-closer that restores field-line
// cross-sections split into adjacent small segments by noise or thin
// shadows.
package merge

import (
	"github.com/fieldvision/linedetect/internal/dbg"
	"github.com/fieldvision/linedetect/segment"
)

// Merge consumes a finite ordered sequence of segments from one scanline
// and returns a finite ordered sequence of possibly-merged segments.
//
// Two consecutive segments are merged (absorbed into the running current
// segment) when the gap between them — next.Start - current.End — is
// strictly less than maximumMergeGap. Merging is greedy and left-to-right;
// it never reconsiders a merge once made, matching spec.md's description
// of the algorithm precisely.
func Merge(segments []segment.Segment, maximumMergeGap int) []segment.Segment {
	if len(segments) == 0 {
		return nil
	}

	merged := make([]segment.Segment, 0, len(segments))
	current := segments[0]

	for _, next := range segments[1:] {
		if next.Start-current.End < maximumMergeGap {
			dbg.Printf("merge: absorbing segment starting at %d into current ending at %d", next.Start, current.End)
			current.End = next.End
			current.EndEdge = next.EndEdge
			continue
		}
		dbg.Printf("merge: emitting segment [%d,%d]", current.Start, current.End)
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)

	return merged
}
