package detector

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/google/btree"
)

// usedSet accumulates the distinct pixel origins of every admissible,
// projectable segment found during candidate extraction, whether or not
// an accepted line is later fitted through its point (spec.md §3's
// "used_vertical_filtered_segments ... duplicates collapse"). A gods
// hashset gives O(1) membership testing; a google/btree keeps the final
// output in a stable ascending order, since "unordered set" in the spec
// still needs a deterministic iteration order for reproducible output
// and tests.
type usedSet struct {
	seen    *hashset.Set
	ordered *btree.BTreeG[PixelPoint]
}

func newUsedSet() *usedSet {
	less := func(a, b PixelPoint) bool {
		if a.X() != b.X() {
			return a.X() < b.X()
		}
		return a.Y() < b.Y()
	}
	return &usedSet{
		seen:    hashset.New(),
		ordered: btree.NewG[PixelPoint](32, less),
	}
}

// Add records p, a no-op if p was already recorded.
func (s *usedSet) Add(p PixelPoint) {
	if s.seen.Contains(p) {
		return
	}
	s.seen.Add(p)
	s.ordered.ReplaceOrInsert(p)
}

// Slice returns the recorded points in ascending (x, y) order.
func (s *usedSet) Slice() []PixelPoint {
	out := make([]PixelPoint, 0, s.ordered.Len())
	s.ordered.Ascend(func(item PixelPoint) bool {
		out = append(out, item)
		return true
	})
	return out
}
