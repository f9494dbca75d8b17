// Package ransac implements the iterated dominant-line extractor (spec.md
// §4.5): repeatedly sample two points from a shrinking ground-point pool,
// keep the sample whose line has the most inliers, and remove those
// inliers from the pool before the caller's next call.
package ransac

import (
	"math/rand/v2"

	"github.com/fieldvision/linedetect/geom"
	"github.com/fieldvision/linedetect/internal/dbg"
)

// Fitter owns one cycle's candidate-point pool and its own seeded RNG.
// Per spec.md §4.5/§9, randomness must never come from a global source —
// a Fitter is constructed fresh (or with a fixed seed, in tests) by the
// caller once per cycle.
type Fitter struct {
	pool *pool
	rng  *rand.Rand
}

// New creates a Fitter over points, seeded deterministically by seed1 and
// seed2 (the two halves math/rand/v2's PCG source takes). Passing the
// same points and seeds always produces the same sequence of NextLine
// results.
func New(points []geom.Point[float64], seed1, seed2 uint64) *Fitter {
	return &Fitter{
		pool: newPool(points),
		rng:  rand.New(rand.NewPCG(seed1, seed2)),
	}
}

// Len reports how many points remain in the pool.
func (f *Fitter) Len() int { return f.pool.Len() }

// Remaining returns a snapshot of the points still in the pool, in
// order. The gap-split remainder goes back into the pool through Return.
func (f *Fitter) Remaining() []geom.Point[float64] { return f.pool.Points() }

// Return puts points back into the pool, for the gap-split remainder
// spec.md §4.6 step 2 sends back as "unused".
func (f *Fitter) Return(points []geom.Point[float64]) {
	for _, p := range points {
		f.pool.list.Add(p)
	}
}

// NextLine samples up to iterations candidate lines (two distinct points
// each, drawn uniformly from the current pool), keeps the one with the
// largest inlier count (ties broken by first-seen), removes its inliers
// from the pool, and returns it. ok is false when the pool has fewer than
// two points.
func (f *Fitter) NextLine(iterations int, inlierThreshold float64) (line geom.LineSegment[float64], inliers []geom.Point[float64], ok bool) {
	n := f.pool.Len()
	if n < 2 {
		return geom.LineSegment[float64]{}, nil, false
	}

	bestCount := -1
	var bestLine geom.LineSegment[float64]
	var bestIndices []int

	for iter := 0; iter < iterations; iter++ {
		i := f.rng.IntN(n)
		j := f.rng.IntN(n)
		for j == i {
			j = f.rng.IntN(n)
		}

		candidate := geom.NewLineSegment(f.pool.At(i), f.pool.At(j))

		var indices []int
		for k := 0; k < n; k++ {
			if f.pool.At(k).DistanceToLine(candidate) <= inlierThreshold {
				indices = append(indices, k)
			}
		}

		if len(indices) > bestCount {
			bestCount = len(indices)
			bestLine = candidate
			bestIndices = indices
		}
	}

	if bestCount < 0 {
		return geom.LineSegment[float64]{}, nil, false
	}

	inlierPoints := make([]geom.Point[float64], len(bestIndices))
	for idx, k := range bestIndices {
		inlierPoints[idx] = f.pool.At(k)
	}

	f.pool.RemoveIndices(bestIndices)

	dbg.Printf("ransac: selected line %v with %d inliers from a pool of %d", bestLine, bestCount, n)

	return bestLine, inlierPoints, true
}
