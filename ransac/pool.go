package ransac

import (
	"sort"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/fieldvision/linedetect/geom"
)

// pool is the mutable candidate-point buffer a Fitter samples from and
// shrinks as lines are extracted. It is backed by gods' arraylist, the
// same ordered-list structure the teacher library's sweep-line code uses
// for its mutable event/status collections, rather than a bare Go slice.
type pool struct {
	list *arraylist.List
}

func newPool(points []geom.Point[float64]) *pool {
	p := &pool{list: arraylist.New()}
	for _, pt := range points {
		p.list.Add(pt)
	}
	return p
}

// Len returns the number of points currently in the pool.
func (p *pool) Len() int { return p.list.Size() }

// At returns the point at index i.
func (p *pool) At(i int) geom.Point[float64] {
	v, _ := p.list.Get(i)
	return v.(geom.Point[float64])
}

// RemoveIndices removes the points at the given indices, which need not
// be sorted or unique-safe by caller contract (callers always pass a
// deduplicated index set here).
func (p *pool) RemoveIndices(indices []int) {
	sorted := append([]int(nil), indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, i := range sorted {
		p.list.Remove(i)
	}
}

// Points returns a snapshot slice of the pool's current contents, in
// order.
func (p *pool) Points() []geom.Point[float64] {
	out := make([]geom.Point[float64], p.list.Size())
	for i := range out {
		out[i] = p.At(i)
	}
	return out
}
