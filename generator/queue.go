package generator

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
)

// item is one queue entry. It is live while version matches the cell's
// current version.
type item struct {
	cell    int
	entropy float64
	version uint64
}

// byEntropy orders items by entropy, then by cell id.
var byEntropy utils.Comparator = func(a, b interface{}) int {
	x, y := a.(item), b.(item)
	switch {
	case x.entropy < y.entropy:
		return -1
	case x.entropy > y.entropy:
		return 1
	case x.cell < y.cell:
		return -1
	case x.cell > y.cell:
		return 1
	default:
		return 0
	}
}

// entropyQueue is a min-heap of cells with lazy invalidation.
type entropyQueue struct {
	heap     *binaryheap.Heap
	versions []uint64
}

func newEntropyQueue(cells int) *entropyQueue {
	return &entropyQueue{
		heap:     binaryheap.NewWith(byEntropy),
		versions: make([]uint64, cells),
	}
}

// clear drops every item and invalidates all outstanding versions.
func (q *entropyQueue) clear() {
	q.heap.Clear()
	for i := range q.versions {
		q.versions[i]++
	}
}

// push records a new entropy for cell; earlier items of cell become stale.
func (q *entropyQueue) push(cell int, entropy float64) {
	q.versions[cell]++
	q.heap.Push(item{cell: cell, entropy: entropy, version: q.versions[cell]})
}

// pop returns the lowest-entropy live cell for which skip is false.
func (q *entropyQueue) pop(skip func(cell int) bool) (int, bool) {
	for {
		v, ok := q.heap.Pop()
		if !ok {
			return 0, false
		}
		it := v.(item)
		if it.version != q.versions[it.cell] || skip(it.cell) {
			continue
		}
		return it.cell, true
	}
}

// size returns the number of items, stale ones included.
func (q *entropyQueue) size() int { return q.heap.Size() }
