package mesh

import (
	"fmt"

	"github.com/katalvlaran/tilewave/tile"
)

// Validate checks that t is a closed triangle mesh a wfc.Grid can run on:
//   - at least one cell;
//   - every side points at another cell in range;
//   - links are reciprocal through tile.Side.Opposite;
//   - every cell is reachable from cell 0.
//
// Complexity: O(V).
func Validate(t *Topology) error {
	if t == nil || len(t.Cells) == 0 {
		return ErrEmptyTopology
	}

	n := len(t.Cells)
	for c, nb := range t.Cells {
		for _, s := range tile.Sides() {
			d := nb[s]
			if d < 0 || d >= n || d == c {
				return fmt.Errorf("%w: cell %d side %s -> %d", ErrDanglingSide, c, s, d)
			}
			if back := t.Cells[d][s.Opposite()]; back != c {
				return fmt.Errorf("%w: cell %d side %s -> %d, but %d side %s -> %d",
					ErrNotReciprocal, c, s, d, d, s.Opposite(), back)
			}
		}
	}

	order := Walk(t, 0)
	if len(order) != n {
		return fmt.Errorf("%w: reached %d of %d cells", ErrDisconnected, len(order), n)
	}
	return nil
}

// walker holds breadth-first traversal state over a Topology.
type walker struct {
	topo    *Topology
	queue   []int
	visited []bool
	order   []int
}

// Walk returns the cells reachable from start in breadth-first order,
// visiting sides AB, BC, CA in that order. Out-of-range links are skipped.
func Walk(t *Topology, start int) []int {
	n := len(t.Cells)
	if start < 0 || start >= n {
		return nil
	}
	w := &walker{
		topo:    t,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
		order:   make([]int, 0, n),
	}
	w.enqueue(start)
	w.loop()
	return w.order
}

func (w *walker) enqueue(id int) {
	w.visited[id] = true
	w.queue = append(w.queue, id)
}

func (w *walker) loop() {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		w.order = append(w.order, id)
		for _, s := range tile.Sides() {
			nb := w.topo.Cells[id][s]
			if nb < 0 || nb >= len(w.visited) || w.visited[nb] {
				continue
			}
			w.enqueue(nb)
		}
	}
}
