package wfc

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/tilewave/tile"
)

// Grid is the arena of cells built over a Topology. It is not safe for
// concurrent use: collapse and propagation mutate cells reachable from
// several directions.
type Grid struct {
	cells []Cell
	cat   *tile.Catalog
	obs   Observer
	opts  Options

	// work is the LIFO list of pending propagation steps (workItem values).
	work *arraystack.Stack
}

// NewGrid validates the topology, applies options and initialises every cell
// with the full catalog. A nil Observer is replaced by NopObserver.
// Complexity: O(V·P), V = topo.Len(), P = cat.Len().
func NewGrid(topo Topology, cat *tile.Catalog, obs Observer, opts ...Option) (*Grid, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if topo == nil || topo.Len() == 0 {
		return nil, fmt.Errorf("%w: no cells", ErrBadTopology)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if obs == nil {
		obs = NopObserver{}
	}

	n := topo.Len()
	g := &Grid{
		cells: make([]Cell, n),
		cat:   cat,
		obs:   obs,
		opts:  o,
		work:  arraystack.New(),
	}

	for id := 0; id < n; id++ {
		c := &g.cells[id]
		for _, side := range tile.Sides() {
			nb := topo.Neighbour(id, side)
			if nb < 0 || nb >= n || nb == id {
				return nil, fmt.Errorf("%w: cell %d side %s -> %d", ErrBadTopology, id, side, nb)
			}
			c.neighbours[side] = nb
		}
		c.InitPatterns(cat, cat.SumWeights(), cat.SumWeightsLogWeights(), o.Rand.Float64()*o.Noise)
	}

	return g, nil
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Catalog returns the shared pattern catalog.
func (g *Grid) Catalog() *tile.Catalog { return g.cat }

// Cell returns the cell at id, or nil when id is out of range.
func (g *Grid) Cell(id int) *Cell {
	if !g.valid(id) {
		return nil
	}
	return &g.cells[id]
}

// Collapse picks a pattern for cell id (see Cell.collapse). An empty
// admissible set is reported through Observer.OnContradiction and leaves
// the cell uncollapsed.
func (g *Grid) Collapse(id int) error {
	if !g.valid(id) {
		return fmt.Errorf("%w: %d", ErrCellIndex, id)
	}
	c := &g.cells[id]
	if c.collapsed {
		return fmt.Errorf("%w: %d", ErrAlreadyCollapsed, id)
	}
	if _, ok := c.collapse(g.opts.Rand); !ok {
		g.reportContradiction(id)
	}
	return nil
}

// Reset restores every cell to the full catalog and clears all choices.
// Entropy jitter is kept: it is fixed per cell for the grid's lifetime.
func (g *Grid) Reset() {
	g.work.Clear()
	for i := range g.cells {
		g.cells[i].Reset(g.cat.SumWeights(), g.cat.SumWeightsLogWeights())
	}
}

// Done reports whether every cell is collapsed.
func (g *Grid) Done() bool {
	for i := range g.cells {
		if !g.cells[i].collapsed {
			return false
		}
	}
	return true
}

// Snapshot returns the chosen catalog index per cell, -1 where uncollapsed.
func (g *Grid) Snapshot() []int {
	out := make([]int, len(g.cells))
	for i := range g.cells {
		if idx, ok := g.cells[i].Saved(); ok {
			out[i] = idx
		} else {
			out[i] = noSaved
		}
	}
	return out
}

// Consistent checks every pair of adjacent collapsed cells against the
// compatibility rule of their shared side.
// Complexity: O(V).
func (g *Grid) Consistent() error {
	for id := range g.cells {
		p, ok := g.cells[id].Saved()
		if !ok {
			continue
		}
		for _, side := range tile.Sides() {
			nb := g.cells[id].neighbours[side]
			q, ok := g.cells[nb].Saved()
			if !ok {
				continue
			}
			if !g.cat.Compatible(p, q, side) {
				return fmt.Errorf("%w: cell %d (%v) and %d (%v) across %s",
					ErrInconsistent, id, g.cat.At(p), nb, g.cat.At(q), side)
			}
		}
	}
	return nil
}

func (g *Grid) valid(id int) bool {
	return id >= 0 && id < len(g.cells)
}

// reportContradiction notifies the observer once per cell between resets.
func (g *Grid) reportContradiction(id int) {
	c := &g.cells[id]
	if c.contradicted {
		return
	}
	c.contradicted = true
	g.obs.OnContradiction(id)
}
