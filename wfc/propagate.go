package wfc

import (
	"fmt"

	"github.com/katalvlaran/tilewave/tile"
)

// workItem is one pending propagation step: re-filter target against
// source, which touches target through source's side.
type workItem struct {
	target int
	source int
	side   tile.Side
}

// PropagateFromCollapse propagates a change of cell id to its three
// neighbours (AB, then BC, then CA) and runs until no cell changes.
func (g *Grid) PropagateFromCollapse(id int) error {
	if !g.valid(id) {
		return fmt.Errorf("%w: %d", ErrCellIndex, id)
	}

	sides := tile.Sides()
	for i := len(sides) - 1; i >= 0; i-- {
		s := sides[i]
		g.work.Push(workItem{target: g.cells[id].neighbours[s], source: id, side: s})
	}
	g.drain()

	return nil
}

// drain pops work items until the list is empty.
func (g *Grid) drain() {
	for {
		v, ok := g.work.Pop()
		if !ok {
			return
		}
		g.step(v.(workItem))
	}
}

// step is one propagate(target ← source, side) call:
//  1. collapsed targets are final;
//  2. an emptied, uncollapsed source is a contradiction and stops this branch;
//  3. every target entry without a compatible admissible source entry is removed;
//  4. on change, notify the observer and queue the target's two other sides.
func (g *Grid) step(it workItem) {
	target := &g.cells[it.target]
	if target.collapsed {
		return
	}

	source := &g.cells[it.source]
	if !source.collapsed && !source.Possibilities().Any() {
		g.reportContradiction(it.source)
		return
	}

	changed := false
	target.Possibilities().Each(func(e PatternEntry, idx int) bool {
		if !g.supported(source, e.Pattern, it.side) {
			target.RemoveAdmissible(idx)
			g.opts.OnRemove(it.target, e.Pattern)
			changed = true
		}
		return true
	})
	if !changed {
		return
	}

	// An emptied target has no entropy to report and nothing to spread.
	if !target.Possibilities().Any() {
		g.reportContradiction(it.target)
		return
	}
	g.obs.OnEntropyChanged(it.target)

	back := g.backSide(it.target, it.source, it.side)
	first := tile.Side((int(back) + 1) % tile.NumSides)
	second := tile.Side((int(back) + 2) % tile.NumSides)

	// LIFO: push the later branch first.
	g.work.Push(workItem{target: target.neighbours[second], source: it.target, side: second})
	g.work.Push(workItem{target: target.neighbours[first], source: it.target, side: first})
}

// supported reports whether any admissible entry of source accepts pattern
// across side.
func (g *Grid) supported(source *Cell, pattern int, side tile.Side) bool {
	found := false
	source.Possibilities().Each(func(e PatternEntry, _ int) bool {
		if g.cat.Compatible(e.Pattern, pattern, side) {
			found = true
			return false
		}
		return true
	})
	return found
}

// backSide returns the side of target that faces source. Reciprocal
// topologies answer with via.Opposite(); others fall back to a lookup.
func (g *Grid) backSide(target, source int, via tile.Side) tile.Side {
	nb := g.cells[target].neighbours
	if opp := via.Opposite(); nb[opp] == source {
		return opp
	}
	for _, s := range tile.Sides() {
		if nb[s] == source {
			return s
		}
	}
	return via.Opposite()
}
