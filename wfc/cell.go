package wfc

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/tilewave/tile"
)

// noSaved marks a cell without a chosen pattern.
const noSaved = -1

// Cell is one triangular node of the grid. It owns its pattern entries and
// the running aggregates over the admissible ones; neighbours are arena
// indices, never owned.
//
// Invariants between two resets:
//   - the admissible set only shrinks;
//   - sumWeights / sumWeightsLogWeights track the admissible set through
//     RemoveAdmissible only (Collapse leaves them untouched);
//   - once collapsed, only the saved entry is admissible.
type Cell struct {
	cat        *tile.Catalog
	neighbours [tile.NumSides]int
	entries    []PatternEntry

	sumWeights           float64
	sumWeightsLogWeights float64

	collapsed    bool
	contradicted bool // a contradiction on this cell was already reported
	noise        float64
	saved        int
}

// InitPatterns gives the cell one fresh admissible entry per catalog
// pattern. The full-catalog aggregates are supplied by the caller, who
// computes them once for all cells. noise is the fixed entropy jitter of
// this cell, drawn by the caller from [0, NoiseRange).
func (c *Cell) InitPatterns(cat *tile.Catalog, sumWeights, sumWeightsLogWeights, noise float64) {
	c.cat = cat
	c.entries = make([]PatternEntry, cat.Len())
	for i := range c.entries {
		c.entries[i] = PatternEntry{Pattern: i, Admissible: true}
	}
	c.sumWeights = sumWeights
	c.sumWeightsLogWeights = sumWeightsLogWeights
	c.noise = noise
	c.collapsed = false
	c.contradicted = false
	c.saved = noSaved
}

// Entropy returns log2(Σw) − Σw·log2(w)/Σw + jitter.
// Undefined when no entry is admissible; check Contradicted first.
func (c *Cell) Entropy() float64 {
	return math.Log2(c.sumWeights) - c.sumWeightsLogWeights/c.sumWeights + c.noise
}

// IsCollapsed reports whether a pattern was chosen for this cell.
func (c *Cell) IsCollapsed() bool { return c.collapsed }

// Contradicted reports whether the cell has no admissible entry left.
func (c *Cell) Contradicted() bool { return !c.Possibilities().Any() }

// Saved returns the catalog index of the chosen pattern.
func (c *Cell) Saved() (int, bool) {
	if c.saved == noSaved {
		return 0, false
	}
	return c.entries[c.saved].Pattern, true
}

// Pattern returns the chosen pattern definition (the read-only snapshot a
// renderer consumes).
func (c *Cell) Pattern() (tile.Pattern, bool) {
	idx, ok := c.Saved()
	if !ok {
		return tile.Pattern{}, false
	}
	return c.cat.At(idx), true
}

// Possibilities is the lazy filter over this cell's admissible entries.
func (c *Cell) Possibilities() Filter { return Admissible(c.entries) }

// AdmissibleCount returns the size of the admissible set.
func (c *Cell) AdmissibleCount() int { return c.Possibilities().Count() }

// Entries returns a copy of the entry slice.
func (c *Cell) Entries() []PatternEntry {
	out := make([]PatternEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// SumWeights returns the running Σw.
func (c *Cell) SumWeights() float64 { return c.sumWeights }

// SumWeightsLogWeights returns the running Σw·log2(w).
func (c *Cell) SumWeightsLogWeights() float64 { return c.sumWeightsLogWeights }

// Noise returns the fixed entropy jitter.
func (c *Cell) Noise() float64 { return c.noise }

// Neighbour returns the arena index of the cell across side.
func (c *Cell) Neighbour(side tile.Side) int { return c.neighbours[side] }

// RemoveAdmissible rules out entry idx and subtracts its weight terms from
// the aggregates. Removing an entry twice is a no-op, and so is any removal
// from a collapsed cell: its saved entry stays admissible until Reset.
func (c *Cell) RemoveAdmissible(idx int) {
	if c.collapsed {
		return
	}
	e := &c.entries[idx]
	if !e.Admissible {
		return
	}
	e.Admissible = false

	p := c.cat.At(e.Pattern)
	c.sumWeights -= float64(p.Weight)
	c.sumWeightsLogWeights -= p.WeightLogWeight()
}

// Reset makes every entry admissible again, restores the supplied
// full-catalog aggregates and forgets the chosen pattern. Idempotent.
func (c *Cell) Reset(sumWeights, sumWeightsLogWeights float64) {
	for i := range c.entries {
		c.entries[i].Admissible = true
	}
	c.sumWeights = sumWeights
	c.sumWeightsLogWeights = sumWeightsLogWeights
	c.collapsed = false
	c.contradicted = false
	c.saved = noSaved
}

// collapse picks one admissible entry with probability proportional to its
// weight and rules out all others. ok is false when nothing is admissible.
// A walk that runs off the end means sumWeights drifted from the admissible
// set; that is a bug in aggregate maintenance and panics.
func (c *Cell) collapse(rng *rand.Rand) (idx int, ok bool) {
	if !c.Possibilities().Any() {
		return 0, false
	}

	total := int(c.sumWeights)
	if total < 1 {
		panic(fmt.Errorf("%w: Σw=%g with %d admissible", ErrWeightDrift, c.sumWeights, c.AdmissibleCount()))
	}

	remaining := rng.Intn(total)
	chosen := noSaved
	c.Possibilities().Each(func(e PatternEntry, i int) bool {
		w := c.cat.At(e.Pattern).Weight
		if remaining >= w {
			remaining -= w
			return true
		}
		chosen = i
		return false
	})
	if chosen == noSaved {
		panic(fmt.Errorf("%w: Σw=%g, walk left %d", ErrWeightDrift, c.sumWeights, remaining))
	}

	for i := range c.entries {
		if i != chosen {
			c.entries[i].Admissible = false
		}
	}
	c.saved = chosen
	c.collapsed = true

	return chosen, true
}
