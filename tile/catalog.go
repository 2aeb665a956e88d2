package tile

import "fmt"

// Catalog is the ordered, immutable set of patterns every cell starts from.
// Index order is fixed at construction and shared by all cells, so a pattern
// is addressed by its catalog index everywhere else in the module.
type Catalog struct {
	patterns []Pattern

	// Aggregates over the full catalog, computed once and handed to every
	// cell on init and reset instead of being recomputed per cell.
	sumWeights           float64
	sumWeightsLogWeights float64

	// compat[side][i][j] caches patterns[i].IsCompatible(patterns[j], side).
	compat [NumSides][][]bool
}

// NewCatalog validates and freezes patterns. The slice is copied.
// Complexity: O(P²) for the compatibility table, P = len(patterns).
func NewCatalog(patterns []Pattern) (*Catalog, error) {
	if len(patterns) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{patterns: make([]Pattern, len(patterns))}
	copy(c.patterns, patterns)

	for i, p := range c.patterns {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("tile: pattern %d: %w", i, err)
		}
		if p.Name == "" {
			c.patterns[i].Name = fmt.Sprintf("p%d", i)
		}
		c.sumWeights += float64(p.Weight)
		c.sumWeightsLogWeights += p.WeightLogWeight()
	}

	n := len(c.patterns)
	for _, side := range Sides() {
		table := make([][]bool, n)
		for i := range c.patterns {
			row := make([]bool, n)
			for j := range c.patterns {
				row[j] = c.patterns[i].IsCompatible(c.patterns[j], side)
			}
			table[i] = row
		}
		c.compat[side] = table
	}

	return c, nil
}

// MustCatalog is NewCatalog for static tables; it panics on error.
func MustCatalog(patterns []Pattern) *Catalog {
	c, err := NewCatalog(patterns)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of patterns.
func (c *Catalog) Len() int { return len(c.patterns) }

// At returns the pattern at catalog index i.
func (c *Catalog) At(i int) Pattern { return c.patterns[i] }

// Patterns returns a copy of the ordered pattern list.
func (c *Catalog) Patterns() []Pattern {
	out := make([]Pattern, len(c.patterns))
	copy(out, c.patterns)
	return out
}

// SumWeights returns Σw over the whole catalog.
func (c *Catalog) SumWeights() float64 { return c.sumWeights }

// SumWeightsLogWeights returns Σw·log2(w) over the whole catalog.
func (c *Catalog) SumWeightsLogWeights() float64 { return c.sumWeightsLogWeights }

// Compatible is the cached form of At(i).IsCompatible(At(j), side).
func (c *Catalog) Compatible(i, j int, side Side) bool {
	return c.compat[side][i][j]
}

// defaultLabelWeights biases the built-in catalog: oceans dominate,
// cities stay rare.
var defaultLabelWeights = [numLabels]int{
	Ground: 2,
	Sea:    3,
	City:   1,
}

// Names of the built-in catalogs.
const (
	NameDefault   = "default"
	NamePatchwork = "patchwork"
)

// DefaultCatalog returns the built-in catalog: every (A, B, C) label triple,
// weighted by the product of its per-label weights. Because every triple is
// present, any labelling of the mesh vertices is a valid assignment.
func DefaultCatalog() *Catalog {
	return tripleCatalog(func(Label, Label, Label) bool { return true })
}

// PatchworkCatalog keeps the triples whose A and C corners differ (18
// patterns). On a kis mesh A and C span an edge of the underlying polygon,
// so a solution is a proper 3-colouring of those polygons' vertices. Greedy
// collapse can dead-end here and has to restart.
func PatchworkCatalog() *Catalog {
	return tripleCatalog(func(a, _, c Label) bool { return a != c })
}

// tripleCatalog builds the weighted label triples accepted by keep, in
// A-major order.
func tripleCatalog(keep func(a, b, c Label) bool) *Catalog {
	patterns := make([]Pattern, 0, numLabels*numLabels*numLabels)
	for _, a := range Labels() {
		for _, b := range Labels() {
			for _, c := range Labels() {
				if !keep(a, b, c) {
					continue
				}
				patterns = append(patterns, Pattern{
					Name:   fmt.Sprintf("%s-%s-%s", a, b, c),
					A:      a,
					B:      b,
					C:      c,
					Weight: defaultLabelWeights[a] * defaultLabelWeights[b] * defaultLabelWeights[c],
				})
			}
		}
	}
	return MustCatalog(patterns)
}
