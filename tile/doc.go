// Package tile defines the immutable vocabulary shared by every cell of a
// tile graph: corner labels, triangle sides, pattern definitions and the
// weighted pattern catalog.
//
// What
//
//   - Label: biome tag attached to a triangle corner (Ground, Sea, City).
//   - Side: one of the three edges AB, BC, CA of an isosceles triangle
//
//     B
//     /  \
//     A -- C      with |AB| == |BC|
//
//   - Pattern: three corner labels plus a positive relative weight.
//   - Catalog: ordered, immutable list of patterns with the aggregate
//     statistics Σw and Σw·log2(w) precomputed once.
//
// Compatibility
//
// Two patterns may share an edge when the labels of the two corners on that
// edge coincide. Seen from pattern p across side s towards neighbour o:
//
//	AB: p.A == o.C && p.B == o.B
//	BC: p.B == o.B && p.C == o.A
//	CA: p.C == o.A && p.A == o.C
//
// Side.Opposite maps the side of p to the side of o that carries the same
// edge: AB↔BC inside an apex fan, CA↔CA across a base edge.
//
// Catalog files
//
// Catalogs load from YAML (gopkg.in/yaml.v3):
//
//	patterns:
//	  - {name: shore, a: ground, b: sea, c: sea, weight: 3}
//	  - {name: plain, a: ground, b: ground, c: ground, weight: 8}
//
// Errors
//
//   - ErrEmptyCatalog  a catalog must hold at least one pattern.
//   - ErrBadWeight     weights are strictly positive integers.
//   - ErrUnknownLabel  label name or value outside the enumeration.
//   - ErrUnknownSide   side value outside {AB, BC, CA}.
package tile
