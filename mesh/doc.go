// Package mesh supplies the fixed adjacency graphs a wfc.Grid is built on.
//
// A Topology is a flat list of triangular cells; Cells[c][s] is the index of
// the cell across side s (tile.AB, tile.BC, tile.CA) of cell c. Everything
// here is combinatorial: no coordinates, no geometry.
//
// Kis construction
//
// Every topology in this package is the apex-fan ("kis") triangulation of a
// closed, consistently oriented polygon mesh. Face (v0 … vk-1) yields k
// triangles; triangle i has A = vi, B = the face apex, C = vi+1, so
//
//	BC of triangle i   meets  AB of triangle i+1   (leg shared in the fan)
//	CA of triangle i   meets  CA of the triangle across edge vi-vi+1
//
// which is exactly the tile.Side.Opposite mapping (AB↔BC, CA↔CA), and makes
// the corner labels of tile.Pattern agree along every shared edge.
//
// Built-ins
//
//   - Pentakis(): 60 cells, kis of the dodecahedron. The dodecahedron is taken
//     as the dual of the icosahedron chord table: triangles are found as
//     3-cliques, oriented by breadth-first walk, and the faces around each
//     icosahedron vertex become one pentagon.
//   - Bipyramid(n): 2n cells, kis of the two faces of an n-gon.
//
// Errors
//
//   - ErrEmptyTopology, ErrDanglingSide, ErrNotReciprocal, ErrDisconnected:
//     reported by Validate.
//   - ErrBadFace, ErrNotClosed, ErrNotOriented: reported by Kis.
//   - ErrUnknownTopology: ByName could not resolve a name.
package mesh
