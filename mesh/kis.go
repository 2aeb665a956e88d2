// SPDX-License-Identifier: MIT
// Package: tilewave/mesh
//
// kis.go: apex-fan triangulation of closed polygon meshes and the built-in topologies.

package mesh

import (
	"fmt"

	"github.com/katalvlaran/tilewave/tile"
)

// Names of the built-in topologies.
const (
	NamePentakis = "pentakis"
	// NameBipyramid is a prefix: "bipyramid-5" is Bipyramid(5).
	NameBipyramid = "bipyramid"
)

// MinBipyramid is the smallest polygon Bipyramid accepts.
const MinBipyramid = 3

// Kis fan-triangulates every face of a closed, consistently oriented polygon
// mesh and returns the resulting cell adjacency. Cells are numbered face by
// face; triangle i of face f (A = f[i], B = apex, C = f[i+1]) gets id
// offset(f)+i.
//
// Returns ErrBadFace for faces with fewer than 3 or repeated vertices,
// ErrNotOriented when a directed edge appears twice and ErrNotClosed when an
// edge has no partner. The result always passes Validate.
// Complexity: O(E) over polygon edges.
func Kis(name string, faces [][]int) (*Topology, error) {
	if len(faces) == 0 {
		return nil, ErrEmptyTopology
	}

	offset := make([]int, len(faces)+1)
	owner := make(map[arc]int)
	for f, face := range faces {
		if len(face) < 3 {
			return nil, fmt.Errorf("%w: face %d has %d vertices", ErrBadFace, f, len(face))
		}
		seen := make(map[int]bool, len(face))
		for i, v := range face {
			if seen[v] {
				return nil, fmt.Errorf("%w: face %d repeats vertex %d", ErrBadFace, f, v)
			}
			seen[v] = true

			a := arc{From: v, To: face[(i+1)%len(face)]}
			if _, dup := owner[a]; dup {
				return nil, fmt.Errorf("%w: edge %d→%d", ErrNotOriented, a.From, a.To)
			}
			owner[a] = offset[f] + i
		}
		offset[f+1] = offset[f] + len(face)
	}

	t := &Topology{Name: name, Cells: make([][tile.NumSides]int, offset[len(faces)])}
	for f, face := range faces {
		k := len(face)
		for i := range face {
			id := offset[f] + i
			across, ok := owner[arc{From: face[(i+1)%k], To: face[i]}]
			if !ok {
				return nil, fmt.Errorf("%w: edge %d→%d", ErrNotClosed, face[i], face[(i+1)%k])
			}
			t.Cells[id][tile.AB] = offset[f] + (i+k-1)%k
			t.Cells[id][tile.BC] = offset[f] + (i+1)%k
			t.Cells[id][tile.CA] = across
		}
	}

	return t, nil
}

// Pentakis returns the 60-cell pentakis dodecahedron.
func Pentakis() *Topology {
	faces, err := dodecahedronFaces()
	if err != nil {
		panic(fmt.Sprintf("mesh: dodecahedron: %v", err))
	}
	t, err := Kis(NamePentakis, faces)
	if err != nil {
		panic(fmt.Sprintf("mesh: pentakis: %v", err))
	}
	return t
}

// Bipyramid returns the 2n-cell kis of an n-gon dihedron: two fans of n
// triangles joined rim to rim. Bipyramid(3) holds 3-cycles of mutually
// adjacent cells in each fan.
// Returns ErrBadFace when n < MinBipyramid.
func Bipyramid(n int) (*Topology, error) {
	if n < MinBipyramid {
		return nil, fmt.Errorf("%w: bipyramid needs n >= %d, got %d", ErrBadFace, MinBipyramid, n)
	}
	return Kis(fmt.Sprintf("%s-%d", NameBipyramid, n), dihedronFaces(n))
}
