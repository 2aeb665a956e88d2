// SPDX-License-Identifier: MIT
// Package: tilewave/mesh
//
// platonic.go: icosahedron chord data and the dual construction of the dodecahedron.

package mesh

// Icosahedron labelling ("two pentagon rings + poles"):
//   - top pole 0, top ring 1-2-3-4-5-1;
//   - bottom ring 6-7-8-9-10-6, bottom pole 11;
//   - Ti connects to Bi and B(i+1 mod 5).
const icosahedronVertices = 12

var icosahedronChords = []chord{
	// top pole to top ring
	{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
	// top ring cycle
	{U: 1, V: 2}, {U: 1, V: 5}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5},
	// cross (top→bottom)
	{U: 1, V: 6}, {U: 1, V: 7}, {U: 2, V: 7}, {U: 2, V: 8}, {U: 3, V: 8},
	{U: 3, V: 9}, {U: 4, V: 9}, {U: 4, V: 10}, {U: 5, V: 6}, {U: 5, V: 10},
	// bottom ring cycle
	{U: 6, V: 7}, {U: 6, V: 10}, {U: 7, V: 8}, {U: 8, V: 9}, {U: 9, V: 10},
	// bottom pole to bottom ring
	{U: 6, V: 11}, {U: 7, V: 11}, {U: 8, V: 11}, {U: 9, V: 11}, {U: 10, V: 11},
}

// triangles returns every 3-clique {a<b<c} of the chord graph in
// lexicographic order.
func triangles(n int, chords []chord) [][]int {
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range chords {
		adj[e.U][e.V] = true
		adj[e.V][e.U] = true
	}

	var out [][]int
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if !adj[a][b] {
				continue
			}
			for c := b + 1; c < n; c++ {
				if adj[a][c] && adj[b][c] {
					out = append(out, []int{a, b, c})
				}
			}
		}
	}
	return out
}

// orient reverses faces in place so that every shared edge is traversed in
// opposite directions by its two faces. The walk is breadth-first from
// face 0, which keeps its given winding.
func orient(faces [][]int) error {
	byChord := make(map[chord][]int, len(faces)*3/2)
	for f, face := range faces {
		for i := range face {
			k := undirected(face[i], face[(i+1)%len(face)])
			byChord[k] = append(byChord[k], f)
		}
	}

	seen := make([]bool, len(faces))
	queue := []int{0}
	seen[0] = true
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		face := faces[f]
		for i := range face {
			u, v := face[i], face[(i+1)%len(face)]
			for _, g := range byChord[undirected(u, v)] {
				if g == f || seen[g] {
					continue
				}
				if hasArc(faces[g], u, v) {
					reverse(faces[g])
				}
				seen[g] = true
				queue = append(queue, g)
			}
		}
	}
	for f := range seen {
		if !seen[f] {
			return ErrDisconnected
		}
	}
	return nil
}

// dualFaces returns, for every vertex v of an oriented triangle mesh, the
// cyclic list of triangles around v. The winding matches the input: from
// triangle (v,a,b) the next one is the triangle holding the arc v→b.
func dualFaces(n int, tris [][]int) ([][]int, error) {
	owner := make(map[arc]int, len(tris)*3)
	for f, t := range tris {
		for i := range t {
			owner[arc{t[i], t[(i+1)%3]}] = f
		}
	}

	out := make([][]int, n)
	for v := 0; v < n; v++ {
		start := -1
		for f, t := range tris {
			if t[0] == v || t[1] == v || t[2] == v {
				start = f
				break
			}
		}
		if start < 0 {
			return nil, ErrNotClosed
		}

		ring := []int{start}
		cur := start
		for {
			b := after(tris[cur], v, 2)
			next, ok := owner[arc{v, b}]
			if !ok {
				return nil, ErrNotClosed
			}
			if next == start {
				break
			}
			if len(ring) > len(tris) {
				return nil, ErrNotOriented
			}
			ring = append(ring, next)
			cur = next
		}
		out[v] = ring
	}
	return out, nil
}

// dodecahedronFaces is the dodecahedron as the dual of the icosahedron:
// 12 pentagons over 20 vertices (icosahedron triangles).
func dodecahedronFaces() ([][]int, error) {
	tris := triangles(icosahedronVertices, icosahedronChords)
	if err := orient(tris); err != nil {
		return nil, err
	}
	return dualFaces(icosahedronVertices, tris)
}

// dihedronFaces is the degenerate polyhedron of two n-gons glued along
// their boundary.
func dihedronFaces(n int) [][]int {
	top := make([]int, n)
	bottom := make([]int, n)
	for i := 0; i < n; i++ {
		top[i] = i
		bottom[n-1-i] = i
	}
	return [][]int{top, bottom}
}

func undirected(u, v int) chord {
	if u > v {
		u, v = v, u
	}
	return chord{U: u, V: v}
}

func hasArc(face []int, u, v int) bool {
	for i := range face {
		if face[i] == u && face[(i+1)%len(face)] == v {
			return true
		}
	}
	return false
}

// after returns the vertex k steps after v in face.
func after(face []int, v, k int) int {
	for i := range face {
		if face[i] == v {
			return face[(i+k)%len(face)]
		}
	}
	return -1
}

func reverse(face []int) {
	for i, j := 0, len(face)-1; i < j; i, j = i+1, j-1 {
		face[i], face[j] = face[j], face[i]
	}
}
