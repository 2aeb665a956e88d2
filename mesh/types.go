package mesh

import (
	"errors"

	"github.com/katalvlaran/tilewave/tile"
)

// Sentinel errors for topology construction and validation.
var (
	// ErrEmptyTopology indicates a topology without cells.
	ErrEmptyTopology = errors.New("mesh: topology has no cells")

	// ErrDanglingSide indicates a side pointing outside the topology or to its own cell.
	ErrDanglingSide = errors.New("mesh: side points outside the topology")

	// ErrNotReciprocal indicates c.s → d without d.Opposite(s) → c.
	ErrNotReciprocal = errors.New("mesh: neighbour link is not reciprocal")

	// ErrDisconnected indicates cells unreachable from cell 0.
	ErrDisconnected = errors.New("mesh: topology is not connected")

	// ErrBadFace indicates a polygon with fewer than 3 vertices or a repeated vertex.
	ErrBadFace = errors.New("mesh: bad polygon face")

	// ErrNotClosed indicates a polygon edge without a partner face.
	ErrNotClosed = errors.New("mesh: polygon mesh is not closed")

	// ErrNotOriented indicates a directed polygon edge used twice.
	ErrNotOriented = errors.New("mesh: polygon mesh is not consistently oriented")

	// ErrUnknownTopology indicates a name ByName does not know.
	ErrUnknownTopology = errors.New("mesh: unknown topology")
)

// Topology is a list of triangular cells with one neighbour per side.
// It satisfies wfc.Topology.
type Topology struct {
	Name  string               `yaml:"name,omitempty"`
	Cells [][tile.NumSides]int `yaml:"cells"`
}

// Len returns the number of cells.
func (t *Topology) Len() int { return len(t.Cells) }

// Neighbour returns the cell across side of cell.
func (t *Topology) Neighbour(cell int, side tile.Side) int {
	return t.Cells[cell][side]
}

// chord is an undirected edge {U,V} with U < V.
type chord struct {
	U, V int
}

// arc is a directed polygon edge.
type arc struct {
	From, To int
}
