package wfc

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tilewave/tile"
)

// Sentinel errors for grid construction and solving.
var (
	// ErrNilCatalog is returned when NewGrid receives no catalog.
	ErrNilCatalog = errors.New("wfc: catalog is nil")

	// ErrBadTopology indicates a neighbour slot that is out of range or self-referencing.
	ErrBadTopology = errors.New("wfc: bad topology")

	// ErrCellIndex indicates a cell index outside the grid.
	ErrCellIndex = errors.New("wfc: cell index out of range")

	// ErrAlreadyCollapsed is returned by Collapse on a collapsed cell.
	ErrAlreadyCollapsed = errors.New("wfc: cell already collapsed")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("wfc: invalid option supplied")

	// ErrInconsistent indicates two adjacent collapsed cells whose patterns
	// are not compatible across their shared side.
	ErrInconsistent = errors.New("wfc: inconsistent assignment")

	// ErrWeightDrift is the panic payload of a failed weighted walk.
	ErrWeightDrift = errors.New("wfc: sum of weights does not match admissible patterns")

	// ErrContradiction marks a cell with no admissible pattern left.
	ErrContradiction = errors.New("wfc: contradiction, no admissible pattern for cell")
)

// NoiseRange is the default upper bound (exclusive) of the entropy jitter.
const NoiseRange = 0.001

// Topology is the fixed adjacency a Grid is built on: Len cells, each with
// exactly one neighbour per side.
type Topology interface {
	Len() int
	Neighbour(cell int, side tile.Side) int
}

// Observer is implemented by the orchestrator that decides collapse order
// and contradiction recovery.
type Observer interface {
	// OnContradiction is called when cell has no admissible pattern left.
	OnContradiction(cell int)

	// OnEntropyChanged is called after propagation shrank cell's admissible set.
	OnEntropyChanged(cell int)
}

// NopObserver ignores every notification.
type NopObserver struct{}

// OnContradiction implements Observer.
func (NopObserver) OnContradiction(int) {}

// OnEntropyChanged implements Observer.
func (NopObserver) OnEntropyChanged(int) {}

// ObserverFuncs adapts two optional funcs to Observer.
type ObserverFuncs struct {
	Contradiction  func(cell int)
	EntropyChanged func(cell int)
}

// OnContradiction implements Observer.
func (o ObserverFuncs) OnContradiction(cell int) {
	if o.Contradiction != nil {
		o.Contradiction(cell)
	}
}

// OnEntropyChanged implements Observer.
func (o ObserverFuncs) OnEntropyChanged(cell int) {
	if o.EntropyChanged != nil {
		o.EntropyChanged(cell)
	}
}

// Option configures a Grid via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by NewGrid.
type Option func(*Options)

// Options holds the tunables of a Grid.
type Options struct {
	// Rand drives collapse choices and entropy jitter.
	Rand *rand.Rand

	// Noise is the exclusive upper bound of the per-cell entropy jitter.
	// Zero disables jitter.
	Noise float64

	// OnRemove is called for every entry removed by propagation.
	OnRemove func(cell, pattern int)

	err error
}

// DefaultOptions returns Options with a time-independent seed of 1,
// NoiseRange jitter and a no-op OnRemove hook.
func DefaultOptions() Options {
	return Options{
		Rand:     rand.New(rand.NewSource(1)),
		Noise:    NoiseRange,
		OnRemove: func(int, int) {},
	}
}

// WithSeed seeds a fresh RNG (deterministic runs).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an existing RNG. Nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithNoise sets the jitter range; n must be in [0, 1).
func WithNoise(n float64) Option {
	return func(o *Options) {
		if n < 0 || n >= 1 {
			o.err = fmt.Errorf("%w: noise must be in [0,1), got %g", ErrOptionViolation, n)
			return
		}
		o.Noise = n
	}
}

// WithOnRemove registers a hook for every propagation removal.
func WithOnRemove(fn func(cell, pattern int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRemove = fn
		}
	}
}
