package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/tilewave/tile"
	"github.com/katalvlaran/tilewave/wfc"
)

// Sentinel errors.
var (
	// ErrNoSolution is returned when every attempt ended in a contradiction.
	ErrNoSolution = errors.New("generator: no solution found")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("generator: invalid option supplied")
)

// DefaultMaxAttempts bounds the restarts of one Run.
const DefaultMaxAttempts = 10

// Option configures a Generator via functional arguments.
type Option func(*Options)

// Options holds the tunables of a Generator.
type Options struct {
	// Seed drives every random choice of the run.
	Seed int64

	// MaxAttempts is the number of fresh starts before giving up (>= 1).
	MaxAttempts int

	// Noise is the entropy jitter range handed to the grid.
	Noise float64

	// Logger receives progress records; never nil.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns seed 1, DefaultMaxAttempts, wfc.NoiseRange jitter
// and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Seed:        1,
		MaxAttempts: DefaultMaxAttempts,
		Noise:       wfc.NoiseRange,
		Logger:      slog.New(slog.DiscardHandler),
	}
}

// WithSeed sets the RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithMaxAttempts sets the attempt budget.
// Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("generator: WithMaxAttempts(%d): must be >= 1", n))
	}
	return func(o *Options) {
		o.MaxAttempts = n
	}
}

// WithNoise sets the entropy jitter range; n must be in [0, 1).
func WithNoise(n float64) Option {
	return func(o *Options) {
		if n < 0 || n >= 1 {
			o.err = fmt.Errorf("%w: noise must be in [0,1), got %g", ErrOptionViolation, n)
			return
		}
		o.Noise = n
	}
}

// WithLogger sets the structured logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of a successful Run.
type Result struct {
	// Patterns holds the chosen catalog index per cell.
	Patterns []int

	// Attempts is the number of attempts used, including the successful one.
	Attempts int

	// Contradictions is the number of failed attempts.
	Contradictions int

	Seed     int64
	Duration time.Duration

	cat *tile.Catalog
}

// Pattern returns the pattern chosen for cell.
func (r *Result) Pattern(cell int) tile.Pattern {
	return r.cat.At(r.Patterns[cell])
}

// Tiles returns the chosen pattern for every cell.
func (r *Result) Tiles() []tile.Pattern {
	out := make([]tile.Pattern, len(r.Patterns))
	for i, p := range r.Patterns {
		out[i] = r.cat.At(p)
	}
	return out
}

// LabelCounts tallies the corner labels over all cells. Every mesh vertex is
// counted once per incident cell.
func (r *Result) LabelCounts() map[tile.Label]int {
	out := make(map[tile.Label]int, len(tile.Labels()))
	for _, p := range r.Patterns {
		for _, l := range r.cat.At(p).Labels() {
			out[l]++
		}
	}
	return out
}
