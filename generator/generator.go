package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/tilewave/tile"
	"github.com/katalvlaran/tilewave/wfc"
)

const (
	tracerName = "github.com/katalvlaran/tilewave/generator"
	noCell     = -1
)

// Generator owns a grid and solves it by lowest entropy first.
// Not safe for concurrent use.
type Generator struct {
	grid   *wfc.Grid
	cat    *tile.Catalog
	opts   Options
	log    *slog.Logger
	queue  *entropyQueue
	failed int // first contradicted cell of the current attempt
}

// New builds a Generator over topo with catalog cat.
// Returns ErrOptionViolation for bad options and the wfc construction
// errors for a bad topology or nil catalog.
func New(topo wfc.Topology, cat *tile.Catalog, opts ...Option) (*Generator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g := &Generator{
		cat:    cat,
		opts:   o,
		log:    o.Logger,
		failed: noCell,
	}
	grid, err := wfc.NewGrid(topo, cat, g,
		wfc.WithSeed(o.Seed),
		wfc.WithNoise(o.Noise),
		wfc.WithOnRemove(func(int, int) { removalsTotal.Inc() }),
	)
	if err != nil {
		return nil, err
	}
	g.grid = grid
	g.queue = newEntropyQueue(grid.Len())

	return g, nil
}

// Grid exposes the underlying grid (read it, do not drive it).
func (g *Generator) Grid() *wfc.Grid { return g.grid }

// OnContradiction implements wfc.Observer: it marks the attempt as failed.
func (g *Generator) OnContradiction(cell int) {
	if g.failed == noCell {
		g.failed = cell
	}
}

// OnEntropyChanged implements wfc.Observer: it re-queues cell with its new
// entropy.
func (g *Generator) OnEntropyChanged(cell int) {
	g.queue.push(cell, g.grid.Cell(cell).Entropy())
}

// Run solves the grid from scratch. Each attempt starts from a reset grid;
// a contradiction aborts the attempt. Returns ErrNoSolution once
// MaxAttempts attempts have failed, or ctx.Err() on cancellation.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "generator.Generator.Run",
		trace.WithAttributes(
			attribute.Int("cells", g.grid.Len()),
			attribute.Int("patterns", g.cat.Len()),
			attribute.Int64("seed", g.opts.Seed),
		),
	)
	defer span.End()

	start := time.Now()
	res := &Result{Seed: g.opts.Seed, cat: g.cat}

	var lastErr error
	for attempt := 1; attempt <= g.opts.MaxAttempts; attempt++ {
		res.Attempts = attempt
		if attempt > 1 {
			restartsTotal.Inc()
		}
		g.log.Info("attempt started", slog.Int("attempt", attempt), slog.Int64("seed", g.opts.Seed))

		err := g.attempt(ctx, attempt)
		if err == nil {
			break
		}
		if !errors.Is(err, wfc.ErrContradiction) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "run aborted")
			runDuration.WithLabelValues("aborted").Observe(time.Since(start).Seconds())
			return nil, err
		}

		res.Contradictions++
		contradictionsTotal.Inc()
		span.AddEvent("contradiction", trace.WithAttributes(
			attribute.Int("attempt", attempt),
			attribute.Int("cell", g.failed),
		))
		g.log.Warn("contradiction", slog.Int("attempt", attempt), slog.Int("cell", g.failed))
		lastErr = err
	}

	res.Duration = time.Since(start)
	if !g.grid.Done() {
		runDuration.WithLabelValues("no_solution").Observe(res.Duration.Seconds())
		err := fmt.Errorf("%w after %d attempts: %w", ErrNoSolution, res.Attempts, lastErr)
		span.RecordError(err)
		span.SetStatus(codes.Error, "no solution")
		return nil, err
	}
	if err := g.grid.Consistent(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "inconsistent result")
		return nil, err
	}

	res.Patterns = g.grid.Snapshot()
	runDuration.WithLabelValues("ok").Observe(res.Duration.Seconds())
	span.SetAttributes(attribute.Int("attempts", res.Attempts))
	span.SetStatus(codes.Ok, "solved")
	g.log.Info("run solved",
		slog.Int("cells", len(res.Patterns)),
		slog.Int("attempts", res.Attempts),
		slog.Duration("duration", res.Duration),
	)

	return res, nil
}

// attempt runs one pass from a reset grid. It returns an error wrapping
// wfc.ErrContradiction when a cell runs out of patterns.
func (g *Generator) attempt(ctx context.Context, n int) error {
	g.grid.Reset()
	g.failed = noCell
	g.queue.clear()
	for id := 0; id < g.grid.Len(); id++ {
		g.queue.push(id, g.grid.Cell(id).Entropy())
	}

	skip := func(id int) bool {
		c := g.grid.Cell(id)
		return c.IsCollapsed() || c.Contradicted()
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		id, ok := g.queue.pop(skip)
		if !ok {
			return nil
		}

		if err := g.grid.Collapse(id); err != nil {
			return err
		}
		if g.failed != noCell {
			return g.contradiction(n)
		}
		collapsesTotal.Inc()
		if g.log.Enabled(ctx, slog.LevelDebug) {
			p, _ := g.grid.Cell(id).Pattern()
			g.log.Debug("collapsed", slog.Int("cell", id), slog.String("pattern", p.String()))
		}

		if err := g.grid.PropagateFromCollapse(id); err != nil {
			return err
		}
		if g.failed != noCell {
			return g.contradiction(n)
		}
	}
}

func (g *Generator) contradiction(attempt int) error {
	return fmt.Errorf("%w: cell %d (attempt %d)", wfc.ErrContradiction, g.failed, attempt)
}
