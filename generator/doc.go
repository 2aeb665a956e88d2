// Package generator drives a wfc.Grid from fresh state to a complete,
// consistent assignment.
//
// A Generator is the grid's Observer. It keeps a min-priority queue of
// (entropy, cell) items with lazy invalidation: each OnEntropyChanged pushes
// a fresh item stamped with the cell's new version, and stale items are
// dropped when popped. The loop is
//
//	pop lowest-entropy live cell → Collapse → PropagateFromCollapse
//
// until every cell is collapsed. A contradiction aborts the attempt; the
// grid is reset and the run starts over, up to MaxAttempts. There is no
// backtracking.
//
// Observability:
//   - log/slog: attempt start and success at Info, contradictions at Warn,
//     each collapse at Debug;
//   - Prometheus counters tilewave_collapses_total,
//     tilewave_contradictions_total, tilewave_restarts_total,
//     tilewave_removals_total and the tilewave_run_duration_seconds histogram;
//   - one OpenTelemetry span per Run.
//
// Errors:
//   - ErrNoSolution: every attempt hit a contradiction (wraps the last
//     wfc.ErrContradiction);
//   - ErrOptionViolation: invalid option;
//   - context errors from Run's ctx.
package generator
