// Package wfc implements the constrained tile-assignment core ("wave function
// collapse") over a fixed graph of triangular cells.
//
// What
//
//   - Every Cell starts with one PatternEntry per catalog pattern, all admissible.
//   - Entropy: Shannon entropy of the weighted admissible distribution plus a
//     small fixed jitter that breaks ties between otherwise identical cells.
//   - Collapse: weight-proportional random choice among admissible entries.
//   - Propagation: after a cell changes, each neighbour drops every entry with
//     no compatible partner left in the changed cell; a neighbour that lost
//     something propagates onwards along its two other sides.
//   - Contradiction: a cell left with no admissible entry is reported to the
//     Observer; the core never recovers by itself.
//
// Arena
//
// Cells live in a flat slice owned by Grid and reference neighbours by index
// (Topology), so the cyclic neighbour graph holds no ownership cycles.
//
// Determinism
//
// Propagation is depth-first and runs off an explicit LIFO work list rather
// than the call stack. Follow-up items are pushed in reverse visiting order,
// so the traversal is exactly the recursive one: for the side the change
// arrived through, the two remaining sides are visited in cyclic order
// (back=AB → BC, CA; back=BC → CA, AB; back=CA → AB, BC).
// With a fixed seed (WithSeed) the whole run is reproducible.
//
// Complexity (P = catalog size)
//
//   - Entropy, RemoveAdmissible: O(1) (aggregates are maintained incrementally).
//   - Collapse: O(P).
//   - One propagation step: O(P²) compatibility checks.
//
// Errors
//
//   - ErrNilCatalog, ErrBadTopology, ErrCellIndex, ErrAlreadyCollapsed,
//     ErrOptionViolation: rejected inputs.
//   - ErrInconsistent: Consistent found an incompatible collapsed pair.
//   - ErrWeightDrift: panic payload when the weighted walk in Collapse fails,
//     meaning the running Σw no longer matches the admissible entries.
//   - ErrContradiction: for orchestrators that surface contradictions as errors.
package wfc
