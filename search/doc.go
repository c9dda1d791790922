// Package search runs best-first pathfinding over a grid.Grid, unifying
// A*, Dijkstra, and Greedy Best-First Search behind a single engine that
// differs only in its ordering key.
//
// Overview:
//
//   - A Runner is a resumable stepper: each Step() performs exactly one
//     dequeue-and-relax cycle and hands control back, so an outer render
//     loop can animate, pause, or cancel mid-search without threads.
//     Run() drives Step to completion for non-interactive use.
//   - Scoring per algorithm: A* orders the frontier by g+h, Dijkstra by g
//     alone, Greedy by h alone. Relaxation and termination are shared:
//     unit edge cost, strict improvement, stop when End is dequeued.
//   - The frontier is a min-heap keyed by (score, insertion sequence). The
//     strictly increasing sequence number breaks numeric ties FIFO, so
//     traversal order is deterministic rather than implementation-defined.
//   - Stale entries: every strict g improvement re-enqueues the cell; a
//     popped entry whose recorded g no longer matches the cell's live g
//     has been superseded and is discarded without effect.
//
// Cooperative control:
//
//   - A Control handle carries the pause, cancel, and quick-mode flags.
//     Step polls pause/cancel once per cycle; pausing suspends progress
//     without losing state, cancelling performs a search-mode grid reset
//     and finishes with ErrCancelled. Quick mode is advisory for drivers
//     (skip per-step redraws); it never changes algorithmic behavior.
//   - A context.Context cancels the same way the Control handle does.
//
// Hooks (OnDequeue, OnVisit, OnOpen) expose per-step state changes for
// incremental rendering; the engine itself never draws.
//
// Termination ⇒ grid consistency: every exit path — found, exhausted,
// cancelled — leaves the grid either annotated with a valid result or
// reset to a clean searchable state. No stale Open/Visited marks survive
// inconsistently with scores.
//
// Complexity: O(V log V) time on an R×C grid (V = R×C, E ≤ 4V), O(V)
// memory.
//
// Errors (sentinel):
//
//   - ErrNilGrid:           nil grid passed to New.
//   - ErrMissingEndpoints:  Start or End unset (caller precondition).
//   - ErrNoPath:            frontier exhausted before reaching End.
//   - ErrCancelled:         run aborted via Control or context.
//   - ErrUnknownAlgorithm:  unparsable algorithm name.
//   - ErrOptionViolation:   invalid option value.
package search
