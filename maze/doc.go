// Package maze generates obstacle layouts on a grid.Grid.
//
// What:
//
//   - Carve digs a perfect maze with a randomized recursive backtracker:
//     carveable cells sit at even coordinates, odd coordinates are the
//     walls between them, and every carve jumps two cells while clearing
//     the single wall midway. Every carve both visits a new lattice cell
//     and removes exactly one wall, so the result is singly connected and
//     acyclic — exactly one simple path between any two corridor cells.
//     On completion the origin (0,0) becomes Start and the cell at
//     (last row, second-to-last column) becomes End; that offset lands on
//     the carve lattice, keeping End reachable and distinct from Start.
//   - Scatter builds a random scenario instead: each cell becomes an
//     obstacle with fixed probability (default 0.3), then Start and End
//     are drawn uniformly, resampling End until the two differ. No
//     reachability guarantee is made — "no path" is an expected outcome.
//
// Options:
//
//   - WithRand / WithSeed: deterministic generation from a caller-supplied
//     RNG or seed; an unseeded run draws from the wall clock.
//   - WithObstacleProb: Scatter's Bernoulli probability, in [0,1).
//   - WithOnCarve / WithOnScatter: per-step hooks for animating
//     generation, one carve or obstacle placement per call.
//   - WithContext: cooperative cancellation, polled once per loop turn.
//
// Errors:
//
//   - ErrNilGrid: nil grid.
//   - ErrTooSmall: grid too small for the generator (Carve needs at least
//     two columns for its End offset; Scatter needs at least two cells).
//   - ErrOptionViolation: invalid option value (e.g. probability ≥ 1).
//
// Complexity: both generators are O(Rows×Cols) time, O(Rows×Cols) stack
// memory worst case for Carve, O(1) extra for Scatter.
package maze
