// Package path reconstructs the Start→End route a finished search left
// behind in the grid's parent links.
//
// What:
//
//   - Tracer walks parent references from End for exactly End.G hops,
//     prepending as it goes, then replays the route forward as a lazy,
//     finite, non-restartable sequence — one cell per Next call, each
//     paired with its fractional position along the route for gradient
//     coloring. Cells are marked Path as they are emitted, so a render
//     loop drawing one cell per frame animates the route growing.
//   - Trace is the eager convenience: the whole route at once, marked
//     and ordered Start→End with End.G+1 cells.
//
// Invariants relied on (established by the search engine):
//
//   - End.G is the definitive path length in unit edges.
//   - The parent chain from End reaches Start in exactly End.G hops.
//
// Errors:
//
//   - ErrNilGrid:     nil grid.
//   - ErrNoPath:      End is unset or was never reached.
//   - ErrBrokenTrail: a parent link is missing mid-walk (a corrupted
//     grid, e.g. mutated between search and reconstruction).
package path
