// Package grid models the rectangular cell grid that every generator and
// search in this module operates on.
//
// What:
//
//   - Grid owns a fixed Rows×Cols collection of Cells, allocated once at
//     construction and reused for the grid's whole lifetime; only mutable
//     fields are ever reset, never the cells themselves.
//   - Each Cell carries a visual State (Normal, Start, End, Obstacle, Open,
//     Visited, Path), a cost-from-start G, a heuristic H, and a non-owning
//     Parent index used for path reconstruction.
//   - Neighbours(cell, step) answers bounds-checked axial adjacency: step=1
//     for search moves, step=2 for maze-carving jumps over wall cells.
//   - Reset(ResetAll) wipes everything including Start/End; Reset(ResetSearch)
//     clears only search residue so another run can start on the same
//     obstacle layout.
//
// Invariants:
//
//   - At most one Start and one End at any time; they never coincide, and
//     obstacles never overwrite them (such designations are silent no-ops).
//   - G is Unreached or ≥ 0 and only ever decreases within a single run.
//   - A finite-G cell's Parent chain reaches Start within G hops.
//
// Errors:
//
//   - ErrBadDims: non-positive row or column count at construction.
//
// Complexity: all single-cell operations are O(1); resets are O(Rows×Cols).
package grid
