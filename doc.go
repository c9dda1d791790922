// Package pathviz is an interactive visualiser for grid-based pathfinding:
// A*, Dijkstra and Greedy Best-First Search over a rectangular cell grid,
// with maze and random-scenario generators to build the terrain.
//
// 🚀 What is in the box?
//
//	A small, composable library that brings together:
//		• grid/   — the cell grid: states, scores, parent links, reset modes
//		• maze/   — perfect-maze carving (recursive backtracker) & random scatter
//		• search/ — the unified best-first engine with a stable priority queue
//		• path/   — path reconstruction as a lazy Start→End trace
//		• viz/    — screen configuration, palette, gradients, ASCII frames
//		• stream/ — WebSocket hub pushing per-step state to external renderers
//
// ✨ Why this shape?
//
//   - Step-driven – every loop (carve, search, trace) yields once per
//     iteration, so pausing, cancelling and frame-by-frame animation need
//     no threads
//   - Deterministic – seeded RNGs and FIFO tie-breaking in the queue make
//     every run reproducible
//   - Extensible – hooks (OnDequeue, OnOpen, OnVisit…) let any renderer
//     observe the search without the engine knowing about it
//
// Quick ASCII example:
//
//	A ░ · · ·
//	· ░ · ░ ·
//	· ░ · ░ ·
//	· · · ░ B
//
//	A is Start, B is End, ░ are obstacles; the engine threads the gap.
//
// The cmd/pathviz driver wires everything into a terminal animation:
//
//	go run ./cmd/pathviz --rows 35 --algorithm astar --maze
package pathviz
