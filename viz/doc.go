// Package viz holds the presentation-side collaborators of the engine:
// screen configuration, the color palette and gradients, box-drawn ASCII
// frames, and the textual status messages for run outcomes.
//
// What:
//
//   - Config maps a pixel surface (Width×Height, Rows, FPS) to grid
//     dimensions: CellSize = Height/Rows, Cols = Width/CellSize. The
//     engine consumes only the derived Rows×Cols; everything else is for
//     renderers.
//   - RGB, Lerp, and Gradient provide the linear Start→End color ramp
//     painted along a reconstructed path.
//   - Render draws a grid as a bordered ASCII frame, one rune per cell
//     state, suitable for terminal animation; RenderTo appends into a
//     caller-owned builder to avoid per-frame allocation.
//   - StatusLine formats the outcome messages ("no path", "cancelled",
//     "path of length N found in T").
//
// The engine never imports this package; the dependency points the other
// way, so alternative frontends (see the stream package) can replace it
// wholesale.
package viz
