package viz

import (
	"errors"

	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/search"
)

// Sentinel errors for configuration validation.
var (
	// ErrBadSurface indicates non-positive width, height, or rows.
	ErrBadSurface = errors.New("viz: width, height and rows must each be ≥ 1")

	// ErrBadFPS indicates a non-positive frame rate.
	ErrBadFPS = errors.New("viz: fps must be ≥ 1")

	// ErrRowsExceedHeight indicates more rows than pixel rows, which
	// would derive a zero cell size.
	ErrRowsExceedHeight = errors.New("viz: rows must not exceed height")
)

// Default surface parameters.
const (
	DefaultWidth  = 1300
	DefaultHeight = 700
	DefaultRows   = 350
	DefaultFPS    = 120
)

// Config is the read-only run configuration a frontend hands the driver
// before a run: surface geometry, frame rate, and algorithm selection.
type Config struct {
	// Width and Height are the drawing surface in pixels.
	Width, Height int
	// Rows is the requested grid row count; Cols is derived.
	Rows int
	// FPS caps the animation frame rate.
	FPS int
	// Algorithm selects the search ordering policy.
	Algorithm search.Algorithm
}

// DefaultConfig mirrors the classic visualiser defaults: a 1300×700
// surface at 350 rows, 120 FPS, A*.
func DefaultConfig() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Rows:      DefaultRows,
		FPS:       DefaultFPS,
		Algorithm: search.AStar,
	}
}

// Derive validates the surface and computes the derived geometry:
// CellSize = Height/Rows (integer pixels), Cols = Width/CellSize.
func (c Config) Derive() (cellSize, cols int, err error) {
	if c.Width < 1 || c.Height < 1 || c.Rows < 1 {
		return 0, 0, ErrBadSurface
	}
	if c.FPS < 1 {
		return 0, 0, ErrBadFPS
	}
	cellSize = c.Height / c.Rows
	if cellSize < 1 {
		return 0, 0, ErrRowsExceedHeight
	}

	return cellSize, c.Width / cellSize, nil
}
