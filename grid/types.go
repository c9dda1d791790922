package grid

import (
	"errors"
	"math"
)

// ErrBadDims indicates a grid was requested with a non-positive dimension.
var ErrBadDims = errors.New("grid: rows and cols must each be ≥ 1")

// Unreached is the G value of a cell no search has priced yet.
// It plays the role of +infinity under integer unit-cost arithmetic.
const Unreached = math.MaxInt

// NoParent marks a cell without a predecessor on any known path.
const NoParent = -1

// State is the visual/search state of a single cell.
type State uint8

const (
	// Normal is an untouched, walkable cell.
	Normal State = iota
	// Start is the unique search origin.
	Start
	// End is the unique search target.
	End
	// Obstacle blocks traversal.
	Obstacle
	// Open marks a cell sitting in the search frontier.
	Open
	// Visited marks a cell the search has expanded.
	Visited
	// Path marks a cell on the reconstructed Start→End path.
	Path
)

// stateNames is indexed by State; kept in declaration order.
var stateNames = [...]string{"Normal", "Start", "End", "Obstacle", "Open", "Visited", "Path"}

// String returns the canonical name of s, or "Unknown" for values
// outside the declared range.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}

	return "Unknown"
}

// ResetMode selects how much of the grid Reset wipes.
type ResetMode uint8

const (
	// ResetAll clears every cell to Normal and unsets Start and End.
	ResetAll ResetMode = iota
	// ResetSearch clears search residue (Open/Visited/Path marks, scores,
	// parents) on cells that are not Start, End, or Obstacle, and resets
	// End's score and parent so a fresh run starts clean while the
	// obstacle layout persists.
	ResetSearch
)

// Cell is a single grid position. Cells are created once by New and live
// for the grid's lifetime; searches and generators mutate only State, G,
// H, and Parent.
type Cell struct {
	Row, Col int

	// State is the current visual/search state.
	State State
	// G is the best-known cost from Start in unit edges (Unreached if none).
	G int
	// H is the Manhattan heuristic to End, refreshed at search start.
	H int
	// Parent is the row-major index of the predecessor on the best-known
	// path, or NoParent. It is a reference, not an ownership relation:
	// the Grid alone owns all cells.
	Parent int
}

// MarkOpen flags the cell as frontier. Start, End, and Obstacle markings
// are never overwritten.
func (c *Cell) MarkOpen() {
	if c.State == Normal {
		c.State = Open
	}
}

// MarkVisited flags the cell as expanded. The Start cell keeps its
// distinct marking, as do End and Obstacle.
func (c *Cell) MarkVisited() {
	if c.State == Normal || c.State == Open {
		c.State = Visited
	}
}

// MarkPath flags the cell as lying on the reconstructed path.
// Start and End keep their own markings.
func (c *Cell) MarkPath() {
	if c.State != Start && c.State != End && c.State != Obstacle {
		c.State = Path
	}
}

// Reached reports whether any search has priced this cell.
func (c *Cell) Reached() bool { return c.G != Unreached }
