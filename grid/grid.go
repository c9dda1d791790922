package grid

// Grid owns a fixed Rows×Cols field of cells in a single row-major slice.
// All cells are allocated exactly once in New; every later operation only
// mutates their fields in place.
type Grid struct {
	rows, cols int
	cells      []Cell
	start, end int // row-major indices; NoParent when unset
}

// New constructs a rows×cols grid of Normal cells with no Start or End.
// Returns ErrBadDims if either dimension is < 1.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadDims
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
		start: NoParent,
		end:   NoParent,
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := &g.cells[r*cols+c]
			cell.Row, cell.Col = r, c
			cell.G = Unreached
			cell.Parent = NoParent
		}
	}

	return g, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (r,c) lies within the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Index maps (r,c) to its row-major index: r*Cols + c.
func (g *Grid) Index(r, c int) int { return r*g.cols + c }

// Coordinate converts a row-major index back to (r,c).
func (g *Grid) Coordinate(idx int) (r, c int) { return idx / g.cols, idx % g.cols }

// At returns the cell at (r,c), or nil if out of bounds.
func (g *Grid) At(r, c int) *Cell {
	if !g.InBounds(r, c) {
		return nil
	}

	return &g.cells[g.Index(r, c)]
}

// CellAt returns the cell with the given row-major index, or nil if the
// index is out of range.
func (g *Grid) CellAt(idx int) *Cell {
	if idx < 0 || idx >= len(g.cells) {
		return nil
	}

	return &g.cells[idx]
}

// Start returns the current Start cell, or nil if unset.
func (g *Grid) Start() *Cell { return g.CellAt(g.start) }

// End returns the current End cell, or nil if unset.
func (g *Grid) End() *Cell { return g.CellAt(g.end) }

// Neighbours appends to dst the cells at Manhattan offset step from c in
// each axial direction — up, left, down, right — skipping anything out of
// bounds (no wraparound). step=1 yields search adjacency; step=2 yields
// maze-carving jumps over the single wall cell in between. A step < 1
// has no axial offset to walk and returns dst unchanged.
// Passing a reusable dst avoids per-call allocation in hot loops.
func (g *Grid) Neighbours(c *Cell, step int, dst []*Cell) []*Cell {
	if step < 1 {
		return dst
	}
	if c.Row >= step {
		dst = append(dst, &g.cells[g.Index(c.Row-step, c.Col)])
	}
	if c.Col >= step {
		dst = append(dst, &g.cells[g.Index(c.Row, c.Col-step)])
	}
	if c.Row < g.rows-step {
		dst = append(dst, &g.cells[g.Index(c.Row+step, c.Col)])
	}
	if c.Col < g.cols-step {
		dst = append(dst, &g.cells[g.Index(c.Row, c.Col+step)])
	}

	return dst
}

// SetStart designates c as the unique Start. A previously designated
// Start reverts to Normal. The call is a silent no-op (returns false)
// when c is currently the End cell, which is what keeps Start and End
// from ever coinciding.
func (g *Grid) SetStart(c *Cell) bool {
	idx := g.Index(c.Row, c.Col)
	if idx == g.end {
		return false
	}
	if prev := g.Start(); prev != nil && prev != c {
		prev.State = Normal
	}
	c.State = Start
	g.start = idx

	return true
}

// SetEnd designates c as the unique End, mirroring SetStart: a no-op when
// c is currently Start, and any previous End reverts to Normal.
func (g *Grid) SetEnd(c *Cell) bool {
	idx := g.Index(c.Row, c.Col)
	if idx == g.start {
		return false
	}
	if prev := g.End(); prev != nil && prev != c {
		prev.State = Normal
	}
	c.State = End
	g.end = idx

	return true
}

// SetObstacle turns c into an obstacle. A silent no-op (returns false)
// on the current Start or End cell.
func (g *Grid) SetObstacle(c *Cell) bool {
	idx := g.Index(c.Row, c.Col)
	if idx == g.start || idx == g.end {
		return false
	}
	c.State = Obstacle

	return true
}

// ResetCell clears c back to a Normal cell with no score or parent.
// If c was the Start or End, that designation is unset.
func (g *Grid) ResetCell(c *Cell) {
	idx := g.Index(c.Row, c.Col)
	if idx == g.start {
		g.start = NoParent
	}
	if idx == g.end {
		g.end = NoParent
	}
	c.State = Normal
	c.G = Unreached
	c.Parent = NoParent
}

// Reset wipes grid state according to mode.
//
// ResetAll clears every cell to Normal and unsets Start and End.
// ResetSearch clears Open/Visited/Path marks, scores, and parents on cells
// that are not Start, End, or Obstacle, then resets End's score and parent
// to their unsearched values; the obstacle layout and both designations
// survive. ResetSearch is idempotent.
func (g *Grid) Reset(mode ResetMode) {
	switch mode {
	case ResetAll:
		for i := range g.cells {
			g.ResetCell(&g.cells[i])
		}
	case ResetSearch:
		var c *Cell
		for i := range g.cells {
			c = &g.cells[i]
			if c.State == Start || c.State == End || c.State == Obstacle {
				continue
			}
			c.State = Normal
			c.G = Unreached
			c.Parent = NoParent
		}
		if end := g.End(); end != nil {
			end.G = Unreached
			end.Parent = NoParent
		}
	}
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(*Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}
