package path

import (
	"errors"

	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/grid"
)

// Sentinel errors for path reconstruction.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("path: grid is nil")

	// ErrNoPath is returned when End is unset or no search reached it.
	ErrNoPath = errors.New("path: end cell has no recorded path")

	// ErrBrokenTrail is returned when a parent link is missing before the
	// walk reaches Start.
	ErrBrokenTrail = errors.New("path: parent chain broken before start")
)

// Tracer replays a reconstructed route one cell at a time. It is finite
// and non-restartable: once drained it stays drained.
type Tracer struct {
	cells []*grid.Cell
	pos   int
}

// NewTracer reconstructs the route ending at g's End cell and returns a
// Tracer over it. The walk runs backwards from End for exactly End.G
// hops, prepending each cell, which yields Start→End order with End.G+1
// cells. No cells are marked yet; marking happens as the Tracer emits.
//
// Returns ErrNilGrid, ErrNoPath when End is unset/unreached, or
// ErrBrokenTrail if a parent link vanished mid-chain.
// Complexity: O(path length).
func NewTracer(g *grid.Grid) (*Tracer, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	end := g.End()
	if end == nil || !end.Reached() {
		return nil, ErrNoPath
	}

	cells := make([]*grid.Cell, end.G+1)
	cur := end
	cells[end.G] = cur
	for i := end.G; i > 0; i-- {
		if cur.Parent == grid.NoParent {
			return nil, ErrBrokenTrail
		}
		cur = g.CellAt(cur.Parent)
		cells[i-1] = cur
	}

	return &Tracer{cells: cells}, nil
}

// Len returns the total number of cells on the route (End.G + 1).
func (t *Tracer) Len() int { return len(t.cells) }

// Next emits the next route cell, marks it Path (Start and End keep
// their own markings), and reports its fractional position in [0,1] for
// gradient interpolation. ok is false once the route is drained.
func (t *Tracer) Next() (c *grid.Cell, fraction float64, ok bool) {
	if t.pos >= len(t.cells) {
		return nil, 0, false
	}
	c = t.cells[t.pos]
	c.MarkPath()
	fraction = float64(t.pos) / float64(len(t.cells)-1)
	t.pos++

	return c, fraction, true
}

// Trace eagerly reconstructs and marks the whole route, returning it in
// Start→End order with End.G+1 cells. Same errors as NewTracer.
func Trace(g *grid.Grid) ([]*grid.Cell, error) {
	t, err := NewTracer(g)
	if err != nil {
		return nil, err
	}
	out := make([]*grid.Cell, 0, t.Len())
	for {
		c, _, ok := t.Next()
		if !ok {
			break
		}
		out = append(out, c)
	}

	return out, nil
}
