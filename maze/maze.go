package maze

import (
	"math/rand"
	"time"

	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/grid"
)

// carver encapsulates mutable state of one Carve run.
type carver struct {
	g     *grid.Grid
	opts  Options
	rng   *rand.Rand
	stack []*grid.Cell
	buf   []*grid.Cell // scratch for step-2 neighbour queries
}

// Carve fills g with obstacles and digs a perfect maze through them with
// a randomized recursive backtracker, then designates the origin (0,0) as
// Start and (Rows-1, Cols-2) as End.
//
// Returns ErrNilGrid or ErrTooSmall for invalid input, ErrOptionViolation
// for bad options, or the context error on cancellation. On cancellation
// the grid is left fully reset rather than half-carved.
// Complexity: O(Rows×Cols).
func Carve(g *grid.Grid, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	// The End offset (Rows-1, Cols-2) needs a second-to-last column and
	// must not collapse onto the origin.
	if g.Cols() < 2 || (g.Rows() == 1 && g.Cols() == 2) {
		return ErrTooSmall
	}

	c := &carver{
		g:     g,
		opts:  o,
		rng:   o.Rand,
		stack: make([]*grid.Cell, 0, g.Rows()*g.Cols()/4+1),
		buf:   make([]*grid.Cell, 0, 4),
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	c.seed()
	if err := c.loop(); err != nil {
		g.Reset(grid.ResetAll)
		return err
	}
	c.finish()

	return nil
}

// seed walls off the whole grid and opens the origin as the first
// lattice cell on the stack.
func (c *carver) seed() {
	c.g.Reset(grid.ResetAll)
	c.g.Each(func(cell *grid.Cell) { c.g.SetObstacle(cell) })

	origin := c.g.At(0, 0)
	c.g.ResetCell(origin)
	c.stack = append(c.stack, origin)
}

// loop runs the backtracking walk until the stack drains, carving one
// wall-and-cell pair per turn.
func (c *carver) loop() error {
	for len(c.stack) > 0 {
		// cancellation check (once per loop)
		select {
		case <-c.opts.Ctx.Done():
			return c.opts.Ctx.Err()
		default:
		}

		current := c.stack[len(c.stack)-1]

		// Unvisited lattice neighbours are the ones still walled in.
		c.buf = c.buf[:0]
		c.buf = c.g.Neighbours(current, 2, c.buf)
		unvisited := c.buf[:0]
		for _, n := range c.buf {
			if n.State == grid.Obstacle {
				unvisited = append(unvisited, n)
			}
		}

		// Dead end: the frontier cannot advance, backtrack.
		if len(unvisited) == 0 {
			c.stack = c.stack[:len(c.stack)-1]
			continue
		}

		next := unvisited[c.rng.Intn(len(unvisited))]
		wall := c.g.At((current.Row+next.Row)/2, (current.Col+next.Col)/2)
		c.g.ResetCell(wall)
		c.g.ResetCell(next)
		c.stack = append(c.stack, next)

		c.opts.OnCarve(wall, next)
	}

	return nil
}

// finish designates the maze endpoints. The End offset cell is cleared
// first so a leftover wall state never survives underneath the marking.
func (c *carver) finish() {
	c.g.SetStart(c.g.At(0, 0))

	end := c.g.At(c.g.Rows()-1, c.g.Cols()-2)
	c.g.ResetCell(end)
	c.g.SetEnd(end)
}
