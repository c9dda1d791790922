package maze

import (
	"math/rand"
	"time"

	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/grid"
)

// Scatter clears g and builds a random scenario: every cell becomes an
// obstacle independently with Options.ObstacleProb, then Start and End
// are drawn uniformly, resampling End until it differs from Start.
//
// A Start or End draw may land on an obstacle cell, which simply converts
// it — matching the interactive behavior of painting over an obstacle.
// No reachability guarantee is made; a later "no path" result is a valid
// outcome of this generator.
//
// Returns ErrNilGrid for a nil grid, ErrTooSmall when fewer than two
// cells exist, or ErrOptionViolation for bad options.
// Complexity: O(Rows×Cols).
func Scatter(g *grid.Grid, opts ...Option) error {
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
	// Two distinct cells are needed for Start and End.
	if g.Rows()*g.Cols() < 2 {
		return ErrTooSmall
	}

	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.Reset(grid.ResetAll)
	g.Each(func(c *grid.Cell) {
		if rng.Float64() < o.ObstacleProb {
			g.SetObstacle(c)
			o.OnScatter(c)
		}
	})

	start := g.At(rng.Intn(g.Rows()), rng.Intn(g.Cols()))
	g.SetStart(start)

	end := g.At(rng.Intn(g.Rows()), rng.Intn(g.Cols()))
	for end == start {
		end = g.At(rng.Intn(g.Rows()), rng.Intn(g.Cols()))
	}
	g.SetEnd(end)

	return nil
}
