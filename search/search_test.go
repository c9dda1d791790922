package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/grid"
	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/maze"
	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/search"
)

// openField builds a rows×cols grid with no obstacles, Start at (0,0) and
// End at (rows-1, cols-1).
func openField(t *testing.T, rows, cols int) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	require.True(t, g.SetStart(g.At(0, 0)))
	require.True(t, g.SetEnd(g.At(rows-1, cols-1)))

	return g
}

var allAlgorithms = []search.Algorithm{search.AStar, search.Dijkstra, search.Greedy}

func TestNew_Validation(t *testing.T) {
	_, err := search.New(nil)
	assert.ErrorIs(t, err, search.ErrNilGrid)

	g, err := grid.New(3, 3)
	require.NoError(t, err)
	_, err = search.New(g)
	assert.ErrorIs(t, err, search.ErrMissingEndpoints)

	require.True(t, g.SetStart(g.At(0, 0)))
	_, err = search.New(g)
	assert.ErrorIs(t, err, search.ErrMissingEndpoints, "End still missing")

	require.True(t, g.SetEnd(g.At(2, 2)))
	_, err = search.New(g, search.WithAlgorithm(search.Algorithm(9)))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	r, err := search.New(g)
	require.NoError(t, err)
	assert.Equal(t, search.StatusRunning, r.Status())
}

func TestNew_Initialization(t *testing.T) {
	g := openField(t, 3, 4)
	_, err := search.New(g)
	require.NoError(t, err)

	assert.Equal(t, 0, g.Start().G)
	assert.Equal(t, 0, g.End().H)
	g.Each(func(c *grid.Cell) {
		assert.Equal(t, grid.NoParent, c.Parent)
		if c != g.Start() {
			assert.False(t, c.Reached())
		}
		// Manhattan heuristic to End at (2,3).
		wantH := abs(2-c.Row) + abs(3-c.Col)
		assert.Equal(t, wantH, c.H)
	})
}

// TestRun_OpenField5x5: 5×5, no obstacles, corner to corner. Every
// algorithm reports the Manhattan length 8.
func TestRun_OpenField5x5(t *testing.T) {
	for _, alg := range allAlgorithms {
		t.Run(alg.String(), func(t *testing.T) {
			g := openField(t, 5, 5)
			r, err := search.New(g, search.WithAlgorithm(alg))
			require.NoError(t, err)

			res, err := r.Run()
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, 8, res.Length)
			assert.Equal(t, 8, g.End().G)
			assert.Equal(t, alg, res.Algorithm)
			assert.Positive(t, res.Elapsed)
			assert.Equal(t, search.StatusPathFound, r.Status())
		})
	}
}

// TestRun_SolidWall: Start and End separated by a gap-free obstacle
// wall. Every algorithm reports NoPath.
func TestRun_SolidWall(t *testing.T) {
	for _, alg := range allAlgorithms {
		t.Run(alg.String(), func(t *testing.T) {
			g := openField(t, 5, 5)
			for r := 0; r < 5; r++ {
				require.True(t, g.SetObstacle(g.At(r, 2)))
			}

			run, err := search.New(g, search.WithAlgorithm(alg))
			require.NoError(t, err)
			res, err := run.Run()
			assert.Nil(t, res)
			assert.ErrorIs(t, err, search.ErrNoPath)
			assert.Equal(t, search.StatusNoPath, run.Status())
		})
	}
}

// TestRun_MazeUniquePath runs all three algorithms over one carved maze:
// a perfect maze has a unique simple path, so every algorithm must agree
// on its length.
func TestRun_MazeUniquePath(t *testing.T) {
	lengths := make([]int, 0, len(allAlgorithms))
	for _, alg := range allAlgorithms {
		g, err := grid.New(9, 10)
		require.NoError(t, err)
		require.NoError(t, maze.Carve(g, maze.WithSeed(1234)))

		r, err := search.New(g, search.WithAlgorithm(alg))
		require.NoError(t, err)
		res, err := r.Run()
		require.NoError(t, err, "%s must solve a perfect maze", alg)
		lengths = append(lengths, res.Length)
	}
	assert.Equal(t, lengths[0], lengths[1], "A* vs Dijkstra")
	assert.Equal(t, lengths[0], lengths[2], "A* vs Greedy")
}

// TestStep_DeterministicOrder replays the same search twice and checks
// the dequeue order matches exactly: FIFO tie-breaking makes traversal
// order well-defined, not implementation-defined.
func TestStep_DeterministicOrder(t *testing.T) {
	trace := func() []int {
		g := openField(t, 4, 4)
		var order []int
		r, err := search.New(g,
			search.WithAlgorithm(search.AStar),
			search.WithOnDequeue(func(c *grid.Cell) {
				order = append(order, g.Index(c.Row, c.Col))
			}),
		)
		require.NoError(t, err)
		_, err = r.Run()
		require.NoError(t, err)

		return order
	}
	assert.Equal(t, trace(), trace())
}

func TestStep_Hooks(t *testing.T) {
	g := openField(t, 3, 3)
	var dequeued, visited, opened int
	r, err := search.New(g,
		search.WithOnDequeue(func(*grid.Cell) { dequeued++ }),
		search.WithOnVisit(func(*grid.Cell) { visited++ }),
		search.WithOnOpen(func(*grid.Cell) { opened++ }),
	)
	require.NoError(t, err)
	_, err = r.Run()
	require.NoError(t, err)

	assert.Positive(t, dequeued)
	assert.Positive(t, opened)
	assert.Equal(t, dequeued-1, visited, "End is dequeued but never marked Visited")
}

func TestStep_PauseSuspendsWithoutLoss(t *testing.T) {
	g := openField(t, 4, 4)
	ctl := search.NewControl()
	r, err := search.New(g, search.WithControl(ctl))
	require.NoError(t, err)

	// Advance one real cycle, then pause.
	st, err := r.Step()
	require.NoError(t, err)
	require.Equal(t, search.StatusRunning, st)

	ctl.Pause()
	var before []grid.Cell
	g.Each(func(c *grid.Cell) { before = append(before, *c) })

	for i := 0; i < 3; i++ {
		st, err = r.Step()
		require.NoError(t, err)
		assert.Equal(t, search.StatusPaused, st)
		assert.Equal(t, search.StatusPaused, r.Status(), "Status mirrors the pause")
	}

	i := 0
	g.Each(func(c *grid.Cell) {
		assert.Equal(t, before[i], *c, "paused steps must not mutate the grid")
		i++
	})

	ctl.Resume()
	st, err = r.Step()
	require.NoError(t, err)
	assert.Equal(t, search.StatusRunning, st)
	assert.Equal(t, search.StatusRunning, r.Status(), "Status recovers on resume")

	res, err := r.Run()
	require.NoError(t, err)
	assert.Equal(t, 6, res.Length)
}

// TestStep_Cancelled: a cancel signal mid-search moves the engine to
// Cancelled and leaves the grid exactly as an explicit search-mode
// reset would.
func TestStep_Cancelled(t *testing.T) {
	g := openField(t, 5, 5)
	require.True(t, g.SetObstacle(g.At(2, 2)))
	ctl := search.NewControl()
	r, err := search.New(g, search.WithControl(ctl))
	require.NoError(t, err)

	// Let it churn a little, then cancel.
	for i := 0; i < 4; i++ {
		_, err = r.Step()
		require.NoError(t, err)
	}
	ctl.Cancel()

	st, err := r.Step()
	assert.Equal(t, search.StatusCancelled, st)
	assert.ErrorIs(t, err, search.ErrCancelled)

	// The cancel already performed the reset; a second explicit reset must
	// be a no-op, proving the states are identical.
	var snapshot []grid.Cell
	g.Each(func(c *grid.Cell) { snapshot = append(snapshot, *c) })
	g.Reset(grid.ResetSearch)
	i := 0
	g.Each(func(c *grid.Cell) {
		assert.Equal(t, snapshot[i], *c)
		i++
	})

	// Terminal status is sticky.
	st, err = r.Step()
	assert.Equal(t, search.StatusCancelled, st)
	assert.NoError(t, err)
	assert.Nil(t, r.Result())
}

func TestStep_ContextCancel(t *testing.T) {
	g := openField(t, 5, 5)
	ctx, cancel := context.WithCancel(context.Background())
	r, err := search.New(g, search.WithContext(ctx))
	require.NoError(t, err)

	cancel()
	st, err := r.Step()
	assert.Equal(t, search.StatusCancelled, st)
	assert.ErrorIs(t, err, search.ErrCancelled)
}

// TestGScoreMonotone walks a full run and asserts no cell's g ever
// increases once set.
func TestGScoreMonotone(t *testing.T) {
	g := openField(t, 6, 6)
	best := make(map[int]int)
	r, err := search.New(g, search.WithAlgorithm(search.Greedy),
		search.WithOnOpen(func(c *grid.Cell) {
			idx := g.Index(c.Row, c.Col)
			if prev, ok := best[idx]; ok {
				assert.Less(t, c.G, prev, "g must strictly decrease on re-open")
			}
			best[idx] = c.G
		}),
	)
	require.NoError(t, err)
	_, err = r.Run()
	require.NoError(t, err)
}

func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		in   string
		want search.Algorithm
	}{
		{"a*", search.AStar},
		{"AStar", search.AStar},
		{"dijkstra", search.Dijkstra},
		{" D ", search.Dijkstra},
		{"greedy", search.Greedy},
		{"GBFS", search.Greedy},
	}
	for _, tc := range cases {
		got, err := search.ParseAlgorithm(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := search.ParseAlgorithm("bfs?")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestControl_Toggles(t *testing.T) {
	ctl := search.NewControl()
	assert.False(t, ctl.Paused())
	assert.True(t, ctl.TogglePause())
	assert.True(t, ctl.Paused())
	assert.False(t, ctl.TogglePause())

	assert.True(t, ctl.ToggleQuick())
	ctl.Cancel()
	ctl.Pause()
	ctl.Rearm()
	assert.False(t, ctl.Cancelled())
	assert.False(t, ctl.Paused())
	assert.True(t, ctl.Quick(), "quick mode survives rearm")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
