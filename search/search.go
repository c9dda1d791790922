package search

import (
	"container/heap"
	"time"

	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/grid"
)

// unitCost is the edge cost between 4-adjacent cells.
const unitCost = 1

// Runner holds the mutable state of one search run. It advances through
// the state machine Running ⇄ Paused → {PathFound, NoPath, Cancelled},
// one dequeue-and-relax cycle per Step.
type Runner struct {
	g     *grid.Grid
	opts  Options
	start *grid.Cell
	end   *grid.Cell

	pq     frontier
	seq    uint64
	status Status
	result *Result
	began  time.Time
	buf    []*grid.Cell // scratch for neighbour queries
}

// New validates inputs, initializes scores and the frontier, and returns
// a Runner ready to Step.
//
// Initialization: every cell gets its Manhattan h to End and a cleared
// parent; Start's g becomes 0 and every other cell's g becomes Unreached.
// A grid that just went through a search-mode reset initializes the same
// way — obstacle layout and endpoints persist, scores start clean.
//
// Returns ErrNilGrid, ErrOptionViolation, or ErrMissingEndpoints when the
// caller broke the Start-and-End precondition.
func New(g *grid.Grid, opts ...Option) (*Runner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, end := g.Start(), g.End()
	if start == nil || end == nil {
		return nil, ErrMissingEndpoints
	}

	r := &Runner{
		g:      g,
		opts:   o,
		start:  start,
		end:    end,
		pq:     make(frontier, 0, g.Rows()+g.Cols()),
		status: StatusRunning,
		began:  time.Now(),
		buf:    make([]*grid.Cell, 0, 4),
	}

	g.Each(func(c *grid.Cell) {
		c.H = manhattan(c, end)
		c.Parent = grid.NoParent
		c.G = grid.Unreached
	})
	start.G = 0

	heap.Init(&r.pq)
	r.push(start)

	return r, nil
}

// Status returns the engine's current state-machine position.
func (r *Runner) Status() Status { return r.status }

// Result returns the run summary, or nil before PathFound.
func (r *Runner) Result() *Result { return r.result }

// Step advances the search by one dequeue-and-relax cycle.
//
// Order of business per cycle: poll cancellation (context, then Control),
// honor pause, pop the minimum-keyed live entry, finish if it is End,
// otherwise mark it Visited and relax its 4-connected non-obstacle
// neighbours at unit cost.
//
// Terminal statuses are sticky: calling Step afterwards returns the same
// status with no error and touches nothing.
func (r *Runner) Step() (Status, error) {
	if r.status.Terminal() {
		return r.status, nil
	}

	// Cancellation, polled once per cycle. Both exits perform the
	// search-mode reset so no stale marks outlive the run.
	if r.opts.Ctx.Err() != nil || r.opts.Control.Cancelled() {
		r.g.Reset(grid.ResetSearch)
		r.status = StatusCancelled

		return r.status, ErrCancelled
	}

	// Pause suspends without losing state; Status reflects it until the
	// next unpaused cycle.
	if r.opts.Control.Paused() {
		r.status = StatusPaused

		return StatusPaused, nil
	}
	r.status = StatusRunning

	// Pop until a live entry surfaces; superseded entries are no-ops.
	var cur *grid.Cell
	for {
		if r.pq.Len() == 0 {
			r.status = StatusNoPath

			return r.status, ErrNoPath
		}
		it := heap.Pop(&r.pq).(entry)
		cell := r.g.CellAt(it.idx)
		if it.g != cell.G {
			continue // stale: improved after this entry was queued
		}
		cur = cell

		break
	}

	r.opts.OnDequeue(cur)

	if cur == r.end {
		r.status = StatusPathFound
		r.result = &Result{
			Algorithm: r.opts.Algorithm,
			Length:    r.end.G,
			Elapsed:   time.Since(r.began),
		}

		return r.status, nil
	}

	cur.MarkVisited()
	r.opts.OnVisit(cur)
	r.relax(cur)

	return StatusRunning, nil
}

// Run drives Step until a terminal status and returns the Result for
// PathFound, or (nil, ErrNoPath / ErrCancelled) otherwise.
//
// Run treats a Paused control as a busy yield; interactive drivers that
// actually pause should call Step from their own loop instead.
func (r *Runner) Run() (*Result, error) {
	for {
		st, err := r.Step()
		switch st {
		case StatusPathFound:
			return r.result, nil
		case StatusNoPath, StatusCancelled:
			return nil, err
		case StatusPaused, StatusRunning:
			// next cycle
		}
	}
}

// relax offers cur's cost to each 4-connected, non-obstacle neighbour.
// A strict improvement rewrites the neighbour's g and parent and pushes a
// fresh frontier entry; equal-cost offers are ignored so g only ever
// decreases within a run.
func (r *Runner) relax(cur *grid.Cell) {
	curIdx := r.g.Index(cur.Row, cur.Col)
	cand := cur.G + unitCost

	r.buf = r.buf[:0]
	r.buf = r.g.Neighbours(cur, 1, r.buf)
	for _, n := range r.buf {
		if n.State == grid.Obstacle {
			continue
		}
		if cand >= n.G {
			continue
		}
		n.G = cand
		n.Parent = curIdx
		n.MarkOpen()
		r.push(n)
		r.opts.OnOpen(n)
	}
}

// push enqueues c with its current score and a fresh insertion sequence.
func (r *Runner) push(c *grid.Cell) {
	heap.Push(&r.pq, entry{
		idx:   r.g.Index(c.Row, c.Col),
		score: r.score(c),
		g:     c.G,
		seq:   r.seq,
	})
	r.seq++
}

// score applies the algorithm's ordering policy to c.
func (r *Runner) score(c *grid.Cell) int {
	switch r.opts.Algorithm {
	case Dijkstra:
		return c.G
	case Greedy:
		return c.H
	default: // AStar
		return c.G + c.H
	}
}

// manhattan is |Δrow| + |Δcol| between two cells.
func manhattan(a, b *grid.Cell) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}
