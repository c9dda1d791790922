package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/grid"
)

// Sentinel errors for engine execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed to New.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrMissingEndpoints is returned when the grid has no Start or no End.
	// This is a caller precondition, not an algorithmic failure.
	ErrMissingEndpoints = errors.New("search: both Start and End must be set")

	// ErrNoPath is returned when the frontier drains before End is reached.
	ErrNoPath = errors.New("search: no path found")

	// ErrCancelled is returned when a run is aborted via Control or context.
	ErrCancelled = errors.New("search: cancelled")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm for unknown names.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Algorithm selects the frontier ordering policy.
type Algorithm uint8

const (
	// AStar orders the frontier by g+h.
	AStar Algorithm = iota
	// Dijkstra orders the frontier by g alone.
	Dijkstra
	// Greedy orders the frontier by h alone (Greedy Best-First Search).
	Greedy
)

// algorithmNames is indexed by Algorithm.
var algorithmNames = [...]string{"A*", "Dijkstra", "Greedy BFS"}

// String returns the display name of a.
func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}

	return "Unknown"
}

// ParseAlgorithm resolves a user-supplied name ("astar", "a*", "dijkstra",
// "greedy", case-insensitive) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "a*", "astar", "a-star", "a":
		return AStar, nil
	case "dijkstra", "d":
		return Dijkstra, nil
	case "greedy", "greedy-bfs", "gbfs", "g":
		return Greedy, nil
	default:
		return AStar, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Status is the engine's state-machine position.
type Status uint8

const (
	// StatusRunning means the frontier still holds work.
	StatusRunning Status = iota
	// StatusPaused means the Control handle suspended this cycle; no state
	// changed and progress resumes on unpause.
	StatusPaused
	// StatusPathFound means End was dequeued; the Result is available.
	StatusPathFound
	// StatusNoPath means the frontier drained before reaching End.
	StatusNoPath
	// StatusCancelled means the run was aborted and the grid search-reset.
	StatusCancelled
)

// statusNames is indexed by Status.
var statusNames = [...]string{"Running", "Paused", "PathFound", "NoPath", "Cancelled"}

// String returns the canonical name of s.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}

	return "Unknown"
}

// Terminal reports whether s is a final state.
func (s Status) Terminal() bool {
	return s == StatusPathFound || s == StatusNoPath || s == StatusCancelled
}

// Result summarizes a completed run.
type Result struct {
	// Algorithm that produced the path.
	Algorithm Algorithm
	// Length is the definitive path length in unit edges (End's final g).
	Length int
	// Elapsed is wall time from New to the terminal Step.
	Elapsed time.Duration
}

// Option configures engine behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing a Runner.
type Options struct {
	// Ctx allows cooperative cancellation, polled once per Step.
	Ctx context.Context

	// Algorithm selects the ordering policy. Default AStar.
	Algorithm Algorithm

	// Control is the shared run-control handle (pause/cancel/quick).
	// Never nil after DefaultOptions.
	Control *Control

	// OnDequeue is called when a cell is pulled from the frontier,
	// before the End check.
	OnDequeue func(*grid.Cell)

	// OnVisit is called after a dequeued cell is marked Visited.
	OnVisit func(*grid.Cell)

	// OnOpen is called each time a cell is (re-)enqueued after a strict
	// g improvement. A cell may re-enter the frontier.
	OnOpen func(*grid.Cell)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - AStar
//   - a fresh, unpaused Control
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Algorithm: AStar,
		Control:   NewControl(),
		OnDequeue: func(*grid.Cell) {},
		OnVisit:   func(*grid.Cell) {},
		OnOpen:    func(*grid.Cell) {},
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAlgorithm selects the frontier ordering policy.
//
//	AStar, Dijkstra, Greedy: accepted
//	anything else: invalid option → ErrOptionViolation
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if a > Greedy {
			o.err = fmt.Errorf("%w: algorithm %d", ErrOptionViolation, a)
			return
		}
		o.Algorithm = a
	}
}

// WithControl shares a caller-owned run-control handle with the engine.
func WithControl(c *Control) Option {
	return func(o *Options) {
		if c != nil {
			o.Control = c
		}
	}
}

// WithOnDequeue registers a callback to run on every frontier pop.
func WithOnDequeue(fn func(*grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run when a cell is marked Visited.
func WithOnVisit(fn func(*grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnOpen registers a callback to run when a cell enters the frontier.
func WithOnOpen(fn func(*grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnOpen = fn
		}
	}
}
