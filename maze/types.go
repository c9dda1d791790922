package maze

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/DarkPhoenix42/Pathfinding-Algorithms-Visualiser/grid"
)

// Sentinel errors for generator execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrTooSmall is returned when the grid cannot host the generator's
	// endpoint placement.
	ErrTooSmall = errors.New("maze: grid too small for generator")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// defaultObstacleProb is Scatter's Bernoulli obstacle probability.
const defaultObstacleProb = 0.3

// Option configures generator behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the generator is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by Carve and Scatter.
type Options struct {
	// Ctx allows cooperative cancellation, checked once per loop turn.
	Ctx context.Context

	// Rand supplies randomness. Nil means "seed from the wall clock";
	// pass WithSeed or WithRand for reproducible layouts.
	Rand *rand.Rand

	// ObstacleProb is Scatter's per-cell obstacle probability, in [0,1).
	ObstacleProb float64

	// OnCarve is called by Carve after each carve step with the cleared
	// wall cell and the newly reached lattice cell. Drives maze-animation.
	OnCarve func(wall, next *grid.Cell)

	// OnScatter is called by Scatter after each obstacle placement, the
	// Scatter-side counterpart of OnCarve.
	OnScatter func(*grid.Cell)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - wall-clock seeded randomness
//   - ObstacleProb 0.3
//   - no-op OnCarve and OnScatter hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Rand:         nil,
		ObstacleProb: defaultObstacleProb,
		OnCarve:      func(*grid.Cell, *grid.Cell) {},
		OnScatter:    func(*grid.Cell) {},
		err:          nil,
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

// WithRand supplies a caller-owned RNG for deterministic generation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithObstacleProb sets Scatter's per-cell obstacle probability.
//
//	0 ≤ p < 1: accepted
//	otherwise: invalid option → ErrOptionViolation
func WithObstacleProb(p float64) Option {
	return func(o *Options) {
		if p < 0 || p >= 1 {
			o.err = fmt.Errorf("%w: ObstacleProb must be in [0,1), got %v", ErrOptionViolation, p)
			return
		}
		o.ObstacleProb = p
	}
}

// WithOnCarve registers a callback to run after every carve step.
func WithOnCarve(fn func(wall, next *grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCarve = fn
		}
	}
}

// WithOnScatter registers a callback to run after every obstacle
// placement in Scatter.
func WithOnScatter(fn func(*grid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnScatter = fn
		}
	}
}
