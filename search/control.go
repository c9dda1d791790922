package search

import "sync/atomic"

// Control is the shared run-control handle: a small mutable object the
// surrounding input loop flips while a Runner (or generator driver) is
// mid-flight. The engine polls it cooperatively once per Step; nothing
// here preempts a cycle in progress.
//
// Flags are atomics so an input goroutine (keyboard reader, websocket
// client) may toggle them while the single-threaded algorithm loop runs.
type Control struct {
	paused    atomic.Bool
	cancelled atomic.Bool
	quick     atomic.Bool
}

// NewControl returns an unpaused, uncancelled handle with quick mode off.
func NewControl() *Control { return &Control{} }

// Pause suspends Step progress without losing any search state.
func (c *Control) Pause() { c.paused.Store(true) }

// Resume lifts a pause.
func (c *Control) Resume() { c.paused.Store(false) }

// TogglePause flips the pause flag and reports the new value.
func (c *Control) TogglePause() bool {
	for {
		old := c.paused.Load()
		if c.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Paused reports whether progress is currently suspended.
func (c *Control) Paused() bool { return c.paused.Load() }

// Cancel requests a cooperative abort; the next Step observes it,
// search-resets the grid, and finishes with ErrCancelled.
func (c *Control) Cancel() { c.cancelled.Store(true) }

// Cancelled reports whether an abort was requested.
func (c *Control) Cancelled() bool { return c.cancelled.Load() }

// SetQuick turns quick mode on or off. Quick mode is advisory: drivers
// skip per-step rendering, the algorithm itself is unchanged.
func (c *Control) SetQuick(on bool) { c.quick.Store(on) }

// ToggleQuick flips quick mode and reports the new value.
func (c *Control) ToggleQuick() bool {
	for {
		old := c.quick.Load()
		if c.quick.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Quick reports whether quick mode is on.
func (c *Control) Quick() bool { return c.quick.Load() }

// Rearm clears pause and cancel so the handle can drive another run.
// Quick mode is a user preference and survives.
func (c *Control) Rearm() {
	c.paused.Store(false)
	c.cancelled.Store(false)
}
