// Package waiter blocks until an absolute end time is reached.
//
// In progress mode the waiter polls the clock every 50ms and redraws a
// countdown bar, but only when the whole-second elapsed count changes,
// so most ticks are no-ops. Every tick re-derives the remaining time
// from the live clock rather than counting down a fixed schedule, which
// keeps the wait self-correcting against scheduling jitter, suspend and
// resume, and clock adjustments made after start.
//
// In quiet mode the waiter suspends once for the full remaining
// duration with no intermediate wakeups. Progress mode falls back to a
// quiet wait when the output is not a terminal, so piped invocations
// stay clean.
package waiter
