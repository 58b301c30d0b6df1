package waiter

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/takumi3488/zz/internal/progress"
)

// Options configures the waiter.
type Options struct {
	// Output is where progress is drawn.
	// Default: os.Stderr
	Output io.Writer

	// PollInterval is how often the clock is re-sampled in progress mode.
	// Default: 50ms
	PollInterval time.Duration

	// Now returns the current time. Overridable for tests.
	// Default: time.Now
	Now func() time.Time

	// ForceTTY draws the progress bar even when Output is not a
	// terminal. Used by tests that capture output in a buffer.
	ForceTTY bool
}

// Waiter blocks the calling goroutine until a target wall-clock time.
type Waiter struct {
	opts Options
}

// New creates a waiter, filling in defaults for unset options.
func New(opts Options) *Waiter {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 50 * time.Millisecond
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Waiter{opts: opts}
}

// Wait blocks until the wall clock reaches end, rendering a countdown
// bar unless quiet is set or the output is not a terminal. It returns
// early with ctx.Err() if the context is cancelled.
func (w *Waiter) Wait(ctx context.Context, end time.Time, quiet bool) error {
	if quiet || !w.terminal() {
		return w.waitSilent(ctx, end)
	}
	return w.waitProgress(ctx, end)
}

// waitSilent suspends once for the full remaining duration.
func (w *Waiter) waitSilent(ctx context.Context, end time.Time) error {
	remaining := end.Sub(w.opts.Now())
	if remaining <= 0 {
		return nil
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// waitProgress polls the clock and redraws the bar when the elapsed
// whole-second count changes.
func (w *Waiter) waitProgress(ctx context.Context, end time.Time) error {
	start := w.opts.Now()

	totalMS := end.Sub(start).Milliseconds()
	if totalMS < 1000 {
		totalMS = 1000
	}
	totalSecs := (totalMS + 999) / 1000

	bar := progress.NewBar(totalSecs, progress.Options{Output: w.opts.Output})
	bar.Render(0, totalSecs, progress.FormatETA(end, start))

	ticker := time.NewTicker(w.opts.PollInterval)
	defer ticker.Stop()

	lastElapsed := int64(0)
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(w.opts.Output)
			return ctx.Err()
		case <-ticker.C:
		}

		// Re-sample the clock on every tick: wall time advances outside
		// our control, so remaining time is always derived live.
		now := w.opts.Now()
		remaining := end.Sub(now)
		if remaining <= 0 {
			break
		}

		elapsed := int64(now.Sub(start) / time.Second)
		if elapsed < 0 {
			elapsed = 0
		}
		if elapsed == lastElapsed {
			continue
		}
		lastElapsed = elapsed

		remainingSecs := (remaining.Milliseconds() + 999) / 1000
		bar.Render(elapsed, remainingSecs, progress.FormatETA(end, now))
	}

	bar.Finish(progress.FormatETA(end, w.opts.Now()))
	return nil
}

// terminal reports whether the output is an interactive terminal.
func (w *Waiter) terminal() bool {
	if w.opts.ForceTTY {
		return true
	}
	f, ok := w.opts.Output.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
