package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Bar glyphs, matching the spinner-and-block style of the display.
const (
	prefixGlyph = "⠿"
	filledCell  = "█"
	emptyCell   = "░"
)

// Options configures the progress bar.
type Options struct {
	// Output is where to draw the bar.
	// Default: os.Stderr
	Output io.Writer

	// Width is the number of bar cells.
	// Default: 40
	Width int
}

// Bar renders a bounded-width countdown bar on a single rewritten line.
type Bar struct {
	opts  Options
	total int64
}

// NewBar creates a bar for a countdown of totalSecs seconds. The total is
// clamped to a minimum of one second so a near-zero countdown still has a
// non-degenerate bar.
func NewBar(totalSecs int64, opts Options) *Bar {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.Width <= 0 {
		opts.Width = 40
	}
	if totalSecs < 1 {
		totalSecs = 1
	}

	return &Bar{opts: opts, total: totalSecs}
}

// Total returns the displayed total duration in seconds.
func (b *Bar) Total() int64 {
	return b.total
}

// Render redraws the bar at elapsedSecs of progress, with the remaining
// time and ETA string in the trailing status.
func (b *Bar) Render(elapsedSecs, remainingSecs int64, eta string) {
	fmt.Fprintf(b.opts.Output, "\r%s [%s] %s | ETA %s",
		prefixGlyph,
		b.cells(elapsedSecs),
		FormatClock(remainingSecs),
		eta,
	)
}

// Finish draws the bar in its completed state and terminates the line.
func (b *Bar) Finish(eta string) {
	fmt.Fprintf(b.opts.Output, "\r%s [%s] %s | ETA %s\n",
		prefixGlyph,
		b.cells(b.total),
		FormatClock(0),
		eta,
	)
}

// cells renders the filled and empty portions of the bar. Fill is
// proportional to elapsed/total, clamped at 100%.
func (b *Bar) cells(elapsed int64) string {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > b.total {
		elapsed = b.total
	}

	filled := int(int64(b.opts.Width) * elapsed / b.total)
	return strings.Repeat(filledCell, filled) + strings.Repeat(emptyCell, b.opts.Width-filled)
}

// FormatClock formats a second count as HH:MM:SS. The hours field has no
// upper bound; negative counts render as zero.
func FormatClock(secs int64) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// FormatETA renders the end time with only as much of the date as is
// needed to disambiguate it from now: time-of-day for today, month-day
// for later this year, and a full date otherwise.
func FormatETA(end, now time.Time) string {
	endYear, endMonth, endDay := end.Date()
	nowYear, nowMonth, nowDay := now.Date()

	switch {
	case endYear == nowYear && endMonth == nowMonth && endDay == nowDay:
		return end.Format("15:04:05")
	case endYear == nowYear:
		return end.Format("01-02 15:04:05")
	default:
		return end.Format("2006-01-02 15:04:05")
	}
}
