// Package progress renders the countdown progress bar.
//
// This package outputs a single self-rewriting line showing elapsed
// progress, the remaining time, and an ETA string:
//
//	⠿ [████████████░░░░░░░░░░░░░░░░░░░░░░░░░░░░] 00:41:12 | ETA 14:30:45
//
// The ETA string abbreviates based on how far away the end time is:
// time-of-day only for today, month-day for later this year, and a full
// date otherwise.
//
// # Usage
//
//	bar := progress.NewBar(totalSecs, progress.Options{Output: os.Stderr})
//	bar.Render(elapsed, remaining, progress.FormatETA(end, now))
//	...
//	bar.Finish(progress.FormatETA(end, now))
package progress
