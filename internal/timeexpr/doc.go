// Package timeexpr parses human time expressions into absolute end times.
//
// An expression is a list of command-line tokens, interpreted against a
// reference "now". The accepted forms, tried in priority order:
//
//	10                    bare integer: seconds from now
//	2h 5m 30s             duration tokens with h/m/s suffixes, summed
//	12:30                 wall-clock time today (tomorrow if already past)
//	12:30:45              same, with seconds
//	20260220T123000+0900  ISO 8601 instant with numeric offset
//	20260220T123000Z      ISO 8601 UTC instant
//
// The first form that matches wins. The duration form is all-or-nothing:
// if any token fails the suffix grammar, no partial sum is accepted and
// parsing moves on to the later forms.
//
// Parse is pure: it performs no I/O and never reads the system clock.
package timeexpr
