package timeexpr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrNoArguments is returned by Parse when the token list is empty.
var ErrNoArguments = errors.New("no arguments provided")

// TooManyArgumentsError is returned when more than one token reaches the
// single-token forms (wall-clock and ISO 8601 times).
type TooManyArgumentsError struct {
	Tokens []string
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("could not parse arguments: %q", e.Tokens)
}

// UnrecognizedArgumentError is returned when no grammar form matches.
type UnrecognizedArgumentError struct {
	Token string
}

func (e *UnrecognizedArgumentError) Error() string {
	return fmt.Sprintf("could not parse argument: %s", e.Token)
}

// AmbiguousLocalTimeError is returned when a wall-clock time does not
// exist in the local timezone (DST gap).
type AmbiguousLocalTimeError struct {
	Token string
}

func (e *AmbiguousLocalTimeError) Error() string {
	return fmt.Sprintf("%s does not map to a single local time", e.Token)
}

// Unit multipliers for duration tokens, in seconds.
const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
)

// Parse converts a time expression into an absolute end time. All relative
// forms are anchored to now; wall-clock forms use now's location as the
// local timezone. ISO 8601 forms are absolute and converted to that
// location for display.
func Parse(tokens []string, now time.Time) (time.Time, error) {
	if len(tokens) == 0 {
		return time.Time{}, ErrNoArguments
	}

	// Single bare non-negative integer: seconds from now.
	if len(tokens) == 1 {
		if secs, err := strconv.ParseUint(tokens[0], 10, 63); err == nil {
			return now.Add(time.Duration(secs) * time.Second), nil
		}
	}

	// Duration tokens with h/m/s suffixes, summed. All-or-nothing: a
	// single bad token rejects the whole form rather than a partial sum.
	if total, ok := sumDurations(tokens); ok {
		return now.Add(total), nil
	}

	// The remaining forms take exactly one token.
	if len(tokens) != 1 {
		return time.Time{}, &TooManyArgumentsError{Tokens: tokens}
	}
	token := tokens[0]

	for _, layout := range []string{"15:04", "15:04:05"} {
		clock, err := time.Parse(layout, token)
		if err != nil {
			continue
		}
		return clockTimeToday(clock, now, token)
	}

	// ISO 8601 with explicit numeric offset. Already absolute, so no
	// rollover: convert to the local timezone as-is.
	if t, err := time.Parse("20060102T150405-0700", token); err == nil {
		return t.In(now.Location()), nil
	}

	// ISO 8601 UTC.
	if rest, found := strings.CutSuffix(token, "Z"); found {
		if t, err := time.Parse("20060102T150405", rest); err == nil {
			return t.In(now.Location()), nil
		}
	}

	return time.Time{}, &UnrecognizedArgumentError{Token: token}
}

// sumDurations sums <int><h|m|s> tokens into a single offset. Repeated
// units are allowed. Reports ok=false if any token fails the grammar.
func sumDurations(tokens []string) (time.Duration, bool) {
	var total int64
	for _, token := range tokens {
		var unit int64
		var value string
		switch {
		case strings.HasSuffix(token, "h"):
			unit, value = secondsPerHour, strings.TrimSuffix(token, "h")
		case strings.HasSuffix(token, "m"):
			unit, value = secondsPerMinute, strings.TrimSuffix(token, "m")
		case strings.HasSuffix(token, "s"):
			unit, value = 1, strings.TrimSuffix(token, "s")
		default:
			return 0, false
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, false
		}
		total += n * unit
	}
	return time.Duration(total) * time.Second, true
}

// clockTimeToday anchors a wall-clock time to today in now's location,
// rolling forward one day if the result is not in the future. A single
// +1 day adjustment suffices since the window is under 24 hours.
func clockTimeToday(clock, now time.Time, token string) (time.Time, error) {
	end := time.Date(now.Year(), now.Month(), now.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, now.Location())

	// time.Date normalizes wall clocks that fall in a DST gap; if the
	// components moved, the requested time does not exist today.
	if end.Hour() != clock.Hour() || end.Minute() != clock.Minute() || end.Second() != clock.Second() {
		return time.Time{}, &AmbiguousLocalTimeError{Token: token}
	}

	if !end.After(now) {
		end = end.AddDate(0, 0, 1)
	}
	return end, nil
}
