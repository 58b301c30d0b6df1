package timeexpr

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed reference: 2026-02-20 10:00:00 in a UTC+9 zone.
func nowFixed() time.Time {
	loc := time.FixedZone("UTC+9", 9*3600)
	return time.Date(2026, 2, 20, 10, 0, 0, 0, loc)
}

func TestParseRelative(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		wantSecs int64
	}{
		{"bare integer", []string{"10"}, 10},
		{"bare zero", []string{"0"}, 0},
		{"hours", []string{"2h"}, 7200},
		{"minutes", []string{"5m"}, 300},
		{"seconds", []string{"30s"}, 30},
		{"hours and minutes", []string{"2h", "5m"}, 7500},
		{"minutes and seconds", []string{"5m", "30s"}, 330},
		{"hours minutes seconds", []string{"1h", "30m", "45s"}, 5445},
		{"order does not matter", []string{"45s", "30m", "1h"}, 5445},
		{"repeated units are summed", []string{"1h", "2h"}, 10800},
		{"negative component", []string{"10m", "-5m"}, 300},
		{"single negative token", []string{"-30s"}, -30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := nowFixed()
			end, err := Parse(tt.tokens, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSecs, int64(end.Sub(now)/time.Second))
		})
	}
}

func TestParseClockTimeFuture(t *testing.T) {
	now := nowFixed()

	end, err := Parse([]string{"12:30"}, now)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-20 12:30:00", end.Format("2006-01-02 15:04:05"))
}

func TestParseClockTimePast(t *testing.T) {
	// 08:00 is before the 10:00 reference, so it means tomorrow.
	now := nowFixed()

	end, err := Parse([]string{"08:00"}, now)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-21 08:00:00", end.Format("2006-01-02 15:04:05"))
}

func TestParseClockTimeWithSeconds(t *testing.T) {
	now := nowFixed()

	end, err := Parse([]string{"12:30:45"}, now)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-20 12:30:45", end.Format("2006-01-02 15:04:05"))

	end, err = Parse([]string{"08:00:00"}, now)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-21 08:00:00", end.Format("2006-01-02 15:04:05"))
}

func TestParseClockTimeExactlyNowRollsForward(t *testing.T) {
	now := nowFixed()

	end, err := Parse([]string{"10:00"}, now)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-21 10:00:00", end.Format("2006-01-02 15:04:05"))
}

func TestParseISOWithOffset(t *testing.T) {
	now := nowFixed()

	end, err := Parse([]string{"20260220T123000+0900"}, now)
	require.NoError(t, err)

	// 12:30:00 at UTC+9 is 03:30:00 UTC.
	utc := end.UTC()
	assert.Equal(t, "2026-02-20 03:30:00", utc.Format("2006-01-02 15:04:05"))
	assert.Equal(t, now.Location(), end.Location())
}

func TestParseISOUTC(t *testing.T) {
	now := nowFixed()

	end, err := Parse([]string{"20260220T123000Z"}, now)
	require.NoError(t, err)

	utc := end.UTC()
	assert.Equal(t, "2026-02-20 12:30:00", utc.Format("2006-01-02 15:04:05"))
	assert.Equal(t, now.Location(), end.Location())
}

func TestParseISORoundTrip(t *testing.T) {
	now := nowFixed()

	end, err := Parse([]string{"20261224T180000-0500"}, now)
	require.NoError(t, err)

	want := time.Date(2026, 12, 24, 18, 0, 0, 0, time.FixedZone("UTC-5", -5*3600))
	assert.True(t, end.Equal(want), "parsed %v, want instant %v", end, want)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(nil, nowFixed())
	require.ErrorIs(t, err, ErrNoArguments)
}

func TestParseUnrecognized(t *testing.T) {
	for _, token := range []string{"abc", "10x", "h", "12:30pm", "1.5h"} {
		_, err := Parse([]string{token}, nowFixed())
		require.Error(t, err, "token %q", token)

		var unrec *UnrecognizedArgumentError
		require.ErrorAs(t, err, &unrec, "token %q", token)
		assert.Equal(t, token, unrec.Token)
	}
}

func TestParseNoPartialDurationSum(t *testing.T) {
	// A single bad token rejects the whole duration form; with two
	// tokens left over, the single-token forms cannot apply either.
	_, err := Parse([]string{"2h", "abc"}, nowFixed())
	require.Error(t, err)

	var tooMany *TooManyArgumentsError
	require.ErrorAs(t, err, &tooMany)
	assert.Equal(t, []string{"2h", "abc"}, tooMany.Tokens)
}

func TestParseMultiTokenClockTime(t *testing.T) {
	_, err := Parse([]string{"12:30", "5m"}, nowFixed())
	require.Error(t, err)

	var tooMany *TooManyArgumentsError
	require.ErrorAs(t, err, &tooMany)
}

func TestParseDSTGap(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// US DST starts 2026-03-08: 02:30 does not exist that day.
	now := time.Date(2026, 3, 8, 1, 0, 0, 0, loc)

	_, err = Parse([]string{"02:30"}, now)
	require.Error(t, err)

	var ambiguous *AmbiguousLocalTimeError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, "02:30", ambiguous.Token)
}

func TestParseErrorsAreNotRecoverable(t *testing.T) {
	// Errors carry the offending input verbatim for the user.
	_, err := Parse([]string{"abc"}, nowFixed())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "abc")

	_, err = Parse([]string{"12:30", "5m"}, nowFixed())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "12:30")
	assert.Contains(t, err.Error(), "5m")
}

func TestParseBareIntegerRequiresSingleToken(t *testing.T) {
	// Two bare integers match neither the duration form nor the
	// single-token forms.
	_, err := Parse([]string{"10", "20"}, nowFixed())
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*TooManyArgumentsError)))
}
