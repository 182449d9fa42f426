//go:build testing

package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolveRelative(t *testing.T) {
	ref := time.Date(2001, time.September, 15, 10, 30, 0, 0, time.UTC)

	type Test struct {
		Spec     string
		Expected time.Time
	}

	day := func(year int, month time.Month, d int) time.Time {
		return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []Test{
		// Bare numbers count days
		{"0", day(2001, time.September, 15)},
		{"7", day(2001, time.September, 22)},
		{"-1", day(2001, time.September, 14)},

		// Single units
		{"+1d", day(2001, time.September, 16)},
		{"+2w", day(2001, time.September, 29)},
		{"-2w", day(2001, time.September, 1)},
		{"+1m", day(2001, time.October, 15)},
		{"-1m", day(2001, time.August, 15)},
		{"+1y", day(2002, time.September, 15)},
		{"-1y", day(2000, time.September, 15)},

		// Units are case-insensitive
		{"+1D", day(2001, time.September, 16)},
		{"+1Y", day(2002, time.September, 15)},

		// Chained offsets apply left to right
		{"+1y-1w+1d", day(2002, time.September, 9)},
		{"+1m+1m", day(2001, time.November, 15)},

		// Absolute dates resolve directly, at midnight
		{"2005-06-07", day(2005, time.June, 7)},
		{"today", day(2001, time.September, 15)},
		{"tomorrow", day(2001, time.September, 16)},
	}

	for _, test := range tests {
		resolved := ResolveRelative(test.Spec, ref, ref)
		require.Equal(t, test.Expected, resolved, test.Spec)
	}
}

func TestResolveRelativeMonthClamp(t *testing.T) {
	// One month after Jan 31 is the last day of February, not March 2
	ref := time.Date(2001, time.January, 31, 12, 0, 0, 0, time.UTC)
	resolved := ResolveRelative("+1m", ref, ref)
	require.Equal(t, time.Date(2001, time.February, 28, 0, 0, 0, 0, time.UTC), resolved)

	leapRef := time.Date(2004, time.January, 31, 12, 0, 0, 0, time.UTC)
	resolved = ResolveRelative("+1m", leapRef, leapRef)
	require.Equal(t, time.Date(2004, time.February, 29, 0, 0, 0, 0, time.UTC), resolved)

	// A year step off Feb 29 lands on Feb 28
	feb29 := time.Date(2004, time.February, 29, 12, 0, 0, 0, time.UTC)
	resolved = ResolveRelative("+1y", feb29, feb29)
	require.Equal(t, time.Date(2005, time.February, 28, 0, 0, 0, 0, time.UTC), resolved)
}

func TestResolveRelativeFallback(t *testing.T) {
	ref := time.Date(2001, time.September, 15, 10, 30, 0, 0, time.UTC)
	fallback := time.Date(2002, time.March, 4, 18, 0, 0, 0, time.UTC)

	resolved := ResolveRelative("", ref, fallback)
	require.Equal(t, time.Date(2002, time.March, 4, 0, 0, 0, 0, time.UTC), resolved)

	resolved = ResolveRelative("", ref, time.Time{})
	require.True(t, resolved.IsZero())
}

func TestDaysInMonth(t *testing.T) {
	type Test struct {
		Year     int
		Month0   int
		Expected int
	}

	tests := []Test{
		{2001, 0, 31},
		{2001, 1, 28},
		{2004, 1, 29},
		{2000, 1, 29},
		{1900, 1, 28},
		{2001, 3, 30},
		{2001, 8, 30},
		{2001, 11, 31},
		// Out-of-range months normalize into adjacent years
		{2001, 12, 31},
		{2001, -1, 31},
	}

	for _, test := range tests {
		require.Equal(t, test.Expected, DaysInMonth(test.Year, test.Month0), test)
	}
}
