//go:build testing

package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	type Test struct {
		Str              string
		ExpectedHour     int
		ExpectedHourSet  bool
		ExpectedMinute   int
		ExpectedMinSet   bool
		ExpectedSecond   int
		ExpectedMeridiem string
	}

	tests := []Test{
		// Bare hours
		{"1", 1, true, 0, true, 0, "AM"},
		{"12", 12, true, 0, true, 0, "PM"},
		{"23", 23, true, 0, true, 0, "PM"},
		{"24", 0, true, 0, true, 0, "AM"},

		// Lazy hour with meridiem
		{"1p", 13, true, 0, true, 0, "PM"},
		{"1 p", 13, true, 0, true, 0, "PM"},
		{"11a", 11, true, 0, true, 0, "AM"},
		{"12a", 0, true, 0, true, 0, "AM"},
		{"12p", 12, true, 0, true, 0, "PM"},

		// Hour and minute
		{"4:30", 4, true, 30, true, 0, "AM"},
		{"4:30p", 16, true, 30, true, 0, "PM"},
		{"4:30 pm", 16, true, 30, true, 0, "PM"},
		{"12:30am", 0, true, 30, true, 0, "AM"},
		{"13:45", 13, true, 45, true, 0, "PM"},
		{"24:12", 0, true, 12, true, 0, "AM"},

		// Seconds
		{"3:30:05", 3, true, 30, true, 5, "AM"},
		{"3:30:05pm", 15, true, 30, true, 5, "PM"},
		{"11:22:33s", 11, true, 22, true, 33, "AM"},

		// Minute out of range stays unset
		{"5:99", 5, true, 0, false, 0, "AM"},
	}

	for _, test := range tests {
		tod := ParseTime(test.Str)
		require.Equal(t, test.ExpectedHourSet, tod.HourIsSet, test.Str)
		require.Equal(t, test.ExpectedHour, tod.Hour, test.Str)
		require.Equal(t, test.ExpectedMinSet, tod.MinuteIsSet, test.Str)
		if test.ExpectedMinSet {
			require.Equal(t, test.ExpectedMinute, tod.Minute, test.Str)
		}
		require.True(t, tod.SecondIsSet, test.Str)
		require.Equal(t, test.ExpectedSecond, tod.Second, test.Str)
		require.Equal(t, test.ExpectedMeridiem, tod.Meridiem, test.Str)
	}
}

func TestParseTimeNoTime(t *testing.T) {
	tod := ParseTime("")
	require.False(t, tod.HourIsSet)
	require.False(t, tod.MinuteIsSet)

	tod = ParseTime("hello")
	require.False(t, tod.HourIsSet)
}

func TestSanitizeTime(t *testing.T) {
	now := time.Date(2001, time.September, 15, 14, 25, 0, 0, time.UTC)

	type Test struct {
		Str      string
		Layout   string
		Expected string
	}

	tests := []Test{
		// Clock words
		{"noon", "h:mm A", "12:00 PM"},
		{"Noon", "h:mm A", "12:00 PM"},
		{"mediodia", "h:mm A", "12:00 PM"},
		{"midnight", "h:mm A", "12:00 AM"},
		{"medianoche", "h:mm A", "12:00 AM"},
		{"now", "h:mm A", "2:25 PM"},
		{"ahora", "h:mm A", "2:25 PM"},

		// Bare hours keep their 24h reading without a meridiem
		{"9", "h:mm A", "9:00 AM"},
		{"14", "h:mm A", "2:00 PM"},
		{"9pm", "h:mm A", "9:00 PM"},
		{"12am", "h:mm A", "12:00 AM"},

		// Military time
		{"1330", "h:mm A", "1:30 PM"},
		{"1330h", "h:mm A", "1:30 PM"},
		{"0730", "h:mm A", "7:30 AM"},
		{"130", "h:mm A", "1:30 AM"},

		// Delimited forms
		{"4:30", "h:mm A", "4:30 AM"},
		{"4:30 pm", "h:mm A", "4:30 PM"},
		{"7:15p", "h:mm A", "7:15 PM"},
		{"16:45", "h:mm A", "4:45 PM"},
		{"12:00 am", "h:mm A", "12:00 AM"},

		// Seconds, with and without delimiters
		{"4:30:59", "H:mm:ss", "4:30:59"},
		{"123000", "H:mm:ss", "12:30:00"},

		// Other layouts
		{"4:30 pm", "HH:mm", "16:30"},
		{"9", "hh:mm A", "09:00 AM"},
	}

	for _, test := range tests {
		formatted, err := SanitizeTime(test.Str, test.Layout, now)
		require.NoError(t, err, test.Str)
		require.Equal(t, test.Expected, formatted, test.Str)
	}
}

func TestResolveTime(t *testing.T) {
	now := time.Date(2001, time.September, 15, 14, 25, 0, 0, time.UTC)

	resolved, err := ResolveTime("noon", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2001, time.September, 15, 12, 0, 0, 0, time.UTC), resolved)

	resolved, err = ResolveTime("1330", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2001, time.September, 15, 13, 30, 0, 0, time.UTC), resolved)

	resolved, err = ResolveTime("4:30:59 pm", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2001, time.September, 15, 16, 30, 59, 0, time.UTC), resolved)

	_, err = ResolveTime("soon", now)
	require.ErrorIs(t, err, ErrInvalidTime)
}

func TestSanitizeTimeInvalid(t *testing.T) {
	now := time.Date(2001, time.September, 15, 14, 25, 0, 0, time.UTC)

	for _, str := range []string{"", "soon", "later", "pm", ":30"} {
		_, err := SanitizeTime(str, "h:mm A", now)
		require.ErrorIs(t, err, ErrInvalidTime, str)
	}
}
