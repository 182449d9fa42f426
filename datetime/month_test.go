//go:build testing

package datetime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveMonth(t *testing.T) {
	type Test struct {
		Input    string
		OneBased bool
		Expected int
		Ok       bool
	}

	tests := []Test{
		// Numeric input
		{"0", false, 0, true},
		{"11", false, 11, true},
		{"12", false, 0, false},
		{"5", true, 4, true},
		{"12", true, 11, true},
		{"1", true, 0, true},
		{"0", true, 0, false},
		{"13", true, 0, false},

		// English names and abbreviations
		{"jan", false, 0, true},
		{"January", false, 0, true},
		{"feb", false, 1, true},
		{"mar", false, 2, true},
		{"march", false, 2, true},
		{"apr", false, 3, true},
		{"may", false, 4, true},
		{"jun", false, 5, true},
		{"june", false, 5, true},
		{"jul", false, 6, true},
		{"aug", false, 7, true},
		{"sep", false, 8, true},
		{"sept", false, 8, true},
		{"oct", false, 9, true},
		{"nov", false, 10, true},
		{"dec", false, 11, true},

		// Spanish
		{"enero", false, 0, true},
		{"febrero", false, 1, true},
		{"marzo", false, 2, true},
		{"abril", false, 3, true},
		{"mayo", false, 4, true},
		{"junio", false, 5, true},
		{"julio", false, 6, true},
		{"agosto", false, 7, true},
		{"septiembre", false, 8, true},
		{"octubre", false, 9, true},
		{"noviembre", false, 10, true},
		{"diciembre", false, 11, true},

		// French
		{"janvier", false, 0, true},
		{"février", false, 1, true},
		{"mars", false, 2, true},
		{"avril", false, 3, true},
		{"mai", false, 4, true},
		{"juin", false, 5, true},
		{"juillet", false, 6, true},
		{"août", false, 7, true},
		{"septembre", false, 8, true},
		{"octobre", false, 9, true},
		{"novembre", false, 10, true},
		{"décembre", false, 11, true},

		// Case and whitespace
		{"JAN", false, 0, true},
		{" Oct ", false, 9, true},

		// Unresolvable
		{"xyz", false, 0, false},
		{"", false, 0, false},
	}

	for _, test := range tests {
		month0, ok := ResolveMonth(test.Input, test.OneBased)
		require.Equal(t, test.Ok, ok, test.Input)
		require.Equal(t, test.Expected, month0, test.Input)
	}
}

func TestMonthNames(t *testing.T) {
	require.Equal(t, "January", MonthName(0))
	require.Equal(t, "December", MonthName(11))
	require.Equal(t, "Jan", MonthShortName(0))
	require.Equal(t, "Sep", MonthShortName(8))
}

func TestExpandYear(t *testing.T) {
	type Test struct {
		Input    string
		Expected int
		Ok       bool
	}

	tests := []Test{
		{"0", 2000, true},
		{"5", 2005, true},
		{"05", 2005, true},
		{"30", 2030, true},
		{"59", 2059, true},
		{"60", 1960, true},
		{"99", 1999, true},
		{"100", 100, true},
		{"1999", 1999, true},
		{"2030", 2030, true},
		{" 05 ", 2005, true},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, test := range tests {
		year, ok := ExpandYear(test.Input)
		require.Equal(t, test.Ok, ok, test.Input)
		require.Equal(t, test.Expected, year, test.Input)
	}
}
