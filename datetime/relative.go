package datetime

import (
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// offsetGroupRe matches one signed offset group: "+1y", "-2w", "3".
var offsetGroupRe *regexp2.Regexp

func init() {
	offsetGroupRe = regexp2.MustCompile(`([+\-]?[0-9]+)\s*([dDwWmMyY])?`, regexp2.None)
}

// ResolveRelative turns a date spec into a concrete date at midnight. The
// spec can be an absolute date in any form ParseDateAt accepts, or a string
// of signed offsets against the reference date: "+1y-1w+1d" means plus one
// year, minus one week, plus one day. A bare number counts days. Units are
// d (days), w (weeks), m (months) and y (years), case-insensitive, default d.
//
// Month and year steps clamp the day-of-month to the last day of the
// resulting month, so one month after Jan 31 is Feb 28 (or 29), not Mar 2.
// An empty spec falls back to the given default.
func ResolveRelative(spec string, ref time.Time, fallback time.Time) time.Time {
	if date, err := ParseDateAt(spec, ref); err == nil {
		return midnight(date)
	}

	if spec == "" {
		if fallback.IsZero() {
			return fallback
		}
		return midnight(fallback)
	}

	year := ref.Year()
	month0 := int(ref.Month()) - 1
	day := ref.Day()

	m, _ := offsetGroupRe.FindStringMatch(spec)
	for m != nil {
		groups := m.Groups()
		n, err := strconv.Atoi(groups[1].String())
		if err == nil {
			unit := strings.ToLower(groups[2].String())
			switch unit {
			case "", "d":
				day += n
			case "w":
				day += n * 7
			case "m":
				month0 += n
				day = minInt(day, DaysInMonth(year, month0))
			case "y":
				year += n
				day = minInt(day, DaysInMonth(year, month0))
			}
		}
		m, _ = offsetGroupRe.FindNextMatch(m)
	}

	return time.Date(year, time.Month(month0+1), day, 0, 0, 0, 0, ref.Location())
}

// DaysInMonth returns the number of days in the given zero-based month,
// computed as 32 minus the day-of-month that day 32 lands on. month0 may be
// out of range; it normalizes like time.Date does.
func DaysInMonth(year, month0 int) int {
	return 32 - time.Date(year, time.Month(month0+1), 32, 0, 0, 0, 0, time.UTC).Day()
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
