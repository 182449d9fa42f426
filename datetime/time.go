package datetime

import (
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"formtools/config"
)

// TimeOfDay is a clock time pulled out of free-form text. Fields carry an
// IsSet flag because the extraction passes may resolve only some of them; an
// unset Hour means no time was found at all.
type TimeOfDay struct {
	Meridiem    string // "AM" or "PM"
	Hour        int    // 0-23 after normalization
	HourIsSet   bool
	Minute      int
	MinuteIsSet bool
	Second      int
	SecondIsSet bool
}

var (
	secondsRe      *regexp2.Regexp
	secondsStripRe *regexp2.Regexp
	hourMinRe      *regexp2.Regexp
	hourMinStripRe *regexp2.Regexp
	lazyHourRe     *regexp2.Regexp
	lazyHourOptRe  *regexp2.Regexp
	lazyStripRe    *regexp2.Regexp

	looseSecondsRe      *regexp2.Regexp
	looseSecondsStripRe *regexp2.Regexp
	militaryRe          *regexp2.Regexp
	trailingMeridiemRe  *regexp2.Regexp
	leadingDigitRe      *regexp2.Regexp
)

func init() {
	secondsRe = regexp2.MustCompile(`\d{1,2}:\d\d:(\d\d)s?([ap]m?)?`, regexp2.IgnoreCase)
	secondsStripRe = regexp2.MustCompile(`(\d{1,2}:\d\d):(\d\d)\s?([ap]m?)?`, regexp2.IgnoreCase)
	hourMinRe = regexp2.MustCompile(`(\d{1,2}):(\d\d)\s?([ap])?`, regexp2.IgnoreCase)
	hourMinStripRe = regexp2.MustCompile(`\d{1,2}:\d\d\s?([ap]m?)?`, regexp2.IgnoreCase)
	lazyHourRe = regexp2.MustCompile(`(\d{1,2})\s?([ap])`, regexp2.IgnoreCase)
	lazyHourOptRe = regexp2.MustCompile(`(\d{1,2})\s?([ap])?`, regexp2.IgnoreCase)
	lazyStripRe = regexp2.MustCompile(`\d{1,2}\s?([ap]m?)`, regexp2.IgnoreCase)

	// The sanitizer variants accept undelimited digits ("123000") and a 3-4
	// digit military time.
	looseSecondsRe = regexp2.MustCompile(`\d{1,2}:?\d\d:?(\d\d)s?([ap]m?)?`, regexp2.IgnoreCase)
	looseSecondsStripRe = regexp2.MustCompile(`(\d{1,2}:?\d\d):?(\d\d)\s?([ap]m?)?`, regexp2.IgnoreCase)
	militaryRe = regexp2.MustCompile(`(\d{3,4})h?\s*([ap]m?)?`, regexp2.IgnoreCase)
	trailingMeridiemRe = regexp2.MustCompile(`.*([ap]m?)`, regexp2.IgnoreCase)
	leadingDigitRe = regexp2.MustCompile(`^\d+.*`, regexp2.None)
}

// ParseTime extracts an hour, minute, second and meridiem from a string
// containing something resembling a time. Each pass removes what it matched
// from the working string so later passes can't re-match the same digits.
// It never fails: when no digits are found the Hour stays unset and the
// caller decides what that means.
func ParseTime(str string) TimeOfDay {
	var t TimeOfDay
	var meridiem string

	// A bare 1-2 digit number is just an hour.
	if len(str) >= 1 && len(str) <= 2 && allDigits(str) {
		t.Hour, _ = strconv.Atoi(str)
		t.HourIsSet = true
		t.Minute, t.MinuteIsSet = 0, true
		t.Second, t.SecondIsSet = 0, true
	}

	// Catch any seconds that might be present, then collapse H:MM:SS down to
	// H:MM so the next pass parses cleanly.
	if m, _ := secondsRe.FindStringMatch(str); m != nil {
		if second, err := strconv.Atoi(m.Groups()[1].String()); err == nil {
			t.Second, t.SecondIsSet = second, true
		}
		str = replaceFirst(secondsStripRe, str, "$1$3")
	}

	// H:MM with an optional meridiem letter.
	if m, _ := hourMinRe.FindStringMatch(str); m != nil {
		groups := m.Groups()
		if hour, err := strconv.Atoi(groups[1].String()); err == nil && hour <= 24 {
			t.Hour, t.HourIsSet = hour, true
		}
		if groups[2].Length > 0 {
			if minute, err := strconv.Atoi(groups[2].String()); err == nil && minute < 60 {
				t.Minute, t.MinuteIsSet = minute, true
			}
		}
		if groups[3].Length > 0 {
			meridiem = groups[3].String()
		}

		// Remove the time before anything downstream tokenizes the string.
		if t.HourIsSet && t.MinuteIsSet {
			str = strings.TrimSpace(replaceFirst(hourMinStripRe, str, ""))
		}
	}

	// A lazy, hour-only time with a meridiem, like "1p".
	if !t.HourIsSet {
		if m, _ := lazyHourRe.FindStringMatch(str); m != nil {
			groups := m.Groups()
			if hour, err := strconv.Atoi(groups[1].String()); err == nil {
				t.Hour, t.HourIsSet = hour, true
			}
			if groups[2].Length > 0 {
				meridiem = groups[2].String()
			}
			t.Minute, t.MinuteIsSet = 0, true
			t.Second, t.SecondIsSet = 0, true
			str = replaceFirst(lazyStripRe, str, "")
		}
	}

	// Infer a missing meridiem before 24 is normalized away: hours 12-23 read
	// as PM, everything else (24 included) as AM.
	if meridiem == "" {
		if t.HourIsSet && t.Hour >= 12 && t.Hour < 24 {
			meridiem = "P"
		} else {
			meridiem = "A"
		}
	}
	t.Meridiem = canonicalMeridiem(meridiem)

	if t.HourIsSet {
		t.Hour = to24Hour(t.Hour, t.Meridiem)
	}
	if !t.SecondIsSet {
		t.Second, t.SecondIsSet = 0, true
	}
	// Minute deliberately stays unset when only an hour and meridiem matched
	// through the H:MM pass; the caller picks the default.

	return t
}

// SanitizeTime normalizes a loosely formatted time to the given layout. See
// ResolveTime for what is accepted.
func SanitizeTime(str string, layout string, now time.Time) (string, error) {
	if layout == "" {
		layout = config.Cfg.TimeLayout
	}
	t, err := ResolveTime(str, now)
	if err != nil {
		return "", err
	}
	return Format(t, layout), nil
}

// ResolveTime parses a loosely formatted time and places it on the reference
// date. It accepts clock words ("noon", "medianoche"), military times
// ("1330h") and the same delimited forms ParseTime does, but requires the
// remaining string to start with a digit. The reference time also supplies
// "now" for the clock words.
func ResolveTime(str string, now time.Time) (time.Time, error) {
	str = strings.TrimSpace(str)

	switch strings.ToLower(str) {
	case "now", "ahora", "ahorita":
		str = Format(now, "h:mm A")
	case "noon", "mediodía", "mediodia":
		str = "12:00 PM"
	case "midnight", "medianoche":
		str = "12:00 AM"
	}

	if ok, _ := leadingDigitRe.MatchString(str); !ok {
		return time.Time{}, ErrInvalidTime
	}

	var hourStr, minuteStr, secondStr, meridiem string

	// The last meridiem in the string wins, so "3pm 4am" reads as AM. Odd but
	// long-standing.
	if m, _ := trailingMeridiemRe.FindStringMatch(str); m != nil {
		meridiem = m.Groups()[1].String()
	}

	if m, _ := looseSecondsRe.FindStringMatch(str); m != nil {
		secondStr = m.Groups()[1].String()
		str = replaceFirst(looseSecondsStripRe, str, "$1$3")
	}

	// A 3-4 digit number with no delimiter is a 24h military time.
	if m, _ := militaryRe.FindStringMatch(str); m != nil {
		digits := m.Groups()[1].String()
		potentialMinutes := digits[len(digits)-2:]
		if v, err := strconv.Atoi(potentialMinutes); err == nil && v < 60 {
			minuteStr = potentialMinutes
		}
		potentialHour := digits[:len(digits)-2]
		if v, err := strconv.Atoi(potentialHour); err == nil && v < 24 {
			hourStr = potentialHour
		}
	}

	if m, _ := hourMinRe.FindStringMatch(str); m != nil {
		groups := m.Groups()
		if v, err := strconv.Atoi(groups[1].String()); err == nil && v < 24 {
			hourStr = groups[1].String()
		}
		if v, err := strconv.Atoi(groups[2].String()); err == nil && v < 60 {
			minuteStr = groups[2].String()
		}
		if groups[3].Length > 0 {
			meridiem = groups[3].String()
		}
		if hourStr != "" && minuteStr != "" {
			str = strings.TrimSpace(replaceFirst(hourMinStripRe, str, ""))
		}
	}

	// Lazy hour; unlike ParseTime the meridiem is optional here so a bare "9"
	// still reads as an hour.
	if hourStr == "" {
		if m, _ := lazyHourOptRe.FindStringMatch(str); m != nil {
			groups := m.Groups()
			hourStr = groups[1].String()
			if groups[2].Length > 0 {
				meridiem = groups[2].String()
			}
			str = replaceFirst(lazyStripRe, str, "")
		}
	}

	if meridiem != "" {
		meridiem = canonicalMeridiem(meridiem)
	}

	hour, hourErr := strconv.Atoi(hourStr)
	if meridiem == "AM" && hourErr == nil && hour == 12 {
		hour = 0
	}
	if meridiem == "PM" && hourErr == nil && hour < 12 && hour > 0 {
		hour += 12
	}

	// A bare hour with no meridiem keeps its 24h reading.

	if minuteStr == "" {
		minuteStr = "00"
	}
	if secondStr == "" {
		secondStr = "00"
	}

	if hourStr == "" || hourErr != nil {
		return time.Time{}, ErrInvalidTime
	}
	minute, _ := strconv.Atoi(minuteStr)
	second, _ := strconv.Atoi(secondStr)

	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, second, 0, now.Location()), nil
}

func canonicalMeridiem(meridiem string) string {
	switch strings.ToUpper(meridiem[:1]) {
	case "P":
		return "PM"
	case "A":
		return "AM"
	default:
		return strings.ToUpper(meridiem[:1])
	}
}

// to24Hour applies the midnight and afternoon conversions: 12 AM and 24
// become 0, and 1-11 PM gain twelve hours.
func to24Hour(hour int, meridiem string) int {
	if (meridiem == "AM" && hour == 12) || hour == 24 {
		return 0
	}
	if meridiem == "PM" && hour < 12 && hour > 0 {
		return hour + 12
	}
	return hour
}

func allDigits(str string) bool {
	for i := 0; i < len(str); i++ {
		if str[i] < '0' || str[i] > '9' {
			return false
		}
	}
	return len(str) > 0
}

func replaceFirst(re *regexp2.Regexp, str string, replacement string) string {
	replaced, err := re.Replace(str, replacement, -1, 1)
	if err != nil {
		return str
	}
	return replaced
}
