// Package datetime turns loosely formatted human-entered date and time
// strings into concrete calendar values. Input can mix numeric and alphabetic
// tokens in nearly any order ("Jan 5, 30", "1/2/3", "20010203",
// "2001-04-20 4:00p"); the parser classifies each token as year, month or day
// through a series of heuristic passes and assembles the closest valid date.
//
// Parsing is pure and stateless. Anything that needs "now" takes an explicit
// reference time; the package-level variants read the clock once per call.
package datetime

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"

	"formtools/config"
)

// ErrInvalidDate and ErrInvalidTime are sentinels for input that cannot be
// resolved. Malformed user input never panics; it always comes back as one of
// these.
var (
	ErrInvalidDate = errors.New("Invalid Date")
	ErrInvalidTime = errors.New("Invalid Time")
)

// Relative day words, checked by containment against the whole lowercased
// input. Adding a language means adding words here.
var (
	todayWords     = []string{"today", "now", "hoy", "ahora", "jour", "maitenant"}
	tomorrowWords  = []string{"tomorrow", "manana", "mañana", "demain"}
	yesterdayWords = []string{"yesterday", "ayer", "hier"}
)

var (
	embeddedTimeRe *regexp2.Regexp
	eightDigitRe   *regexp2.Regexp
	sixDigitRe     *regexp2.Regexp
	tokenSplitRe   *regexp.Regexp
)

func init() {
	embeddedTimeRe = regexp2.MustCompile(`\d{1,2}:\d\d(?::\d\ds?)?\s?(?:[ap]m?)?`, regexp2.IgnoreCase)
	eightDigitRe = regexp2.MustCompile(`(\d\d\d\d)(\d\d)(\d\d)`, regexp2.None)
	sixDigitRe = regexp2.MustCompile(`(\d\d)(\d\d)(\d\d)`, regexp2.None)
	// Tokens are runs of ASCII letters, digits and "é" (the é keeps French
	// month fragments like "dé" intact).
	tokenSplitRe = regexp.MustCompile(`[^0-9A-Za-zé]+`)
}

// ParseDate parses str against the current clock. See ParseDateAt.
func ParseDate(str string) (time.Time, error) {
	return ParseDateAt(str, Now())
}

// ParseDateAt parses a loosely formatted date string against the given
// reference time. The reference supplies the year for year-less input, the
// base date for relative words, and the location of the result. Unparseable
// input yields ErrInvalidDate.
//
// When a token's role is ambiguous the resolution order is documented by the
// passes below; the overall default ambiguity reading is YY-MM-DD, so
// "1/2/3" is 2001-02-03. Impossible dates roll forward to the closest valid
// one ("1999-02-29" is 1999-03-01) rather than failing.
func ParseDateAt(str string, now time.Time) (time.Time, error) {
	// Today at midnight, in the caller's location.
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	str = strings.ToLower(strings.TrimSpace(str))

	if containsAny(str, yesterdayWords) {
		date = date.AddDate(0, 0, -1)
	} else if containsAny(str, tomorrowWords) {
		date = date.AddDate(0, 0, 1)
	}
	if containsAny(str, todayWords) || containsAny(str, tomorrowWords) || containsAny(str, yesterdayWords) {
		return date, nil
	}

	// Too short to hold a disambiguable date.
	if utf8.RuneCountInString(str) < 5 {
		return time.Time{}, ErrInvalidDate
	}

	// Pull out an embedded clock time before tokenizing.
	var timeOfDay TimeOfDay
	if ok, _ := embeddedTimeRe.MatchString(str); ok {
		timeOfDay = ParseTime(str)
		replaced, err := embeddedTimeRe.Replace(str, "", -1, -1)
		if err == nil {
			str = strings.TrimSpace(replaced)
		}
	}

	// meanings tracks the role guessed for each of the first three tokens:
	// 0 for unknown, or 'y', 'm', 'd'. It exists for one parse only.
	var meanings [3]byte

	var (
		year, month0, day         int
		yearSet, monthSet, daySet bool
	)

	// An undelimited 8- or 6-digit number reads as YYYYMMDD / YYMMDD.
	if utf8.RuneCountInString(str) == 8 {
		str = replaceFirst(eightDigitRe, str, "$1-$2-$3")
	}
	if utf8.RuneCountInString(str) == 6 {
		str = replaceFirst(sixDigitRe, str, "$1-$2-$3")
	}

	// Only two tokens means the year is missing; prepend the current one.
	if len(tokenSplitRe.Split(str, -1)) < 3 {
		year, yearSet = date.Year(), true
		str = strconv.Itoa(year) + " " + str
		meanings[0] = 'y'
	}

	tokens := tokenSplitRe.Split(str, -1)

	// Pass 1: roles that are obvious because the token can't be anything
	// else. Alphabetic tokens only ever try to be months.
	for i, token := range tokens {
		if i >= len(meanings) || meanings[i] != 0 {
			continue
		}
		tokenInt, tokenIntOk := leadingInt(token)
		switch {
		case startsWithLetter(token):
			if m0, ok := ResolveMonth(token, false); ok {
				month0, monthSet = m0, true
				meanings[i] = 'm'
			}
		case !yearSet && tokenIntOk && tokenInt >= 1000:
			year, yearSet = tokenInt, true
			meanings[i] = 'y'
		case !yearSet && tokenIntOk && tokenInt > 31:
			if y, ok := ExpandYear(token); ok {
				year, yearSet = y, true
			}
			meanings[i] = 'y'
		case yearSet && !daySet && tokenIntOk && tokenInt > 12 && tokenInt <= 31:
			day, daySet = tokenInt, true
			meanings[i] = 'd'
		}
	}

	// Pass 2: one known role pins down the others via a common format.

	// First token is the year: assume YYYY/M/D.
	if meanings[0] == 'y' && meanings[1] == 0 && meanings[2] == 0 {
		if v, ok := leadingInt(tokenAt(tokens, 1)); ok {
			month0, monthSet = v-1, true
		}
		meanings[1] = 'm'
		if v, ok := leadingInt(tokenAt(tokens, 2)); ok {
			day, daySet = v, true
		}
		meanings[2] = 'd'
	}

	// Last token is the year: assume MM/DD/YYYY.
	if meanings[2] == 'y' && meanings[0] == 0 && meanings[1] == 0 {
		if v, ok := leadingInt(tokenAt(tokens, 0)); ok {
			month0, monthSet = v-1, true
		}
		meanings[0] = 'm'
		if v, ok := leadingInt(tokenAt(tokens, 1)); ok {
			day, daySet = v, true
		}
		meanings[1] = 'd'
	}

	// First token is the month: assume MM/DD/YY.
	if meanings[0] == 'm' && meanings[1] == 0 && meanings[2] == 0 {
		if v, ok := leadingInt(tokenAt(tokens, 1)); ok {
			day, daySet = v, true
		}
		meanings[1] = 'd'
		if y, ok := ExpandYear(tokenAt(tokens, 2)); ok {
			year, yearSet = y, true
		}
		meanings[2] = 'y'
	}

	// Pass 3: fill whatever is still unknown, lowest position first, trying
	// year, then month, then day. A position that fits nothing means the
	// parse is ambiguous beyond repair; bail rather than guess.
	for {
		missing := -1
		for i, meaning := range meanings {
			if meaning == 0 {
				missing = i
				break
			}
		}
		if missing == -1 {
			break
		}

		token := tokenAt(tokens, missing)
		tokenInt, tokenIntOk := leadingInt(token)
		switch {
		case !hasMeaning(meanings, 'y'):
			if y, ok := ExpandYear(token); ok {
				year, yearSet = y, true
			}
			meanings[missing] = 'y'
		case !hasMeaning(meanings, 'm') && tokenIntOk && tokenInt <= 12:
			month0, monthSet = tokenInt-1, true
			meanings[missing] = 'm'
		case !hasMeaning(meanings, 'd') && tokenIntOk && tokenInt <= 31:
			day, daySet = tokenInt, true
			meanings[missing] = 'd'
		default:
			return time.Time{}, ErrInvalidDate
		}
	}

	if !yearSet || !monthSet || !daySet {
		return time.Time{}, ErrInvalidDate
	}

	hour, minute, second := 0, 0, 0
	if timeOfDay.HourIsSet {
		hour = timeOfDay.Hour
	}
	if timeOfDay.MinuteIsSet {
		minute = timeOfDay.Minute
	}
	if timeOfDay.SecondIsSet {
		second = timeOfDay.Second
	}

	// time.Date normalizes out-of-range components, which is exactly the
	// closest-valid-date behavior we want for things like Feb 29 in a
	// non-leap year.
	return time.Date(year, time.Month(month0+1), day, hour, minute, second, 0, now.Location()), nil
}

// SanitizeDate parses str and formats the result with the given layout,
// using the package default layout when layout is empty.
func SanitizeDate(str string, layout string, now time.Time) (string, error) {
	if layout == "" {
		layout = config.Cfg.DateLayout
	}
	date, err := ParseDateAt(str, now)
	if err != nil {
		return "", err
	}
	return Format(date, layout), nil
}

func containsAny(str string, words []string) bool {
	for _, word := range words {
		if strings.Contains(str, word) {
			return true
		}
	}
	return false
}

func startsWithLetter(token string) bool {
	if token == "" {
		return false
	}
	c := token[0]
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return true
	}
	r, _ := utf8.DecodeRuneInString(token)
	return r == 'é'
}

func tokenAt(tokens []string, i int) string {
	if i >= len(tokens) {
		return ""
	}
	return tokens[i]
}

func hasMeaning(meanings [3]byte, meaning byte) bool {
	for _, m := range meanings {
		if m == meaning {
			return true
		}
	}
	return false
}
