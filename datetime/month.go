package datetime

import (
	"strconv"
	"strings"
)

var monthNames = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// monthRule maps leading name fragments to a zero-based month. Prefixes cover
// English, French and Spanish names and abbreviations; "fe" and "se" stay two
// letters long so they can't collide with Friday and Saturday/Sunday.
type monthRule struct {
	prefixes []string
	month0   int
}

// Rules are evaluated in month order and the last matching rule wins. Callers
// depend on that ordering, so don't reorder entries or return early.
var monthRules = []monthRule{
	{[]string{"ja", "en"}, 0},
	{[]string{"fe", "fé"}, 1},
	{[]string{"mar"}, 2},
	{[]string{"ap", "ab", "av"}, 3},
	{[]string{"may", "mai"}, 4},
	{[]string{"jun", "juin"}, 5},
	{[]string{"jul", "juil"}, 6},
	{[]string{"au", "ag", "ao"}, 7},
	{[]string{"se"}, 8},
	{[]string{"o"}, 9},
	{[]string{"n"}, 10},
	{[]string{"d"}, 11},
}

// ResolveMonth maps a numeral or a month name fragment to a zero-based month
// index. Numeric input is taken as already zero-based unless oneBased is set.
func ResolveMonth(input string, oneBased bool) (int, bool) {
	input = strings.TrimSpace(input)
	if n, ok := leadingInt(input); ok {
		if oneBased {
			n--
		}
		if n < 0 || n > 11 {
			return 0, false
		}
		return n, true
	}

	lower := strings.ToLower(input)
	month0 := -1
	for _, rule := range monthRules {
		for _, prefix := range rule.prefixes {
			if strings.HasPrefix(lower, prefix) {
				month0 = rule.month0
			}
		}
	}
	if month0 == -1 {
		return 0, false
	}
	return month0, true
}

// MonthName returns the full English name for a zero-based month index.
func MonthName(month0 int) string {
	return monthNames[month0]
}

// MonthShortName returns the three-letter English name for a zero-based month
// index.
func MonthShortName(month0 int) string {
	return monthNames[month0][:3]
}

// YearPivot is the two-digit year below which the 2000s are assumed.
const YearPivot = 60

// ExpandYear turns a one- or two-digit year into a four-digit one. Years of
// three or more digits come back unchanged.
func ExpandYear(token string) (int, bool) {
	year, ok := leadingInt(strings.TrimSpace(token))
	if !ok {
		return 0, false
	}
	if year < YearPivot {
		return year + 2000, true
	}
	if year < 100 {
		return year + 1900, true
	}
	return year, true
}

// leadingInt parses the digit run at the start of str, so "05" and "5th" both
// resolve while "jan" doesn't.
func leadingInt(str string) (int, bool) {
	span := 0
	for span < len(str) && str[span] >= '0' && str[span] <= '9' {
		span++
	}
	if span == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(str[:span])
	if err != nil {
		return 0, false
	}
	return n, true
}
