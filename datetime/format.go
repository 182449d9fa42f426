package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// formatTokens maps layout tokens to renderers. Ordered longest-first within
// each letter family so "YYYY" isn't half-consumed as two "YY"s.
var formatTokens = []struct {
	token  string
	render func(t time.Time) string
}{
	{"YYYY", func(t time.Time) string { return fmt.Sprintf("%04d", t.Year()) }},
	{"YY", func(t time.Time) string { return fmt.Sprintf("%02d", t.Year()%100) }},
	{"MMMM", func(t time.Time) string { return monthNames[int(t.Month())-1] }},
	{"MMM", func(t time.Time) string { return monthNames[int(t.Month())-1][:3] }},
	{"MM", func(t time.Time) string { return fmt.Sprintf("%02d", int(t.Month())) }},
	{"M", func(t time.Time) string { return strconv.Itoa(int(t.Month())) }},
	{"DD", func(t time.Time) string { return fmt.Sprintf("%02d", t.Day()) }},
	{"D", func(t time.Time) string { return strconv.Itoa(t.Day()) }},
	{"dddd", func(t time.Time) string { return t.Weekday().String() }},
	{"ddd", func(t time.Time) string { return t.Weekday().String()[:3] }},
	{"dd", func(t time.Time) string { return t.Weekday().String()[:2] }},
	{"d", func(t time.Time) string { return strconv.Itoa(int(t.Weekday())) }},
	{"HH", func(t time.Time) string { return fmt.Sprintf("%02d", t.Hour()) }},
	{"H", func(t time.Time) string { return strconv.Itoa(t.Hour()) }},
	{"hh", func(t time.Time) string { return fmt.Sprintf("%02d", hour12(t)) }},
	{"h", func(t time.Time) string { return strconv.Itoa(hour12(t)) }},
	{"mm", func(t time.Time) string { return fmt.Sprintf("%02d", t.Minute()) }},
	{"m", func(t time.Time) string { return strconv.Itoa(t.Minute()) }},
	{"ss", func(t time.Time) string { return fmt.Sprintf("%02d", t.Second()) }},
	{"s", func(t time.Time) string { return strconv.Itoa(t.Second()) }},
	{"SSS", func(t time.Time) string { return fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond)) }},
	{"A", func(t time.Time) string { return meridiemOf(t) }},
	{"a", func(t time.Time) string { return strings.ToLower(meridiemOf(t)) }},
}

// Format renders t using moment-style layout tokens: YYYY YY MMMM MMM MM M
// DD D dddd ddd dd d HH H hh h mm m ss s SSS A a. Anything else in the
// layout passes through unchanged, so "MMMM D, 'YY" gives "March 4, '01".
// Weekday numbers ("d") count from Sunday as 0.
func Format(t time.Time, layout string) string {
	var b strings.Builder
	for i := 0; i < len(layout); {
		matched := false
		for _, ft := range formatTokens {
			if strings.HasPrefix(layout[i:], ft.token) {
				b.WriteString(ft.render(t))
				i += len(ft.token)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		_, size := utf8.DecodeRuneInString(layout[i:])
		b.WriteString(layout[i : i+size])
		i += size
	}
	return b.String()
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

func meridiemOf(t time.Time) string {
	if t.Hour() >= 12 {
		return "PM"
	}
	return "AM"
}
