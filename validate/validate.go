// Package validate holds the field validators the form layer dispatches on:
// pattern checks with light normalization for emails, phone numbers, postal
// codes and library cards, and rule-driven checks for dates and times that
// lean on the datetime parser.
package validate

import (
	"regexp"
	"strings"
	"time"

	"formtools/config"
	"formtools/datetime"
)

var (
	emailRe        *regexp.Regexp
	phoneLeadingRe *regexp.Regexp
	phoneGroupRe   *regexp.Regexp
	phoneRe        *regexp.Regexp
	postalRe       *regexp.Regexp
	postalSplitRe  *regexp.Regexp
	cardGroupRe    *regexp.Regexp
	cardRe         *regexp.Regexp
	decimalRe      *regexp.Regexp
	integerRe      *regexp.Regexp
)

func init() {
	emailRe = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)
	phoneLeadingRe = regexp.MustCompile(`^[^2-90]+`)
	phoneGroupRe = regexp.MustCompile(`(\d\d\d).*?(\d\d\d).*?(\d\d\d\d)(.*)`)
	phoneRe = regexp.MustCompile(`^\d\d\d-\d\d\d-\d\d\d\d$`)
	postalRe = regexp.MustCompile(`^[ABCEGHJKLMNPRSTVXY][0-9][ABCEGHJKLMNPRSTVWXYZ] ?[0-9][ABCEGHJKLMNPRSTVWXYZ][0-9]$`)
	postalSplitRe = regexp.MustCompile(`(.{3})\s*(.*)`)
	cardGroupRe = regexp.MustCompile(`^(\d{5})\s*(\d{5})\s*(\d{4})(.*)`)
	cardRe = regexp.MustCompile(`^21221 \d{5} \d{4}`)
	decimalRe = regexp.MustCompile(`^\-?\d*\.?\d*$`)
	integerRe = regexp.MustCompile(`^\d+$`)
}

// Email reports whether the trimmed address looks deliverable.
func Email(value string) bool {
	return emailRe.MatchString(strings.TrimSpace(value))
}

// NormalizePhone homogenizes a ten-digit phone number to XXX-XXX-XXXX,
// stripping anything before the area code. The returned string is the
// normalized form even when invalid, so callers can echo it back.
func NormalizePhone(value string) (string, bool) {
	number := phoneLeadingRe.ReplaceAllString(value, "")
	number = phoneGroupRe.ReplaceAllString(number, "$1-$2-$3$4")
	return number, phoneRe.MatchString(number)
}

// NormalizePostal uppercases a Canadian postal code and splits it 3+3.
func NormalizePostal(value string) (string, bool) {
	postal := strings.ToUpper(value)
	postal = strings.TrimSpace(postalSplitRe.ReplaceAllString(postal, "$1 $2"))
	return postal, postalRe.MatchString(postal)
}

// NormalizeCard formats a library card number as 21221 XXXXX XXXX and
// reports whether it is plausible. The card isn't looked up.
func NormalizeCard(value string) (string, bool) {
	card := cardGroupRe.ReplaceAllString(value, "$1 $2 $3$4")
	return card, cardRe.MatchString(card)
}

// Decimal accepts an optionally signed decimal number.
func Decimal(value string) bool {
	return decimalRe.MatchString(value)
}

// Integer accepts an unsigned run of digits.
func Integer(value string) bool {
	return integerRe.MatchString(value)
}

// DateRule checks a date field: the value must parse, fall inside the
// MinDate/MaxDate bounds (absolute dates or relative specs like "+1y"), and
// optionally avoid weekends. Layout controls the normalized output.
type DateRule struct {
	Layout     string
	MinDate    string
	MaxDate    string
	NoWeekends bool
}

// Check parses and normalizes value against the rule. On success it returns
// the formatted value; otherwise a message suitable for showing next to the
// field.
func (rule DateRule) Check(value string, now time.Time) (string, string) {
	formatted, err := datetime.SanitizeDate(value, rule.Layout, now)
	if err != nil {
		return "", "Invalid date."
	}

	date, err := datetime.ParseDateAt(value, now)
	if err != nil {
		return "", "Invalid date."
	}

	if rule.MinDate != "" {
		minDate := datetime.ResolveRelative(rule.MinDate, now, time.Time{})
		if !minDate.IsZero() && date.Before(minDate) {
			return "", "Date must be on or after " + datetime.Format(minDate, layoutOrDefault(rule.Layout)) + "."
		}
	}

	if rule.MaxDate != "" {
		maxDate := datetime.ResolveRelative(rule.MaxDate, now, time.Time{})
		if !maxDate.IsZero() && date.After(maxDate) {
			return "", "Date must be on or before " + datetime.Format(maxDate, layoutOrDefault(rule.Layout)) + "."
		}
	}

	if rule.NoWeekends {
		weekday := date.Weekday()
		if weekday == time.Saturday || weekday == time.Sunday {
			return "", "Date must be a weekday."
		}
	}

	return formatted, ""
}

// TimeRule checks a time field and normalizes it to Layout.
type TimeRule struct {
	Layout string
}

func (rule TimeRule) Check(value string, now time.Time) (string, string) {
	formatted, err := datetime.SanitizeTime(value, rule.Layout, now)
	if err != nil {
		return "", "Invalid time."
	}
	return formatted, ""
}

func layoutOrDefault(layout string) string {
	if layout == "" {
		return config.Cfg.DateLayout
	}
	return layout
}
