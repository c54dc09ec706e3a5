package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	dps "github.com/markusmobius/go-dateparser"
)

// ErrUnparseable is wrapped by every error Parse returns.
var ErrUnparseable = errors.New("unrecognised date")

// Layouts written by Day One exports across versions. Anything else goes to
// the natural-language parser.
var exportLayouts = []string{
	"January 2, 2006 at 3:04 PM",
	"January 2, 2006 at 3:04:05 PM",
	"January 2, 2006 at 15:04",
	"January 2, 2006 3:04 PM",
	"2 January 2006 at 15:04",
	"2 January 2006 at 3:04 PM",
	"Monday, January 2, 2006 at 3:04 PM",
}

// The fallback only accepts absolute dates naming day, month and year.
// Relative phrases and bare timestamps would resolve against the clock.
var (
	fallbackParser = &dps.Parser{ParserTypes: []dps.ParserType{dps.AbsoluteTime}}
	parserConfig   = &dps.Configuration{
		DefaultTimezone: time.UTC,
		StrictParsing:   true,
		RequiredParts:   []string{"day", "month", "year"},
	}
)

// Parse converts the free-text timestamp of an entry header such as
// "February 14, 2005 at 9:00 AM" into the Date it falls on. It never guesses:
// impossible calendar dates and payloads without a full date are rejected.
func Parse(payload string) (Date, error) {
	text := strings.Join(strings.Fields(payload), " ")
	if text == "" {
		return Date{}, fmt.Errorf("empty timestamp: %w", ErrUnparseable)
	}

	for _, layout := range exportLayouts {
		t, err := time.Parse(layout, text)
		if err == nil {
			return FromTime(t), nil
		}
		if outOfRange(err) {
			return Date{}, fmt.Errorf("%q: %w: %v", text, ErrUnparseable, err)
		}
	}

	parsed, err := fallbackParser.Parse(parserConfig, text)
	if err != nil {
		return Date{}, fmt.Errorf("%q: %w: %v", text, ErrUnparseable, err)
	}
	if parsed.Time.IsZero() {
		return Date{}, fmt.Errorf("%q: %w", text, ErrUnparseable)
	}

	d := FromTime(parsed.Time)
	if !statesDate(text, d) {
		return Date{}, fmt.Errorf("%q: %w: resolved to %s", text, ErrUnparseable, d)
	}
	return d, nil
}

// outOfRange reports whether the text matched a layout's shape but named an
// impossible value, e.g. February 30.
func outOfRange(err error) bool {
	var pe *time.ParseError
	return errors.As(err, &pe) && strings.Contains(pe.Message, "out of range")
}

// statesDate reports whether text actually names d: its year and day must
// appear as numbers, and its month either as a number or as a word. The
// fallback parser clamps or reorders impossible values; a result it had to
// invent is refused.
func statesDate(text string, d Date) bool {
	var year, month, day bool
	for _, field := range strings.FieldsFunc(text, func(r rune) bool { return !unicode.IsDigit(r) }) {
		n, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		year = year || n == d.Year
		month = month || n == int(d.Month)
		day = day || n == d.Day
	}
	if !month {
		month = strings.IndexFunc(text, unicode.IsLetter) >= 0
	}
	return year && month && day
}
