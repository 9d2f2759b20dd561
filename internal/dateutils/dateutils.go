// Package dateutils provides the date parsing, formatting and day arithmetic
// shared by the API models, the statement aggregator and the reports.
package dateutils

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// Date layouts understood on the wire and on the command line
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutArgentine = "02/01/2006"
	DateLayoutFull      = "2006-01-02 15:04:05"
	DateLayoutLocalISO  = "2006-01-02T15:04:05"
)

// WireFormats are tried in order when decoding API payloads. Values without
// a zone are read as UTC.
var WireFormats = []string{
	time.RFC3339Nano,
	DateLayoutISO,
	DateLayoutLocalISO,
	DateLayoutFull,
}

// InputFormats are accepted for dates typed on the command line
var InputFormats = []string{
	DateLayoutISO,
	DateLayoutArgentine,
	"02-01-2006",
	"2/1/2006",
}

var spaces = regexp.MustCompile(`\s+`)

var shortMonthsES = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

// ParseISO parses an ISO-8601 value as sent by the API
func ParseISO(s string) (time.Time, error) {
	s = CleanDateString(s)
	for _, layout := range WireFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse ISO-8601 date: %s", s)
}

// ParseDate attempts to parse a user supplied date string.
// Returns the parsed time and the detected format
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range InputFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// FormatDate formats a time.Time value according to the specified layout
// If no layout is provided, DateLayoutArgentine is used
func FormatDate(date time.Time, layout string) string {
	if date.IsZero() {
		return "-"
	}
	if layout == "" {
		layout = DateLayoutArgentine
	}
	return date.Format(layout)
}

// FormatShort renders "15 oct", the day/month form used for closing and due dates.
func FormatShort(date time.Time) string {
	if date.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%02d %s", date.Day(), shortMonthsES[date.Month()-1])
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return spaces.ReplaceAllString(dateStr, " ")
}

// DaysUntil returns the number of days from now to target rounded up, so a
// target 36 hours in the past yields -1 and one 2 hours ahead yields 1.
// Past targets produce zero or negative values.
func DaysUntil(target, now time.Time) int {
	days := target.Sub(now).Hours() / 24
	c := math.Ceil(days)
	if c == 0 {
		// normalize -0
		return 0
	}
	return int(c)
}

// IsDateOnly reports whether t carries no time-of-day in UTC.
func IsDateOnly(t time.Time) bool {
	u := t.UTC()
	return u.Hour() == 0 && u.Minute() == 0 && u.Second() == 0 && u.Nanosecond() == 0
}
