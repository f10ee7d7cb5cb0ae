package helpers

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang-exercisetracker/models"
)

// Layouts accepted for exercise dates and log bounds. Inputs without a zone
// are read as UTC.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01",
	"2006",
	models.DateStringLayout,
	"Mon Jan 2 2006",
	time.RFC1123,
	time.RFC1123Z,
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"2006/1/2",
}

// ParseDate reads a client supplied date. Unreadable input yields an invalid
// CalendarDate instead of an error.
func ParseDate(raw string) models.CalendarDate {
	s := strings.TrimSpace(raw)
	if s == "" {
		return models.InvalidDate()
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return models.NewCalendarDate(t)
		}
	}
	return models.InvalidDate()
}

// ResolveDate picks the exercise date: the parsed input when one was sent,
// otherwise now.
func ResolveDate(raw string, now time.Time) models.CalendarDate {
	if raw == "" {
		return models.NewCalendarDate(now)
	}
	return ParseDate(raw)
}

// ParseBound turns an optional from/to query value into a range bound. An
// absent or empty value means the side is open.
func ParseBound(raw string) *models.CalendarDate {
	if raw == "" {
		return nil
	}
	d := ParseDate(raw)
	return &d
}

// CoerceDuration converts the duration field to whole minutes. A missing or
// non-numeric value becomes the NaN sentinel; an empty value counts as zero;
// fractions are truncated toward zero.
func CoerceDuration(raw string, present bool) models.Duration {
	if !present {
		return models.NaNDuration()
	}
	f, ok := parseNumber(raw)
	if !ok || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
		return models.NaNDuration()
	}
	return models.Minutes(int(math.Trunc(f)))
}

// ParseLimit returns the number of log entries to keep, or 0 when the log
// should not be truncated (absent, non-numeric or zero input). A negative
// limit keeps |n| entries, as MongoDB does.
func ParseLimit(raw string) int64 {
	if raw == "" {
		return 0
	}
	f, ok := parseNumber(raw)
	if !ok || math.IsInf(f, 0) {
		return 0
	}
	f = math.Abs(f)
	if f < 1 || f >= math.MaxInt64 {
		return 0
	}
	return int64(math.Trunc(f))
}

func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}
	if strings.ContainsAny(s, "_xXpP") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
