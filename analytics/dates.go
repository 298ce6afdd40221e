package analytics

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/linesmerrill/la-crime-api/models"
)

// isoLayouts are the naive ISO 8601 forms accepted for date parameters
var isoLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999",
}

var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseISO parses a date parameter in one of the naive ISO 8601 forms
func ParseISO(param, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, models.NewInputError(param, "is required")
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, models.NewInputError(param, fmt.Sprintf("must be an ISO 8601 date, got %q", value))
}

// FormatISO renders t the way stored dates are written: seconds precision,
// with microseconds only when present.
func FormatISO(t time.Time) string {
	if us := t.Nanosecond() / 1000; us != 0 {
		return t.Format("2006-01-02T15:04:05") + fmt.Sprintf(".%06d", us)
	}
	return t.Format("2006-01-02T15:04:05")
}

// Range is an inclusive pair of ISO date bounds
type Range struct {
	Start string
	End   string
}

// ParseRange parses start_date and end_date into stored date bounds
func ParseRange(start, end string) (Range, error) {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return Range{}, models.NewInputError("", "Please provide both start_date and end_date")
	}
	s, err := ParseISO("start_date", start)
	if err != nil {
		return Range{}, err
	}
	e, err := ParseISO("end_date", end)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: FormatISO(s), End: FormatISO(e)}, nil
}

// DayWindow parses a date into the half-open window [date, date+1d)
func DayWindow(param, value string) (Range, error) {
	d, err := ParseISO(param, value)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: FormatISO(d), End: FormatISO(d.AddDate(0, 0, 1))}, nil
}

// ParseDay checks that value is a real YYYY-MM-DD calendar date and returns it unchanged
func ParseDay(param, value string) (string, error) {
	if value == "" {
		return "", models.NewInputError(param, "is required")
	}
	if !dayPattern.MatchString(value) {
		return "", models.NewInputError(param, "must be a string in 'YYYY-MM-DD' format")
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return "", models.NewInputError(param, fmt.Sprintf("%q is not a valid calendar date", value))
	}
	return value, nil
}
