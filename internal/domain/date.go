package domain

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the canonical external representation of calendar dates.
const DateLayout = "2006-01-02"

var dateOnlyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// NormalizeDate produces the canonical YYYY-MM-DD text form from any of:
// a string already in that form, a time.Time, or any other string
// parseable as a date. The store driver may hand back timestamps,
// date-only strings or full RFC 3339 values depending on column type and
// scan target; every Agente response must present the same stable textual
// contract regardless.
// Returns an error wrapping ErrInvalidDate for anything else.
func NormalizeDate(value any) (string, error) {
	switch v := value.(type) {
	case string:
		if dateOnlyPattern.MatchString(v) {
			return v, nil
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t.Format(DateLayout), nil
			}
		}
		return "", fmt.Errorf("%w: cannot parse %q as a date", ErrInvalidDate, v)
	case time.Time:
		if v.IsZero() {
			return "", fmt.Errorf("%w: zero time value", ErrInvalidDate)
		}
		return v.Format(DateLayout), nil
	case *time.Time:
		if v == nil || v.IsZero() {
			return "", fmt.Errorf("%w: nil or zero time value", ErrInvalidDate)
		}
		return v.Format(DateLayout), nil
	default:
		return "", fmt.Errorf("%w: unsupported value of type %T", ErrInvalidDate, value)
	}
}

// ParseDate parses a YYYY-MM-DD string into a time.Time.
// Returns an error wrapping ErrInvalidDate if the string does not match
// the layout exactly.
func ParseDate(s string) (time.Time, error) {
	if !dateOnlyPattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %q is not in YYYY-MM-DD form", ErrInvalidDate, s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return t, nil
}
