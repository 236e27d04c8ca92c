package blob

import (
	"net/mail"
	"strings"
	"time"
)

// dayFormat is the layout for operator-supplied dates.
const dayFormat = "2006-01-02"

// ParseModifiedTime parses a Last-Modified value. The service speaks
// RFC 1123 ("Tue, 11 Feb 2026 12:00:00 GMT"), but numeric zone offsets show
// up in the wild too, so the RFC 5322 date parser does the work.
func ParseModifiedTime(raw string) (time.Time, error) {
	t, err := mail.ParseDate(raw)
	if err == nil {
		return t, nil
	}

	// Some producers drop the zone entirely; such timestamps are UTC.
	if t, zerr := time.Parse("Mon, 2 Jan 2006 15:04:05", strings.TrimSpace(raw)); zerr == nil {
		return t, nil
	}

	return time.Time{}, &FormatError{Value: raw, Err: err}
}

// ParseDay parses an operator-supplied YYYY-MM-DD date into a UTC calendar
// date. Anything else is a validation failure naming the offending string.
func ParseDay(value string) (time.Time, error) {
	t, err := time.Parse(dayFormat, value)
	if err != nil {
		return time.Time{}, validationErrorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return t, nil
}

// toUTCDate truncates an instant to its UTC calendar date.
func toUTCDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ModifiedDate returns the record's last-modified instant as a UTC calendar
// date. ok is false when the record has no timestamp or an unparsable one;
// such records never match a date-scoped filter but still appear in
// unfiltered listings and downloads.
func (r Record) ModifiedDate() (time.Time, bool) {
	if r.LastModified == "" {
		return time.Time{}, false
	}
	t, err := ParseModifiedTime(r.LastModified)
	if err != nil {
		return time.Time{}, false
	}
	return toUTCDate(t), true
}
