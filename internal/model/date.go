package model

import "time"

// DateLayout is the day-first layout used when rendering dates.
const DateLayout = "02/01/2006"

// Date is a calendar day that may be missing. The zero value is MissingDate.
type Date struct {
	t     time.Time
	valid bool
}

// MissingDate marks a date that could not be parsed.
var MissingDate = Date{}

// NewDate returns the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), valid: true}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Valid reports whether d holds a real date.
func (d Date) Valid() bool { return d.valid }

// Time returns the day at midnight UTC, or the zero time when missing.
func (d Date) Time() time.Time { return d.t }

// Equal reports whether both dates are the same day, or both missing.
func (d Date) Equal(o Date) bool {
	if d.valid != o.valid {
		return false
	}
	return !d.valid || d.t.Equal(o.t)
}

// Compare orders dates ascending with missing dates first.
func (d Date) Compare(o Date) int {
	switch {
	case !d.valid && !o.valid:
		return 0
	case !d.valid:
		return -1
	case !o.valid:
		return 1
	}
	return d.t.Compare(o.t)
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// String renders the date day-first, or "" when missing.
func (d Date) String() string {
	if !d.valid {
		return ""
	}
	return d.t.Format(DateLayout)
}

// ISO renders the date as YYYY-MM-DD, or "" when missing.
func (d Date) ISO() string {
	if !d.valid {
		return ""
	}
	return d.t.Format("2006-01-02")
}
