package domain

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day, normalized to UTC midnight. Every provider schema
// (weather, flights, hotels) speaks plain YYYY-MM-DD dates, so the wire
// encodings below all use that layout.
type Date struct {
	time.Time
}

// NewDate builds a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a timestamp to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("domain: invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// AddDays returns the date shifted by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// DaysUntil returns the number of calendar days from d to other.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time.Sub(d.Time).Hours() / 24)
}

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(other Date) bool { return d.Time.Equal(other.Time) }

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool { return d.Time.Before(other.Time) }

// After reports whether d falls after other.
func (d Date) After(other Date) bool { return d.Time.After(other.Time) }

func (d Date) String() string { return d.Format(dateLayout) }

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.Format(dateLayout)), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("domain: invalid date %s: %w", b, err)
	}
	return d.UnmarshalText([]byte(s))
}

// DateRange is an inclusive [Start, End] span of calendar days.
type DateRange struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// Contains reports whether day falls within the range, bounds included.
func (r DateRange) Contains(day Date) bool {
	return !day.Before(r.Start) && !day.After(r.End)
}

// Overlaps reports whether two ranges share at least one day.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !r.End.Before(other.Start)
}

func (r DateRange) String() string {
	return r.Start.String() + " to " + r.End.String()
}
