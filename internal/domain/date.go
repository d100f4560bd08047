package domain

import "time"

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date in "2006-01-02" form. Trips, stops, activity
// buckets, and themes are all keyed by Date rather than time.Time so that
// JSON round-trips are exact and map keys stay comparable strings.
type Date string

// Time parses the date in UTC. Returns the zero time and an error for
// malformed input.
func (d Date) Time() (time.Time, error) {
	return time.Parse(DateLayout, string(d))
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// Before reports whether d is strictly earlier than other.
// Lexicographic comparison is correct for the zero-padded layout.
func (d Date) Before(other Date) bool {
	return string(d) < string(other)
}

// AddDays returns the date n whole days after d (n may be negative).
// Malformed dates are returned unchanged.
func (d Date) AddDays(n int) Date {
	t, err := d.Time()
	if err != nil {
		return d
	}
	return DateOf(t.AddDate(0, 0, n))
}
