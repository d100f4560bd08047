package domain

import (
	"fmt"
	"time"
)

// UTC offset bounds for flight endpoints, whole hours only (27 values).
const (
	MinUTCOffset = -12
	MaxUTCOffset = 14
)

// FlightDuration computes elapsed flight time between two (date, time,
// UTC-offset) endpoints and renders it as "<H>h <M>m".
//
// Each endpoint's date+time is read as a literal wall-clock value stamped
// UTC, then shifted by -offset hours to reach true UTC; the duration is the
// difference of the two instants. When the result is not positive (the user
// has not finished entering data, or entered an impossible pair) prev is
// returned unchanged: recomputation is skipped, never error-signalled.
// Malformed dates or times also return prev.
func FlightDuration(depDate Date, depTime string, depOffset int, arrDate Date, arrTime string, arrOffset int, prev string) string {
	dep, err := wallClockUTC(depDate, depTime)
	if err != nil {
		return prev
	}
	arr, err := wallClockUTC(arrDate, arrTime)
	if err != nil {
		return prev
	}

	elapsed := arr.Add(-time.Duration(arrOffset) * time.Hour).
		Sub(dep.Add(-time.Duration(depOffset) * time.Hour))
	if elapsed <= 0 {
		return prev
	}

	mins := int(elapsed.Minutes())
	return fmt.Sprintf("%dh %dm", mins/60, mins%60)
}

// wallClockUTC parses date+time as a UTC instant, offsets not yet applied.
func wallClockUTC(d Date, clock string) (time.Time, error) {
	return time.Parse(DateLayout+" 15:04", string(d)+" "+clock)
}
