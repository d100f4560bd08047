package domain

import "strings"

// CalendarDates enumerates every date of the trip, inclusive on both ends.
// Returns nil when end is before start or either date is malformed.
func CalendarDates(start, end Date) []Date {
	from, err := start.Time()
	if err != nil {
		return nil
	}
	to, err := end.Time()
	if err != nil || to.Before(from) {
		return nil
	}

	var dates []Date
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, DateOf(d))
	}
	return dates
}

// DayOrdinal returns the 1-based day number of date within a trip starting
// at start ("DAY 1" on the start date). The whole-day difference is taken
// as an absolute value, so a date before start still yields a positive
// ordinal. Malformed dates yield 1.
func DayOrdinal(start, date Date) int {
	from, err := start.Time()
	if err != nil {
		return 1
	}
	at, err := date.Time()
	if err != nil {
		return 1
	}
	days := int(at.Sub(from).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days + 1
}

// DayLocation describes where the traveller is on a given date.
// On a transition day (the shared boundary of two consecutive stops) both
// Origin and Place are set; otherwise only Place.
type DayLocation struct {
	Place      string `json:"place"`            // place name; on transition days the arrival city
	Origin     string `json:"origin,omitempty"` // set only on transition days
	Transition bool   `json:"transition"`
}

// String renders the location for display: "Origin → Place" on transition
// days, the plain place name otherwise.
func (l DayLocation) String() string {
	if l.Transition {
		return l.Origin + " → " + l.Place
	}
	return l.Place
}

// ActiveLocation resolves where the traveller is on date.
//
// Single trips: the trip destination, truncated at the first comma
// ("Tokyo, Japan" → "Tokyo").
//
// Multi-city trips, in order:
//  1. If date equals BOTH stops[i].EndDate and stops[i+1].StartDate this is
//     a transition day; the first matching pair wins.
//  2. Otherwise the first stop whose [StartDate, EndDate] range contains date.
//  3. Otherwise the trip's overall destination string as a fallback.
func ActiveLocation(trip Trip, date Date) DayLocation {
	if trip.Type != TripMulti || len(trip.Stops) == 0 {
		return DayLocation{Place: beforeComma(trip.Destination)}
	}

	for i := 0; i+1 < len(trip.Stops); i++ {
		if trip.Stops[i].EndDate == date && trip.Stops[i+1].StartDate == date {
			return DayLocation{
				Origin:     trip.Stops[i].Destination,
				Place:      trip.Stops[i+1].Destination,
				Transition: true,
			}
		}
	}

	for _, stop := range trip.Stops {
		if !date.Before(stop.StartDate) && !stop.EndDate.Before(date) {
			return DayLocation{Place: stop.Destination}
		}
	}

	return DayLocation{Place: trip.Destination}
}

// WeatherQueryCity returns the single place name to query weather for on
// date. Transition days resolve to the ARRIVAL city, since a weather lookup
// needs one location.
func WeatherQueryCity(trip Trip, date Date) string {
	return ActiveLocation(trip, date).Place
}

// StopDateField names which boundary of a stop is being edited.
type StopDateField string

const (
	StopStartDate StopDateField = "start_date"
	StopEndDate   StopDateField = "end_date"
)

// LinkStopBoundary applies a date edit to stops[changedIndex] and keeps
// adjacent stops contiguous: editing a stop's end date sets the NEXT stop's
// start date to the same value. Propagation is forward only and one hop;
// the neighbour's own end date is not validated, so a user can still create
// an inverted range undetected.
//
// The input slice is modified in place. Out-of-range indices are a no-op.
func LinkStopBoundary(stops []Stop, changedIndex int, field StopDateField, value Date) {
	if changedIndex < 0 || changedIndex >= len(stops) {
		return
	}
	switch field {
	case StopStartDate:
		stops[changedIndex].StartDate = value
	case StopEndDate:
		stops[changedIndex].EndDate = value
		if changedIndex+1 < len(stops) {
			stops[changedIndex+1].StartDate = value
		}
	}
}

// beforeComma returns s truncated at the first comma, trimmed.
func beforeComma(s string) string {
	if i := strings.Index(s, ","); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
