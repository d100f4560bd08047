package domain

// ActivityType classifies an itinerary entry.
type ActivityType string

const (
	ActivitySightseeing ActivityType = "sightseeing"
	ActivityFood        ActivityType = "food"
	ActivityTransport   ActivityType = "transport"
	ActivityFlight      ActivityType = "flight"
)

// Activity is a single scheduled itinerary entry for one date.
//
// List order within a date bucket is "insertion order, sorted on append,
// stable thereafter": appending a non-batch entry re-sorts the whole bucket
// by Time, but manual drag reorders and field edits never do.
type Activity struct {
	ID          string       `json:"id"`
	Time        string       `json:"time"` // "HH:MM", 24-hour
	Title       string       `json:"title"`
	Location    string       `json:"location,omitempty"`
	Completed   bool         `json:"completed"`
	Type        ActivityType `json:"type"`
	Duration    string       `json:"duration,omitempty"` // "<number>h", half-hour granularity
	Description string       `json:"description,omitempty"`
	FlightInfo  *FlightInfo  `json:"flight_info,omitempty"` // present iff Type == ActivityFlight
}

// FlightInfo carries the flight-specific fields of a flight activity.
// Timezones are whole-hour UTC offsets in [-12, 14].
// Duration is derived from the two endpoints; see FlightDuration.
type FlightInfo struct {
	FlightNumber      string `json:"flight_number"`
	PlaneType         string `json:"plane_type,omitempty"`
	DepartureCode     string `json:"departure_code"`
	ArrivalCode       string `json:"arrival_code"`
	DepartureDate     Date   `json:"departure_date"`
	DepartureTime     string `json:"departure_time"` // "HH:MM"
	DepartureTimezone int    `json:"departure_timezone"`
	ArrivalDate       Date   `json:"arrival_date"`
	ArrivalTime       string `json:"arrival_time"`
	ArrivalTimezone   int    `json:"arrival_timezone"`
	Duration          string `json:"duration,omitempty"` // "XhYm", derived
}
