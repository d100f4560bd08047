// Package domain contains the core data types and the pure calendar,
// scheduling, and flight-time logic for the Wayfare trip planner.
// It is imported by every other internal package (repo, service, handler)
// and carries no I/O of its own.
package domain

import "time"

// TripType distinguishes single-destination trips from multi-city ones.
type TripType string

const (
	TripSingle TripType = "single"
	TripMulti  TripType = "multi"
)

// MaxStops caps the number of stops on a multi-city trip.
// Adding a stop beyond the cap is a silent no-op, not an error.
const MaxStops = 6

// Trip is the top-level aggregate: one planned journey with its itinerary,
// expenses, packing list, and documents. Exactly one trip is "active" at a
// time; older trips live in the archive.
//
// Invariants: StartDate <= EndDate. For TripMulti, Stops is non-empty,
// Stops[0].StartDate == StartDate and Stops[last].EndDate == EndDate;
// consecutive stops are expected to share boundary dates (transition days)
// but a gap or overlap is tolerated and only degrades transition detection.
type Trip struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Destination string              `json:"destination"` // multi-city: stop names joined by " - "
	StartDate   Date                `json:"start_date"`
	EndDate     Date                `json:"end_date"` // inclusive
	Type        TripType            `json:"type"`
	Stops       []Stop              `json:"stops,omitempty"` // present iff Type == TripMulti
	Activities  map[Date][]Activity `json:"activities"`
	Expenses    []Expense           `json:"expenses"`
	PackingList []PackingItem       `json:"packing_list"`
	Documents   []DocumentItem      `json:"documents"`
	Themes      map[Date]string     `json:"themes,omitempty"` // free-text label per date
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// Stop is one leg of a multi-city trip. Stops are owned by the trip and
// replaced wholesale on edit.
// ID is the 1-based sequence position, reassigned on deletion so it stays dense.
type Stop struct {
	ID          int    `json:"id"`
	Destination string `json:"destination"`
	StartDate   Date   `json:"start_date"`
	EndDate     Date   `json:"end_date"`
}

// RenumberStops reassigns dense 1-based IDs in slice order.
// Call after any insertion or deletion.
func RenumberStops(stops []Stop) {
	for i := range stops {
		stops[i].ID = i + 1
	}
}

// JoinedDestination builds the display destination for a set of stops:
// stop names joined by " - ".
func JoinedDestination(stops []Stop) string {
	s := ""
	for i, stop := range stops {
		if i > 0 {
			s += " - "
		}
		s += stop.Destination
	}
	return s
}
