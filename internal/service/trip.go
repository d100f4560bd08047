// Package service contains the business logic for the Wayfare API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. Every mutation follows the same shape: load the active trip
// snapshot, apply a pure transformation, save the whole trip back (last
// write wins). No storage details live here; services depend on repo
// interfaces, not implementations.
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tkramer/wayfare/backend/internal/domain"
	"github.com/tkramer/wayfare/backend/internal/repo"
)

// TripService implements business logic for the trip lifecycle: the single
// active trip, its stops and themes, and the archive.
type TripService struct {
	trips repo.TripRepo
	newID func() string
	now   func() time.Time
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{
		trips: r,
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create validates and persists a new active trip, replacing any current one.
// Multi-city trips derive their destination string and overall date range
// from the stops, which are renumbered densely.
func (s *TripService) Create(trip domain.Trip) (domain.Trip, error) {
	trip.ID = s.newID()
	trip.CreatedAt = s.now()
	trip.UpdatedAt = trip.CreatedAt
	if trip.Activities == nil {
		trip.Activities = map[domain.Date][]domain.Activity{}
	}
	if trip.Expenses == nil {
		trip.Expenses = []domain.Expense{}
	}
	if trip.PackingList == nil {
		trip.PackingList = []domain.PackingItem{}
	}
	if trip.Documents == nil {
		trip.Documents = []domain.DocumentItem{}
	}

	normalizeTrip(&trip)
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	if err := s.trips.SaveActive(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return trip, nil
}

// Get returns the active trip.
// Returns domain.ErrNoActiveTrip when no trip has been created.
func (s *TripService) Get() (domain.Trip, error) {
	trip, err := s.trips.LoadActive()
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", err)
	}
	return trip, nil
}

// Update replaces the active trip wholesale. This is the single mutation
// entry point for trip-level edits: identity and creation time are
// preserved from the stored trip, everything else comes from the snapshot.
func (s *TripService) Update(trip domain.Trip) (domain.Trip, error) {
	current, err := s.trips.LoadActive()
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	trip.ID = current.ID
	trip.CreatedAt = current.CreatedAt
	trip.UpdatedAt = s.now()
	normalizeTrip(&trip)
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	if err := s.trips.SaveActive(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return trip, nil
}

// Delete discards the active trip without archiving it.
func (s *TripService) Delete() error {
	if _, err := s.trips.LoadActive(); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	if err := s.trips.ClearActive(); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// AddStop appends a stop to a multi-city trip. Beyond domain.MaxStops the
// call is a silent no-op, not an error: the trip is returned unchanged.
func (s *TripService) AddStop(stop domain.Stop) (domain.Trip, error) {
	trip, err := s.trips.LoadActive()
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.AddStop: %w", err)
	}
	if trip.Type != domain.TripMulti {
		return domain.Trip{}, fmt.Errorf("%w: stops require a multi-city trip", domain.ErrValidation)
	}
	if len(trip.Stops) >= domain.MaxStops {
		return trip, nil
	}
	if strings.TrimSpace(stop.Destination) == "" {
		return domain.Trip{}, fmt.Errorf("%w: stop destination is required", domain.ErrValidation)
	}

	trip.Stops = append(trip.Stops, stop)
	trip.UpdatedAt = s.now()
	normalizeTrip(&trip)

	if err := s.trips.SaveActive(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.AddStop: %w", err)
	}
	return trip, nil
}

// UpdateStopDate edits one boundary date of the stop with the given 1-based
// ID, propagating an end-date edit to the next stop's start date so adjacent
// stops stay contiguous.
func (s *TripService) UpdateStopDate(stopID int, field domain.StopDateField, value domain.Date) (domain.Trip, error) {
	trip, err := s.trips.LoadActive()
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.UpdateStopDate: %w", err)
	}
	if stopID < 1 || stopID > len(trip.Stops) {
		return domain.Trip{}, fmt.Errorf("service.TripService.UpdateStopDate: stop %d: %w", stopID, domain.ErrNotFound)
	}
	if _, err := value.Time(); err != nil {
		return domain.Trip{}, fmt.Errorf("%w: malformed date %q", domain.ErrValidation, value)
	}

	domain.LinkStopBoundary(trip.Stops, stopID-1, field, value)
	trip.UpdatedAt = s.now()
	normalizeTrip(&trip)

	if err := s.trips.SaveActive(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.UpdateStopDate: %w", err)
	}
	return trip, nil
}

// DayInfo is the per-date view of a trip's calendar.
type DayInfo struct {
	Date        domain.Date        `json:"date"`
	Ordinal     int                `json:"ordinal"` // 1-based, "DAY 1" on the start date
	Location    domain.DayLocation `json:"location"`
	WeatherCity string             `json:"weather_city"`
	Theme       string             `json:"theme,omitempty"`
}

// Days enumerates the trip calendar with per-date display data:
// day ordinal, resolved location (with transition detection), the city to
// query weather for, and the optional theme label.
func (s *TripService) Days() ([]DayInfo, error) {
	trip, err := s.trips.LoadActive()
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Days: %w", err)
	}

	dates := domain.CalendarDates(trip.StartDate, trip.EndDate)
	days := make([]DayInfo, 0, len(dates))
	for _, d := range dates {
		days = append(days, DayInfo{
			Date:        d,
			Ordinal:     domain.DayOrdinal(trip.StartDate, d),
			Location:    domain.ActiveLocation(trip, d),
			WeatherCity: domain.WeatherQueryCity(trip, d),
			Theme:       trip.Themes[d],
		})
	}
	return days, nil
}

// SetTheme stores a free-text label for one date. An empty label clears it.
func (s *TripService) SetTheme(date domain.Date, label string) (domain.Trip, error) {
	trip, err := s.trips.LoadActive()
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.SetTheme: %w", err)
	}

	if label == "" {
		delete(trip.Themes, date)
	} else {
		if trip.Themes == nil {
			trip.Themes = map[domain.Date]string{}
		}
		trip.Themes[date] = label
	}
	trip.UpdatedAt = s.now()

	if err := s.trips.SaveActive(trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.SetTheme: %w", err)
	}
	return trip, nil
}

// Archive moves the active trip to the front of the archive list and clears
// the active slot (move semantics, not copy).
func (s *TripService) Archive() error {
	trip, err := s.trips.LoadActive()
	if err != nil {
		return fmt.Errorf("service.TripService.Archive: %w", err)
	}
	archive, err := s.trips.LoadArchive()
	if err != nil {
		return fmt.Errorf("service.TripService.Archive: %w", err)
	}

	archive = append([]domain.Trip{trip}, archive...)
	if err := s.trips.SaveArchive(archive); err != nil {
		return fmt.Errorf("service.TripService.Archive: %w", err)
	}
	if err := s.trips.ClearActive(); err != nil {
		return fmt.Errorf("service.TripService.Archive: %w", err)
	}
	return nil
}

// ListArchive returns archived trips, most recently archived first.
func (s *TripService) ListArchive() ([]domain.Trip, error) {
	archive, err := s.trips.LoadArchive()
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListArchive: %w", err)
	}
	return archive, nil
}

// Restore moves the archived trip with the given ID back to the active slot
// and removes it from the archive. If another trip is active it is archived
// first, so nothing is ever lost by restoring.
func (s *TripService) Restore(id string) (domain.Trip, error) {
	archive, err := s.trips.LoadArchive()
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Restore: %w", err)
	}

	idx := -1
	for i, t := range archive {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Trip{}, fmt.Errorf("service.TripService.Restore: trip %s: %w", id, domain.ErrNotFound)
	}

	restored := archive[idx]
	archive = append(archive[:idx], archive[idx+1:]...)

	if current, err := s.trips.LoadActive(); err == nil {
		archive = append([]domain.Trip{current}, archive...)
	}

	if err := s.trips.SaveArchive(archive); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Restore: %w", err)
	}
	if err := s.trips.SaveActive(restored); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Restore: %w", err)
	}
	return restored, nil
}

// DeleteArchived removes one trip from the archive permanently.
func (s *TripService) DeleteArchived(id string) error {
	archive, err := s.trips.LoadArchive()
	if err != nil {
		return fmt.Errorf("service.TripService.DeleteArchived: %w", err)
	}

	for i, t := range archive {
		if t.ID == id {
			archive = append(archive[:i], archive[i+1:]...)
			if err := s.trips.SaveArchive(archive); err != nil {
				return fmt.Errorf("service.TripService.DeleteArchived: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("service.TripService.DeleteArchived: trip %s: %w", id, domain.ErrNotFound)
}

// normalizeTrip re-derives the fields a multi-city trip owes to its stops:
// dense stop IDs, the joined destination string, and the overall date range
// (first stop's start, last stop's end).
func normalizeTrip(trip *domain.Trip) {
	if trip.Type != domain.TripMulti || len(trip.Stops) == 0 {
		return
	}
	domain.RenumberStops(trip.Stops)
	trip.Destination = domain.JoinedDestination(trip.Stops)
	trip.StartDate = trip.Stops[0].StartDate
	trip.EndDate = trip.Stops[len(trip.Stops)-1].EndDate
}

// validateTrip enforces the rules common to Create and Update.
// Inverted stop ranges inside the list are deliberately NOT rejected: the
// boundary-linking edit flow can produce them transiently, and detection
// merely degrades (see domain.ActiveLocation).
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(trip.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if trip.Type != domain.TripSingle && trip.Type != domain.TripMulti {
		return fmt.Errorf("%w: type must be %q or %q", domain.ErrValidation, domain.TripSingle, domain.TripMulti)
	}
	if _, err := trip.StartDate.Time(); err != nil {
		return fmt.Errorf("%w: malformed start date %q", domain.ErrValidation, trip.StartDate)
	}
	if _, err := trip.EndDate.Time(); err != nil {
		return fmt.Errorf("%w: malformed end date %q", domain.ErrValidation, trip.EndDate)
	}
	if trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("%w: end date must not be before start date", domain.ErrValidation)
	}
	if trip.Type == domain.TripMulti {
		if len(trip.Stops) == 0 {
			return fmt.Errorf("%w: a multi-city trip needs at least one stop", domain.ErrValidation)
		}
		if len(trip.Stops) > domain.MaxStops {
			return fmt.Errorf("%w: at most %d stops", domain.ErrValidation, domain.MaxStops)
		}
		for _, stop := range trip.Stops {
			if strings.TrimSpace(stop.Destination) == "" {
				return fmt.Errorf("%w: stop destination is required", domain.ErrValidation)
			}
		}
	}
	return nil
}
