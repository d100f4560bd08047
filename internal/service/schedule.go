package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tkramer/wayfare/backend/internal/domain"
	"github.com/tkramer/wayfare/backend/internal/repo"
)

// ScheduleService implements business logic for the itinerary: activities
// within the date buckets of the active trip.
type ScheduleService struct {
	trips repo.TripRepo
	newID func() string
	now   func() time.Time
}

// NewScheduleService constructs a ScheduleService backed by the provided TripRepo.
func NewScheduleService(r repo.TripRepo) *ScheduleService {
	return &ScheduleService{
		trips: r,
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Add validates and appends one activity to a date bucket, re-sorting the
// bucket by time (stable for duplicate times). Flight activities get their
// duration derived from the two endpoints before saving.
func (s *ScheduleService) Add(date domain.Date, act domain.Activity) ([]domain.Activity, error) {
	if err := validateActivity(act); err != nil {
		return nil, err
	}
	act.ID = s.newID()
	deriveFlightDuration(&act)

	trip, err := s.trips.LoadActive()
	if err != nil {
		return nil, fmt.Errorf("service.ScheduleService.Add: %w", err)
	}
	if trip.Activities == nil {
		trip.Activities = map[domain.Date][]domain.Activity{}
	}
	trip.Activities[date] = domain.AddActivity(trip.Activities[date], act, false)
	trip.UpdatedAt = s.now()

	if err := s.trips.SaveActive(trip); err != nil {
		return nil, fmt.Errorf("service.ScheduleService.Add: %w", err)
	}
	return trip.Activities[date], nil
}

// BatchAdd expands same-day sightseeing entries into sequential activities
// starting at startTime and appends them in order. Batch appends do not
// re-sort the bucket.
func (s *ScheduleService) BatchAdd(date domain.Date, startTime string, entries []domain.SightseeingEntry) ([]domain.Activity, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: at least one entry is required", domain.ErrValidation)
	}
	for _, e := range entries {
		if strings.TrimSpace(e.Title) == "" {
			return nil, fmt.Errorf("%w: entry title is required", domain.ErrValidation)
		}
	}

	trip, err := s.trips.LoadActive()
	if err != nil {
		return nil, fmt.Errorf("service.ScheduleService.BatchAdd: %w", err)
	}
	if trip.Activities == nil {
		trip.Activities = map[domain.Date][]domain.Activity{}
	}

	for _, act := range domain.BatchSightseeing(startTime, entries) {
		act.ID = s.newID()
		trip.Activities[date] = domain.AddActivity(trip.Activities[date], act, true)
	}
	trip.UpdatedAt = s.now()

	if err := s.trips.SaveActive(trip); err != nil {
		return nil, fmt.Errorf("service.ScheduleService.BatchAdd: %w", err)
	}
	return trip.Activities[date], nil
}

// NextStartTime suggests the start time for a new activity on date: the end
// time of the day's last activity, or "09:00" for an empty day.
func (s *ScheduleService) NextStartTime(date domain.Date) (string, error) {
	trip, err := s.trips.LoadActive()
	if err != nil {
		return "", fmt.Errorf("service.ScheduleService.NextStartTime: %w", err)
	}
	return domain.NextDefaultStartTime(trip.Activities[date]), nil
}

// Update replaces the fields of the activity matching act.ID in place.
// The bucket is NOT re-sorted: a changed time does not reposition the entry,
// preserving manual drag order. A flight's duration is recomputed from its
// endpoints, keeping the previous value when the new pair is degenerate.
func (s *ScheduleService) Update(date domain.Date, act domain.Activity) ([]domain.Activity, error) {
	if err := validateActivity(act); err != nil {
		return nil, err
	}

	trip, err := s.trips.LoadActive()
	if err != nil {
		return nil, fmt.Errorf("service.ScheduleService.Update: %w", err)
	}

	deriveFlightDuration(&act)
	if !domain.UpdateActivity(trip.Activities[date], act) {
		return nil, fmt.Errorf("service.ScheduleService.Update: activity %s: %w", act.ID, domain.ErrNotFound)
	}
	trip.UpdatedAt = s.now()

	if err := s.trips.SaveActive(trip); err != nil {
		return nil, fmt.Errorf("service.ScheduleService.Update: %w", err)
	}
	return trip.Activities[date], nil
}

// Delete removes one activity from a date bucket. No cascade effects.
func (s *ScheduleService) Delete(date domain.Date, id string) error {
	trip, err := s.trips.LoadActive()
	if err != nil {
		return fmt.Errorf("service.ScheduleService.Delete: %w", err)
	}

	bucket, ok := domain.DeleteActivity(trip.Activities[date], id)
	if !ok {
		return fmt.Errorf("service.ScheduleService.Delete: activity %s: %w", id, domain.ErrNotFound)
	}
	trip.Activities[date] = bucket
	trip.UpdatedAt = s.now()

	if err := s.trips.SaveActive(trip); err != nil {
		return fmt.Errorf("service.ScheduleService.Delete: %w", err)
	}
	return nil
}

// Reorder moves an activity within its date bucket (drag and drop).
// Degenerate input (equal or out-of-range indices, a locked list, fewer
// than 2 entries) is a silent no-op; the bucket is returned unchanged.
func (s *ScheduleService) Reorder(date domain.Date, from, to int, locked bool) ([]domain.Activity, error) {
	trip, err := s.trips.LoadActive()
	if err != nil {
		return nil, fmt.Errorf("service.ScheduleService.Reorder: %w", err)
	}

	domain.Reorder(trip.Activities[date], from, to, locked)
	trip.UpdatedAt = s.now()

	if err := s.trips.SaveActive(trip); err != nil {
		return nil, fmt.Errorf("service.ScheduleService.Reorder: %w", err)
	}
	return trip.Activities[date], nil
}

// validateActivity enforces the rules common to Add and Update.
func validateActivity(act domain.Activity) error {
	if strings.TrimSpace(act.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	switch act.Type {
	case domain.ActivitySightseeing, domain.ActivityFood, domain.ActivityTransport:
	case domain.ActivityFlight:
		if act.FlightInfo == nil {
			return fmt.Errorf("%w: flight activities need flight info", domain.ErrValidation)
		}
		if err := validOffset(act.FlightInfo.DepartureTimezone); err != nil {
			return err
		}
		if err := validOffset(act.FlightInfo.ArrivalTimezone); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown activity type %q", domain.ErrValidation, act.Type)
	}
	return nil
}

func validOffset(offset int) error {
	if offset < domain.MinUTCOffset || offset > domain.MaxUTCOffset {
		return fmt.Errorf("%w: UTC offset %+d out of range [%d, %d]", domain.ErrValidation,
			offset, domain.MinUTCOffset, domain.MaxUTCOffset)
	}
	return nil
}

// deriveFlightDuration recomputes a flight's duration from its endpoints,
// keeping the last good value when the pair is incomplete or inverted.
func deriveFlightDuration(act *domain.Activity) {
	if act.Type != domain.ActivityFlight || act.FlightInfo == nil {
		return
	}
	fi := act.FlightInfo
	fi.Duration = domain.FlightDuration(
		fi.DepartureDate, fi.DepartureTime, fi.DepartureTimezone,
		fi.ArrivalDate, fi.ArrivalTime, fi.ArrivalTimezone,
		fi.Duration,
	)
}
