package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tkramer/wayfare/backend/internal/domain"
)

// TripRequest is the body for POST /trip and PUT /trip.
// Multi-city trips may omit destination and the date range; they are derived
// from the stops.
type TripRequest struct {
	Name        string          `json:"name"`
	Destination string          `json:"destination"`
	StartDate   domain.Date     `json:"start_date"`
	EndDate     domain.Date     `json:"end_date"`
	Type        domain.TripType `json:"type"`
	Stops       []domain.Stop   `json:"stops,omitempty"`
}

// CreateTrip handles POST /trip.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req TripRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "malformed request body")
		return
	}

	created, err := s.trips.Create(requestToTrip(req))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// GetTrip handles GET /trip.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.Get()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PUT /trip: a wholesale replace of the active trip's
// editable fields.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var req domain.Trip
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "malformed request body")
		return
	}

	updated, err := s.trips.Update(req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /trip.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Delete(); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddStop handles POST /trip/stops.
// Beyond the stop cap the call succeeds without changing the trip.
func (s *Server) AddStop(w http.ResponseWriter, r *http.Request) {
	var stop domain.Stop
	if err := decodeJSON(r, &stop); err != nil {
		badRequest(w, "malformed request body")
		return
	}

	trip, err := s.trips.AddStop(stop)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// StopDateRequest is the body for PATCH /trip/stops/{stopID}.
type StopDateRequest struct {
	Field domain.StopDateField `json:"field"`
	Value domain.Date          `json:"value"`
}

// UpdateStopDate handles PATCH /trip/stops/{stopID}: edits one boundary
// date, propagating an end-date change to the next stop's start date.
func (s *Server) UpdateStopDate(w http.ResponseWriter, r *http.Request) {
	stopID, err := strconv.Atoi(chi.URLParam(r, "stopID"))
	if err != nil {
		badRequest(w, "stop id must be an integer")
		return
	}
	var req StopDateRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "malformed request body")
		return
	}
	if req.Field != domain.StopStartDate && req.Field != domain.StopEndDate {
		badRequest(w, "field must be start_date or end_date")
		return
	}

	trip, err := s.trips.UpdateStopDate(stopID, req.Field, req.Value)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// ListDays handles GET /trip/days: the per-date calendar view with day
// ordinals, resolved locations, weather cities, and themes.
func (s *Server) ListDays(w http.ResponseWriter, r *http.Request) {
	days, err := s.trips.Days()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, days)
}

// ThemeRequest is the body for PUT /trip/days/{date}/theme.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// SetTheme handles PUT /trip/days/{date}/theme. An empty theme clears it.
func (s *Server) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "malformed request body")
		return
	}

	trip, err := s.trips.SetTheme(domain.Date(chi.URLParam(r, "date")), req.Theme)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// ArchiveTrip handles POST /trip/archive: moves the active trip to the
// front of the archive and clears the active slot.
func (s *Server) ArchiveTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Archive(); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListArchive handles GET /archive.
func (s *Server) ListArchive(w http.ResponseWriter, r *http.Request) {
	archive, err := s.trips.ListArchive()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, archive)
}

// RestoreTrip handles POST /archive/{id}/restore: moves one archived trip
// back to the active slot.
func (s *Server) RestoreTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.Restore(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// DeleteArchived handles DELETE /archive/{id}.
func (s *Server) DeleteArchived(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.DeleteArchived(chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// requestToTrip converts a TripRequest into a domain.Trip draft.
func requestToTrip(req TripRequest) domain.Trip {
	return domain.Trip{
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Type:        req.Type,
		Stops:       req.Stops,
	}
}
