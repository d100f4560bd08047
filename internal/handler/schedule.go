package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tkramer/wayfare/backend/internal/domain"
)

// AddActivity handles POST /trip/days/{date}/activities.
func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
	var act domain.Activity
	if err := decodeJSON(r, &act); err != nil {
		badRequest(w, "malformed request body")
		return
	}

	bucket, err := s.schedule.Add(domain.Date(chi.URLParam(r, "date")), act)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, bucket)
}

// BatchRequest is the body for POST /trip/days/{date}/activities/batch.
type BatchRequest struct {
	StartTime string                    `json:"start_time"`
	Entries   []domain.SightseeingEntry `json:"entries"`
}

// BatchAddActivities handles POST /trip/days/{date}/activities/batch:
// expands sightseeing entries into sequential time slots.
func (s *Server) BatchAddActivities(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "malformed request body")
		return
	}

	bucket, err := s.schedule.BatchAdd(domain.Date(chi.URLParam(r, "date")), req.StartTime, req.Entries)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, bucket)
}

// NextStartTime handles GET /trip/days/{date}/next-time: the suggested
// start time for the next activity on that day.
func (s *Server) NextStartTime(w http.ResponseWriter, r *http.Request) {
	next, err := s.schedule.NextStartTime(domain.Date(chi.URLParam(r, "date")))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"time": next})
}

// UpdateActivity handles PUT /trip/days/{date}/activities/{activityID}.
// The path ID wins over any ID in the body.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	var act domain.Activity
	if err := decodeJSON(r, &act); err != nil {
		badRequest(w, "malformed request body")
		return
	}
	act.ID = chi.URLParam(r, "activityID")

	bucket, err := s.schedule.Update(domain.Date(chi.URLParam(r, "date")), act)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bucket)
}

// DeleteActivity handles DELETE /trip/days/{date}/activities/{activityID}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	err := s.schedule.Delete(domain.Date(chi.URLParam(r, "date")), chi.URLParam(r, "activityID"))
	if err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReorderRequest is the body for POST /trip/days/{date}/activities/reorder.
type ReorderRequest struct {
	From   int  `json:"from"`
	To     int  `json:"to"`
	Locked bool `json:"locked"`
}

// ReorderActivities handles POST /trip/days/{date}/activities/reorder.
// Degenerate input (self-drop, locked list) succeeds without changes.
func (s *Server) ReorderActivities(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "malformed request body")
		return
	}

	bucket, err := s.schedule.Reorder(domain.Date(chi.URLParam(r, "date")), req.From, req.To, req.Locked)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bucket)
}
