package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tkramer/wayfare/backend/internal/domain"
)

// GetExport handles GET /export. The body is the plain-text itinerary
// document, not JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	text, err := s.export.PlainText()
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // nothing useful to do if the client went away mid-write
	w.Write([]byte(text))
}

// GetCalendarLink handles GET /trip/days/{date}/activities/{activityID}/calendar-link.
func (s *Server) GetCalendarLink(w http.ResponseWriter, r *http.Request) {
	date := domain.Date(chi.URLParam(r, "date"))
	activityID := chi.URLParam(r, "activityID")

	link, err := s.export.CalendarLink(date, activityID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"url": link})
}
