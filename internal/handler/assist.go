package handler

import (
	"net/http"

	"github.com/tkramer/wayfare/backend/internal/assist"
)

// AssistItinerary handles POST /assist/itinerary.
func (s *Server) AssistItinerary(w http.ResponseWriter, r *http.Request) {
	var p assist.ItineraryParams
	if err := decodeJSON(r, &p); err != nil {
		badRequest(w, "malformed request body")
		return
	}

	days, err := s.suggest.SuggestItinerary(r.Context(), p)
	if err != nil {
		upstreamError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, days)
}

// AssistPacking handles POST /assist/packing.
func (s *Server) AssistPacking(w http.ResponseWriter, r *http.Request) {
	var p assist.PackingParams
	if err := decodeJSON(r, &p); err != nil {
		badRequest(w, "malformed request body")
		return
	}

	groups, err := s.suggest.SuggestPacking(r.Context(), p)
	if err != nil {
		upstreamError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, groups)
}

// AssistPhrases handles POST /assist/phrases.
func (s *Server) AssistPhrases(w http.ResponseWriter, r *http.Request) {
	var p assist.PhraseParams
	if err := decodeJSON(r, &p); err != nil {
		badRequest(w, "malformed request body")
		return
	}

	phrases, err := s.suggest.SuggestPhrases(r.Context(), p)
	if err != nil {
		upstreamError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, phrases)
}

// AssistFood handles POST /assist/food.
func (s *Server) AssistFood(w http.ResponseWriter, r *http.Request) {
	var p assist.FoodParams
	if err := decodeJSON(r, &p); err != nil {
		badRequest(w, "malformed request body")
		return
	}

	items, err := s.suggest.SuggestFood(r.Context(), p)
	if err != nil {
		upstreamError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}
