package handler

import "net/http"

type darkModeResponse struct {
	DarkMode bool `json:"dark_mode"`
}

// GetDarkMode handles GET /settings/dark-mode.
func (s *Server) GetDarkMode(w http.ResponseWriter, r *http.Request) {
	on, err := s.settings.DarkMode()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, darkModeResponse{DarkMode: on})
}

// SetDarkMode handles PUT /settings/dark-mode.
func (s *Server) SetDarkMode(w http.ResponseWriter, r *http.Request) {
	var req darkModeResponse
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "malformed request body")
		return
	}

	if err := s.settings.SetDarkMode(req.DarkMode); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, darkModeResponse{DarkMode: req.DarkMode})
}
