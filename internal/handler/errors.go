package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tkramer/wayfare/backend/internal/domain"
)

// ErrorResponse is the JSON body for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code and a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError maps a service error onto an HTTP status and JSON body.
// Sentinel errors from the domain get specific statuses; anything else is a
// 500 with a generic message so internals never leak to the client.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNoActiveTrip):
		writeError(w, http.StatusNotFound, "no_active_trip", "no active trip")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", unwrapMessage(err))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

// badRequest rejects a request before it reaches the service layer
// (e.g. missing or malformed body).
func badRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, "bad_request", message)
}

// upstreamError reports a failed call to the generative model collaborator.
func upstreamError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadGateway, "assist_failed", unwrapMessage(err))
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "service.TripService.Create: validation error: name is
// required" becomes "name is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, marker := range []string{"validation error: ", "not found: "} {
		if i := strings.LastIndex(msg, marker); i >= 0 {
			return msg[i+len(marker):]
		}
	}
	// Drop "service.X.Y: " style prefixes.
	if i := strings.LastIndex(msg, ": "); i >= 0 && !strings.Contains(msg[i+2:], ":") {
		return msg[i+2:]
	}
	return msg
}
