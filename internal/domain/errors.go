package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrNoActiveTrip is returned when an operation requires an active trip and
// the active slot is empty (no trip created yet, or the trip was archived).
// Handlers should map this to HTTP 404.
var ErrNoActiveTrip = errors.New("no active trip")
