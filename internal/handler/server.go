// Package handler implements the HTTP handlers for the Wayfare API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, schedule.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tkramer/wayfare/backend/internal/assist"
	"github.com/tkramer/wayfare/backend/internal/domain"
	"github.com/tkramer/wayfare/backend/internal/service"
)

// TripServicer defines the trip-lifecycle operations the handlers depend on.
// Defining interfaces here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the store or service layer.
type TripServicer interface {
	Create(trip domain.Trip) (domain.Trip, error)
	Get() (domain.Trip, error)
	Update(trip domain.Trip) (domain.Trip, error)
	Delete() error
	AddStop(stop domain.Stop) (domain.Trip, error)
	UpdateStopDate(stopID int, field domain.StopDateField, value domain.Date) (domain.Trip, error)
	Days() ([]service.DayInfo, error)
	SetTheme(date domain.Date, label string) (domain.Trip, error)
	Archive() error
	ListArchive() ([]domain.Trip, error)
	Restore(id string) (domain.Trip, error)
	DeleteArchived(id string) error
}

// ScheduleServicer defines the itinerary operations the handlers depend on.
type ScheduleServicer interface {
	Add(date domain.Date, act domain.Activity) ([]domain.Activity, error)
	BatchAdd(date domain.Date, startTime string, entries []domain.SightseeingEntry) ([]domain.Activity, error)
	NextStartTime(date domain.Date) (string, error)
	Update(date domain.Date, act domain.Activity) ([]domain.Activity, error)
	Delete(date domain.Date, id string) error
	Reorder(date domain.Date, from, to int, locked bool) ([]domain.Activity, error)
}

// ItemsServicer defines the flat-collection CRUD the handlers depend on.
type ItemsServicer interface {
	AddExpense(e domain.Expense) ([]domain.Expense, error)
	ListExpenses() ([]domain.Expense, error)
	UpdateExpense(e domain.Expense) ([]domain.Expense, error)
	DeleteExpense(id string) error

	AddPackingItem(item domain.PackingItem) ([]domain.PackingItem, error)
	ListPackingItems() ([]domain.PackingItem, error)
	UpdatePackingItem(item domain.PackingItem) ([]domain.PackingItem, error)
	TogglePackingItem(id string) ([]domain.PackingItem, error)
	DeletePackingItem(id string) error

	AddDocument(doc domain.DocumentItem) ([]domain.DocumentItem, error)
	ListDocuments() ([]domain.DocumentItem, error)
	UpdateDocument(doc domain.DocumentItem) ([]domain.DocumentItem, error)
	DeleteDocument(id string) error
}

// ExportServicer defines the export operations the handlers depend on.
type ExportServicer interface {
	PlainText() (string, error)
	CalendarLink(date domain.Date, activityID string) (string, error)
}

// SettingsServicer defines the preference operations the handlers depend on.
type SettingsServicer interface {
	DarkMode() (bool, error)
	SetDarkMode(on bool) error
}

// Suggester defines the generative-content operations the handlers depend
// on; *assist.Client satisfies it.
type Suggester interface {
	SuggestItinerary(ctx context.Context, p assist.ItineraryParams) ([]assist.ItineraryDay, error)
	SuggestPacking(ctx context.Context, p assist.PackingParams) ([]assist.PackingGroup, error)
	SuggestPhrases(ctx context.Context, p assist.PhraseParams) ([]assist.Phrase, error)
	SuggestFood(ctx context.Context, p assist.FoodParams) ([]assist.FoodItem, error)
}

// Server holds the service dependencies for all API endpoints.
type Server struct {
	trips    TripServicer
	schedule ScheduleServicer
	items    ItemsServicer
	export   ExportServicer
	settings SettingsServicer
	suggest  Suggester
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, schedule ScheduleServicer, items ItemsServicer, export ExportServicer, settings SettingsServicer, suggest Suggester) *Server {
	return &Server{
		trips:    trips,
		schedule: schedule,
		items:    items,
		export:   export,
		settings: settings,
		suggest:  suggest,
	}
}

// Routes returns the full route tree. Mount it at "/" in main.go.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trip", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.GetTrip)
		r.Put("/", s.UpdateTrip)
		r.Delete("/", s.DeleteTrip)
		r.Post("/archive", s.ArchiveTrip)
		r.Post("/stops", s.AddStop)
		r.Patch("/stops/{stopID}", s.UpdateStopDate)

		r.Get("/days", s.ListDays)
		r.Route("/days/{date}", func(r chi.Router) {
			r.Put("/theme", s.SetTheme)
			r.Get("/next-time", s.NextStartTime)
			r.Post("/activities", s.AddActivity)
			r.Post("/activities/batch", s.BatchAddActivities)
			r.Post("/activities/reorder", s.ReorderActivities)
			r.Put("/activities/{activityID}", s.UpdateActivity)
			r.Delete("/activities/{activityID}", s.DeleteActivity)
			r.Get("/activities/{activityID}/calendar-link", s.GetCalendarLink)
		})

		r.Post("/expenses", s.AddExpense)
		r.Get("/expenses", s.ListExpenses)
		r.Put("/expenses/{id}", s.UpdateExpense)
		r.Delete("/expenses/{id}", s.DeleteExpense)

		r.Post("/packing", s.AddPackingItem)
		r.Get("/packing", s.ListPackingItems)
		r.Put("/packing/{id}", s.UpdatePackingItem)
		r.Post("/packing/{id}/toggle", s.TogglePackingItem)
		r.Delete("/packing/{id}", s.DeletePackingItem)

		r.Post("/documents", s.AddDocument)
		r.Get("/documents", s.ListDocuments)
		r.Put("/documents/{id}", s.UpdateDocument)
		r.Delete("/documents/{id}", s.DeleteDocument)
	})

	r.Get("/archive", s.ListArchive)
	r.Post("/archive/{id}/restore", s.RestoreTrip)
	r.Delete("/archive/{id}", s.DeleteArchived)

	r.Get("/export", s.GetExport)

	r.Route("/assist", func(r chi.Router) {
		r.Post("/itinerary", s.AssistItinerary)
		r.Post("/packing", s.AssistPacking)
		r.Post("/phrases", s.AssistPhrases)
		r.Post("/food", s.AssistFood)
	})

	r.Get("/settings/dark-mode", s.GetDarkMode)
	r.Put("/settings/dark-mode", s.SetDarkMode)

	return r
}

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondJSON writes v as a JSON response body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // nothing useful to do if the client went away mid-write
	json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v, rejecting unknown garbage early.
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
