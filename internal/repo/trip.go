package repo

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tkramer/wayfare/backend/internal/domain"
)

// Storage keys. One blob per key; the active trip and the archive are
// stored separately so archiving never rewrites unrelated data.
const (
	keyActiveTrip = "active_trip"
	keyArchive    = "archived_trips"
	keyDarkMode   = "dark_mode"
)

// TripRepo defines persistence for the active trip and the archive.
// The service layer depends on this interface, not the file-backed
// implementation, so it can be unit-tested with a mock.
type TripRepo interface {
	// LoadActive returns the active trip.
	// Returns domain.ErrNoActiveTrip when the slot is empty.
	LoadActive() (domain.Trip, error)

	// SaveActive overwrites the active trip slot (last write wins).
	SaveActive(trip domain.Trip) error

	// ClearActive empties the active slot. Clearing an empty slot is fine.
	ClearActive() error

	// LoadArchive returns archived trips, most recently archived first.
	// An empty or corrupt archive loads as an empty slice, never an error list.
	LoadArchive() ([]domain.Trip, error)

	// SaveArchive overwrites the whole archive list.
	SaveArchive(trips []domain.Trip) error
}

// SettingsRepo persists user preferences.
type SettingsRepo interface {
	DarkMode() (bool, error)
	SetDarkMode(on bool) error
}

// kvRepo implements TripRepo and SettingsRepo over a KV blob store.
// A corrupt stored blob is treated as "no saved data": it is logged and the
// app proceeds with empty state rather than failing startup.
type kvRepo struct {
	kv  KV
	log *slog.Logger
}

// NewTripRepo constructs a TripRepo backed by the provided blob store.
func NewTripRepo(kv KV, log *slog.Logger) TripRepo {
	return &kvRepo{kv: kv, log: log}
}

// NewSettingsRepo constructs a SettingsRepo backed by the provided blob store.
func NewSettingsRepo(kv KV, log *slog.Logger) SettingsRepo {
	return &kvRepo{kv: kv, log: log}
}

func (r *kvRepo) LoadActive() (domain.Trip, error) {
	raw, found, err := r.kv.Get(keyActiveTrip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.LoadActive: %w", err)
	}
	if !found {
		return domain.Trip{}, domain.ErrNoActiveTrip
	}

	var trip domain.Trip
	if err := json.Unmarshal([]byte(raw), &trip); err != nil {
		r.log.Warn("corrupt active trip blob, treating as empty", "error", err)
		return domain.Trip{}, domain.ErrNoActiveTrip
	}
	return trip, nil
}

func (r *kvRepo) SaveActive(trip domain.Trip) error {
	raw, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("repo.TripRepo.SaveActive: marshal: %w", err)
	}
	if err := r.kv.Set(keyActiveTrip, string(raw)); err != nil {
		return fmt.Errorf("repo.TripRepo.SaveActive: %w", err)
	}
	return nil
}

func (r *kvRepo) ClearActive() error {
	if err := r.kv.Delete(keyActiveTrip); err != nil {
		return fmt.Errorf("repo.TripRepo.ClearActive: %w", err)
	}
	return nil
}

func (r *kvRepo) LoadArchive() ([]domain.Trip, error) {
	raw, found, err := r.kv.Get(keyArchive)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.LoadArchive: %w", err)
	}
	if !found {
		return []domain.Trip{}, nil
	}

	var trips []domain.Trip
	if err := json.Unmarshal([]byte(raw), &trips); err != nil {
		r.log.Warn("corrupt archive blob, treating as empty", "error", err)
		return []domain.Trip{}, nil
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, nil
}

func (r *kvRepo) SaveArchive(trips []domain.Trip) error {
	if trips == nil {
		trips = []domain.Trip{}
	}
	raw, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("repo.TripRepo.SaveArchive: marshal: %w", err)
	}
	if err := r.kv.Set(keyArchive, string(raw)); err != nil {
		return fmt.Errorf("repo.TripRepo.SaveArchive: %w", err)
	}
	return nil
}

func (r *kvRepo) DarkMode() (bool, error) {
	raw, found, err := r.kv.Get(keyDarkMode)
	if err != nil {
		return false, fmt.Errorf("repo.SettingsRepo.DarkMode: %w", err)
	}
	if !found {
		return false, nil
	}

	var on bool
	if err := json.Unmarshal([]byte(raw), &on); err != nil {
		r.log.Warn("corrupt dark mode blob, defaulting to off", "error", err)
		return false, nil
	}
	return on, nil
}

func (r *kvRepo) SetDarkMode(on bool) error {
	raw, _ := json.Marshal(on)
	if err := r.kv.Set(keyDarkMode, string(raw)); err != nil {
		return fmt.Errorf("repo.SettingsRepo.SetDarkMode: %w", err)
	}
	return nil
}
